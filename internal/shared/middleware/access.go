package middleware

import (
	"github.com/gin-gonic/gin"

	"multimedia-api/internal/shared/access"
	"multimedia-api/internal/shared/response"
)

// AccessGate enforces gate decisions on a route group. Read methods go
// straight through; rejected writes stop here with a 401 envelope.
func AccessGate(gate *access.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := gate.Authorize(c.Request.Method, c.GetHeader("Authorization"))
		if decision.Allowed {
			c.Next()
			return
		}

		message := "provide Basic credentials to modify resources"
		if decision.Reason == access.ReasonInvalidCredentials {
			message = "authentication failed"
		}

		c.Header("WWW-Authenticate", `Basic realm="multimedia"`)
		response.Unauthorized(c, decision.Reason, message)
		c.Abort()
	}
}
