package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"multimedia-api/internal/shared/response"
)

// statusCarrier lets a panic value choose its own response status.
type statusCarrier interface {
	HTTPStatus() int
}

// Recovery catches panics from handlers and renders the failure envelope.
// The stack trace is only echoed back when exposeStack is true (development).
func Recovery(exposeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			stack := debug.Stack()
			log.Error().
				Str("request_id", c.GetString(RequestIDKey)).
				Interface("error", rec).
				Bytes("stack", stack).
				Msg("Panic recovered")

			status := http.StatusInternalServerError
			message := "internal server error"
			switch v := rec.(type) {
			case statusCarrier:
				if st := v.HTTPStatus(); st >= 400 && st <= 599 {
					status = st
				}
				message = fmt.Sprint(v)
			case error:
				message = v.Error()
			case string:
				message = v
			}

			if c.Writer.Written() {
				c.Abort()
				return
			}

			label := statusLabel(status)
			if exposeStack {
				response.ErrorWithStack(c, status, label, message, string(stack))
			} else {
				response.Error(c, status, label, message)
			}
			c.Abort()
		}()

		c.Next()
	}
}

// statusLabel: "bad request", "not found", ... ; status lạ -> "internal server error"
func statusLabel(status int) string {
	if text := http.StatusText(status); text != "" {
		return strings.ToLower(text)
	}
	return "internal server error"
}
