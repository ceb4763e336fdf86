package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"multimedia-api/internal/shared/apperr"
)

// Response is the envelope every endpoint answers with.
//
//	success list:   {success, count, data}
//	success single: {success, data}
//	delete:         {success, message, data: {}}
//	failure:        {success: false, error, message}
type Response struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// Deleted answers a successful delete: confirmation message and an empty object.
func Deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    gin.H{},
	})
}

// Error responses
func Error(c *gin.Context, statusCode int, label, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   label,
		Message: message,
	})
}

func ErrorWithStack(c *gin.Context, statusCode int, label, message, stack string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   label,
		Message: message,
		Stack:   stack,
	})
}

// Common error responses
func BadRequest(c *gin.Context, label, message string) {
	Error(c, http.StatusBadRequest, label, message)
}

func Unauthorized(c *gin.Context, label, message string) {
	Error(c, http.StatusUnauthorized, label, message)
}

func NotFound(c *gin.Context, label, message string) {
	Error(c, http.StatusNotFound, label, message)
}

func InternalServerError(c *gin.Context, label, message string) {
	Error(c, http.StatusInternalServerError, label, message)
}

// FromError renders err with the status its kind maps to.
// failLabel names the failed operation ("error creating book"); notFoundLabel
// is used for missing entities so they never look like a missing route.
func FromError(c *gin.Context, err error, failLabel, notFoundLabel, notFoundMessage string) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusNotFound {
		Error(c, status, notFoundLabel, notFoundMessage)
		return
	}
	Error(c, status, failLabel, err.Error())
}
