package utils

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// BindJSONBody decodes the request body into dest. An empty body leaves dest
// untouched instead of failing, so PUT {} and PUT with no body behave alike.
func BindJSONBody(c *gin.Context, dest interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
