package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Handle translates an error coming out of a use case into an HTTP
// response. Business errors map through their code; anything else is
// logged and surfaced as an opaque 500.
func Handle(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, StatusFor(be.Code), be.Code, MessageFor(be.Code))
		return
	}
	zap.L().Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	Internal(c, "internal_error", "Something went wrong.")
}
