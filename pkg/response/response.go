package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "product-catalog/pkg/errors"
)

// NewOKResp returns a successful envelope. An empty message falls back to MessageSuccess.
func NewOKResp(message string, data any) Resp {
	if message == "" {
		message = MessageSuccess
	}
	return Resp{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, NewOKResp(message, data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, NewOKResp(message, data))
}

// Error renders err. An *errors.HTTPError keeps its status and payload,
// anything else is a 400 with the error text.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			Success: false,
			Message: httpErr.Message,
			Data:    httpErr.Data,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		Success: false,
		Message: err.Error(),
	})
}

// InternalError sends 500 with the cause appended to the default message.
func InternalError(c *gin.Context, err error) {
	Error(c, pkgErrors.NewInternalError(err))
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Success: false,
		Message: pkgErrors.ErrTooManyRequests.Message,
	})
}
