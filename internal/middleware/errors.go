package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrointeract/astropulse/internal/domain/dto"
	"github.com/astrointeract/astropulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a generic 500 response once the handler chain
// finishes. Internal causes are logged, never exposed to the caller.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	rid, _ := c.Get(RequestIDKey)
	for _, ginErr := range c.Errors {
		logger.L().Error().
			Str("request_id", toString(rid)).
			Str("path", c.Request.URL.Path).
			Err(ginErr.Err).
			Msg("request failed")
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", nil))
}

// AbortWithError logs the underlying cause and aborts the request with a
// standardized ErrorResponse body. The message is what the caller sees; the
// error is what the operator sees in the logs.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Err(err).
		Msg(message)

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
