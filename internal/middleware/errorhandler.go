package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platformctl/paymerge/internal/domain/dto"
	"github.com/platformctl/paymerge/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a standardized JSON error response.
//
// Behavior:
//   - Lets the request run first (c.Next()).
//   - If any handler attached errors and no response was written yet,
//     logs the first error and responds with 500 + dto.ErrorResponse.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors[0].Err
	logger.L().Error().Err(err).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError writes a standardized error response with the given status
// and stops the handler chain. Handlers use it for client errors where the
// status code is known at the call site.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
