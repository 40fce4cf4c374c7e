package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interbanking/backend/internal/interfaces/http/dto"
)

// BodyLimit returns a middleware that limits request body size.
// A declared Content-Length above the limit is rejected up front; chunked
// bodies fail while being read with *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRequestTooLarge,
				"Request body exceeds maximum allowed size",
				GetRequestID(c),
			))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
