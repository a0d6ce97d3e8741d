package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodySize caps request payloads. Birth data is tiny; anything near this
// limit is malformed or hostile.
const MaxBodySize = 64 * 1024

// BodyLimit rejects request bodies larger than limit bytes. Oversized
// payloads fail inside the handler's read with http.MaxBytesError, which gin
// binding reports as a 400.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "request body too large",
			})
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
