package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestID tags every request with a unique id, echoed back in the
// X-Request-ID header and available to handlers for log correlation.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		ctx.Set(RequestIDKey, id)
		ctx.Header("X-Request-ID", id)
		ctx.Next()
	}
}
