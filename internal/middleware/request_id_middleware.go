package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок, в котором клиенту возвращается ID запроса
const RequestIDHeader = "X-Request-ID"

// RequestIDKey — ключ ID запроса в контексте Gin
const RequestIDKey = "request_id"

// RequestID проставляет каждому запросу уникальный ID.
// Если клиент прислал свой X-Request-ID, он сохраняется; иначе генерируется uuid.
// ID попадает в контекст и в заголовок ответа для корреляции логов.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
