package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/health", nil)

	RequestID()(c)

	got := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err, "Сгенерированный ID должен быть валидным uuid")

	stored, exists := c.Get(RequestIDKey)
	require.True(t, exists)
	assert.Equal(t, got, stored)
}

func TestRequestID_PreservesClientProvided(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/health", nil)
	c.Request.Header.Set(RequestIDHeader, "client-supplied-id")

	RequestID()(c)

	assert.Equal(t, "client-supplied-id", w.Header().Get(RequestIDHeader))
}
