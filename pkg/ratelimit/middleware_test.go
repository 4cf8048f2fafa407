package ratelimit

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetRateLimitType(t *testing.T) {
	assert.Equal(t, RateLimitTypeHealth, getRateLimitType("/health"))
	assert.Equal(t, RateLimitTypeHealth, getRateLimitType("/ping"))
	assert.Equal(t, RateLimitTypeHealth, getRateLimitType("/status"))
	assert.Equal(t, RateLimitTypeAgenda, getRateLimitType("/api/v1/agenda"))
	assert.Equal(t, RateLimitTypeAgenda, getRateLimitType("/api/v1/agenda/sections/toggle"))
	assert.Equal(t, RateLimitTypeBooking, getRateLimitType("/api/v1/bookings/:id"))
	assert.Equal(t, RateLimitTypeBooking, getRateLimitType("/api/v1/bookings/:id/payment/toggle"))
	assert.Equal(t, RateLimitTypeDefault, getRateLimitType("/api/v1/anything-else"))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.RemoteAddr = "10.0.0.1:51234"
		return c
	}

	c := newCtx()
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", getClientIP(c))

	c = newCtx()
	c.Request.Header.Set("X-Forwarded-For", "not-an-ip")
	c.Request.Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", getClientIP(c))

	c = newCtx()
	assert.Equal(t, "10.0.0.1", getClientIP(c))
}
