package httpapi

import (
	"time"

	"github.com/google/uuid"

	applog "riichi/log"
)

// CorsMiddleware allows any origin to call the JSON API — mjserve has no
// session/cookie state to protect.
func CorsMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		c.SetHeader("Access-Control-Allow-Origin", "*")
		c.SetHeader("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.SetHeader("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if c.Method() == "OPTIONS" {
			c.AbortWithStatus(204)
		}
		return nil
	}
}

// LoggerMiddleware logs each request on arrival and again with its latency
// once the rest of the handler chain has run.
func LoggerMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		start := time.Now()
		method, path := c.Method(), c.Path()
		applog.Info("http request: %s %s from %s", method, path, c.ClientIP())
		c.ginCtx.Next()
		applog.Info("http response: %s %s in %v", method, path, time.Since(start))
		return nil
	}
}

// RequestIDMiddleware tags every request with a correlation ID, generating
// one with google/uuid when the caller didn't already supply X-Request-ID.
func RequestIDMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.SetHeader("X-Request-ID", id)
		return nil
	}
}
