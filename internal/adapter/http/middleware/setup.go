package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the middleware chain. Order matters:
//  1. RequestID, so every later log line can carry the ID
//  2. RequestLogger, which logs the final status including recovered panics
//  3. Recover, innermost, so it turns panics into a response before logging
func Setup(e *echo.Echo, log zerolog.Logger) {
	for _, m := range Chain(log) {
		e.Use(m)
	}
}

// Chain returns the middleware chain for use with route groups.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
