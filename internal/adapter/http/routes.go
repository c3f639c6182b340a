package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the flight search API routes and installs the
// request validator if none is set.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	if e.Validator == nil {
		e.Validator = NewRequestValidator()
	}

	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)
	flights.GET("/search", h.SearchFlightsQuery)
}
