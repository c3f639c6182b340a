// Package http provides the HTTP handler layer for the flight search API.
// It handles request binding, format validation, response formatting and
// error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skylinesaver/flight-price-optimizer/internal/adapter/http/response"
	"github.com/skylinesaver/flight-price-optimizer/internal/domain"
	"github.com/skylinesaver/flight-price-optimizer/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
//	@Summary		Search for flight offers
//	@Description	Validates the search form and queries the flight offers API once. Offers are returned in API order.
//	@Tags			flights
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SearchFlightsRequest	true	"Search criteria"
//	@Success		200		{object}	SearchResponseDTO
//	@Failure		400		{object}	response.ErrorDetail	"Validation error"
//	@Failure		502		{object}	response.ErrorDetail	"Flight offers API error"
//	@Failure		503		{object}	response.ErrorDetail	"Flight offers API unreachable"
//	@Failure		504		{object}	response.ErrorDetail	"Gateway timeout"
//	@Router			/api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	return h.search(c, &req)
}

// SearchFlightsQuery handles GET /api/v1/flights/search
//
//	@Summary		Search for flight offers (query form)
//	@Description	Same as the POST form with the fields passed as query parameters.
//	@Tags			flights
//	@Produce		json
//	@Param			origin			query		string	true	"Origin IATA code"			example(JFK)
//	@Param			destination		query		string	true	"Destination IATA code"		example(LAX)
//	@Param			departureDate	query		string	true	"Departure date YYYY-MM-DD"	example(2025-06-01)
//	@Param			returnDate		query		string	false	"Return date YYYY-MM-DD"
//	@Param			maxPrice		query		int		false	"Price ceiling (50-5000)"	default(1000)
//	@Param			passengers		query		int		false	"Adults (1-10)"				default(1)
//	@Success		200				{object}	SearchResponseDTO
//	@Failure		400				{object}	response.ErrorDetail	"Validation error"
//	@Failure		502				{object}	response.ErrorDetail	"Flight offers API error"
//	@Failure		503				{object}	response.ErrorDetail	"Flight offers API unreachable"
//	@Failure		504				{object}	response.ErrorDetail	"Gateway timeout"
//	@Router			/api/v1/flights/search [get]
func (h *FlightHandler) SearchFlightsQuery(c echo.Context) error {
	var req SearchFlightsRequest
	if err := bindSearchQuery(c, &req); err != nil {
		return response.InvalidRequestBody(c)
	}
	return h.search(c, &req)
}

func (h *FlightHandler) search(c echo.Context, req *SearchFlightsRequest) error {
	if err := c.Validate(req); err != nil {
		return h.handleValidationError(c, err)
	}
	req.ApplyDefaults()

	in, err := ToSearchInput(req)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), in)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// bindSearchQuery reads the form from query parameters. Numeric fields stay
// nil when absent so defaults can be told apart from explicit values.
func bindSearchQuery(c echo.Context, req *SearchFlightsRequest) error {
	q := c.QueryParams()
	b := echo.QueryParamsBinder(c).
		String("origin", &req.Origin).
		String("destination", &req.Destination).
		String("departureDate", &req.DepartureDate).
		String("returnDate", &req.ReturnDate)

	if q.Has("maxPrice") {
		var v int
		b.Int("maxPrice", &v)
		req.MaxPrice = &v
	}
	if q.Has("passengers") {
		var v int
		b.Int("passengers", &v)
		req.Passengers = &v
	}

	return b.BindError()
}

// handleValidationError writes a 400 for request-format and domain validation failures.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var fieldErrs *ValidationErrors
	if errors.As(err, &fieldErrs) {
		return response.ValidationError(c, fieldErrs.ToMap())
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return response.ValidationError(c, map[string]string{domainErr.Field: domainErr.Message})
	}

	return response.ValidationError(c, map[string]string{"request": err.Error()})
}

// handleError maps domain errors to HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	if domain.IsValidationError(err) {
		return h.handleValidationError(c, err)
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return response.APIError(c, apiErr.Detail)
	}

	var classErr *domain.ClassificationFailure
	if errors.As(err, &classErr) {
		return response.ClassificationFailure(c, classErr.Message)
	}

	// Context errors arrive wrapped in a TransportError, so check them first.
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if domain.IsTransportError(err) {
		return response.ServiceUnavailable(c)
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("Unmapped search error")
	return response.InternalServerError(c)
}

// Health handles GET /health
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	response.HealthResponse
//	@Router		/health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
