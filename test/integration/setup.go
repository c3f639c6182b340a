// Package integration provides helpers and integration tests for the flight
// price optimizer. The tests drive the real HTTP stack, use case and Amadeus
// client against an in-process stub of the flight offers API.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/skylinesaver/flight-price-optimizer/internal/adapter/http"
	"github.com/skylinesaver/flight-price-optimizer/internal/adapter/http/middleware"
	"github.com/skylinesaver/flight-price-optimizer/internal/adapter/http/response"
	"github.com/skylinesaver/flight-price-optimizer/internal/adapter/provider/amadeus"
	"github.com/skylinesaver/flight-price-optimizer/internal/infrastructure/timeutil"
	"github.com/skylinesaver/flight-price-optimizer/internal/usecase"
	"github.com/skylinesaver/flight-price-optimizer/test/mock"
)

const (
	// Today is the calendar day the test clock is pinned to.
	Today = "2025-05-01"

	// DepartureDate is a valid future departure relative to Today.
	DepartureDate = "2025-06-01"
)

// TestServer wraps an Echo instance wired to a stub flight offers API.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
	API     *mock.Amadeus
	Clock   *timeutil.MockClock
}

// NewTestServer starts api and builds the full middleware, handler, use case
// and client stack on top of it. The stub is closed when the test ends.
func NewTestServer(t *testing.T, api *mock.Amadeus) *TestServer {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, zerolog.Nop())

	uc, clock := CreateUseCase(t, api)
	handler := httpAdapter.NewFlightHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		API:     api,
		Clock:   clock,
	}
}

// CreateUseCase starts api and returns a use case backed by a real Amadeus
// client pointed at it, with "today" pinned to Today.
func CreateUseCase(t *testing.T, api *mock.Amadeus) (usecase.FlightSearchUseCase, *timeutil.MockClock) {
	t.Helper()

	api.Start()
	t.Cleanup(api.Close)

	client := amadeus.NewClient(
		amadeus.Credentials{ClientID: "test-client-id", ClientSecret: "test-client-secret"},
		amadeus.WithBaseURL(api.URL()),
	)

	clock := timeutil.NewMockClockFromDate(Today)
	uc := usecase.NewFlightSearchUseCase(client, &usecase.Config{
		Clock:    clock,
		Location: time.UTC,
	})
	return uc, clock
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts body to the search endpoint.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// SearchQuery calls the GET form of the search endpoint.
func (ts *TestServer) SearchQuery(query url.Values) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/flights/search?" + query.Encode(),
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a search result.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an error.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	MaxPrice      *int   `json:"maxPrice,omitempty"`
	Passengers    *int   `json:"passengers,omitempty"`
}

// DefaultSearchRequest returns the one-way JFK→LAX request with form defaults.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: DepartureDate,
	}
}

// DefaultSearchQuery is DefaultSearchRequest in query-parameter form.
func DefaultSearchQuery() url.Values {
	return url.Values{
		"origin":        {"JFK"},
		"destination":   {"LAX"},
		"departureDate": {DepartureDate},
	}
}
