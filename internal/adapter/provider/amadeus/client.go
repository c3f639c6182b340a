// Package amadeus is the flight offers API adapter.
// It builds one Flight Offers Search request per call, normalizes the offers
// and classifies error responses into domain errors.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/skylinesaver/flight-price-optimizer/internal/domain"
)

// ProviderName is the unique identifier for the Amadeus flight offers API.
const ProviderName = "amadeus"

// DefaultBaseURL points at the Amadeus self-service test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

const (
	flightOffersPath = "/v2/shopping/flight-offers"
	tokenPath        = "/v1/security/oauth2/token"
)

// HTTPClient is the subset of *http.Client the adapter needs.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Credentials is the API key/secret pair issued by Amadeus.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Client queries the Amadeus Flight Offers Search API.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	tokens     *tokenCache
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API host (e.g., "https://api.amadeus.com" for production).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the HTTP client used for both the token and the
// search requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for skipped offers and classified failures.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Client. When creds carries a client ID, each search is
// authorized with an OAuth2 client-credentials token fetched from the same host
// under the search's context. TLS certificates are always verified.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}

	if creds.ClientID != "" {
		cc := &clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     c.baseURL + tokenPath,
			AuthStyle:    oauth2.AuthStyleInParams,
		}
		httpc, _ := c.httpClient.(*http.Client)
		c.tokens = newTokenCache(cc, httpc)
	}

	c.log = c.log.With().Str("provider", ProviderName).Logger()
	return c
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Search sends exactly one flight offers request for criteria.
func (c *Client) Search(ctx context.Context, criteria domain.SearchCriteria) (domain.SearchResult, error) {
	req, err := c.newSearchRequest(ctx, criteria)
	if err != nil {
		return domain.SearchResult{}, domain.NewTransportError("build request", err)
	}

	if err := c.authorize(ctx, req); err != nil {
		return domain.SearchResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SearchResult{}, domain.NewTransportError("send request", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.SearchResult{}, domain.NewTransportError("read response", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.SearchResult{}, c.classify(resp.StatusCode, body)
	}

	var payload offersResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.SearchResult{}, domain.NewTransportError("decode response", err)
	}

	return normalize(payload.Data, c.log), nil
}

// newSearchRequest builds the GET request; returnDate is only sent for round trips.
func (c *Client) newSearchRequest(ctx context.Context, criteria domain.SearchCriteria) (*http.Request, error) {
	u, err := url.Parse(c.baseURL + flightOffersPath)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("originLocationCode", criteria.Origin)
	q.Set("destinationLocationCode", criteria.Destination)
	q.Set("departureDate", criteria.DepartureDateString())
	if criteria.HasReturn() {
		q.Set("returnDate", criteria.ReturnDateString())
	}
	q.Set("adults", strconv.Itoa(criteria.Passengers))
	q.Set("maxPrice", strconv.Itoa(criteria.MaxPrice))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// authorize sets the bearer token on req. Token endpoint rejections are
// classified like search errors.
func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}

	tok, err := c.tokens.Token(ctx)
	if err != nil {
		var tokenErr *oauth2.RetrieveError
		if errors.As(err, &tokenErr) {
			status := 0
			if tokenErr.Response != nil {
				status = tokenErr.Response.StatusCode
			}
			return c.classify(status, tokenErr.Body)
		}
		return domain.NewTransportError("fetch token", err)
	}

	tok.SetAuthHeader(req)
	return nil
}

func (c *Client) classify(statusCode int, body []byte) error {
	c.log.Debug().
		Int("status", statusCode).
		Bytes("body", body).
		Msg("Full error response")

	err := classifyError(statusCode, body)
	c.log.Warn().Err(err).Int("status", statusCode).Msg("Flight offers request failed")
	return err
}

var _ domain.FlightOffersClient = (*Client)(nil)
