// Package mock provides an in-process stand-in for the Amadeus flight offers
// API. It serves the OAuth2 token endpoint and the flight offers endpoint with
// configurable status, body and delay, and records every call.
package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"
)

const (
	// FlightOffersPath is the search endpoint served by the stub.
	FlightOffersPath = "/v2/shopping/flight-offers"

	// TokenPath is the OAuth2 client-credentials endpoint served by the stub.
	TokenPath = "/v1/security/oauth2/token"

	// AccessToken is the bearer token issued by the stub.
	AccessToken = "test-access-token"
)

// Amadeus is a configurable stub of the flight offers API.
// Configure it with the With* methods, then call Start.
type Amadeus struct {
	mu sync.Mutex

	searchStatus int
	searchBody   []byte
	delay        time.Duration

	tokenStatus int
	tokenBody   []byte

	searchCalls int
	tokenCalls  int
	queries     []url.Values
	authHeaders []string

	server *httptest.Server
}

// NewAmadeus creates a stub that answers every search with an empty offer list.
func NewAmadeus() *Amadeus {
	return &Amadeus{
		searchStatus: http.StatusOK,
		searchBody:   []byte(`{"data":[]}`),
		tokenStatus:  http.StatusOK,
		tokenBody: []byte(fmt.Sprintf(
			`{"token_type":"Bearer","access_token":%q,"expires_in":1799}`, AccessToken)),
	}
}

// WithOffers answers searches with 200 and the given body.
func (a *Amadeus) WithOffers(body []byte) *Amadeus {
	return a.WithSearchResponse(http.StatusOK, body)
}

// WithSearchResponse answers searches with the given status and raw body.
// A nil body sends no content.
func (a *Amadeus) WithSearchResponse(status int, body []byte) *Amadeus {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.searchStatus = status
	a.searchBody = body
	return a
}

// WithTokenResponse answers token requests with the given status and body.
func (a *Amadeus) WithTokenResponse(status int, body []byte) *Amadeus {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokenStatus = status
	a.tokenBody = body
	return a
}

// WithDelay holds each search response for d, or until the caller gives up.
func (a *Amadeus) WithDelay(d time.Duration) *Amadeus {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delay = d
	return a
}

// Start launches the stub on a loopback listener.
func (a *Amadeus) Start() *Amadeus {
	mux := http.NewServeMux()
	mux.HandleFunc(TokenPath, a.serveToken)
	mux.HandleFunc(FlightOffersPath, a.serveSearch)
	a.server = httptest.NewServer(mux)
	return a
}

// URL returns the base URL of a started stub.
func (a *Amadeus) URL() string {
	return a.server.URL
}

// Close shuts the stub down.
func (a *Amadeus) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *Amadeus) serveToken(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.tokenCalls++
	status, body := a.tokenStatus, a.tokenBody
	a.mu.Unlock()

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, status, body)
}

func (a *Amadeus) serveSearch(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.searchCalls++
	a.queries = append(a.queries, r.URL.Query())
	a.authHeaders = append(a.authHeaders, r.Header.Get("Authorization"))
	status, body, delay := a.searchStatus, a.searchBody, a.delay
	a.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	if body != nil {
		w.Header().Set("Content-Type", "application/vnd.amadeus+json")
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// SearchCalls returns the number of flight offers requests received.
func (a *Amadeus) SearchCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.searchCalls
}

// TokenCalls returns the number of token requests received.
func (a *Amadeus) TokenCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tokenCalls
}

// LastQuery returns the query of the most recent search, or nil.
func (a *Amadeus) LastQuery() url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.queries) == 0 {
		return nil
	}
	return a.queries[len(a.queries)-1]
}

// AuthHeaders returns the Authorization header of every search, in order.
func (a *Amadeus) AuthHeaders() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.authHeaders...)
}

// Reset clears recorded calls.
func (a *Amadeus) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.searchCalls = 0
	a.tokenCalls = 0
	a.queries = nil
	a.authHeaders = nil
}

// SampleOffers builds a flight offers body with count direct JFK→LAX offers
// departing on date. Prices rise by 25.00 per offer starting at 300.00.
func SampleOffers(date string, count int) []byte {
	offers := make([]map[string]interface{}, count)
	for i := 0; i < count; i++ {
		depHour := 6 + i%12
		price := fmt.Sprintf("%d.00", 300+25*i)
		offers[i] = map[string]interface{}{
			"type": "flight-offer",
			"id":   fmt.Sprintf("%d", i+1),
			"itineraries": []map[string]interface{}{{
				"duration": "PT5H30M",
				"segments": []map[string]interface{}{{
					"carrierCode": "AA",
					"number":      fmt.Sprintf("%d", 100+i),
					"departure": map[string]string{
						"iataCode": "JFK",
						"at":       fmt.Sprintf("%sT%02d:00:00", date, depHour),
					},
					"arrival": map[string]string{
						"iataCode": "LAX",
						"at":       fmt.Sprintf("%sT%02d:30:00", date, depHour+5),
					},
				}},
			}},
			"price": map[string]string{
				"currency":   "USD",
				"total":      price,
				"grandTotal": price,
			},
		}
	}

	body, err := json.Marshal(map[string]interface{}{
		"meta": map[string]int{"count": count},
		"data": offers,
	})
	if err != nil {
		panic(err)
	}
	return body
}
