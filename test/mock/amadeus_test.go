package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmadeus_ServesTokenAndSearch(t *testing.T) {
	stub := NewAmadeus().WithOffers(SampleOffers("2025-06-01", 2)).Start()
	t.Cleanup(stub.Close)

	resp, err := http.PostForm(stub.URL()+TokenPath, url.Values{"grant_type": {"client_credentials"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var token map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	assert.Equal(t, AccessToken, token["access_token"])

	req, err := http.NewRequest(http.MethodGet, stub.URL()+FlightOffersPath+"?originLocationCode=JFK", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+AccessToken)
	searchResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer searchResp.Body.Close()
	assert.Equal(t, http.StatusOK, searchResp.StatusCode)

	assert.Equal(t, 1, stub.TokenCalls())
	assert.Equal(t, 1, stub.SearchCalls())
	assert.Equal(t, "JFK", stub.LastQuery().Get("originLocationCode"))
	assert.Equal(t, []string{"Bearer " + AccessToken}, stub.AuthHeaders())
}

func TestAmadeus_SearchResponse(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     []byte
		wantBody string
	}{
		{name: "error body", status: http.StatusBadRequest, body: []byte(`{"errors":[]}`), wantBody: `{"errors":[]}`},
		{name: "no body", status: http.StatusInternalServerError, body: nil, wantBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := NewAmadeus().WithSearchResponse(tt.status, tt.body).Start()
			t.Cleanup(stub.Close)

			resp, err := http.Get(stub.URL() + FlightOffersPath)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestAmadeus_TokenRejectsGet(t *testing.T) {
	stub := NewAmadeus().Start()
	t.Cleanup(stub.Close)

	resp, err := http.Get(stub.URL() + TokenPath)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestAmadeus_Reset(t *testing.T) {
	stub := NewAmadeus().Start()
	t.Cleanup(stub.Close)

	resp, err := http.Get(stub.URL() + FlightOffersPath)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 1, stub.SearchCalls())

	stub.Reset()
	assert.Zero(t, stub.SearchCalls())
	assert.Nil(t, stub.LastQuery())
	assert.Empty(t, stub.AuthHeaders())
}

func TestSampleOffers(t *testing.T) {
	var doc struct {
		Data []struct {
			Itineraries []struct {
				Segments []struct {
					Departure struct {
						At string `json:"at"`
					} `json:"departure"`
				} `json:"segments"`
			} `json:"itineraries"`
			Price struct {
				Total string `json:"total"`
			} `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(SampleOffers("2025-06-01", 3), &doc))

	require.Len(t, doc.Data, 3)
	assert.Equal(t, "300.00", doc.Data[0].Price.Total)
	assert.Equal(t, "350.00", doc.Data[2].Price.Total)
	assert.True(t, strings.HasPrefix(doc.Data[1].Itineraries[0].Segments[0].Departure.At, "2025-06-01T07"))
}
