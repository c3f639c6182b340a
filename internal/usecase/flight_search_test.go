package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skylinesaver/flight-price-optimizer/internal/domain"
	"github.com/skylinesaver/flight-price-optimizer/internal/infrastructure/logger"
	"github.com/skylinesaver/flight-price-optimizer/internal/infrastructure/timeutil"
)

// fixedNow is 2025-05-01 10:00 UTC.
var fixedNow = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validInput() domain.SearchInput {
	return domain.SearchInput{
		Origin:        "jfk",
		Destination:   "lax",
		DepartureDate: date(2025, 6, 1),
		MaxPrice:      1000,
		Passengers:    1,
	}
}

func sampleOffer() domain.FlightOffer {
	return domain.FlightOffer{
		TotalPrice: "450.00",
		Currency:   "USD",
		Duration:   "PT5H30M",
		Segments: []domain.ItinerarySegment{{
			CarrierCode:      "AA",
			DepartureAirport: "JFK",
			DepartureAt:      "2025-06-01T08:00:00",
			ArrivalAirport:   "LAX",
			ArrivalAt:        "2025-06-01T11:30:00",
		}},
	}
}

func newUseCase(client domain.FlightOffersClient) FlightSearchUseCase {
	return NewFlightSearchUseCase(client, &Config{
		Clock:  timeutil.NewMockClock(fixedNow),
		Logger: logger.Nop(),
	})
}

// TestNewFlightSearchUseCase tests the constructor.
func TestNewFlightSearchUseCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := domain.NewMockFlightOffersClient(ctrl)

	tests := []struct {
		name   string
		config *Config
	}{
		{name: "with default config", config: nil},
		{name: "with empty config", config: &Config{}},
		{
			name: "with custom config",
			config: &Config{
				Clock:    timeutil.NewMockClock(fixedNow),
				Location: time.FixedZone("UTC+7", 7*3600),
				Logger:   logger.Nop(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewFlightSearchUseCase(client, tt.config)
			require.NotNil(t, uc)

			impl := uc.(*flightSearchUseCase)
			assert.NotNil(t, impl.clock)
			assert.NotNil(t, impl.location)
			assert.NotNil(t, impl.log)
		})
	}
}

func TestSearch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := domain.NewMockFlightOffersClient(ctrl)

	client.EXPECT().Name().Return("amadeus").AnyTimes()
	client.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.SearchCriteria) (domain.SearchResult, error) {
			assert.Equal(t, "JFK", c.Origin)
			assert.Equal(t, "LAX", c.Destination)
			assert.Equal(t, "2025-06-01", c.DepartureDateString())
			assert.False(t, c.HasReturn())
			return domain.NewSearchResult([]domain.FlightOffer{sampleOffer()}), nil
		}).Times(1)

	resp, err := newUseCase(client).Search(context.Background(), validInput())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 1, resp.Metadata.TotalResults)
	assert.Equal(t, "amadeus", resp.Metadata.Provider)
	assert.Equal(t, "JFK", resp.SearchCriteria.Origin)
	require.Len(t, resp.Result.Offers, 1)
	assert.Equal(t, sampleOffer(), resp.Result.Offers[0])
}

func TestSearch_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := domain.NewMockFlightOffersClient(ctrl)

	client.EXPECT().Name().Return("amadeus").AnyTimes()
	client.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(domain.NewSearchResult(nil), nil).Times(1)

	resp, err := newUseCase(client).Search(context.Background(), validInput())

	require.NoError(t, err)
	assert.True(t, resp.Result.IsEmpty())
	assert.NotNil(t, resp.Result.Offers)
	assert.Equal(t, 0, resp.Metadata.TotalResults)
}

func TestSearch_PreservesClientOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := domain.NewMockFlightOffersClient(ctrl)

	offers := []domain.FlightOffer{
		{TotalPrice: "900.00", Duration: "PT6H"},
		{TotalPrice: "100.00", Duration: "PT9H"},
		{TotalPrice: "450.00", Duration: "PT5H"},
	}
	client.EXPECT().Name().Return("amadeus").AnyTimes()
	client.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(domain.NewSearchResult(offers), nil)

	resp, err := newUseCase(client).Search(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, offers, resp.Result.Offers)
}

func TestSearch_ValidationErrorSkipsClient(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SearchInput)
		wantErr error
	}{
		{
			name: "departure in the past",
			mutate: func(in *domain.SearchInput) {
				in.DepartureDate = date(2025, 4, 30)
			},
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name: "return before departure",
			mutate: func(in *domain.SearchInput) {
				ret := date(2025, 5, 20)
				in.ReturnDate = &ret
			},
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name: "bad origin",
			mutate: func(in *domain.SearchInput) {
				in.Origin = "J1K"
			},
			wantErr: domain.ErrInvalidOriginCode,
		},
		{
			name: "bad destination",
			mutate: func(in *domain.SearchInput) {
				in.Destination = ""
			},
			wantErr: domain.ErrInvalidDestinationCode,
		},
		{
			name: "price out of range",
			mutate: func(in *domain.SearchInput) {
				in.MaxPrice = 10
			},
			wantErr: domain.ErrInvalidMaxPrice,
		},
		{
			name: "too many passengers",
			mutate: func(in *domain.SearchInput) {
				in.Passengers = 11
			},
			wantErr: domain.ErrInvalidPassengerCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := domain.NewMockFlightOffersClient(ctrl)
			client.EXPECT().Name().Return("amadeus").AnyTimes()
			client.EXPECT().Search(gomock.Any(), gomock.Any()).Times(0)

			in := validInput()
			tt.mutate(&in)

			resp, err := newUseCase(client).Search(context.Background(), in)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestSearch_DepartureTodayIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := domain.NewMockFlightOffersClient(ctrl)
	client.EXPECT().Name().Return("amadeus").AnyTimes()
	client.EXPECT().Search(gomock.Any(), gomock.Any()).Return(domain.NewSearchResult(nil), nil).Times(1)

	in := validInput()
	in.DepartureDate = date(2025, 5, 1)

	_, err := newUseCase(client).Search(context.Background(), in)
	assert.NoError(t, err)
}

func TestSearch_TodayFollowsConfiguredLocation(t *testing.T) {
	// 2025-05-01 20:00 UTC is already 2025-05-02 in Asia/Tokyo.
	tokyo := time.FixedZone("JST", 9*3600)
	clock := timeutil.NewMockClock(time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))

	ctrl := gomock.NewController(t)
	client := domain.NewMockFlightOffersClient(ctrl)
	client.EXPECT().Name().Return("amadeus").AnyTimes()
	client.EXPECT().Search(gomock.Any(), gomock.Any()).Times(0)

	uc := NewFlightSearchUseCase(client, &Config{Clock: clock, Location: tokyo})

	in := validInput()
	in.DepartureDate = date(2025, 5, 1)

	_, err := uc.Search(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestSearch_ClientErrorsPropagate(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(*testing.T, error)
	}{
		{
			name: "api error",
			err:  domain.NewAPIError(400, "Invalid date"),
			check: func(t *testing.T, err error) {
				var apiErr *domain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "Invalid date", apiErr.Detail)
			},
		},
		{
			name: "classification failure",
			err:  domain.NewClassificationFailure("decode error body: invalid character"),
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsClassificationFailure(err))
			},
		},
		{
			name: "transport error",
			err:  domain.NewTransportError("send request", errors.New("connection refused")),
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsTransportError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := domain.NewMockFlightOffersClient(ctrl)
			client.EXPECT().Name().Return("amadeus").AnyTimes()
			client.EXPECT().Search(gomock.Any(), gomock.Any()).Return(domain.SearchResult{}, tt.err).Times(1)

			resp, err := newUseCase(client).Search(context.Background(), validInput())

			assert.Nil(t, resp)
			require.Error(t, err)
			assert.False(t, domain.IsValidationError(err))
			tt.check(t, err)
		})
	}
}

func TestSearch_PassesContext(t *testing.T) {
	type ctxKey struct{}

	ctrl := gomock.NewController(t)
	client := domain.NewMockFlightOffersClient(ctrl)
	client.EXPECT().Name().Return("amadeus").AnyTimes()
	client.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.SearchCriteria) (domain.SearchResult, error) {
			assert.Equal(t, "req-1", ctx.Value(ctxKey{}))
			return domain.NewSearchResult(nil), nil
		})

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	_, err := newUseCase(client).Search(ctx, validInput())
	assert.NoError(t, err)
}

func TestSearch_LogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(logger.Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	ctrl := gomock.NewController(t)
	client := domain.NewMockFlightOffersClient(ctrl)
	client.EXPECT().Name().Return("amadeus").AnyTimes()
	client.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(domain.NewSearchResult([]domain.FlightOffer{sampleOffer()}), nil)

	uc := NewFlightSearchUseCase(client, &Config{Clock: timeutil.NewMockClock(fixedNow), Logger: log})
	_, err := uc.Search(context.Background(), validInput())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"Searching flight offers"`)
	assert.Contains(t, out, `"message":"Flight offers search completed"`)
	assert.Contains(t, out, `"provider":"amadeus"`)
	assert.Contains(t, out, `"total_results":1`)
}

func TestSearch_LogsWithRequestScopedLogger(t *testing.T) {
	var fallbackBuf, reqBuf bytes.Buffer
	fallback := logger.NewWithOutput(logger.Config{Level: "info", Format: "json"}, &fallbackBuf)
	reqLog := zerolog.New(&reqBuf).With().Str("request_id", "req-42").Logger()

	ctrl := gomock.NewController(t)
	client := domain.NewMockFlightOffersClient(ctrl)
	client.EXPECT().Name().Return("amadeus").AnyTimes()
	client.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(domain.SearchResult{}, domain.NewAPIError(400, "Invalid date"))

	uc := NewFlightSearchUseCase(client, &Config{Clock: timeutil.NewMockClock(fixedNow), Logger: fallback})
	_, err := uc.Search(reqLog.WithContext(context.Background()), validInput())
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(reqBuf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"message":"Searching flight offers"`)
	assert.Contains(t, lines[1], `"message":"Flight offers search failed"`)
	for _, line := range lines {
		assert.Contains(t, line, `"request_id":"req-42"`)
		assert.Contains(t, line, `"provider":"amadeus"`)
	}
	assert.Empty(t, fallbackBuf.String())
}
