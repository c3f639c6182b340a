// Package usecase contains the business logic for flight search operations.
// A search validates the raw input against today's date and then issues
// exactly one request to the flight offers API.
package usecase

import (
	"context"
	"time"

	"github.com/skylinesaver/flight-price-optimizer/internal/domain"
	"github.com/skylinesaver/flight-price-optimizer/internal/infrastructure/logger"
	"github.com/skylinesaver/flight-price-optimizer/internal/infrastructure/timeutil"
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search validates the input and, if valid, queries the flight offers API once.
	// Validation failures are returned as *domain.ValidationError and the API is not called.
	Search(ctx context.Context, in domain.SearchInput) (*domain.SearchResponse, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// Clock supplies the current time; defaults to the system clock.
	Clock timeutil.Clock

	// Location defines which calendar day counts as "today"; defaults to UTC.
	Location *time.Location

	// Logger defaults to a no-op logger.
	Logger *logger.Logger
}

type flightSearchUseCase struct {
	client   domain.FlightOffersClient
	clock    timeutil.Clock
	location *time.Location
	log      *logger.Logger
}

// NewFlightSearchUseCase creates a new FlightSearchUseCase backed by client.
// If config is nil, defaults are used.
func NewFlightSearchUseCase(client domain.FlightOffersClient, config *Config) FlightSearchUseCase {
	uc := &flightSearchUseCase{
		client:   client,
		clock:    timeutil.NewRealClock(),
		location: time.UTC,
		log:      logger.Nop(),
	}

	if config != nil {
		if config.Clock != nil {
			uc.clock = config.Clock
		}
		if config.Location != nil {
			uc.location = config.Location
		}
		if config.Logger != nil {
			uc.log = config.Logger
		}
	}

	return uc
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, in domain.SearchInput) (*domain.SearchResponse, error) {
	startTime := uc.clock.Now()
	today := timeutil.Today(uc.clock, uc.location)

	reqLog := logger.FromContext(ctx, uc.log)

	criteria, err := domain.Validate(in, today)
	if err != nil {
		reqLog.Debug().Err(err).Msg("Search input rejected")
		return nil, err
	}

	log := reqLog.WithProvider(uc.client.Name())
	log.Info().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Str("departure_date", criteria.DepartureDateString()).
		Str("return_date", criteria.ReturnDateString()).
		Int("passengers", criteria.Passengers).
		Int("max_price", criteria.MaxPrice).
		Msg("Searching flight offers")

	result, err := uc.client.Search(ctx, criteria)
	if err != nil {
		log.Error().Err(err).Msg("Flight offers search failed")
		return nil, err
	}

	elapsed := uc.clock.Now().Sub(startTime)
	log.Info().
		Int("total_results", result.Len()).
		Int64("duration_ms", elapsed.Milliseconds()).
		Msg("Flight offers search completed")

	return domain.NewSearchResponse(criteria, result, domain.SearchMetadata{
		Provider:     uc.client.Name(),
		SearchTimeMs: elapsed.Milliseconds(),
	}), nil
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
