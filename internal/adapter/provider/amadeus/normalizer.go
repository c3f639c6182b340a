package amadeus

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/skylinesaver/flight-price-optimizer/internal/domain"
)

var errNoItinerary = errors.New("offer has no itineraries")

// normalize converts API offers to domain offers, keeping API order.
func normalize(offers []flightOffer, log zerolog.Logger) domain.SearchResult {
	result := make([]domain.FlightOffer, 0, len(offers))

	for i, o := range offers {
		normalized, err := normalizeOffer(o)
		if err != nil {
			log.Warn().
				Err(err).
				Int("index", i).
				Str("offer_id", o.ID).
				Msg("Skipping offer that cannot be normalized")
			continue
		}
		result = append(result, normalized)
	}

	return domain.NewSearchResult(result)
}

// normalizeOffer converts a single offer, reading only its first itinerary.
func normalizeOffer(o flightOffer) (domain.FlightOffer, error) {
	if len(o.Itineraries) == 0 {
		return domain.FlightOffer{}, errNoItinerary
	}
	first := o.Itineraries[0]

	segments := make([]domain.ItinerarySegment, 0, len(first.Segments))
	for _, s := range first.Segments {
		segments = append(segments, domain.ItinerarySegment{
			CarrierCode:      s.CarrierCode,
			DepartureAirport: s.Departure.IATACode,
			DepartureAt:      s.Departure.At,
			ArrivalAirport:   s.Arrival.IATACode,
			ArrivalAt:        s.Arrival.At,
		})
	}

	return domain.FlightOffer{
		TotalPrice: o.Price.Total,
		Currency:   o.Price.Currency,
		Duration:   first.Duration,
		Segments:   segments,
	}, nil
}
