package http

import (
	"fmt"

	"github.com/skylinesaver/flight-price-optimizer/internal/domain"
)

// Result messages shown alongside the offers.
const (
	MsgNoFlightsFound = "No flights found for the selected criteria."
	msgFlightsFound   = "Found %d flights!"
)

// SearchResponseDTO is the body of a successful search.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Message        string            `json:"message" example:"Found 1 flights!"`
	TotalResults   int               `json:"total_results" example:"1"`
	Metadata       MetadataDTO       `json:"metadata"`
	Offers         []OfferDTO        `json:"offers"`
}

// SearchCriteriaDTO echoes the normalized criteria.
type SearchCriteriaDTO struct {
	Origin        string `json:"origin" example:"JFK"`
	Destination   string `json:"destination" example:"LAX"`
	DepartureDate string `json:"departure_date" example:"2025-06-01"`
	ReturnDate    string `json:"return_date,omitempty" example:"2025-06-10"`
	MaxPrice      int    `json:"max_price" example:"1000"`
	Passengers    int    `json:"passengers" example:"1"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	Provider     string `json:"provider" example:"amadeus"`
	SearchTimeMs int64  `json:"search_time_ms" example:"412"`
}

// OfferDTO is one flight offer.
type OfferDTO struct {
	Price             string       `json:"price" example:"450.00"`
	Currency          string       `json:"currency" example:"USD"`
	Duration          string       `json:"duration" example:"PT5H30M"`
	DurationFormatted string       `json:"duration_formatted" example:"5h 30m"`
	Segments          []SegmentDTO `json:"segments"`
}

// SegmentDTO is one flight leg.
type SegmentDTO struct {
	CarrierCode      string `json:"carrier_code" example:"AA"`
	DepartureAirport string `json:"departure_airport" example:"JFK"`
	DepartureAt      string `json:"departure_at" example:"2025-06-01T08:00:00"`
	ArrivalAirport   string `json:"arrival_airport" example:"LAX"`
	ArrivalAt        string `json:"arrival_at" example:"2025-06-01T11:30:00"`
}

// ToSearchResponseDTO converts a domain SearchResponse to its wire form.
func ToSearchResponseDTO(resp *domain.SearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	c := resp.SearchCriteria
	dto := &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:        c.Origin,
			Destination:   c.Destination,
			DepartureDate: c.DepartureDateString(),
			ReturnDate:    c.ReturnDateString(),
			MaxPrice:      c.MaxPrice,
			Passengers:    c.Passengers,
		},
		Message:      resultMessage(resp.Result.Len()),
		TotalResults: resp.Result.Len(),
		Metadata: MetadataDTO{
			Provider:     resp.Metadata.Provider,
			SearchTimeMs: resp.Metadata.SearchTimeMs,
		},
		Offers: make([]OfferDTO, len(resp.Result.Offers)),
	}

	for i := range resp.Result.Offers {
		dto.Offers[i] = ToOfferDTO(&resp.Result.Offers[i])
	}

	return dto
}

// ToOfferDTO converts a domain FlightOffer. Price and duration are passed
// through verbatim; duration_formatted falls back to the raw value when the
// duration is not ISO-8601.
func ToOfferDTO(o *domain.FlightOffer) OfferDTO {
	formatted := o.Duration
	if d, err := domain.ParseISODuration(o.Duration); err == nil {
		formatted = d.Formatted
	}

	segments := make([]SegmentDTO, len(o.Segments))
	for i, s := range o.Segments {
		segments[i] = SegmentDTO{
			CarrierCode:      s.CarrierCode,
			DepartureAirport: s.DepartureAirport,
			DepartureAt:      s.DepartureAt,
			ArrivalAirport:   s.ArrivalAirport,
			ArrivalAt:        s.ArrivalAt,
		}
	}

	return OfferDTO{
		Price:             o.TotalPrice,
		Currency:          o.Currency,
		Duration:          o.Duration,
		DurationFormatted: formatted,
		Segments:          segments,
	}
}

func resultMessage(n int) string {
	if n == 0 {
		return MsgNoFlightsFound
	}
	return fmt.Sprintf(msgFlightsFound, n)
}
