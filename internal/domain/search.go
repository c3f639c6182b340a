// Package domain contains the core business entities and rules for the flight search system.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Search parameter bounds.
const (
	MinMaxPrice   = 50
	MaxMaxPrice   = 5000
	MinPassengers = 1
	MaxPassengers = 10

	// DefaultMaxPrice and DefaultPassengers are applied when the caller leaves the field unset.
	DefaultMaxPrice   = 1000
	DefaultPassengers = 1
)

// SearchInput holds the raw, unvalidated search form fields.
type SearchInput struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
	MaxPrice      int
	Passengers    int
}

// SearchCriteria defines the validated parameters for a flight search request.
// Values of this type are only produced by Validate.
type SearchCriteria struct {
	// Origin is the uppercase IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the uppercase IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`

	// DepartureDate is the outbound calendar date (UTC midnight)
	DepartureDate time.Time `json:"departureDate"`

	// ReturnDate is the optional inbound calendar date (UTC midnight)
	ReturnDate *time.Time `json:"returnDate,omitempty"`

	// MaxPrice is the price ceiling per offer, in whole currency units
	MaxPrice int `json:"maxPrice"`

	// Passengers is the number of adult travellers
	Passengers int `json:"passengers"`
}

// HasReturn reports whether the search is for a round trip.
func (s SearchCriteria) HasReturn() bool {
	return s.ReturnDate != nil
}

// DepartureDateString returns the departure date formatted as YYYY-MM-DD.
func (s SearchCriteria) DepartureDateString() string {
	return s.DepartureDate.Format(DateLayout)
}

// ReturnDateString returns the return date formatted as YYYY-MM-DD, or "" for one-way searches.
func (s SearchCriteria) ReturnDateString() string {
	if s.ReturnDate == nil {
		return ""
	}
	return s.ReturnDate.Format(DateLayout)
}

// airportCodeRegex matches a 3-letter airport code in any case.
var airportCodeRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Validate checks raw search input and returns normalized criteria.
// today is the caller's current calendar day; only its date part is used.
// The first failing check is reported as a *ValidationError.
func Validate(in SearchInput, today time.Time) (SearchCriteria, error) {
	origin, ok := normalizeAirportCode(in.Origin)
	if !ok {
		return SearchCriteria{}, NewValidationError(ErrInvalidOriginCode, "origin",
			"origin must be a valid 3-letter IATA airport code")
	}

	destination, ok := normalizeAirportCode(in.Destination)
	if !ok {
		return SearchCriteria{}, NewValidationError(ErrInvalidDestinationCode, "destination",
			"destination must be a valid 3-letter IATA airport code")
	}

	departure := calendarDate(in.DepartureDate)
	if departure.Before(calendarDate(today)) {
		return SearchCriteria{}, NewValidationError(ErrInvalidDateRange, "departureDate",
			"departureDate cannot be in the past")
	}

	var returnDate *time.Time
	if in.ReturnDate != nil {
		ret := calendarDate(*in.ReturnDate)
		if ret.Before(departure) {
			return SearchCriteria{}, NewValidationError(ErrInvalidDateRange, "returnDate",
				"returnDate cannot be before departureDate")
		}
		returnDate = &ret
	}

	if in.MaxPrice < MinMaxPrice || in.MaxPrice > MaxMaxPrice {
		return SearchCriteria{}, NewValidationError(ErrInvalidMaxPrice, "maxPrice",
			"maxPrice must be between 50 and 5000")
	}

	if in.Passengers < MinPassengers || in.Passengers > MaxPassengers {
		return SearchCriteria{}, NewValidationError(ErrInvalidPassengerCount, "passengers",
			"passengers must be between 1 and 10")
	}

	return SearchCriteria{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		MaxPrice:      in.MaxPrice,
		Passengers:    in.Passengers,
	}, nil
}

func normalizeAirportCode(code string) (string, bool) {
	if !airportCodeRegex.MatchString(code) {
		return "", false
	}
	return strings.ToUpper(code), true
}

// calendarDate strips the clock from t, keeping the date as seen in t's own location.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
