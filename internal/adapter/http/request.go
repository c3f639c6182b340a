package http

import (
	"github.com/skylinesaver/flight-price-optimizer/internal/domain"
)

// SearchFlightsRequest is the flight search form. It is read from the JSON
// body on POST and from query parameters on GET.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin" query:"origin" validate:"required" example:"JFK"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination" query:"destination" validate:"required" example:"LAX"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" query:"departureDate" validate:"required,datetime=2006-01-02" example:"2025-06-01"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty" query:"returnDate" validate:"omitempty,datetime=2006-01-02" example:"2025-06-10"`

	// MaxPrice is the price ceiling per offer (default 1000)
	MaxPrice *int `json:"maxPrice,omitempty" query:"maxPrice" example:"1000"`

	// Passengers is the number of adults (default 1)
	Passengers *int `json:"passengers,omitempty" query:"passengers" example:"1"`
}

// ApplyDefaults fills unset optional fields.
func (r *SearchFlightsRequest) ApplyDefaults() {
	if r.MaxPrice == nil {
		v := domain.DefaultMaxPrice
		r.MaxPrice = &v
	}
	if r.Passengers == nil {
		v := domain.DefaultPassengers
		r.Passengers = &v
	}
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds every field-level failure of one request.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add appends a failure for field.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a field -> message map.
// The first message wins when a field fails more than once.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, seen := result[e.Field]; !seen {
			result[e.Field] = e.Message
		}
	}
	return result
}
