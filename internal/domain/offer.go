package domain

// ItinerarySegment is a single flight leg of an itinerary.
type ItinerarySegment struct {
	// CarrierCode is the IATA airline code (e.g., "AA")
	CarrierCode string `json:"carrierCode"`

	// DepartureAirport is the IATA code of the departure airport
	DepartureAirport string `json:"departureAirport"`

	// DepartureAt is the local departure time as sent by the API (e.g., "2025-06-01T08:00:00")
	DepartureAt string `json:"departureAt"`

	// ArrivalAirport is the IATA code of the arrival airport
	ArrivalAirport string `json:"arrivalAirport"`

	// ArrivalAt is the local arrival time as sent by the API
	ArrivalAt string `json:"arrivalAt"`
}

// FlightOffer is a priced offer, reduced to its first itinerary.
type FlightOffer struct {
	// TotalPrice is the decimal total exactly as the API sent it (e.g., "450.00")
	TotalPrice string `json:"totalPrice"`

	// Currency is the ISO 4217 code of TotalPrice
	Currency string `json:"currency,omitempty"`

	// Duration is the ISO-8601 duration of the first itinerary (e.g., "PT5H30M")
	Duration string `json:"duration"`

	// Segments are the legs of the first itinerary, in flight order
	Segments []ItinerarySegment `json:"segments"`
}

// SearchResult is the ordered list of offers from one search.
// Offers keep the order the API returned them in.
type SearchResult struct {
	Offers []FlightOffer `json:"offers"`
}

// NewSearchResult wraps offers in a SearchResult. A nil slice becomes empty.
func NewSearchResult(offers []FlightOffer) SearchResult {
	if offers == nil {
		offers = []FlightOffer{}
	}
	return SearchResult{Offers: offers}
}

// IsEmpty reports whether the search matched nothing.
func (r SearchResult) IsEmpty() bool {
	return len(r.Offers) == 0
}

// Len returns the number of offers.
func (r SearchResult) Len() int {
	return len(r.Offers)
}
