package amadeus

// offersResponse is the success envelope of GET /v2/shopping/flight-offers.
type offersResponse struct {
	Meta *responseMeta `json:"meta,omitempty"`
	Data []flightOffer `json:"data"`
}

type responseMeta struct {
	Count int `json:"count"`
}

// flightOffer is one priced offer. Only the fields the service renders are mapped.
type flightOffer struct {
	ID          string      `json:"id"`
	Itineraries []itinerary `json:"itineraries"`
	Price       offerPrice  `json:"price"`
}

type itinerary struct {
	Duration string    `json:"duration"`
	Segments []segment `json:"segments"`
}

type segment struct {
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Departure   endpoint `json:"departure"`
	Arrival     endpoint `json:"arrival"`
}

type endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type offerPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal,omitempty"`
}
