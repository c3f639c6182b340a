package http

import (
	"time"

	"github.com/skylinesaver/flight-price-optimizer/internal/domain"
)

// ToSearchInput converts a request to domain.SearchInput. The request must
// have passed format validation and had defaults applied; unparseable dates
// are reported as *ValidationErrors.
func ToSearchInput(req *SearchFlightsRequest) (domain.SearchInput, error) {
	errs := &ValidationErrors{}

	in := domain.SearchInput{
		Origin:      req.Origin,
		Destination: req.Destination,
		MaxPrice:    derefOr(req.MaxPrice, domain.DefaultMaxPrice),
		Passengers:  derefOr(req.Passengers, domain.DefaultPassengers),
	}

	dep, err := time.Parse(domain.DateLayout, req.DepartureDate)
	if err != nil {
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
	}
	in.DepartureDate = dep

	if req.ReturnDate != "" {
		ret, err := time.Parse(domain.DateLayout, req.ReturnDate)
		if err != nil {
			errs.Add("returnDate", "returnDate must be in YYYY-MM-DD format")
		} else {
			in.ReturnDate = &ret
		}
	}

	if errs.HasErrors() {
		return domain.SearchInput{}, errs
	}
	return in, nil
}

func derefOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
