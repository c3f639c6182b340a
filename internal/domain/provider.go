package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// FlightOffersClient is the outbound flight offers API.
// Implementations send exactly one request per Search call and never retry.
type FlightOffersClient interface {
	// Name returns the identifier of the upstream API.
	Name() string

	// Search returns the offers matching criteria in upstream order.
	// Failures are *APIError, *ClassificationFailure or *TransportError.
	Search(ctx context.Context, criteria SearchCriteria) (SearchResult, error)
}
