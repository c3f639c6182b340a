package domain

// SearchResponse is the outcome of one successful search, ready to render.
type SearchResponse struct {
	// SearchCriteria contains the normalized search parameters
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Result holds the offers in API order
	Result SearchResult `json:"result"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the total number of offers returned
	TotalResults int `json:"total_results"`

	// Provider names the flight offers API that answered
	Provider string `json:"provider"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResponse creates a SearchResponse with TotalResults derived from the result.
func NewSearchResponse(criteria SearchCriteria, result SearchResult, metadata SearchMetadata) *SearchResponse {
	result = NewSearchResult(result.Offers)
	metadata.TotalResults = result.Len()

	return &SearchResponse{
		SearchCriteria: criteria,
		Metadata:       metadata,
		Result:         result,
	}
}
