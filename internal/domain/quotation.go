package domain

// Result of a quotation search.
//
// BestRate is the row with the maximum rate among the filtered matches
// (first such row wins ties); OtherRates holds the remaining rows in
// filter order. TotalFound counts all surfaced rows, so
// TotalFound == len(OtherRates) + 1 whenever BestRate is non-nil.
type SearchResult struct {
	BestRate   *RouteRecord
	OtherRates []RouteRecord
	TotalFound int
}

// EmptySearchResult is the well-defined "no match" shape: callers never
// receive a nil OtherRates slice.
func EmptySearchResult() SearchResult {
	return SearchResult{BestRate: nil, OtherRates: []RouteRecord{}, TotalFound: 0}
}
