package services

import (
	"context"
	"log"
	"strings"

	"freight-quotation-service/internal/dataset"
	"freight-quotation-service/internal/domain"
	"freight-quotation-service/internal/match"
	"freight-quotation-service/internal/ports"
)

const (
	// DefaultMaxResults bounds a search result unless the caller asks
	// for effectively everything.
	DefaultMaxResults = 10

	// Requests at or above this size disable the result cap.
	uncappedThreshold = 10000
)

type SearchRequest struct {
	Origin      string
	Destination string
	VehicleType string // optional, case-insensitive equality
	MaxResults  int    // <= 0 selects DefaultMaxResults
}

// SearchQuotations resolves the request's free-text locations against
// the current dataset and returns the matching rate rows.
//
// The headline BestRate is the row with the maximum rate (first row in
// filter order wins ties); the remaining rows keep their filter order.
// Failures never escape: no matches, an empty dataset or an unavailable
// upstream all produce the well-defined empty result.
func SearchQuotations(
	ctx context.Context,
	req SearchRequest,
	provider ports.DatasetProvider,
	matcher *match.LocationMatcher,
) domain.SearchResult {
	records := provider.Current(ctx)
	if len(records) == 0 {
		return domain.EmptySearchResult()
	}

	originMatches := matcher.Match(req.Origin, dataset.Origins(records))
	destinationMatches := matcher.Match(req.Destination, dataset.Areas(records))

	if len(originMatches) == 0 && len(destinationMatches) == 0 {
		log.Printf("op=search msg=\"no location matches\" from=%q to=%q", req.Origin, req.Destination)
		return domain.EmptySearchResult()
	}

	// A side with no matches skips its filter entirely: any plausible
	// match on the other side is still surfaced.
	matchedOrigins := candidateSet(originMatches)
	matchedAreas := candidateSet(destinationMatches)

	filtered := make([]domain.RouteRecord, 0, len(records))
	for _, r := range records {
		if matchedOrigins != nil {
			if _, ok := matchedOrigins[r.Origin]; !ok {
				continue
			}
		}
		if matchedAreas != nil {
			if _, ok := matchedAreas[r.Area]; !ok {
				continue
			}
		}
		if req.VehicleType != "" && !strings.EqualFold(r.VehicleType, req.VehicleType) {
			continue
		}
		filtered = append(filtered, r)
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults < uncappedThreshold && len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}

	kept := filtered[:0:len(filtered)]
	for _, r := range filtered {
		if r.Rate > 0 {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return domain.EmptySearchResult()
	}

	best := 0
	for i, r := range kept {
		if r.Rate > kept[best].Rate {
			best = i
		}
	}

	others := make([]domain.RouteRecord, 0, len(kept)-1)
	others = append(others, kept[:best]...)
	others = append(others, kept[best+1:]...)

	bestRate := kept[best]
	return domain.SearchResult{
		BestRate:   &bestRate,
		OtherRates: others,
		TotalFound: len(kept),
	}
}

func candidateSet(matches []domain.MatchCandidate) map[string]struct{} {
	if len(matches) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		set[m.Location] = struct{}{}
	}
	return set
}
