package match

import (
	"slices"
	"strings"

	"freight-quotation-service/internal/domain"
)

const (
	fuzzyWeight    = 0.7
	semanticWeight = 0.3

	// DefaultThreshold is the minimum combined score a location must
	// reach to be considered a match.
	DefaultThreshold = 0.6
)

// LocationMatcher resolves free-text location queries against the known
// location names of a dataset. It is stateless and safe for concurrent use.
type LocationMatcher struct {
	Threshold float64
}

func NewLocationMatcher(threshold float64) *LocationMatcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &LocationMatcher{Threshold: threshold}
}

// Match scores every location against the query and returns all
// candidates at or above the threshold, sorted by descending score.
//
// This is a multi-match policy: every surviving location is equally
// eligible downstream, favoring recall over picking a single winner.
// An empty query or location set yields an empty result.
func (m *LocationMatcher) Match(query string, locations []string) []domain.MatchCandidate {
	if strings.TrimSpace(query) == "" || len(locations) == 0 {
		return []domain.MatchCandidate{}
	}

	semantic := ScoreAll(query, locations)

	results := make([]domain.MatchCandidate, 0, len(locations))
	for i, loc := range locations {
		score := fuzzyWeight*FuzzyScore(query, loc) + semanticWeight*semantic[i]
		if score >= m.Threshold {
			results = append(results, domain.MatchCandidate{Location: loc, Score: score})
		}
	}

	// Tie-breaker ensures deterministic ordering when scores are equal.
	slices.SortFunc(results, func(a, b domain.MatchCandidate) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return strings.Compare(a.Location, b.Location)
	})

	return results
}
