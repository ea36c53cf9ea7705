package domain

// Distinct non-empty location names derived from the current dataset.
// Recomputed on every cache refresh, never persisted on its own.
type LocationSet struct {
	Origins      []string
	Destinations []string
	All          []string
}

// A candidate location produced by the matcher together with its
// combined similarity score in [0,1].
type MatchCandidate struct {
	Location string
	Score    float64
}
