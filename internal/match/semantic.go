package match

import (
	"math"
	"regexp"
	"strings"
)

// Tokens need at least two word characters; single letters carry no
// signal in location names.
var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// ScoreAll returns one TF-IDF cosine similarity per candidate,
// order-preserving and the same length as candidates.
//
// The vector space (unigrams and bigrams, English stop-words removed,
// smoothed idf, l2-normalized) is rebuilt from the query plus the
// non-empty normalized candidates on every call. Scores are therefore
// relative to this call's corpus and are not comparable across calls.
// Empty candidates score 0.0 and do not participate in the corpus.
func ScoreAll(query string, candidates []string) []float64 {
	scores := make([]float64, len(candidates))
	if len(candidates) == 0 {
		return scores
	}

	normalized := make([]string, len(candidates))
	corpus := []string{Normalize(query)}
	for i, c := range candidates {
		normalized[i] = Normalize(c)
		if normalized[i] != "" {
			corpus = append(corpus, normalized[i])
		}
	}
	if len(corpus) == 1 {
		return scores
	}

	frequencies := make([]map[string]float64, len(corpus))
	docCount := map[string]int{}
	for i, doc := range corpus {
		tf := map[string]float64{}
		for _, term := range terms(doc) {
			tf[term]++
		}
		frequencies[i] = tf
		for term := range tf {
			docCount[term]++
		}
	}
	if len(docCount) == 0 {
		return scores
	}

	// Smoothed idf: ln((1+N)/(1+df)) + 1.
	n := float64(len(corpus))
	idf := make(map[string]float64, len(docCount))
	for term, df := range docCount {
		idf[term] = math.Log((1+n)/(1+float64(df))) + 1
	}

	vectors := make([]map[string]float64, len(frequencies))
	for i, tf := range frequencies {
		vectors[i] = unitVector(tf, idf)
	}

	queryVec := vectors[0]
	next := 1
	for i := range candidates {
		if normalized[i] == "" {
			continue
		}
		scores[i] = dot(queryVec, vectors[next])
		next++
	}
	return scores
}

// terms produces lower-cased unigrams and bigrams with stop-words removed.
func terms(doc string) []string {
	tokens := tokenRe.FindAllString(strings.ToLower(doc), -1)
	kept := tokens[:0]
	for _, t := range tokens {
		if !stopWords[t] {
			kept = append(kept, t)
		}
	}

	out := make([]string, 0, 2*len(kept))
	out = append(out, kept...)
	for i := 0; i+1 < len(kept); i++ {
		out = append(out, kept[i]+" "+kept[i+1])
	}
	return out
}

func unitVector(tf map[string]float64, idf map[string]float64) map[string]float64 {
	v := make(map[string]float64, len(tf))
	var sumSquares float64
	for term, count := range tf {
		w := count * idf[term]
		v[term] = w
		sumSquares += w * w
	}
	if sumSquares > 0 {
		length := math.Sqrt(sumSquares)
		for term := range v {
			v[term] /= length
		}
	}
	return v
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}
