// Package scoring converts raw answers into normalized per-domain scores
// and an overall confidence rating. Everything here is a pure function of
// its inputs: same answers, same snapshot, always.
package scoring

import (
	"sort"

	"github.com/dishalabs/disha/internal/riasec"
)

// Input is one scored answer, resolved against the session's bank version.
// Open-ended answers carry no numeric evidence and must not be passed here.
type Input struct {
	QuestionID    string
	Domains       []riasec.Domain
	Weight        float64
	ReverseScored bool

	// RawValue is the selected option's scale point; ScaleMin/ScaleMax is
	// the question's known value range.
	RawValue int
	ScaleMin int
	ScaleMax int
}

// DomainScore is the per-domain aggregate.
type DomainScore struct {
	RawSum    float64 `json:"raw_sum"`
	RawWeight float64 `json:"raw_weight"`
	Score     float64 `json:"score"` // 0-100
}

// Snapshot is the full scoring output for a session at a point in time.
type Snapshot struct {
	// Domains holds aggregates for domains with evidence only. A domain
	// never asked about is absent, not zero: untested is not neutral.
	Domains map[riasec.Domain]DomainScore

	// TopDomains is the leading one or two domains; two when their scores
	// are within ClosenessThreshold of each other.
	TopDomains []riasec.Domain

	// TopMargin is score(1st) - score(2nd), or 0 when fewer than two
	// domains carry evidence.
	TopMargin float64

	ConfidenceLevel Level
	ConfidenceScore float64

	// ScoredAnswers is the number of answers that contributed evidence.
	ScoredAnswers int
}

// ClosenessThreshold is the score gap (in 0-100 points) within which the
// runner-up domain is also reported as a top domain. At most two domains
// are ever reported.
const ClosenessThreshold = 10.0

// ComputeSnapshot aggregates the given answers into a Snapshot.
// maxQuestions is the session's question budget, used to normalize evidence
// volume for the confidence rating. The function is total: an empty input
// set yields an empty domain map with LOW confidence.
func ComputeSnapshot(inputs []Input, maxQuestions int) Snapshot {
	domains := make(map[riasec.Domain]DomainScore)

	for _, in := range inputs {
		n := normalize(in.RawValue, in.ScaleMin, in.ScaleMax)
		if in.ReverseScored {
			n = 1 - n
		}
		w := in.Weight
		if w <= 0 {
			w = 1
		}
		// A multi-tag question contributes fully to each domain.
		for _, d := range in.Domains {
			ds := domains[d]
			ds.RawSum += n * w
			ds.RawWeight += w
			domains[d] = ds
		}
	}

	for d, ds := range domains {
		ds.Score = 100 * ds.RawSum / ds.RawWeight
		domains[d] = ds
	}

	ranked := rankDomains(domains)

	snap := Snapshot{
		Domains:       domains,
		ScoredAnswers: len(inputs),
	}

	if len(ranked) > 0 {
		snap.TopDomains = []riasec.Domain{ranked[0]}
	}
	if len(ranked) > 1 {
		snap.TopMargin = domains[ranked[0]].Score - domains[ranked[1]].Score
		if snap.TopMargin <= ClosenessThreshold {
			snap.TopDomains = append(snap.TopDomains, ranked[1])
		}
	}

	snap.ConfidenceScore = confidenceScore(len(inputs), maxQuestions, snap.TopMargin, len(ranked))
	snap.ConfidenceLevel = LevelForScore(snap.ConfidenceScore)

	return snap
}

// normalize maps a raw scale point to a 0-1 fit strength. Out-of-range
// values are clamped; a degenerate zero-span range reads as neutral.
func normalize(raw, min, max int) float64 {
	if max <= min {
		return 0.5
	}
	if raw < min {
		raw = min
	}
	if raw > max {
		raw = max
	}
	return float64(raw-min) / float64(max-min)
}

// rankDomains orders evidenced domains by score descending, ties broken by
// total accumulated weight (more evidence wins), then by the fixed domain
// alphabet for full determinism.
func rankDomains(domains map[riasec.Domain]DomainScore) []riasec.Domain {
	out := make([]riasec.Domain, 0, len(domains))
	for d := range domains {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := domains[out[i]], domains[out[j]]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.RawWeight != b.RawWeight {
			return a.RawWeight > b.RawWeight
		}
		return out[i].Rank() < out[j].Rank()
	})
	return out
}
