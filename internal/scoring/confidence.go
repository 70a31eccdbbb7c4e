package scoring

// Level is the coarse confidence rating attached to a Snapshot.
type Level string

const (
	High   Level = "HIGH"
	Medium Level = "MEDIUM"
	Low    Level = "LOW"
)

// Confidence cutoffs on the combined 0-1 score.
const (
	highCutoff   = 0.66
	mediumCutoff = 0.40
)

// confidenceScore combines evidence volume (scored answers over the question
// budget) and top-domain margin, both normalized to 0-1 and averaged. With
// fewer than two evidenced domains the margin term contributes nothing: a
// single data point is never decisive, however high it scores.
func confidenceScore(scored, maxQuestions int, topMargin float64, evidencedDomains int) float64 {
	if scored == 0 {
		return 0
	}

	budget := maxQuestions
	if budget < 1 {
		budget = 1
	}
	volume := float64(scored) / float64(budget)
	if volume > 1 {
		volume = 1
	}

	margin := 0.0
	if evidencedDomains >= 2 {
		margin = topMargin / 100
		if margin > 1 {
			margin = 1
		}
	}

	return (volume + margin) / 2
}

// LevelForScore maps a combined confidence score to its level.
func LevelForScore(score float64) Level {
	switch {
	case score >= highCutoff:
		return High
	case score >= mediumCutoff:
		return Medium
	default:
		return Low
	}
}
