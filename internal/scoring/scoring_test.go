package scoring

import (
	"math"
	"testing"

	"github.com/dishalabs/disha/internal/riasec"
)

func likertInput(id string, d riasec.Domain, raw int, reverse bool, weight float64) Input {
	return Input{
		QuestionID:    id,
		Domains:       []riasec.Domain{d},
		Weight:        weight,
		ReverseScored: reverse,
		RawValue:      raw,
		ScaleMin:      1,
		ScaleMax:      5,
	}
}

func TestEmptyAnswersIsLowNotError(t *testing.T) {
	snap := ComputeSnapshot(nil, 20)
	if len(snap.Domains) != 0 {
		t.Errorf("domains = %v, want empty", snap.Domains)
	}
	if snap.ConfidenceLevel != Low {
		t.Errorf("confidence = %s, want LOW", snap.ConfidenceLevel)
	}
	if snap.ConfidenceScore != 0 {
		t.Errorf("confidence score = %f, want 0", snap.ConfidenceScore)
	}
	if len(snap.TopDomains) != 0 {
		t.Errorf("top domains = %v, want none", snap.TopDomains)
	}
}

func TestMaxOptionScoresHundred(t *testing.T) {
	snap := ComputeSnapshot([]Input{likertInput("r-01", riasec.Realistic, 5, false, 1)}, 20)

	ds, ok := snap.Domains[riasec.Realistic]
	if !ok {
		t.Fatal("domain R missing")
	}
	if ds.Score != 100 {
		t.Errorf("score = %f, want 100", ds.Score)
	}
	if len(snap.TopDomains) != 1 || snap.TopDomains[0] != riasec.Realistic {
		t.Errorf("top domains = %v, want [R]", snap.TopDomains)
	}
	// A single data point is LOW confidence regardless of score.
	if snap.ConfidenceLevel != Low {
		t.Errorf("confidence = %s, want LOW", snap.ConfidenceLevel)
	}
}

func TestMinOptionScoresZero(t *testing.T) {
	snap := ComputeSnapshot([]Input{likertInput("r-01", riasec.Realistic, 1, false, 1)}, 20)
	if got := snap.Domains[riasec.Realistic].Score; got != 0 {
		t.Errorf("score = %f, want 0", got)
	}
}

func TestReverseScoringInverts(t *testing.T) {
	for raw := 1; raw <= 5; raw++ {
		plain := ComputeSnapshot([]Input{likertInput("q", riasec.Social, raw, false, 1)}, 20)
		reversed := ComputeSnapshot([]Input{likertInput("q", riasec.Social, raw, true, 1)}, 20)
		p := plain.Domains[riasec.Social].Score
		r := reversed.Domains[riasec.Social].Score
		if math.Abs((p+r)-100) > 1e-9 {
			t.Errorf("raw %d: plain %f + reversed %f != 100", raw, p, r)
		}
	}
}

func TestMultiTagContributesToEachDomain(t *testing.T) {
	in := Input{
		QuestionID: "sc-01",
		Domains:    []riasec.Domain{riasec.Realistic, riasec.Investigative},
		Weight:     2,
		RawValue:   5,
		ScaleMin:   1,
		ScaleMax:   5,
	}
	snap := ComputeSnapshot([]Input{in}, 20)
	for _, d := range []riasec.Domain{riasec.Realistic, riasec.Investigative} {
		ds := snap.Domains[d]
		if ds.RawWeight != 2 || ds.Score != 100 {
			t.Errorf("%s: weight %f score %f, want 2 and 100", d, ds.RawWeight, ds.Score)
		}
	}
}

func TestUntestedDomainsOmitted(t *testing.T) {
	snap := ComputeSnapshot([]Input{likertInput("q", riasec.Artistic, 3, false, 1)}, 20)
	if _, ok := snap.Domains[riasec.Realistic]; ok {
		t.Error("untested domain should be omitted, not zero-filled")
	}
	if len(snap.Domains) != 1 {
		t.Errorf("domains = %v, want only A", snap.Domains)
	}
}

func TestTieBreakByWeightThenAlphabet(t *testing.T) {
	// E and C both score 100; C has more accumulated weight, so C leads.
	snap := ComputeSnapshot([]Input{
		likertInput("e-01", riasec.Enterprising, 5, false, 1),
		likertInput("c-01", riasec.Conventional, 5, false, 2),
	}, 20)
	if snap.TopDomains[0] != riasec.Conventional {
		t.Errorf("top = %v, want C first (more evidence)", snap.TopDomains)
	}

	// Identical score and weight: fixed alphabet order decides. E precedes C.
	snap = ComputeSnapshot([]Input{
		likertInput("c-01", riasec.Conventional, 5, false, 1),
		likertInput("e-01", riasec.Enterprising, 5, false, 1),
	}, 20)
	if snap.TopDomains[0] != riasec.Enterprising {
		t.Errorf("top = %v, want E first (alphabet order)", snap.TopDomains)
	}
}

func TestCloseSecondDomainIncluded(t *testing.T) {
	snap := ComputeSnapshot([]Input{
		likertInput("i-01", riasec.Investigative, 5, false, 1), // 100
		likertInput("r-01", riasec.Realistic, 5, false, 1),     // 100
		likertInput("r-02", riasec.Realistic, 4, false, 1),     // pulls R to 87.5
	}, 20)

	if len(snap.TopDomains) != 2 {
		t.Fatalf("top domains = %v, want two (margin %f within threshold)", snap.TopDomains, snap.TopMargin)
	}
	if snap.TopDomains[0] != riasec.Investigative || snap.TopDomains[1] != riasec.Realistic {
		t.Errorf("top domains = %v, want [I R]", snap.TopDomains)
	}
	if math.Abs(snap.TopMargin-12.5) > 1e-9 {
		// (100) - (0.875*100 = 87.5) = 12.5 — outside the 10-point threshold.
		t.Errorf("margin = %f, want 12.5", snap.TopMargin)
	}
}

func TestDistantSecondDomainExcluded(t *testing.T) {
	snap := ComputeSnapshot([]Input{
		likertInput("i-01", riasec.Investigative, 5, false, 1), // 100
		likertInput("a-01", riasec.Artistic, 2, false, 1),      // 25
	}, 20)
	if len(snap.TopDomains) != 1 {
		t.Errorf("top domains = %v, want only I", snap.TopDomains)
	}
	if snap.TopMargin != 75 {
		t.Errorf("margin = %f, want 75", snap.TopMargin)
	}
}

func TestCloseMarginBoundary(t *testing.T) {
	// Margin exactly at the threshold still counts as a mixed profile.
	snap := ComputeSnapshot([]Input{
		likertInput("i-01", riasec.Investigative, 5, false, 1),  // 100
		likertInput("s-01", riasec.Social, 5, false, 9),
		likertInput("s-02", riasec.Social, 1, false, 1), // S = 100*9/10 = 90
	}, 20)
	if math.Abs(snap.TopMargin-10.0) > 1e-9 {
		t.Fatalf("margin = %f, want exactly 10", snap.TopMargin)
	}
	if len(snap.TopDomains) != 2 {
		t.Errorf("top domains = %v, want two at the boundary", snap.TopDomains)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []Input{
		likertInput("r-01", riasec.Realistic, 4, false, 1),
		likertInput("i-01", riasec.Investigative, 4, false, 1),
		likertInput("a-01", riasec.Artistic, 2, true, 1.2),
		likertInput("s-04", riasec.Social, 2, true, 1),
	}
	a := ComputeSnapshot(inputs, 20)
	b := ComputeSnapshot(inputs, 20)

	if a.TopMargin != b.TopMargin || a.ConfidenceScore != b.ConfidenceScore {
		t.Error("snapshots differ across runs")
	}
	if len(a.TopDomains) != len(b.TopDomains) {
		t.Fatal("top domain counts differ")
	}
	for i := range a.TopDomains {
		if a.TopDomains[i] != b.TopDomains[i] {
			t.Errorf("top domain %d differs: %s vs %s", i, a.TopDomains[i], b.TopDomains[i])
		}
	}
}

func TestZeroSpanRangeIsNeutral(t *testing.T) {
	snap := ComputeSnapshot([]Input{{
		QuestionID: "bad",
		Domains:    []riasec.Domain{riasec.Realistic},
		Weight:     1,
		RawValue:   3,
		ScaleMin:   3,
		ScaleMax:   3,
	}}, 20)
	if got := snap.Domains[riasec.Realistic].Score; got != 50 {
		t.Errorf("score = %f, want neutral 50", got)
	}
}
