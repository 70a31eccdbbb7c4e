package bank

import (
	"testing"

	"github.com/dishalabs/disha/internal/riasec"
)

func TestValueRangeDerivedFromOptions(t *testing.T) {
	q := likert("r-01", riasec.Realistic, "prompt", false, 1.0)
	min, max, ok := q.ValueRange()
	if !ok {
		t.Fatal("expected a value range")
	}
	if min != 1 || max != 5 {
		t.Errorf("range = [%d,%d], want [1,5]", min, max)
	}
}

func TestValueRangeExplicitScale(t *testing.T) {
	q := Question{
		Type:     TypeScenario,
		ScaleMin: 1,
		ScaleMax: 5,
		Options: []Option{
			{ID: "a", Value: 5},
			{ID: "b", Value: 5},
		},
	}
	min, max, ok := q.ValueRange()
	if !ok || min != 1 || max != 5 {
		t.Errorf("range = [%d,%d,%v], want [1,5,true]", min, max, ok)
	}
}

func TestValueRangeOpenEnded(t *testing.T) {
	q := Question{Type: TypeOpenEnded}
	if _, _, ok := q.ValueRange(); ok {
		t.Error("open-ended question should have no value range")
	}
}

func TestAppliesToGrade(t *testing.T) {
	all := Question{}
	if !all.AppliesToGrade("8-10") || !all.AppliesToGrade("") {
		t.Error("question with no grade bands should apply everywhere")
	}

	senior := Question{GradeBands: []string{"11-12"}}
	if senior.AppliesToGrade("8-10") {
		t.Error("11-12 question should not apply to 8-10")
	}
	if !senior.AppliesToGrade("11-12") {
		t.Error("11-12 question should apply to 11-12")
	}
	if !senior.AppliesToGrade("") {
		t.Error("empty grade should match any question")
	}
}

func TestSeedQuestionsShape(t *testing.T) {
	qs := SeedQuestions()
	if len(qs) == 0 {
		t.Fatal("empty seed bank")
	}

	ids := make(map[string]bool)
	perDomain := make(map[riasec.Domain]int)
	for _, q := range qs {
		if ids[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		ids[q.ID] = true

		if q.BankVersion != DefaultVersion {
			t.Errorf("%s: bank version %q", q.ID, q.BankVersion)
		}
		if !q.Active {
			t.Errorf("%s: seed question inactive", q.ID)
		}
		if len(q.Domains) == 0 {
			t.Errorf("%s: no domain tags", q.ID)
		}
		for _, d := range q.Domains {
			if !d.Valid() {
				t.Errorf("%s: invalid domain %q", q.ID, d)
			}
			perDomain[d]++
		}

		if q.Scored() {
			if _, _, ok := q.ValueRange(); !ok {
				t.Errorf("%s: scored question without value range", q.ID)
			}
			optIDs := make(map[string]bool)
			for _, o := range q.Options {
				if optIDs[o.ID] {
					t.Errorf("%s: duplicate option id %q", q.ID, o.ID)
				}
				optIDs[o.ID] = true
			}
		}
	}

	// Every domain must have evidence-bearing coverage.
	for _, d := range riasec.Alphabet {
		if perDomain[d] < 4 {
			t.Errorf("domain %s covered by %d questions, want at least 4", d, perDomain[d])
		}
	}
}

func TestSeedReverseScoredPresent(t *testing.T) {
	var reversed int
	for _, q := range SeedQuestions() {
		if q.ReverseScored {
			reversed++
		}
	}
	if reversed < 3 {
		t.Errorf("seed bank has %d reverse-scored items, want at least 3", reversed)
	}
}
