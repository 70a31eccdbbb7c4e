package narrative

import (
	"strings"
	"testing"

	"github.com/dishalabs/disha/internal/mapping"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
)

func sampleSnapshot() scoring.Snapshot {
	return scoring.Snapshot{
		Domains: map[riasec.Domain]scoring.DomainScore{
			riasec.Realistic:     {Score: 82},
			riasec.Investigative: {Score: 76},
			riasec.Social:        {Score: 31},
		},
		TopDomains:      []riasec.Domain{riasec.Realistic, riasec.Investigative},
		TopMargin:       6,
		ConfidenceLevel: scoring.High,
		ConfidenceScore: 0.71,
		ScoredAnswers:   18,
	}
}

func TestReportNamesTopDomainsAndStream(t *testing.T) {
	snap := sampleSnapshot()
	sug := mapping.FromTopDomains(snap.TopDomains, snap.ConfidenceLevel, "10")

	got := Report(ReportInput{Grade: "10", Snapshot: snap, Suggestion: sug})

	for _, want := range []string{"Realistic", "Investigative", sug.Stream} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(got, "solid starting point") {
		t.Errorf("high-confidence closer missing:\n%s", got)
	}
}

func TestReportSingleTopDomain(t *testing.T) {
	snap := sampleSnapshot()
	snap.TopDomains = snap.TopDomains[:1]
	snap.ConfidenceLevel = scoring.Medium
	sug := mapping.FromTopDomains(snap.TopDomains, snap.ConfidenceLevel, "9")

	got := Report(ReportInput{Grade: "9", Snapshot: snap, Suggestion: sug})

	if strings.Contains(got, "closely followed") {
		t.Errorf("single-domain report mentions a secondary:\n%s", got)
	}
}

func TestReportEmptySnapshot(t *testing.T) {
	sug := mapping.FromTopDomains(nil, scoring.Low, "9")
	got := Report(ReportInput{Grade: "9", Snapshot: scoring.Snapshot{ConfidenceLevel: scoring.Low}, Suggestion: sug})

	if !strings.Contains(got, "not gather enough evidence") {
		t.Errorf("empty-snapshot report unexpected:\n%s", got)
	}
}

func TestAnswerMeaningsStrength(t *testing.T) {
	answers := []AnswerContext{
		{QuestionID: "r-01", Domains: []riasec.Domain{riasec.Realistic}, RawValue: 5, ScaleMin: 1, ScaleMax: 5},
		{QuestionID: "i-02", Domains: []riasec.Domain{riasec.Investigative}, RawValue: 1, ScaleMin: 1, ScaleMax: 5},
		{QuestionID: "a-03", Domains: []riasec.Domain{riasec.Artistic}, Reverse: true, RawValue: 1, ScaleMin: 1, ScaleMax: 5},
		{QuestionID: "oe-01"},
	}

	got := AnswerMeanings(answers)

	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if !strings.Contains(got["r-01"], "strong interest") {
		t.Errorf("r-01 = %q, want strong", got["r-01"])
	}
	if !strings.Contains(got["i-02"], "limited interest") {
		t.Errorf("i-02 = %q, want limited", got["i-02"])
	}
	if !strings.Contains(got["a-03"], "strong interest") {
		t.Errorf("a-03 (reverse-scored) = %q, want strong", got["a-03"])
	}
	if !strings.Contains(got["oe-01"], "written summary") {
		t.Errorf("oe-01 = %q, want open-ended wording", got["oe-01"])
	}
}

func TestDomainNarrativesCoverEvidencedDomains(t *testing.T) {
	got := DomainNarratives(sampleSnapshot())

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !strings.Contains(got["R"], "82 out of 100") {
		t.Errorf("R = %q", got["R"])
	}
	if !strings.Contains(got["S"], "people") {
		t.Errorf("S = %q", got["S"])
	}
	if _, ok := got["E"]; ok {
		t.Error("narrative present for unevidenced domain E")
	}
}
