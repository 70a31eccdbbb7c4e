// Package narrative renders the deterministic report prose used whenever
// LLM assistance is absent or fails. The text is plain and templated on
// purpose: it must be available offline and never block completion.
package narrative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dishalabs/disha/internal/mapping"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
)

// ReportInput carries everything the renderers need about a finished
// session.
type ReportInput struct {
	Grade      string
	Snapshot   scoring.Snapshot
	Suggestion mapping.Suggestion

	// OpenAnswers are the student's free-text responses, available for
	// LLM-backed renderers; the deterministic ones ignore them.
	OpenAnswers []string
}

// AnswerContext describes one answered question for per-answer meanings.
type AnswerContext struct {
	QuestionID string
	Prompt     string
	Domains    []riasec.Domain
	Reverse    bool
	RawValue   int
	ScaleMin   int
	ScaleMax   int
}

// Report builds the fallback narrative report.
func Report(in ReportInput) string {
	var b strings.Builder

	if len(in.Snapshot.TopDomains) == 0 {
		b.WriteString("This assessment did not gather enough evidence to single out a leading interest area yet. ")
		b.WriteString("That is a perfectly normal outcome for a short or interrupted session. ")
		b.WriteString(in.Suggestion.Guidance)
		return b.String()
	}

	primary := in.Snapshot.TopDomains[0]
	fmt.Fprintf(&b, "Your strongest interest area is %s (%s).", primary.Name(), string(primary))
	if len(in.Snapshot.TopDomains) > 1 {
		secondary := in.Snapshot.TopDomains[1]
		fmt.Fprintf(&b, " It is closely followed by %s (%s), which points to a blended profile.", secondary.Name(), string(secondary))
	}

	fmt.Fprintf(&b, " Based on this profile the suggested stream is %s.", in.Suggestion.Stream)
	if len(in.Suggestion.CareerFields) > 0 {
		fmt.Fprintf(&b, " Career directions worth exploring: %s.", strings.Join(in.Suggestion.CareerFields, ", "))
	}

	if in.Suggestion.Guidance != "" {
		b.WriteString(" ")
		b.WriteString(in.Suggestion.Guidance)
	}

	switch in.Snapshot.ConfidenceLevel {
	case scoring.High:
		b.WriteString(" The answers were consistent, so this picture is a solid starting point.")
	case scoring.Medium:
		b.WriteString(" The picture is reasonably clear, though a longer session would sharpen it.")
	default:
		b.WriteString(" Treat this as a first sketch: the session was short, so retaking the assessment will firm it up.")
	}

	return b.String()
}

// AnswerMeanings builds the fallback per-answer explanations.
func AnswerMeanings(answers []AnswerContext) map[string]string {
	out := make(map[string]string, len(answers))
	for _, a := range answers {
		out[a.QuestionID] = answerMeaning(a)
	}
	return out
}

func answerMeaning(a AnswerContext) string {
	names := make([]string, len(a.Domains))
	for i, d := range a.Domains {
		names[i] = d.Name()
	}
	area := strings.Join(names, " and ")
	if area == "" {
		return "This answer feeds the written summary rather than the scores."
	}

	span := a.ScaleMax - a.ScaleMin
	if span <= 0 {
		return fmt.Sprintf("This choice counts toward the %s area.", area)
	}

	strength := float64(a.RawValue-a.ScaleMin) / float64(span)
	if a.Reverse {
		strength = 1 - strength
	}
	switch {
	case strength >= 0.75:
		return fmt.Sprintf("This answer signals strong interest in the %s area.", area)
	case strength >= 0.5:
		return fmt.Sprintf("This answer signals moderate interest in the %s area.", area)
	default:
		return fmt.Sprintf("This answer signals limited interest in the %s area.", area)
	}
}

// DomainNarratives builds the fallback per-domain explanations, keyed by
// domain code, for every domain that carries evidence.
func DomainNarratives(snap scoring.Snapshot) map[string]string {
	out := make(map[string]string, len(snap.Domains))

	codes := make([]riasec.Domain, 0, len(snap.Domains))
	for d := range snap.Domains {
		codes = append(codes, d)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].Rank() < codes[j].Rank() })

	for _, d := range codes {
		ds := snap.Domains[d]
		out[string(d)] = fmt.Sprintf("%s: scored %.0f out of 100. %s", d.Name(), ds.Score, domainBlurb(d))
	}
	return out
}

func domainBlurb(d riasec.Domain) string {
	switch d {
	case riasec.Realistic:
		return "This area covers hands-on, practical work with tools, machines, and the outdoors."
	case riasec.Investigative:
		return "This area covers analysis, research, and working through problems systematically."
	case riasec.Artistic:
		return "This area covers creative expression through design, writing, music, or performance."
	case riasec.Social:
		return "This area covers helping, teaching, and working closely with people."
	case riasec.Enterprising:
		return "This area covers leading, persuading, and building ventures."
	case riasec.Conventional:
		return "This area covers organising, record-keeping, and structured, detail-oriented work."
	default:
		return ""
	}
}
