// Package mapping converts a scored domain profile into a study-stream
// suggestion and candidate career fields. The mapping is a fixed lookup
// table over ordered (primary, secondary) domain pairs; grade only selects
// grade-appropriate phrasing and confidence only tempers it. Same inputs,
// same suggestion, always.
package mapping

import (
	"fmt"

	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
)

// Suggestion is the mapping output.
type Suggestion struct {
	Stream       string   `json:"stream"`
	CareerFields []string `json:"career_fields"`
	Guidance     string   `json:"guidance"`
}

// Map resolves the ordered (primary, secondary) domain pair to a stream and
// career fields. A missing secondary reads as the same-domain pair. The
// function is total: unknown or absent domains produce a neutral, non-empty
// default rather than failing.
func Map(primary, secondary riasec.Domain, confidence scoring.Level, grade string) Suggestion {
	if !primary.Valid() {
		return neutralDefault(grade)
	}
	if !secondary.Valid() {
		secondary = primary
	}

	entry, ok := pairTable[pairKey(primary, secondary)]
	if !ok {
		// The table covers all 36 ordered pairs; reaching here means a
		// new domain was added without extending the table.
		return neutralDefault(grade)
	}

	return Suggestion{
		Stream:       entry.stream,
		CareerFields: append([]string(nil), entry.fields...),
		Guidance:     guidance(entry.stream, confidence, grade),
	}
}

// FromTopDomains adapts a scoring top-domain list to Map's pair form.
func FromTopDomains(top []riasec.Domain, confidence scoring.Level, grade string) Suggestion {
	var primary, secondary riasec.Domain
	if len(top) > 0 {
		primary = top[0]
	}
	if len(top) > 1 {
		secondary = top[1]
	}
	return Map(primary, secondary, confidence, grade)
}

func pairKey(primary, secondary riasec.Domain) string {
	return string(primary) + string(secondary)
}

// guidance builds the advisory sentence. Senior students get enrolment
// language, younger ones get exploration language.
func guidance(stream string, confidence scoring.Level, grade string) string {
	var strength string
	switch confidence {
	case scoring.High:
		strength = "a strong match"
	case scoring.Medium:
		strength = "a good fit"
	default:
		strength = "an early signal worth exploring"
	}

	if grade == "11-12" {
		return fmt.Sprintf("The %s stream looks like %s for you; consider choosing subjects in it.", stream, strength)
	}
	return fmt.Sprintf("The %s stream looks like %s for you; keep trying activities in this area.", stream, strength)
}

// neutralDefault is returned when no domain evidence exists at all.
func neutralDefault(grade string) Suggestion {
	s := Suggestion{
		Stream: "Exploratory",
		CareerFields: []string{
			"General Studies",
			"Liberal Arts",
			"Applied Sciences",
			"Commerce Foundations",
		},
	}
	if grade == "11-12" {
		s.Guidance = "Your profile is still open; try electives across streams before committing to one."
	} else {
		s.Guidance = "Your profile is still open; explore widely across subjects and activities."
	}
	return s
}
