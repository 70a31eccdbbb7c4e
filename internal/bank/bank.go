// Package bank defines the versioned question catalog: immutable question
// and option records addressed by id. Sessions reference these records by
// value, never by live reference, so a bank upgrade can never perturb an
// open session.
package bank

import (
	"context"

	"github.com/dishalabs/disha/internal/riasec"
)

// QuestionType classifies how a question is answered.
type QuestionType string

const (
	TypeLikert    QuestionType = "likert"
	TypeScenario  QuestionType = "scenario"
	TypeOpenEnded QuestionType = "open"
)

// Question is an immutable catalog entry under a given bank version.
type Question struct {
	ID            string
	BankVersion   string
	Type          QuestionType
	Prompt        string
	Domains       []riasec.Domain
	ReverseScored bool
	Weight        float64
	Active        bool
	GradeBands    []string
	Options       []Option

	// ScaleMin and ScaleMax declare the raw value range explicitly.
	// When both are zero the range is derived from the option set.
	// Scenario questions whose options all carry the same fit value
	// need the explicit form.
	ScaleMin int
	ScaleMax int
}

// Option is one selectable answer for a Likert or scenario question.
// Value is the raw scale point; Domains, when set, override the question's
// domain tags for this option.
type Option struct {
	ID      string
	Label   string
	Value   int
	Domains []riasec.Domain
}

// Reader provides read access to active questions for a bank version and
// grade band. Implementations must treat the catalog as immutable per version.
type Reader interface {
	ActiveQuestions(ctx context.Context, bankVersion, grade string) ([]Question, error)
	Question(ctx context.Context, bankVersion, questionID string) (*Question, error)
}

// ValueRange returns the min and max raw values for the question.
// The explicit scale takes precedence; otherwise the range is derived
// from the option set. Open-ended questions have no range.
func (q *Question) ValueRange() (min, max int, ok bool) {
	if q.ScaleMin != 0 || q.ScaleMax != 0 {
		return q.ScaleMin, q.ScaleMax, true
	}
	if len(q.Options) == 0 {
		return 0, 0, false
	}
	min, max = q.Options[0].Value, q.Options[0].Value
	for _, o := range q.Options[1:] {
		if o.Value < min {
			min = o.Value
		}
		if o.Value > max {
			max = o.Value
		}
	}
	return min, max, true
}

// OptionByID returns the option with the given id, or nil.
func (q *Question) OptionByID(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// AppliesToGrade reports whether the question is applicable to the given
// grade band. An empty GradeBands list means applicable to all grades, as
// does an empty grade.
func (q *Question) AppliesToGrade(grade string) bool {
	if grade == "" || len(q.GradeBands) == 0 {
		return true
	}
	for _, g := range q.GradeBands {
		if g == grade {
			return true
		}
	}
	return false
}

// Scored reports whether answers to this question contribute numeric
// evidence. Open-ended answers feed narrative text only.
func (q *Question) Scored() bool {
	return q.Type != TypeOpenEnded
}
