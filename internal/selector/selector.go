// Package selector picks the next question to present from the remaining
// eligible pool. The deterministic algorithm favours breadth: it steers
// toward the domain with the least accumulated evidence so far, with fixed
// tie-breaks, so the same history always reproduces the same choice. An
// optional Chooser may propose a question instead; its answer is used only
// when it names a question that is actually still eligible.
package selector

import (
	"context"
	"sort"
	"time"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
)

// ChooseInput is what an augmented chooser gets to reason over.
type ChooseInput struct {
	// Remaining are the eligible, not-yet-asked questions.
	Remaining []bank.Question

	// Snapshot is the current scoring state, nil before the first
	// scored answer.
	Snapshot *scoring.Snapshot
}

// Chooser is an optional augmentation that picks the question best
// disambiguating the current top contenders. Implementations degrade by
// returning an error; the deterministic algorithm then decides.
type Chooser interface {
	ChooseNextQuestionID(ctx context.Context, input ChooseInput) (string, error)
}

// Selector chooses the next question for a session.
type Selector struct {
	chooser Chooser
	timeout time.Duration
}

// Option configures a Selector.
type Option func(*Selector)

// WithChooser attaches an augmented chooser.
func WithChooser(c Chooser) Option {
	return func(s *Selector) { s.chooser = c }
}

// WithChooserTimeout bounds how long an augmented choice may take.
func WithChooserTimeout(d time.Duration) Option {
	return func(s *Selector) { s.timeout = d }
}

// New creates a Selector. With no options it is purely deterministic.
func New(opts ...Option) *Selector {
	s := &Selector{timeout: 5 * time.Second}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ChooseNext returns the id of the next question to ask, or ok=false when
// the eligible pool minus the asked set is empty.
func (s *Selector) ChooseNext(ctx context.Context, eligible []bank.Question, asked map[string]bool, snap *scoring.Snapshot) (string, bool) {
	remaining := remainingQuestions(eligible, asked)
	if len(remaining) == 0 {
		return "", false
	}

	if s.chooser != nil {
		if id, ok := s.augmentedChoice(ctx, remaining, snap); ok {
			return id, true
		}
	}

	return deterministicChoice(remaining, snap), true
}

func (s *Selector) augmentedChoice(ctx context.Context, remaining []bank.Question, snap *scoring.Snapshot) (string, bool) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id, err := s.chooser.ChooseNextQuestionID(cctx, ChooseInput{Remaining: remaining, Snapshot: snap})
	if err != nil {
		return "", false
	}
	for _, q := range remaining {
		if q.ID == id {
			return id, true
		}
	}
	// The chooser named a question outside the eligible set. Ignore it.
	return "", false
}

// remainingQuestions filters out asked ids and sorts by question id so the
// rest of the algorithm never depends on input order.
func remainingQuestions(eligible []bank.Question, asked map[string]bool) []bank.Question {
	out := make([]bank.Question, 0, len(eligible))
	for _, q := range eligible {
		if !asked[q.ID] {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// deterministicChoice picks the least-evidenced domain that still has a
// question on offer (uniform priority when there is no snapshot yet), then
// the lowest question id for that domain.
func deterministicChoice(remaining []bank.Question, snap *scoring.Snapshot) string {
	byDomain := make(map[riasec.Domain][]bank.Question)
	for _, q := range remaining {
		for _, d := range q.Domains {
			byDomain[d] = append(byDomain[d], q)
		}
	}

	var target riasec.Domain
	best := -1.0
	for _, d := range riasec.Alphabet {
		if len(byDomain[d]) == 0 {
			continue
		}
		evidence := 0.0
		if snap != nil {
			evidence = snap.Domains[d].RawWeight
		}
		if best < 0 || evidence < best {
			best = evidence
			target = d
		}
	}

	if best < 0 {
		// Remaining questions tagged only with unknown domains. Fall back
		// to the globally lowest id; remaining is already sorted.
		return remaining[0].ID
	}

	candidates := byDomain[target]
	// Already id-sorted because remaining was.
	return candidates[0].ID
}
