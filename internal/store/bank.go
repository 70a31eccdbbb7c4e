package store

import (
	"context"
	"fmt"

	"github.com/dishalabs/disha/ent"
	"github.com/dishalabs/disha/ent/question"
	"github.com/dishalabs/disha/ent/schema"
	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/riasec"
)

// BankRepo is the ent-backed bank.Reader. The question catalog is
// seeded once per bank version and treated as immutable afterwards.
type BankRepo struct {
	client *ent.Client
}

var _ bank.Reader = (*BankRepo)(nil)

// ActiveQuestions returns the active questions of a bank version that
// apply to the given grade band, sorted by question id.
func (r *BankRepo) ActiveQuestions(ctx context.Context, bankVersion, grade string) ([]bank.Question, error) {
	rows, err := r.client.Question.Query().
		Where(
			question.BankVersion(bankVersion),
			question.Active(true),
		).
		Order(ent.Asc(question.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active questions: %w", err)
	}

	var out []bank.Question
	for _, row := range rows {
		q := questionFromRow(row)
		if q.AppliesToGrade(grade) {
			out = append(out, q)
		}
	}
	return out, nil
}

// Question returns a single question by id, or store.ErrNotFound.
func (r *BankRepo) Question(ctx context.Context, bankVersion, questionID string) (*bank.Question, error) {
	row, err := r.client.Question.Query().
		Where(
			question.BankVersion(bankVersion),
			question.QuestionID(questionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query question: %w", err)
	}
	q := questionFromRow(row)
	return &q, nil
}

// SeedIfEmpty loads the given questions into the catalog unless the
// bank version already has rows. Returns the number of rows inserted.
func (r *BankRepo) SeedIfEmpty(ctx context.Context, bankVersion string, questions []bank.Question) (int, error) {
	n, err := r.client.Question.Query().
		Where(question.BankVersion(bankVersion)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count bank questions: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	builders := make([]*ent.QuestionCreate, len(questions))
	for i, q := range questions {
		opts := make([]schema.OptionSpec, len(q.Options))
		for j, o := range q.Options {
			opts[j] = schema.OptionSpec{
				ID:      o.ID,
				Label:   o.Label,
				Value:   o.Value,
				Domains: riasec.Strings(o.Domains),
			}
		}

		b := r.client.Question.Create().
			SetQuestionID(q.ID).
			SetBankVersion(bankVersion).
			SetType(question.Type(q.Type)).
			SetPrompt(q.Prompt).
			SetDomains(riasec.Strings(q.Domains)).
			SetReverseScored(q.ReverseScored).
			SetWeight(q.Weight).
			SetActive(q.Active)
		if len(q.GradeBands) > 0 {
			b = b.SetGradeBands(q.GradeBands)
		}
		if q.ScaleMin != 0 || q.ScaleMax != 0 {
			b = b.SetScaleMin(q.ScaleMin).SetScaleMax(q.ScaleMax)
		}
		if len(opts) > 0 {
			b = b.SetOptions(opts)
		}
		builders[i] = b
	}

	if _, err := r.client.Question.CreateBulk(builders...).Save(ctx); err != nil {
		return 0, fmt.Errorf("seed bank %s: %w", bankVersion, err)
	}
	return len(builders), nil
}

func questionFromRow(row *ent.Question) bank.Question {
	opts := make([]bank.Option, len(row.Options))
	for i, o := range row.Options {
		opts[i] = bank.Option{
			ID:      o.ID,
			Label:   o.Label,
			Value:   o.Value,
			Domains: storedDomains(o.Domains),
		}
	}

	return bank.Question{
		ID:            row.QuestionID,
		BankVersion:   row.BankVersion,
		Type:          bank.QuestionType(row.Type),
		Prompt:        row.Prompt,
		Domains:       storedDomains(row.Domains),
		ReverseScored: row.ReverseScored,
		Weight:        row.Weight,
		Active:        row.Active,
		GradeBands:    row.GradeBands,
		Options:       opts,
		ScaleMin:      row.ScaleMin,
		ScaleMax:      row.ScaleMax,
	}
}

// storedDomains parses domain tags loaded from the catalog. Tags were
// validated at seed time, so unknown ones are dropped rather than
// surfaced as errors.
func storedDomains(tags []string) []riasec.Domain {
	out := make([]riasec.Domain, 0, len(tags))
	for _, t := range tags {
		if d, err := riasec.Parse(t); err == nil {
			out = append(out, d)
		}
	}
	return out
}
