package store

import (
	"context"
	"fmt"

	"github.com/dishalabs/disha/ent"
	"github.com/dishalabs/disha/ent/questionasked"
	"github.com/dishalabs/disha/ent/schema"
)

type askedRepo struct {
	client *ent.Client
}

func (r *askedRepo) Append(ctx context.Context, rec *AskedRecord) error {
	b := r.client.QuestionAsked.Create().
		SetSessionID(rec.SessionID).
		SetQuestionID(rec.QuestionID).
		SetPosition(rec.Position).
		SetPromptVariant(questionasked.PromptVariant(rec.Variant)).
		SetPromptText(rec.PromptText)
	if len(rec.Options) > 0 {
		opts := make([]schema.OptionSpec, len(rec.Options))
		for i, o := range rec.Options {
			opts[i] = schema.OptionSpec{ID: o.ID, Label: o.Label, Value: o.Value}
		}
		b = b.SetOptions(opts)
	}
	if _, err := b.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("append asked question: %w", err)
	}
	return nil
}

func (r *askedRepo) BySession(ctx context.Context, sessionID string) ([]AskedRecord, error) {
	rows, err := r.client.QuestionAsked.Query().
		Where(questionasked.SessionID(sessionID)).
		Order(ent.Asc(questionasked.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("asked questions by session: %w", err)
	}

	out := make([]AskedRecord, len(rows))
	for i, row := range rows {
		var opts []AskedOption
		if len(row.Options) > 0 {
			opts = make([]AskedOption, len(row.Options))
			for j, o := range row.Options {
				opts[j] = AskedOption{ID: o.ID, Label: o.Label, Value: o.Value}
			}
		}
		out[i] = AskedRecord{
			SessionID:  row.SessionID,
			QuestionID: row.QuestionID,
			Position:   row.Position,
			Variant:    PromptVariant(row.PromptVariant),
			PromptText: row.PromptText,
			Options:    opts,
		}
	}
	return out, nil
}
