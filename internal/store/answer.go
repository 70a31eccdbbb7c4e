package store

import (
	"context"
	"fmt"

	"github.com/dishalabs/disha/ent"
	"github.com/dishalabs/disha/ent/answer"
)

type answerRepo struct {
	client *ent.Client
}

func (r *answerRepo) Append(ctx context.Context, rec *AnswerRecord) error {
	row, err := r.client.Answer.Create().
		SetSessionID(rec.SessionID).
		SetQuestionID(rec.QuestionID).
		SetRawValue(rec.RawValue).
		SetOptionID(rec.OptionID).
		SetValueLabel(rec.ValueLabel).
		SetFreeText(rec.FreeText).
		SetPromptShown(rec.PromptShown).
		SetTimeSpentMs(rec.TimeSpentMs).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("append answer: %w", err)
	}
	rec.CreatedAt = row.CreatedAt
	return nil
}

func (r *answerRepo) BySession(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	rows, err := r.client.Answer.Query().
		Where(answer.SessionID(sessionID)).
		Order(ent.Asc(answer.FieldCreatedAt), ent.Asc(answer.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("answers by session: %w", err)
	}

	out := make([]AnswerRecord, len(rows))
	for i, row := range rows {
		out[i] = AnswerRecord{
			SessionID:   row.SessionID,
			QuestionID:  row.QuestionID,
			RawValue:    row.RawValue,
			OptionID:    row.OptionID,
			ValueLabel:  row.ValueLabel,
			FreeText:    row.FreeText,
			PromptShown: row.PromptShown,
			TimeSpentMs: row.TimeSpentMs,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}
