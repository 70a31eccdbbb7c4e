package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dishalabs/disha/ent"
	"github.com/dishalabs/disha/ent/session"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, rec *SessionRecord) error {
	row, err := r.client.Session.Create().
		SetSessionID(rec.ID).
		SetStudentID(rec.StudentID).
		SetGrade(rec.Grade).
		SetLocale(rec.Locale).
		SetStatus(session.Status(rec.Status)).
		SetMaxQuestions(rec.MaxQuestions).
		SetQuestionIndex(rec.QuestionIndex).
		SetTestVersion(rec.TestVersion).
		SetBankVersion(rec.BankVersion).
		SetScoringVersion(rec.ScoringVersion).
		SetPromptVersion(rec.PromptVersion).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create session: %w", err)
	}
	rec.CreatedAt = row.CreatedAt
	rec.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*SessionRecord, error) {
	row, err := r.client.Session.Query().
		Where(session.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) FindInProgress(ctx context.Context, studentID string) (*SessionRecord, error) {
	row, err := r.client.Session.Query().
		Where(
			session.StudentID(studentID),
			session.StatusEQ(session.StatusIN_PROGRESS),
		).
		Order(ent.Desc(session.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find in-progress session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) IncrementQuestionIndex(ctx context.Context, sessionID string) error {
	n, err := r.client.Session.Update().
		Where(session.SessionID(sessionID)).
		AddQuestionIndex(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("increment question index: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) Close(ctx context.Context, sessionID string, status SessionStatus, at time.Time) error {
	n, err := r.client.Session.Update().
		Where(session.SessionID(sessionID)).
		SetStatus(session.Status(status)).
		SetCompletedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func sessionFromRow(row *ent.Session) *SessionRecord {
	return &SessionRecord{
		ID:             row.SessionID,
		StudentID:      row.StudentID,
		Grade:          row.Grade,
		Locale:         row.Locale,
		Status:         SessionStatus(row.Status),
		MaxQuestions:   row.MaxQuestions,
		QuestionIndex:  row.QuestionIndex,
		TestVersion:    row.TestVersion,
		BankVersion:    row.BankVersion,
		ScoringVersion: row.ScoringVersion,
		PromptVersion:  row.PromptVersion,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		CompletedAt:    row.CompletedAt,
	}
}
