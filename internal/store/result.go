package store

import (
	"context"
	"fmt"

	"github.com/dishalabs/disha/ent"
	"github.com/dishalabs/disha/ent/result"
	"github.com/dishalabs/disha/ent/schema"
)

type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Create(ctx context.Context, rec *ResultRecord) error {
	scores := make(map[string]schema.DomainScoreSpec, len(rec.DomainScores))
	for code, ds := range rec.DomainScores {
		scores[code] = schema.DomainScoreSpec{
			RawSum:    ds.RawSum,
			RawWeight: ds.RawWeight,
			Score:     ds.Score,
		}
	}

	courses := make([]schema.CourseSpec, len(rec.Courses))
	for i, c := range rec.Courses {
		courses[i] = schema.CourseSpec{Code: c.Code, Name: c.Name, Stream: c.Stream}
	}

	row, err := r.client.Result.Create().
		SetSessionID(rec.SessionID).
		SetStudentID(rec.StudentID).
		SetGrade(rec.Grade).
		SetDomainScores(scores).
		SetTopDomains(rec.TopDomains).
		SetTopMargin(rec.TopMargin).
		SetConfidenceLevel(rec.ConfidenceLevel).
		SetConfidenceScore(rec.ConfidenceScore).
		SetScoredAnswers(rec.ScoredAnswers).
		SetStream(rec.Stream).
		SetCareerFields(rec.CareerFields).
		SetGuidance(rec.Guidance).
		SetCourses(courses).
		SetNarrative(rec.Narrative).
		SetAnswerMeanings(rec.AnswerMeanings).
		SetDomainNarratives(rec.DomainNarratives).
		SetTestVersion(rec.TestVersion).
		SetBankVersion(rec.BankVersion).
		SetScoringVersion(rec.ScoringVersion).
		SetPromptVersion(rec.PromptVersion).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create result: %w", err)
	}
	rec.CreatedAt = row.CreatedAt
	return nil
}

func (r *resultRepo) BySession(ctx context.Context, sessionID string) (*ResultRecord, error) {
	row, err := r.client.Result.Query().
		Where(result.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("result by session: %w", err)
	}
	return resultFromRow(row), nil
}

func (r *resultRepo) UpdateArtifacts(ctx context.Context, sessionID string, art ResultArtifacts) error {
	n, err := r.client.Result.Update().
		Where(result.SessionID(sessionID)).
		SetNarrative(art.Narrative).
		SetAnswerMeanings(art.AnswerMeanings).
		SetDomainNarratives(art.DomainNarratives).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update result artifacts: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *resultRepo) ListRecent(ctx context.Context, limit int) ([]ResultRecord, error) {
	q := r.client.Result.Query().
		Order(ent.Desc(result.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent results: %w", err)
	}

	out := make([]ResultRecord, len(rows))
	for i, row := range rows {
		out[i] = *resultFromRow(row)
	}
	return out, nil
}

func resultFromRow(row *ent.Result) *ResultRecord {
	scores := make(map[string]DomainScoreRecord, len(row.DomainScores))
	for code, ds := range row.DomainScores {
		scores[code] = DomainScoreRecord{
			RawSum:    ds.RawSum,
			RawWeight: ds.RawWeight,
			Score:     ds.Score,
		}
	}

	courses := make([]CourseRecord, len(row.Courses))
	for i, c := range row.Courses {
		courses[i] = CourseRecord{Code: c.Code, Name: c.Name, Stream: c.Stream}
	}

	return &ResultRecord{
		SessionID:        row.SessionID,
		StudentID:        row.StudentID,
		Grade:            row.Grade,
		DomainScores:     scores,
		TopDomains:       row.TopDomains,
		TopMargin:        row.TopMargin,
		ConfidenceLevel:  row.ConfidenceLevel,
		ConfidenceScore:  row.ConfidenceScore,
		ScoredAnswers:    row.ScoredAnswers,
		Stream:           row.Stream,
		CareerFields:     row.CareerFields,
		Guidance:         row.Guidance,
		Courses:          courses,
		Narrative:        row.Narrative,
		AnswerMeanings:   row.AnswerMeanings,
		DomainNarratives: row.DomainNarratives,
		TestVersion:      row.TestVersion,
		BankVersion:      row.BankVersion,
		ScoringVersion:   row.ScoringVersion,
		PromptVersion:    row.PromptVersion,
		CreatedAt:        row.CreatedAt,
	}
}
