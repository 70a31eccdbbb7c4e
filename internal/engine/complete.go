package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/catalog"
	"github.com/dishalabs/disha/internal/mapping"
	"github.com/dishalabs/disha/internal/narrative"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
	"github.com/dishalabs/disha/internal/store"
)

// Complete freezes the session's result: scores all answers, maps the
// top domains to a stream suggestion, attaches course recommendations,
// and generates the narrative artifacts. Idempotent: a repeat call
// returns the existing result without re-scoring. Numeric fields are
// derived exactly once.
func (s *Service) Complete(ctx context.Context, sessionID, requesterID string) (*store.ResultRecord, error) {
	sess, err := s.ownedSession(ctx, sessionID, requesterID)
	if err != nil {
		return nil, err
	}

	existing, err := s.deps.Results.BySession(ctx, sessionID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load result: %w", err)
	}

	if sess.Status != store.StatusInProgress {
		if sess.Status == store.StatusCompleted {
			return nil, ErrCorruptResult
		}
		return nil, ErrInvalidState
	}

	answers, err := s.deps.Answers.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	byID, err := s.answeredQuestions(ctx, sess.BankVersion, answers)
	if err != nil {
		return nil, err
	}

	snap := scoring.ComputeSnapshot(scoringInputs(answers, byID), sess.MaxQuestions)
	sug := mapping.FromTopDomains(snap.TopDomains, snap.ConfidenceLevel, sess.Grade)

	// Course lookup degrades to an empty list; a catalog outage never
	// blocks completion.
	courses, err := s.deps.Catalog.Courses(ctx, sug.Stream, snap.TopDomains, catalog.DefaultLimit)
	if err != nil {
		courses = nil
	}

	art := s.buildArtifacts(ctx, sess, snap, sug, answers, byID)

	rec := &store.ResultRecord{
		SessionID: sess.ID,
		StudentID: sess.StudentID,
		Grade:     sess.Grade,

		DomainScores:    domainScoreRecords(snap),
		TopDomains:      riasec.Strings(snap.TopDomains),
		TopMargin:       snap.TopMargin,
		ConfidenceLevel: string(snap.ConfidenceLevel),
		ConfidenceScore: snap.ConfidenceScore,
		ScoredAnswers:   snap.ScoredAnswers,

		Stream:       sug.Stream,
		CareerFields: sug.CareerFields,
		Guidance:     sug.Guidance,
		Courses:      courseRecords(courses),

		Narrative:        art.Narrative,
		AnswerMeanings:   art.AnswerMeanings,
		DomainNarratives: art.DomainNarratives,

		TestVersion:    sess.TestVersion,
		BankVersion:    sess.BankVersion,
		ScoringVersion: sess.ScoringVersion,
		PromptVersion:  sess.PromptVersion,
	}

	if err := s.deps.Results.Create(ctx, rec); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// A concurrent Complete won the insert race; their result
			// is the authoritative one.
			return s.deps.Results.BySession(ctx, sessionID)
		}
		return nil, fmt.Errorf("store result: %w", err)
	}

	if err := s.deps.Sessions.Close(ctx, sessionID, store.StatusCompleted, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("close session: %w", err)
	}
	return rec, nil
}

// RegenerateResultArtifacts refreshes only the narrative and
// explanation blobs against the stored, unchanged domain scores. The
// scoring engine is never re-run here.
func (s *Service) RegenerateResultArtifacts(ctx context.Context, sessionID, requesterID string) (*store.ResultRecord, error) {
	sess, err := s.ownedSession(ctx, sessionID, requesterID)
	if err != nil {
		return nil, err
	}
	res, err := s.deps.Results.BySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load result: %w", err)
	}

	answers, err := s.deps.Answers.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	byID, err := s.answeredQuestions(ctx, res.BankVersion, answers)
	if err != nil {
		return nil, err
	}

	snap := snapshotFromResult(res)
	sug := mapping.Suggestion{
		Stream:       res.Stream,
		CareerFields: res.CareerFields,
		Guidance:     res.Guidance,
	}

	art := s.buildArtifacts(ctx, sess, snap, sug, answers, byID)
	if err := s.deps.Results.UpdateArtifacts(ctx, sessionID, art); err != nil {
		return nil, fmt.Errorf("update result artifacts: %w", err)
	}
	return s.deps.Results.BySession(ctx, sessionID)
}

// buildArtifacts generates the three prose artifacts, preferring the
// assist and falling back to deterministic text when it is absent or
// fails.
func (s *Service) buildArtifacts(ctx context.Context, sess *store.SessionRecord, snap scoring.Snapshot, sug mapping.Suggestion, answers []store.AnswerRecord, byID map[string]*bank.Question) store.ResultArtifacts {
	in := narrative.ReportInput{
		Grade:       sess.Grade,
		Snapshot:    snap,
		Suggestion:  sug,
		OpenAnswers: openAnswers(answers, byID),
	}
	contexts := answerContexts(answers, byID)

	var art store.ResultArtifacts
	if s.assist != nil {
		if text, err := s.assist.GenerateReport(ctx, in); err == nil && text != "" {
			art.Narrative = text
		}
		if m, err := s.assist.AnswerMeanings(ctx, contexts); err == nil && len(m) > 0 {
			art.AnswerMeanings = m
		}
		if m, err := s.assist.DomainNarratives(ctx, snap); err == nil && len(m) > 0 {
			art.DomainNarratives = m
		}
	}
	if art.Narrative == "" {
		art.Narrative = narrative.Report(in)
	}
	if art.AnswerMeanings == nil {
		art.AnswerMeanings = narrative.AnswerMeanings(contexts)
	}
	if art.DomainNarratives == nil {
		art.DomainNarratives = narrative.DomainNarratives(snap)
	}
	return art
}

// answeredQuestions loads the question for every answered id.
func (s *Service) answeredQuestions(ctx context.Context, bankVersion string, answers []store.AnswerRecord) (map[string]*bank.Question, error) {
	byID := make(map[string]*bank.Question, len(answers))
	for _, a := range answers {
		if _, ok := byID[a.QuestionID]; ok {
			continue
		}
		q, err := s.deps.Bank.Question(ctx, bankVersion, a.QuestionID)
		if err != nil {
			return nil, fmt.Errorf("load answered question %q: %w", a.QuestionID, err)
		}
		byID[a.QuestionID] = q
	}
	return byID, nil
}

func answerContexts(answers []store.AnswerRecord, byID map[string]*bank.Question) []narrative.AnswerContext {
	out := make([]narrative.AnswerContext, 0, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		ac := narrative.AnswerContext{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Reverse:    q.ReverseScored,
			RawValue:   int(a.RawValue),
		}
		if q.Scored() {
			ac.Domains = q.Domains
			if opt := q.OptionByID(a.OptionID); opt != nil && len(opt.Domains) > 0 {
				ac.Domains = opt.Domains
			}
			if min, max, ok := q.ValueRange(); ok {
				ac.ScaleMin, ac.ScaleMax = min, max
			}
		}
		out = append(out, ac)
	}
	return out
}

func openAnswers(answers []store.AnswerRecord, byID map[string]*bank.Question) []string {
	var out []string
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if ok && q.Type == bank.TypeOpenEnded && a.FreeText != "" {
			out = append(out, a.FreeText)
		}
	}
	return out
}

func domainScoreRecords(snap scoring.Snapshot) map[string]store.DomainScoreRecord {
	out := make(map[string]store.DomainScoreRecord, len(snap.Domains))
	for d, ds := range snap.Domains {
		out[string(d)] = store.DomainScoreRecord{
			RawSum:    ds.RawSum,
			RawWeight: ds.RawWeight,
			Score:     ds.Score,
		}
	}
	return out
}

func courseRecords(courses []catalog.Course) []store.CourseRecord {
	out := make([]store.CourseRecord, len(courses))
	for i, c := range courses {
		out[i] = store.CourseRecord{Code: c.Code, Name: c.Name, Stream: c.Stream}
	}
	return out
}

// snapshotFromResult rebuilds a scoring snapshot from the frozen numeric
// fields of a stored result.
func snapshotFromResult(res *store.ResultRecord) scoring.Snapshot {
	snap := scoring.Snapshot{
		Domains:         make(map[riasec.Domain]scoring.DomainScore, len(res.DomainScores)),
		TopMargin:       res.TopMargin,
		ConfidenceLevel: scoring.Level(res.ConfidenceLevel),
		ConfidenceScore: res.ConfidenceScore,
		ScoredAnswers:   res.ScoredAnswers,
	}
	for code, ds := range res.DomainScores {
		d, err := riasec.Parse(code)
		if err != nil {
			continue
		}
		snap.Domains[d] = scoring.DomainScore{
			RawSum:    ds.RawSum,
			RawWeight: ds.RawWeight,
			Score:     ds.Score,
		}
	}
	for _, code := range res.TopDomains {
		d, err := riasec.Parse(code)
		if err != nil {
			continue
		}
		snap.TopDomains = append(snap.TopDomains, d)
	}
	return snap
}
