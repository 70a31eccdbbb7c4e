// Package engine is the session orchestrator: it drives a session through
// IN_PROGRESS to COMPLETED or ABANDONED, serving one question at a time
// and freezing a result at completion. All operations are synchronous and
// keyed by (session id, requester id); a requester only ever sees their
// own sessions.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/catalog"
	"github.com/dishalabs/disha/internal/narrative"
	"github.com/dishalabs/disha/internal/scoring"
	"github.com/dishalabs/disha/internal/selector"
	"github.com/dishalabs/disha/internal/store"
)

// Question budget bounds. Requested values outside this range are
// clamped, not rejected.
const (
	MinQuestions     = 10
	MaxQuestions     = 60
	DefaultQuestions = 20
)

// DefaultLocale is stamped onto sessions started without an explicit
// locale.
const DefaultLocale = "en"

// Versions are the stamps frozen into every new session and copied to
// its result, so an old result can always be interpreted against the
// catalog and algorithms that produced it.
type Versions struct {
	Test    string
	Bank    string
	Scoring string
	Prompt  string
}

// DefaultVersions returns the current version stamps.
func DefaultVersions() Versions {
	return Versions{
		Test:    "1.0",
		Bank:    bank.DefaultVersion,
		Scoring: "1.0",
		Prompt:  "1.0",
	}
}

// Assist is the optional text-generation collaborator. Every method may
// fail for any reason; the engine always has a deterministic fallback
// and a failing assist never fails a user-facing operation.
type Assist interface {
	selector.Chooser

	// PersonalizeQuestion rewrites a question prompt for the student's
	// grade without changing its meaning.
	PersonalizeQuestion(ctx context.Context, q bank.Question, grade string) (string, error)

	// GenerateReport writes the narrative report for a finished session.
	GenerateReport(ctx context.Context, in narrative.ReportInput) (string, error)

	// AnswerMeanings explains what each answer contributed.
	AnswerMeanings(ctx context.Context, answers []narrative.AnswerContext) (map[string]string, error)

	// DomainNarratives explains each evidenced domain's score.
	DomainNarratives(ctx context.Context, snap scoring.Snapshot) (map[string]string, error)
}

// Deps are the engine's storage and catalog collaborators.
type Deps struct {
	Sessions store.SessionRepo
	Answers  store.AnswerRepo
	Asked    store.AskedRepo
	Results  store.ResultRepo
	Bank     bank.Reader
	Catalog  catalog.Reader
}

// Service implements the orchestrator operations.
type Service struct {
	deps     Deps
	sel      *selector.Selector
	assist   Assist
	versions Versions
}

// Option configures a Service.
type Option func(*Service)

// WithAssist enables LLM-backed question choice, personalization, and
// report generation. Without it the engine runs fully deterministic.
func WithAssist(a Assist) Option {
	return func(s *Service) { s.assist = a }
}

// WithVersions overrides the version stamps for new sessions.
func WithVersions(v Versions) Option {
	return func(s *Service) { s.versions = v }
}

// New builds a Service.
func New(deps Deps, opts ...Option) *Service {
	s := &Service{
		deps:     deps,
		versions: DefaultVersions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.assist != nil {
		s.sel = selector.New(selector.WithChooser(s.assist))
	} else {
		s.sel = selector.New()
	}
	return s
}

// StartOrResume returns the student's open session if one exists,
// ignoring the new parameters; otherwise it creates a session with the
// current version stamps. maxQuestions is clamped to [MinQuestions,
// MaxQuestions]; zero means DefaultQuestions. An empty locale means
// DefaultLocale.
func (s *Service) StartOrResume(ctx context.Context, studentID, grade, locale string, maxQuestions int) (*store.SessionRecord, error) {
	existing, err := s.deps.Sessions.FindInProgress(ctx, studentID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("find open session: %w", err)
	}

	if locale == "" {
		locale = DefaultLocale
	}
	rec := &store.SessionRecord{
		ID:           uuid.NewString(),
		StudentID:    studentID,
		Grade:        grade,
		Locale:       locale,
		Status:       store.StatusInProgress,
		MaxQuestions: clampQuestions(maxQuestions),

		TestVersion:    s.versions.Test,
		BankVersion:    s.versions.Bank,
		ScoringVersion: s.versions.Scoring,
		PromptVersion:  s.versions.Prompt,
	}
	if err := s.deps.Sessions.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return rec, nil
}

// OpenSession returns the student's IN_PROGRESS session without
// creating one, or ErrNotFound.
func (s *Service) OpenSession(ctx context.Context, studentID string) (*store.SessionRecord, error) {
	sess, err := s.deps.Sessions.FindInProgress(ctx, studentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find open session: %w", err)
	}
	return sess, nil
}

func clampQuestions(n int) int {
	switch {
	case n == 0:
		return DefaultQuestions
	case n < MinQuestions:
		return MinQuestions
	case n > MaxQuestions:
		return MaxQuestions
	}
	return n
}

// ServedQuestion is a rendered question ready for display. Prompt is the
// text actually shown, which may differ from the canonical prompt when
// personalization succeeded.
type ServedQuestion struct {
	ID       string
	Type     bank.QuestionType
	Prompt   string
	Options  []bank.Option
	ScaleMin int
	ScaleMax int
	Position int
	Variant  store.PromptVariant
}

// NextOutcome is the result of NextQuestion. Done means the session has
// no further questions and the client should call Complete.
type NextOutcome struct {
	Done     bool
	Question *ServedQuestion
}

// NextQuestion serves the next question for the session, or signals that
// the session is finished when the budget is spent or the pool is
// exhausted.
func (s *Service) NextQuestion(ctx context.Context, sessionID, requesterID string) (*NextOutcome, error) {
	sess, err := s.ownedSession(ctx, sessionID, requesterID)
	if err != nil {
		return nil, err
	}
	if sess.Status != store.StatusInProgress {
		return nil, ErrInvalidState
	}
	if sess.QuestionIndex >= sess.MaxQuestions {
		return &NextOutcome{Done: true}, nil
	}

	eligible, err := s.deps.Bank.ActiveQuestions(ctx, sess.BankVersion, sess.Grade)
	if err != nil {
		return nil, fmt.Errorf("load question pool: %w", err)
	}

	askedRecs, err := s.deps.Asked.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load asked questions: %w", err)
	}
	asked := make(map[string]bool, len(askedRecs))
	for _, a := range askedRecs {
		asked[a.QuestionID] = true
	}

	snap, err := s.currentSnapshot(ctx, sess, eligible)
	if err != nil {
		return nil, err
	}

	questionID, ok := s.sel.ChooseNext(ctx, eligible, asked, snap)
	if !ok {
		return &NextOutcome{Done: true}, nil
	}

	var q *bank.Question
	for i := range eligible {
		if eligible[i].ID == questionID {
			q = &eligible[i]
			break
		}
	}
	if q == nil {
		return nil, fmt.Errorf("selector chose unknown question %q", questionID)
	}

	prompt, variant := s.renderPrompt(ctx, q, sess.Grade)

	position := sess.QuestionIndex + 1
	err = s.deps.Asked.Append(ctx, &store.AskedRecord{
		SessionID:  sessionID,
		QuestionID: q.ID,
		Position:   position,
		Variant:    variant,
		PromptText: prompt,
		Options:    askedOptions(q.Options),
	})
	if err != nil {
		return nil, fmt.Errorf("record asked question: %w", err)
	}
	if err := s.deps.Sessions.IncrementQuestionIndex(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("advance session: %w", err)
	}

	served := &ServedQuestion{
		ID:       q.ID,
		Type:     q.Type,
		Prompt:   prompt,
		Options:  q.Options,
		Position: position,
		Variant:  variant,
	}
	if min, max, ok := q.ValueRange(); ok {
		served.ScaleMin, served.ScaleMax = min, max
	}
	return &NextOutcome{Question: served}, nil
}

// askedOptions snapshots the option set as served, so the audit row
// survives later bank edits.
func askedOptions(opts []bank.Option) []store.AskedOption {
	if len(opts) == 0 {
		return nil
	}
	out := make([]store.AskedOption, len(opts))
	for i, o := range opts {
		out[i] = store.AskedOption{ID: o.ID, Label: o.Label, Value: o.Value}
	}
	return out
}

// renderPrompt personalizes the prompt when an assist is configured,
// falling back to the canonical text on any failure or empty rewrite.
func (s *Service) renderPrompt(ctx context.Context, q *bank.Question, grade string) (string, store.PromptVariant) {
	if s.assist == nil {
		return q.Prompt, store.VariantRaw
	}
	personalized, err := s.assist.PersonalizeQuestion(ctx, *q, grade)
	if err != nil || personalized == "" {
		return q.Prompt, store.VariantRaw
	}
	return personalized, store.VariantPersonalized
}

// Submission is one answer to a served question. Scored questions carry
// an OptionID; open-ended ones carry FreeText.
type Submission struct {
	QuestionID  string
	OptionID    string
	FreeText    string
	TimeSpentMs int64
}

// SubmitAnswer persists one answer. The question must be part of the
// session's bank version and must have been served to this session.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID, requesterID string, sub Submission) error {
	sess, err := s.ownedSession(ctx, sessionID, requesterID)
	if err != nil {
		return err
	}
	if sess.Status != store.StatusInProgress {
		return ErrInvalidState
	}

	q, err := s.deps.Bank.Question(ctx, sess.BankVersion, sub.QuestionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("question %q: %w", sub.QuestionID, ErrNotFound)
		}
		return fmt.Errorf("load question: %w", err)
	}

	promptShown, wasAsked, err := s.promptShown(ctx, sessionID, sub.QuestionID)
	if err != nil {
		return err
	}
	if !wasAsked {
		return ErrInvalidState
	}

	rec := &store.AnswerRecord{
		SessionID:   sessionID,
		QuestionID:  q.ID,
		FreeText:    sub.FreeText,
		PromptShown: promptShown,
		TimeSpentMs: sub.TimeSpentMs,
	}
	if q.Scored() {
		opt := q.OptionByID(sub.OptionID)
		if opt == nil {
			return fmt.Errorf("option %q: %w", sub.OptionID, ErrNotFound)
		}
		rec.RawValue = float64(opt.Value)
		rec.OptionID = opt.ID
		rec.ValueLabel = opt.Label
	}

	if err := s.deps.Answers.Append(ctx, rec); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return ErrDuplicateAnswer
		}
		return fmt.Errorf("store answer: %w", err)
	}
	return nil
}

func (s *Service) promptShown(ctx context.Context, sessionID, questionID string) (string, bool, error) {
	askedRecs, err := s.deps.Asked.BySession(ctx, sessionID)
	if err != nil {
		return "", false, fmt.Errorf("load asked questions: %w", err)
	}
	for _, a := range askedRecs {
		if a.QuestionID == questionID {
			return a.PromptText, true, nil
		}
	}
	return "", false, nil
}

// AbandonSession marks an open session ABANDONED. Terminal; the session
// can never be resumed or completed afterwards.
func (s *Service) AbandonSession(ctx context.Context, sessionID, requesterID string) error {
	sess, err := s.ownedSession(ctx, sessionID, requesterID)
	if err != nil {
		return err
	}
	if sess.Status != store.StatusInProgress {
		return ErrInvalidState
	}
	if err := s.deps.Sessions.Close(ctx, sessionID, store.StatusAbandoned, time.Now().UTC()); err != nil {
		return fmt.Errorf("abandon session: %w", err)
	}
	return nil
}

// Result returns the finalized result for a session.
func (s *Service) Result(ctx context.Context, sessionID, requesterID string) (*store.ResultRecord, error) {
	if _, err := s.ownedSession(ctx, sessionID, requesterID); err != nil {
		return nil, err
	}
	res, err := s.deps.Results.BySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load result: %w", err)
	}
	return res, nil
}

// RecentResults returns the most recent results across all sessions,
// newest first.
func (s *Service) RecentResults(ctx context.Context, limit int) ([]store.ResultRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.deps.Results.ListRecent(ctx, limit)
}

func (s *Service) ownedSession(ctx context.Context, sessionID, requesterID string) (*store.SessionRecord, error) {
	sess, err := s.deps.Sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	// Ownership failures are indistinguishable from missing sessions.
	if sess.StudentID != requesterID {
		return nil, ErrNotFound
	}
	return sess, nil
}

// currentSnapshot scores the answers so far, or returns nil when no
// answer carries numeric evidence yet.
func (s *Service) currentSnapshot(ctx context.Context, sess *store.SessionRecord, pool []bank.Question) (*scoring.Snapshot, error) {
	answers, err := s.deps.Answers.BySession(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	if len(answers) == 0 {
		return nil, nil
	}

	byID := make(map[string]*bank.Question, len(pool))
	for i := range pool {
		byID[pool[i].ID] = &pool[i]
	}
	inputs := scoringInputs(answers, byID)
	if len(inputs) == 0 {
		return nil, nil
	}
	snap := scoring.ComputeSnapshot(inputs, sess.MaxQuestions)
	return &snap, nil
}

// scoringInputs resolves answers against their questions. Open-ended
// answers and answers to unknown questions contribute nothing.
func scoringInputs(answers []store.AnswerRecord, byID map[string]*bank.Question) []scoring.Input {
	inputs := make([]scoring.Input, 0, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok || !q.Scored() {
			continue
		}
		min, max, ok := q.ValueRange()
		if !ok {
			continue
		}
		domains := q.Domains
		if opt := q.OptionByID(a.OptionID); opt != nil && len(opt.Domains) > 0 {
			domains = opt.Domains
		}
		inputs = append(inputs, scoring.Input{
			QuestionID:    q.ID,
			Domains:       domains,
			Weight:        q.Weight,
			ReverseScored: q.ReverseScored,
			RawValue:      int(a.RawValue),
			ScaleMin:      min,
			ScaleMax:      max,
		})
	}
	return inputs
}
