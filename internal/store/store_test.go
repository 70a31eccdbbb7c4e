package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dishalabs/disha/internal/bank"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSession(id, student string) *SessionRecord {
	return &SessionRecord{
		ID:             id,
		StudentID:      student,
		Grade:          "9-10",
		Locale:         "en",
		Status:         StatusInProgress,
		MaxQuestions:   20,
		TestVersion:    "1.0",
		BankVersion:    bank.DefaultVersion,
		ScoringVersion: "1.0",
		PromptVersion:  "1.0",
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	if err := repo.Create(ctx, testSession("sess-1", "arjun")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StudentID != "arjun" || got.Status != StatusInProgress {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.MaxQuestions != 20 || got.QuestionIndex != 0 {
		t.Fatalf("unexpected counters: %+v", got)
	}

	if _, err := repo.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionFindInProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	if _, err := repo.FindInProgress(ctx, "meera"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := repo.Create(ctx, testSession("sess-a", "meera")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindInProgress(ctx, "meera")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != "sess-a" {
		t.Fatalf("expected sess-a, got %s", got.ID)
	}

	// A completed session no longer surfaces.
	if err := repo.Close(ctx, "sess-a", StatusCompleted, time.Now().UTC()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := repo.FindInProgress(ctx, "meera"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after completion, got %v", err)
	}
}

func TestSessionCloseRecordsCompletion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	if err := repo.Create(ctx, testSession("sess-done", "meera")); err != nil {
		t.Fatalf("create: %v", err)
	}

	before, err := repo.Get(ctx, "sess-done")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if before.CompletedAt != nil {
		t.Fatalf("expected no completion time while in progress, got %v", before.CompletedAt)
	}

	done := time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)
	if err := repo.Close(ctx, "sess-done", StatusCompleted, done); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, err := repo.Get(ctx, "sess-done")
	if err != nil {
		t.Fatalf("get after close: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", got.Status)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(done) {
		t.Fatalf("expected completion time %v, got %v", done, got.CompletedAt)
	}

	if err := repo.Close(ctx, "missing", StatusAbandoned, done); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionLocaleRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	rec := testSession("sess-hi", "meera")
	rec.Locale = "hi"
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "sess-hi")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Locale != "hi" {
		t.Fatalf("expected locale hi, got %q", got.Locale)
	}
}

func TestSessionIncrementQuestionIndex(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	if err := repo.Create(ctx, testSession("sess-inc", "dev")); err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.IncrementQuestionIndex(ctx, "sess-inc"); err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}

	got, err := repo.Get(ctx, "sess-inc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.QuestionIndex != 3 {
		t.Fatalf("expected question index 3, got %d", got.QuestionIndex)
	}

	if err := repo.IncrementQuestionIndex(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnswerDuplicateRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Answers()

	first := &AnswerRecord{SessionID: "sess-1", QuestionID: "likert-r-01", RawValue: 4}
	if err := repo.Append(ctx, first); err != nil {
		t.Fatalf("append: %v", err)
	}

	dup := &AnswerRecord{SessionID: "sess-1", QuestionID: "likert-r-01", RawValue: 1}
	if err := repo.Append(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The original answer is untouched.
	answers, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(answers) != 1 || answers[0].RawValue != 4 {
		t.Fatalf("expected original answer preserved, got %+v", answers)
	}

	// Same question in another session is fine.
	other := &AnswerRecord{SessionID: "sess-2", QuestionID: "likert-r-01", RawValue: 2}
	if err := repo.Append(ctx, other); err != nil {
		t.Fatalf("append other session: %v", err)
	}
}

func TestAskedOrderedByPosition(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Asked()

	records := []AskedRecord{
		{SessionID: "sess-1", QuestionID: "q-b", Position: 2, Variant: VariantPersonalized, PromptText: "custom b"},
		{SessionID: "sess-1", QuestionID: "q-a", Position: 1, Variant: VariantRaw, PromptText: "raw a"},
		{SessionID: "sess-1", QuestionID: "q-c", Position: 3, Variant: VariantRaw, PromptText: "raw c"},
	}
	for i := range records {
		if err := repo.Append(ctx, &records[i]); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, want := range []string{"q-a", "q-b", "q-c"} {
		if got[i].QuestionID != want {
			t.Fatalf("position %d: expected %s, got %s", i+1, want, got[i].QuestionID)
		}
	}
	if got[1].Variant != VariantPersonalized {
		t.Fatalf("expected personalized variant, got %s", got[1].Variant)
	}

	dup := AskedRecord{SessionID: "sess-1", QuestionID: "q-a", Position: 4, PromptText: "again"}
	if err := repo.Append(ctx, &dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for re-served question, got %v", err)
	}
}

func TestAskedPreservesRenderedOptions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Asked()

	withOpts := AskedRecord{
		SessionID:  "sess-1",
		QuestionID: "sc-01",
		Position:   1,
		Variant:    VariantRaw,
		PromptText: "A school fair needs planning. What do you pick up first?",
		Options: []AskedOption{
			{ID: "a", Label: "Build the stalls", Value: 5},
			{ID: "b", Label: "Plan the budget", Value: 5},
		},
	}
	if err := repo.Append(ctx, &withOpts); err != nil {
		t.Fatalf("append: %v", err)
	}

	openEnded := AskedRecord{
		SessionID:  "sess-1",
		QuestionID: "open-01",
		Position:   2,
		Variant:    VariantRaw,
		PromptText: "Describe a project you enjoyed.",
	}
	if err := repo.Append(ctx, &openEnded); err != nil {
		t.Fatalf("append open-ended: %v", err)
	}

	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if len(got[0].Options) != 2 {
		t.Fatalf("expected 2 options, got %+v", got[0].Options)
	}
	if got[0].Options[0].ID != "a" || got[0].Options[0].Label != "Build the stalls" || got[0].Options[0].Value != 5 {
		t.Fatalf("unexpected first option: %+v", got[0].Options[0])
	}
	if got[0].Options[1].Label != "Plan the budget" {
		t.Fatalf("options out of display order: %+v", got[0].Options)
	}
	if len(got[1].Options) != 0 {
		t.Fatalf("expected no options for open-ended, got %+v", got[1].Options)
	}
}

func testResult(sessionID string) *ResultRecord {
	return &ResultRecord{
		SessionID: sessionID,
		StudentID: "arjun",
		Grade:     "9-10",
		DomainScores: map[string]DomainScoreRecord{
			"R": {RawSum: 3.2, RawWeight: 4, Score: 80},
			"I": {RawSum: 2.8, RawWeight: 4, Score: 70},
		},
		TopDomains:      []string{"R", "I"},
		TopMargin:       10,
		ConfidenceLevel: "MEDIUM",
		ConfidenceScore: 0.5,
		ScoredAnswers:   12,
		Stream:          "Science (PCM)",
		CareerFields:    []string{"Engineering", "Data Science"},
		Guidance:        "Consider the PCM stream.",
		Courses:         []CourseRecord{{Code: "ENG-01", Name: "B.Tech", Stream: "Science (PCM)"}},
		TestVersion:     "1.0",
		BankVersion:     bank.DefaultVersion,
		ScoringVersion:  "1.0",
		PromptVersion:   "1.0",
	}
}

func TestResultCreateAndReload(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Results()

	if err := repo.Create(ctx, testResult("sess-1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if got.Stream != "Science (PCM)" {
		t.Fatalf("expected stream round-trip, got %q", got.Stream)
	}
	if got.DomainScores["R"].Score != 80 {
		t.Fatalf("expected R score 80, got %v", got.DomainScores["R"].Score)
	}
	if len(got.Courses) != 1 || got.Courses[0].Code != "ENG-01" {
		t.Fatalf("expected courses round-trip, got %+v", got.Courses)
	}
}

func TestResultUniquePerSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Results()

	if err := repo.Create(ctx, testResult("sess-1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := testResult("sess-1")
	second.Stream = "Commerce"
	if err := repo.Create(ctx, second); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The first result wins.
	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if got.Stream != "Science (PCM)" {
		t.Fatalf("expected original result preserved, got %q", got.Stream)
	}
}

func TestResultUpdateArtifactsOnly(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Results()

	if err := repo.Create(ctx, testResult("sess-1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	art := ResultArtifacts{
		Narrative:        "A new narrative.",
		AnswerMeanings:   map[string]string{"r-01": "You enjoy hands-on work."},
		DomainNarratives: map[string]string{"R": "Practical and grounded."},
	}
	if err := repo.UpdateArtifacts(ctx, "sess-1", art); err != nil {
		t.Fatalf("update artifacts: %v", err)
	}

	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if got.Narrative != "A new narrative." {
		t.Fatalf("expected updated narrative, got %q", got.Narrative)
	}
	if got.AnswerMeanings["r-01"] == "" || got.DomainNarratives["R"] == "" {
		t.Fatal("expected explanation blobs to round-trip")
	}
	if got.DomainScores["R"].Score != 80 || got.Stream != "Science (PCM)" {
		t.Fatal("expected scores and mapping unchanged by artifact update")
	}

	if err := repo.UpdateArtifacts(ctx, "missing", art); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResultListRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Results()

	for _, id := range []string{"sess-1", "sess-2", "sess-3"} {
		if err := repo.Create(ctx, testResult(id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	got, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
}

func TestBankSeedAndRead(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Bank()

	n, err := repo.SeedIfEmpty(ctx, bank.DefaultVersion, bank.SeedQuestions())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n == 0 {
		t.Fatal("expected seed to insert rows")
	}

	// Second seed is a no-op.
	n2, err := repo.SeedIfEmpty(ctx, bank.DefaultVersion, bank.SeedQuestions())
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if n2 != 0 {
		t.Fatalf("expected reseed no-op, inserted %d", n2)
	}

	all, err := repo.ActiveQuestions(ctx, bank.DefaultVersion, "9-10")
	if err != nil {
		t.Fatalf("active questions: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("expected active questions")
	}
	for _, q := range all {
		if !q.Active {
			t.Fatalf("inactive question served: %s", q.ID)
		}
		if !q.AppliesToGrade("9-10") {
			t.Fatalf("grade-filtered question served: %s", q.ID)
		}
	}

	// Senior grade sees at least as many questions (banded items).
	senior, err := repo.ActiveQuestions(ctx, bank.DefaultVersion, "11-12")
	if err != nil {
		t.Fatalf("active questions senior: %v", err)
	}
	if len(senior) < len(all) {
		t.Fatalf("expected senior band >= junior, got %d < %d", len(senior), len(all))
	}

	q, err := repo.Question(ctx, bank.DefaultVersion, all[0].ID)
	if err != nil {
		t.Fatalf("question: %v", err)
	}
	if q.ID != all[0].ID || q.Prompt == "" {
		t.Fatalf("unexpected question: %+v", q)
	}

	if _, err := repo.Question(ctx, bank.DefaultVersion, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBankRoundTripPreservesOptions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Bank()

	if _, err := repo.SeedIfEmpty(ctx, bank.DefaultVersion, bank.SeedQuestions()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	q, err := repo.Question(ctx, bank.DefaultVersion, "sc-01")
	if err != nil {
		t.Fatalf("question: %v", err)
	}
	if q.Type != bank.TypeScenario {
		t.Fatalf("expected scenario type, got %s", q.Type)
	}
	if len(q.Options) == 0 {
		t.Fatal("expected options to survive the round trip")
	}
	min, max, ok := q.ValueRange()
	if !ok || min != 1 || max != 5 {
		t.Fatalf("expected explicit 1..5 range, got %d..%d ok=%v", min, max, ok)
	}
	for _, o := range q.Options {
		if len(o.Domains) == 0 {
			t.Fatalf("expected option domain override for %s", o.ID)
		}
	}
}

func TestLLMEventAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.LLMEvents()

	events := []LLMRequestEventData{
		{Model: "gpt-4o-mini", Purpose: "report_narrative", InputTokens: 100, OutputTokens: 50, Success: true},
		{Model: "gpt-4o-mini", Purpose: "personalize_question", InputTokens: 40, OutputTokens: 10, Success: true},
		{Model: "gemini-2.0-flash", Purpose: "choose_question", InputTokens: 20, OutputTokens: 5, Success: false, ErrorMessage: "timeout"},
	}
	for _, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.Usage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byModel := make(map[string]ModelUsage)
	for _, u := range usage {
		byModel[u.Model] = u
	}

	mini := byModel["gpt-4o-mini"]
	if mini.Requests != 2 || mini.InputTokens != 140 || mini.OutputTokens != 60 {
		t.Fatalf("unexpected gpt-4o-mini usage: %+v", mini)
	}
	flash := byModel["gemini-2.0-flash"]
	if flash.Requests != 1 {
		t.Fatalf("unexpected gemini usage: %+v", flash)
	}

	byPurpose, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 3 {
		t.Fatalf("expected 3 purpose rows, got %d", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Calls != 1 {
			t.Fatalf("unexpected call count for %s: %+v", u.Purpose, u)
		}
	}
}

func TestLLMEventRecentAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.LLMEvents()

	for i := 0; i < 3; i++ {
		ev := LLMRequestEventData{
			Model:       "gpt-4o-mini",
			Purpose:     "report_narrative",
			InputTokens: 10 * (i + 1),
			Success:     true,
			RequestBody: "prompt",
		}
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 events, got %d", len(recent))
	}

	got, err := repo.Get(ctx, recent[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RequestBody != "prompt" || got.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected event: %+v", got)
	}

	if _, err := repo.Get(ctx, 999999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
