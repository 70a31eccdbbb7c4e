package store

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by all repositories. The engine maps these to
// its own error vocabulary.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// guarantee, such as a second answer for the same question.
	ErrDuplicate = errors.New("store: duplicate")
)

// SessionStatus is the lifecycle state of a session row.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
	StatusAbandoned  SessionStatus = "ABANDONED"
)

// SessionRecord is a session row independent of the ent entity.
type SessionRecord struct {
	ID            string
	StudentID     string
	Grade         string
	Locale        string
	Status        SessionStatus
	MaxQuestions  int
	QuestionIndex int

	TestVersion    string
	BankVersion    string
	ScoringVersion string
	PromptVersion  string

	CreatedAt time.Time
	UpdatedAt time.Time

	// CompletedAt is set when the session reaches COMPLETED or
	// ABANDONED; nil while IN_PROGRESS.
	CompletedAt *time.Time
}

// SessionRepo manages session rows.
type SessionRepo interface {
	// Create inserts a new session.
	Create(ctx context.Context, rec *SessionRecord) error

	// Get returns the session with the given id, or ErrNotFound.
	Get(ctx context.Context, sessionID string) (*SessionRecord, error)

	// FindInProgress returns the student's open session, or ErrNotFound.
	FindInProgress(ctx context.Context, studentID string) (*SessionRecord, error)

	// IncrementQuestionIndex bumps the served-question counter.
	IncrementQuestionIndex(ctx context.Context, sessionID string) error

	// Close transitions the session to a terminal status and records
	// when that happened.
	Close(ctx context.Context, sessionID string, status SessionStatus, at time.Time) error
}

// AnswerRecord is one submitted answer.
type AnswerRecord struct {
	SessionID   string
	QuestionID  string
	RawValue    float64
	OptionID    string
	ValueLabel  string
	FreeText    string
	PromptShown string
	TimeSpentMs int64
	CreatedAt   time.Time
}

// AnswerRepo manages the append-only answer log.
type AnswerRepo interface {
	// Append inserts an answer. Returns ErrDuplicate when the question
	// was already answered in this session.
	Append(ctx context.Context, rec *AnswerRecord) error

	// BySession returns all answers for a session in submit order.
	BySession(ctx context.Context, sessionID string) ([]AnswerRecord, error)
}

// PromptVariant distinguishes canonical from personalized prompts.
type PromptVariant string

const (
	VariantRaw          PromptVariant = "RAW"
	VariantPersonalized PromptVariant = "PERSONALIZED"
)

// AskedOption is one answer option as it was rendered to the student.
type AskedOption struct {
	ID    string
	Label string
	Value int
}

// AskedRecord is one served question: the prompt and option set exactly
// as shown. Open-ended questions carry no options.
type AskedRecord struct {
	SessionID  string
	QuestionID string
	Position   int
	Variant    PromptVariant
	PromptText string
	Options    []AskedOption
}

// AskedRepo manages the log of served questions.
type AskedRepo interface {
	// Append records a served question. Returns ErrDuplicate when the
	// question was already served in this session.
	Append(ctx context.Context, rec *AskedRecord) error

	// BySession returns served questions ordered by position.
	BySession(ctx context.Context, sessionID string) ([]AskedRecord, error)
}

// DomainScoreRecord is the per-domain score breakdown in a result.
type DomainScoreRecord struct {
	RawSum    float64
	RawWeight float64
	Score     float64
}

// CourseRecord is a course recommendation frozen into a result.
type CourseRecord struct {
	Code   string
	Name   string
	Stream string
}

// ResultRecord is the finalized outcome of a session.
type ResultRecord struct {
	SessionID string
	StudentID string
	Grade     string

	DomainScores    map[string]DomainScoreRecord
	TopDomains      []string
	TopMargin       float64
	ConfidenceLevel string
	ConfidenceScore float64
	ScoredAnswers   int

	Stream       string
	CareerFields []string
	Guidance     string
	Courses      []CourseRecord

	Narrative        string
	AnswerMeanings   map[string]string
	DomainNarratives map[string]string

	TestVersion    string
	BankVersion    string
	ScoringVersion string
	PromptVersion  string

	CreatedAt time.Time
}

// ResultArtifacts are the regenerable prose fields of a result.
type ResultArtifacts struct {
	Narrative        string
	AnswerMeanings   map[string]string
	DomainNarratives map[string]string
}

// ResultRepo manages finalized results.
type ResultRepo interface {
	// Create inserts a result. Returns ErrDuplicate when the session
	// already has one.
	Create(ctx context.Context, rec *ResultRecord) error

	// BySession returns the result for a session, or ErrNotFound.
	BySession(ctx context.Context, sessionID string) (*ResultRecord, error)

	// UpdateArtifacts replaces only the regenerable prose fields of a
	// result; numeric fields are write-once.
	UpdateArtifacts(ctx context.Context, sessionID string, art ResultArtifacts) error

	// ListRecent returns the most recent results, newest first.
	ListRecent(ctx context.Context, limit int) ([]ResultRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// ModelUsage aggregates token consumption per model.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// PurposeUsage aggregates call volume and latency per purpose tag.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMEventRecord is one logged LLM API call.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRepo provides append and read access to LLM call events.
type LLMEventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Recent returns the most recent events, newest first.
	Recent(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// Get returns one event by row ID, or ErrNotFound.
	Get(ctx context.Context, id int) (*LLMEventRecord, error)

	// Usage returns aggregate token usage grouped by model.
	Usage(ctx context.Context) ([]ModelUsage, error)

	// UsageByPurpose returns call counts and latency grouped by purpose.
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}
