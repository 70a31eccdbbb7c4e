// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the result type in the database.
	Label = "result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldDomainScores holds the string denoting the domain_scores field in the database.
	FieldDomainScores = "domain_scores"
	// FieldTopDomains holds the string denoting the top_domains field in the database.
	FieldTopDomains = "top_domains"
	// FieldTopMargin holds the string denoting the top_margin field in the database.
	FieldTopMargin = "top_margin"
	// FieldConfidenceLevel holds the string denoting the confidence_level field in the database.
	FieldConfidenceLevel = "confidence_level"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldScoredAnswers holds the string denoting the scored_answers field in the database.
	FieldScoredAnswers = "scored_answers"
	// FieldStream holds the string denoting the stream field in the database.
	FieldStream = "stream"
	// FieldCareerFields holds the string denoting the career_fields field in the database.
	FieldCareerFields = "career_fields"
	// FieldGuidance holds the string denoting the guidance field in the database.
	FieldGuidance = "guidance"
	// FieldCourses holds the string denoting the courses field in the database.
	FieldCourses = "courses"
	// FieldNarrative holds the string denoting the narrative field in the database.
	FieldNarrative = "narrative"
	// FieldAnswerMeanings holds the string denoting the answer_meanings field in the database.
	FieldAnswerMeanings = "answer_meanings"
	// FieldDomainNarratives holds the string denoting the domain_narratives field in the database.
	FieldDomainNarratives = "domain_narratives"
	// FieldTestVersion holds the string denoting the test_version field in the database.
	FieldTestVersion = "test_version"
	// FieldBankVersion holds the string denoting the bank_version field in the database.
	FieldBankVersion = "bank_version"
	// FieldScoringVersion holds the string denoting the scoring_version field in the database.
	FieldScoringVersion = "scoring_version"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// Table holds the table name of the result in the database.
	Table = "results"
)

// Columns holds all SQL columns for result fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSessionID,
	FieldStudentID,
	FieldGrade,
	FieldDomainScores,
	FieldTopDomains,
	FieldTopMargin,
	FieldConfidenceLevel,
	FieldConfidenceScore,
	FieldScoredAnswers,
	FieldStream,
	FieldCareerFields,
	FieldGuidance,
	FieldCourses,
	FieldNarrative,
	FieldAnswerMeanings,
	FieldDomainNarratives,
	FieldTestVersion,
	FieldBankVersion,
	FieldScoringVersion,
	FieldPromptVersion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(string) error
	// DefaultTopMargin holds the default value on creation for the "top_margin" field.
	DefaultTopMargin float64
	// ConfidenceLevelValidator is a validator for the "confidence_level" field. It is called by the builders before save.
	ConfidenceLevelValidator func(string) error
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore float64
	// DefaultScoredAnswers holds the default value on creation for the "scored_answers" field.
	DefaultScoredAnswers int
	// StreamValidator is a validator for the "stream" field. It is called by the builders before save.
	StreamValidator func(string) error
	// DefaultGuidance holds the default value on creation for the "guidance" field.
	DefaultGuidance string
	// DefaultNarrative holds the default value on creation for the "narrative" field.
	DefaultNarrative string
	// TestVersionValidator is a validator for the "test_version" field. It is called by the builders before save.
	TestVersionValidator func(string) error
	// BankVersionValidator is a validator for the "bank_version" field. It is called by the builders before save.
	BankVersionValidator func(string) error
	// ScoringVersionValidator is a validator for the "scoring_version" field. It is called by the builders before save.
	ScoringVersionValidator func(string) error
	// PromptVersionValidator is a validator for the "prompt_version" field. It is called by the builders before save.
	PromptVersionValidator func(string) error
)

// OrderOption defines the ordering options for the Result queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByTopMargin orders the results by the top_margin field.
func ByTopMargin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopMargin, opts...).ToFunc()
}

// ByConfidenceLevel orders the results by the confidence_level field.
func ByConfidenceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLevel, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByScoredAnswers orders the results by the scored_answers field.
func ByScoredAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoredAnswers, opts...).ToFunc()
}

// ByStream orders the results by the stream field.
func ByStream(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStream, opts...).ToFunc()
}

// ByGuidance orders the results by the guidance field.
func ByGuidance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuidance, opts...).ToFunc()
}

// ByNarrative orders the results by the narrative field.
func ByNarrative(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarrative, opts...).ToFunc()
}

// ByTestVersion orders the results by the test_version field.
func ByTestVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestVersion, opts...).ToFunc()
}

// ByBankVersion orders the results by the bank_version field.
func ByBankVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankVersion, opts...).ToFunc()
}

// ByScoringVersion orders the results by the scoring_version field.
func ByScoringVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoringVersion, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}
