// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
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
	// FieldLocale holds the string denoting the locale field in the database.
	FieldLocale = "locale"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldMaxQuestions holds the string denoting the max_questions field in the database.
	FieldMaxQuestions = "max_questions"
	// FieldQuestionIndex holds the string denoting the question_index field in the database.
	FieldQuestionIndex = "question_index"
	// FieldTestVersion holds the string denoting the test_version field in the database.
	FieldTestVersion = "test_version"
	// FieldBankVersion holds the string denoting the bank_version field in the database.
	FieldBankVersion = "bank_version"
	// FieldScoringVersion holds the string denoting the scoring_version field in the database.
	FieldScoringVersion = "scoring_version"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSessionID,
	FieldStudentID,
	FieldGrade,
	FieldLocale,
	FieldStatus,
	FieldCompletedAt,
	FieldMaxQuestions,
	FieldQuestionIndex,
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
	// DefaultLocale holds the default value on creation for the "locale" field.
	DefaultLocale string
	// DefaultQuestionIndex holds the default value on creation for the "question_index" field.
	DefaultQuestionIndex int
	// TestVersionValidator is a validator for the "test_version" field. It is called by the builders before save.
	TestVersionValidator func(string) error
	// BankVersionValidator is a validator for the "bank_version" field. It is called by the builders before save.
	BankVersionValidator func(string) error
	// ScoringVersionValidator is a validator for the "scoring_version" field. It is called by the builders before save.
	ScoringVersionValidator func(string) error
	// PromptVersionValidator is a validator for the "prompt_version" field. It is called by the builders before save.
	PromptVersionValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIN_PROGRESS is the default value of the Status enum.
const DefaultStatus = StatusIN_PROGRESS

// Status values.
const (
	StatusIN_PROGRESS Status = "IN_PROGRESS"
	StatusCOMPLETED   Status = "COMPLETED"
	StatusABANDONED   Status = "ABANDONED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIN_PROGRESS, StatusCOMPLETED, StatusABANDONED:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Session queries.
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

// ByLocale orders the results by the locale field.
func ByLocale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocale, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByMaxQuestions orders the results by the max_questions field.
func ByMaxQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxQuestions, opts...).ToFunc()
}

// ByQuestionIndex orders the results by the question_index field.
func ByQuestionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionIndex, opts...).ToFunc()
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
