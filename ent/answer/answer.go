// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answer type in the database.
	Label = "answer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldRawValue holds the string denoting the raw_value field in the database.
	FieldRawValue = "raw_value"
	// FieldOptionID holds the string denoting the option_id field in the database.
	FieldOptionID = "option_id"
	// FieldValueLabel holds the string denoting the value_label field in the database.
	FieldValueLabel = "value_label"
	// FieldFreeText holds the string denoting the free_text field in the database.
	FieldFreeText = "free_text"
	// FieldPromptShown holds the string denoting the prompt_shown field in the database.
	FieldPromptShown = "prompt_shown"
	// FieldTimeSpentMs holds the string denoting the time_spent_ms field in the database.
	FieldTimeSpentMs = "time_spent_ms"
	// Table holds the table name of the answer in the database.
	Table = "answers"
)

// Columns holds all SQL columns for answer fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSessionID,
	FieldQuestionID,
	FieldRawValue,
	FieldOptionID,
	FieldValueLabel,
	FieldFreeText,
	FieldPromptShown,
	FieldTimeSpentMs,
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
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultOptionID holds the default value on creation for the "option_id" field.
	DefaultOptionID string
	// DefaultValueLabel holds the default value on creation for the "value_label" field.
	DefaultValueLabel string
	// DefaultFreeText holds the default value on creation for the "free_text" field.
	DefaultFreeText string
	// DefaultPromptShown holds the default value on creation for the "prompt_shown" field.
	DefaultPromptShown string
	// DefaultTimeSpentMs holds the default value on creation for the "time_spent_ms" field.
	DefaultTimeSpentMs int64
)

// OrderOption defines the ordering options for the Answer queries.
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

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByRawValue orders the results by the raw_value field.
func ByRawValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawValue, opts...).ToFunc()
}

// ByOptionID orders the results by the option_id field.
func ByOptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionID, opts...).ToFunc()
}

// ByValueLabel orders the results by the value_label field.
func ByValueLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueLabel, opts...).ToFunc()
}

// ByFreeText orders the results by the free_text field.
func ByFreeText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreeText, opts...).ToFunc()
}

// ByPromptShown orders the results by the prompt_shown field.
func ByPromptShown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptShown, opts...).ToFunc()
}

// ByTimeSpentMs orders the results by the time_spent_ms field.
func ByTimeSpentMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMs, opts...).ToFunc()
}
