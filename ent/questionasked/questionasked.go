// Code generated by ent, DO NOT EDIT.

package questionasked

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionasked type in the database.
	Label = "question_asked"
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
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldPromptVariant holds the string denoting the prompt_variant field in the database.
	FieldPromptVariant = "prompt_variant"
	// FieldPromptText holds the string denoting the prompt_text field in the database.
	FieldPromptText = "prompt_text"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// Table holds the table name of the questionasked in the database.
	Table = "question_askeds"
)

// Columns holds all SQL columns for questionasked fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSessionID,
	FieldQuestionID,
	FieldPosition,
	FieldPromptVariant,
	FieldPromptText,
	FieldOptions,
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
	// PromptTextValidator is a validator for the "prompt_text" field. It is called by the builders before save.
	PromptTextValidator func(string) error
)

// PromptVariant defines the type for the "prompt_variant" enum field.
type PromptVariant string

// PromptVariantRAW is the default value of the PromptVariant enum.
const DefaultPromptVariant = PromptVariantRAW

// PromptVariant values.
const (
	PromptVariantRAW          PromptVariant = "RAW"
	PromptVariantPERSONALIZED PromptVariant = "PERSONALIZED"
)

func (pv PromptVariant) String() string {
	return string(pv)
}

// PromptVariantValidator is a validator for the "prompt_variant" field enum values. It is called by the builders before save.
func PromptVariantValidator(pv PromptVariant) error {
	switch pv {
	case PromptVariantRAW, PromptVariantPERSONALIZED:
		return nil
	default:
		return fmt.Errorf("questionasked: invalid enum value for prompt_variant field: %q", pv)
	}
}

// OrderOption defines the ordering options for the QuestionAsked queries.
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

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByPromptVariant orders the results by the prompt_variant field.
func ByPromptVariant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVariant, opts...).ToFunc()
}

// ByPromptText orders the results by the prompt_text field.
func ByPromptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptText, opts...).ToFunc()
}
