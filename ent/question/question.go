// Code generated by ent, DO NOT EDIT.

package question

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldBankVersion holds the string denoting the bank_version field in the database.
	FieldBankVersion = "bank_version"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldDomains holds the string denoting the domains field in the database.
	FieldDomains = "domains"
	// FieldReverseScored holds the string denoting the reverse_scored field in the database.
	FieldReverseScored = "reverse_scored"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldGradeBands holds the string denoting the grade_bands field in the database.
	FieldGradeBands = "grade_bands"
	// FieldScaleMin holds the string denoting the scale_min field in the database.
	FieldScaleMin = "scale_min"
	// FieldScaleMax holds the string denoting the scale_max field in the database.
	FieldScaleMax = "scale_max"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldQuestionID,
	FieldBankVersion,
	FieldType,
	FieldPrompt,
	FieldDomains,
	FieldReverseScored,
	FieldWeight,
	FieldActive,
	FieldGradeBands,
	FieldScaleMin,
	FieldScaleMax,
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
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// BankVersionValidator is a validator for the "bank_version" field. It is called by the builders before save.
	BankVersionValidator func(string) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// DefaultReverseScored holds the default value on creation for the "reverse_scored" field.
	DefaultReverseScored bool
	// DefaultWeight holds the default value on creation for the "weight" field.
	DefaultWeight float64
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeLikert   Type = "likert"
	TypeScenario Type = "scenario"
	TypeOpen     Type = "open"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeLikert, TypeScenario, TypeOpen:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Question queries.
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

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByBankVersion orders the results by the bank_version field.
func ByBankVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankVersion, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByReverseScored orders the results by the reverse_scored field.
func ByReverseScored(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReverseScored, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByScaleMin orders the results by the scale_min field.
func ByScaleMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScaleMin, opts...).ToFunc()
}

// ByScaleMax orders the results by the scale_max field.
func ByScaleMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScaleMax, opts...).ToFunc()
}
