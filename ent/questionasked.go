// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/questionasked"
	"github.com/dishalabs/disha/ent/schema"
)

// QuestionAsked is the model entity for the QuestionAsked schema.
type QuestionAsked struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UTC wall-clock time the row was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UTC wall-clock time of the last update
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// 1-based serve order within the session
	Position int `json:"position,omitempty"`
	// PromptVariant holds the value of the "prompt_variant" field.
	PromptVariant questionasked.PromptVariant `json:"prompt_variant,omitempty"`
	// Prompt as shown, after any personalization
	PromptText string `json:"prompt_text,omitempty"`
	// Options as shown, in display order; empty for open-ended items
	Options      []schema.OptionSpec `json:"options,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionAsked) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionasked.FieldOptions:
			values[i] = new([]byte)
		case questionasked.FieldID, questionasked.FieldPosition:
			values[i] = new(sql.NullInt64)
		case questionasked.FieldSessionID, questionasked.FieldQuestionID, questionasked.FieldPromptVariant, questionasked.FieldPromptText:
			values[i] = new(sql.NullString)
		case questionasked.FieldCreatedAt, questionasked.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionAsked fields.
func (_m *QuestionAsked) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionasked.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionasked.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case questionasked.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case questionasked.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case questionasked.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case questionasked.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case questionasked.FieldPromptVariant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_variant", values[i])
			} else if value.Valid {
				_m.PromptVariant = questionasked.PromptVariant(value.String)
			}
		case questionasked.FieldPromptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_text", values[i])
			} else if value.Valid {
				_m.PromptText = value.String
			}
		case questionasked.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionAsked.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionAsked) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionAsked.
// Note that you need to call QuestionAsked.Unwrap() before calling this method if this QuestionAsked
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionAsked) Update() *QuestionAskedUpdateOne {
	return NewQuestionAskedClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionAsked entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionAsked) Unwrap() *QuestionAsked {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionAsked is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionAsked) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionAsked(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("prompt_variant=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptVariant))
	builder.WriteString(", ")
	builder.WriteString("prompt_text=")
	builder.WriteString(_m.PromptText)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionAskeds is a parsable slice of QuestionAsked.
type QuestionAskeds []*QuestionAsked
