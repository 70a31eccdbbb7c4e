// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/answer"
)

// Answer is the model entity for the Answer schema.
type Answer struct {
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
	// Raw response value on the question's scale
	RawValue float64 `json:"raw_value,omitempty"`
	// Chosen option id; options may override domain tags
	OptionID string `json:"option_id,omitempty"`
	// Chosen option label, for scenario questions
	ValueLabel string `json:"value_label,omitempty"`
	// Free-form response, for open questions
	FreeText string `json:"free_text,omitempty"`
	// Exact prompt text the student saw
	PromptShown string `json:"prompt_shown,omitempty"`
	// TimeSpentMs holds the value of the "time_spent_ms" field.
	TimeSpentMs  int64 `json:"time_spent_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Answer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answer.FieldRawValue:
			values[i] = new(sql.NullFloat64)
		case answer.FieldID, answer.FieldTimeSpentMs:
			values[i] = new(sql.NullInt64)
		case answer.FieldSessionID, answer.FieldQuestionID, answer.FieldOptionID, answer.FieldValueLabel, answer.FieldFreeText, answer.FieldPromptShown:
			values[i] = new(sql.NullString)
		case answer.FieldCreatedAt, answer.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Answer fields.
func (_m *Answer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answer.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case answer.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case answer.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case answer.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case answer.FieldRawValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_value", values[i])
			} else if value.Valid {
				_m.RawValue = value.Float64
			}
		case answer.FieldOptionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_id", values[i])
			} else if value.Valid {
				_m.OptionID = value.String
			}
		case answer.FieldValueLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_label", values[i])
			} else if value.Valid {
				_m.ValueLabel = value.String
			}
		case answer.FieldFreeText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field free_text", values[i])
			} else if value.Valid {
				_m.FreeText = value.String
			}
		case answer.FieldPromptShown:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_shown", values[i])
			} else if value.Valid {
				_m.PromptShown = value.String
			}
		case answer.FieldTimeSpentMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_ms", values[i])
			} else if value.Valid {
				_m.TimeSpentMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Answer.
// This includes values selected through modifiers, order, etc.
func (_m *Answer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Answer.
// Note that you need to call Answer.Unwrap() before calling this method if this Answer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Answer) Update() *AnswerUpdateOne {
	return NewAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Answer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Answer) Unwrap() *Answer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Answer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Answer) String() string {
	var builder strings.Builder
	builder.WriteString("Answer(")
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
	builder.WriteString("raw_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawValue))
	builder.WriteString(", ")
	builder.WriteString("option_id=")
	builder.WriteString(_m.OptionID)
	builder.WriteString(", ")
	builder.WriteString("value_label=")
	builder.WriteString(_m.ValueLabel)
	builder.WriteString(", ")
	builder.WriteString("free_text=")
	builder.WriteString(_m.FreeText)
	builder.WriteString(", ")
	builder.WriteString("prompt_shown=")
	builder.WriteString(_m.PromptShown)
	builder.WriteString(", ")
	builder.WriteString("time_spent_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMs))
	builder.WriteByte(')')
	return builder.String()
}

// Answers is a parsable slice of Answer.
type Answers []*Answer
