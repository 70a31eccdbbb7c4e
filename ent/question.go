// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/question"
	"github.com/dishalabs/disha/ent/schema"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UTC wall-clock time the row was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UTC wall-clock time of the last update
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Stable business identifier, e.g. r-01 or sc-02
	QuestionID string `json:"question_id,omitempty"`
	// Bank release this row belongs to
	BankVersion string `json:"bank_version,omitempty"`
	// Item format
	Type question.Type `json:"type,omitempty"`
	// Canonical prompt text
	Prompt string `json:"prompt,omitempty"`
	// RIASEC domain codes this item evidences
	Domains []string `json:"domains,omitempty"`
	// ReverseScored holds the value of the "reverse_scored" field.
	ReverseScored bool `json:"reverse_scored,omitempty"`
	// Contribution weight toward each tagged domain
	Weight float64 `json:"weight,omitempty"`
	// Inactive items are never served
	Active bool `json:"active,omitempty"`
	// Grade bands the item applies to; empty means all
	GradeBands []string `json:"grade_bands,omitempty"`
	// Explicit response scale lower bound
	ScaleMin int `json:"scale_min,omitempty"`
	// Explicit response scale upper bound
	ScaleMax int `json:"scale_max,omitempty"`
	// Scenario answer options
	Options      []schema.OptionSpec `json:"options,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldDomains, question.FieldGradeBands, question.FieldOptions:
			values[i] = new([]byte)
		case question.FieldReverseScored, question.FieldActive:
			values[i] = new(sql.NullBool)
		case question.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case question.FieldID, question.FieldScaleMin, question.FieldScaleMax:
			values[i] = new(sql.NullInt64)
		case question.FieldQuestionID, question.FieldBankVersion, question.FieldType, question.FieldPrompt:
			values[i] = new(sql.NullString)
		case question.FieldCreatedAt, question.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case question.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case question.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case question.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case question.FieldBankVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_version", values[i])
			} else if value.Valid {
				_m.BankVersion = value.String
			}
		case question.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = question.Type(value.String)
			}
		case question.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case question.FieldDomains:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domains", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Domains); err != nil {
					return fmt.Errorf("unmarshal field domains: %w", err)
				}
			}
		case question.FieldReverseScored:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reverse_scored", values[i])
			} else if value.Valid {
				_m.ReverseScored = value.Bool
			}
		case question.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case question.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case question.FieldGradeBands:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field grade_bands", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GradeBands); err != nil {
					return fmt.Errorf("unmarshal field grade_bands: %w", err)
				}
			}
		case question.FieldScaleMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scale_min", values[i])
			} else if value.Valid {
				_m.ScaleMin = int(value.Int64)
			}
		case question.FieldScaleMax:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scale_max", values[i])
			} else if value.Valid {
				_m.ScaleMax = int(value.Int64)
			}
		case question.FieldOptions:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("bank_version=")
	builder.WriteString(_m.BankVersion)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("domains=")
	builder.WriteString(fmt.Sprintf("%v", _m.Domains))
	builder.WriteString(", ")
	builder.WriteString("reverse_scored=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReverseScored))
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("grade_bands=")
	builder.WriteString(fmt.Sprintf("%v", _m.GradeBands))
	builder.WriteString(", ")
	builder.WriteString("scale_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScaleMin))
	builder.WriteString(", ")
	builder.WriteString("scale_max=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScaleMax))
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
