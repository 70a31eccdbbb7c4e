// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/result"
	"github.com/dishalabs/disha/ent/schema"
)

// Result is the model entity for the Result schema.
type Result struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UTC wall-clock time the row was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UTC wall-clock time of the last update
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// Per-domain score breakdown keyed by RIASEC code
	DomainScores map[string]schema.DomainScoreSpec `json:"domain_scores,omitempty"`
	// One or two leading domain codes, ranked
	TopDomains []string `json:"top_domains,omitempty"`
	// TopMargin holds the value of the "top_margin" field.
	TopMargin float64 `json:"top_margin,omitempty"`
	// HIGH, MEDIUM or LOW
	ConfidenceLevel string `json:"confidence_level,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// ScoredAnswers holds the value of the "scored_answers" field.
	ScoredAnswers int `json:"scored_answers,omitempty"`
	// Suggested academic stream
	Stream string `json:"stream,omitempty"`
	// CareerFields holds the value of the "career_fields" field.
	CareerFields []string `json:"career_fields,omitempty"`
	// Guidance holds the value of the "guidance" field.
	Guidance string `json:"guidance,omitempty"`
	// Catalog recommendations frozen at completion
	Courses []schema.CourseSpec `json:"courses,omitempty"`
	// Report prose; regenerable
	Narrative string `json:"narrative,omitempty"`
	// Per-answer explanation text keyed by question id; regenerable
	AnswerMeanings map[string]string `json:"answer_meanings,omitempty"`
	// Per-domain explanation text keyed by RIASEC code; regenerable
	DomainNarratives map[string]string `json:"domain_narratives,omitempty"`
	// TestVersion holds the value of the "test_version" field.
	TestVersion string `json:"test_version,omitempty"`
	// BankVersion holds the value of the "bank_version" field.
	BankVersion string `json:"bank_version,omitempty"`
	// ScoringVersion holds the value of the "scoring_version" field.
	ScoringVersion string `json:"scoring_version,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion string `json:"prompt_version,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Result) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case result.FieldDomainScores, result.FieldTopDomains, result.FieldCareerFields, result.FieldCourses, result.FieldAnswerMeanings, result.FieldDomainNarratives:
			values[i] = new([]byte)
		case result.FieldTopMargin, result.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case result.FieldID, result.FieldScoredAnswers:
			values[i] = new(sql.NullInt64)
		case result.FieldSessionID, result.FieldStudentID, result.FieldGrade, result.FieldConfidenceLevel, result.FieldStream, result.FieldGuidance, result.FieldNarrative, result.FieldTestVersion, result.FieldBankVersion, result.FieldScoringVersion, result.FieldPromptVersion:
			values[i] = new(sql.NullString)
		case result.FieldCreatedAt, result.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Result fields.
func (_m *Result) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case result.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case result.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case result.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case result.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case result.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case result.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case result.FieldDomainScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domain_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainScores); err != nil {
					return fmt.Errorf("unmarshal field domain_scores: %w", err)
				}
			}
		case result.FieldTopDomains:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field top_domains", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopDomains); err != nil {
					return fmt.Errorf("unmarshal field top_domains: %w", err)
				}
			}
		case result.FieldTopMargin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field top_margin", values[i])
			} else if value.Valid {
				_m.TopMargin = value.Float64
			}
		case result.FieldConfidenceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_level", values[i])
			} else if value.Valid {
				_m.ConfidenceLevel = value.String
			}
		case result.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case result.FieldScoredAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scored_answers", values[i])
			} else if value.Valid {
				_m.ScoredAnswers = int(value.Int64)
			}
		case result.FieldStream:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream", values[i])
			} else if value.Valid {
				_m.Stream = value.String
			}
		case result.FieldCareerFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field career_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CareerFields); err != nil {
					return fmt.Errorf("unmarshal field career_fields: %w", err)
				}
			}
		case result.FieldGuidance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guidance", values[i])
			} else if value.Valid {
				_m.Guidance = value.String
			}
		case result.FieldCourses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field courses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Courses); err != nil {
					return fmt.Errorf("unmarshal field courses: %w", err)
				}
			}
		case result.FieldNarrative:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative", values[i])
			} else if value.Valid {
				_m.Narrative = value.String
			}
		case result.FieldAnswerMeanings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answer_meanings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnswerMeanings); err != nil {
					return fmt.Errorf("unmarshal field answer_meanings: %w", err)
				}
			}
		case result.FieldDomainNarratives:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domain_narratives", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainNarratives); err != nil {
					return fmt.Errorf("unmarshal field domain_narratives: %w", err)
				}
			}
		case result.FieldTestVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_version", values[i])
			} else if value.Valid {
				_m.TestVersion = value.String
			}
		case result.FieldBankVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_version", values[i])
			} else if value.Valid {
				_m.BankVersion = value.String
			}
		case result.FieldScoringVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scoring_version", values[i])
			} else if value.Valid {
				_m.ScoringVersion = value.String
			}
		case result.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Result.
// This includes values selected through modifiers, order, etc.
func (_m *Result) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Result.
// Note that you need to call Result.Unwrap() before calling this method if this Result
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Result) Update() *ResultUpdateOne {
	return NewResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Result entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Result) Unwrap() *Result {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Result is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Result) String() string {
	var builder strings.Builder
	builder.WriteString("Result(")
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
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("domain_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainScores))
	builder.WriteString(", ")
	builder.WriteString("top_domains=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopDomains))
	builder.WriteString(", ")
	builder.WriteString("top_margin=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopMargin))
	builder.WriteString(", ")
	builder.WriteString("confidence_level=")
	builder.WriteString(_m.ConfidenceLevel)
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("scored_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoredAnswers))
	builder.WriteString(", ")
	builder.WriteString("stream=")
	builder.WriteString(_m.Stream)
	builder.WriteString(", ")
	builder.WriteString("career_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.CareerFields))
	builder.WriteString(", ")
	builder.WriteString("guidance=")
	builder.WriteString(_m.Guidance)
	builder.WriteString(", ")
	builder.WriteString("courses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Courses))
	builder.WriteString(", ")
	builder.WriteString("narrative=")
	builder.WriteString(_m.Narrative)
	builder.WriteString(", ")
	builder.WriteString("answer_meanings=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerMeanings))
	builder.WriteString(", ")
	builder.WriteString("domain_narratives=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainNarratives))
	builder.WriteString(", ")
	builder.WriteString("test_version=")
	builder.WriteString(_m.TestVersion)
	builder.WriteString(", ")
	builder.WriteString("bank_version=")
	builder.WriteString(_m.BankVersion)
	builder.WriteString(", ")
	builder.WriteString("scoring_version=")
	builder.WriteString(_m.ScoringVersion)
	builder.WriteString(", ")
	builder.WriteString("prompt_version=")
	builder.WriteString(_m.PromptVersion)
	builder.WriteByte(')')
	return builder.String()
}

// Results is a parsable slice of Result.
type Results []*Result
