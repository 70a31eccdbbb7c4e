// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/answer"
	"github.com/dishalabs/disha/ent/llmrequestevent"
	"github.com/dishalabs/disha/ent/predicate"
	"github.com/dishalabs/disha/ent/question"
	"github.com/dishalabs/disha/ent/questionasked"
	"github.com/dishalabs/disha/ent/result"
	"github.com/dishalabs/disha/ent/schema"
	"github.com/dishalabs/disha/ent/session"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswer          = "Answer"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeQuestion        = "Question"
	TypeQuestionAsked   = "QuestionAsked"
	TypeResult          = "Result"
	TypeSession         = "Session"
)

// AnswerMutation represents an operation that mutates the Answer nodes in the graph.
type AnswerMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	updated_at       *time.Time
	session_id       *string
	question_id      *string
	raw_value        *float64
	addraw_value     *float64
	option_id        *string
	value_label      *string
	free_text        *string
	prompt_shown     *string
	time_spent_ms    *int64
	addtime_spent_ms *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Answer, error)
	predicates       []predicate.Answer
}

var _ ent.Mutation = (*AnswerMutation)(nil)

// answerOption allows management of the mutation configuration using functional options.
type answerOption func(*AnswerMutation)

// newAnswerMutation creates new mutation for the Answer entity.
func newAnswerMutation(c config, op Op, opts ...answerOption) *AnswerMutation {
	m := &AnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerID sets the ID field of the mutation.
func withAnswerID(id int) answerOption {
	return func(m *AnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *Answer
		)
		m.oldValue = func(ctx context.Context) (*Answer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Answer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswer sets the old Answer of the mutation.
func withAnswer(node *Answer) answerOption {
	return func(m *AnswerMutation) {
		m.oldValue = func(context.Context) (*Answer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Answer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnswerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnswerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnswerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *AnswerMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnswerMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnswerMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetRawValue sets the "raw_value" field.
func (m *AnswerMutation) SetRawValue(f float64) {
	m.raw_value = &f
	m.addraw_value = nil
}

// RawValue returns the value of the "raw_value" field in the mutation.
func (m *AnswerMutation) RawValue() (r float64, exists bool) {
	v := m.raw_value
	if v == nil {
		return
	}
	return *v, true
}

// OldRawValue returns the old "raw_value" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldRawValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawValue: %w", err)
	}
	return oldValue.RawValue, nil
}

// AddRawValue adds f to the "raw_value" field.
func (m *AnswerMutation) AddRawValue(f float64) {
	if m.addraw_value != nil {
		*m.addraw_value += f
	} else {
		m.addraw_value = &f
	}
}

// AddedRawValue returns the value that was added to the "raw_value" field in this mutation.
func (m *AnswerMutation) AddedRawValue() (r float64, exists bool) {
	v := m.addraw_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetRawValue resets all changes to the "raw_value" field.
func (m *AnswerMutation) ResetRawValue() {
	m.raw_value = nil
	m.addraw_value = nil
}

// SetOptionID sets the "option_id" field.
func (m *AnswerMutation) SetOptionID(s string) {
	m.option_id = &s
}

// OptionID returns the value of the "option_id" field in the mutation.
func (m *AnswerMutation) OptionID() (r string, exists bool) {
	v := m.option_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionID returns the old "option_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldOptionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionID: %w", err)
	}
	return oldValue.OptionID, nil
}

// ResetOptionID resets all changes to the "option_id" field.
func (m *AnswerMutation) ResetOptionID() {
	m.option_id = nil
}

// SetValueLabel sets the "value_label" field.
func (m *AnswerMutation) SetValueLabel(s string) {
	m.value_label = &s
}

// ValueLabel returns the value of the "value_label" field in the mutation.
func (m *AnswerMutation) ValueLabel() (r string, exists bool) {
	v := m.value_label
	if v == nil {
		return
	}
	return *v, true
}

// OldValueLabel returns the old "value_label" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldValueLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueLabel: %w", err)
	}
	return oldValue.ValueLabel, nil
}

// ResetValueLabel resets all changes to the "value_label" field.
func (m *AnswerMutation) ResetValueLabel() {
	m.value_label = nil
}

// SetFreeText sets the "free_text" field.
func (m *AnswerMutation) SetFreeText(s string) {
	m.free_text = &s
}

// FreeText returns the value of the "free_text" field in the mutation.
func (m *AnswerMutation) FreeText() (r string, exists bool) {
	v := m.free_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFreeText returns the old "free_text" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldFreeText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreeText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreeText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreeText: %w", err)
	}
	return oldValue.FreeText, nil
}

// ResetFreeText resets all changes to the "free_text" field.
func (m *AnswerMutation) ResetFreeText() {
	m.free_text = nil
}

// SetPromptShown sets the "prompt_shown" field.
func (m *AnswerMutation) SetPromptShown(s string) {
	m.prompt_shown = &s
}

// PromptShown returns the value of the "prompt_shown" field in the mutation.
func (m *AnswerMutation) PromptShown() (r string, exists bool) {
	v := m.prompt_shown
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptShown returns the old "prompt_shown" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldPromptShown(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptShown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptShown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptShown: %w", err)
	}
	return oldValue.PromptShown, nil
}

// ResetPromptShown resets all changes to the "prompt_shown" field.
func (m *AnswerMutation) ResetPromptShown() {
	m.prompt_shown = nil
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (m *AnswerMutation) SetTimeSpentMs(i int64) {
	m.time_spent_ms = &i
	m.addtime_spent_ms = nil
}

// TimeSpentMs returns the value of the "time_spent_ms" field in the mutation.
func (m *AnswerMutation) TimeSpentMs() (r int64, exists bool) {
	v := m.time_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMs returns the old "time_spent_ms" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldTimeSpentMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMs: %w", err)
	}
	return oldValue.TimeSpentMs, nil
}

// AddTimeSpentMs adds i to the "time_spent_ms" field.
func (m *AnswerMutation) AddTimeSpentMs(i int64) {
	if m.addtime_spent_ms != nil {
		*m.addtime_spent_ms += i
	} else {
		m.addtime_spent_ms = &i
	}
}

// AddedTimeSpentMs returns the value that was added to the "time_spent_ms" field in this mutation.
func (m *AnswerMutation) AddedTimeSpentMs() (r int64, exists bool) {
	v := m.addtime_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMs resets all changes to the "time_spent_ms" field.
func (m *AnswerMutation) ResetTimeSpentMs() {
	m.time_spent_ms = nil
	m.addtime_spent_ms = nil
}

// Where appends a list predicates to the AnswerMutation builder.
func (m *AnswerMutation) Where(ps ...predicate.Answer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Answer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Answer).
func (m *AnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, answer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, answer.FieldUpdatedAt)
	}
	if m.session_id != nil {
		fields = append(fields, answer.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, answer.FieldQuestionID)
	}
	if m.raw_value != nil {
		fields = append(fields, answer.FieldRawValue)
	}
	if m.option_id != nil {
		fields = append(fields, answer.FieldOptionID)
	}
	if m.value_label != nil {
		fields = append(fields, answer.FieldValueLabel)
	}
	if m.free_text != nil {
		fields = append(fields, answer.FieldFreeText)
	}
	if m.prompt_shown != nil {
		fields = append(fields, answer.FieldPromptShown)
	}
	if m.time_spent_ms != nil {
		fields = append(fields, answer.FieldTimeSpentMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldCreatedAt:
		return m.CreatedAt()
	case answer.FieldUpdatedAt:
		return m.UpdatedAt()
	case answer.FieldSessionID:
		return m.SessionID()
	case answer.FieldQuestionID:
		return m.QuestionID()
	case answer.FieldRawValue:
		return m.RawValue()
	case answer.FieldOptionID:
		return m.OptionID()
	case answer.FieldValueLabel:
		return m.ValueLabel()
	case answer.FieldFreeText:
		return m.FreeText()
	case answer.FieldPromptShown:
		return m.PromptShown()
	case answer.FieldTimeSpentMs:
		return m.TimeSpentMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case answer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case answer.FieldSessionID:
		return m.OldSessionID(ctx)
	case answer.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answer.FieldRawValue:
		return m.OldRawValue(ctx)
	case answer.FieldOptionID:
		return m.OldOptionID(ctx)
	case answer.FieldValueLabel:
		return m.OldValueLabel(ctx)
	case answer.FieldFreeText:
		return m.OldFreeText(ctx)
	case answer.FieldPromptShown:
		return m.OldPromptShown(ctx)
	case answer.FieldTimeSpentMs:
		return m.OldTimeSpentMs(ctx)
	}
	return nil, fmt.Errorf("unknown Answer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case answer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case answer.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case answer.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answer.FieldRawValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawValue(v)
		return nil
	case answer.FieldOptionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionID(v)
		return nil
	case answer.FieldValueLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueLabel(v)
		return nil
	case answer.FieldFreeText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreeText(v)
		return nil
	case answer.FieldPromptShown:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptShown(v)
		return nil
	case answer.FieldTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMs(v)
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerMutation) AddedFields() []string {
	var fields []string
	if m.addraw_value != nil {
		fields = append(fields, answer.FieldRawValue)
	}
	if m.addtime_spent_ms != nil {
		fields = append(fields, answer.FieldTimeSpentMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldRawValue:
		return m.AddedRawValue()
	case answer.FieldTimeSpentMs:
		return m.AddedTimeSpentMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answer.FieldRawValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRawValue(v)
		return nil
	case answer.FieldTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMs(v)
		return nil
	}
	return fmt.Errorf("unknown Answer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Answer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerMutation) ResetField(name string) error {
	switch name {
	case answer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case answer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case answer.FieldSessionID:
		m.ResetSessionID()
		return nil
	case answer.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answer.FieldRawValue:
		m.ResetRawValue()
		return nil
	case answer.FieldOptionID:
		m.ResetOptionID()
		return nil
	case answer.FieldValueLabel:
		m.ResetValueLabel()
		return nil
	case answer.FieldFreeText:
		m.ResetFreeText()
		return nil
	case answer.FieldPromptShown:
		m.ResetPromptShown()
		return nil
	case answer.FieldTimeSpentMs:
		m.ResetTimeSpentMs()
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Answer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Answer edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	updated_at       *time.Time
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMRequestEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMRequestEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMRequestEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LLMRequestEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LLMRequestEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LLMRequestEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, llmrequestevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, llmrequestevent.FieldUpdatedAt)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldCreatedAt:
		return m.CreatedAt()
	case llmrequestevent.FieldUpdatedAt:
		return m.UpdatedAt()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case llmrequestevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case llmrequestevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case llmrequestevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	updated_at        *time.Time
	question_id       *string
	bank_version      *string
	_type             *question.Type
	prompt            *string
	domains           *[]string
	appenddomains     []string
	reverse_scored    *bool
	weight            *float64
	addweight         *float64
	active            *bool
	grade_bands       *[]string
	appendgrade_bands []string
	scale_min         *int
	addscale_min      *int
	scale_max         *int
	addscale_max      *int
	options           *[]schema.OptionSpec
	appendoptions     []schema.OptionSpec
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Question, error)
	predicates        []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetBankVersion sets the "bank_version" field.
func (m *QuestionMutation) SetBankVersion(s string) {
	m.bank_version = &s
}

// BankVersion returns the value of the "bank_version" field in the mutation.
func (m *QuestionMutation) BankVersion() (r string, exists bool) {
	v := m.bank_version
	if v == nil {
		return
	}
	return *v, true
}

// OldBankVersion returns the old "bank_version" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldBankVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankVersion: %w", err)
	}
	return oldValue.BankVersion, nil
}

// ResetBankVersion resets all changes to the "bank_version" field.
func (m *QuestionMutation) ResetBankVersion() {
	m.bank_version = nil
}

// SetType sets the "type" field.
func (m *QuestionMutation) SetType(q question.Type) {
	m._type = &q
}

// GetType returns the value of the "type" field in the mutation.
func (m *QuestionMutation) GetType() (r question.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldType(ctx context.Context) (v question.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *QuestionMutation) ResetType() {
	m._type = nil
}

// SetPrompt sets the "prompt" field.
func (m *QuestionMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *QuestionMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *QuestionMutation) ResetPrompt() {
	m.prompt = nil
}

// SetDomains sets the "domains" field.
func (m *QuestionMutation) SetDomains(s []string) {
	m.domains = &s
	m.appenddomains = nil
}

// Domains returns the value of the "domains" field in the mutation.
func (m *QuestionMutation) Domains() (r []string, exists bool) {
	v := m.domains
	if v == nil {
		return
	}
	return *v, true
}

// OldDomains returns the old "domains" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDomains(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomains is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomains requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomains: %w", err)
	}
	return oldValue.Domains, nil
}

// AppendDomains adds s to the "domains" field.
func (m *QuestionMutation) AppendDomains(s []string) {
	m.appenddomains = append(m.appenddomains, s...)
}

// AppendedDomains returns the list of values that were appended to the "domains" field in this mutation.
func (m *QuestionMutation) AppendedDomains() ([]string, bool) {
	if len(m.appenddomains) == 0 {
		return nil, false
	}
	return m.appenddomains, true
}

// ResetDomains resets all changes to the "domains" field.
func (m *QuestionMutation) ResetDomains() {
	m.domains = nil
	m.appenddomains = nil
}

// SetReverseScored sets the "reverse_scored" field.
func (m *QuestionMutation) SetReverseScored(b bool) {
	m.reverse_scored = &b
}

// ReverseScored returns the value of the "reverse_scored" field in the mutation.
func (m *QuestionMutation) ReverseScored() (r bool, exists bool) {
	v := m.reverse_scored
	if v == nil {
		return
	}
	return *v, true
}

// OldReverseScored returns the old "reverse_scored" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldReverseScored(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReverseScored is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReverseScored requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReverseScored: %w", err)
	}
	return oldValue.ReverseScored, nil
}

// ResetReverseScored resets all changes to the "reverse_scored" field.
func (m *QuestionMutation) ResetReverseScored() {
	m.reverse_scored = nil
}

// SetWeight sets the "weight" field.
func (m *QuestionMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *QuestionMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *QuestionMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *QuestionMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *QuestionMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetActive sets the "active" field.
func (m *QuestionMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *QuestionMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *QuestionMutation) ResetActive() {
	m.active = nil
}

// SetGradeBands sets the "grade_bands" field.
func (m *QuestionMutation) SetGradeBands(s []string) {
	m.grade_bands = &s
	m.appendgrade_bands = nil
}

// GradeBands returns the value of the "grade_bands" field in the mutation.
func (m *QuestionMutation) GradeBands() (r []string, exists bool) {
	v := m.grade_bands
	if v == nil {
		return
	}
	return *v, true
}

// OldGradeBands returns the old "grade_bands" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldGradeBands(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradeBands is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradeBands requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradeBands: %w", err)
	}
	return oldValue.GradeBands, nil
}

// AppendGradeBands adds s to the "grade_bands" field.
func (m *QuestionMutation) AppendGradeBands(s []string) {
	m.appendgrade_bands = append(m.appendgrade_bands, s...)
}

// AppendedGradeBands returns the list of values that were appended to the "grade_bands" field in this mutation.
func (m *QuestionMutation) AppendedGradeBands() ([]string, bool) {
	if len(m.appendgrade_bands) == 0 {
		return nil, false
	}
	return m.appendgrade_bands, true
}

// ClearGradeBands clears the value of the "grade_bands" field.
func (m *QuestionMutation) ClearGradeBands() {
	m.grade_bands = nil
	m.appendgrade_bands = nil
	m.clearedFields[question.FieldGradeBands] = struct{}{}
}

// GradeBandsCleared returns if the "grade_bands" field was cleared in this mutation.
func (m *QuestionMutation) GradeBandsCleared() bool {
	_, ok := m.clearedFields[question.FieldGradeBands]
	return ok
}

// ResetGradeBands resets all changes to the "grade_bands" field.
func (m *QuestionMutation) ResetGradeBands() {
	m.grade_bands = nil
	m.appendgrade_bands = nil
	delete(m.clearedFields, question.FieldGradeBands)
}

// SetScaleMin sets the "scale_min" field.
func (m *QuestionMutation) SetScaleMin(i int) {
	m.scale_min = &i
	m.addscale_min = nil
}

// ScaleMin returns the value of the "scale_min" field in the mutation.
func (m *QuestionMutation) ScaleMin() (r int, exists bool) {
	v := m.scale_min
	if v == nil {
		return
	}
	return *v, true
}

// OldScaleMin returns the old "scale_min" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldScaleMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScaleMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScaleMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScaleMin: %w", err)
	}
	return oldValue.ScaleMin, nil
}

// AddScaleMin adds i to the "scale_min" field.
func (m *QuestionMutation) AddScaleMin(i int) {
	if m.addscale_min != nil {
		*m.addscale_min += i
	} else {
		m.addscale_min = &i
	}
}

// AddedScaleMin returns the value that was added to the "scale_min" field in this mutation.
func (m *QuestionMutation) AddedScaleMin() (r int, exists bool) {
	v := m.addscale_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearScaleMin clears the value of the "scale_min" field.
func (m *QuestionMutation) ClearScaleMin() {
	m.scale_min = nil
	m.addscale_min = nil
	m.clearedFields[question.FieldScaleMin] = struct{}{}
}

// ScaleMinCleared returns if the "scale_min" field was cleared in this mutation.
func (m *QuestionMutation) ScaleMinCleared() bool {
	_, ok := m.clearedFields[question.FieldScaleMin]
	return ok
}

// ResetScaleMin resets all changes to the "scale_min" field.
func (m *QuestionMutation) ResetScaleMin() {
	m.scale_min = nil
	m.addscale_min = nil
	delete(m.clearedFields, question.FieldScaleMin)
}

// SetScaleMax sets the "scale_max" field.
func (m *QuestionMutation) SetScaleMax(i int) {
	m.scale_max = &i
	m.addscale_max = nil
}

// ScaleMax returns the value of the "scale_max" field in the mutation.
func (m *QuestionMutation) ScaleMax() (r int, exists bool) {
	v := m.scale_max
	if v == nil {
		return
	}
	return *v, true
}

// OldScaleMax returns the old "scale_max" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldScaleMax(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScaleMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScaleMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScaleMax: %w", err)
	}
	return oldValue.ScaleMax, nil
}

// AddScaleMax adds i to the "scale_max" field.
func (m *QuestionMutation) AddScaleMax(i int) {
	if m.addscale_max != nil {
		*m.addscale_max += i
	} else {
		m.addscale_max = &i
	}
}

// AddedScaleMax returns the value that was added to the "scale_max" field in this mutation.
func (m *QuestionMutation) AddedScaleMax() (r int, exists bool) {
	v := m.addscale_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearScaleMax clears the value of the "scale_max" field.
func (m *QuestionMutation) ClearScaleMax() {
	m.scale_max = nil
	m.addscale_max = nil
	m.clearedFields[question.FieldScaleMax] = struct{}{}
}

// ScaleMaxCleared returns if the "scale_max" field was cleared in this mutation.
func (m *QuestionMutation) ScaleMaxCleared() bool {
	_, ok := m.clearedFields[question.FieldScaleMax]
	return ok
}

// ResetScaleMax resets all changes to the "scale_max" field.
func (m *QuestionMutation) ResetScaleMax() {
	m.scale_max = nil
	m.addscale_max = nil
	delete(m.clearedFields, question.FieldScaleMax)
}

// SetOptions sets the "options" field.
func (m *QuestionMutation) SetOptions(ss []schema.OptionSpec) {
	m.options = &ss
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *QuestionMutation) Options() (r []schema.OptionSpec, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOptions(ctx context.Context) (v []schema.OptionSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds ss to the "options" field.
func (m *QuestionMutation) AppendOptions(ss []schema.OptionSpec) {
	m.appendoptions = append(m.appendoptions, ss...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *QuestionMutation) AppendedOptions() ([]schema.OptionSpec, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ClearOptions clears the value of the "options" field.
func (m *QuestionMutation) ClearOptions() {
	m.options = nil
	m.appendoptions = nil
	m.clearedFields[question.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *QuestionMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[question.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *QuestionMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
	delete(m.clearedFields, question.FieldOptions)
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, question.FieldUpdatedAt)
	}
	if m.question_id != nil {
		fields = append(fields, question.FieldQuestionID)
	}
	if m.bank_version != nil {
		fields = append(fields, question.FieldBankVersion)
	}
	if m._type != nil {
		fields = append(fields, question.FieldType)
	}
	if m.prompt != nil {
		fields = append(fields, question.FieldPrompt)
	}
	if m.domains != nil {
		fields = append(fields, question.FieldDomains)
	}
	if m.reverse_scored != nil {
		fields = append(fields, question.FieldReverseScored)
	}
	if m.weight != nil {
		fields = append(fields, question.FieldWeight)
	}
	if m.active != nil {
		fields = append(fields, question.FieldActive)
	}
	if m.grade_bands != nil {
		fields = append(fields, question.FieldGradeBands)
	}
	if m.scale_min != nil {
		fields = append(fields, question.FieldScaleMin)
	}
	if m.scale_max != nil {
		fields = append(fields, question.FieldScaleMax)
	}
	if m.options != nil {
		fields = append(fields, question.FieldOptions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldUpdatedAt:
		return m.UpdatedAt()
	case question.FieldQuestionID:
		return m.QuestionID()
	case question.FieldBankVersion:
		return m.BankVersion()
	case question.FieldType:
		return m.GetType()
	case question.FieldPrompt:
		return m.Prompt()
	case question.FieldDomains:
		return m.Domains()
	case question.FieldReverseScored:
		return m.ReverseScored()
	case question.FieldWeight:
		return m.Weight()
	case question.FieldActive:
		return m.Active()
	case question.FieldGradeBands:
		return m.GradeBands()
	case question.FieldScaleMin:
		return m.ScaleMin()
	case question.FieldScaleMax:
		return m.ScaleMax()
	case question.FieldOptions:
		return m.Options()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case question.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case question.FieldBankVersion:
		return m.OldBankVersion(ctx)
	case question.FieldType:
		return m.OldType(ctx)
	case question.FieldPrompt:
		return m.OldPrompt(ctx)
	case question.FieldDomains:
		return m.OldDomains(ctx)
	case question.FieldReverseScored:
		return m.OldReverseScored(ctx)
	case question.FieldWeight:
		return m.OldWeight(ctx)
	case question.FieldActive:
		return m.OldActive(ctx)
	case question.FieldGradeBands:
		return m.OldGradeBands(ctx)
	case question.FieldScaleMin:
		return m.OldScaleMin(ctx)
	case question.FieldScaleMax:
		return m.OldScaleMax(ctx)
	case question.FieldOptions:
		return m.OldOptions(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case question.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case question.FieldBankVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankVersion(v)
		return nil
	case question.FieldType:
		v, ok := value.(question.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case question.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case question.FieldDomains:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomains(v)
		return nil
	case question.FieldReverseScored:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReverseScored(v)
		return nil
	case question.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case question.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case question.FieldGradeBands:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradeBands(v)
		return nil
	case question.FieldScaleMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScaleMin(v)
		return nil
	case question.FieldScaleMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScaleMax(v)
		return nil
	case question.FieldOptions:
		v, ok := value.([]schema.OptionSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, question.FieldWeight)
	}
	if m.addscale_min != nil {
		fields = append(fields, question.FieldScaleMin)
	}
	if m.addscale_max != nil {
		fields = append(fields, question.FieldScaleMax)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldWeight:
		return m.AddedWeight()
	case question.FieldScaleMin:
		return m.AddedScaleMin()
	case question.FieldScaleMax:
		return m.AddedScaleMax()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case question.FieldScaleMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScaleMin(v)
		return nil
	case question.FieldScaleMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScaleMax(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldGradeBands) {
		fields = append(fields, question.FieldGradeBands)
	}
	if m.FieldCleared(question.FieldScaleMin) {
		fields = append(fields, question.FieldScaleMin)
	}
	if m.FieldCleared(question.FieldScaleMax) {
		fields = append(fields, question.FieldScaleMax)
	}
	if m.FieldCleared(question.FieldOptions) {
		fields = append(fields, question.FieldOptions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldGradeBands:
		m.ClearGradeBands()
		return nil
	case question.FieldScaleMin:
		m.ClearScaleMin()
		return nil
	case question.FieldScaleMax:
		m.ClearScaleMax()
		return nil
	case question.FieldOptions:
		m.ClearOptions()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case question.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case question.FieldBankVersion:
		m.ResetBankVersion()
		return nil
	case question.FieldType:
		m.ResetType()
		return nil
	case question.FieldPrompt:
		m.ResetPrompt()
		return nil
	case question.FieldDomains:
		m.ResetDomains()
		return nil
	case question.FieldReverseScored:
		m.ResetReverseScored()
		return nil
	case question.FieldWeight:
		m.ResetWeight()
		return nil
	case question.FieldActive:
		m.ResetActive()
		return nil
	case question.FieldGradeBands:
		m.ResetGradeBands()
		return nil
	case question.FieldScaleMin:
		m.ResetScaleMin()
		return nil
	case question.FieldScaleMax:
		m.ResetScaleMax()
		return nil
	case question.FieldOptions:
		m.ResetOptions()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuestionAskedMutation represents an operation that mutates the QuestionAsked nodes in the graph.
type QuestionAskedMutation struct {
	config
	op             Op
	typ            string
	id             *int
	created_at     *time.Time
	updated_at     *time.Time
	session_id     *string
	question_id    *string
	position       *int
	addposition    *int
	prompt_variant *questionasked.PromptVariant
	prompt_text    *string
	options        *[]schema.OptionSpec
	appendoptions  []schema.OptionSpec
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*QuestionAsked, error)
	predicates     []predicate.QuestionAsked
}

var _ ent.Mutation = (*QuestionAskedMutation)(nil)

// questionaskedOption allows management of the mutation configuration using functional options.
type questionaskedOption func(*QuestionAskedMutation)

// newQuestionAskedMutation creates new mutation for the QuestionAsked entity.
func newQuestionAskedMutation(c config, op Op, opts ...questionaskedOption) *QuestionAskedMutation {
	m := &QuestionAskedMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionAsked,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionAskedID sets the ID field of the mutation.
func withQuestionAskedID(id int) questionaskedOption {
	return func(m *QuestionAskedMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionAsked
		)
		m.oldValue = func(ctx context.Context) (*QuestionAsked, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionAsked.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionAsked sets the old QuestionAsked of the mutation.
func withQuestionAsked(node *QuestionAsked) questionaskedOption {
	return func(m *QuestionAskedMutation) {
		m.oldValue = func(context.Context) (*QuestionAsked, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionAskedMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionAskedMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionAskedMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionAskedMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionAsked.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionAskedMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionAskedMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionAsked entity.
// If the QuestionAsked object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAskedMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionAskedMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionAskedMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionAskedMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QuestionAsked entity.
// If the QuestionAsked object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAskedMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionAskedMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuestionAskedMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuestionAskedMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuestionAsked entity.
// If the QuestionAsked object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAskedMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuestionAskedMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionAskedMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionAskedMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionAsked entity.
// If the QuestionAsked object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAskedMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionAskedMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetPosition sets the "position" field.
func (m *QuestionAskedMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *QuestionAskedMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the QuestionAsked entity.
// If the QuestionAsked object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAskedMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *QuestionAskedMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *QuestionAskedMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *QuestionAskedMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetPromptVariant sets the "prompt_variant" field.
func (m *QuestionAskedMutation) SetPromptVariant(qv questionasked.PromptVariant) {
	m.prompt_variant = &qv
}

// PromptVariant returns the value of the "prompt_variant" field in the mutation.
func (m *QuestionAskedMutation) PromptVariant() (r questionasked.PromptVariant, exists bool) {
	v := m.prompt_variant
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVariant returns the old "prompt_variant" field's value of the QuestionAsked entity.
// If the QuestionAsked object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAskedMutation) OldPromptVariant(ctx context.Context) (v questionasked.PromptVariant, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVariant: %w", err)
	}
	return oldValue.PromptVariant, nil
}

// ResetPromptVariant resets all changes to the "prompt_variant" field.
func (m *QuestionAskedMutation) ResetPromptVariant() {
	m.prompt_variant = nil
}

// SetPromptText sets the "prompt_text" field.
func (m *QuestionAskedMutation) SetPromptText(s string) {
	m.prompt_text = &s
}

// PromptText returns the value of the "prompt_text" field in the mutation.
func (m *QuestionAskedMutation) PromptText() (r string, exists bool) {
	v := m.prompt_text
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptText returns the old "prompt_text" field's value of the QuestionAsked entity.
// If the QuestionAsked object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAskedMutation) OldPromptText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptText: %w", err)
	}
	return oldValue.PromptText, nil
}

// ResetPromptText resets all changes to the "prompt_text" field.
func (m *QuestionAskedMutation) ResetPromptText() {
	m.prompt_text = nil
}

// SetOptions sets the "options" field.
func (m *QuestionAskedMutation) SetOptions(ss []schema.OptionSpec) {
	m.options = &ss
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *QuestionAskedMutation) Options() (r []schema.OptionSpec, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the QuestionAsked entity.
// If the QuestionAsked object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAskedMutation) OldOptions(ctx context.Context) (v []schema.OptionSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds ss to the "options" field.
func (m *QuestionAskedMutation) AppendOptions(ss []schema.OptionSpec) {
	m.appendoptions = append(m.appendoptions, ss...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *QuestionAskedMutation) AppendedOptions() ([]schema.OptionSpec, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ClearOptions clears the value of the "options" field.
func (m *QuestionAskedMutation) ClearOptions() {
	m.options = nil
	m.appendoptions = nil
	m.clearedFields[questionasked.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *QuestionAskedMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[questionasked.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *QuestionAskedMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
	delete(m.clearedFields, questionasked.FieldOptions)
}

// Where appends a list predicates to the QuestionAskedMutation builder.
func (m *QuestionAskedMutation) Where(ps ...predicate.QuestionAsked) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionAskedMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionAskedMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionAsked, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionAskedMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionAskedMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionAsked).
func (m *QuestionAskedMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionAskedMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, questionasked.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, questionasked.FieldUpdatedAt)
	}
	if m.session_id != nil {
		fields = append(fields, questionasked.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, questionasked.FieldQuestionID)
	}
	if m.position != nil {
		fields = append(fields, questionasked.FieldPosition)
	}
	if m.prompt_variant != nil {
		fields = append(fields, questionasked.FieldPromptVariant)
	}
	if m.prompt_text != nil {
		fields = append(fields, questionasked.FieldPromptText)
	}
	if m.options != nil {
		fields = append(fields, questionasked.FieldOptions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionAskedMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionasked.FieldCreatedAt:
		return m.CreatedAt()
	case questionasked.FieldUpdatedAt:
		return m.UpdatedAt()
	case questionasked.FieldSessionID:
		return m.SessionID()
	case questionasked.FieldQuestionID:
		return m.QuestionID()
	case questionasked.FieldPosition:
		return m.Position()
	case questionasked.FieldPromptVariant:
		return m.PromptVariant()
	case questionasked.FieldPromptText:
		return m.PromptText()
	case questionasked.FieldOptions:
		return m.Options()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionAskedMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionasked.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionasked.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case questionasked.FieldSessionID:
		return m.OldSessionID(ctx)
	case questionasked.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case questionasked.FieldPosition:
		return m.OldPosition(ctx)
	case questionasked.FieldPromptVariant:
		return m.OldPromptVariant(ctx)
	case questionasked.FieldPromptText:
		return m.OldPromptText(ctx)
	case questionasked.FieldOptions:
		return m.OldOptions(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionAsked field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionAskedMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionasked.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionasked.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case questionasked.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case questionasked.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case questionasked.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case questionasked.FieldPromptVariant:
		v, ok := value.(questionasked.PromptVariant)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVariant(v)
		return nil
	case questionasked.FieldPromptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptText(v)
		return nil
	case questionasked.FieldOptions:
		v, ok := value.([]schema.OptionSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionAsked field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionAskedMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, questionasked.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionAskedMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionasked.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionAskedMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionasked.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionAsked numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionAskedMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionasked.FieldOptions) {
		fields = append(fields, questionasked.FieldOptions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionAskedMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionAskedMutation) ClearField(name string) error {
	switch name {
	case questionasked.FieldOptions:
		m.ClearOptions()
		return nil
	}
	return fmt.Errorf("unknown QuestionAsked nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionAskedMutation) ResetField(name string) error {
	switch name {
	case questionasked.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionasked.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case questionasked.FieldSessionID:
		m.ResetSessionID()
		return nil
	case questionasked.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case questionasked.FieldPosition:
		m.ResetPosition()
		return nil
	case questionasked.FieldPromptVariant:
		m.ResetPromptVariant()
		return nil
	case questionasked.FieldPromptText:
		m.ResetPromptText()
		return nil
	case questionasked.FieldOptions:
		m.ResetOptions()
		return nil
	}
	return fmt.Errorf("unknown QuestionAsked field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionAskedMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionAskedMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionAskedMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionAskedMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionAskedMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionAskedMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionAskedMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionAsked unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionAskedMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionAsked edge %s", name)
}

// ResultMutation represents an operation that mutates the Result nodes in the graph.
type ResultMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	created_at          *time.Time
	updated_at          *time.Time
	session_id          *string
	student_id          *string
	grade               *string
	domain_scores       *map[string]schema.DomainScoreSpec
	top_domains         *[]string
	appendtop_domains   []string
	top_margin          *float64
	addtop_margin       *float64
	confidence_level    *string
	confidence_score    *float64
	addconfidence_score *float64
	scored_answers      *int
	addscored_answers   *int
	stream              *string
	career_fields       *[]string
	appendcareer_fields []string
	guidance            *string
	courses             *[]schema.CourseSpec
	appendcourses       []schema.CourseSpec
	narrative           *string
	answer_meanings     *map[string]string
	domain_narratives   *map[string]string
	test_version        *string
	bank_version        *string
	scoring_version     *string
	prompt_version      *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Result, error)
	predicates          []predicate.Result
}

var _ ent.Mutation = (*ResultMutation)(nil)

// resultOption allows management of the mutation configuration using functional options.
type resultOption func(*ResultMutation)

// newResultMutation creates new mutation for the Result entity.
func newResultMutation(c config, op Op, opts ...resultOption) *ResultMutation {
	m := &ResultMutation{
		config:        c,
		op:            op,
		typ:           TypeResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResultID sets the ID field of the mutation.
func withResultID(id int) resultOption {
	return func(m *ResultMutation) {
		var (
			err   error
			once  sync.Once
			value *Result
		)
		m.oldValue = func(ctx context.Context) (*Result, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Result.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResult sets the old Result of the mutation.
func withResult(node *Result) resultOption {
	return func(m *ResultMutation) {
		m.oldValue = func(context.Context) (*Result, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Result.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ResultMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ResultMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ResultMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *ResultMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ResultMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ResultMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *ResultMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *ResultMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *ResultMutation) ResetStudentID() {
	m.student_id = nil
}

// SetGrade sets the "grade" field.
func (m *ResultMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *ResultMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *ResultMutation) ResetGrade() {
	m.grade = nil
}

// SetDomainScores sets the "domain_scores" field.
func (m *ResultMutation) SetDomainScores(mss map[string]schema.DomainScoreSpec) {
	m.domain_scores = &mss
}

// DomainScores returns the value of the "domain_scores" field in the mutation.
func (m *ResultMutation) DomainScores() (r map[string]schema.DomainScoreSpec, exists bool) {
	v := m.domain_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainScores returns the old "domain_scores" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldDomainScores(ctx context.Context) (v map[string]schema.DomainScoreSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainScores: %w", err)
	}
	return oldValue.DomainScores, nil
}

// ResetDomainScores resets all changes to the "domain_scores" field.
func (m *ResultMutation) ResetDomainScores() {
	m.domain_scores = nil
}

// SetTopDomains sets the "top_domains" field.
func (m *ResultMutation) SetTopDomains(s []string) {
	m.top_domains = &s
	m.appendtop_domains = nil
}

// TopDomains returns the value of the "top_domains" field in the mutation.
func (m *ResultMutation) TopDomains() (r []string, exists bool) {
	v := m.top_domains
	if v == nil {
		return
	}
	return *v, true
}

// OldTopDomains returns the old "top_domains" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldTopDomains(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopDomains is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopDomains requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopDomains: %w", err)
	}
	return oldValue.TopDomains, nil
}

// AppendTopDomains adds s to the "top_domains" field.
func (m *ResultMutation) AppendTopDomains(s []string) {
	m.appendtop_domains = append(m.appendtop_domains, s...)
}

// AppendedTopDomains returns the list of values that were appended to the "top_domains" field in this mutation.
func (m *ResultMutation) AppendedTopDomains() ([]string, bool) {
	if len(m.appendtop_domains) == 0 {
		return nil, false
	}
	return m.appendtop_domains, true
}

// ResetTopDomains resets all changes to the "top_domains" field.
func (m *ResultMutation) ResetTopDomains() {
	m.top_domains = nil
	m.appendtop_domains = nil
}

// SetTopMargin sets the "top_margin" field.
func (m *ResultMutation) SetTopMargin(f float64) {
	m.top_margin = &f
	m.addtop_margin = nil
}

// TopMargin returns the value of the "top_margin" field in the mutation.
func (m *ResultMutation) TopMargin() (r float64, exists bool) {
	v := m.top_margin
	if v == nil {
		return
	}
	return *v, true
}

// OldTopMargin returns the old "top_margin" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldTopMargin(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopMargin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopMargin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopMargin: %w", err)
	}
	return oldValue.TopMargin, nil
}

// AddTopMargin adds f to the "top_margin" field.
func (m *ResultMutation) AddTopMargin(f float64) {
	if m.addtop_margin != nil {
		*m.addtop_margin += f
	} else {
		m.addtop_margin = &f
	}
}

// AddedTopMargin returns the value that was added to the "top_margin" field in this mutation.
func (m *ResultMutation) AddedTopMargin() (r float64, exists bool) {
	v := m.addtop_margin
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopMargin resets all changes to the "top_margin" field.
func (m *ResultMutation) ResetTopMargin() {
	m.top_margin = nil
	m.addtop_margin = nil
}

// SetConfidenceLevel sets the "confidence_level" field.
func (m *ResultMutation) SetConfidenceLevel(s string) {
	m.confidence_level = &s
}

// ConfidenceLevel returns the value of the "confidence_level" field in the mutation.
func (m *ResultMutation) ConfidenceLevel() (r string, exists bool) {
	v := m.confidence_level
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceLevel returns the old "confidence_level" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldConfidenceLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceLevel: %w", err)
	}
	return oldValue.ConfidenceLevel, nil
}

// ResetConfidenceLevel resets all changes to the "confidence_level" field.
func (m *ResultMutation) ResetConfidenceLevel() {
	m.confidence_level = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ResultMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ResultMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ResultMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ResultMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ResultMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetScoredAnswers sets the "scored_answers" field.
func (m *ResultMutation) SetScoredAnswers(i int) {
	m.scored_answers = &i
	m.addscored_answers = nil
}

// ScoredAnswers returns the value of the "scored_answers" field in the mutation.
func (m *ResultMutation) ScoredAnswers() (r int, exists bool) {
	v := m.scored_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldScoredAnswers returns the old "scored_answers" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldScoredAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoredAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoredAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoredAnswers: %w", err)
	}
	return oldValue.ScoredAnswers, nil
}

// AddScoredAnswers adds i to the "scored_answers" field.
func (m *ResultMutation) AddScoredAnswers(i int) {
	if m.addscored_answers != nil {
		*m.addscored_answers += i
	} else {
		m.addscored_answers = &i
	}
}

// AddedScoredAnswers returns the value that was added to the "scored_answers" field in this mutation.
func (m *ResultMutation) AddedScoredAnswers() (r int, exists bool) {
	v := m.addscored_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetScoredAnswers resets all changes to the "scored_answers" field.
func (m *ResultMutation) ResetScoredAnswers() {
	m.scored_answers = nil
	m.addscored_answers = nil
}

// SetStream sets the "stream" field.
func (m *ResultMutation) SetStream(s string) {
	m.stream = &s
}

// Stream returns the value of the "stream" field in the mutation.
func (m *ResultMutation) Stream() (r string, exists bool) {
	v := m.stream
	if v == nil {
		return
	}
	return *v, true
}

// OldStream returns the old "stream" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldStream(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStream is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStream requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStream: %w", err)
	}
	return oldValue.Stream, nil
}

// ResetStream resets all changes to the "stream" field.
func (m *ResultMutation) ResetStream() {
	m.stream = nil
}

// SetCareerFields sets the "career_fields" field.
func (m *ResultMutation) SetCareerFields(s []string) {
	m.career_fields = &s
	m.appendcareer_fields = nil
}

// CareerFields returns the value of the "career_fields" field in the mutation.
func (m *ResultMutation) CareerFields() (r []string, exists bool) {
	v := m.career_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCareerFields returns the old "career_fields" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldCareerFields(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCareerFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCareerFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCareerFields: %w", err)
	}
	return oldValue.CareerFields, nil
}

// AppendCareerFields adds s to the "career_fields" field.
func (m *ResultMutation) AppendCareerFields(s []string) {
	m.appendcareer_fields = append(m.appendcareer_fields, s...)
}

// AppendedCareerFields returns the list of values that were appended to the "career_fields" field in this mutation.
func (m *ResultMutation) AppendedCareerFields() ([]string, bool) {
	if len(m.appendcareer_fields) == 0 {
		return nil, false
	}
	return m.appendcareer_fields, true
}

// ClearCareerFields clears the value of the "career_fields" field.
func (m *ResultMutation) ClearCareerFields() {
	m.career_fields = nil
	m.appendcareer_fields = nil
	m.clearedFields[result.FieldCareerFields] = struct{}{}
}

// CareerFieldsCleared returns if the "career_fields" field was cleared in this mutation.
func (m *ResultMutation) CareerFieldsCleared() bool {
	_, ok := m.clearedFields[result.FieldCareerFields]
	return ok
}

// ResetCareerFields resets all changes to the "career_fields" field.
func (m *ResultMutation) ResetCareerFields() {
	m.career_fields = nil
	m.appendcareer_fields = nil
	delete(m.clearedFields, result.FieldCareerFields)
}

// SetGuidance sets the "guidance" field.
func (m *ResultMutation) SetGuidance(s string) {
	m.guidance = &s
}

// Guidance returns the value of the "guidance" field in the mutation.
func (m *ResultMutation) Guidance() (r string, exists bool) {
	v := m.guidance
	if v == nil {
		return
	}
	return *v, true
}

// OldGuidance returns the old "guidance" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldGuidance(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuidance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuidance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuidance: %w", err)
	}
	return oldValue.Guidance, nil
}

// ResetGuidance resets all changes to the "guidance" field.
func (m *ResultMutation) ResetGuidance() {
	m.guidance = nil
}

// SetCourses sets the "courses" field.
func (m *ResultMutation) SetCourses(ss []schema.CourseSpec) {
	m.courses = &ss
	m.appendcourses = nil
}

// Courses returns the value of the "courses" field in the mutation.
func (m *ResultMutation) Courses() (r []schema.CourseSpec, exists bool) {
	v := m.courses
	if v == nil {
		return
	}
	return *v, true
}

// OldCourses returns the old "courses" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldCourses(ctx context.Context) (v []schema.CourseSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourses: %w", err)
	}
	return oldValue.Courses, nil
}

// AppendCourses adds ss to the "courses" field.
func (m *ResultMutation) AppendCourses(ss []schema.CourseSpec) {
	m.appendcourses = append(m.appendcourses, ss...)
}

// AppendedCourses returns the list of values that were appended to the "courses" field in this mutation.
func (m *ResultMutation) AppendedCourses() ([]schema.CourseSpec, bool) {
	if len(m.appendcourses) == 0 {
		return nil, false
	}
	return m.appendcourses, true
}

// ClearCourses clears the value of the "courses" field.
func (m *ResultMutation) ClearCourses() {
	m.courses = nil
	m.appendcourses = nil
	m.clearedFields[result.FieldCourses] = struct{}{}
}

// CoursesCleared returns if the "courses" field was cleared in this mutation.
func (m *ResultMutation) CoursesCleared() bool {
	_, ok := m.clearedFields[result.FieldCourses]
	return ok
}

// ResetCourses resets all changes to the "courses" field.
func (m *ResultMutation) ResetCourses() {
	m.courses = nil
	m.appendcourses = nil
	delete(m.clearedFields, result.FieldCourses)
}

// SetNarrative sets the "narrative" field.
func (m *ResultMutation) SetNarrative(s string) {
	m.narrative = &s
}

// Narrative returns the value of the "narrative" field in the mutation.
func (m *ResultMutation) Narrative() (r string, exists bool) {
	v := m.narrative
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrative returns the old "narrative" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldNarrative(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrative is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrative requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrative: %w", err)
	}
	return oldValue.Narrative, nil
}

// ResetNarrative resets all changes to the "narrative" field.
func (m *ResultMutation) ResetNarrative() {
	m.narrative = nil
}

// SetAnswerMeanings sets the "answer_meanings" field.
func (m *ResultMutation) SetAnswerMeanings(value map[string]string) {
	m.answer_meanings = &value
}

// AnswerMeanings returns the value of the "answer_meanings" field in the mutation.
func (m *ResultMutation) AnswerMeanings() (r map[string]string, exists bool) {
	v := m.answer_meanings
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerMeanings returns the old "answer_meanings" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldAnswerMeanings(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerMeanings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerMeanings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerMeanings: %w", err)
	}
	return oldValue.AnswerMeanings, nil
}

// ClearAnswerMeanings clears the value of the "answer_meanings" field.
func (m *ResultMutation) ClearAnswerMeanings() {
	m.answer_meanings = nil
	m.clearedFields[result.FieldAnswerMeanings] = struct{}{}
}

// AnswerMeaningsCleared returns if the "answer_meanings" field was cleared in this mutation.
func (m *ResultMutation) AnswerMeaningsCleared() bool {
	_, ok := m.clearedFields[result.FieldAnswerMeanings]
	return ok
}

// ResetAnswerMeanings resets all changes to the "answer_meanings" field.
func (m *ResultMutation) ResetAnswerMeanings() {
	m.answer_meanings = nil
	delete(m.clearedFields, result.FieldAnswerMeanings)
}

// SetDomainNarratives sets the "domain_narratives" field.
func (m *ResultMutation) SetDomainNarratives(value map[string]string) {
	m.domain_narratives = &value
}

// DomainNarratives returns the value of the "domain_narratives" field in the mutation.
func (m *ResultMutation) DomainNarratives() (r map[string]string, exists bool) {
	v := m.domain_narratives
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainNarratives returns the old "domain_narratives" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldDomainNarratives(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainNarratives is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainNarratives requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainNarratives: %w", err)
	}
	return oldValue.DomainNarratives, nil
}

// ClearDomainNarratives clears the value of the "domain_narratives" field.
func (m *ResultMutation) ClearDomainNarratives() {
	m.domain_narratives = nil
	m.clearedFields[result.FieldDomainNarratives] = struct{}{}
}

// DomainNarrativesCleared returns if the "domain_narratives" field was cleared in this mutation.
func (m *ResultMutation) DomainNarrativesCleared() bool {
	_, ok := m.clearedFields[result.FieldDomainNarratives]
	return ok
}

// ResetDomainNarratives resets all changes to the "domain_narratives" field.
func (m *ResultMutation) ResetDomainNarratives() {
	m.domain_narratives = nil
	delete(m.clearedFields, result.FieldDomainNarratives)
}

// SetTestVersion sets the "test_version" field.
func (m *ResultMutation) SetTestVersion(s string) {
	m.test_version = &s
}

// TestVersion returns the value of the "test_version" field in the mutation.
func (m *ResultMutation) TestVersion() (r string, exists bool) {
	v := m.test_version
	if v == nil {
		return
	}
	return *v, true
}

// OldTestVersion returns the old "test_version" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldTestVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestVersion: %w", err)
	}
	return oldValue.TestVersion, nil
}

// ResetTestVersion resets all changes to the "test_version" field.
func (m *ResultMutation) ResetTestVersion() {
	m.test_version = nil
}

// SetBankVersion sets the "bank_version" field.
func (m *ResultMutation) SetBankVersion(s string) {
	m.bank_version = &s
}

// BankVersion returns the value of the "bank_version" field in the mutation.
func (m *ResultMutation) BankVersion() (r string, exists bool) {
	v := m.bank_version
	if v == nil {
		return
	}
	return *v, true
}

// OldBankVersion returns the old "bank_version" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldBankVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankVersion: %w", err)
	}
	return oldValue.BankVersion, nil
}

// ResetBankVersion resets all changes to the "bank_version" field.
func (m *ResultMutation) ResetBankVersion() {
	m.bank_version = nil
}

// SetScoringVersion sets the "scoring_version" field.
func (m *ResultMutation) SetScoringVersion(s string) {
	m.scoring_version = &s
}

// ScoringVersion returns the value of the "scoring_version" field in the mutation.
func (m *ResultMutation) ScoringVersion() (r string, exists bool) {
	v := m.scoring_version
	if v == nil {
		return
	}
	return *v, true
}

// OldScoringVersion returns the old "scoring_version" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldScoringVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoringVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoringVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoringVersion: %w", err)
	}
	return oldValue.ScoringVersion, nil
}

// ResetScoringVersion resets all changes to the "scoring_version" field.
func (m *ResultMutation) ResetScoringVersion() {
	m.scoring_version = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *ResultMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *ResultMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *ResultMutation) ResetPromptVersion() {
	m.prompt_version = nil
}

// Where appends a list predicates to the ResultMutation builder.
func (m *ResultMutation) Where(ps ...predicate.Result) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Result, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Result).
func (m *ResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResultMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.created_at != nil {
		fields = append(fields, result.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, result.FieldUpdatedAt)
	}
	if m.session_id != nil {
		fields = append(fields, result.FieldSessionID)
	}
	if m.student_id != nil {
		fields = append(fields, result.FieldStudentID)
	}
	if m.grade != nil {
		fields = append(fields, result.FieldGrade)
	}
	if m.domain_scores != nil {
		fields = append(fields, result.FieldDomainScores)
	}
	if m.top_domains != nil {
		fields = append(fields, result.FieldTopDomains)
	}
	if m.top_margin != nil {
		fields = append(fields, result.FieldTopMargin)
	}
	if m.confidence_level != nil {
		fields = append(fields, result.FieldConfidenceLevel)
	}
	if m.confidence_score != nil {
		fields = append(fields, result.FieldConfidenceScore)
	}
	if m.scored_answers != nil {
		fields = append(fields, result.FieldScoredAnswers)
	}
	if m.stream != nil {
		fields = append(fields, result.FieldStream)
	}
	if m.career_fields != nil {
		fields = append(fields, result.FieldCareerFields)
	}
	if m.guidance != nil {
		fields = append(fields, result.FieldGuidance)
	}
	if m.courses != nil {
		fields = append(fields, result.FieldCourses)
	}
	if m.narrative != nil {
		fields = append(fields, result.FieldNarrative)
	}
	if m.answer_meanings != nil {
		fields = append(fields, result.FieldAnswerMeanings)
	}
	if m.domain_narratives != nil {
		fields = append(fields, result.FieldDomainNarratives)
	}
	if m.test_version != nil {
		fields = append(fields, result.FieldTestVersion)
	}
	if m.bank_version != nil {
		fields = append(fields, result.FieldBankVersion)
	}
	if m.scoring_version != nil {
		fields = append(fields, result.FieldScoringVersion)
	}
	if m.prompt_version != nil {
		fields = append(fields, result.FieldPromptVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case result.FieldCreatedAt:
		return m.CreatedAt()
	case result.FieldUpdatedAt:
		return m.UpdatedAt()
	case result.FieldSessionID:
		return m.SessionID()
	case result.FieldStudentID:
		return m.StudentID()
	case result.FieldGrade:
		return m.Grade()
	case result.FieldDomainScores:
		return m.DomainScores()
	case result.FieldTopDomains:
		return m.TopDomains()
	case result.FieldTopMargin:
		return m.TopMargin()
	case result.FieldConfidenceLevel:
		return m.ConfidenceLevel()
	case result.FieldConfidenceScore:
		return m.ConfidenceScore()
	case result.FieldScoredAnswers:
		return m.ScoredAnswers()
	case result.FieldStream:
		return m.Stream()
	case result.FieldCareerFields:
		return m.CareerFields()
	case result.FieldGuidance:
		return m.Guidance()
	case result.FieldCourses:
		return m.Courses()
	case result.FieldNarrative:
		return m.Narrative()
	case result.FieldAnswerMeanings:
		return m.AnswerMeanings()
	case result.FieldDomainNarratives:
		return m.DomainNarratives()
	case result.FieldTestVersion:
		return m.TestVersion()
	case result.FieldBankVersion:
		return m.BankVersion()
	case result.FieldScoringVersion:
		return m.ScoringVersion()
	case result.FieldPromptVersion:
		return m.PromptVersion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case result.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case result.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case result.FieldSessionID:
		return m.OldSessionID(ctx)
	case result.FieldStudentID:
		return m.OldStudentID(ctx)
	case result.FieldGrade:
		return m.OldGrade(ctx)
	case result.FieldDomainScores:
		return m.OldDomainScores(ctx)
	case result.FieldTopDomains:
		return m.OldTopDomains(ctx)
	case result.FieldTopMargin:
		return m.OldTopMargin(ctx)
	case result.FieldConfidenceLevel:
		return m.OldConfidenceLevel(ctx)
	case result.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case result.FieldScoredAnswers:
		return m.OldScoredAnswers(ctx)
	case result.FieldStream:
		return m.OldStream(ctx)
	case result.FieldCareerFields:
		return m.OldCareerFields(ctx)
	case result.FieldGuidance:
		return m.OldGuidance(ctx)
	case result.FieldCourses:
		return m.OldCourses(ctx)
	case result.FieldNarrative:
		return m.OldNarrative(ctx)
	case result.FieldAnswerMeanings:
		return m.OldAnswerMeanings(ctx)
	case result.FieldDomainNarratives:
		return m.OldDomainNarratives(ctx)
	case result.FieldTestVersion:
		return m.OldTestVersion(ctx)
	case result.FieldBankVersion:
		return m.OldBankVersion(ctx)
	case result.FieldScoringVersion:
		return m.OldScoringVersion(ctx)
	case result.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	}
	return nil, fmt.Errorf("unknown Result field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case result.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case result.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case result.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case result.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case result.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case result.FieldDomainScores:
		v, ok := value.(map[string]schema.DomainScoreSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainScores(v)
		return nil
	case result.FieldTopDomains:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopDomains(v)
		return nil
	case result.FieldTopMargin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopMargin(v)
		return nil
	case result.FieldConfidenceLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceLevel(v)
		return nil
	case result.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case result.FieldScoredAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoredAnswers(v)
		return nil
	case result.FieldStream:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStream(v)
		return nil
	case result.FieldCareerFields:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCareerFields(v)
		return nil
	case result.FieldGuidance:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuidance(v)
		return nil
	case result.FieldCourses:
		v, ok := value.([]schema.CourseSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourses(v)
		return nil
	case result.FieldNarrative:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrative(v)
		return nil
	case result.FieldAnswerMeanings:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerMeanings(v)
		return nil
	case result.FieldDomainNarratives:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainNarratives(v)
		return nil
	case result.FieldTestVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestVersion(v)
		return nil
	case result.FieldBankVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankVersion(v)
		return nil
	case result.FieldScoringVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoringVersion(v)
		return nil
	case result.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Result field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResultMutation) AddedFields() []string {
	var fields []string
	if m.addtop_margin != nil {
		fields = append(fields, result.FieldTopMargin)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, result.FieldConfidenceScore)
	}
	if m.addscored_answers != nil {
		fields = append(fields, result.FieldScoredAnswers)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case result.FieldTopMargin:
		return m.AddedTopMargin()
	case result.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case result.FieldScoredAnswers:
		return m.AddedScoredAnswers()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case result.FieldTopMargin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopMargin(v)
		return nil
	case result.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case result.FieldScoredAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoredAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown Result numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(result.FieldCareerFields) {
		fields = append(fields, result.FieldCareerFields)
	}
	if m.FieldCleared(result.FieldCourses) {
		fields = append(fields, result.FieldCourses)
	}
	if m.FieldCleared(result.FieldAnswerMeanings) {
		fields = append(fields, result.FieldAnswerMeanings)
	}
	if m.FieldCleared(result.FieldDomainNarratives) {
		fields = append(fields, result.FieldDomainNarratives)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResultMutation) ClearField(name string) error {
	switch name {
	case result.FieldCareerFields:
		m.ClearCareerFields()
		return nil
	case result.FieldCourses:
		m.ClearCourses()
		return nil
	case result.FieldAnswerMeanings:
		m.ClearAnswerMeanings()
		return nil
	case result.FieldDomainNarratives:
		m.ClearDomainNarratives()
		return nil
	}
	return fmt.Errorf("unknown Result nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResultMutation) ResetField(name string) error {
	switch name {
	case result.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case result.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case result.FieldSessionID:
		m.ResetSessionID()
		return nil
	case result.FieldStudentID:
		m.ResetStudentID()
		return nil
	case result.FieldGrade:
		m.ResetGrade()
		return nil
	case result.FieldDomainScores:
		m.ResetDomainScores()
		return nil
	case result.FieldTopDomains:
		m.ResetTopDomains()
		return nil
	case result.FieldTopMargin:
		m.ResetTopMargin()
		return nil
	case result.FieldConfidenceLevel:
		m.ResetConfidenceLevel()
		return nil
	case result.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case result.FieldScoredAnswers:
		m.ResetScoredAnswers()
		return nil
	case result.FieldStream:
		m.ResetStream()
		return nil
	case result.FieldCareerFields:
		m.ResetCareerFields()
		return nil
	case result.FieldGuidance:
		m.ResetGuidance()
		return nil
	case result.FieldCourses:
		m.ResetCourses()
		return nil
	case result.FieldNarrative:
		m.ResetNarrative()
		return nil
	case result.FieldAnswerMeanings:
		m.ResetAnswerMeanings()
		return nil
	case result.FieldDomainNarratives:
		m.ResetDomainNarratives()
		return nil
	case result.FieldTestVersion:
		m.ResetTestVersion()
		return nil
	case result.FieldBankVersion:
		m.ResetBankVersion()
		return nil
	case result.FieldScoringVersion:
		m.ResetScoringVersion()
		return nil
	case result.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	}
	return fmt.Errorf("unknown Result field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Result unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Result edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	updated_at        *time.Time
	session_id        *string
	student_id        *string
	grade             *string
	locale            *string
	status            *session.Status
	completed_at      *time.Time
	max_questions     *int
	addmax_questions  *int
	question_index    *int
	addquestion_index *int
	test_version      *string
	bank_version      *string
	scoring_version   *string
	prompt_version    *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Session, error)
	predicates        []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id int) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *SessionMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *SessionMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *SessionMutation) ResetStudentID() {
	m.student_id = nil
}

// SetGrade sets the "grade" field.
func (m *SessionMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *SessionMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *SessionMutation) ResetGrade() {
	m.grade = nil
}

// SetLocale sets the "locale" field.
func (m *SessionMutation) SetLocale(s string) {
	m.locale = &s
}

// Locale returns the value of the "locale" field in the mutation.
func (m *SessionMutation) Locale() (r string, exists bool) {
	v := m.locale
	if v == nil {
		return
	}
	return *v, true
}

// OldLocale returns the old "locale" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLocale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocale: %w", err)
	}
	return oldValue.Locale, nil
}

// ResetLocale resets all changes to the "locale" field.
func (m *SessionMutation) ResetLocale() {
	m.locale = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[session.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, session.FieldCompletedAt)
}

// SetMaxQuestions sets the "max_questions" field.
func (m *SessionMutation) SetMaxQuestions(i int) {
	m.max_questions = &i
	m.addmax_questions = nil
}

// MaxQuestions returns the value of the "max_questions" field in the mutation.
func (m *SessionMutation) MaxQuestions() (r int, exists bool) {
	v := m.max_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxQuestions returns the old "max_questions" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMaxQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxQuestions: %w", err)
	}
	return oldValue.MaxQuestions, nil
}

// AddMaxQuestions adds i to the "max_questions" field.
func (m *SessionMutation) AddMaxQuestions(i int) {
	if m.addmax_questions != nil {
		*m.addmax_questions += i
	} else {
		m.addmax_questions = &i
	}
}

// AddedMaxQuestions returns the value that was added to the "max_questions" field in this mutation.
func (m *SessionMutation) AddedMaxQuestions() (r int, exists bool) {
	v := m.addmax_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxQuestions resets all changes to the "max_questions" field.
func (m *SessionMutation) ResetMaxQuestions() {
	m.max_questions = nil
	m.addmax_questions = nil
}

// SetQuestionIndex sets the "question_index" field.
func (m *SessionMutation) SetQuestionIndex(i int) {
	m.question_index = &i
	m.addquestion_index = nil
}

// QuestionIndex returns the value of the "question_index" field in the mutation.
func (m *SessionMutation) QuestionIndex() (r int, exists bool) {
	v := m.question_index
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionIndex returns the old "question_index" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldQuestionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionIndex: %w", err)
	}
	return oldValue.QuestionIndex, nil
}

// AddQuestionIndex adds i to the "question_index" field.
func (m *SessionMutation) AddQuestionIndex(i int) {
	if m.addquestion_index != nil {
		*m.addquestion_index += i
	} else {
		m.addquestion_index = &i
	}
}

// AddedQuestionIndex returns the value that was added to the "question_index" field in this mutation.
func (m *SessionMutation) AddedQuestionIndex() (r int, exists bool) {
	v := m.addquestion_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionIndex resets all changes to the "question_index" field.
func (m *SessionMutation) ResetQuestionIndex() {
	m.question_index = nil
	m.addquestion_index = nil
}

// SetTestVersion sets the "test_version" field.
func (m *SessionMutation) SetTestVersion(s string) {
	m.test_version = &s
}

// TestVersion returns the value of the "test_version" field in the mutation.
func (m *SessionMutation) TestVersion() (r string, exists bool) {
	v := m.test_version
	if v == nil {
		return
	}
	return *v, true
}

// OldTestVersion returns the old "test_version" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTestVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestVersion: %w", err)
	}
	return oldValue.TestVersion, nil
}

// ResetTestVersion resets all changes to the "test_version" field.
func (m *SessionMutation) ResetTestVersion() {
	m.test_version = nil
}

// SetBankVersion sets the "bank_version" field.
func (m *SessionMutation) SetBankVersion(s string) {
	m.bank_version = &s
}

// BankVersion returns the value of the "bank_version" field in the mutation.
func (m *SessionMutation) BankVersion() (r string, exists bool) {
	v := m.bank_version
	if v == nil {
		return
	}
	return *v, true
}

// OldBankVersion returns the old "bank_version" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldBankVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankVersion: %w", err)
	}
	return oldValue.BankVersion, nil
}

// ResetBankVersion resets all changes to the "bank_version" field.
func (m *SessionMutation) ResetBankVersion() {
	m.bank_version = nil
}

// SetScoringVersion sets the "scoring_version" field.
func (m *SessionMutation) SetScoringVersion(s string) {
	m.scoring_version = &s
}

// ScoringVersion returns the value of the "scoring_version" field in the mutation.
func (m *SessionMutation) ScoringVersion() (r string, exists bool) {
	v := m.scoring_version
	if v == nil {
		return
	}
	return *v, true
}

// OldScoringVersion returns the old "scoring_version" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldScoringVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoringVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoringVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoringVersion: %w", err)
	}
	return oldValue.ScoringVersion, nil
}

// ResetScoringVersion resets all changes to the "scoring_version" field.
func (m *SessionMutation) ResetScoringVersion() {
	m.scoring_version = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *SessionMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *SessionMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *SessionMutation) ResetPromptVersion() {
	m.prompt_version = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	if m.session_id != nil {
		fields = append(fields, session.FieldSessionID)
	}
	if m.student_id != nil {
		fields = append(fields, session.FieldStudentID)
	}
	if m.grade != nil {
		fields = append(fields, session.FieldGrade)
	}
	if m.locale != nil {
		fields = append(fields, session.FieldLocale)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, session.FieldCompletedAt)
	}
	if m.max_questions != nil {
		fields = append(fields, session.FieldMaxQuestions)
	}
	if m.question_index != nil {
		fields = append(fields, session.FieldQuestionIndex)
	}
	if m.test_version != nil {
		fields = append(fields, session.FieldTestVersion)
	}
	if m.bank_version != nil {
		fields = append(fields, session.FieldBankVersion)
	}
	if m.scoring_version != nil {
		fields = append(fields, session.FieldScoringVersion)
	}
	if m.prompt_version != nil {
		fields = append(fields, session.FieldPromptVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	case session.FieldSessionID:
		return m.SessionID()
	case session.FieldStudentID:
		return m.StudentID()
	case session.FieldGrade:
		return m.Grade()
	case session.FieldLocale:
		return m.Locale()
	case session.FieldStatus:
		return m.Status()
	case session.FieldCompletedAt:
		return m.CompletedAt()
	case session.FieldMaxQuestions:
		return m.MaxQuestions()
	case session.FieldQuestionIndex:
		return m.QuestionIndex()
	case session.FieldTestVersion:
		return m.TestVersion()
	case session.FieldBankVersion:
		return m.BankVersion()
	case session.FieldScoringVersion:
		return m.ScoringVersion()
	case session.FieldPromptVersion:
		return m.PromptVersion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case session.FieldSessionID:
		return m.OldSessionID(ctx)
	case session.FieldStudentID:
		return m.OldStudentID(ctx)
	case session.FieldGrade:
		return m.OldGrade(ctx)
	case session.FieldLocale:
		return m.OldLocale(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case session.FieldMaxQuestions:
		return m.OldMaxQuestions(ctx)
	case session.FieldQuestionIndex:
		return m.OldQuestionIndex(ctx)
	case session.FieldTestVersion:
		return m.OldTestVersion(ctx)
	case session.FieldBankVersion:
		return m.OldBankVersion(ctx)
	case session.FieldScoringVersion:
		return m.OldScoringVersion(ctx)
	case session.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case session.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case session.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case session.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case session.FieldLocale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocale(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case session.FieldMaxQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxQuestions(v)
		return nil
	case session.FieldQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionIndex(v)
		return nil
	case session.FieldTestVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestVersion(v)
		return nil
	case session.FieldBankVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankVersion(v)
		return nil
	case session.FieldScoringVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoringVersion(v)
		return nil
	case session.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addmax_questions != nil {
		fields = append(fields, session.FieldMaxQuestions)
	}
	if m.addquestion_index != nil {
		fields = append(fields, session.FieldQuestionIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldMaxQuestions:
		return m.AddedMaxQuestions()
	case session.FieldQuestionIndex:
		return m.AddedQuestionIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldMaxQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxQuestions(v)
		return nil
	case session.FieldQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldCompletedAt) {
		fields = append(fields, session.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case session.FieldSessionID:
		m.ResetSessionID()
		return nil
	case session.FieldStudentID:
		m.ResetStudentID()
		return nil
	case session.FieldGrade:
		m.ResetGrade()
		return nil
	case session.FieldLocale:
		m.ResetLocale()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case session.FieldMaxQuestions:
		m.ResetMaxQuestions()
		return nil
	case session.FieldQuestionIndex:
		m.ResetQuestionIndex()
		return nil
	case session.FieldTestVersion:
		m.ResetTestVersion()
		return nil
	case session.FieldBankVersion:
		m.ResetBankVersion()
		return nil
	case session.FieldScoringVersion:
		m.ResetScoringVersion()
		return nil
	case session.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}
