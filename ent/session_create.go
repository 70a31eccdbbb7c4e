// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dishalabs/disha/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionCreate) SetSessionID(v string) *SessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *SessionCreate) SetStudentID(v string) *SessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *SessionCreate) SetGrade(v string) *SessionCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetLocale sets the "locale" field.
func (_c *SessionCreate) SetLocale(v string) *SessionCreate {
	_c.mutation.SetLocale(v)
	return _c
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLocale(v *string) *SessionCreate {
	if v != nil {
		_c.SetLocale(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionCreate) SetCompletedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCompletedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetMaxQuestions sets the "max_questions" field.
func (_c *SessionCreate) SetMaxQuestions(v int) *SessionCreate {
	_c.mutation.SetMaxQuestions(v)
	return _c
}

// SetQuestionIndex sets the "question_index" field.
func (_c *SessionCreate) SetQuestionIndex(v int) *SessionCreate {
	_c.mutation.SetQuestionIndex(v)
	return _c
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_c *SessionCreate) SetNillableQuestionIndex(v *int) *SessionCreate {
	if v != nil {
		_c.SetQuestionIndex(*v)
	}
	return _c
}

// SetTestVersion sets the "test_version" field.
func (_c *SessionCreate) SetTestVersion(v string) *SessionCreate {
	_c.mutation.SetTestVersion(v)
	return _c
}

// SetBankVersion sets the "bank_version" field.
func (_c *SessionCreate) SetBankVersion(v string) *SessionCreate {
	_c.mutation.SetBankVersion(v)
	return _c
}

// SetScoringVersion sets the "scoring_version" field.
func (_c *SessionCreate) SetScoringVersion(v string) *SessionCreate {
	_c.mutation.SetScoringVersion(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *SessionCreate) SetPromptVersion(v string) *SessionCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Locale(); !ok {
		v := session.DefaultLocale
		_c.mutation.SetLocale(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		v := session.DefaultQuestionIndex
		_c.mutation.SetQuestionIndex(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Session.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := session.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Session.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Session.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := session.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Session.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "Session.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := session.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Session.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Locale(); !ok {
		return &ValidationError{Name: "locale", err: errors.New(`ent: missing required field "Session.locale"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxQuestions(); !ok {
		return &ValidationError{Name: "max_questions", err: errors.New(`ent: missing required field "Session.max_questions"`)}
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		return &ValidationError{Name: "question_index", err: errors.New(`ent: missing required field "Session.question_index"`)}
	}
	if _, ok := _c.mutation.TestVersion(); !ok {
		return &ValidationError{Name: "test_version", err: errors.New(`ent: missing required field "Session.test_version"`)}
	}
	if v, ok := _c.mutation.TestVersion(); ok {
		if err := session.TestVersionValidator(v); err != nil {
			return &ValidationError{Name: "test_version", err: fmt.Errorf(`ent: validator failed for field "Session.test_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BankVersion(); !ok {
		return &ValidationError{Name: "bank_version", err: errors.New(`ent: missing required field "Session.bank_version"`)}
	}
	if v, ok := _c.mutation.BankVersion(); ok {
		if err := session.BankVersionValidator(v); err != nil {
			return &ValidationError{Name: "bank_version", err: fmt.Errorf(`ent: validator failed for field "Session.bank_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScoringVersion(); !ok {
		return &ValidationError{Name: "scoring_version", err: errors.New(`ent: missing required field "Session.scoring_version"`)}
	}
	if v, ok := _c.mutation.ScoringVersion(); ok {
		if err := session.ScoringVersionValidator(v); err != nil {
			return &ValidationError{Name: "scoring_version", err: fmt.Errorf(`ent: validator failed for field "Session.scoring_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required field "Session.prompt_version"`)}
	}
	if v, ok := _c.mutation.PromptVersion(); ok {
		if err := session.PromptVersionValidator(v); err != nil {
			return &ValidationError{Name: "prompt_version", err: fmt.Errorf(`ent: validator failed for field "Session.prompt_version": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(session.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(session.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(session.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Locale(); ok {
		_spec.SetField(session.FieldLocale, field.TypeString, value)
		_node.Locale = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.MaxQuestions(); ok {
		_spec.SetField(session.FieldMaxQuestions, field.TypeInt, value)
		_node.MaxQuestions = value
	}
	if value, ok := _c.mutation.QuestionIndex(); ok {
		_spec.SetField(session.FieldQuestionIndex, field.TypeInt, value)
		_node.QuestionIndex = value
	}
	if value, ok := _c.mutation.TestVersion(); ok {
		_spec.SetField(session.FieldTestVersion, field.TypeString, value)
		_node.TestVersion = value
	}
	if value, ok := _c.mutation.BankVersion(); ok {
		_spec.SetField(session.FieldBankVersion, field.TypeString, value)
		_node.BankVersion = value
	}
	if value, ok := _c.mutation.ScoringVersion(); ok {
		_spec.SetField(session.FieldScoringVersion, field.TypeString, value)
		_node.ScoringVersion = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(session.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
