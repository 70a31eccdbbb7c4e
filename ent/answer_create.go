// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dishalabs/disha/ent/answer"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnswerCreate) SetCreatedAt(v time.Time) *AnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableCreatedAt(v *time.Time) *AnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnswerCreate) SetUpdatedAt(v time.Time) *AnswerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableUpdatedAt(v *time.Time) *AnswerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerCreate) SetSessionID(v string) *AnswerCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerCreate) SetQuestionID(v string) *AnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetRawValue sets the "raw_value" field.
func (_c *AnswerCreate) SetRawValue(v float64) *AnswerCreate {
	_c.mutation.SetRawValue(v)
	return _c
}

// SetOptionID sets the "option_id" field.
func (_c *AnswerCreate) SetOptionID(v string) *AnswerCreate {
	_c.mutation.SetOptionID(v)
	return _c
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableOptionID(v *string) *AnswerCreate {
	if v != nil {
		_c.SetOptionID(*v)
	}
	return _c
}

// SetValueLabel sets the "value_label" field.
func (_c *AnswerCreate) SetValueLabel(v string) *AnswerCreate {
	_c.mutation.SetValueLabel(v)
	return _c
}

// SetNillableValueLabel sets the "value_label" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableValueLabel(v *string) *AnswerCreate {
	if v != nil {
		_c.SetValueLabel(*v)
	}
	return _c
}

// SetFreeText sets the "free_text" field.
func (_c *AnswerCreate) SetFreeText(v string) *AnswerCreate {
	_c.mutation.SetFreeText(v)
	return _c
}

// SetNillableFreeText sets the "free_text" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableFreeText(v *string) *AnswerCreate {
	if v != nil {
		_c.SetFreeText(*v)
	}
	return _c
}

// SetPromptShown sets the "prompt_shown" field.
func (_c *AnswerCreate) SetPromptShown(v string) *AnswerCreate {
	_c.mutation.SetPromptShown(v)
	return _c
}

// SetNillablePromptShown sets the "prompt_shown" field if the given value is not nil.
func (_c *AnswerCreate) SetNillablePromptShown(v *string) *AnswerCreate {
	if v != nil {
		_c.SetPromptShown(*v)
	}
	return _c
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_c *AnswerCreate) SetTimeSpentMs(v int64) *AnswerCreate {
	_c.mutation.SetTimeSpentMs(v)
	return _c
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableTimeSpentMs(v *int64) *AnswerCreate {
	if v != nil {
		_c.SetTimeSpentMs(*v)
	}
	return _c
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := answer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := answer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.OptionID(); !ok {
		v := answer.DefaultOptionID
		_c.mutation.SetOptionID(v)
	}
	if _, ok := _c.mutation.ValueLabel(); !ok {
		v := answer.DefaultValueLabel
		_c.mutation.SetValueLabel(v)
	}
	if _, ok := _c.mutation.FreeText(); !ok {
		v := answer.DefaultFreeText
		_c.mutation.SetFreeText(v)
	}
	if _, ok := _c.mutation.PromptShown(); !ok {
		v := answer.DefaultPromptShown
		_c.mutation.SetPromptShown(v)
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		v := answer.DefaultTimeSpentMs
		_c.mutation.SetTimeSpentMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Answer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Answer.updated_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Answer.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answer.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Answer.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Answer.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := answer.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Answer.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawValue(); !ok {
		return &ValidationError{Name: "raw_value", err: errors.New(`ent: missing required field "Answer.raw_value"`)}
	}
	if _, ok := _c.mutation.OptionID(); !ok {
		return &ValidationError{Name: "option_id", err: errors.New(`ent: missing required field "Answer.option_id"`)}
	}
	if _, ok := _c.mutation.ValueLabel(); !ok {
		return &ValidationError{Name: "value_label", err: errors.New(`ent: missing required field "Answer.value_label"`)}
	}
	if _, ok := _c.mutation.FreeText(); !ok {
		return &ValidationError{Name: "free_text", err: errors.New(`ent: missing required field "Answer.free_text"`)}
	}
	if _, ok := _c.mutation.PromptShown(); !ok {
		return &ValidationError{Name: "prompt_shown", err: errors.New(`ent: missing required field "Answer.prompt_shown"`)}
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		return &ValidationError{Name: "time_spent_ms", err: errors.New(`ent: missing required field "Answer.time_spent_ms"`)}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
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

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(answer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(answer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answer.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.RawValue(); ok {
		_spec.SetField(answer.FieldRawValue, field.TypeFloat64, value)
		_node.RawValue = value
	}
	if value, ok := _c.mutation.OptionID(); ok {
		_spec.SetField(answer.FieldOptionID, field.TypeString, value)
		_node.OptionID = value
	}
	if value, ok := _c.mutation.ValueLabel(); ok {
		_spec.SetField(answer.FieldValueLabel, field.TypeString, value)
		_node.ValueLabel = value
	}
	if value, ok := _c.mutation.FreeText(); ok {
		_spec.SetField(answer.FieldFreeText, field.TypeString, value)
		_node.FreeText = value
	}
	if value, ok := _c.mutation.PromptShown(); ok {
		_spec.SetField(answer.FieldPromptShown, field.TypeString, value)
		_node.PromptShown = value
	}
	if value, ok := _c.mutation.TimeSpentMs(); ok {
		_spec.SetField(answer.FieldTimeSpentMs, field.TypeInt64, value)
		_node.TimeSpentMs = value
	}
	return _node, _spec
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
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
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
