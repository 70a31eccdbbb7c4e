// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dishalabs/disha/ent/questionasked"
	"github.com/dishalabs/disha/ent/schema"
)

// QuestionAskedCreate is the builder for creating a QuestionAsked entity.
type QuestionAskedCreate struct {
	config
	mutation *QuestionAskedMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionAskedCreate) SetCreatedAt(v time.Time) *QuestionAskedCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionAskedCreate) SetNillableCreatedAt(v *time.Time) *QuestionAskedCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionAskedCreate) SetUpdatedAt(v time.Time) *QuestionAskedCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionAskedCreate) SetNillableUpdatedAt(v *time.Time) *QuestionAskedCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuestionAskedCreate) SetSessionID(v string) *QuestionAskedCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionAskedCreate) SetQuestionID(v string) *QuestionAskedCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *QuestionAskedCreate) SetPosition(v int) *QuestionAskedCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetPromptVariant sets the "prompt_variant" field.
func (_c *QuestionAskedCreate) SetPromptVariant(v questionasked.PromptVariant) *QuestionAskedCreate {
	_c.mutation.SetPromptVariant(v)
	return _c
}

// SetNillablePromptVariant sets the "prompt_variant" field if the given value is not nil.
func (_c *QuestionAskedCreate) SetNillablePromptVariant(v *questionasked.PromptVariant) *QuestionAskedCreate {
	if v != nil {
		_c.SetPromptVariant(*v)
	}
	return _c
}

// SetPromptText sets the "prompt_text" field.
func (_c *QuestionAskedCreate) SetPromptText(v string) *QuestionAskedCreate {
	_c.mutation.SetPromptText(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionAskedCreate) SetOptions(v []schema.OptionSpec) *QuestionAskedCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// Mutation returns the QuestionAskedMutation object of the builder.
func (_c *QuestionAskedCreate) Mutation() *QuestionAskedMutation {
	return _c.mutation
}

// Save creates the QuestionAsked in the database.
func (_c *QuestionAskedCreate) Save(ctx context.Context) (*QuestionAsked, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionAskedCreate) SaveX(ctx context.Context) *QuestionAsked {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionAskedCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionAskedCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionAskedCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionasked.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := questionasked.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PromptVariant(); !ok {
		v := questionasked.DefaultPromptVariant
		_c.mutation.SetPromptVariant(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionAskedCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionAsked.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QuestionAsked.updated_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuestionAsked.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := questionasked.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionAsked.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionAsked.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := questionasked.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionAsked.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "QuestionAsked.position"`)}
	}
	if _, ok := _c.mutation.PromptVariant(); !ok {
		return &ValidationError{Name: "prompt_variant", err: errors.New(`ent: missing required field "QuestionAsked.prompt_variant"`)}
	}
	if v, ok := _c.mutation.PromptVariant(); ok {
		if err := questionasked.PromptVariantValidator(v); err != nil {
			return &ValidationError{Name: "prompt_variant", err: fmt.Errorf(`ent: validator failed for field "QuestionAsked.prompt_variant": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptText(); !ok {
		return &ValidationError{Name: "prompt_text", err: errors.New(`ent: missing required field "QuestionAsked.prompt_text"`)}
	}
	if v, ok := _c.mutation.PromptText(); ok {
		if err := questionasked.PromptTextValidator(v); err != nil {
			return &ValidationError{Name: "prompt_text", err: fmt.Errorf(`ent: validator failed for field "QuestionAsked.prompt_text": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionAskedCreate) sqlSave(ctx context.Context) (*QuestionAsked, error) {
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

func (_c *QuestionAskedCreate) createSpec() (*QuestionAsked, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionAsked{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionasked.Table, sqlgraph.NewFieldSpec(questionasked.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionasked.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(questionasked.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(questionasked.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(questionasked.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(questionasked.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.PromptVariant(); ok {
		_spec.SetField(questionasked.FieldPromptVariant, field.TypeEnum, value)
		_node.PromptVariant = value
	}
	if value, ok := _c.mutation.PromptText(); ok {
		_spec.SetField(questionasked.FieldPromptText, field.TypeString, value)
		_node.PromptText = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(questionasked.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	return _node, _spec
}

// QuestionAskedCreateBulk is the builder for creating many QuestionAsked entities in bulk.
type QuestionAskedCreateBulk struct {
	config
	err      error
	builders []*QuestionAskedCreate
}

// Save creates the QuestionAsked entities in the database.
func (_c *QuestionAskedCreateBulk) Save(ctx context.Context) ([]*QuestionAsked, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionAsked, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionAskedMutation)
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
func (_c *QuestionAskedCreateBulk) SaveX(ctx context.Context) []*QuestionAsked {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionAskedCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionAskedCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
