// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dishalabs/disha/ent/question"
	"github.com/dishalabs/disha/ent/schema"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionCreate) SetUpdatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableUpdatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionCreate) SetQuestionID(v string) *QuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetBankVersion sets the "bank_version" field.
func (_c *QuestionCreate) SetBankVersion(v string) *QuestionCreate {
	_c.mutation.SetBankVersion(v)
	return _c
}

// SetType sets the "type" field.
func (_c *QuestionCreate) SetType(v question.Type) *QuestionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *QuestionCreate) SetPrompt(v string) *QuestionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetDomains sets the "domains" field.
func (_c *QuestionCreate) SetDomains(v []string) *QuestionCreate {
	_c.mutation.SetDomains(v)
	return _c
}

// SetReverseScored sets the "reverse_scored" field.
func (_c *QuestionCreate) SetReverseScored(v bool) *QuestionCreate {
	_c.mutation.SetReverseScored(v)
	return _c
}

// SetNillableReverseScored sets the "reverse_scored" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableReverseScored(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetReverseScored(*v)
	}
	return _c
}

// SetWeight sets the "weight" field.
func (_c *QuestionCreate) SetWeight(v float64) *QuestionCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableWeight(v *float64) *QuestionCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *QuestionCreate) SetActive(v bool) *QuestionCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableActive(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetGradeBands sets the "grade_bands" field.
func (_c *QuestionCreate) SetGradeBands(v []string) *QuestionCreate {
	_c.mutation.SetGradeBands(v)
	return _c
}

// SetScaleMin sets the "scale_min" field.
func (_c *QuestionCreate) SetScaleMin(v int) *QuestionCreate {
	_c.mutation.SetScaleMin(v)
	return _c
}

// SetNillableScaleMin sets the "scale_min" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableScaleMin(v *int) *QuestionCreate {
	if v != nil {
		_c.SetScaleMin(*v)
	}
	return _c
}

// SetScaleMax sets the "scale_max" field.
func (_c *QuestionCreate) SetScaleMax(v int) *QuestionCreate {
	_c.mutation.SetScaleMax(v)
	return _c
}

// SetNillableScaleMax sets the "scale_max" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableScaleMax(v *int) *QuestionCreate {
	if v != nil {
		_c.SetScaleMax(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionCreate) SetOptions(v []schema.OptionSpec) *QuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := question.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ReverseScored(); !ok {
		v := question.DefaultReverseScored
		_c.mutation.SetReverseScored(v)
	}
	if _, ok := _c.mutation.Weight(); !ok {
		v := question.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := question.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Question.updated_at"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Question.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := question.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Question.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BankVersion(); !ok {
		return &ValidationError{Name: "bank_version", err: errors.New(`ent: missing required field "Question.bank_version"`)}
	}
	if v, ok := _c.mutation.BankVersion(); ok {
		if err := question.BankVersionValidator(v); err != nil {
			return &ValidationError{Name: "bank_version", err: fmt.Errorf(`ent: validator failed for field "Question.bank_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Question.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Question.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Question.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domains(); !ok {
		return &ValidationError{Name: "domains", err: errors.New(`ent: missing required field "Question.domains"`)}
	}
	if _, ok := _c.mutation.ReverseScored(); !ok {
		return &ValidationError{Name: "reverse_scored", err: errors.New(`ent: missing required field "Question.reverse_scored"`)}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "Question.weight"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Question.active"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(question.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.BankVersion(); ok {
		_spec.SetField(question.FieldBankVersion, field.TypeString, value)
		_node.BankVersion = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Domains(); ok {
		_spec.SetField(question.FieldDomains, field.TypeJSON, value)
		_node.Domains = value
	}
	if value, ok := _c.mutation.ReverseScored(); ok {
		_spec.SetField(question.FieldReverseScored, field.TypeBool, value)
		_node.ReverseScored = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(question.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(question.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.GradeBands(); ok {
		_spec.SetField(question.FieldGradeBands, field.TypeJSON, value)
		_node.GradeBands = value
	}
	if value, ok := _c.mutation.ScaleMin(); ok {
		_spec.SetField(question.FieldScaleMin, field.TypeInt, value)
		_node.ScaleMin = value
	}
	if value, ok := _c.mutation.ScaleMax(); ok {
		_spec.SetField(question.FieldScaleMax, field.TypeInt, value)
		_node.ScaleMax = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
