// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dishalabs/disha/ent/predicate"
	"github.com/dishalabs/disha/ent/questionasked"
)

// QuestionAskedUpdate is the builder for updating QuestionAsked entities.
type QuestionAskedUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionAskedMutation
}

// Where appends a list predicates to the QuestionAskedUpdate builder.
func (_u *QuestionAskedUpdate) Where(ps ...predicate.QuestionAsked) *QuestionAskedUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionAskedUpdate) SetUpdatedAt(v time.Time) *QuestionAskedUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPromptVariant sets the "prompt_variant" field.
func (_u *QuestionAskedUpdate) SetPromptVariant(v questionasked.PromptVariant) *QuestionAskedUpdate {
	_u.mutation.SetPromptVariant(v)
	return _u
}

// SetNillablePromptVariant sets the "prompt_variant" field if the given value is not nil.
func (_u *QuestionAskedUpdate) SetNillablePromptVariant(v *questionasked.PromptVariant) *QuestionAskedUpdate {
	if v != nil {
		_u.SetPromptVariant(*v)
	}
	return _u
}

// Mutation returns the QuestionAskedMutation object of the builder.
func (_u *QuestionAskedUpdate) Mutation() *QuestionAskedMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionAskedUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionAskedUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionAskedUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionAskedUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionAskedUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionasked.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionAskedUpdate) check() error {
	if v, ok := _u.mutation.PromptVariant(); ok {
		if err := questionasked.PromptVariantValidator(v); err != nil {
			return &ValidationError{Name: "prompt_variant", err: fmt.Errorf(`ent: validator failed for field "QuestionAsked.prompt_variant": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionAskedUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionasked.Table, questionasked.Columns, sqlgraph.NewFieldSpec(questionasked.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(questionasked.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PromptVariant(); ok {
		_spec.SetField(questionasked.FieldPromptVariant, field.TypeEnum, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(questionasked.FieldOptions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionasked.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionAskedUpdateOne is the builder for updating a single QuestionAsked entity.
type QuestionAskedUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionAskedMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionAskedUpdateOne) SetUpdatedAt(v time.Time) *QuestionAskedUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPromptVariant sets the "prompt_variant" field.
func (_u *QuestionAskedUpdateOne) SetPromptVariant(v questionasked.PromptVariant) *QuestionAskedUpdateOne {
	_u.mutation.SetPromptVariant(v)
	return _u
}

// SetNillablePromptVariant sets the "prompt_variant" field if the given value is not nil.
func (_u *QuestionAskedUpdateOne) SetNillablePromptVariant(v *questionasked.PromptVariant) *QuestionAskedUpdateOne {
	if v != nil {
		_u.SetPromptVariant(*v)
	}
	return _u
}

// Mutation returns the QuestionAskedMutation object of the builder.
func (_u *QuestionAskedUpdateOne) Mutation() *QuestionAskedMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionAskedUpdate builder.
func (_u *QuestionAskedUpdateOne) Where(ps ...predicate.QuestionAsked) *QuestionAskedUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionAskedUpdateOne) Select(field string, fields ...string) *QuestionAskedUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionAsked entity.
func (_u *QuestionAskedUpdateOne) Save(ctx context.Context) (*QuestionAsked, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionAskedUpdateOne) SaveX(ctx context.Context) *QuestionAsked {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionAskedUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionAskedUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionAskedUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionasked.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionAskedUpdateOne) check() error {
	if v, ok := _u.mutation.PromptVariant(); ok {
		if err := questionasked.PromptVariantValidator(v); err != nil {
			return &ValidationError{Name: "prompt_variant", err: fmt.Errorf(`ent: validator failed for field "QuestionAsked.prompt_variant": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionAskedUpdateOne) sqlSave(ctx context.Context) (_node *QuestionAsked, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionasked.Table, questionasked.Columns, sqlgraph.NewFieldSpec(questionasked.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionAsked.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionasked.FieldID)
		for _, f := range fields {
			if !questionasked.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionasked.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(questionasked.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PromptVariant(); ok {
		_spec.SetField(questionasked.FieldPromptVariant, field.TypeEnum, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(questionasked.FieldOptions, field.TypeJSON)
	}
	_node = &QuestionAsked{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionasked.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
