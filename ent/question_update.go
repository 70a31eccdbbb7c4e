// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dishalabs/disha/ent/predicate"
	"github.com/dishalabs/disha/ent/question"
	"github.com/dishalabs/disha/ent/schema"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdate) SetUpdatedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionUpdate) SetQuestionID(v string) *QuestionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetBankVersion sets the "bank_version" field.
func (_u *QuestionUpdate) SetBankVersion(v string) *QuestionUpdate {
	_u.mutation.SetBankVersion(v)
	return _u
}

// SetNillableBankVersion sets the "bank_version" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableBankVersion(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetBankVersion(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdate) SetType(v question.Type) *QuestionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableType(v *question.Type) *QuestionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdate) SetPrompt(v string) *QuestionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePrompt(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetDomains sets the "domains" field.
func (_u *QuestionUpdate) SetDomains(v []string) *QuestionUpdate {
	_u.mutation.SetDomains(v)
	return _u
}

// AppendDomains appends value to the "domains" field.
func (_u *QuestionUpdate) AppendDomains(v []string) *QuestionUpdate {
	_u.mutation.AppendDomains(v)
	return _u
}

// SetReverseScored sets the "reverse_scored" field.
func (_u *QuestionUpdate) SetReverseScored(v bool) *QuestionUpdate {
	_u.mutation.SetReverseScored(v)
	return _u
}

// SetNillableReverseScored sets the "reverse_scored" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableReverseScored(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetReverseScored(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *QuestionUpdate) SetWeight(v float64) *QuestionUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableWeight(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *QuestionUpdate) AddWeight(v float64) *QuestionUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionUpdate) SetActive(v bool) *QuestionUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableActive(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetGradeBands sets the "grade_bands" field.
func (_u *QuestionUpdate) SetGradeBands(v []string) *QuestionUpdate {
	_u.mutation.SetGradeBands(v)
	return _u
}

// AppendGradeBands appends value to the "grade_bands" field.
func (_u *QuestionUpdate) AppendGradeBands(v []string) *QuestionUpdate {
	_u.mutation.AppendGradeBands(v)
	return _u
}

// ClearGradeBands clears the value of the "grade_bands" field.
func (_u *QuestionUpdate) ClearGradeBands() *QuestionUpdate {
	_u.mutation.ClearGradeBands()
	return _u
}

// SetScaleMin sets the "scale_min" field.
func (_u *QuestionUpdate) SetScaleMin(v int) *QuestionUpdate {
	_u.mutation.ResetScaleMin()
	_u.mutation.SetScaleMin(v)
	return _u
}

// SetNillableScaleMin sets the "scale_min" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableScaleMin(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetScaleMin(*v)
	}
	return _u
}

// AddScaleMin adds value to the "scale_min" field.
func (_u *QuestionUpdate) AddScaleMin(v int) *QuestionUpdate {
	_u.mutation.AddScaleMin(v)
	return _u
}

// ClearScaleMin clears the value of the "scale_min" field.
func (_u *QuestionUpdate) ClearScaleMin() *QuestionUpdate {
	_u.mutation.ClearScaleMin()
	return _u
}

// SetScaleMax sets the "scale_max" field.
func (_u *QuestionUpdate) SetScaleMax(v int) *QuestionUpdate {
	_u.mutation.ResetScaleMax()
	_u.mutation.SetScaleMax(v)
	return _u
}

// SetNillableScaleMax sets the "scale_max" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableScaleMax(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetScaleMax(*v)
	}
	return _u
}

// AddScaleMax adds value to the "scale_max" field.
func (_u *QuestionUpdate) AddScaleMax(v int) *QuestionUpdate {
	_u.mutation.AddScaleMax(v)
	return _u
}

// ClearScaleMax clears the value of the "scale_max" field.
func (_u *QuestionUpdate) ClearScaleMax() *QuestionUpdate {
	_u.mutation.ClearScaleMax()
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdate) SetOptions(v []schema.OptionSpec) *QuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdate) AppendOptions(v []schema.OptionSpec) *QuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdate) ClearOptions() *QuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := question.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Question.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankVersion(); ok {
		if err := question.BankVersionValidator(v); err != nil {
			return &ValidationError{Name: "bank_version", err: fmt.Errorf(`ent: validator failed for field "Question.bank_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Question.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(question.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BankVersion(); ok {
		_spec.SetField(question.FieldBankVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domains(); ok {
		_spec.SetField(question.FieldDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldDomains, value)
		})
	}
	if value, ok := _u.mutation.ReverseScored(); ok {
		_spec.SetField(question.FieldReverseScored, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(question.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(question.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(question.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GradeBands(); ok {
		_spec.SetField(question.FieldGradeBands, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGradeBands(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldGradeBands, value)
		})
	}
	if _u.mutation.GradeBandsCleared() {
		_spec.ClearField(question.FieldGradeBands, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScaleMin(); ok {
		_spec.SetField(question.FieldScaleMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScaleMin(); ok {
		_spec.AddField(question.FieldScaleMin, field.TypeInt, value)
	}
	if _u.mutation.ScaleMinCleared() {
		_spec.ClearField(question.FieldScaleMin, field.TypeInt)
	}
	if value, ok := _u.mutation.ScaleMax(); ok {
		_spec.SetField(question.FieldScaleMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScaleMax(); ok {
		_spec.AddField(question.FieldScaleMax, field.TypeInt, value)
	}
	if _u.mutation.ScaleMaxCleared() {
		_spec.ClearField(question.FieldScaleMax, field.TypeInt)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdateOne) SetUpdatedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionUpdateOne) SetQuestionID(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetBankVersion sets the "bank_version" field.
func (_u *QuestionUpdateOne) SetBankVersion(v string) *QuestionUpdateOne {
	_u.mutation.SetBankVersion(v)
	return _u
}

// SetNillableBankVersion sets the "bank_version" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableBankVersion(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetBankVersion(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdateOne) SetType(v question.Type) *QuestionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableType(v *question.Type) *QuestionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdateOne) SetPrompt(v string) *QuestionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePrompt(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetDomains sets the "domains" field.
func (_u *QuestionUpdateOne) SetDomains(v []string) *QuestionUpdateOne {
	_u.mutation.SetDomains(v)
	return _u
}

// AppendDomains appends value to the "domains" field.
func (_u *QuestionUpdateOne) AppendDomains(v []string) *QuestionUpdateOne {
	_u.mutation.AppendDomains(v)
	return _u
}

// SetReverseScored sets the "reverse_scored" field.
func (_u *QuestionUpdateOne) SetReverseScored(v bool) *QuestionUpdateOne {
	_u.mutation.SetReverseScored(v)
	return _u
}

// SetNillableReverseScored sets the "reverse_scored" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableReverseScored(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetReverseScored(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *QuestionUpdateOne) SetWeight(v float64) *QuestionUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableWeight(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *QuestionUpdateOne) AddWeight(v float64) *QuestionUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionUpdateOne) SetActive(v bool) *QuestionUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableActive(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetGradeBands sets the "grade_bands" field.
func (_u *QuestionUpdateOne) SetGradeBands(v []string) *QuestionUpdateOne {
	_u.mutation.SetGradeBands(v)
	return _u
}

// AppendGradeBands appends value to the "grade_bands" field.
func (_u *QuestionUpdateOne) AppendGradeBands(v []string) *QuestionUpdateOne {
	_u.mutation.AppendGradeBands(v)
	return _u
}

// ClearGradeBands clears the value of the "grade_bands" field.
func (_u *QuestionUpdateOne) ClearGradeBands() *QuestionUpdateOne {
	_u.mutation.ClearGradeBands()
	return _u
}

// SetScaleMin sets the "scale_min" field.
func (_u *QuestionUpdateOne) SetScaleMin(v int) *QuestionUpdateOne {
	_u.mutation.ResetScaleMin()
	_u.mutation.SetScaleMin(v)
	return _u
}

// SetNillableScaleMin sets the "scale_min" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableScaleMin(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetScaleMin(*v)
	}
	return _u
}

// AddScaleMin adds value to the "scale_min" field.
func (_u *QuestionUpdateOne) AddScaleMin(v int) *QuestionUpdateOne {
	_u.mutation.AddScaleMin(v)
	return _u
}

// ClearScaleMin clears the value of the "scale_min" field.
func (_u *QuestionUpdateOne) ClearScaleMin() *QuestionUpdateOne {
	_u.mutation.ClearScaleMin()
	return _u
}

// SetScaleMax sets the "scale_max" field.
func (_u *QuestionUpdateOne) SetScaleMax(v int) *QuestionUpdateOne {
	_u.mutation.ResetScaleMax()
	_u.mutation.SetScaleMax(v)
	return _u
}

// SetNillableScaleMax sets the "scale_max" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableScaleMax(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetScaleMax(*v)
	}
	return _u
}

// AddScaleMax adds value to the "scale_max" field.
func (_u *QuestionUpdateOne) AddScaleMax(v int) *QuestionUpdateOne {
	_u.mutation.AddScaleMax(v)
	return _u
}

// ClearScaleMax clears the value of the "scale_max" field.
func (_u *QuestionUpdateOne) ClearScaleMax() *QuestionUpdateOne {
	_u.mutation.ClearScaleMax()
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdateOne) SetOptions(v []schema.OptionSpec) *QuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdateOne) AppendOptions(v []schema.OptionSpec) *QuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdateOne) ClearOptions() *QuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := question.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Question.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankVersion(); ok {
		if err := question.BankVersionValidator(v); err != nil {
			return &ValidationError{Name: "bank_version", err: fmt.Errorf(`ent: validator failed for field "Question.bank_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Question.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(question.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BankVersion(); ok {
		_spec.SetField(question.FieldBankVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domains(); ok {
		_spec.SetField(question.FieldDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldDomains, value)
		})
	}
	if value, ok := _u.mutation.ReverseScored(); ok {
		_spec.SetField(question.FieldReverseScored, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(question.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(question.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(question.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GradeBands(); ok {
		_spec.SetField(question.FieldGradeBands, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGradeBands(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldGradeBands, value)
		})
	}
	if _u.mutation.GradeBandsCleared() {
		_spec.ClearField(question.FieldGradeBands, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScaleMin(); ok {
		_spec.SetField(question.FieldScaleMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScaleMin(); ok {
		_spec.AddField(question.FieldScaleMin, field.TypeInt, value)
	}
	if _u.mutation.ScaleMinCleared() {
		_spec.ClearField(question.FieldScaleMin, field.TypeInt)
	}
	if value, ok := _u.mutation.ScaleMax(); ok {
		_spec.SetField(question.FieldScaleMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScaleMax(); ok {
		_spec.AddField(question.FieldScaleMax, field.TypeInt, value)
	}
	if _u.mutation.ScaleMaxCleared() {
		_spec.ClearField(question.FieldScaleMax, field.TypeInt)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
