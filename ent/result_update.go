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
	"github.com/dishalabs/disha/ent/result"
	"github.com/dishalabs/disha/ent/schema"
)

// ResultUpdate is the builder for updating Result entities.
type ResultUpdate struct {
	config
	hooks    []Hook
	mutation *ResultMutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdate) Where(ps ...predicate.Result) *ResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResultUpdate) SetUpdatedAt(v time.Time) *ResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDomainScores sets the "domain_scores" field.
func (_u *ResultUpdate) SetDomainScores(v map[string]schema.DomainScoreSpec) *ResultUpdate {
	_u.mutation.SetDomainScores(v)
	return _u
}

// SetTopDomains sets the "top_domains" field.
func (_u *ResultUpdate) SetTopDomains(v []string) *ResultUpdate {
	_u.mutation.SetTopDomains(v)
	return _u
}

// AppendTopDomains appends value to the "top_domains" field.
func (_u *ResultUpdate) AppendTopDomains(v []string) *ResultUpdate {
	_u.mutation.AppendTopDomains(v)
	return _u
}

// SetTopMargin sets the "top_margin" field.
func (_u *ResultUpdate) SetTopMargin(v float64) *ResultUpdate {
	_u.mutation.ResetTopMargin()
	_u.mutation.SetTopMargin(v)
	return _u
}

// SetNillableTopMargin sets the "top_margin" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTopMargin(v *float64) *ResultUpdate {
	if v != nil {
		_u.SetTopMargin(*v)
	}
	return _u
}

// AddTopMargin adds value to the "top_margin" field.
func (_u *ResultUpdate) AddTopMargin(v float64) *ResultUpdate {
	_u.mutation.AddTopMargin(v)
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *ResultUpdate) SetConfidenceLevel(v string) *ResultUpdate {
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableConfidenceLevel(v *string) *ResultUpdate {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ResultUpdate) SetConfidenceScore(v float64) *ResultUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableConfidenceScore(v *float64) *ResultUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ResultUpdate) AddConfidenceScore(v float64) *ResultUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetScoredAnswers sets the "scored_answers" field.
func (_u *ResultUpdate) SetScoredAnswers(v int) *ResultUpdate {
	_u.mutation.ResetScoredAnswers()
	_u.mutation.SetScoredAnswers(v)
	return _u
}

// SetNillableScoredAnswers sets the "scored_answers" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableScoredAnswers(v *int) *ResultUpdate {
	if v != nil {
		_u.SetScoredAnswers(*v)
	}
	return _u
}

// AddScoredAnswers adds value to the "scored_answers" field.
func (_u *ResultUpdate) AddScoredAnswers(v int) *ResultUpdate {
	_u.mutation.AddScoredAnswers(v)
	return _u
}

// SetStream sets the "stream" field.
func (_u *ResultUpdate) SetStream(v string) *ResultUpdate {
	_u.mutation.SetStream(v)
	return _u
}

// SetNillableStream sets the "stream" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableStream(v *string) *ResultUpdate {
	if v != nil {
		_u.SetStream(*v)
	}
	return _u
}

// SetCareerFields sets the "career_fields" field.
func (_u *ResultUpdate) SetCareerFields(v []string) *ResultUpdate {
	_u.mutation.SetCareerFields(v)
	return _u
}

// AppendCareerFields appends value to the "career_fields" field.
func (_u *ResultUpdate) AppendCareerFields(v []string) *ResultUpdate {
	_u.mutation.AppendCareerFields(v)
	return _u
}

// ClearCareerFields clears the value of the "career_fields" field.
func (_u *ResultUpdate) ClearCareerFields() *ResultUpdate {
	_u.mutation.ClearCareerFields()
	return _u
}

// SetGuidance sets the "guidance" field.
func (_u *ResultUpdate) SetGuidance(v string) *ResultUpdate {
	_u.mutation.SetGuidance(v)
	return _u
}

// SetNillableGuidance sets the "guidance" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableGuidance(v *string) *ResultUpdate {
	if v != nil {
		_u.SetGuidance(*v)
	}
	return _u
}

// SetCourses sets the "courses" field.
func (_u *ResultUpdate) SetCourses(v []schema.CourseSpec) *ResultUpdate {
	_u.mutation.SetCourses(v)
	return _u
}

// AppendCourses appends value to the "courses" field.
func (_u *ResultUpdate) AppendCourses(v []schema.CourseSpec) *ResultUpdate {
	_u.mutation.AppendCourses(v)
	return _u
}

// ClearCourses clears the value of the "courses" field.
func (_u *ResultUpdate) ClearCourses() *ResultUpdate {
	_u.mutation.ClearCourses()
	return _u
}

// SetNarrative sets the "narrative" field.
func (_u *ResultUpdate) SetNarrative(v string) *ResultUpdate {
	_u.mutation.SetNarrative(v)
	return _u
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableNarrative(v *string) *ResultUpdate {
	if v != nil {
		_u.SetNarrative(*v)
	}
	return _u
}

// SetAnswerMeanings sets the "answer_meanings" field.
func (_u *ResultUpdate) SetAnswerMeanings(v map[string]string) *ResultUpdate {
	_u.mutation.SetAnswerMeanings(v)
	return _u
}

// ClearAnswerMeanings clears the value of the "answer_meanings" field.
func (_u *ResultUpdate) ClearAnswerMeanings() *ResultUpdate {
	_u.mutation.ClearAnswerMeanings()
	return _u
}

// SetDomainNarratives sets the "domain_narratives" field.
func (_u *ResultUpdate) SetDomainNarratives(v map[string]string) *ResultUpdate {
	_u.mutation.SetDomainNarratives(v)
	return _u
}

// ClearDomainNarratives clears the value of the "domain_narratives" field.
func (_u *ResultUpdate) ClearDomainNarratives() *ResultUpdate {
	_u.mutation.ClearDomainNarratives()
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdate) Mutation() *ResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := result.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdate) check() error {
	if v, ok := _u.mutation.ConfidenceLevel(); ok {
		if err := result.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "Result.confidence_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stream(); ok {
		if err := result.StreamValidator(v); err != nil {
			return &ValidationError{Name: "stream", err: fmt.Errorf(`ent: validator failed for field "Result.stream": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(result.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DomainScores(); ok {
		_spec.SetField(result.FieldDomainScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TopDomains(); ok {
		_spec.SetField(result.FieldTopDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, result.FieldTopDomains, value)
		})
	}
	if value, ok := _u.mutation.TopMargin(); ok {
		_spec.SetField(result.FieldTopMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTopMargin(); ok {
		_spec.AddField(result.FieldTopMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(result.FieldConfidenceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(result.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(result.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoredAnswers(); ok {
		_spec.SetField(result.FieldScoredAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoredAnswers(); ok {
		_spec.AddField(result.FieldScoredAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stream(); ok {
		_spec.SetField(result.FieldStream, field.TypeString, value)
	}
	if value, ok := _u.mutation.CareerFields(); ok {
		_spec.SetField(result.FieldCareerFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCareerFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, result.FieldCareerFields, value)
		})
	}
	if _u.mutation.CareerFieldsCleared() {
		_spec.ClearField(result.FieldCareerFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Guidance(); ok {
		_spec.SetField(result.FieldGuidance, field.TypeString, value)
	}
	if value, ok := _u.mutation.Courses(); ok {
		_spec.SetField(result.FieldCourses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCourses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, result.FieldCourses, value)
		})
	}
	if _u.mutation.CoursesCleared() {
		_spec.ClearField(result.FieldCourses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Narrative(); ok {
		_spec.SetField(result.FieldNarrative, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerMeanings(); ok {
		_spec.SetField(result.FieldAnswerMeanings, field.TypeJSON, value)
	}
	if _u.mutation.AnswerMeaningsCleared() {
		_spec.ClearField(result.FieldAnswerMeanings, field.TypeJSON)
	}
	if value, ok := _u.mutation.DomainNarratives(); ok {
		_spec.SetField(result.FieldDomainNarratives, field.TypeJSON, value)
	}
	if _u.mutation.DomainNarrativesCleared() {
		_spec.ClearField(result.FieldDomainNarratives, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultUpdateOne is the builder for updating a single Result entity.
type ResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResultUpdateOne) SetUpdatedAt(v time.Time) *ResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDomainScores sets the "domain_scores" field.
func (_u *ResultUpdateOne) SetDomainScores(v map[string]schema.DomainScoreSpec) *ResultUpdateOne {
	_u.mutation.SetDomainScores(v)
	return _u
}

// SetTopDomains sets the "top_domains" field.
func (_u *ResultUpdateOne) SetTopDomains(v []string) *ResultUpdateOne {
	_u.mutation.SetTopDomains(v)
	return _u
}

// AppendTopDomains appends value to the "top_domains" field.
func (_u *ResultUpdateOne) AppendTopDomains(v []string) *ResultUpdateOne {
	_u.mutation.AppendTopDomains(v)
	return _u
}

// SetTopMargin sets the "top_margin" field.
func (_u *ResultUpdateOne) SetTopMargin(v float64) *ResultUpdateOne {
	_u.mutation.ResetTopMargin()
	_u.mutation.SetTopMargin(v)
	return _u
}

// SetNillableTopMargin sets the "top_margin" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTopMargin(v *float64) *ResultUpdateOne {
	if v != nil {
		_u.SetTopMargin(*v)
	}
	return _u
}

// AddTopMargin adds value to the "top_margin" field.
func (_u *ResultUpdateOne) AddTopMargin(v float64) *ResultUpdateOne {
	_u.mutation.AddTopMargin(v)
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *ResultUpdateOne) SetConfidenceLevel(v string) *ResultUpdateOne {
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableConfidenceLevel(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ResultUpdateOne) SetConfidenceScore(v float64) *ResultUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableConfidenceScore(v *float64) *ResultUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ResultUpdateOne) AddConfidenceScore(v float64) *ResultUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetScoredAnswers sets the "scored_answers" field.
func (_u *ResultUpdateOne) SetScoredAnswers(v int) *ResultUpdateOne {
	_u.mutation.ResetScoredAnswers()
	_u.mutation.SetScoredAnswers(v)
	return _u
}

// SetNillableScoredAnswers sets the "scored_answers" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableScoredAnswers(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetScoredAnswers(*v)
	}
	return _u
}

// AddScoredAnswers adds value to the "scored_answers" field.
func (_u *ResultUpdateOne) AddScoredAnswers(v int) *ResultUpdateOne {
	_u.mutation.AddScoredAnswers(v)
	return _u
}

// SetStream sets the "stream" field.
func (_u *ResultUpdateOne) SetStream(v string) *ResultUpdateOne {
	_u.mutation.SetStream(v)
	return _u
}

// SetNillableStream sets the "stream" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableStream(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetStream(*v)
	}
	return _u
}

// SetCareerFields sets the "career_fields" field.
func (_u *ResultUpdateOne) SetCareerFields(v []string) *ResultUpdateOne {
	_u.mutation.SetCareerFields(v)
	return _u
}

// AppendCareerFields appends value to the "career_fields" field.
func (_u *ResultUpdateOne) AppendCareerFields(v []string) *ResultUpdateOne {
	_u.mutation.AppendCareerFields(v)
	return _u
}

// ClearCareerFields clears the value of the "career_fields" field.
func (_u *ResultUpdateOne) ClearCareerFields() *ResultUpdateOne {
	_u.mutation.ClearCareerFields()
	return _u
}

// SetGuidance sets the "guidance" field.
func (_u *ResultUpdateOne) SetGuidance(v string) *ResultUpdateOne {
	_u.mutation.SetGuidance(v)
	return _u
}

// SetNillableGuidance sets the "guidance" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableGuidance(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetGuidance(*v)
	}
	return _u
}

// SetCourses sets the "courses" field.
func (_u *ResultUpdateOne) SetCourses(v []schema.CourseSpec) *ResultUpdateOne {
	_u.mutation.SetCourses(v)
	return _u
}

// AppendCourses appends value to the "courses" field.
func (_u *ResultUpdateOne) AppendCourses(v []schema.CourseSpec) *ResultUpdateOne {
	_u.mutation.AppendCourses(v)
	return _u
}

// ClearCourses clears the value of the "courses" field.
func (_u *ResultUpdateOne) ClearCourses() *ResultUpdateOne {
	_u.mutation.ClearCourses()
	return _u
}

// SetNarrative sets the "narrative" field.
func (_u *ResultUpdateOne) SetNarrative(v string) *ResultUpdateOne {
	_u.mutation.SetNarrative(v)
	return _u
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableNarrative(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetNarrative(*v)
	}
	return _u
}

// SetAnswerMeanings sets the "answer_meanings" field.
func (_u *ResultUpdateOne) SetAnswerMeanings(v map[string]string) *ResultUpdateOne {
	_u.mutation.SetAnswerMeanings(v)
	return _u
}

// ClearAnswerMeanings clears the value of the "answer_meanings" field.
func (_u *ResultUpdateOne) ClearAnswerMeanings() *ResultUpdateOne {
	_u.mutation.ClearAnswerMeanings()
	return _u
}

// SetDomainNarratives sets the "domain_narratives" field.
func (_u *ResultUpdateOne) SetDomainNarratives(v map[string]string) *ResultUpdateOne {
	_u.mutation.SetDomainNarratives(v)
	return _u
}

// ClearDomainNarratives clears the value of the "domain_narratives" field.
func (_u *ResultUpdateOne) ClearDomainNarratives() *ResultUpdateOne {
	_u.mutation.ClearDomainNarratives()
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdateOne) Mutation() *ResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdateOne) Where(ps ...predicate.Result) *ResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultUpdateOne) Select(field string, fields ...string) *ResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Result entity.
func (_u *ResultUpdateOne) Save(ctx context.Context) (*Result, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdateOne) SaveX(ctx context.Context) *Result {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := result.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdateOne) check() error {
	if v, ok := _u.mutation.ConfidenceLevel(); ok {
		if err := result.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "Result.confidence_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stream(); ok {
		if err := result.StreamValidator(v); err != nil {
			return &ValidationError{Name: "stream", err: fmt.Errorf(`ent: validator failed for field "Result.stream": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultUpdateOne) sqlSave(ctx context.Context) (_node *Result, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Result.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, result.FieldID)
		for _, f := range fields {
			if !result.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != result.FieldID {
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
		_spec.SetField(result.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DomainScores(); ok {
		_spec.SetField(result.FieldDomainScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TopDomains(); ok {
		_spec.SetField(result.FieldTopDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, result.FieldTopDomains, value)
		})
	}
	if value, ok := _u.mutation.TopMargin(); ok {
		_spec.SetField(result.FieldTopMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTopMargin(); ok {
		_spec.AddField(result.FieldTopMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(result.FieldConfidenceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(result.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(result.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoredAnswers(); ok {
		_spec.SetField(result.FieldScoredAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoredAnswers(); ok {
		_spec.AddField(result.FieldScoredAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stream(); ok {
		_spec.SetField(result.FieldStream, field.TypeString, value)
	}
	if value, ok := _u.mutation.CareerFields(); ok {
		_spec.SetField(result.FieldCareerFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCareerFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, result.FieldCareerFields, value)
		})
	}
	if _u.mutation.CareerFieldsCleared() {
		_spec.ClearField(result.FieldCareerFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Guidance(); ok {
		_spec.SetField(result.FieldGuidance, field.TypeString, value)
	}
	if value, ok := _u.mutation.Courses(); ok {
		_spec.SetField(result.FieldCourses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCourses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, result.FieldCourses, value)
		})
	}
	if _u.mutation.CoursesCleared() {
		_spec.ClearField(result.FieldCourses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Narrative(); ok {
		_spec.SetField(result.FieldNarrative, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerMeanings(); ok {
		_spec.SetField(result.FieldAnswerMeanings, field.TypeJSON, value)
	}
	if _u.mutation.AnswerMeaningsCleared() {
		_spec.ClearField(result.FieldAnswerMeanings, field.TypeJSON)
	}
	if value, ok := _u.mutation.DomainNarratives(); ok {
		_spec.SetField(result.FieldDomainNarratives, field.TypeJSON, value)
	}
	if _u.mutation.DomainNarrativesCleared() {
		_spec.ClearField(result.FieldDomainNarratives, field.TypeJSON)
	}
	_node = &Result{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
