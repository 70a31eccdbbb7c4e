// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dishalabs/disha/ent/result"
	"github.com/dishalabs/disha/ent/schema"
)

// ResultCreate is the builder for creating a Result entity.
type ResultCreate struct {
	config
	mutation *ResultMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResultCreate) SetCreatedAt(v time.Time) *ResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResultCreate) SetNillableCreatedAt(v *time.Time) *ResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResultCreate) SetUpdatedAt(v time.Time) *ResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResultCreate) SetNillableUpdatedAt(v *time.Time) *ResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ResultCreate) SetSessionID(v string) *ResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *ResultCreate) SetStudentID(v string) *ResultCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *ResultCreate) SetGrade(v string) *ResultCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetDomainScores sets the "domain_scores" field.
func (_c *ResultCreate) SetDomainScores(v map[string]schema.DomainScoreSpec) *ResultCreate {
	_c.mutation.SetDomainScores(v)
	return _c
}

// SetTopDomains sets the "top_domains" field.
func (_c *ResultCreate) SetTopDomains(v []string) *ResultCreate {
	_c.mutation.SetTopDomains(v)
	return _c
}

// SetTopMargin sets the "top_margin" field.
func (_c *ResultCreate) SetTopMargin(v float64) *ResultCreate {
	_c.mutation.SetTopMargin(v)
	return _c
}

// SetNillableTopMargin sets the "top_margin" field if the given value is not nil.
func (_c *ResultCreate) SetNillableTopMargin(v *float64) *ResultCreate {
	if v != nil {
		_c.SetTopMargin(*v)
	}
	return _c
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_c *ResultCreate) SetConfidenceLevel(v string) *ResultCreate {
	_c.mutation.SetConfidenceLevel(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ResultCreate) SetConfidenceScore(v float64) *ResultCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *ResultCreate) SetNillableConfidenceScore(v *float64) *ResultCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetScoredAnswers sets the "scored_answers" field.
func (_c *ResultCreate) SetScoredAnswers(v int) *ResultCreate {
	_c.mutation.SetScoredAnswers(v)
	return _c
}

// SetNillableScoredAnswers sets the "scored_answers" field if the given value is not nil.
func (_c *ResultCreate) SetNillableScoredAnswers(v *int) *ResultCreate {
	if v != nil {
		_c.SetScoredAnswers(*v)
	}
	return _c
}

// SetStream sets the "stream" field.
func (_c *ResultCreate) SetStream(v string) *ResultCreate {
	_c.mutation.SetStream(v)
	return _c
}

// SetCareerFields sets the "career_fields" field.
func (_c *ResultCreate) SetCareerFields(v []string) *ResultCreate {
	_c.mutation.SetCareerFields(v)
	return _c
}

// SetGuidance sets the "guidance" field.
func (_c *ResultCreate) SetGuidance(v string) *ResultCreate {
	_c.mutation.SetGuidance(v)
	return _c
}

// SetNillableGuidance sets the "guidance" field if the given value is not nil.
func (_c *ResultCreate) SetNillableGuidance(v *string) *ResultCreate {
	if v != nil {
		_c.SetGuidance(*v)
	}
	return _c
}

// SetCourses sets the "courses" field.
func (_c *ResultCreate) SetCourses(v []schema.CourseSpec) *ResultCreate {
	_c.mutation.SetCourses(v)
	return _c
}

// SetNarrative sets the "narrative" field.
func (_c *ResultCreate) SetNarrative(v string) *ResultCreate {
	_c.mutation.SetNarrative(v)
	return _c
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_c *ResultCreate) SetNillableNarrative(v *string) *ResultCreate {
	if v != nil {
		_c.SetNarrative(*v)
	}
	return _c
}

// SetAnswerMeanings sets the "answer_meanings" field.
func (_c *ResultCreate) SetAnswerMeanings(v map[string]string) *ResultCreate {
	_c.mutation.SetAnswerMeanings(v)
	return _c
}

// SetDomainNarratives sets the "domain_narratives" field.
func (_c *ResultCreate) SetDomainNarratives(v map[string]string) *ResultCreate {
	_c.mutation.SetDomainNarratives(v)
	return _c
}

// SetTestVersion sets the "test_version" field.
func (_c *ResultCreate) SetTestVersion(v string) *ResultCreate {
	_c.mutation.SetTestVersion(v)
	return _c
}

// SetBankVersion sets the "bank_version" field.
func (_c *ResultCreate) SetBankVersion(v string) *ResultCreate {
	_c.mutation.SetBankVersion(v)
	return _c
}

// SetScoringVersion sets the "scoring_version" field.
func (_c *ResultCreate) SetScoringVersion(v string) *ResultCreate {
	_c.mutation.SetScoringVersion(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *ResultCreate) SetPromptVersion(v string) *ResultCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// Mutation returns the ResultMutation object of the builder.
func (_c *ResultCreate) Mutation() *ResultMutation {
	return _c.mutation
}

// Save creates the Result in the database.
func (_c *ResultCreate) Save(ctx context.Context) (*Result, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultCreate) SaveX(ctx context.Context) *Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := result.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := result.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TopMargin(); !ok {
		v := result.DefaultTopMargin
		_c.mutation.SetTopMargin(v)
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := result.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.ScoredAnswers(); !ok {
		v := result.DefaultScoredAnswers
		_c.mutation.SetScoredAnswers(v)
	}
	if _, ok := _c.mutation.Guidance(); !ok {
		v := result.DefaultGuidance
		_c.mutation.SetGuidance(v)
	}
	if _, ok := _c.mutation.Narrative(); !ok {
		v := result.DefaultNarrative
		_c.mutation.SetNarrative(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Result.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Result.updated_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Result.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := result.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Result.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Result.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := result.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Result.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "Result.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := result.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Result.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DomainScores(); !ok {
		return &ValidationError{Name: "domain_scores", err: errors.New(`ent: missing required field "Result.domain_scores"`)}
	}
	if _, ok := _c.mutation.TopDomains(); !ok {
		return &ValidationError{Name: "top_domains", err: errors.New(`ent: missing required field "Result.top_domains"`)}
	}
	if _, ok := _c.mutation.TopMargin(); !ok {
		return &ValidationError{Name: "top_margin", err: errors.New(`ent: missing required field "Result.top_margin"`)}
	}
	if _, ok := _c.mutation.ConfidenceLevel(); !ok {
		return &ValidationError{Name: "confidence_level", err: errors.New(`ent: missing required field "Result.confidence_level"`)}
	}
	if v, ok := _c.mutation.ConfidenceLevel(); ok {
		if err := result.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "Result.confidence_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "Result.confidence_score"`)}
	}
	if _, ok := _c.mutation.ScoredAnswers(); !ok {
		return &ValidationError{Name: "scored_answers", err: errors.New(`ent: missing required field "Result.scored_answers"`)}
	}
	if _, ok := _c.mutation.Stream(); !ok {
		return &ValidationError{Name: "stream", err: errors.New(`ent: missing required field "Result.stream"`)}
	}
	if v, ok := _c.mutation.Stream(); ok {
		if err := result.StreamValidator(v); err != nil {
			return &ValidationError{Name: "stream", err: fmt.Errorf(`ent: validator failed for field "Result.stream": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Guidance(); !ok {
		return &ValidationError{Name: "guidance", err: errors.New(`ent: missing required field "Result.guidance"`)}
	}
	if _, ok := _c.mutation.Narrative(); !ok {
		return &ValidationError{Name: "narrative", err: errors.New(`ent: missing required field "Result.narrative"`)}
	}
	if _, ok := _c.mutation.TestVersion(); !ok {
		return &ValidationError{Name: "test_version", err: errors.New(`ent: missing required field "Result.test_version"`)}
	}
	if v, ok := _c.mutation.TestVersion(); ok {
		if err := result.TestVersionValidator(v); err != nil {
			return &ValidationError{Name: "test_version", err: fmt.Errorf(`ent: validator failed for field "Result.test_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BankVersion(); !ok {
		return &ValidationError{Name: "bank_version", err: errors.New(`ent: missing required field "Result.bank_version"`)}
	}
	if v, ok := _c.mutation.BankVersion(); ok {
		if err := result.BankVersionValidator(v); err != nil {
			return &ValidationError{Name: "bank_version", err: fmt.Errorf(`ent: validator failed for field "Result.bank_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScoringVersion(); !ok {
		return &ValidationError{Name: "scoring_version", err: errors.New(`ent: missing required field "Result.scoring_version"`)}
	}
	if v, ok := _c.mutation.ScoringVersion(); ok {
		if err := result.ScoringVersionValidator(v); err != nil {
			return &ValidationError{Name: "scoring_version", err: fmt.Errorf(`ent: validator failed for field "Result.scoring_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required field "Result.prompt_version"`)}
	}
	if v, ok := _c.mutation.PromptVersion(); ok {
		if err := result.PromptVersionValidator(v); err != nil {
			return &ValidationError{Name: "prompt_version", err: fmt.Errorf(`ent: validator failed for field "Result.prompt_version": %w`, err)}
		}
	}
	return nil
}

func (_c *ResultCreate) sqlSave(ctx context.Context) (*Result, error) {
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

func (_c *ResultCreate) createSpec() (*Result, *sqlgraph.CreateSpec) {
	var (
		_node = &Result{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(result.Table, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(result.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(result.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(result.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(result.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(result.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.DomainScores(); ok {
		_spec.SetField(result.FieldDomainScores, field.TypeJSON, value)
		_node.DomainScores = value
	}
	if value, ok := _c.mutation.TopDomains(); ok {
		_spec.SetField(result.FieldTopDomains, field.TypeJSON, value)
		_node.TopDomains = value
	}
	if value, ok := _c.mutation.TopMargin(); ok {
		_spec.SetField(result.FieldTopMargin, field.TypeFloat64, value)
		_node.TopMargin = value
	}
	if value, ok := _c.mutation.ConfidenceLevel(); ok {
		_spec.SetField(result.FieldConfidenceLevel, field.TypeString, value)
		_node.ConfidenceLevel = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(result.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.ScoredAnswers(); ok {
		_spec.SetField(result.FieldScoredAnswers, field.TypeInt, value)
		_node.ScoredAnswers = value
	}
	if value, ok := _c.mutation.Stream(); ok {
		_spec.SetField(result.FieldStream, field.TypeString, value)
		_node.Stream = value
	}
	if value, ok := _c.mutation.CareerFields(); ok {
		_spec.SetField(result.FieldCareerFields, field.TypeJSON, value)
		_node.CareerFields = value
	}
	if value, ok := _c.mutation.Guidance(); ok {
		_spec.SetField(result.FieldGuidance, field.TypeString, value)
		_node.Guidance = value
	}
	if value, ok := _c.mutation.Courses(); ok {
		_spec.SetField(result.FieldCourses, field.TypeJSON, value)
		_node.Courses = value
	}
	if value, ok := _c.mutation.Narrative(); ok {
		_spec.SetField(result.FieldNarrative, field.TypeString, value)
		_node.Narrative = value
	}
	if value, ok := _c.mutation.AnswerMeanings(); ok {
		_spec.SetField(result.FieldAnswerMeanings, field.TypeJSON, value)
		_node.AnswerMeanings = value
	}
	if value, ok := _c.mutation.DomainNarratives(); ok {
		_spec.SetField(result.FieldDomainNarratives, field.TypeJSON, value)
		_node.DomainNarratives = value
	}
	if value, ok := _c.mutation.TestVersion(); ok {
		_spec.SetField(result.FieldTestVersion, field.TypeString, value)
		_node.TestVersion = value
	}
	if value, ok := _c.mutation.BankVersion(); ok {
		_spec.SetField(result.FieldBankVersion, field.TypeString, value)
		_node.BankVersion = value
	}
	if value, ok := _c.mutation.ScoringVersion(); ok {
		_spec.SetField(result.FieldScoringVersion, field.TypeString, value)
		_node.ScoringVersion = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(result.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	return _node, _spec
}

// ResultCreateBulk is the builder for creating many Result entities in bulk.
type ResultCreateBulk struct {
	config
	err      error
	builders []*ResultCreate
}

// Save creates the Result entities in the database.
func (_c *ResultCreateBulk) Save(ctx context.Context) ([]*Result, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Result, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultMutation)
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
func (_c *ResultCreateBulk) SaveX(ctx context.Context) []*Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
