// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldSessionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldStudentID, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldGrade, v))
}

// TopMargin applies equality check predicate on the "top_margin" field. It's identical to TopMarginEQ.
func TopMargin(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTopMargin, v))
}

// ConfidenceLevel applies equality check predicate on the "confidence_level" field. It's identical to ConfidenceLevelEQ.
func ConfidenceLevel(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldConfidenceScore, v))
}

// ScoredAnswers applies equality check predicate on the "scored_answers" field. It's identical to ScoredAnswersEQ.
func ScoredAnswers(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldScoredAnswers, v))
}

// Stream applies equality check predicate on the "stream" field. It's identical to StreamEQ.
func Stream(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldStream, v))
}

// Guidance applies equality check predicate on the "guidance" field. It's identical to GuidanceEQ.
func Guidance(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldGuidance, v))
}

// Narrative applies equality check predicate on the "narrative" field. It's identical to NarrativeEQ.
func Narrative(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldNarrative, v))
}

// TestVersion applies equality check predicate on the "test_version" field. It's identical to TestVersionEQ.
func TestVersion(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTestVersion, v))
}

// BankVersion applies equality check predicate on the "bank_version" field. It's identical to BankVersionEQ.
func BankVersion(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldBankVersion, v))
}

// ScoringVersion applies equality check predicate on the "scoring_version" field. It's identical to ScoringVersionEQ.
func ScoringVersion(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldScoringVersion, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldPromptVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldSessionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldStudentID, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldGrade, v))
}

// TopMarginEQ applies the EQ predicate on the "top_margin" field.
func TopMarginEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTopMargin, v))
}

// TopMarginNEQ applies the NEQ predicate on the "top_margin" field.
func TopMarginNEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTopMargin, v))
}

// TopMarginIn applies the In predicate on the "top_margin" field.
func TopMarginIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTopMargin, vs...))
}

// TopMarginNotIn applies the NotIn predicate on the "top_margin" field.
func TopMarginNotIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTopMargin, vs...))
}

// TopMarginGT applies the GT predicate on the "top_margin" field.
func TopMarginGT(v float64) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTopMargin, v))
}

// TopMarginGTE applies the GTE predicate on the "top_margin" field.
func TopMarginGTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTopMargin, v))
}

// TopMarginLT applies the LT predicate on the "top_margin" field.
func TopMarginLT(v float64) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTopMargin, v))
}

// TopMarginLTE applies the LTE predicate on the "top_margin" field.
func TopMarginLTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTopMargin, v))
}

// ConfidenceLevelEQ applies the EQ predicate on the "confidence_level" field.
func ConfidenceLevelEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelNEQ applies the NEQ predicate on the "confidence_level" field.
func ConfidenceLevelNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelIn applies the In predicate on the "confidence_level" field.
func ConfidenceLevelIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelNotIn applies the NotIn predicate on the "confidence_level" field.
func ConfidenceLevelNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelGT applies the GT predicate on the "confidence_level" field.
func ConfidenceLevelGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldConfidenceLevel, v))
}

// ConfidenceLevelGTE applies the GTE predicate on the "confidence_level" field.
func ConfidenceLevelGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelLT applies the LT predicate on the "confidence_level" field.
func ConfidenceLevelLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldConfidenceLevel, v))
}

// ConfidenceLevelLTE applies the LTE predicate on the "confidence_level" field.
func ConfidenceLevelLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelContains applies the Contains predicate on the "confidence_level" field.
func ConfidenceLevelContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldConfidenceLevel, v))
}

// ConfidenceLevelHasPrefix applies the HasPrefix predicate on the "confidence_level" field.
func ConfidenceLevelHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldConfidenceLevel, v))
}

// ConfidenceLevelHasSuffix applies the HasSuffix predicate on the "confidence_level" field.
func ConfidenceLevelHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldConfidenceLevel, v))
}

// ConfidenceLevelEqualFold applies the EqualFold predicate on the "confidence_level" field.
func ConfidenceLevelEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldConfidenceLevel, v))
}

// ConfidenceLevelContainsFold applies the ContainsFold predicate on the "confidence_level" field.
func ConfidenceLevelContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldConfidenceLevel, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldConfidenceScore, v))
}

// ScoredAnswersEQ applies the EQ predicate on the "scored_answers" field.
func ScoredAnswersEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldScoredAnswers, v))
}

// ScoredAnswersNEQ applies the NEQ predicate on the "scored_answers" field.
func ScoredAnswersNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldScoredAnswers, v))
}

// ScoredAnswersIn applies the In predicate on the "scored_answers" field.
func ScoredAnswersIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldScoredAnswers, vs...))
}

// ScoredAnswersNotIn applies the NotIn predicate on the "scored_answers" field.
func ScoredAnswersNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldScoredAnswers, vs...))
}

// ScoredAnswersGT applies the GT predicate on the "scored_answers" field.
func ScoredAnswersGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldScoredAnswers, v))
}

// ScoredAnswersGTE applies the GTE predicate on the "scored_answers" field.
func ScoredAnswersGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldScoredAnswers, v))
}

// ScoredAnswersLT applies the LT predicate on the "scored_answers" field.
func ScoredAnswersLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldScoredAnswers, v))
}

// ScoredAnswersLTE applies the LTE predicate on the "scored_answers" field.
func ScoredAnswersLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldScoredAnswers, v))
}

// StreamEQ applies the EQ predicate on the "stream" field.
func StreamEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldStream, v))
}

// StreamNEQ applies the NEQ predicate on the "stream" field.
func StreamNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldStream, v))
}

// StreamIn applies the In predicate on the "stream" field.
func StreamIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldStream, vs...))
}

// StreamNotIn applies the NotIn predicate on the "stream" field.
func StreamNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldStream, vs...))
}

// StreamGT applies the GT predicate on the "stream" field.
func StreamGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldStream, v))
}

// StreamGTE applies the GTE predicate on the "stream" field.
func StreamGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldStream, v))
}

// StreamLT applies the LT predicate on the "stream" field.
func StreamLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldStream, v))
}

// StreamLTE applies the LTE predicate on the "stream" field.
func StreamLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldStream, v))
}

// StreamContains applies the Contains predicate on the "stream" field.
func StreamContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldStream, v))
}

// StreamHasPrefix applies the HasPrefix predicate on the "stream" field.
func StreamHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldStream, v))
}

// StreamHasSuffix applies the HasSuffix predicate on the "stream" field.
func StreamHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldStream, v))
}

// StreamEqualFold applies the EqualFold predicate on the "stream" field.
func StreamEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldStream, v))
}

// StreamContainsFold applies the ContainsFold predicate on the "stream" field.
func StreamContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldStream, v))
}

// CareerFieldsIsNil applies the IsNil predicate on the "career_fields" field.
func CareerFieldsIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldCareerFields))
}

// CareerFieldsNotNil applies the NotNil predicate on the "career_fields" field.
func CareerFieldsNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldCareerFields))
}

// GuidanceEQ applies the EQ predicate on the "guidance" field.
func GuidanceEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldGuidance, v))
}

// GuidanceNEQ applies the NEQ predicate on the "guidance" field.
func GuidanceNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldGuidance, v))
}

// GuidanceIn applies the In predicate on the "guidance" field.
func GuidanceIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldGuidance, vs...))
}

// GuidanceNotIn applies the NotIn predicate on the "guidance" field.
func GuidanceNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldGuidance, vs...))
}

// GuidanceGT applies the GT predicate on the "guidance" field.
func GuidanceGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldGuidance, v))
}

// GuidanceGTE applies the GTE predicate on the "guidance" field.
func GuidanceGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldGuidance, v))
}

// GuidanceLT applies the LT predicate on the "guidance" field.
func GuidanceLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldGuidance, v))
}

// GuidanceLTE applies the LTE predicate on the "guidance" field.
func GuidanceLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldGuidance, v))
}

// GuidanceContains applies the Contains predicate on the "guidance" field.
func GuidanceContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldGuidance, v))
}

// GuidanceHasPrefix applies the HasPrefix predicate on the "guidance" field.
func GuidanceHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldGuidance, v))
}

// GuidanceHasSuffix applies the HasSuffix predicate on the "guidance" field.
func GuidanceHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldGuidance, v))
}

// GuidanceEqualFold applies the EqualFold predicate on the "guidance" field.
func GuidanceEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldGuidance, v))
}

// GuidanceContainsFold applies the ContainsFold predicate on the "guidance" field.
func GuidanceContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldGuidance, v))
}

// CoursesIsNil applies the IsNil predicate on the "courses" field.
func CoursesIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldCourses))
}

// CoursesNotNil applies the NotNil predicate on the "courses" field.
func CoursesNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldCourses))
}

// NarrativeEQ applies the EQ predicate on the "narrative" field.
func NarrativeEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldNarrative, v))
}

// NarrativeNEQ applies the NEQ predicate on the "narrative" field.
func NarrativeNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldNarrative, v))
}

// NarrativeIn applies the In predicate on the "narrative" field.
func NarrativeIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldNarrative, vs...))
}

// NarrativeNotIn applies the NotIn predicate on the "narrative" field.
func NarrativeNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldNarrative, vs...))
}

// NarrativeGT applies the GT predicate on the "narrative" field.
func NarrativeGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldNarrative, v))
}

// NarrativeGTE applies the GTE predicate on the "narrative" field.
func NarrativeGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldNarrative, v))
}

// NarrativeLT applies the LT predicate on the "narrative" field.
func NarrativeLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldNarrative, v))
}

// NarrativeLTE applies the LTE predicate on the "narrative" field.
func NarrativeLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldNarrative, v))
}

// NarrativeContains applies the Contains predicate on the "narrative" field.
func NarrativeContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldNarrative, v))
}

// NarrativeHasPrefix applies the HasPrefix predicate on the "narrative" field.
func NarrativeHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldNarrative, v))
}

// NarrativeHasSuffix applies the HasSuffix predicate on the "narrative" field.
func NarrativeHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldNarrative, v))
}

// NarrativeEqualFold applies the EqualFold predicate on the "narrative" field.
func NarrativeEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldNarrative, v))
}

// NarrativeContainsFold applies the ContainsFold predicate on the "narrative" field.
func NarrativeContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldNarrative, v))
}

// AnswerMeaningsIsNil applies the IsNil predicate on the "answer_meanings" field.
func AnswerMeaningsIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldAnswerMeanings))
}

// AnswerMeaningsNotNil applies the NotNil predicate on the "answer_meanings" field.
func AnswerMeaningsNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldAnswerMeanings))
}

// DomainNarrativesIsNil applies the IsNil predicate on the "domain_narratives" field.
func DomainNarrativesIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldDomainNarratives))
}

// DomainNarrativesNotNil applies the NotNil predicate on the "domain_narratives" field.
func DomainNarrativesNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldDomainNarratives))
}

// TestVersionEQ applies the EQ predicate on the "test_version" field.
func TestVersionEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTestVersion, v))
}

// TestVersionNEQ applies the NEQ predicate on the "test_version" field.
func TestVersionNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTestVersion, v))
}

// TestVersionIn applies the In predicate on the "test_version" field.
func TestVersionIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTestVersion, vs...))
}

// TestVersionNotIn applies the NotIn predicate on the "test_version" field.
func TestVersionNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTestVersion, vs...))
}

// TestVersionGT applies the GT predicate on the "test_version" field.
func TestVersionGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTestVersion, v))
}

// TestVersionGTE applies the GTE predicate on the "test_version" field.
func TestVersionGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTestVersion, v))
}

// TestVersionLT applies the LT predicate on the "test_version" field.
func TestVersionLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTestVersion, v))
}

// TestVersionLTE applies the LTE predicate on the "test_version" field.
func TestVersionLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTestVersion, v))
}

// TestVersionContains applies the Contains predicate on the "test_version" field.
func TestVersionContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldTestVersion, v))
}

// TestVersionHasPrefix applies the HasPrefix predicate on the "test_version" field.
func TestVersionHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldTestVersion, v))
}

// TestVersionHasSuffix applies the HasSuffix predicate on the "test_version" field.
func TestVersionHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldTestVersion, v))
}

// TestVersionEqualFold applies the EqualFold predicate on the "test_version" field.
func TestVersionEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldTestVersion, v))
}

// TestVersionContainsFold applies the ContainsFold predicate on the "test_version" field.
func TestVersionContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldTestVersion, v))
}

// BankVersionEQ applies the EQ predicate on the "bank_version" field.
func BankVersionEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldBankVersion, v))
}

// BankVersionNEQ applies the NEQ predicate on the "bank_version" field.
func BankVersionNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldBankVersion, v))
}

// BankVersionIn applies the In predicate on the "bank_version" field.
func BankVersionIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldBankVersion, vs...))
}

// BankVersionNotIn applies the NotIn predicate on the "bank_version" field.
func BankVersionNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldBankVersion, vs...))
}

// BankVersionGT applies the GT predicate on the "bank_version" field.
func BankVersionGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldBankVersion, v))
}

// BankVersionGTE applies the GTE predicate on the "bank_version" field.
func BankVersionGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldBankVersion, v))
}

// BankVersionLT applies the LT predicate on the "bank_version" field.
func BankVersionLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldBankVersion, v))
}

// BankVersionLTE applies the LTE predicate on the "bank_version" field.
func BankVersionLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldBankVersion, v))
}

// BankVersionContains applies the Contains predicate on the "bank_version" field.
func BankVersionContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldBankVersion, v))
}

// BankVersionHasPrefix applies the HasPrefix predicate on the "bank_version" field.
func BankVersionHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldBankVersion, v))
}

// BankVersionHasSuffix applies the HasSuffix predicate on the "bank_version" field.
func BankVersionHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldBankVersion, v))
}

// BankVersionEqualFold applies the EqualFold predicate on the "bank_version" field.
func BankVersionEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldBankVersion, v))
}

// BankVersionContainsFold applies the ContainsFold predicate on the "bank_version" field.
func BankVersionContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldBankVersion, v))
}

// ScoringVersionEQ applies the EQ predicate on the "scoring_version" field.
func ScoringVersionEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldScoringVersion, v))
}

// ScoringVersionNEQ applies the NEQ predicate on the "scoring_version" field.
func ScoringVersionNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldScoringVersion, v))
}

// ScoringVersionIn applies the In predicate on the "scoring_version" field.
func ScoringVersionIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldScoringVersion, vs...))
}

// ScoringVersionNotIn applies the NotIn predicate on the "scoring_version" field.
func ScoringVersionNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldScoringVersion, vs...))
}

// ScoringVersionGT applies the GT predicate on the "scoring_version" field.
func ScoringVersionGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldScoringVersion, v))
}

// ScoringVersionGTE applies the GTE predicate on the "scoring_version" field.
func ScoringVersionGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldScoringVersion, v))
}

// ScoringVersionLT applies the LT predicate on the "scoring_version" field.
func ScoringVersionLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldScoringVersion, v))
}

// ScoringVersionLTE applies the LTE predicate on the "scoring_version" field.
func ScoringVersionLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldScoringVersion, v))
}

// ScoringVersionContains applies the Contains predicate on the "scoring_version" field.
func ScoringVersionContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldScoringVersion, v))
}

// ScoringVersionHasPrefix applies the HasPrefix predicate on the "scoring_version" field.
func ScoringVersionHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldScoringVersion, v))
}

// ScoringVersionHasSuffix applies the HasSuffix predicate on the "scoring_version" field.
func ScoringVersionHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldScoringVersion, v))
}

// ScoringVersionEqualFold applies the EqualFold predicate on the "scoring_version" field.
func ScoringVersionEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldScoringVersion, v))
}

// ScoringVersionContainsFold applies the ContainsFold predicate on the "scoring_version" field.
func ScoringVersionContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldScoringVersion, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldPromptVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Result) predicate.Result {
	return predicate.Result(sql.NotPredicates(p))
}
