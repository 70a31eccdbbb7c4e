// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// BankVersion applies equality check predicate on the "bank_version" field. It's identical to BankVersionEQ.
func BankVersion(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBankVersion, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// ReverseScored applies equality check predicate on the "reverse_scored" field. It's identical to ReverseScoredEQ.
func ReverseScored(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldReverseScored, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldWeight, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldActive, v))
}

// ScaleMin applies equality check predicate on the "scale_min" field. It's identical to ScaleMinEQ.
func ScaleMin(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldScaleMin, v))
}

// ScaleMax applies equality check predicate on the "scale_max" field. It's identical to ScaleMaxEQ.
func ScaleMax(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldScaleMax, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUpdatedAt, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionID, v))
}

// BankVersionEQ applies the EQ predicate on the "bank_version" field.
func BankVersionEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBankVersion, v))
}

// BankVersionNEQ applies the NEQ predicate on the "bank_version" field.
func BankVersionNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldBankVersion, v))
}

// BankVersionIn applies the In predicate on the "bank_version" field.
func BankVersionIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldBankVersion, vs...))
}

// BankVersionNotIn applies the NotIn predicate on the "bank_version" field.
func BankVersionNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldBankVersion, vs...))
}

// BankVersionGT applies the GT predicate on the "bank_version" field.
func BankVersionGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldBankVersion, v))
}

// BankVersionGTE applies the GTE predicate on the "bank_version" field.
func BankVersionGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldBankVersion, v))
}

// BankVersionLT applies the LT predicate on the "bank_version" field.
func BankVersionLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldBankVersion, v))
}

// BankVersionLTE applies the LTE predicate on the "bank_version" field.
func BankVersionLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldBankVersion, v))
}

// BankVersionContains applies the Contains predicate on the "bank_version" field.
func BankVersionContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldBankVersion, v))
}

// BankVersionHasPrefix applies the HasPrefix predicate on the "bank_version" field.
func BankVersionHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldBankVersion, v))
}

// BankVersionHasSuffix applies the HasSuffix predicate on the "bank_version" field.
func BankVersionHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldBankVersion, v))
}

// BankVersionEqualFold applies the EqualFold predicate on the "bank_version" field.
func BankVersionEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldBankVersion, v))
}

// BankVersionContainsFold applies the ContainsFold predicate on the "bank_version" field.
func BankVersionContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldBankVersion, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldType, vs...))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPrompt, v))
}

// ReverseScoredEQ applies the EQ predicate on the "reverse_scored" field.
func ReverseScoredEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldReverseScored, v))
}

// ReverseScoredNEQ applies the NEQ predicate on the "reverse_scored" field.
func ReverseScoredNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldReverseScored, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldWeight, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldActive, v))
}

// GradeBandsIsNil applies the IsNil predicate on the "grade_bands" field.
func GradeBandsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldGradeBands))
}

// GradeBandsNotNil applies the NotNil predicate on the "grade_bands" field.
func GradeBandsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldGradeBands))
}

// ScaleMinEQ applies the EQ predicate on the "scale_min" field.
func ScaleMinEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldScaleMin, v))
}

// ScaleMinNEQ applies the NEQ predicate on the "scale_min" field.
func ScaleMinNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldScaleMin, v))
}

// ScaleMinIn applies the In predicate on the "scale_min" field.
func ScaleMinIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldScaleMin, vs...))
}

// ScaleMinNotIn applies the NotIn predicate on the "scale_min" field.
func ScaleMinNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldScaleMin, vs...))
}

// ScaleMinGT applies the GT predicate on the "scale_min" field.
func ScaleMinGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldScaleMin, v))
}

// ScaleMinGTE applies the GTE predicate on the "scale_min" field.
func ScaleMinGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldScaleMin, v))
}

// ScaleMinLT applies the LT predicate on the "scale_min" field.
func ScaleMinLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldScaleMin, v))
}

// ScaleMinLTE applies the LTE predicate on the "scale_min" field.
func ScaleMinLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldScaleMin, v))
}

// ScaleMinIsNil applies the IsNil predicate on the "scale_min" field.
func ScaleMinIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldScaleMin))
}

// ScaleMinNotNil applies the NotNil predicate on the "scale_min" field.
func ScaleMinNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldScaleMin))
}

// ScaleMaxEQ applies the EQ predicate on the "scale_max" field.
func ScaleMaxEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldScaleMax, v))
}

// ScaleMaxNEQ applies the NEQ predicate on the "scale_max" field.
func ScaleMaxNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldScaleMax, v))
}

// ScaleMaxIn applies the In predicate on the "scale_max" field.
func ScaleMaxIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldScaleMax, vs...))
}

// ScaleMaxNotIn applies the NotIn predicate on the "scale_max" field.
func ScaleMaxNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldScaleMax, vs...))
}

// ScaleMaxGT applies the GT predicate on the "scale_max" field.
func ScaleMaxGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldScaleMax, v))
}

// ScaleMaxGTE applies the GTE predicate on the "scale_max" field.
func ScaleMaxGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldScaleMax, v))
}

// ScaleMaxLT applies the LT predicate on the "scale_max" field.
func ScaleMaxLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldScaleMax, v))
}

// ScaleMaxLTE applies the LTE predicate on the "scale_max" field.
func ScaleMaxLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldScaleMax, v))
}

// ScaleMaxIsNil applies the IsNil predicate on the "scale_max" field.
func ScaleMaxIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldScaleMax))
}

// ScaleMaxNotNil applies the NotNil predicate on the "scale_max" field.
func ScaleMaxNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldScaleMax))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOptions))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
