// Code generated by ent, DO NOT EDIT.

package questionasked

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldQuestionID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldPosition, v))
}

// PromptText applies equality check predicate on the "prompt_text" field. It's identical to PromptTextEQ.
func PromptText(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldPromptText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLTE(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldContainsFold(FieldQuestionID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLTE(FieldPosition, v))
}

// PromptVariantEQ applies the EQ predicate on the "prompt_variant" field.
func PromptVariantEQ(v PromptVariant) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldPromptVariant, v))
}

// PromptVariantNEQ applies the NEQ predicate on the "prompt_variant" field.
func PromptVariantNEQ(v PromptVariant) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNEQ(FieldPromptVariant, v))
}

// PromptVariantIn applies the In predicate on the "prompt_variant" field.
func PromptVariantIn(vs ...PromptVariant) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldIn(FieldPromptVariant, vs...))
}

// PromptVariantNotIn applies the NotIn predicate on the "prompt_variant" field.
func PromptVariantNotIn(vs ...PromptVariant) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNotIn(FieldPromptVariant, vs...))
}

// PromptTextEQ applies the EQ predicate on the "prompt_text" field.
func PromptTextEQ(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEQ(FieldPromptText, v))
}

// PromptTextNEQ applies the NEQ predicate on the "prompt_text" field.
func PromptTextNEQ(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNEQ(FieldPromptText, v))
}

// PromptTextIn applies the In predicate on the "prompt_text" field.
func PromptTextIn(vs ...string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldIn(FieldPromptText, vs...))
}

// PromptTextNotIn applies the NotIn predicate on the "prompt_text" field.
func PromptTextNotIn(vs ...string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNotIn(FieldPromptText, vs...))
}

// PromptTextGT applies the GT predicate on the "prompt_text" field.
func PromptTextGT(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGT(FieldPromptText, v))
}

// PromptTextGTE applies the GTE predicate on the "prompt_text" field.
func PromptTextGTE(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldGTE(FieldPromptText, v))
}

// PromptTextLT applies the LT predicate on the "prompt_text" field.
func PromptTextLT(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLT(FieldPromptText, v))
}

// PromptTextLTE applies the LTE predicate on the "prompt_text" field.
func PromptTextLTE(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldLTE(FieldPromptText, v))
}

// PromptTextContains applies the Contains predicate on the "prompt_text" field.
func PromptTextContains(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldContains(FieldPromptText, v))
}

// PromptTextHasPrefix applies the HasPrefix predicate on the "prompt_text" field.
func PromptTextHasPrefix(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldHasPrefix(FieldPromptText, v))
}

// PromptTextHasSuffix applies the HasSuffix predicate on the "prompt_text" field.
func PromptTextHasSuffix(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldHasSuffix(FieldPromptText, v))
}

// PromptTextEqualFold applies the EqualFold predicate on the "prompt_text" field.
func PromptTextEqualFold(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldEqualFold(FieldPromptText, v))
}

// PromptTextContainsFold applies the ContainsFold predicate on the "prompt_text" field.
func PromptTextContainsFold(v string) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldContainsFold(FieldPromptText, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.FieldNotNull(FieldOptions))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionAsked) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionAsked) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionAsked) predicate.QuestionAsked {
	return predicate.QuestionAsked(sql.NotPredicates(p))
}
