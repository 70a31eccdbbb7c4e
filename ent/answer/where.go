// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// RawValue applies equality check predicate on the "raw_value" field. It's identical to RawValueEQ.
func RawValue(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRawValue, v))
}

// OptionID applies equality check predicate on the "option_id" field. It's identical to OptionIDEQ.
func OptionID(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldOptionID, v))
}

// ValueLabel applies equality check predicate on the "value_label" field. It's identical to ValueLabelEQ.
func ValueLabel(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldValueLabel, v))
}

// FreeText applies equality check predicate on the "free_text" field. It's identical to FreeTextEQ.
func FreeText(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldFreeText, v))
}

// PromptShown applies equality check predicate on the "prompt_shown" field. It's identical to PromptShownEQ.
func PromptShown(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldPromptShown, v))
}

// TimeSpentMs applies equality check predicate on the "time_spent_ms" field. It's identical to TimeSpentMsEQ.
func TimeSpentMs(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSpentMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldQuestionID, v))
}

// RawValueEQ applies the EQ predicate on the "raw_value" field.
func RawValueEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRawValue, v))
}

// RawValueNEQ applies the NEQ predicate on the "raw_value" field.
func RawValueNEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldRawValue, v))
}

// RawValueIn applies the In predicate on the "raw_value" field.
func RawValueIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldRawValue, vs...))
}

// RawValueNotIn applies the NotIn predicate on the "raw_value" field.
func RawValueNotIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldRawValue, vs...))
}

// RawValueGT applies the GT predicate on the "raw_value" field.
func RawValueGT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldRawValue, v))
}

// RawValueGTE applies the GTE predicate on the "raw_value" field.
func RawValueGTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldRawValue, v))
}

// RawValueLT applies the LT predicate on the "raw_value" field.
func RawValueLT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldRawValue, v))
}

// RawValueLTE applies the LTE predicate on the "raw_value" field.
func RawValueLTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldRawValue, v))
}

// OptionIDEQ applies the EQ predicate on the "option_id" field.
func OptionIDEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldOptionID, v))
}

// OptionIDNEQ applies the NEQ predicate on the "option_id" field.
func OptionIDNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldOptionID, v))
}

// OptionIDIn applies the In predicate on the "option_id" field.
func OptionIDIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldOptionID, vs...))
}

// OptionIDNotIn applies the NotIn predicate on the "option_id" field.
func OptionIDNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldOptionID, vs...))
}

// OptionIDGT applies the GT predicate on the "option_id" field.
func OptionIDGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldOptionID, v))
}

// OptionIDGTE applies the GTE predicate on the "option_id" field.
func OptionIDGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldOptionID, v))
}

// OptionIDLT applies the LT predicate on the "option_id" field.
func OptionIDLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldOptionID, v))
}

// OptionIDLTE applies the LTE predicate on the "option_id" field.
func OptionIDLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldOptionID, v))
}

// OptionIDContains applies the Contains predicate on the "option_id" field.
func OptionIDContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldOptionID, v))
}

// OptionIDHasPrefix applies the HasPrefix predicate on the "option_id" field.
func OptionIDHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldOptionID, v))
}

// OptionIDHasSuffix applies the HasSuffix predicate on the "option_id" field.
func OptionIDHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldOptionID, v))
}

// OptionIDEqualFold applies the EqualFold predicate on the "option_id" field.
func OptionIDEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldOptionID, v))
}

// OptionIDContainsFold applies the ContainsFold predicate on the "option_id" field.
func OptionIDContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldOptionID, v))
}

// ValueLabelEQ applies the EQ predicate on the "value_label" field.
func ValueLabelEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldValueLabel, v))
}

// ValueLabelNEQ applies the NEQ predicate on the "value_label" field.
func ValueLabelNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldValueLabel, v))
}

// ValueLabelIn applies the In predicate on the "value_label" field.
func ValueLabelIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldValueLabel, vs...))
}

// ValueLabelNotIn applies the NotIn predicate on the "value_label" field.
func ValueLabelNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldValueLabel, vs...))
}

// ValueLabelGT applies the GT predicate on the "value_label" field.
func ValueLabelGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldValueLabel, v))
}

// ValueLabelGTE applies the GTE predicate on the "value_label" field.
func ValueLabelGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldValueLabel, v))
}

// ValueLabelLT applies the LT predicate on the "value_label" field.
func ValueLabelLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldValueLabel, v))
}

// ValueLabelLTE applies the LTE predicate on the "value_label" field.
func ValueLabelLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldValueLabel, v))
}

// ValueLabelContains applies the Contains predicate on the "value_label" field.
func ValueLabelContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldValueLabel, v))
}

// ValueLabelHasPrefix applies the HasPrefix predicate on the "value_label" field.
func ValueLabelHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldValueLabel, v))
}

// ValueLabelHasSuffix applies the HasSuffix predicate on the "value_label" field.
func ValueLabelHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldValueLabel, v))
}

// ValueLabelEqualFold applies the EqualFold predicate on the "value_label" field.
func ValueLabelEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldValueLabel, v))
}

// ValueLabelContainsFold applies the ContainsFold predicate on the "value_label" field.
func ValueLabelContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldValueLabel, v))
}

// FreeTextEQ applies the EQ predicate on the "free_text" field.
func FreeTextEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldFreeText, v))
}

// FreeTextNEQ applies the NEQ predicate on the "free_text" field.
func FreeTextNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldFreeText, v))
}

// FreeTextIn applies the In predicate on the "free_text" field.
func FreeTextIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldFreeText, vs...))
}

// FreeTextNotIn applies the NotIn predicate on the "free_text" field.
func FreeTextNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldFreeText, vs...))
}

// FreeTextGT applies the GT predicate on the "free_text" field.
func FreeTextGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldFreeText, v))
}

// FreeTextGTE applies the GTE predicate on the "free_text" field.
func FreeTextGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldFreeText, v))
}

// FreeTextLT applies the LT predicate on the "free_text" field.
func FreeTextLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldFreeText, v))
}

// FreeTextLTE applies the LTE predicate on the "free_text" field.
func FreeTextLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldFreeText, v))
}

// FreeTextContains applies the Contains predicate on the "free_text" field.
func FreeTextContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldFreeText, v))
}

// FreeTextHasPrefix applies the HasPrefix predicate on the "free_text" field.
func FreeTextHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldFreeText, v))
}

// FreeTextHasSuffix applies the HasSuffix predicate on the "free_text" field.
func FreeTextHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldFreeText, v))
}

// FreeTextEqualFold applies the EqualFold predicate on the "free_text" field.
func FreeTextEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldFreeText, v))
}

// FreeTextContainsFold applies the ContainsFold predicate on the "free_text" field.
func FreeTextContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldFreeText, v))
}

// PromptShownEQ applies the EQ predicate on the "prompt_shown" field.
func PromptShownEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldPromptShown, v))
}

// PromptShownNEQ applies the NEQ predicate on the "prompt_shown" field.
func PromptShownNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldPromptShown, v))
}

// PromptShownIn applies the In predicate on the "prompt_shown" field.
func PromptShownIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldPromptShown, vs...))
}

// PromptShownNotIn applies the NotIn predicate on the "prompt_shown" field.
func PromptShownNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldPromptShown, vs...))
}

// PromptShownGT applies the GT predicate on the "prompt_shown" field.
func PromptShownGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldPromptShown, v))
}

// PromptShownGTE applies the GTE predicate on the "prompt_shown" field.
func PromptShownGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldPromptShown, v))
}

// PromptShownLT applies the LT predicate on the "prompt_shown" field.
func PromptShownLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldPromptShown, v))
}

// PromptShownLTE applies the LTE predicate on the "prompt_shown" field.
func PromptShownLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldPromptShown, v))
}

// PromptShownContains applies the Contains predicate on the "prompt_shown" field.
func PromptShownContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldPromptShown, v))
}

// PromptShownHasPrefix applies the HasPrefix predicate on the "prompt_shown" field.
func PromptShownHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldPromptShown, v))
}

// PromptShownHasSuffix applies the HasSuffix predicate on the "prompt_shown" field.
func PromptShownHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldPromptShown, v))
}

// PromptShownEqualFold applies the EqualFold predicate on the "prompt_shown" field.
func PromptShownEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldPromptShown, v))
}

// PromptShownContainsFold applies the ContainsFold predicate on the "prompt_shown" field.
func PromptShownContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldPromptShown, v))
}

// TimeSpentMsEQ applies the EQ predicate on the "time_spent_ms" field.
func TimeSpentMsEQ(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsNEQ applies the NEQ predicate on the "time_spent_ms" field.
func TimeSpentMsNEQ(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsIn applies the In predicate on the "time_spent_ms" field.
func TimeSpentMsIn(vs ...int64) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsNotIn applies the NotIn predicate on the "time_spent_ms" field.
func TimeSpentMsNotIn(vs ...int64) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsGT applies the GT predicate on the "time_spent_ms" field.
func TimeSpentMsGT(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldTimeSpentMs, v))
}

// TimeSpentMsGTE applies the GTE predicate on the "time_spent_ms" field.
func TimeSpentMsGTE(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldTimeSpentMs, v))
}

// TimeSpentMsLT applies the LT predicate on the "time_spent_ms" field.
func TimeSpentMsLT(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldTimeSpentMs, v))
}

// TimeSpentMsLTE applies the LTE predicate on the "time_spent_ms" field.
func TimeSpentMsLTE(v int64) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldTimeSpentMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
