// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dishalabs/disha/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStudentID, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldGrade, v))
}

// Locale applies equality check predicate on the "locale" field. It's identical to LocaleEQ.
func Locale(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLocale, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// MaxQuestions applies equality check predicate on the "max_questions" field. It's identical to MaxQuestionsEQ.
func MaxQuestions(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMaxQuestions, v))
}

// QuestionIndex applies equality check predicate on the "question_index" field. It's identical to QuestionIndexEQ.
func QuestionIndex(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuestionIndex, v))
}

// TestVersion applies equality check predicate on the "test_version" field. It's identical to TestVersionEQ.
func TestVersion(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTestVersion, v))
}

// BankVersion applies equality check predicate on the "bank_version" field. It's identical to BankVersionEQ.
func BankVersion(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBankVersion, v))
}

// ScoringVersion applies equality check predicate on the "scoring_version" field. It's identical to ScoringVersionEQ.
func ScoringVersion(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldScoringVersion, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPromptVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSessionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldStudentID, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldGrade, v))
}

// LocaleEQ applies the EQ predicate on the "locale" field.
func LocaleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLocale, v))
}

// LocaleNEQ applies the NEQ predicate on the "locale" field.
func LocaleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLocale, v))
}

// LocaleIn applies the In predicate on the "locale" field.
func LocaleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLocale, vs...))
}

// LocaleNotIn applies the NotIn predicate on the "locale" field.
func LocaleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLocale, vs...))
}

// LocaleGT applies the GT predicate on the "locale" field.
func LocaleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLocale, v))
}

// LocaleGTE applies the GTE predicate on the "locale" field.
func LocaleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLocale, v))
}

// LocaleLT applies the LT predicate on the "locale" field.
func LocaleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLocale, v))
}

// LocaleLTE applies the LTE predicate on the "locale" field.
func LocaleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLocale, v))
}

// LocaleContains applies the Contains predicate on the "locale" field.
func LocaleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldLocale, v))
}

// LocaleHasPrefix applies the HasPrefix predicate on the "locale" field.
func LocaleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldLocale, v))
}

// LocaleHasSuffix applies the HasSuffix predicate on the "locale" field.
func LocaleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldLocale, v))
}

// LocaleEqualFold applies the EqualFold predicate on the "locale" field.
func LocaleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldLocale, v))
}

// LocaleContainsFold applies the ContainsFold predicate on the "locale" field.
func LocaleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldLocale, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCompletedAt))
}

// MaxQuestionsEQ applies the EQ predicate on the "max_questions" field.
func MaxQuestionsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMaxQuestions, v))
}

// MaxQuestionsNEQ applies the NEQ predicate on the "max_questions" field.
func MaxQuestionsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMaxQuestions, v))
}

// MaxQuestionsIn applies the In predicate on the "max_questions" field.
func MaxQuestionsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMaxQuestions, vs...))
}

// MaxQuestionsNotIn applies the NotIn predicate on the "max_questions" field.
func MaxQuestionsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMaxQuestions, vs...))
}

// MaxQuestionsGT applies the GT predicate on the "max_questions" field.
func MaxQuestionsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMaxQuestions, v))
}

// MaxQuestionsGTE applies the GTE predicate on the "max_questions" field.
func MaxQuestionsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMaxQuestions, v))
}

// MaxQuestionsLT applies the LT predicate on the "max_questions" field.
func MaxQuestionsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMaxQuestions, v))
}

// MaxQuestionsLTE applies the LTE predicate on the "max_questions" field.
func MaxQuestionsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMaxQuestions, v))
}

// QuestionIndexEQ applies the EQ predicate on the "question_index" field.
func QuestionIndexEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuestionIndex, v))
}

// QuestionIndexNEQ applies the NEQ predicate on the "question_index" field.
func QuestionIndexNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldQuestionIndex, v))
}

// QuestionIndexIn applies the In predicate on the "question_index" field.
func QuestionIndexIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldQuestionIndex, vs...))
}

// QuestionIndexNotIn applies the NotIn predicate on the "question_index" field.
func QuestionIndexNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldQuestionIndex, vs...))
}

// QuestionIndexGT applies the GT predicate on the "question_index" field.
func QuestionIndexGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldQuestionIndex, v))
}

// QuestionIndexGTE applies the GTE predicate on the "question_index" field.
func QuestionIndexGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldQuestionIndex, v))
}

// QuestionIndexLT applies the LT predicate on the "question_index" field.
func QuestionIndexLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldQuestionIndex, v))
}

// QuestionIndexLTE applies the LTE predicate on the "question_index" field.
func QuestionIndexLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldQuestionIndex, v))
}

// TestVersionEQ applies the EQ predicate on the "test_version" field.
func TestVersionEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTestVersion, v))
}

// TestVersionNEQ applies the NEQ predicate on the "test_version" field.
func TestVersionNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTestVersion, v))
}

// TestVersionIn applies the In predicate on the "test_version" field.
func TestVersionIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTestVersion, vs...))
}

// TestVersionNotIn applies the NotIn predicate on the "test_version" field.
func TestVersionNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTestVersion, vs...))
}

// TestVersionGT applies the GT predicate on the "test_version" field.
func TestVersionGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTestVersion, v))
}

// TestVersionGTE applies the GTE predicate on the "test_version" field.
func TestVersionGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTestVersion, v))
}

// TestVersionLT applies the LT predicate on the "test_version" field.
func TestVersionLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTestVersion, v))
}

// TestVersionLTE applies the LTE predicate on the "test_version" field.
func TestVersionLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTestVersion, v))
}

// TestVersionContains applies the Contains predicate on the "test_version" field.
func TestVersionContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTestVersion, v))
}

// TestVersionHasPrefix applies the HasPrefix predicate on the "test_version" field.
func TestVersionHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTestVersion, v))
}

// TestVersionHasSuffix applies the HasSuffix predicate on the "test_version" field.
func TestVersionHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTestVersion, v))
}

// TestVersionEqualFold applies the EqualFold predicate on the "test_version" field.
func TestVersionEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTestVersion, v))
}

// TestVersionContainsFold applies the ContainsFold predicate on the "test_version" field.
func TestVersionContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTestVersion, v))
}

// BankVersionEQ applies the EQ predicate on the "bank_version" field.
func BankVersionEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBankVersion, v))
}

// BankVersionNEQ applies the NEQ predicate on the "bank_version" field.
func BankVersionNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldBankVersion, v))
}

// BankVersionIn applies the In predicate on the "bank_version" field.
func BankVersionIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldBankVersion, vs...))
}

// BankVersionNotIn applies the NotIn predicate on the "bank_version" field.
func BankVersionNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldBankVersion, vs...))
}

// BankVersionGT applies the GT predicate on the "bank_version" field.
func BankVersionGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldBankVersion, v))
}

// BankVersionGTE applies the GTE predicate on the "bank_version" field.
func BankVersionGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldBankVersion, v))
}

// BankVersionLT applies the LT predicate on the "bank_version" field.
func BankVersionLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldBankVersion, v))
}

// BankVersionLTE applies the LTE predicate on the "bank_version" field.
func BankVersionLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldBankVersion, v))
}

// BankVersionContains applies the Contains predicate on the "bank_version" field.
func BankVersionContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldBankVersion, v))
}

// BankVersionHasPrefix applies the HasPrefix predicate on the "bank_version" field.
func BankVersionHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldBankVersion, v))
}

// BankVersionHasSuffix applies the HasSuffix predicate on the "bank_version" field.
func BankVersionHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldBankVersion, v))
}

// BankVersionEqualFold applies the EqualFold predicate on the "bank_version" field.
func BankVersionEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldBankVersion, v))
}

// BankVersionContainsFold applies the ContainsFold predicate on the "bank_version" field.
func BankVersionContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldBankVersion, v))
}

// ScoringVersionEQ applies the EQ predicate on the "scoring_version" field.
func ScoringVersionEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldScoringVersion, v))
}

// ScoringVersionNEQ applies the NEQ predicate on the "scoring_version" field.
func ScoringVersionNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldScoringVersion, v))
}

// ScoringVersionIn applies the In predicate on the "scoring_version" field.
func ScoringVersionIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldScoringVersion, vs...))
}

// ScoringVersionNotIn applies the NotIn predicate on the "scoring_version" field.
func ScoringVersionNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldScoringVersion, vs...))
}

// ScoringVersionGT applies the GT predicate on the "scoring_version" field.
func ScoringVersionGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldScoringVersion, v))
}

// ScoringVersionGTE applies the GTE predicate on the "scoring_version" field.
func ScoringVersionGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldScoringVersion, v))
}

// ScoringVersionLT applies the LT predicate on the "scoring_version" field.
func ScoringVersionLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldScoringVersion, v))
}

// ScoringVersionLTE applies the LTE predicate on the "scoring_version" field.
func ScoringVersionLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldScoringVersion, v))
}

// ScoringVersionContains applies the Contains predicate on the "scoring_version" field.
func ScoringVersionContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldScoringVersion, v))
}

// ScoringVersionHasPrefix applies the HasPrefix predicate on the "scoring_version" field.
func ScoringVersionHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldScoringVersion, v))
}

// ScoringVersionHasSuffix applies the HasSuffix predicate on the "scoring_version" field.
func ScoringVersionHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldScoringVersion, v))
}

// ScoringVersionEqualFold applies the EqualFold predicate on the "scoring_version" field.
func ScoringVersionEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldScoringVersion, v))
}

// ScoringVersionContainsFold applies the ContainsFold predicate on the "scoring_version" field.
func ScoringVersionContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldScoringVersion, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPromptVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
