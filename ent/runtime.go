// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dishalabs/disha/ent/answer"
	"github.com/dishalabs/disha/ent/llmrequestevent"
	"github.com/dishalabs/disha/ent/question"
	"github.com/dishalabs/disha/ent/questionasked"
	"github.com/dishalabs/disha/ent/result"
	"github.com/dishalabs/disha/ent/schema"
	"github.com/dishalabs/disha/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerMixin := schema.Answer{}.Mixin()
	answerMixinFields0 := answerMixin[0].Fields()
	_ = answerMixinFields0
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerMixinFields0[0].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	// answerDescUpdatedAt is the schema descriptor for updated_at field.
	answerDescUpdatedAt := answerMixinFields0[1].Descriptor()
	// answer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	answer.DefaultUpdatedAt = answerDescUpdatedAt.Default.(func() time.Time)
	// answer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	answer.UpdateDefaultUpdatedAt = answerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// answerDescSessionID is the schema descriptor for session_id field.
	answerDescSessionID := answerFields[0].Descriptor()
	// answer.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answer.SessionIDValidator = answerDescSessionID.Validators[0].(func(string) error)
	// answerDescQuestionID is the schema descriptor for question_id field.
	answerDescQuestionID := answerFields[1].Descriptor()
	// answer.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answer.QuestionIDValidator = answerDescQuestionID.Validators[0].(func(string) error)
	// answerDescOptionID is the schema descriptor for option_id field.
	answerDescOptionID := answerFields[3].Descriptor()
	// answer.DefaultOptionID holds the default value on creation for the option_id field.
	answer.DefaultOptionID = answerDescOptionID.Default.(string)
	// answerDescValueLabel is the schema descriptor for value_label field.
	answerDescValueLabel := answerFields[4].Descriptor()
	// answer.DefaultValueLabel holds the default value on creation for the value_label field.
	answer.DefaultValueLabel = answerDescValueLabel.Default.(string)
	// answerDescFreeText is the schema descriptor for free_text field.
	answerDescFreeText := answerFields[5].Descriptor()
	// answer.DefaultFreeText holds the default value on creation for the free_text field.
	answer.DefaultFreeText = answerDescFreeText.Default.(string)
	// answerDescPromptShown is the schema descriptor for prompt_shown field.
	answerDescPromptShown := answerFields[6].Descriptor()
	// answer.DefaultPromptShown holds the default value on creation for the prompt_shown field.
	answer.DefaultPromptShown = answerDescPromptShown.Default.(string)
	// answerDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	answerDescTimeSpentMs := answerFields[7].Descriptor()
	// answer.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	answer.DefaultTimeSpentMs = answerDescTimeSpentMs.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	// llmrequesteventDescUpdatedAt is the schema descriptor for updated_at field.
	llmrequesteventDescUpdatedAt := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	llmrequestevent.DefaultUpdatedAt = llmrequesteventDescUpdatedAt.Default.(func() time.Time)
	// llmrequestevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	llmrequestevent.UpdateDefaultUpdatedAt = llmrequesteventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionMixin := schema.Question{}.Mixin()
	questionMixinFields0 := questionMixin[0].Fields()
	_ = questionMixinFields0
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionMixinFields0[0].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionMixinFields0[1].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescQuestionID is the schema descriptor for question_id field.
	questionDescQuestionID := questionFields[0].Descriptor()
	// question.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	question.QuestionIDValidator = questionDescQuestionID.Validators[0].(func(string) error)
	// questionDescBankVersion is the schema descriptor for bank_version field.
	questionDescBankVersion := questionFields[1].Descriptor()
	// question.BankVersionValidator is a validator for the "bank_version" field. It is called by the builders before save.
	question.BankVersionValidator = questionDescBankVersion.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[3].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescReverseScored is the schema descriptor for reverse_scored field.
	questionDescReverseScored := questionFields[5].Descriptor()
	// question.DefaultReverseScored holds the default value on creation for the reverse_scored field.
	question.DefaultReverseScored = questionDescReverseScored.Default.(bool)
	// questionDescWeight is the schema descriptor for weight field.
	questionDescWeight := questionFields[6].Descriptor()
	// question.DefaultWeight holds the default value on creation for the weight field.
	question.DefaultWeight = questionDescWeight.Default.(float64)
	// questionDescActive is the schema descriptor for active field.
	questionDescActive := questionFields[7].Descriptor()
	// question.DefaultActive holds the default value on creation for the active field.
	question.DefaultActive = questionDescActive.Default.(bool)
	questionaskedMixin := schema.QuestionAsked{}.Mixin()
	questionaskedMixinFields0 := questionaskedMixin[0].Fields()
	_ = questionaskedMixinFields0
	questionaskedFields := schema.QuestionAsked{}.Fields()
	_ = questionaskedFields
	// questionaskedDescCreatedAt is the schema descriptor for created_at field.
	questionaskedDescCreatedAt := questionaskedMixinFields0[0].Descriptor()
	// questionasked.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionasked.DefaultCreatedAt = questionaskedDescCreatedAt.Default.(func() time.Time)
	// questionaskedDescUpdatedAt is the schema descriptor for updated_at field.
	questionaskedDescUpdatedAt := questionaskedMixinFields0[1].Descriptor()
	// questionasked.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	questionasked.DefaultUpdatedAt = questionaskedDescUpdatedAt.Default.(func() time.Time)
	// questionasked.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	questionasked.UpdateDefaultUpdatedAt = questionaskedDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionaskedDescSessionID is the schema descriptor for session_id field.
	questionaskedDescSessionID := questionaskedFields[0].Descriptor()
	// questionasked.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	questionasked.SessionIDValidator = questionaskedDescSessionID.Validators[0].(func(string) error)
	// questionaskedDescQuestionID is the schema descriptor for question_id field.
	questionaskedDescQuestionID := questionaskedFields[1].Descriptor()
	// questionasked.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionasked.QuestionIDValidator = questionaskedDescQuestionID.Validators[0].(func(string) error)
	// questionaskedDescPromptText is the schema descriptor for prompt_text field.
	questionaskedDescPromptText := questionaskedFields[4].Descriptor()
	// questionasked.PromptTextValidator is a validator for the "prompt_text" field. It is called by the builders before save.
	questionasked.PromptTextValidator = questionaskedDescPromptText.Validators[0].(func(string) error)
	resultMixin := schema.Result{}.Mixin()
	resultMixinFields0 := resultMixin[0].Fields()
	_ = resultMixinFields0
	resultFields := schema.Result{}.Fields()
	_ = resultFields
	// resultDescCreatedAt is the schema descriptor for created_at field.
	resultDescCreatedAt := resultMixinFields0[0].Descriptor()
	// result.DefaultCreatedAt holds the default value on creation for the created_at field.
	result.DefaultCreatedAt = resultDescCreatedAt.Default.(func() time.Time)
	// resultDescUpdatedAt is the schema descriptor for updated_at field.
	resultDescUpdatedAt := resultMixinFields0[1].Descriptor()
	// result.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	result.DefaultUpdatedAt = resultDescUpdatedAt.Default.(func() time.Time)
	// result.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	result.UpdateDefaultUpdatedAt = resultDescUpdatedAt.UpdateDefault.(func() time.Time)
	// resultDescSessionID is the schema descriptor for session_id field.
	resultDescSessionID := resultFields[0].Descriptor()
	// result.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	result.SessionIDValidator = resultDescSessionID.Validators[0].(func(string) error)
	// resultDescStudentID is the schema descriptor for student_id field.
	resultDescStudentID := resultFields[1].Descriptor()
	// result.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	result.StudentIDValidator = resultDescStudentID.Validators[0].(func(string) error)
	// resultDescGrade is the schema descriptor for grade field.
	resultDescGrade := resultFields[2].Descriptor()
	// result.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	result.GradeValidator = resultDescGrade.Validators[0].(func(string) error)
	// resultDescTopMargin is the schema descriptor for top_margin field.
	resultDescTopMargin := resultFields[5].Descriptor()
	// result.DefaultTopMargin holds the default value on creation for the top_margin field.
	result.DefaultTopMargin = resultDescTopMargin.Default.(float64)
	// resultDescConfidenceLevel is the schema descriptor for confidence_level field.
	resultDescConfidenceLevel := resultFields[6].Descriptor()
	// result.ConfidenceLevelValidator is a validator for the "confidence_level" field. It is called by the builders before save.
	result.ConfidenceLevelValidator = resultDescConfidenceLevel.Validators[0].(func(string) error)
	// resultDescConfidenceScore is the schema descriptor for confidence_score field.
	resultDescConfidenceScore := resultFields[7].Descriptor()
	// result.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	result.DefaultConfidenceScore = resultDescConfidenceScore.Default.(float64)
	// resultDescScoredAnswers is the schema descriptor for scored_answers field.
	resultDescScoredAnswers := resultFields[8].Descriptor()
	// result.DefaultScoredAnswers holds the default value on creation for the scored_answers field.
	result.DefaultScoredAnswers = resultDescScoredAnswers.Default.(int)
	// resultDescStream is the schema descriptor for stream field.
	resultDescStream := resultFields[9].Descriptor()
	// result.StreamValidator is a validator for the "stream" field. It is called by the builders before save.
	result.StreamValidator = resultDescStream.Validators[0].(func(string) error)
	// resultDescGuidance is the schema descriptor for guidance field.
	resultDescGuidance := resultFields[11].Descriptor()
	// result.DefaultGuidance holds the default value on creation for the guidance field.
	result.DefaultGuidance = resultDescGuidance.Default.(string)
	// resultDescNarrative is the schema descriptor for narrative field.
	resultDescNarrative := resultFields[13].Descriptor()
	// result.DefaultNarrative holds the default value on creation for the narrative field.
	result.DefaultNarrative = resultDescNarrative.Default.(string)
	// resultDescTestVersion is the schema descriptor for test_version field.
	resultDescTestVersion := resultFields[16].Descriptor()
	// result.TestVersionValidator is a validator for the "test_version" field. It is called by the builders before save.
	result.TestVersionValidator = resultDescTestVersion.Validators[0].(func(string) error)
	// resultDescBankVersion is the schema descriptor for bank_version field.
	resultDescBankVersion := resultFields[17].Descriptor()
	// result.BankVersionValidator is a validator for the "bank_version" field. It is called by the builders before save.
	result.BankVersionValidator = resultDescBankVersion.Validators[0].(func(string) error)
	// resultDescScoringVersion is the schema descriptor for scoring_version field.
	resultDescScoringVersion := resultFields[18].Descriptor()
	// result.ScoringVersionValidator is a validator for the "scoring_version" field. It is called by the builders before save.
	result.ScoringVersionValidator = resultDescScoringVersion.Validators[0].(func(string) error)
	// resultDescPromptVersion is the schema descriptor for prompt_version field.
	resultDescPromptVersion := resultFields[19].Descriptor()
	// result.PromptVersionValidator is a validator for the "prompt_version" field. It is called by the builders before save.
	result.PromptVersionValidator = resultDescPromptVersion.Validators[0].(func(string) error)
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionMixinFields0[0].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionMixinFields0[1].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescSessionID is the schema descriptor for session_id field.
	sessionDescSessionID := sessionFields[0].Descriptor()
	// session.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	session.SessionIDValidator = sessionDescSessionID.Validators[0].(func(string) error)
	// sessionDescStudentID is the schema descriptor for student_id field.
	sessionDescStudentID := sessionFields[1].Descriptor()
	// session.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	session.StudentIDValidator = sessionDescStudentID.Validators[0].(func(string) error)
	// sessionDescGrade is the schema descriptor for grade field.
	sessionDescGrade := sessionFields[2].Descriptor()
	// session.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	session.GradeValidator = sessionDescGrade.Validators[0].(func(string) error)
	// sessionDescLocale is the schema descriptor for locale field.
	sessionDescLocale := sessionFields[3].Descriptor()
	// session.DefaultLocale holds the default value on creation for the locale field.
	session.DefaultLocale = sessionDescLocale.Default.(string)
	// sessionDescQuestionIndex is the schema descriptor for question_index field.
	sessionDescQuestionIndex := sessionFields[7].Descriptor()
	// session.DefaultQuestionIndex holds the default value on creation for the question_index field.
	session.DefaultQuestionIndex = sessionDescQuestionIndex.Default.(int)
	// sessionDescTestVersion is the schema descriptor for test_version field.
	sessionDescTestVersion := sessionFields[8].Descriptor()
	// session.TestVersionValidator is a validator for the "test_version" field. It is called by the builders before save.
	session.TestVersionValidator = sessionDescTestVersion.Validators[0].(func(string) error)
	// sessionDescBankVersion is the schema descriptor for bank_version field.
	sessionDescBankVersion := sessionFields[9].Descriptor()
	// session.BankVersionValidator is a validator for the "bank_version" field. It is called by the builders before save.
	session.BankVersionValidator = sessionDescBankVersion.Validators[0].(func(string) error)
	// sessionDescScoringVersion is the schema descriptor for scoring_version field.
	sessionDescScoringVersion := sessionFields[10].Descriptor()
	// session.ScoringVersionValidator is a validator for the "scoring_version" field. It is called by the builders before save.
	session.ScoringVersionValidator = sessionDescScoringVersion.Validators[0].(func(string) error)
	// sessionDescPromptVersion is the schema descriptor for prompt_version field.
	sessionDescPromptVersion := sessionFields[11].Descriptor()
	// session.PromptVersionValidator is a validator for the "prompt_version" field. It is called by the builders before save.
	session.PromptVersionValidator = sessionDescPromptVersion.Validators[0].(func(string) error)
}
