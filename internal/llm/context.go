package llm

import "context"

type purposeKey struct{}

// Purposes attached to provider calls for logging and auditing.
const (
	PurposeChooseQuestion = "choose_question"
	PurposePersonalize    = "personalize_question"
	PurposeReport         = "report_narrative"
	PurposeMeanings       = "answer_meanings"
	PurposeNarratives     = "domain_narratives"
)

// WithPurpose tags a context with the reason for an upcoming call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom extracts the purpose tag, or "unknown" if none is set.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
