package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Result is the finalized outcome of a completed session. The unique
// session_id index makes result generation idempotent: only the first
// insert wins, later attempts reload the stored row.
type Result struct {
	ent.Schema
}

// DomainScoreSpec is the serialized per-domain score breakdown.
type DomainScoreSpec struct {
	RawSum    float64 `json:"raw_sum"`
	RawWeight float64 `json:"raw_weight"`
	Score     float64 `json:"score"`
}

// CourseSpec is a serialized course recommendation.
type CourseSpec struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Stream string `json:"stream"`
}

func (Result) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Result) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("grade").
			NotEmpty().
			Immutable(),
		field.JSON("domain_scores", map[string]DomainScoreSpec{}).
			Comment("Per-domain score breakdown keyed by RIASEC code"),
		field.JSON("top_domains", []string{}).
			Comment("One or two leading domain codes, ranked"),
		field.Float("top_margin").
			Default(0),
		field.String("confidence_level").
			NotEmpty().
			Comment("HIGH, MEDIUM or LOW"),
		field.Float("confidence_score").
			Default(0),
		field.Int("scored_answers").
			Default(0),
		field.String("stream").
			NotEmpty().
			Comment("Suggested academic stream"),
		field.JSON("career_fields", []string{}).
			Optional(),
		field.Text("guidance").
			Default(""),
		field.JSON("courses", []CourseSpec{}).
			Optional().
			Comment("Catalog recommendations frozen at completion"),
		field.Text("narrative").
			Default("").
			Comment("Report prose; regenerable"),
		field.JSON("answer_meanings", map[string]string{}).
			Optional().
			Comment("Per-answer explanation text keyed by question id; regenerable"),
		field.JSON("domain_narratives", map[string]string{}).
			Optional().
			Comment("Per-domain explanation text keyed by RIASEC code; regenerable"),
		field.String("test_version").
			NotEmpty().
			Immutable(),
		field.String("bank_version").
			NotEmpty().
			Immutable(),
		field.String("scoring_version").
			NotEmpty().
			Immutable(),
		field.String("prompt_version").
			NotEmpty().
			Immutable(),
	}
}

func (Result) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("created_at"),
	}
}
