package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionAsked records each question served within a session, in
// order, together with the exact prompt variant that was shown.
type QuestionAsked struct {
	ent.Schema
}

func (QuestionAsked) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (QuestionAsked) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.Int("position").
			Immutable().
			Comment("1-based serve order within the session"),
		field.Enum("prompt_variant").
			Values("RAW", "PERSONALIZED").
			Default("RAW"),
		field.Text("prompt_text").
			NotEmpty().
			Immutable().
			Comment("Prompt as shown, after any personalization"),
		field.JSON("options", []OptionSpec{}).
			Optional().
			Immutable().
			Comment("Options as shown, in display order; empty for open-ended items"),
	}
}

func (QuestionAsked) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id").Unique(),
		index.Fields("session_id", "position").Unique(),
	}
}
