package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer is an immutable record of one response within a session.
// The unique (session_id, question_id) index is the duplicate-submit
// guard: a second insert for the same question fails at the database
// level regardless of interleaving.
type Answer struct {
	ent.Schema
}

func (Answer) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.Float("raw_value").
			Immutable().
			Comment("Raw response value on the question's scale"),
		field.String("option_id").
			Default("").
			Immutable().
			Comment("Chosen option id; options may override domain tags"),
		field.String("value_label").
			Default("").
			Immutable().
			Comment("Chosen option label, for scenario questions"),
		field.Text("free_text").
			Default("").
			Immutable().
			Comment("Free-form response, for open questions"),
		field.Text("prompt_shown").
			Default("").
			Immutable().
			Comment("Exact prompt text the student saw"),
		field.Int64("time_spent_ms").
			Default(0).
			Immutable(),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id").Unique(),
		index.Fields("session_id"),
	}
}
