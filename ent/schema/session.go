package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one assessment run for a student. A student has at most
// one IN_PROGRESS session at a time; completed and abandoned sessions
// are kept for history.
type Session struct {
	ent.Schema
}

func (Session) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("grade").
			NotEmpty().
			Immutable().
			Comment("Grade band, e.g. 9-10 or 11-12"),
		field.String("locale").
			Default("en").
			Immutable().
			Comment("Locale the session was taken in, e.g. en or hi"),
		field.Enum("status").
			Values("IN_PROGRESS", "COMPLETED", "ABANDONED").
			Default("IN_PROGRESS"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the session reached COMPLETED or ABANDONED"),
		field.Int("max_questions").
			Immutable().
			Comment("Question budget frozen at creation"),
		field.Int("question_index").
			Default(0).
			Comment("Number of questions served so far"),
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

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "status"),
		index.Fields("status"),
	}
}
