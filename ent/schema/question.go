package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one item of the assessment bank. The bank is versioned;
// a (bank_version, question_id) pair identifies a question immutably.
type Question struct {
	ent.Schema
}

// OptionSpec is the serialized form of a scenario answer option.
type OptionSpec struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Value   int      `json:"value"`
	Domains []string `json:"domains,omitempty"`
}

func (Question) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Stable business identifier, e.g. r-01 or sc-02"),
		field.String("bank_version").
			NotEmpty().
			Comment("Bank release this row belongs to"),
		field.Enum("type").
			Values("likert", "scenario", "open").
			Comment("Item format"),
		field.Text("prompt").
			NotEmpty().
			Comment("Canonical prompt text"),
		field.JSON("domains", []string{}).
			Comment("RIASEC domain codes this item evidences"),
		field.Bool("reverse_scored").
			Default(false),
		field.Float("weight").
			Default(1.0).
			Comment("Contribution weight toward each tagged domain"),
		field.Bool("active").
			Default(true).
			Comment("Inactive items are never served"),
		field.JSON("grade_bands", []string{}).
			Optional().
			Comment("Grade bands the item applies to; empty means all"),
		field.Int("scale_min").
			Optional().
			Comment("Explicit response scale lower bound"),
		field.Int("scale_max").
			Optional().
			Comment("Explicit response scale upper bound"),
		field.JSON("options", []OptionSpec{}).
			Optional().
			Comment("Scenario answer options"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bank_version", "question_id").Unique(),
		index.Fields("bank_version", "active"),
	}
}
