// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionAsked is the predicate function for questionasked builders.
type QuestionAsked func(*sql.Selector)

// Result is the predicate function for result builders.
type Result func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
