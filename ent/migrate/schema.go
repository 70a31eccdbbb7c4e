// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "raw_value", Type: field.TypeFloat64},
		{Name: "option_id", Type: field.TypeString, Default: ""},
		{Name: "value_label", Type: field.TypeString, Default: ""},
		{Name: "free_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "prompt_shown", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "time_spent_ms", Type: field.TypeInt64, Default: 0},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answer_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[3], AnswersColumns[4]},
			},
			{
				Name:    "answer_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "bank_version", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"likert", "scenario", "open"}},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "domains", Type: field.TypeJSON},
		{Name: "reverse_scored", Type: field.TypeBool, Default: false},
		{Name: "weight", Type: field.TypeFloat64, Default: 1},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "grade_bands", Type: field.TypeJSON, Nullable: true},
		{Name: "scale_min", Type: field.TypeInt, Nullable: true},
		{Name: "scale_max", Type: field.TypeInt, Nullable: true},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_bank_version_question_id",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[4], QuestionsColumns[3]},
			},
			{
				Name:    "question_bank_version_active",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[4], QuestionsColumns[10]},
			},
		},
	}
	// QuestionAskedsColumns holds the columns for the "question_askeds" table.
	QuestionAskedsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "prompt_variant", Type: field.TypeEnum, Enums: []string{"RAW", "PERSONALIZED"}, Default: "RAW"},
		{Name: "prompt_text", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
	}
	// QuestionAskedsTable holds the schema information for the "question_askeds" table.
	QuestionAskedsTable = &schema.Table{
		Name:       "question_askeds",
		Columns:    QuestionAskedsColumns,
		PrimaryKey: []*schema.Column{QuestionAskedsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionasked_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{QuestionAskedsColumns[3], QuestionAskedsColumns[4]},
			},
			{
				Name:    "questionasked_session_id_position",
				Unique:  true,
				Columns: []*schema.Column{QuestionAskedsColumns[3], QuestionAskedsColumns[5]},
			},
		},
	}
	// ResultsColumns holds the columns for the "results" table.
	ResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "domain_scores", Type: field.TypeJSON},
		{Name: "top_domains", Type: field.TypeJSON},
		{Name: "top_margin", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence_level", Type: field.TypeString},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "scored_answers", Type: field.TypeInt, Default: 0},
		{Name: "stream", Type: field.TypeString},
		{Name: "career_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "guidance", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "courses", Type: field.TypeJSON, Nullable: true},
		{Name: "narrative", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "answer_meanings", Type: field.TypeJSON, Nullable: true},
		{Name: "domain_narratives", Type: field.TypeJSON, Nullable: true},
		{Name: "test_version", Type: field.TypeString},
		{Name: "bank_version", Type: field.TypeString},
		{Name: "scoring_version", Type: field.TypeString},
		{Name: "prompt_version", Type: field.TypeString},
	}
	// ResultsTable holds the schema information for the "results" table.
	ResultsTable = &schema.Table{
		Name:       "results",
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "result_student_id",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[4]},
			},
			{
				Name:    "result_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "locale", Type: field.TypeString, Default: "en"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"IN_PROGRESS", "COMPLETED", "ABANDONED"}, Default: "IN_PROGRESS"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "max_questions", Type: field.TypeInt},
		{Name: "question_index", Type: field.TypeInt, Default: 0},
		{Name: "test_version", Type: field.TypeString},
		{Name: "bank_version", Type: field.TypeString},
		{Name: "scoring_version", Type: field.TypeString},
		{Name: "prompt_version", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_student_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4], SessionsColumns[7]},
			},
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		LlmRequestEventsTable,
		QuestionsTable,
		QuestionAskedsTable,
		ResultsTable,
		SessionsTable,
	}
)

func init() {
}
