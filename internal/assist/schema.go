package assist

import "github.com/dishalabs/disha/internal/llm"

// ChoiceSchema defines the JSON schema for next-question choices.
var ChoiceSchema = &llm.Schema{
	Name:        "question-choice",
	Description: "The id of the single best question to ask next",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_id": map[string]any{
				"type":        "string",
				"description": "Must be one of the candidate question ids, verbatim",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "One sentence on why this question best separates the current top interest areas",
			},
		},
		"required":             []any{"question_id", "reason"},
		"additionalProperties": false,
	},
}

// PersonalizeSchema defines the JSON schema for prompt personalization.
var PersonalizeSchema = &llm.Schema{
	Name:        "personalized-prompt",
	Description: "A grade-appropriate rewrite of an assessment question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The rewritten question. Same meaning, same answer scale, friendlier wording.",
			},
		},
		"required":             []any{"prompt"},
		"additionalProperties": false,
	},
}

// ReportSchema defines the JSON schema for the narrative report.
var ReportSchema = &llm.Schema{
	Name:        "narrative-report",
	Description: "A short narrative career-interest report for a student",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"report": map[string]any{
				"type":        "string",
				"description": "2-4 encouraging paragraphs in plain text, addressed to the student directly",
			},
		},
		"required":             []any{"report"},
		"additionalProperties": false,
	},
}

// MeaningsSchema defines the JSON schema for per-answer explanations.
var MeaningsSchema = &llm.Schema{
	Name:        "answer-meanings",
	Description: "One short explanation per answered question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"meanings": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_id": map[string]any{
							"type": "string",
						},
						"meaning": map[string]any{
							"type":        "string",
							"description": "One sentence on what this answer revealed",
						},
					},
					"required":             []any{"question_id", "meaning"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"meanings"},
		"additionalProperties": false,
	},
}

// NarrativesSchema defines the JSON schema for per-domain explanations.
var NarrativesSchema = &llm.Schema{
	Name:        "domain-narratives",
	Description: "One short explanation per evidenced interest area",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"narratives": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"domain": map[string]any{
							"type":        "string",
							"enum":        []any{"R", "I", "A", "S", "E", "C"},
							"description": "The interest area code",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "1-2 sentences on what the student's score in this area means",
						},
					},
					"required":             []any{"domain", "text"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"narratives"},
		"additionalProperties": false,
	},
}
