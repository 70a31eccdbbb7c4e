package bank

import "github.com/dishalabs/disha/internal/riasec"

// DefaultVersion is the bank version seeded into a fresh store.
const DefaultVersion = "2024.1"

// likertLabels are the standard five agreement points, value 1 to 5.
var likertLabels = []string{
	"Strongly disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly agree",
}

func likert(id string, domain riasec.Domain, prompt string, reverse bool, weight float64) Question {
	q := Question{
		ID:            id,
		BankVersion:   DefaultVersion,
		Type:          TypeLikert,
		Prompt:        prompt,
		Domains:       []riasec.Domain{domain},
		ReverseScored: reverse,
		Weight:        weight,
		Active:        true,
	}
	for i, label := range likertLabels {
		q.Options = append(q.Options, Option{
			ID:    optionID(id, i+1),
			Label: label,
			Value: i + 1,
		})
	}
	return q
}

func optionID(questionID string, n int) string {
	return questionID + "-o" + string(rune('0'+n))
}

// SeedQuestions returns the built-in catalog for DefaultVersion: four Likert
// items per domain (one of them reverse-scored for R, S, and C), two scenario
// items whose options carry per-option domain overrides, and two open-ended
// prompts that feed narrative text only.
func SeedQuestions() []Question {
	qs := []Question{
		likert("r-01", riasec.Realistic, "I enjoy repairing machines, tools, or gadgets with my hands.", false, 1.0),
		likert("r-02", riasec.Realistic, "I would rather build a working model than write a report about it.", false, 1.0),
		likert("r-03", riasec.Realistic, "Working outdoors on practical tasks appeals to me.", false, 1.0),
		likert("r-04", riasec.Realistic, "I avoid tasks that involve operating equipment or physical work.", true, 1.0),

		likert("i-01", riasec.Investigative, "I like figuring out why an experiment gave an unexpected result.", false, 1.0),
		likert("i-02", riasec.Investigative, "Solving logic puzzles or maths problems for fun sounds like me.", false, 1.0),
		likert("i-03", riasec.Investigative, "I read about scientific discoveries even when nobody asks me to.", false, 1.0),
		likert("i-04", riasec.Investigative, "I enjoy designing my own small investigations to test an idea.", false, 1.2),

		likert("a-01", riasec.Artistic, "I lose track of time when drawing, writing, or composing something.", false, 1.0),
		likert("a-02", riasec.Artistic, "I prefer open-ended assignments where I can express my own ideas.", false, 1.0),
		likert("a-03", riasec.Artistic, "Performing or presenting creative work in front of others excites me.", false, 1.0),
		likert("a-04", riasec.Artistic, "I notice design, colour, and style in everyday things around me.", false, 1.0),

		likert("s-01", riasec.Social, "Friends come to me when they need help understanding schoolwork.", false, 1.0),
		likert("s-02", riasec.Social, "I enjoy volunteering or organising help for people who need it.", false, 1.0),
		likert("s-03", riasec.Social, "Explaining something until the other person really gets it is satisfying.", false, 1.2),
		likert("s-04", riasec.Social, "I find it draining to spend my day working closely with other people.", true, 1.0),

		likert("e-01", riasec.Enterprising, "I like persuading others to support a plan or an idea.", false, 1.0),
		likert("e-02", riasec.Enterprising, "Leading a team project feels natural to me.", false, 1.0),
		likert("e-03", riasec.Enterprising, "Running my own small venture someday sounds exciting.", false, 1.0),
		likert("e-04", riasec.Enterprising, "I enjoy negotiating, debating, or pitching in front of a group.", false, 1.0),

		likert("c-01", riasec.Conventional, "I keep my notes, files, and schedules carefully organised.", false, 1.0),
		likert("c-02", riasec.Conventional, "Working with numbers, records, or spreadsheets suits me.", false, 1.0),
		likert("c-03", riasec.Conventional, "I like following a clear, well-defined procedure to finish a task.", false, 1.0),
		likert("c-04", riasec.Conventional, "Detailed checklists and precise instructions frustrate me.", true, 1.0),
	}

	qs = append(qs,
		Question{
			ID:          "sc-01",
			BankVersion: DefaultVersion,
			Type:        TypeScenario,
			Prompt:      "Your school gives every student a free Saturday workshop. Which one do you sign up for?",
			Domains:     []riasec.Domain{riasec.Realistic, riasec.Investigative, riasec.Artistic, riasec.Social},
			Weight:      1.5,
			Active:      true,
			ScaleMin:    1,
			ScaleMax:    5,
			Options: []Option{
				{ID: "sc-01-o1", Label: "Robotics: assemble and wire a line-following robot", Value: 5, Domains: []riasec.Domain{riasec.Realistic}},
				{ID: "sc-01-o2", Label: "Science lab: run experiments and analyse the data", Value: 5, Domains: []riasec.Domain{riasec.Investigative}},
				{ID: "sc-01-o3", Label: "Studio: sketching, animation, and design", Value: 5, Domains: []riasec.Domain{riasec.Artistic}},
				{ID: "sc-01-o4", Label: "Peer tutoring: coach younger students", Value: 5, Domains: []riasec.Domain{riasec.Social}},
			},
		},
		Question{
			ID:          "sc-02",
			BankVersion: DefaultVersion,
			Type:        TypeScenario,
			Prompt:      "Your class runs a stall at the school fair. Which job do you volunteer for?",
			Domains:     []riasec.Domain{riasec.Enterprising, riasec.Conventional, riasec.Social, riasec.Artistic},
			Weight:      1.5,
			Active:      true,
			ScaleMin:    1,
			ScaleMax:    5,
			Options: []Option{
				{ID: "sc-02-o1", Label: "Pitch to visitors and set the prices", Value: 5, Domains: []riasec.Domain{riasec.Enterprising}},
				{ID: "sc-02-o2", Label: "Track the stock and keep the accounts", Value: 5, Domains: []riasec.Domain{riasec.Conventional}},
				{ID: "sc-02-o3", Label: "Welcome visitors and handle questions", Value: 5, Domains: []riasec.Domain{riasec.Social}},
				{ID: "sc-02-o4", Label: "Design the posters and decorate the stall", Value: 5, Domains: []riasec.Domain{riasec.Artistic}},
			},
		},
		Question{
			ID:          "oe-01",
			BankVersion: DefaultVersion,
			Type:        TypeOpenEnded,
			Prompt:      "Describe something you built, made, organised, or figured out recently that you are proud of.",
			Domains:     riasec.Alphabet,
			Weight:      1.0,
			Active:      true,
		},
		Question{
			ID:          "oe-02",
			BankVersion: DefaultVersion,
			Type:        TypeOpenEnded,
			Prompt:      "If you could spend a full day shadowing any professional, who would it be and why?",
			Domains:     riasec.Alphabet,
			Weight:      1.0,
			Active:      true,
			GradeBands:  []string{"11-12"},
		},
	)

	return qs
}
