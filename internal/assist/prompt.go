package assist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dishalabs/disha/internal/narrative"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
	"github.com/dishalabs/disha/internal/selector"
)

const choiceSystemPrompt = `You help run an adaptive career-interest assessment for school students.

Rules:
- Pick exactly one question id from the candidate list, verbatim.
- Prefer the question that best separates the interest areas currently closest in score.
- When no scores exist yet, prefer breadth: an area with no evidence beats a well-covered one.
- Never invent a question id.`

const personalizeSystemPrompt = `You rewrite career-interest assessment questions for school students in India.

Rules:
- Keep the exact meaning and the same answer scale. A rewrite that changes what is being measured is wrong.
- Match the student's grade level: simpler words for younger students.
- Keep it to one or two short sentences, plain text, no emoji.
- Stay neutral; never hint at which answer is desirable.`

const reportSystemPrompt = `You write career-interest reports for school students in India, based on a RIASEC-style assessment.

Rules:
- Address the student directly and warmly; this may be the first career feedback they ever receive.
- Ground every claim in the scores and answers provided. Never invent results.
- Mention the suggested stream and a few career fields, but frame them as directions to explore, not verdicts.
- When confidence is LOW, say clearly that this is an early sketch.
- 2 to 4 short paragraphs, plain text.`

const meaningsSystemPrompt = `You explain, one sentence per question, what each assessment answer revealed about a student's interests.

Rules:
- One entry per question id given, no more and no fewer.
- Plain, encouraging language a school student understands.
- Never judge an answer as good or bad; every interest profile is valid.`

const narrativesSystemPrompt = `You explain a student's score in each career-interest area of a RIASEC-style assessment.

Rules:
- One entry per interest area given, using the area codes verbatim.
- 1-2 sentences each, grounded in the score, in plain encouraging language.
- Never compare the student to other students.`

func buildChoiceMessage(in selector.ChooseInput) string {
	var b strings.Builder

	b.WriteString("Candidate questions:\n")
	for _, q := range in.Remaining {
		fmt.Fprintf(&b, "- %s [%s] %s\n", q.ID, strings.Join(riasec.Strings(q.Domains), ","), q.Prompt)
	}

	b.WriteString("\nCurrent scores:\n")
	b.WriteString(formatSnapshot(in.Snapshot))

	return b.String()
}

func buildPersonalizeMessage(prompt, qtype, grade string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", prompt)
	fmt.Fprintf(&b, "Question type: %s\n", qtype)
	fmt.Fprintf(&b, "Student grade band: %s\n", gradeOrUnknown(grade))
	return b.String()
}

func buildReportMessage(in narrative.ReportInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student grade band: %s\n", gradeOrUnknown(in.Grade))
	fmt.Fprintf(&b, "Confidence: %s\n", in.Snapshot.ConfidenceLevel)
	fmt.Fprintf(&b, "Top interest areas: %s\n", strings.Join(riasec.Strings(in.Snapshot.TopDomains), ", "))

	b.WriteString("\nScores (0-100):\n")
	b.WriteString(formatSnapshot(&in.Snapshot))

	fmt.Fprintf(&b, "\nSuggested stream: %s\n", in.Suggestion.Stream)
	fmt.Fprintf(&b, "Career fields: %s\n", strings.Join(in.Suggestion.CareerFields, ", "))

	if len(in.OpenAnswers) > 0 {
		b.WriteString("\nIn the student's own words:\n")
		for i, a := range in.OpenAnswers {
			fmt.Fprintf(&b, "%d. %s\n", i+1, a)
		}
	}

	return b.String()
}

func buildMeaningsMessage(answers []narrative.AnswerContext) string {
	var b strings.Builder
	b.WriteString("Answered questions:\n")
	for _, a := range answers {
		fmt.Fprintf(&b, "- %s [%s] %q", a.QuestionID, strings.Join(riasec.Strings(a.Domains), ","), a.Prompt)
		if a.ScaleMax > a.ScaleMin {
			fmt.Fprintf(&b, " answered %d on a %d-%d scale", a.RawValue, a.ScaleMin, a.ScaleMax)
			if a.Reverse {
				b.WriteString(" (reverse-scored)")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func buildNarrativesMessage(snap scoring.Snapshot) string {
	var b strings.Builder
	b.WriteString("Interest area scores (0-100):\n")
	b.WriteString(formatSnapshot(&snap))
	return b.String()
}

func formatSnapshot(snap *scoring.Snapshot) string {
	if snap == nil || len(snap.Domains) == 0 {
		return "No scored answers yet.\n"
	}

	codes := make([]riasec.Domain, 0, len(snap.Domains))
	for d := range snap.Domains {
		codes = append(codes, d)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].Rank() < codes[j].Rank() })

	var b strings.Builder
	for _, d := range codes {
		fmt.Fprintf(&b, "- %s (%s): %.0f\n", d.Name(), string(d), snap.Domains[d].Score)
	}
	return b.String()
}

func gradeOrUnknown(grade string) string {
	if grade == "" {
		return "unknown"
	}
	return grade
}
