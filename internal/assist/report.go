package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/llm"
	"github.com/dishalabs/disha/internal/narrative"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
)

// PersonalizeQuestion rewrites a question prompt for the student's grade
// without changing its meaning.
func (s *Service) PersonalizeQuestion(ctx context.Context, q bank.Question, grade string) (string, error) {
	user := buildPersonalizeMessage(q.Prompt, string(q.Type), grade)
	content, err := s.generate(ctx, llm.PurposePersonalize, personalizeSystemPrompt, user, PersonalizeSchema)
	if err != nil {
		return "", fmt.Errorf("personalize question: %w", err)
	}

	var out struct {
		Prompt string `json:"prompt"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return "", fmt.Errorf("parse personalized prompt: %w", err)
	}
	out.Prompt = strings.TrimSpace(out.Prompt)
	if out.Prompt == "" {
		return "", fmt.Errorf("personalized prompt is empty")
	}
	return out.Prompt, nil
}

// GenerateReport writes the narrative report for a finished session.
func (s *Service) GenerateReport(ctx context.Context, in narrative.ReportInput) (string, error) {
	content, err := s.generate(ctx, llm.PurposeReport, reportSystemPrompt, buildReportMessage(in), ReportSchema)
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}

	var out struct {
		Report string `json:"report"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return "", fmt.Errorf("parse report: %w", err)
	}
	out.Report = strings.TrimSpace(out.Report)
	if out.Report == "" {
		return "", fmt.Errorf("report is empty")
	}
	return out.Report, nil
}

// AnswerMeanings explains what each answer contributed. Entries for
// question ids that were never asked are dropped.
func (s *Service) AnswerMeanings(ctx context.Context, answers []narrative.AnswerContext) (map[string]string, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("no answers to explain")
	}

	content, err := s.generate(ctx, llm.PurposeMeanings, meaningsSystemPrompt, buildMeaningsMessage(answers), MeaningsSchema)
	if err != nil {
		return nil, fmt.Errorf("answer meanings: %w", err)
	}

	var out struct {
		Meanings []struct {
			QuestionID string `json:"question_id"`
			Meaning    string `json:"meaning"`
		} `json:"meanings"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("parse answer meanings: %w", err)
	}

	known := make(map[string]bool, len(answers))
	for _, a := range answers {
		known[a.QuestionID] = true
	}

	result := make(map[string]string, len(out.Meanings))
	for _, m := range out.Meanings {
		text := strings.TrimSpace(m.Meaning)
		if text == "" || !known[m.QuestionID] {
			continue
		}
		result[m.QuestionID] = text
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no usable answer meanings returned")
	}
	return result, nil
}

// DomainNarratives explains each evidenced domain's score. Entries for
// domains without evidence are dropped.
func (s *Service) DomainNarratives(ctx context.Context, snap scoring.Snapshot) (map[string]string, error) {
	if len(snap.Domains) == 0 {
		return nil, fmt.Errorf("no evidenced domains to explain")
	}

	content, err := s.generate(ctx, llm.PurposeNarratives, narrativesSystemPrompt, buildNarrativesMessage(snap), NarrativesSchema)
	if err != nil {
		return nil, fmt.Errorf("domain narratives: %w", err)
	}

	var out struct {
		Narratives []struct {
			Domain string `json:"domain"`
			Text   string `json:"text"`
		} `json:"narratives"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("parse domain narratives: %w", err)
	}

	result := make(map[string]string, len(out.Narratives))
	for _, n := range out.Narratives {
		d, err := riasec.Parse(n.Domain)
		if err != nil {
			continue
		}
		text := strings.TrimSpace(n.Text)
		if text == "" {
			continue
		}
		if _, evidenced := snap.Domains[d]; !evidenced {
			continue
		}
		result[string(d)] = text
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no usable domain narratives returned")
	}
	return result, nil
}
