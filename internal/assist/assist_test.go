package assist

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/llm"
	"github.com/dishalabs/disha/internal/narrative"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
	"github.com/dishalabs/disha/internal/selector"
)

func newService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig()), mock
}

func chooseInput() selector.ChooseInput {
	return selector.ChooseInput{
		Remaining: []bank.Question{
			{ID: "r-02", Domains: []riasec.Domain{riasec.Realistic}, Prompt: "I like building models."},
			{ID: "i-01", Domains: []riasec.Domain{riasec.Investigative}, Prompt: "I like experiments."},
		},
		Snapshot: &scoring.Snapshot{
			Domains: map[riasec.Domain]scoring.DomainScore{
				riasec.Realistic: {Score: 75, RawWeight: 2},
			},
		},
	}
}

func TestChooseNextQuestionID(t *testing.T) {
	svc, mock := newService(llm.MockResponse{
		Content: json.RawMessage(`{"question_id": "i-01", "reason": "No evidence for I yet."}`),
	})

	got, err := svc.ChooseNextQuestionID(context.Background(), chooseInput())
	if err != nil {
		t.Fatal(err)
	}
	if got != "i-01" {
		t.Errorf("got %q, want i-01", got)
	}

	req := mock.Calls[0]
	if req.Schema != ChoiceSchema {
		t.Error("request did not carry the choice schema")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "r-02") || !strings.Contains(user, "i-01") {
		t.Errorf("candidates missing from prompt:\n%s", user)
	}
	if !strings.Contains(user, "Realistic (R): 75") {
		t.Errorf("scores missing from prompt:\n%s", user)
	}
}

func TestChooseRejectsUnknownID(t *testing.T) {
	svc, _ := newService(llm.MockResponse{
		Content: json.RawMessage(`{"question_id": "zz-99", "reason": "made up"}`),
	})

	if _, err := svc.ChooseNextQuestionID(context.Background(), chooseInput()); err == nil {
		t.Fatal("expected an error for an id outside the candidate list")
	}
}

func TestChoosePropagatesProviderError(t *testing.T) {
	svc, _ := newService(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	if _, err := svc.ChooseNextQuestionID(context.Background(), chooseInput()); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestPersonalizeQuestion(t *testing.T) {
	svc, mock := newService(llm.MockResponse{
		Content: json.RawMessage(`{"prompt": "Do you enjoy fixing cycles or gadgets at home?"}`),
	})

	q := bank.Question{ID: "r-01", Type: bank.TypeLikert, Prompt: "I enjoy repairing machines."}
	got, err := svc.PersonalizeQuestion(context.Background(), q, "9-10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "fixing cycles") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "9-10") {
		t.Error("grade band missing from prompt")
	}
}

func TestPersonalizeRejectsEmptyRewrite(t *testing.T) {
	svc, _ := newService(llm.MockResponse{
		Content: json.RawMessage(`{"prompt": "   "}`),
	})

	q := bank.Question{ID: "r-01", Type: bank.TypeLikert, Prompt: "I enjoy repairing machines."}
	if _, err := svc.PersonalizeQuestion(context.Background(), q, "9-10"); err == nil {
		t.Fatal("expected an error for a blank rewrite")
	}
}

func TestGenerateReport(t *testing.T) {
	svc, mock := newService(llm.MockResponse{
		Content: json.RawMessage(`{"report": "You show a strong practical streak."}`),
	})

	in := narrative.ReportInput{
		Grade: "9-10",
		Snapshot: scoring.Snapshot{
			Domains: map[riasec.Domain]scoring.DomainScore{
				riasec.Realistic: {Score: 90},
			},
			TopDomains:      []riasec.Domain{riasec.Realistic},
			ConfidenceLevel: scoring.Medium,
		},
		OpenAnswers: []string{"I rebuilt my bicycle."},
	}
	in.Suggestion.Stream = "Science"

	got, err := svc.GenerateReport(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if got != "You show a strong practical streak." {
		t.Errorf("got %q", got)
	}

	user := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Science", "MEDIUM", "I rebuilt my bicycle."} {
		if !strings.Contains(user, want) {
			t.Errorf("prompt missing %q:\n%s", want, user)
		}
	}
}

func TestAnswerMeaningsDropsUnknownIDs(t *testing.T) {
	svc, _ := newService(llm.MockResponse{
		Content: json.RawMessage(`{"meanings": [
			{"question_id": "r-01", "meaning": "You like hands-on work."},
			{"question_id": "zz-99", "meaning": "Invented."}
		]}`),
	})

	answers := []narrative.AnswerContext{
		{QuestionID: "r-01", Prompt: "I enjoy repairing machines.", Domains: []riasec.Domain{riasec.Realistic}, RawValue: 5, ScaleMin: 1, ScaleMax: 5},
	}
	got, err := svc.AnswerMeanings(context.Background(), answers)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got["r-01"] == "" {
		t.Errorf("got %v", got)
	}
}

func TestDomainNarrativesDropsUnevidenced(t *testing.T) {
	svc, _ := newService(llm.MockResponse{
		Content: json.RawMessage(`{"narratives": [
			{"domain": "R", "text": "Practical work suits you."},
			{"domain": "E", "text": "No evidence for this one."},
			{"domain": "X", "text": "Not a real area."}
		]}`),
	})

	snap := scoring.Snapshot{
		Domains: map[riasec.Domain]scoring.DomainScore{
			riasec.Realistic: {Score: 90},
		},
	}
	got, err := svc.DomainNarratives(context.Background(), snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got["R"] != "Practical work suits you." {
		t.Errorf("got %v", got)
	}
}

func TestDomainNarrativesEmptySnapshot(t *testing.T) {
	svc, mock := newService()

	if _, err := svc.DomainNarratives(context.Background(), scoring.Snapshot{}); err == nil {
		t.Fatal("expected an error for an empty snapshot")
	}
	if mock.CallCount() != 0 {
		t.Error("provider called for an empty snapshot")
	}
}
