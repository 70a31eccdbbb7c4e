package assessment

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() *AssessmentScreen {
	return New(nil, "asha-rao", "9-10", "")
}

func likertQuestion() *engine.ServedQuestion {
	return &engine.ServedQuestion{
		ID:     "q1",
		Type:   bank.TypeLikert,
		Prompt: "I enjoy fixing things with my hands.",
		Options: []bank.Option{
			{ID: "o1", Label: "Strongly disagree", Value: 1},
			{ID: "o2", Label: "Disagree", Value: 2},
			{ID: "o3", Label: "Neutral", Value: 3},
			{ID: "o4", Label: "Agree", Value: 4},
			{ID: "o5", Label: "Strongly agree", Value: 5},
		},
		Position: 3,
	}
}

func serveQuestion(a *AssessmentScreen, q *engine.ServedQuestion) *AssessmentScreen {
	a.sess = &store.SessionRecord{ID: "s1", MaxQuestions: 18}
	scr, _ := a.Update(questionServedMsg{Outcome: &engine.NextOutcome{Question: q}})
	return scr.(*AssessmentScreen)
}

func TestTitle(t *testing.T) {
	a := testScreen()
	if a.Title() != "Assessment" {
		t.Errorf("Title = %q, want %q", a.Title(), "Assessment")
	}
}

func TestStartsLoading(t *testing.T) {
	a := testScreen()
	if !a.loading {
		t.Error("expected loading state before the session is ready")
	}
	view := a.View(80, 24)
	if view == "" {
		t.Error("expected non-empty loading view")
	}
}

func TestSessionErrorShowsMessage(t *testing.T) {
	a := testScreen()

	var scr screen.Screen = a
	scr, _ = scr.Update(sessionReadyMsg{Err: errors.New("db locked")})
	as := scr.(*AssessmentScreen)

	if as.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if !strings.Contains(as.View(80, 24), "db locked") {
		t.Error("expected error text in view")
	}

	// Any key returns to the previous screen.
	_, cmd := as.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after keypress on error")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after error keypress")
	}
}

func TestServedQuestionRendersChoice(t *testing.T) {
	a := serveQuestion(testScreen(), likertQuestion())

	if a.loading {
		t.Error("expected loading cleared once a question is served")
	}
	if a.current == nil {
		t.Fatal("expected a current question")
	}
	view := a.View(80, 24)
	if !strings.Contains(view, "I enjoy fixing things with my hands.") {
		t.Error("expected prompt in view")
	}
	if !strings.Contains(view, "Question 3 of 18") {
		t.Error("expected progress line in view")
	}
}

func TestChoiceSubmitSendsAnswer(t *testing.T) {
	a := serveQuestion(testScreen(), likertQuestion())

	var scr screen.Screen = a
	scr, _ = scr.Update(keyPress('4'))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	as := scr.(*AssessmentScreen)

	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	if !as.loading {
		t.Error("expected loading while the answer is saved")
	}
	if as.current != nil {
		t.Error("expected current question cleared on submit")
	}
}

func TestOpenEndedRequiresText(t *testing.T) {
	q := &engine.ServedQuestion{
		ID:       "q9",
		Type:     bank.TypeOpenEnded,
		Prompt:   "Describe a project you were proud of.",
		Position: 17,
	}
	a := serveQuestion(testScreen(), q)

	// Enter with an empty input does nothing.
	var scr screen.Screen = a
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	as := scr.(*AssessmentScreen)
	if cmd != nil {
		t.Error("expected no command for an empty answer")
	}
	if as.current == nil {
		t.Error("question should remain on screen")
	}

	as.input.Model.SetValue("I built a model bridge for the science fair.")
	scr, cmd = as.Update(specialKey(tea.KeyEnter))
	as = scr.(*AssessmentScreen)
	if cmd == nil {
		t.Fatal("expected a submit command once text is entered")
	}
	if as.current != nil {
		t.Error("expected current question cleared on submit")
	}
}

func TestDoneMovesToCompleting(t *testing.T) {
	a := testScreen()
	a.sess = &store.SessionRecord{ID: "s1", MaxQuestions: 18}

	var scr screen.Screen = a
	scr, cmd := scr.Update(questionServedMsg{Outcome: &engine.NextOutcome{Done: true}})
	as := scr.(*AssessmentScreen)

	if !as.completing {
		t.Error("expected completing state on the terminal signal")
	}
	if cmd == nil {
		t.Error("expected a completion command")
	}
	if !strings.Contains(as.View(80, 24), "Scoring your answers") {
		t.Error("expected scoring notice in view")
	}
}

func TestResultReadyReplacesScreen(t *testing.T) {
	a := testScreen()
	a.completing = true

	res := &store.ResultRecord{SessionID: "s1", StudentID: "asha-rao"}
	_, cmd := a.Update(resultReadyMsg{Result: res})
	if cmd == nil {
		t.Fatal("expected a command after the result is ready")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
}

func TestEscapeShowsExitPrompt(t *testing.T) {
	a := serveQuestion(testScreen(), likertQuestion())

	var scr screen.Screen = a
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	as := scr.(*AssessmentScreen)
	if !as.confirmingExit {
		t.Fatal("expected exit prompt after Esc")
	}
	if !strings.Contains(as.View(80, 24), "Pause for later") {
		t.Error("expected pause option in view")
	}

	// N keeps the session going.
	scr, _ = as.Update(keyPress('n'))
	as = scr.(*AssessmentScreen)
	if as.confirmingExit {
		t.Error("expected exit prompt dismissed")
	}
}

func TestPauseLeavesSessionOpen(t *testing.T) {
	a := serveQuestion(testScreen(), likertQuestion())

	var scr screen.Screen = a
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('p'))
	if cmd == nil {
		t.Fatal("expected a command after pause")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on pause")
	}
}

func TestHandlesEscape(t *testing.T) {
	a := testScreen()
	if !a.HandlesEscape() {
		t.Error("assessment must intercept Esc for the exit prompt")
	}
}
