package result

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/store"
)

func testResult() *store.ResultRecord {
	return &store.ResultRecord{
		SessionID: "s1",
		StudentID: "asha-rao",
		Grade:     "9-10",
		DomainScores: map[string]store.DomainScoreRecord{
			"R": {RawSum: 24, RawWeight: 29, Score: 82.5},
			"I": {RawSum: 21, RawWeight: 28, Score: 74.0},
			"A": {RawSum: 9, RawWeight: 29, Score: 31.0},
		},
		TopDomains:      []string{"R", "I"},
		TopMargin:       8.5,
		ConfidenceLevel: "HIGH",
		ScoredAnswers:   16,
		Stream:          "Science (PCM)",
		CareerFields:    []string{"Engineering", "Research"},
		Guidance:        "Hands-on technical work suits you.",
		Narrative:       "You like to build and to understand how things work.",
		BankVersion:     "bank-v1",
		CreatedAt:       time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestResultScreen_Title(t *testing.T) {
	r := New(nil, testResult())
	if r.Title() != "Your Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Your Results")
	}
}

func TestResultScreen_Display(t *testing.T) {
	r := New(nil, testResult())
	view := r.View(80, 60)
	if !strings.Contains(view, "Realistic + Investigative") {
		t.Error("expected top domain names in view")
	}
	if !strings.Contains(view, "Science (PCM)") {
		t.Error("expected suggested stream in view")
	}
}

func TestResultScreen_Scroll(t *testing.T) {
	r := New(nil, testResult())

	var scr screen.Screen = r
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	rs := scr.(*ResultScreen)
	if rs.scroll != 1 {
		t.Errorf("scroll = %d, want 1", rs.scroll)
	}
	scr, _ = rs.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	rs = scr.(*ResultScreen)
	if rs.scroll != 0 {
		t.Errorf("scroll = %d, want 0", rs.scroll)
	}
}

func TestResultScreen_RegenerateUpdatesReport(t *testing.T) {
	r := New(nil, testResult())
	r.regenerating = true

	updated := testResult()
	updated.Narrative = "A fresh take on the same profile."

	var scr screen.Screen = r
	scr, _ = scr.Update(regeneratedMsg{Result: updated})
	rs := scr.(*ResultScreen)

	if rs.regenerating {
		t.Error("expected regenerating cleared")
	}
	if !strings.Contains(rs.View(80, 60), "A fresh take on the same profile.") {
		t.Error("expected the rewritten report in view")
	}
}

func TestResultScreen_RegenerateFailureKeepsResult(t *testing.T) {
	r := New(nil, testResult())
	r.regenerating = true

	var scr screen.Screen = r
	scr, _ = scr.Update(regeneratedMsg{Err: errors.New("provider unavailable")})
	rs := scr.(*ResultScreen)

	if rs.notice == "" {
		t.Error("expected a notice on failure")
	}
	if !strings.Contains(rs.View(80, 60), "Science (PCM)") {
		t.Error("the existing result should still render")
	}
}

func TestResultScreen_EscPops(t *testing.T) {
	r := New(nil, testResult())
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}
