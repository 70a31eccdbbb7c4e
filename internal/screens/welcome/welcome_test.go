package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/screens/home"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestStudentID(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Asha Rao", "asha-rao"},
		{"  Asha   Rao  ", "asha-rao"},
		{"Priya", "priya"},
		{"Dev Raj Sharma", "dev-raj-sharma"},
	}
	for _, tc := range cases {
		if got := StudentID(tc.name); got != tc.want {
			t.Errorf("StudentID(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestEmptyNameDoesNotAdvance(t *testing.T) {
	w := New(nil, "")

	var scr screen.Screen = w
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ws := scr.(*WelcomeScreen)
	if ws.step != stepName {
		t.Error("empty name should not advance past the name step")
	}
}

func TestNameAdvancesToGradeStep(t *testing.T) {
	w := New(nil, "")
	w.input.Model.SetValue("Asha Rao")

	var scr screen.Screen = w
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ws := scr.(*WelcomeScreen)

	if ws.step != stepGrade {
		t.Fatalf("step = %d, want stepGrade", ws.step)
	}
	if ws.name != "Asha Rao" {
		t.Errorf("name = %q, want %q", ws.name, "Asha Rao")
	}
	if len(ws.choice.Options) != len(GradeBands) {
		t.Errorf("choice options = %d, want %d", len(ws.choice.Options), len(GradeBands))
	}
}

func TestGradeSubmitEmitsReplace(t *testing.T) {
	w := New(nil, "")
	w.input.Model.SetValue("Asha Rao")

	var scr screen.Screen = w
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	// Pick the second band and submit.
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after grade submit")
	}

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*home.HomeScreen); !ok {
		t.Errorf("expected a home screen, got %T", replaceMsg.Screen)
	}
}

func TestTitleEmpty(t *testing.T) {
	w := New(nil, "")
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}

func TestViewShowsNamePrompt(t *testing.T) {
	w := New(nil, "")
	view := w.View(80, 24)
	if !strings.Contains(view, "Welcome to Disha") {
		t.Error("expected welcome heading in view")
	}
	if !strings.Contains(view, "What should we call you?") {
		t.Error("expected name prompt in view")
	}
}
