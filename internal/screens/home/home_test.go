package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/store"
)

func TestMenuStartsWithThreeItems(t *testing.T) {
	h := New(nil, "asha-rao", "Asha Rao", "9-10", "")
	if len(h.menu.Items) != 3 {
		t.Fatalf("menu items = %d, want 3", len(h.menu.Items))
	}
	if h.menu.Items[0].Label != "Start assessment" {
		t.Errorf("first item = %q, want %q", h.menu.Items[0].Label, "Start assessment")
	}
}

func TestStatusLoadedSwitchesToResume(t *testing.T) {
	h := New(nil, "asha-rao", "Asha Rao", "9-10", "")

	var scr screen.Screen = h
	scr, _ = scr.Update(statusLoadedMsg{
		Open: &store.SessionRecord{
			ID:            "s1",
			QuestionIndex: 4,
			MaxQuestions:  18,
		},
		Results: 2,
	})
	hs := scr.(*HomeScreen)

	if hs.menu.Items[0].Label != "Resume assessment" {
		t.Errorf("first item = %q, want %q", hs.menu.Items[0].Label, "Resume assessment")
	}
	if hs.menu.Items[0].Hint != "question 5 of 18" {
		t.Errorf("hint = %q, want %q", hs.menu.Items[0].Hint, "question 5 of 18")
	}
	if hs.menu.Items[1].Hint != "2 completed" {
		t.Errorf("history hint = %q, want %q", hs.menu.Items[1].Hint, "2 completed")
	}
}

func TestStatusLoadedPreservesSelection(t *testing.T) {
	h := New(nil, "asha-rao", "Asha Rao", "9-10", "")
	h.menu.Selected = 1

	var scr screen.Screen = h
	scr, _ = scr.Update(statusLoadedMsg{Results: 1})
	hs := scr.(*HomeScreen)

	if hs.menu.Selected != 1 {
		t.Errorf("selection = %d, want 1", hs.menu.Selected)
	}
}

func TestFocusTriggersReload(t *testing.T) {
	h := New(nil, "asha-rao", "Asha Rao", "9-10", "")

	_, cmd := h.Update(router.ScreenFocusMsg{})
	if cmd == nil {
		t.Error("expected a reload command on focus")
	}
}

func TestStartPushesAssessment(t *testing.T) {
	h := New(nil, "asha-rao", "Asha Rao", "9-10", "")

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the start item")
	}
	msg := cmd()
	pushMsg, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if pushMsg.Screen == nil {
		t.Error("pushed screen should not be nil")
	}
}

func TestViewShowsGreeting(t *testing.T) {
	h := New(nil, "asha-rao", "Asha Rao", "11-12", "")
	view := h.View(80, 24)
	if !strings.Contains(view, "Asha Rao") {
		t.Error("expected student name in view")
	}
	if !strings.Contains(view, "11-12") {
		t.Error("expected class band in view")
	}
}
