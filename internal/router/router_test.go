package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dishalabs/disha/internal/screen"
)

type stubScreen struct {
	name     string
	inited   bool
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}

	next := &stubScreen{name: "next"}
	r.Push(next)
	if !next.inited {
		t.Error("pushed screen was not initialized")
	}
	if r.Active() != next {
		t.Error("active screen is not the pushed one")
	}

	r.Pop()
	if r.Active() != home {
		t.Error("pop did not restore the previous screen")
	}

	// The last screen never pops.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d after popping the root, want 1", r.Depth())
	}
}

func TestPopNotifiesRevealedScreen(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)
	r.Push(&stubScreen{name: "top"})

	r.Update(PopScreenMsg{})

	if len(home.received) != 1 {
		t.Fatalf("revealed screen received %d messages, want 1", len(home.received))
	}
	if _, ok := home.received[0].(ScreenFocusMsg); !ok {
		t.Errorf("revealed screen received %T, want ScreenFocusMsg", home.received[0])
	}
}

func TestReplaceSwapsInPlace(t *testing.T) {
	splash := &stubScreen{name: "splash"}
	r := New(splash)

	home := &stubScreen{name: "home"}
	r.Update(ReplaceScreenMsg{Screen: home})

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if r.Active() != home {
		t.Error("replace did not swap the active screen")
	}
	if !home.inited {
		t.Error("replacement screen was not initialized")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	top := &stubScreen{name: "top"}
	r.Update(PushScreenMsg{Screen: top})
	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if len(top.received) != 1 {
		t.Errorf("active screen received %d messages, want 1", len(top.received))
	}
	if len(home.received) != 0 {
		t.Errorf("inactive screen received %d messages, want 0", len(home.received))
	}
}
