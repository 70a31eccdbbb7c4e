// Package result renders a finalized assessment outcome: domain scores,
// the suggested stream, career fields, courses, and the narrative report.
package result

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/store"
	"github.com/dishalabs/disha/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

type regeneratedMsg struct {
	Result *store.ResultRecord
	Err    error
}

type spinnerTickMsg time.Time

// ResultScreen displays one frozen result.
type ResultScreen struct {
	svc *engine.Service
	res *store.ResultRecord

	scroll       int
	regenerating bool
	spinnerFrame int
	notice       string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for an already-loaded result.
func New(svc *engine.Service, res *store.ResultRecord) *ResultScreen {
	return &ResultScreen{svc: svc, res: res}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Your Results"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Rewrite report"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultScreen) regenerate() tea.Cmd {
	sessionID, studentID := r.res.SessionID, r.res.StudentID
	return func() tea.Msg {
		res, err := r.svc.RegenerateResultArtifacts(context.Background(), sessionID, studentID)
		return regeneratedMsg{Result: res, Err: err}
	}
}

func (r *ResultScreen) spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case regeneratedMsg:
		r.regenerating = false
		if msg.Err != nil {
			r.notice = "Could not rewrite the report: " + msg.Err.Error()
			return r, nil
		}
		r.res = msg.Result
		r.notice = ""
		return r, nil

	case spinnerTickMsg:
		r.spinnerFrame++
		if r.regenerating {
			return r, r.spinnerTick()
		}
		return r, nil

	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "up", "k":
			if r.scroll > 0 {
				r.scroll--
			}
		case "down", "j":
			r.scroll++
		case "pgup":
			r.scroll -= 10
			if r.scroll < 0 {
				r.scroll = 0
			}
		case "pgdown":
			r.scroll += 10
		case "r":
			if !r.regenerating {
				r.regenerating = true
				r.notice = ""
				return r, tea.Batch(r.regenerate(), r.spinnerTick())
			}
		case "esc", "enter":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return r, nil
}
