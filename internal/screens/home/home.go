// Package home is the main menu of the application.
package home

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/screens/assessment"
	"github.com/dishalabs/disha/internal/screens/history"
	"github.com/dishalabs/disha/internal/store"
	"github.com/dishalabs/disha/internal/ui/components"
	"github.com/dishalabs/disha/internal/ui/theme"
)

type statusLoadedMsg struct {
	Open    *store.SessionRecord
	Results int
}

// HomeScreen is the main menu.
type HomeScreen struct {
	svc       *engine.Service
	studentID string
	student   string
	grade     string
	locale    string

	menu    components.Menu
	open    *store.SessionRecord
	results int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen for the given student.
func New(svc *engine.Service, studentID, student, grade, locale string) *HomeScreen {
	h := &HomeScreen{
		svc:       svc,
		studentID: studentID,
		student:   student,
		grade:     grade,
		locale:    locale,
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	startLabel := "Start assessment"
	startHint := ""
	if h.open != nil {
		startLabel = "Resume assessment"
		startHint = fmt.Sprintf("question %d of %d", h.open.QuestionIndex+1, h.open.MaxQuestions)
	}

	historyHint := ""
	if h.results > 0 {
		historyHint = fmt.Sprintf("%d completed", h.results)
	}

	return []components.MenuItem{
		{Label: startLabel, Hint: startHint, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessment.New(h.svc, h.studentID, h.grade, h.locale),
				}
			}
		}},
		{Label: "Past results", Hint: historyHint, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.svc)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStatus()
}

// loadStatus refreshes the open-session hint; it runs again whenever the
// home screen regains focus so a paused assessment shows up immediately.
func (h *HomeScreen) loadStatus() tea.Cmd {
	return func() tea.Msg {
		var msg statusLoadedMsg
		open, err := h.svc.OpenSession(context.Background(), h.studentID)
		if err == nil {
			msg.Open = open
		} else if !errors.Is(err, engine.ErrNotFound) {
			msg.Open = nil
		}
		if results, err := h.svc.RecentResults(context.Background(), 50); err == nil {
			msg.Results = len(results)
		}
		return msg
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		h.open = msg.Open
		h.results = msg.Results
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.menuItems())
		h.menu.Selected = selected
		return h, nil

	case router.ScreenFocusMsg:
		return h, h.loadStatus()

	case tea.KeyMsg:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("DISHA"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Find the direction that fits you"))
	b.WriteString("\n\n")

	greeting := fmt.Sprintf("Hi %s · Class %s", h.student, h.grade)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(greeting))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
