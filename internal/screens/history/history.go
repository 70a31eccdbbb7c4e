// Package history lists past assessment results and opens them for
// review.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/screens/result"
	"github.com/dishalabs/disha/internal/store"
	"github.com/dishalabs/disha/internal/ui/layout"
	"github.com/dishalabs/disha/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []store.ResultRecord
	Err     error
}

// HistoryScreen displays past results for review.
type HistoryScreen struct {
	svc      *engine.Service
	results  []store.ResultRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *engine.Service) *HistoryScreen {
	return &HistoryScreen{svc: svc}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		results, err := s.svc.RecentResults(context.Background(), 50)
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Past Results"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.results) {
				res := s.results[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: result.New(s.svc, &res)}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading past results...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No completed assessments yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, res := range s.results {
		dateStr := res.CreatedAt.Format("Jan 02, 2006")

		tops := make([]string, 0, len(res.TopDomains))
		for _, tag := range res.TopDomains {
			if d, err := riasec.Parse(tag); err == nil {
				tops = append(tops, d.Name())
			}
		}
		topStr := strings.Join(tops, " + ")
		if topStr == "" {
			topStr = "No clear signal"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-28s  %s  %s confidence",
			prefix, dateStr, topStr, res.Stream, strings.ToLower(res.ConfidenceLevel))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
