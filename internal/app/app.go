// Package app wires the screen router into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/screens/home"
	"github.com/dishalabs/disha/internal/screens/welcome"
	"github.com/dishalabs/disha/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Engine *engine.Service

	// Student and Grade skip the welcome screen when both are set.
	Student string
	Grade   string

	// Locale is stamped onto new sessions; empty means the engine
	// default.
	Locale string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	student string
	width   int
	height  int
}

// newAppModel creates a new AppModel. A known student lands on the home
// screen; anyone else goes through the welcome flow first.
func newAppModel(opts Options) AppModel {
	var initial screen.Screen
	if opts.Student != "" && opts.Grade != "" {
		initial = home.New(opts.Engine, welcome.StudentID(opts.Student), opts.Student, opts.Grade, opts.Locale)
	} else {
		initial = welcome.New(opts.Engine, opts.Locale)
	}
	return AppModel{
		router:  router.New(initial),
		student: opts.Student,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.student, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
