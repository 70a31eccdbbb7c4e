// Package welcome collects the student's name and class band on first
// launch, then hands off to the home screen.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/screens/home"
	"github.com/dishalabs/disha/internal/ui/components"
	"github.com/dishalabs/disha/internal/ui/layout"
	"github.com/dishalabs/disha/internal/ui/theme"
)

type step int

const (
	stepName step = iota
	stepGrade
)

// GradeBands are the class bands a student can pick from.
var GradeBands = []string{"9-10", "11-12"}

// WelcomeScreen asks for a name and a class band.
type WelcomeScreen struct {
	svc    *engine.Service
	locale string

	step   step
	input  components.TextInput
	choice components.Choice
	name   string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New(svc *engine.Service, locale string) *WelcomeScreen {
	return &WelcomeScreen{
		svc:    svc,
		locale: locale,
		input:  components.NewTextInput("Your name", 40),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.step == stepGrade {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch w.step {
	case stepName:
		if kmsg.String() == "enter" {
			name := strings.TrimSpace(w.input.Value())
			if name == "" {
				return w, nil
			}
			w.name = name
			w.step = stepGrade
			w.choice = components.NewChoice("Which class are you in?", GradeBands)
			return w, nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd

	case stepGrade:
		var cmd tea.Cmd
		w.choice, cmd = w.choice.Update(msg)
		if w.choice.Submitted {
			grade := GradeBands[w.choice.Selected]
			return w, func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: home.New(w.svc, StudentID(w.name), w.name, grade, w.locale),
				}
			}
		}
		return w, cmd
	}

	return w, nil
}

// StudentID derives a stable identifier from a display name, so the
// same student resumes their own sessions across runs.
func StudentID(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Welcome to Disha"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("A short assessment to map your interests."))
	sections = append(sections, "")

	switch w.step {
	case stepName:
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("What should we call you?"))
		sections = append(sections, "")
		sections = append(sections, w.input.View())

	case stepGrade:
		sections = append(sections, w.choice.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
