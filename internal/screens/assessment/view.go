package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/ui/components"
	"github.com/dishalabs/disha/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (a *AssessmentScreen) View(width, height int) string {
	if a.errMsg != "" {
		return a.renderError(width)
	}
	if a.confirmingExit {
		return a.renderExitPrompt(width)
	}
	if a.completing {
		return a.renderWaiting(width, "Scoring your answers...")
	}
	if a.loading || a.current == nil {
		return a.renderWaiting(width, "Preparing your next question...")
	}
	return a.renderQuestion(width)
}

func (a *AssessmentScreen) renderWaiting(width int, label string) string {
	frame := spinnerFrames[a.spinnerFrame%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  " + frame + " " + label)
}

func (a *AssessmentScreen) renderError(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("\n\nSomething went wrong"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(a.errMsg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back"))
	return b.String()
}

func (a *AssessmentScreen) renderExitPrompt(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("\n\nTake a break?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Pausing keeps your progress; abandoning discards this attempt."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[P] Pause for later   [A] Abandon   [N] Keep going"))
	return b.String()
}

func (a *AssessmentScreen) renderQuestion(width int) string {
	q := a.current
	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", q.Position, a.sess.MaxQuestions))

	bar := components.NewProgressBar("", float64(q.Position-1)/float64(a.sess.MaxQuestions), false, 30)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - 30 - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + bar.View()
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.Type == bank.TypeOpenEnded {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(q.Prompt))
		b.WriteString("\n\n")
		b.WriteString(a.input.View())
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("There are no wrong answers. Press Enter when you are done."))
	} else {
		b.WriteString(a.choice.View())
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(q.Options))))
	}

	return lipgloss.NewStyle().Padding(0, 2).Width(width).Render(b.String())
}
