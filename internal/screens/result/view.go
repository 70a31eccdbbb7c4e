package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/ui/components"
	"github.com/dishalabs/disha/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (r *ResultScreen) View(width, height int) string {
	content := r.renderContent(width)

	// Simple line-window scrolling; the report can be long.
	lines := strings.Split(content, "\n")
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if r.scroll > maxScroll {
		r.scroll = maxScroll
	}
	end := r.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[r.scroll:end], "\n")
}

func (r *ResultScreen) renderContent(width int) string {
	res := r.res
	var b strings.Builder

	centered := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text)

	centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Your Interest Profile")

	tops := make([]string, 0, len(res.TopDomains))
	for _, tag := range res.TopDomains {
		if d, err := riasec.Parse(tag); err == nil {
			tops = append(tops, d.Name())
		}
	}
	if len(tops) > 0 {
		centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), strings.Join(tops, " + "))
	}
	centered(dim, fmt.Sprintf("Confidence: %s  ·  %d scored answers", res.ConfidenceLevel, res.ScoredAnswers))
	b.WriteString("\n")

	if r.regenerating {
		frame := spinnerFrames[r.spinnerFrame%len(spinnerFrames)]
		centered(dim, frame+" Rewriting your report...")
		b.WriteString("\n")
	}
	if r.notice != "" {
		centered(lipgloss.NewStyle().Foreground(theme.Error), r.notice)
		b.WriteString("\n")
	}

	// Domain score bars in canonical order.
	barWidth := min(width-12, 56)
	for _, d := range riasec.Alphabet {
		ds, ok := res.DomainScores[string(d)]
		label := fmt.Sprintf("%-13s", d.Name())
		var bar components.ProgressBar
		if ok {
			bar = components.NewProgressBar(label, ds.Score/100, true, barWidth)
		} else {
			bar = components.NewProgressBar(label, 0, true, barWidth)
		}
		bar.FillColor = theme.DomainColor(string(d))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	section := func(title string) {
		centered(dim, title)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
	}

	section("Suggested Direction")
	centered(body.Bold(true), res.Stream)
	if len(res.CareerFields) > 0 {
		centered(body, strings.Join(res.CareerFields, "  ·  "))
	}
	if res.Guidance != "" {
		centered(dim, res.Guidance)
	}
	b.WriteString("\n")

	if len(res.Courses) > 0 {
		section("Courses Worth Exploring")
		for _, c := range res.Courses {
			line := fmt.Sprintf("  %s — %s", c.Name, c.Stream)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if res.Narrative != "" {
		section("Your Report")
		prose := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(min(width-8, 76)).
			Render(res.Narrative)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prose))
		b.WriteString("\n\n")
	}

	if len(res.DomainNarratives) > 0 {
		section("Area by Area")
		for _, d := range riasec.Alphabet {
			text, ok := res.DomainNarratives[string(d)]
			if !ok {
				continue
			}
			prose := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(min(width-8, 76)).
				Render(text)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prose))
			b.WriteString("\n\n")
		}
	}

	centered(dim, fmt.Sprintf("Taken %s  ·  bank %s",
		res.CreatedAt.Format("2 Jan 2006"), res.BankVersion))

	return b.String()
}
