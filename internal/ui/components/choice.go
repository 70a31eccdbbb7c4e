package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dishalabs/disha/internal/ui/theme"
)

// Choice is a single-select option list. There is no right answer here:
// every option renders the same, and submitting just locks the pick.
type Choice struct {
	Prompt    string
	Options   []string
	Selected  int
	Submitted bool
}

// NewChoice creates a new option list for the given prompt.
func NewChoice(prompt string, options []string) Choice {
	return Choice{
		Prompt:  prompt,
		Options: options,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n := int(kmsg.String()[0] - '1')
		if n < len(c.Options) {
			c.Selected = n
		}
	case "enter":
		c.Submitted = true
	}

	return c, nil
}

// View renders the prompt and its options.
func (c Choice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
