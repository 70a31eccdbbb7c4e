// Package assessment is the live question-and-answer screen. It drives
// one engine session from start-or-resume through the terminal signal,
// then hands the frozen result to the result screen.
package assessment

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/router"
	"github.com/dishalabs/disha/internal/screen"
	"github.com/dishalabs/disha/internal/screens/result"
	"github.com/dishalabs/disha/internal/store"
	"github.com/dishalabs/disha/internal/ui/components"
	"github.com/dishalabs/disha/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// AssessmentScreen implements screen.Screen for an active session.
type AssessmentScreen struct {
	svc       *engine.Service
	studentID string
	grade     string
	locale    string

	sess    *store.SessionRecord
	current *engine.ServedQuestion

	choice components.Choice
	input  components.TextInput

	servedAt       time.Time
	loading        bool
	completing     bool
	confirmingExit bool
	spinnerFrame   int
	errMsg         string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.EscapeHandler = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen that starts or resumes the student's
// session on Init.
func New(svc *engine.Service, studentID, grade, locale string) *AssessmentScreen {
	return &AssessmentScreen{
		svc:       svc,
		studentID: studentID,
		grade:     grade,
		locale:    locale,
		loading:   true,
	}
}

func (a *AssessmentScreen) Title() string {
	return "Assessment"
}

func (a *AssessmentScreen) Init() tea.Cmd {
	return tea.Batch(a.startSession(), a.spinnerTick())
}

func (a *AssessmentScreen) KeyHints() []layout.KeyHint {
	if a.confirmingExit {
		return []layout.KeyHint{
			{Key: "P", Description: "Pause for later"},
			{Key: "A", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if a.current != nil && a.current.Type == bank.TypeOpenEnded {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Pause"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Pause"},
	}
}

// HandlesEscape keeps Esc inside the screen so leaving an assessment
// always goes through the pause/abandon prompt.
func (a *AssessmentScreen) HandlesEscape() bool {
	return true
}

func (a *AssessmentScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		sess, err := a.svc.StartOrResume(context.Background(), a.studentID, a.grade, a.locale, 0)
		return sessionReadyMsg{Session: sess, Err: err}
	}
}

func (a *AssessmentScreen) fetchNext() tea.Cmd {
	return func() tea.Msg {
		out, err := a.svc.NextQuestion(context.Background(), a.sess.ID, a.studentID)
		return questionServedMsg{Outcome: out, Err: err}
	}
}

func (a *AssessmentScreen) submit(sub engine.Submission) tea.Cmd {
	return func() tea.Msg {
		err := a.svc.SubmitAnswer(context.Background(), a.sess.ID, a.studentID, sub)
		return answerSavedMsg{Err: err}
	}
}

func (a *AssessmentScreen) complete() tea.Cmd {
	return func() tea.Msg {
		res, err := a.svc.Complete(context.Background(), a.sess.ID, a.studentID)
		return resultReadyMsg{Result: res, Err: err}
	}
}

func (a *AssessmentScreen) abandon() tea.Cmd {
	return func() tea.Msg {
		return abandonedMsg{Err: a.svc.AbandonSession(context.Background(), a.sess.ID, a.studentID)}
	}
}

func (a *AssessmentScreen) spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (a *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.Err != nil {
			a.loading = false
			a.errMsg = "Could not start the assessment: " + msg.Err.Error()
			return a, nil
		}
		a.sess = msg.Session
		return a, a.fetchNext()

	case questionServedMsg:
		return a.handleServed(msg)

	case answerSavedMsg:
		if msg.Err != nil {
			a.loading = false
			a.errMsg = "Could not save your answer: " + msg.Err.Error()
			return a, nil
		}
		return a, a.fetchNext()

	case resultReadyMsg:
		if msg.Err != nil {
			a.completing = false
			a.errMsg = "Could not finish the assessment: " + msg.Err.Error()
			return a, nil
		}
		return a, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: result.New(a.svc, msg.Result)}
		}

	case abandonedMsg:
		return a, func() tea.Msg { return router.PopScreenMsg{} }

	case spinnerTickMsg:
		a.spinnerFrame++
		if a.loading || a.completing {
			return a, a.spinnerTick()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *AssessmentScreen) handleServed(msg questionServedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		a.loading = false
		a.errMsg = "Could not load the next question: " + msg.Err.Error()
		return a, nil
	}
	if msg.Outcome.Done {
		a.loading = false
		a.completing = true
		a.current = nil
		return a, tea.Batch(a.complete(), a.spinnerTick())
	}

	a.loading = false
	a.current = msg.Outcome.Question
	a.servedAt = time.Now()

	if a.current.Type == bank.TypeOpenEnded {
		a.input = components.NewTextInput("Type your answer...", 400)
		return a, a.input.Init()
	}

	labels := make([]string, len(a.current.Options))
	for i, o := range a.current.Options {
		labels[i] = o.Label
	}
	a.choice = components.NewChoice(a.current.Prompt, labels)
	return a, nil
}

func (a *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if a.errMsg != "" {
		// Any key returns home after an error.
		return a, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if a.confirmingExit {
		switch strings.ToLower(msg.String()) {
		case "p":
			// Leave the session IN_PROGRESS; it resumes next time.
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		case "a":
			return a, a.abandon()
		case "n", "esc":
			a.confirmingExit = false
		}
		return a, nil
	}

	if msg.String() == "esc" {
		if a.sess != nil && !a.completing {
			a.confirmingExit = true
		}
		return a, nil
	}

	if a.current == nil {
		return a, nil
	}

	if a.current.Type == bank.TypeOpenEnded {
		if msg.String() == "enter" {
			text := strings.TrimSpace(a.input.Value())
			if text == "" {
				return a, nil
			}
			a.loading = true
			sub := engine.Submission{
				QuestionID:  a.current.ID,
				FreeText:    text,
				TimeSpentMs: time.Since(a.servedAt).Milliseconds(),
			}
			a.current = nil
			return a, tea.Batch(a.submit(sub), a.spinnerTick())
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.choice, cmd = a.choice.Update(msg)
	if a.choice.Submitted {
		opt := a.current.Options[a.choice.Selected]
		a.loading = true
		sub := engine.Submission{
			QuestionID:  a.current.ID,
			OptionID:    opt.ID,
			TimeSpentMs: time.Since(a.servedAt).Milliseconds(),
		}
		a.current = nil
		return a, tea.Batch(a.submit(sub), a.spinnerTick())
	}
	return a, cmd
}
