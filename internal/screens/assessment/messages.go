package assessment

import (
	"time"

	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/store"
)

// sessionReadyMsg is sent when the session has been started or resumed.
type sessionReadyMsg struct {
	Session *store.SessionRecord
	Err     error
}

// questionServedMsg is sent when the next question (or the terminal
// signal) arrives.
type questionServedMsg struct {
	Outcome *engine.NextOutcome
	Err     error
}

// answerSavedMsg is sent when an answer has been persisted.
type answerSavedMsg struct {
	Err error
}

// resultReadyMsg is sent when completion has produced a result.
type resultReadyMsg struct {
	Result *store.ResultRecord
	Err    error
}

// abandonedMsg is sent when the session has been marked abandoned.
type abandonedMsg struct {
	Err error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
