package engine

import "errors"

var (
	// ErrNotFound covers both a missing session and an ownership
	// mismatch; callers cannot distinguish the two.
	ErrNotFound = errors.New("engine: not found")

	// ErrInvalidState is returned for mutating operations against a
	// session that is no longer IN_PROGRESS.
	ErrInvalidState = errors.New("engine: invalid session state")

	// ErrDuplicateAnswer is returned when a question has already been
	// answered in the session. Duplicate submissions are rejected, not
	// silently overwritten.
	ErrDuplicateAnswer = errors.New("engine: question already answered")

	// ErrCorruptResult is returned when a session is marked COMPLETED
	// but no result row exists for it.
	ErrCorruptResult = errors.New("engine: completed session has no result")
)
