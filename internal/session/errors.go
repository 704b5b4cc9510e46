package session

import "errors"

var (
	// ErrNotActive is returned by operations that need a running session.
	ErrNotActive = errors.New("session: no active session")

	// ErrFeedbackPending is returned by Settle while the feedback animation
	// is still running.
	ErrFeedbackPending = errors.New("session: feedback still playing")

	// ErrPromptPending is returned by Settle while a prompt is open. The
	// advance happens when the prompt is declined.
	ErrPromptPending = errors.New("session: prompt pending")

	// ErrNothingToSettle is returned by Settle when no answer was confirmed.
	ErrNothingToSettle = errors.New("session: no confirmed answer to settle")

	// ErrUnknownPrompt is returned by Resolve for a prompt that is not
	// pending or an option it does not offer.
	ErrUnknownPrompt = errors.New("session: unknown prompt")
)
