package attempt

import "errors"

// Lifecycle errors surfaced to callers. Unlike provider failures, which
// the generation cascade absorbs, each of these is a distinct,
// user-actionable failure.
var (
	// ErrAuthRequired means no caller identity was supplied.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound means no attempt exists with the given id.
	ErrNotFound = errors.New("attempt not found")

	// ErrNotAuthorized means the attempt exists but belongs to another
	// owner. Existence is checked before ownership.
	ErrNotAuthorized = errors.New("attempt belongs to another user")

	// ErrAlreadySubmitted means the attempt was already graded; the
	// open → submitted transition happens exactly once.
	ErrAlreadySubmitted = errors.New("attempt already submitted")

	// ErrNoQuestions means attempt creation was called with an empty
	// question set.
	ErrNoQuestions = errors.New("attempt requires at least one question")
)
