package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrProviderUnavailable indicates the provider is down, unreachable, or
// returned a non-2xx response. StatusCode is 0 for transport-level errors.
type ErrProviderUnavailable struct {
	StatusCode int
	Model      string
	Err        error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider unavailable (model %s, status %d): %v", e.Model, e.StatusCode, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable (model %s): %v", e.Model, e.Err)
	}
	return fmt.Sprintf("provider unavailable (model %s)", e.Model)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned 429.
type ErrRateLimit struct {
	Model      string
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited by %s (retry after %s): %v", e.Model, e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema or contained no usable text.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated at the
// MaxTokens limit. Truncated exam JSON is unusable wholesale.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}
