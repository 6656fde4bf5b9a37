package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over one exam-content generation backend.
// The fallback cascade holds an ordered list of these and calls them
// strictly one at a time.
type Provider interface {
	// Generate issues a single synchronous request and returns the raw
	// model output. When the request carries a Schema, the provider uses
	// its native structured-output mechanism; otherwise Content is the
	// raw text of the reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// Messages is the conversation. Exam generation is single-turn, so
	// this normally holds one user message.
	Messages []Message

	// Schema, when set, asks the provider for JSON conforming to it.
	// The exam cascade uses a permissive schema: strict shaping is the
	// normalizer's job, not the provider's.
	Schema *Schema

	// MaxTokens bounds the response size. Scaled with the requested
	// question count by the caller.
	MaxTokens int

	// Temperature in [0.0, 1.0]. The cascade fixes this at a moderate
	// value; no creativity tuning is exposed.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response should conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "mock-exam".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds a provider's output.
type Response struct {
	// Content is the model output. Raw text when no Schema was set.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
