// Package ai provides the assistant integration: a narrow Responder contract
// plus a client for any OpenAI-compatible chat-completions endpoint. The
// model service is an external collaborator; this package only shapes
// requests and extracts the reply text.
package ai

import "context"

// Conversation roles accepted by the chat-completions API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of conversation context passed to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Responder produces an assistant reply for a system prompt and a
// conversation ending in the latest user turn. Implementations must honor
// the context for cancellation.
type Responder interface {
	Reply(ctx context.Context, systemPrompt string, conversation []Message) (string, error)
}
