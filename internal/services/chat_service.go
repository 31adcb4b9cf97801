// Package services – ChatService
//
// This file implements ChatService, which owns the assistant conversation
// lifecycle. Each exchange persists two rows in the chat log: the human turn
// first, then the assistant turn produced by the configured ai.Responder.
// The user turn is written before the model is called, so a model outage
// still leaves the question in the transcript; the caller sees the error and
// may retry.
//
// Anonymous storefront visitors share one conversation: requests without an
// account fall back to DefaultUserID.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include the user identifier.
package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tilevista/go-store-backend/internal/ai"
	"github.com/tilevista/go-store-backend/internal/domain"
	"github.com/tilevista/go-store-backend/internal/store"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultUserID is the shared conversation owner for visitors who have not
// registered an account.
const DefaultUserID = 1

// ChatService coordinates chat persistence and assistant replies.
type ChatService struct {
	Store store.Storage
	AI    ai.Responder

	// MaxMessageRunes caps accepted prompts by rune length. Zero disables
	// the check.
	MaxMessageRunes int
}

// NewChatService constructs a ChatService with the default prompt cap.
func NewChatService(s store.Storage, responder ai.Responder) *ChatService {
	return &ChatService{
		Store:           s,
		AI:              responder,
		MaxMessageRunes: 4000,
	}
}

// Send validates the message, persists the user turn, asks the assistant for
// a reply, and persists the assistant turn. It returns the assistant message
// as stored. A Responder failure is returned after the user turn has already
// been written.
//
// history is optional client-supplied context from earlier turns; it is
// forwarded to the model between the system prompt and the new message.
// Turns with unknown roles or empty content are dropped.
func (s *ChatService) Send(ctx context.Context, userID int, message string, history []ai.Message) (*domain.ChatMessage, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "Send",
		trace.WithAttributes(attribute.Int("user.id", userID)),
	)
	defer span.End()

	if userID <= 0 {
		userID = DefaultUserID
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if s.MaxMessageRunes > 0 && utf8.RuneCountInString(message) > s.MaxMessageRunes {
		return nil, ErrMessageTooLong
	}

	if _, err := s.Store.CreateChatMessage(ctx, domain.NewChatMessage{
		UserID:        userID,
		Content:       message,
		IsUserMessage: true,
	}); err != nil {
		return nil, fmt.Errorf("persist user message: %w", err)
	}

	conv := make([]ai.Message, 0, len(history)+1)
	for _, m := range history {
		if m.Role != ai.RoleUser && m.Role != ai.RoleAssistant {
			continue
		}
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		conv = append(conv, m)
	}
	conv = append(conv, ai.Message{Role: ai.RoleUser, Content: message})

	reply, err := s.AI.Reply(ctx, ai.SystemPromptChat, conv)
	if err != nil {
		return nil, fmt.Errorf("assistant reply: %w", err)
	}

	assistant, err := s.Store.CreateChatMessage(ctx, domain.NewChatMessage{
		UserID:        userID,
		Content:       reply,
		IsUserMessage: false,
	})
	if err != nil {
		return nil, fmt.Errorf("persist assistant message: %w", err)
	}
	return assistant, nil
}

// History returns the conversation for a user in insertion order, oldest
// first. An unknown user yields an empty transcript, not an error. A positive
// limit keeps only the most recent turns.
func (s *ChatService) History(ctx context.Context, userID, limit int) ([]domain.ChatMessage, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "History",
		trace.WithAttributes(
			attribute.Int("user.id", userID),
			attribute.Int("limit", limit),
		),
	)
	defer span.End()

	if userID <= 0 {
		userID = DefaultUserID
	}
	msgs, err := s.Store.GetChatMessagesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}
