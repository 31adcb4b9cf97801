// Assistant HTTP handlers.
//
// This file exposes the chat endpoints:
//   - POST /chat             (send a message, receive the assistant reply)
//   - GET  /chat/history     (full transcript for a user)
//   - POST /recommendations  (model-generated tile suggestions)
//
// Visitors without an account chat as the shared default user; the frontend
// may pass a userId once registration is wired in.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tilevista/go-store-backend/internal/ai"
	"github.com/tilevista/go-store-backend/internal/services"
	"github.com/tilevista/go-store-backend/internal/utils"
)

// ChatTurn is one prior turn of client-supplied conversation context.
type ChatTurn struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"Do you sell porcelain tiles?"`
}

// ChatRequest is the JSON payload for sending a chat message.
type ChatRequest struct {
	// UserID selects the conversation; 0 or absent means the shared
	// storefront conversation.
	UserID int `json:"userId" example:"1"`
	// Message is the user's question.
	Message string `json:"message" binding:"required" example:"Which tiles suit a small bathroom?"`
	// ConversationHistory carries earlier turns so the model keeps context
	// without a server-side session.
	ConversationHistory []ChatTurn `json:"conversationHistory"`
}

// RecommendationRequest is the JSON payload for tile suggestions.
type RecommendationRequest struct {
	RoomType    string  `json:"roomType" binding:"required" example:"bathroom"`
	SurfaceType string  `json:"surfaceType" binding:"required" example:"floor"`
	Area        float64 `json:"area" binding:"required" example:"12.5"`
}

// SendChat godoc
// @ID          sendChat
// @Summary     Send a chat message
// @Description Persists the user message, generates an assistant reply, and returns the stored assistant turn.
// @Tags        Chat
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ChatRequest  true  "Chat message"
//
// @Success     200  {object}  domain.ChatMessage
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Assistant failure"
// @Router      /chat [post]
func (h *Handlers) SendChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body: message is required")
		return
	}

	history := make([]ai.Message, 0, len(req.ConversationHistory))
	for _, t := range req.ConversationHistory {
		history = append(history, ai.Message{Role: t.Role, Content: t.Content})
	}

	msg, err := h.chat.Send(c.Request.Context(), req.UserID, req.Message, history)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message must not be empty")
		case errors.Is(err, services.ErrMessageTooLong):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message too long")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeChatFailed, "assistant is unavailable, please try again")
		}
		return
	}
	ok(c, http.StatusOK, msg)
}

// ChatHistory godoc
// @ID          chatHistory
// @Summary     Get chat history
// @Description Returns the full conversation for a user, oldest first. An unknown user yields an empty list.
// @Tags        Chat
// @Produce     json
//
// @Param       userId  query  int  false  "User ID (defaults to the shared conversation)"
// @Param       limit   query  int  false  "Keep only the most recent N turns"
//
// @Success     200  {array}   domain.ChatMessage
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /chat/history [get]
func (h *Handlers) ChatHistory(c *gin.Context) {
	userID := utils.AtoiDefault(c.Query("userId"), services.DefaultUserID)
	limit := utils.AtoiDefault(c.Query("limit"), 0)

	hist, err := h.chat.History(c.Request.Context(), userID, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, hist)
}

// Recommendations godoc
// @ID          recommendations
// @Summary     Get tile recommendations
// @Description Asks the assistant for tile suggestions matching a room, surface, and area.
// @Tags        Chat
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RecommendationRequest  true  "Recommendation inputs"
//
// @Success     200  {object}  services.Recommendation
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Assistant failure"
// @Router      /recommendations [post]
func (h *Handlers) Recommendations(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "roomType, surfaceType, and area are required")
		return
	}

	rec, err := h.recs.Recommend(c.Request.Context(), req.RoomType, req.SurfaceType, req.Area)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage), errors.Is(err, services.ErrInvalidDimensions):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeChatFailed, "assistant is unavailable, please try again")
		}
		return
	}
	ok(c, http.StatusOK, rec)
}
