// Handler wiring.
//
// This file defines the service contracts consumed by the HTTP layer and the
// Handlers aggregate that binds them. Handlers are transport-thin: they
// validate input, call application services, and translate results into HTTP
// responses. Business rules live in the services package.
package handlers

import (
	"context"

	"github.com/tilevista/go-store-backend/internal/ai"
	"github.com/tilevista/go-store-backend/internal/domain"
	"github.com/tilevista/go-store-backend/internal/http/middleware"
	"github.com/tilevista/go-store-backend/internal/services"
)

// ProductService defines catalog read operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProductService interface {
	// List returns catalog entries matching the filter, ordered by ID.
	List(ctx context.Context, f services.ProductFilter) ([]domain.Product, error)
	// Get fetches one catalog entry by ID.
	Get(ctx context.Context, id int) (*domain.Product, error)
}

// ChatService defines assistant conversation operations.
type ChatService interface {
	// Send persists the user turn, generates a reply, and persists it.
	// history is optional prior context forwarded to the model.
	Send(ctx context.Context, userID int, message string, history []ai.Message) (*domain.ChatMessage, error)
	// History returns the conversation for a user, oldest first. A positive
	// limit keeps only the most recent turns.
	History(ctx context.Context, userID, limit int) ([]domain.ChatMessage, error)
}

// RecommendationService defines model-backed tile suggestions.
type RecommendationService interface {
	// Recommend generates suggestions for a room/surface/area triple.
	Recommend(ctx context.Context, roomType, surfaceType string, area float64) (*services.Recommendation, error)
}

// CalculatorService defines tile quantity estimation.
type CalculatorService interface {
	// Estimate computes tile counts for a room in meters.
	Estimate(ctx context.Context, length, width float64, tileSize string) (*services.TileEstimate, error)
}

// OrderService defines quote request intake operations.
type OrderService interface {
	// Create validates and persists a quote request.
	Create(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
	// Get fetches one order by ID.
	Get(ctx context.Context, id int) (*domain.Order, error)
}

// UserService defines account registration operations.
type UserService interface {
	// Register creates an account with a unique username.
	Register(ctx context.Context, in domain.NewUser) (*domain.User, error)
}

// Handlers groups the HTTP endpoints for the storefront API. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	products ProductService
	chat     ChatService
	recs     RecommendationService
	calc     CalculatorService
	orders   OrderService
	users    UserService

	// replays remembers which order each Idempotency-Key produced.
	replays *middleware.ReplayCache
}

// New constructs a Handlers instance bound to the given services. The replay
// cache may be nil, in which case POST /orders ignores Idempotency-Key.
func New(
	products ProductService,
	chat ChatService,
	recs RecommendationService,
	calc CalculatorService,
	orders OrderService,
	users UserService,
	replays *middleware.ReplayCache,
) *Handlers {
	return &Handlers{
		products: products,
		chat:     chat,
		recs:     recs,
		calc:     calc,
		orders:   orders,
		users:    users,
		replays:  replays,
	}
}
