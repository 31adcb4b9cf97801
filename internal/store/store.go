// Package store implements the persistence layer behind the storefront: one
// Storage contract with two interchangeable backends. The in-memory backend
// serves development and test runs with zero external dependencies; the
// GORM-backed backend persists to Postgres (or a SQLite file) for real
// deployments. Callers never see which one is active — both must produce
// identical observable behavior for identical operation sequences.
package store

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tilevista/go-store-backend/internal/config"
	"github.com/tilevista/go-store-backend/internal/domain"
)

// ErrNotFound is returned by every lookup that matches nothing. Callers must
// branch with errors.Is rather than treating it as a failure.
var ErrNotFound = errors.New("record not found")

// Storage is the shared contract both backends implement. Lookups return
// ErrNotFound for missing records; creates assign IDs and creation-time
// defaults (timestamps, order status) and return the fully populated record.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)

	// Products
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]domain.Product, error)
	GetFeaturedProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)

	// Chat
	GetChatMessagesByUserID(ctx context.Context, userID int) ([]domain.ChatMessage, error)
	CreateChatMessage(ctx context.Context, in domain.NewChatMessage) (*domain.ChatMessage, error)

	// Orders
	CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id int) (*domain.Order, error)
}

// New selects and initializes exactly one backend for the lifetime of the
// process: Postgres when DATABASE_URL is set, a SQLite file when DB_PATH is
// set, and the self-seeding in-memory store otherwise. The choice is made
// once; there is no runtime fallback or switching.
func New(cfg config.Config) (Storage, error) {
	switch {
	case cfg.DatabaseURL != "":
		db, err := OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("storage: using postgres backend")
		return NewGormStore(db)
	case cfg.DBPath != "":
		db, err := OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.DBPath).Msg("storage: using sqlite backend")
		return NewGormStore(db)
	default:
		log.Info().Msg("storage: no database configured, using in-memory backend")
		return NewMemStorage(), nil
	}
}
