// Package services – UserService
//
// This file implements UserService, the account registration path. Uniqueness
// is checked with a lookup before the insert; the database backend also
// carries a unique index on username, so a race between two registrations
// still cannot produce duplicates there.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/tilevista/go-store-backend/internal/domain"
	"github.com/tilevista/go-store-backend/internal/store"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UserService registers and looks up accounts.
type UserService struct {
	Store store.Storage
}

// NewUserService constructs a UserService.
func NewUserService(s store.Storage) *UserService {
	return &UserService{Store: s}
}

// Register creates an account. Returns ErrInvalidCredentials for blank input
// and ErrUsernameTaken when the username is already registered.
func (s *UserService) Register(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	tr := otel.Tracer("services/UserService")
	ctx, span := tr.Start(ctx, "Register",
		trace.WithAttributes(attribute.String("user.username", in.Username)),
	)
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.Store.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	return s.Store.CreateUser(ctx, in)
}

// Get fetches one account by ID. Returns ErrUserNotFound when the ID matches
// nothing.
func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	tr := otel.Tracer("services/UserService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.Int("user.id", id)),
	)
	defer span.End()

	u, err := s.Store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
