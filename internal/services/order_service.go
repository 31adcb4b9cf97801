// Package services – OrderService
//
// This file implements OrderService, the quote-request intake. Orders are
// contact forms, not checkout: validation is about reachability (a real name,
// a plausible email and phone) rather than payment. Status and timestamp are
// assigned by storage, never taken from the caller.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tilevista/go-store-backend/internal/domain"
	"github.com/tilevista/go-store-backend/internal/store"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// emailRE accepts the pragmatic local@domain.tld shape. Full RFC 5322
// validation is out of scope for a quote form.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phoneRE keeps digits, spaces, and common separators.
var phoneRE = regexp.MustCompile(`^\+?[0-9 ()\-]{8,32}$`)

// OrderService validates and persists quote requests.
type OrderService struct {
	Store store.Storage
}

// NewOrderService constructs an OrderService.
func NewOrderService(s store.Storage) *OrderService {
	return &OrderService{Store: s}
}

// Create validates the quote request and persists it. The stored order comes
// back with its assigned ID, "pending" status, and creation timestamp.
// Validation failures wrap ErrInvalidOrder and name the offending field.
func (s *OrderService) Create(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	tr := otel.Tracer("services/OrderService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("order.product_type", in.ProductType)),
	)
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ProductType = strings.TrimSpace(in.ProductType)
	in.Message = strings.TrimSpace(in.Message)

	if err := validateOrder(in); err != nil {
		return nil, err
	}
	return s.Store.CreateOrder(ctx, in)
}

// Get fetches one order by ID. Returns ErrOrderNotFound when the ID matches
// nothing.
func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	tr := otel.Tracer("services/OrderService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.Int("order.id", id)),
	)
	defer span.End()

	o, err := s.Store.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// validateOrder applies the intake field rules to an already-trimmed payload.
func validateOrder(in domain.NewOrder) error {
	switch {
	case utf8.RuneCountInString(in.Name) < 2:
		return fmt.Errorf("%w: name must be at least 2 characters", ErrInvalidOrder)
	case !emailRE.MatchString(in.Email):
		return fmt.Errorf("%w: email is not valid", ErrInvalidOrder)
	case !phoneRE.MatchString(in.Phone):
		return fmt.Errorf("%w: phone must be at least 8 digits", ErrInvalidOrder)
	case in.ProductType == "":
		return fmt.Errorf("%w: product type is required", ErrInvalidOrder)
	case utf8.RuneCountInString(in.Message) < 10:
		return fmt.Errorf("%w: message must be at least 10 characters", ErrInvalidOrder)
	}
	return nil
}
