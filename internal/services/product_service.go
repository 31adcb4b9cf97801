// Package services – ProductService
//
// This file implements ProductService, the read side of the catalog. The
// catalog is seeded at storage startup and immutable afterwards, so the
// service only lists and fetches. Listing dispatches to exactly one storage
// query depending on which filters the caller supplied; the featured and
// category filters always intersect rather than union.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include the filter parameters where applicable.
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

// ProductFilter selects a slice of the catalog. Zero values mean "no
// constraint": an empty Category matches every category, Featured=false
// returns featured and non-featured entries alike.
type ProductFilter struct {
	Category string
	Featured bool
}

// ProductService answers catalog queries against the configured storage
// backend.
type ProductService struct {
	Store store.Storage
}

// NewProductService constructs a ProductService.
func NewProductService(s store.Storage) *ProductService {
	return &ProductService{Store: s}
}

// List returns catalog entries matching the filter, ordered by ascending ID.
// Unknown categories are not an error; they simply match nothing.
func (s *ProductService) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	tr := otel.Tracer("services/ProductService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("filter.category", f.Category),
			attribute.Bool("filter.featured", f.Featured),
		),
	)
	defer span.End()

	category := strings.TrimSpace(f.Category)
	switch {
	case f.Featured && category != "":
		return s.Store.GetFeaturedProductsByCategory(ctx, category)
	case f.Featured:
		return s.Store.GetFeaturedProducts(ctx)
	case category != "":
		return s.Store.GetProductsByCategory(ctx, category)
	default:
		return s.Store.GetAllProducts(ctx)
	}
}

// Get fetches one catalog entry by ID. Returns ErrProductNotFound when the ID
// matches nothing.
func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	tr := otel.Tracer("services/ProductService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.Int("product.id", id)),
	)
	defer span.End()

	p, err := s.Store.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}
