package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tilevista/go-store-backend/internal/config"
	"github.com/tilevista/go-store-backend/internal/domain"
)

// TestBackendEquivalence runs one fixed operation sequence against both
// backends and requires observationally identical results: same field
// values, same filter outputs, same defaulting. Timestamps and nothing else
// may differ.
func TestBackendEquivalence(t *testing.T) {
	ctx := context.Background()

	mem := Storage(NewMemStorage())
	gs, err := NewGormStore(newStoreDB(t))
	if err != nil {
		t.Fatalf("NewGormStore: %v", err)
	}
	durable := Storage(gs)

	run := func(s Storage) (products []domain.Product, order *domain.Order, msgs []domain.ChatMessage) {
		t.Helper()

		if _, err := s.CreateUser(ctx, domain.NewUser{Username: "kate", Password: "pw"}); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		for _, content := range []string{"do you stock subway tiles?", "Yes, the Metro Subway series."} {
			if _, err := s.CreateChatMessage(ctx, domain.NewChatMessage{
				UserID: 1, Content: content, IsUserMessage: content[0] == 'd',
			}); err != nil {
				t.Fatalf("CreateChatMessage: %v", err)
			}
		}
		o, err := s.CreateOrder(ctx, domain.NewOrder{
			Name: "Jo Smith", Email: "jo@example.com", Phone: "12345678",
			ProductType: "tiles", Message: "Please send a quote for 20 sqm",
		})
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}

		ps, err := s.GetFeaturedProductsByCategory(ctx, domain.CategoryTile)
		if err != nil {
			t.Fatalf("GetFeaturedProductsByCategory: %v", err)
		}
		ms, err := s.GetChatMessagesByUserID(ctx, 1)
		if err != nil {
			t.Fatalf("GetChatMessagesByUserID: %v", err)
		}
		return ps, o, ms
	}

	memProducts, memOrder, memMsgs := run(mem)
	dbProducts, dbOrder, dbMsgs := run(durable)

	if len(memProducts) != len(dbProducts) {
		t.Fatalf("featured tile counts differ: mem=%d durable=%d", len(memProducts), len(dbProducts))
	}
	for i := range memProducts {
		a, b := memProducts[i], dbProducts[i]
		if a.ID != b.ID || a.Name != b.Name || a.Category != b.Category ||
			a.Price != b.Price || a.Unit != b.Unit || a.IsFeatured != b.IsFeatured {
			t.Fatalf("product %d differs between backends:\nmem:     %+v\ndurable: %+v", i, a, b)
		}
	}

	if memOrder.ID != dbOrder.ID || memOrder.Status != dbOrder.Status ||
		memOrder.Name != dbOrder.Name || memOrder.Email != dbOrder.Email {
		t.Fatalf("orders differ between backends:\nmem:     %+v\ndurable: %+v", memOrder, dbOrder)
	}

	if len(memMsgs) != len(dbMsgs) {
		t.Fatalf("chat log lengths differ: mem=%d durable=%d", len(memMsgs), len(dbMsgs))
	}
	for i := range memMsgs {
		a, b := memMsgs[i], dbMsgs[i]
		if a.ID != b.ID || a.UserID != b.UserID || a.Content != b.Content || a.IsUserMessage != b.IsUserMessage {
			t.Fatalf("chat message %d differs between backends:\nmem:     %+v\ndurable: %+v", i, a, b)
		}
	}
}

func TestNew_SelectsMemoryWithoutDatabaseTarget(t *testing.T) {
	s, err := New(config.Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := s.(*MemStorage); !ok {
		t.Fatalf("expected *MemStorage without database config, got %T", s)
	}
}

func TestNew_SelectsSQLiteWhenPathConfigured(t *testing.T) {
	cfg := config.Config{DBPath: filepath.Join(t.TempDir(), "store.db")}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	gs, ok := s.(*GormStore)
	if !ok {
		t.Fatalf("expected *GormStore with DB_PATH set, got %T", s)
	}

	all, err := gs.GetAllProducts(context.Background())
	if err != nil {
		t.Fatalf("GetAllProducts: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("fresh sqlite store has %d products; want 12", len(all))
	}
}

// End-to-end scenario from the product side: seeded catalog counts, then an
// order lifecycle, on both backends.
func TestEndToEndScenario_BothBackends(t *testing.T) {
	ctx := context.Background()

	backends := map[string]Storage{"memory": NewMemStorage()}
	if gs, err := NewGormStore(newStoreDB(t)); err == nil {
		backends["durable"] = gs
	} else {
		t.Fatalf("NewGormStore: %v", err)
	}

	for name, s := range backends {
		t.Run(name, func(t *testing.T) {
			tiles, err := s.GetProductsByCategory(ctx, "tile")
			if err != nil || len(tiles) != 6 {
				t.Fatalf("tiles = %d (err %v); want 6", len(tiles), err)
			}
			feat, err := s.GetFeaturedProductsByCategory(ctx, "tile")
			if err != nil || len(feat) != 4 {
				t.Fatalf("featured tiles = %d (err %v); want 4", len(feat), err)
			}

			o, err := s.CreateOrder(ctx, domain.NewOrder{
				Name: "Jo Smith", Email: "jo@example.com", Phone: "12345678",
				ProductType: "tiles", Message: "Please send a quote for 20 sqm",
			})
			if err != nil {
				t.Fatalf("CreateOrder: %v", err)
			}
			got, err := s.GetOrderByID(ctx, o.ID)
			if err != nil {
				t.Fatalf("GetOrderByID: %v", err)
			}
			if got.Status != "pending" {
				t.Fatalf("order status = %q; want pending", got.Status)
			}
			if got.Timestamp.IsZero() {
				t.Fatalf("order timestamp missing")
			}
		})
	}
}
