package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/tilevista/go-store-backend/internal/domain"
)

func TestMemStorage_SeedsCatalogOnConstruction(t *testing.T) {
	m := NewMemStorage()
	ctx := context.Background()

	all, err := m.GetAllProducts(ctx)
	if err != nil {
		t.Fatalf("GetAllProducts: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("seeded %d products; want 12", len(all))
	}

	tiles, err := m.GetProductsByCategory(ctx, domain.CategoryTile)
	if err != nil {
		t.Fatalf("GetProductsByCategory: %v", err)
	}
	if len(tiles) != 6 {
		t.Fatalf("got %d tiles; want 6", len(tiles))
	}

	featTiles, err := m.GetFeaturedProductsByCategory(ctx, domain.CategoryTile)
	if err != nil {
		t.Fatalf("GetFeaturedProductsByCategory: %v", err)
	}
	if len(featTiles) != 4 {
		t.Fatalf("got %d featured tiles; want 4", len(featTiles))
	}

	featSanitary, err := m.GetFeaturedProductsByCategory(ctx, domain.CategorySanitary)
	if err != nil {
		t.Fatalf("GetFeaturedProductsByCategory: %v", err)
	}
	if len(featSanitary) != 3 {
		t.Fatalf("got %d featured sanitary; want 3", len(featSanitary))
	}
}

func TestMemStorage_ProductFilters_AreConsistent(t *testing.T) {
	m := NewMemStorage()
	ctx := context.Background()

	featured, _ := m.GetFeaturedProducts(ctx)
	for _, cat := range []string{domain.CategoryTile, domain.CategorySanitary} {
		byCat, _ := m.GetProductsByCategory(ctx, cat)
		both, _ := m.GetFeaturedProductsByCategory(ctx, cat)

		// Combined filter must be a subset of each single filter.
		inCat := make(map[int]bool, len(byCat))
		for _, p := range byCat {
			inCat[p.ID] = true
		}
		inFeat := make(map[int]bool, len(featured))
		for _, p := range featured {
			inFeat[p.ID] = true
		}
		for _, p := range both {
			if !inCat[p.ID] || !inFeat[p.ID] {
				t.Fatalf("product %d in combined filter but not in both single filters", p.ID)
			}
			if p.Category != cat || !p.IsFeatured {
				t.Fatalf("combined filter leaked product %+v", p)
			}
		}

		// And every featured product of the category must appear.
		for _, p := range byCat {
			if p.IsFeatured && !containsID(both, p.ID) {
				t.Fatalf("featured %s product %d missing from combined filter", cat, p.ID)
			}
		}
	}

	unknown, _ := m.GetProductsByCategory(ctx, "carpet")
	if len(unknown) != 0 {
		t.Fatalf("unknown category returned %d products; want empty", len(unknown))
	}
}

func containsID(ps []domain.Product, id int) bool {
	for _, p := range ps {
		if p.ID == id {
			return true
		}
	}
	return false
}

func TestMemStorage_NotFoundSentinel(t *testing.T) {
	m := NewMemStorage()
	ctx := context.Background()

	if _, err := m.GetUser(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetUser(missing) = %v; want ErrNotFound", err)
	}
	if _, err := m.GetUserByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetUserByUsername(missing) = %v; want ErrNotFound", err)
	}
	if _, err := m.GetProductByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetProductByID(missing) = %v; want ErrNotFound", err)
	}
	if _, err := m.GetOrderByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetOrderByID(missing) = %v; want ErrNotFound", err)
	}
}

func TestMemStorage_IDMonotonicity(t *testing.T) {
	m := NewMemStorage()
	ctx := context.Background()

	prev := 0
	for i := 0; i < 5; i++ {
		o, err := m.CreateOrder(ctx, domain.NewOrder{
			Name: "Jo Smith", Email: "jo@example.com", Phone: "12345678",
			ProductType: "tiles", Message: "Please send a quote for 20 sqm",
		})
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		if o.ID <= prev {
			t.Fatalf("order id %d not strictly increasing after %d", o.ID, prev)
		}
		prev = o.ID
	}
}

func TestMemStorage_ConcurrentCreates_NoDuplicateIDs(t *testing.T) {
	m := NewMemStorage()
	ctx := context.Background()

	const n = 64
	ids := make(chan int, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			msg, err := m.CreateChatMessage(ctx, domain.NewChatMessage{
				UserID: 1, Content: "hi", IsUserMessage: true,
			})
			if err != nil {
				t.Errorf("CreateChatMessage: %v", err)
				return
			}
			ids <- msg.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate chat message id %d assigned concurrently", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("assigned %d distinct ids; want %d", len(seen), n)
	}
}

func TestMemStorage_OrderDefaults(t *testing.T) {
	m := NewMemStorage()
	ctx := context.Background()

	o, err := m.CreateOrder(ctx, domain.NewOrder{
		Name: "Jo Smith", Email: "jo@example.com", Phone: "12345678",
		ProductType: "tiles", Message: "Please send a quote for 20 sqm",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if o.Status != domain.OrderStatusPending {
		t.Fatalf("new order status = %q; want %q", o.Status, domain.OrderStatusPending)
	}
	if o.Timestamp.IsZero() {
		t.Fatalf("new order timestamp not assigned")
	}

	got, err := m.GetOrderByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetOrderByID: %v", err)
	}
	if got.Status != domain.OrderStatusPending || got.Timestamp.IsZero() {
		t.Fatalf("stored order lost defaults: %+v", got)
	}
}

func TestMemStorage_ChatLog_InsertionOrderPerUser(t *testing.T) {
	m := NewMemStorage()
	ctx := context.Background()

	for i, content := range []string{"hello", "reply", "thanks"} {
		_, err := m.CreateChatMessage(ctx, domain.NewChatMessage{
			UserID:        1,
			Content:       content,
			IsUserMessage: i%2 == 0,
		})
		if err != nil {
			t.Fatalf("CreateChatMessage: %v", err)
		}
	}
	// Another user's traffic must not bleed in.
	if _, err := m.CreateChatMessage(ctx, domain.NewChatMessage{UserID: 2, Content: "other"}); err != nil {
		t.Fatalf("CreateChatMessage: %v", err)
	}

	log, err := m.GetChatMessagesByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("GetChatMessagesByUserID: %v", err)
	}
	if len(log) != 3 {
		t.Fatalf("got %d messages for user 1; want 3", len(log))
	}
	for i, want := range []string{"hello", "reply", "thanks"} {
		if log[i].Content != want {
			t.Fatalf("message %d = %q; want %q (insertion order broken)", i, log[i].Content, want)
		}
		if log[i].Timestamp.IsZero() {
			t.Fatalf("message %d has no timestamp", i)
		}
	}
}

func TestMemStorage_Users(t *testing.T) {
	m := NewMemStorage()
	ctx := context.Background()

	u, err := m.CreateUser(ctx, domain.NewUser{Username: "anna", Password: "secret"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID != 1 {
		t.Fatalf("first user id = %d; want 1", u.ID)
	}

	byName, err := m.GetUserByUsername(ctx, "anna")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	byID, err := m.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if byName.ID != byID.ID || byName.Username != "anna" {
		t.Fatalf("lookups disagree: %+v vs %+v", byName, byID)
	}
}
