package store

import (
	"context"
	"sync"
	"time"

	"github.com/tilevista/go-store-backend/internal/domain"
)

// MemStorage keeps all records in process-local maps. IDs are assigned from
// per-entity counters; listings iterate in insertion order. A single mutex
// guards every operation so an ID increment and its insertion are one atomic
// unit.
//
// The collections are owned exclusively by this instance; nothing outside
// the package can mutate them.
type MemStorage struct {
	mu sync.RWMutex

	users        map[int]domain.User
	usernames    map[string]int // username -> user ID
	products     map[int]domain.Product
	productIDs   []int
	chatMessages map[int]domain.ChatMessage
	chatIDs      []int
	orders       map[int]domain.Order
	orderIDs     []int

	nextUserID    int
	nextProductID int
	nextChatID    int
	nextOrderID   int
}

var _ Storage = (*MemStorage)(nil)

// NewMemStorage initializes an empty in-memory store and seeds the sample
// catalog before any caller can interact with it.
func NewMemStorage() *MemStorage {
	m := &MemStorage{
		users:         make(map[int]domain.User),
		usernames:     make(map[string]int),
		products:      make(map[int]domain.Product),
		chatMessages:  make(map[int]domain.ChatMessage),
		orders:        make(map[int]domain.Order),
		nextUserID:    1,
		nextProductID: 1,
		nextChatID:    1,
		nextOrderID:   1,
	}
	m.seedProducts()
	return m
}

// seedProducts loads the fixed catalog. Runs once from the constructor while
// no other goroutine can hold a reference yet.
func (m *MemStorage) seedProducts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, in := range domain.SeedCatalog() {
		id := m.nextProductID
		m.nextProductID++
		m.products[id] = domain.Product{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Category:    in.Category,
			ImageURL:    in.ImageURL,
			Price:       in.Price,
			Unit:        in.Unit,
			IsFeatured:  in.IsFeatured,
		}
		m.productIDs = append(m.productIDs, id)
	}
}

// GetUser returns the user with the given ID or ErrNotFound.
func (m *MemStorage) GetUser(_ context.Context, id int) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// GetUserByUsername returns the user with the given username or ErrNotFound.
// At most one match exists; usernames are unique.
func (m *MemStorage) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.usernames[username]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.users[id]
	return &u, nil
}

// CreateUser assigns the next user ID and stores the record.
func (m *MemStorage) CreateUser(_ context.Context, in domain.NewUser) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextUserID
	m.nextUserID++
	u := domain.User{ID: id, Username: in.Username, Password: in.Password}
	m.users[id] = u
	m.usernames[u.Username] = id
	return &u, nil
}

// GetAllProducts returns the whole catalog in insertion order.
func (m *MemStorage) GetAllProducts(_ context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filterProducts(func(domain.Product) bool { return true }), nil
}

// GetProductByID returns the product with the given ID or ErrNotFound.
func (m *MemStorage) GetProductByID(_ context.Context, id int) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// GetProductsByCategory returns all products in the category, insertion
// order. Unknown categories yield an empty slice, not an error.
func (m *MemStorage) GetProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filterProducts(func(p domain.Product) bool { return p.Category == category }), nil
}

// GetFeaturedProducts returns all featured products, insertion order.
func (m *MemStorage) GetFeaturedProducts(_ context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filterProducts(func(p domain.Product) bool { return p.IsFeatured }), nil
}

// GetFeaturedProductsByCategory returns products matching both predicates.
func (m *MemStorage) GetFeaturedProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filterProducts(func(p domain.Product) bool {
		return p.Category == category && p.IsFeatured
	}), nil
}

// filterProducts walks the catalog in insertion order. Callers hold the lock.
func (m *MemStorage) filterProducts(keep func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(m.productIDs))
	for _, id := range m.productIDs {
		if p := m.products[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// GetChatMessagesByUserID returns the user's conversation log in insertion
// order. An unknown user yields an empty slice.
func (m *MemStorage) GetChatMessagesByUserID(_ context.Context, userID int) ([]domain.ChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ChatMessage, 0, len(m.chatIDs))
	for _, id := range m.chatIDs {
		if msg := m.chatMessages[id]; msg.UserID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}

// CreateChatMessage assigns the next message ID and a server-side timestamp,
// then stores the record.
func (m *MemStorage) CreateChatMessage(_ context.Context, in domain.NewChatMessage) (*domain.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextChatID
	m.nextChatID++
	msg := domain.ChatMessage{
		ID:            id,
		UserID:        in.UserID,
		Content:       in.Content,
		IsUserMessage: in.IsUserMessage,
		Timestamp:     time.Now().UTC(),
	}
	m.chatMessages[id] = msg
	m.chatIDs = append(m.chatIDs, id)
	return &msg, nil
}

// CreateOrder assigns the next order ID and a server-side timestamp. Status
// is always "pending" at creation; the payload type carries no status field,
// so caller-supplied values cannot leak in.
func (m *MemStorage) CreateOrder(_ context.Context, in domain.NewOrder) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextOrderID
	m.nextOrderID++
	o := domain.Order{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		ProductType: in.ProductType,
		Message:     in.Message,
		Status:      domain.OrderStatusPending,
		Timestamp:   time.Now().UTC(),
	}
	m.orders[id] = o
	m.orderIDs = append(m.orderIDs, id)
	return &o, nil
}

// GetOrderByID returns the order with the given ID or ErrNotFound.
func (m *MemStorage) GetOrderByID(_ context.Context, id int) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}
