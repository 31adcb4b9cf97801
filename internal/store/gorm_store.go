package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tilevista/go-store-backend/internal/domain"
)

// GormStore implements Storage on top of a relational database via GORM.
// It holds no mutable in-process state; ID assignment is delegated to the
// database's auto-increment sequences.
type GormStore struct {
	db *gorm.DB
}

var _ Storage = (*GormStore)(nil)

// NewGormStore migrates the schema and runs the idempotent seed check. The
// seed inserts the sample catalog only into an empty products table; on
// restart it leaves existing rows alone and logs how many were found.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.ChatMessage{},
		&domain.Order{},
	); err != nil {
		return nil, err
	}
	s := &GormStore{db: db}
	if err := s.seedProducts(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// seedProducts is the one correctness-critical piece of startup: a guarded
// count-then-insert inside a transaction, so restarting the process never
// duplicates the catalog.
func (s *GormStore) seedProducts(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Info().Int64("count", count).Msg("products already seeded, skipping")
			return nil
		}

		seed := domain.SeedCatalog()
		rows := make([]domain.Product, 0, len(seed))
		for _, in := range seed {
			rows = append(rows, domain.Product{
				Name:        in.Name,
				Description: in.Description,
				Category:    in.Category,
				ImageURL:    in.ImageURL,
				Price:       in.Price,
				Unit:        in.Unit,
				IsFeatured:  in.IsFeatured,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		log.Info().Int("count", len(rows)).Msg("seeded product catalog")
		return nil
	})
}

// GetUser fetches a user by ID.
func (s *GormStore) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// GetUserByUsername fetches a user by unique username.
func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// CreateUser inserts a user row; the database assigns the ID.
func (s *GormStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	u := domain.User{Username: in.Username, Password: in.Password}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAllProducts returns the whole catalog ordered by ID (insertion order;
// products are never deleted).
func (s *GormStore) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.listProducts(ctx)
}

// GetProductByID fetches a product by ID.
func (s *GormStore) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	var p domain.Product
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

// GetProductsByCategory returns products with the given category.
func (s *GormStore) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.listProducts(ctx, "category = ?", category)
}

// GetFeaturedProducts returns products with the featured flag set.
func (s *GormStore) GetFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.listProducts(ctx, "is_featured = ?", true)
}

// GetFeaturedProductsByCategory conjoins both predicates, matching the
// in-memory backend's combined filter exactly.
func (s *GormStore) GetFeaturedProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.listProducts(ctx, "category = ? AND is_featured = ?", category, true)
}

func (s *GormStore) listProducts(ctx context.Context, conds ...any) ([]domain.Product, error) {
	out := make([]domain.Product, 0)
	q := s.db.WithContext(ctx).Order("id ASC")
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetChatMessagesByUserID returns the user's conversation log ordered by ID.
func (s *GormStore) GetChatMessagesByUserID(ctx context.Context, userID int) ([]domain.ChatMessage, error) {
	out := make([]domain.ChatMessage, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateChatMessage inserts one conversation turn with a server-side
// timestamp.
func (s *GormStore) CreateChatMessage(ctx context.Context, in domain.NewChatMessage) (*domain.ChatMessage, error) {
	msg := domain.ChatMessage{
		UserID:        in.UserID,
		Content:       in.Content,
		IsUserMessage: in.IsUserMessage,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// CreateOrder inserts a quote request. Status is forced to "pending" and the
// timestamp is server-assigned; a failed insert leaves no row behind.
func (s *GormStore) CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	o := domain.Order{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		ProductType: in.ProductType,
		Message:     in.Message,
		Status:      domain.OrderStatusPending,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderByID fetches an order by ID.
func (s *GormStore) GetOrderByID(ctx context.Context, id int) (*domain.Order, error) {
	var o domain.Order
	if err := s.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &o, nil
}

// mapErr normalizes GORM's missing-row error to the package sentinel so both
// backends surface identical not-found semantics.
func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
