// Package domain defines the persistence models for users, products, chat
// messages, and quote orders. These types are mapped with GORM and form the
// core data layer of the storefront application. The same structs are stored
// by the in-memory backend, so both backends share one source of truth for
// field semantics.
package domain

import "time"

// Product categories and pricing units accepted by the catalog.
const (
	CategoryTile     = "tile"
	CategorySanitary = "sanitary"

	UnitSquareMeter = "sqm"
	UnitPiece       = "unit"
)

// OrderStatusPending is the status every order carries at creation. Later
// transitions are owned by external fulfilment tooling, not this service.
const OrderStatusPending = "pending"

// User represents a registered account. Passwords are stored as received;
// hashing is handled by the auth layer in front of this service.
//
// Fields:
//   - ID: auto-increment primary key.
//   - Username: unique login name.
//   - Password: opaque credential string.
type User struct {
	ID       int    `json:"id"       gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	Password string `json:"password" gorm:"type:text;not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// NewUser is the caller-supplied payload for registration. The ID is always
// assigned by the storage layer.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Product is a catalog entry, either a tile series or a sanitary-ware item.
// Products are created only by the seed routine and are immutable afterwards.
//
// Fields:
//   - Category: "tile" or "sanitary" (enforced by DB constraint).
//   - Price: decimal kept as string to avoid float drift on money values.
//   - Unit: "sqm" for tiles sold by area, "unit" for fixtures.
//   - IsFeatured: marketing flag, filterable independently of category.
type Product struct {
	ID          int    `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name"        gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Category    string `json:"category"    gorm:"type:varchar(16);not null;index:idx_products_category;check:category IN ('tile','sanitary')"`
	ImageURL    string `json:"imageUrl"    gorm:"column:image_url;type:text;not null"`
	Price       string `json:"price"       gorm:"type:numeric;not null"`
	Unit        string `json:"unit"        gorm:"type:varchar(8);not null;check:unit IN ('sqm','unit')"`
	IsFeatured  bool   `json:"isFeatured"  gorm:"column:is_featured;not null;default:false"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }

// NewProduct is the seed-time payload for a catalog entry. IsFeatured keeps
// its zero value (false) when omitted.
type NewProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Price       string `json:"price"`
	Unit        string `json:"unit"`
	IsFeatured  bool   `json:"isFeatured"`
}

// ChatMessage is a single turn of an assistant conversation. Each exchange
// stores two rows: the human turn (IsUserMessage=true) and the assistant
// turn. The log is append-only.
type ChatMessage struct {
	ID            int       `json:"id"            gorm:"primaryKey;autoIncrement"`
	UserID        int       `json:"userId"        gorm:"column:user_id;not null;index:idx_chat_messages_user"`
	Content       string    `json:"content"       gorm:"type:text;not null"`
	IsUserMessage bool      `json:"isUserMessage" gorm:"column:is_user_message;not null"`
	Timestamp     time.Time `json:"timestamp"     gorm:"not null"`
}

// TableName returns the database table name for ChatMessage.
func (ChatMessage) TableName() string { return "chat_messages" }

// NewChatMessage is the caller-supplied payload for one conversation turn.
// ID and Timestamp are always assigned by the storage layer.
type NewChatMessage struct {
	UserID        int    `json:"userId"`
	Content       string `json:"content"`
	IsUserMessage bool   `json:"isUserMessage"`
}

// Order is a submitted quote request. Status is forced to "pending" at
// creation no matter what the caller sends; fulfilment systems own later
// status transitions.
type Order struct {
	ID          int       `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name"        gorm:"type:varchar(255);not null"`
	Email       string    `json:"email"       gorm:"type:varchar(255);not null"`
	Phone       string    `json:"phone"       gorm:"type:varchar(32);not null"`
	ProductType string    `json:"productType" gorm:"column:product_type;type:varchar(64);not null"`
	Message     string    `json:"message"     gorm:"type:text;not null"`
	Status      string    `json:"status"      gorm:"type:varchar(32);not null;default:'pending'"`
	Timestamp   time.Time `json:"timestamp"   gorm:"not null"`
}

// TableName returns the database table name for Order.
func (Order) TableName() string { return "orders" }

// NewOrder is the caller-supplied payload for a quote request. It carries no
// status or timestamp on purpose: both are storage-assigned, so a client can
// never smuggle its own values in.
type NewOrder struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProductType string `json:"productType"`
	Message     string `json:"message"`
}
