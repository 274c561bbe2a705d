package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a snapshot of a composed purchase request. Outlet name and
// address are copied at order time; orders are never updated or deleted.
type Order struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"supplier_id"`
	OutletName   string         `gorm:"size:100;not null" json:"outlet_name"`
	Address      string         `gorm:"size:200" json:"address"`
	Notes        string         `gorm:"type:text" json:"notes"`
	DeliveryDate *string        `gorm:"size:32" json:"delivery_date,omitempty"` // raw YYYY-MM-DD as submitted
	Reference    string         `gorm:"size:100;not null" json:"reference"`
	ItemCount    int            `gorm:"not null;default:0" json:"item_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User        `gorm:"foreignKey:UserID" json:"-"`
	Supplier *Supplier   `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line within an order. Name and unit are denormalized
// copies so later catalog edits never alter history.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	Name      string          `gorm:"size:160;not null" json:"name"`
	Unit      string          `gorm:"size:32;not null" json:"unit"`
	Qty       decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"qty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
