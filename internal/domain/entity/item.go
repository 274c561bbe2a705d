package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is a catalog entry belonging to exactly one supplier. Names are
// unique per supplier; inactive items are hidden from order forms but kept
// for history.
type Item struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_item_per_supplier" json:"supplier_id"`
	Name       string          `gorm:"size:160;not null;uniqueIndex:uq_item_per_supplier" json:"name"`
	Unit       string          `gorm:"size:32;not null" json:"unit"` // kg, pkt, carton, tin
	DefaultQty decimal.Decimal `gorm:"type:decimal(12,3);not null;default:1" json:"default_qty"`
	ItemType   *string         `gorm:"size:64" json:"item_type,omitempty"` // Dry, Frozen, Vegetables, etc.
	Active     bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Supplier Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
