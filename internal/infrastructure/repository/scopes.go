package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy returns a GORM scope that restricts a query to rows belonging
// to the given account. Every account-scoped query must apply it so one
// account can never read another's suppliers, outlets or orders.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == uuid.Nil {
			// Fail-safe: no owner means no rows
			return db.Where("1 = 0")
		}
		return db.Where("user_id = ?", userID)
	}
}
