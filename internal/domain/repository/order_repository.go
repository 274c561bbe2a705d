package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/domain/entity"
	"github.com/restockhq/restock-api/pkg/pagination"
)

// OrderFilterParams holds optional filters for order history queries
type OrderFilterParams struct {
	SupplierID *uuid.UUID
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithItems persists an order and its line items in a single
	// transaction. Either everything is written or nothing is.
	CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, filters *OrderFilterParams) ([]entity.Order, int64, error)
	ListWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, filters *OrderFilterParams) ([]entity.Order, bool, error)
}
