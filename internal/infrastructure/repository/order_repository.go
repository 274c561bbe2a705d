package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/domain/entity"
	domainRepo "github.com/restockhq/restock-api/internal/domain/repository"
	"github.com/restockhq/restock-api/pkg/pagination"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems writes the order header and its lines in one
// transaction so a failed insert never leaves a partial order behind.
func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, filters *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{}).Scopes(OwnedBy(userID))

	if filters != nil && filters.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filters.SupplierID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Supplier").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

// ListWithCursor returns orders using cursor-based pagination, newest first
func (r *orderRepository) ListWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, filters *domainRepo.OrderFilterParams) ([]entity.Order, bool, error) {
	var orders []entity.Order

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Order{}).Scopes(OwnedBy(userID))

	if filters != nil && filters.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filters.SupplierID)
	}

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, false, err
	}

	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	err = query.Limit(params.Limit + 1).
		Preload("Supplier").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, false, err
	}

	hasMore := len(orders) > params.Limit
	if hasMore {
		orders = orders[:params.Limit]
	}

	return orders, hasMore, nil
}
