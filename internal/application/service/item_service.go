package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/domain/entity"
	"github.com/restockhq/restock-api/internal/domain/repository"
	"github.com/restockhq/restock-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo     repository.ItemRepository
	supplierRepo repository.SupplierRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository, supplierRepo repository.SupplierRepository) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	UserID     uuid.UUID
	SupplierID uuid.UUID
	Name       string
	Unit       string
	DefaultQty decimal.Decimal
	ItemType   *string
}

// CreateItem adds an item to a supplier's catalog
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if input.Unit == "" {
		return nil, apperror.NewBadRequestError("Item unit is required")
	}
	if !input.DefaultQty.IsPositive() {
		return nil, apperror.NewBadRequestError("Default quantity must be greater than zero")
	}

	item := &entity.Item{
		SupplierID: input.SupplierID,
		Name:       input.Name,
		Unit:       input.Unit,
		DefaultQty: input.DefaultQty,
		ItemType:   input.ItemType,
		Active:     true,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrDuplicateItemName
		}
		return nil, err
	}

	return item, nil
}

// GetItem retrieves a catalog item, enforcing supplier ownership
func (s *ItemService) GetItem(ctx context.Context, userID, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	supplier, err := s.supplierRepo.GetByID(ctx, item.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != userID {
		return nil, apperror.NewNotFoundError("Item")
	}

	return item, nil
}

// ListItems returns a supplier's catalog. With activeOnly set, inactive
// items are left out (the order form view).
func (s *ItemService) ListItems(ctx context.Context, userID, supplierID uuid.UUID, activeOnly bool) ([]entity.Item, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != userID {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	return s.itemRepo.ListBySupplier(ctx, supplierID, activeOnly)
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	UserID     uuid.UUID
	ID         uuid.UUID
	Name       *string
	Unit       *string
	DefaultQty *decimal.Decimal
	ItemType   *string
	Active     *bool
}

// UpdateItem updates a catalog item
func (s *ItemService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Item name is required")
		}
		item.Name = *input.Name
	}
	if input.Unit != nil {
		if *input.Unit == "" {
			return nil, apperror.NewBadRequestError("Item unit is required")
		}
		item.Unit = *input.Unit
	}
	if input.DefaultQty != nil {
		if !input.DefaultQty.IsPositive() {
			return nil, apperror.NewBadRequestError("Default quantity must be greater than zero")
		}
		item.DefaultQty = *input.DefaultQty
	}
	if input.ItemType != nil {
		item.ItemType = input.ItemType
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrDuplicateItemName
		}
		return nil, err
	}

	return item, nil
}

// DeleteItem removes a catalog item. Order lines carry their own copy
// of the item name and unit, so history is unaffected.
func (s *ItemService) DeleteItem(ctx context.Context, userID, id uuid.UUID) error {
	item, err := s.GetItem(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.itemRepo.Delete(ctx, item.ID)
}
