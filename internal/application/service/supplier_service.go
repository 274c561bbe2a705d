package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/domain/entity"
	"github.com/restockhq/restock-api/internal/domain/repository"
	"github.com/restockhq/restock-api/pkg/apperror"
	"github.com/restockhq/restock-api/pkg/pagination"
)

// SupplierService handles supplier-related operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	UserID   uuid.UUID
	Name     string
	Phone    string
	Email    *string
	Category *string
	Notes    *string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Supplier name is required")
	}

	supplier := &entity.Supplier{
		UserID:   input.UserID,
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Category: input.Category,
		Notes:    input.Notes,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier retrieves a supplier by ID. A supplier belonging to
// another account is reported as not found.
func (s *SupplierService) GetSupplier(ctx context.Context, userID, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != userID {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists the account's suppliers with optional name/category search
func (s *SupplierService) ListSuppliers(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}

// UpdateSupplierInput represents the update supplier input
type UpdateSupplierInput struct {
	UserID   uuid.UUID
	ID       uuid.UUID
	Name     *string
	Phone    *string
	Email    *string
	Category *string
	Notes    *string
}

// UpdateSupplier updates a supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Supplier name is required")
		}
		supplier.Name = *input.Name
	}
	if input.Phone != nil {
		supplier.Phone = *input.Phone
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Category != nil {
		supplier.Category = input.Category
	}
	if input.Notes != nil {
		supplier.Notes = input.Notes
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// DeleteSupplier removes a supplier. Past orders keep their snapshot
// data, so deleting a supplier never touches order history.
func (s *SupplierService) DeleteSupplier(ctx context.Context, userID, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil || supplier.UserID != userID {
		return apperror.NewNotFoundError("Supplier")
	}

	return s.supplierRepo.Delete(ctx, id)
}
