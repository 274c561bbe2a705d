package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/domain/entity"
	"github.com/restockhq/restock-api/internal/domain/repository"
	"github.com/restockhq/restock-api/pkg/apperror"
	"github.com/restockhq/restock-api/pkg/pagination"
)

// OutletService handles outlet-related operations
type OutletService struct {
	outletRepo repository.OutletRepository
}

// NewOutletService creates a new outlet service
func NewOutletService(outletRepo repository.OutletRepository) *OutletService {
	return &OutletService{outletRepo: outletRepo}
}

// CreateOutletInput represents the create outlet input
type CreateOutletInput struct {
	UserID  uuid.UUID
	Name    string
	Address string
	Notes   *string
}

// CreateOutlet creates a new outlet
func (s *OutletService) CreateOutlet(ctx context.Context, input *CreateOutletInput) (*entity.Outlet, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Outlet name is required")
	}
	if input.Address == "" {
		return nil, apperror.NewBadRequestError("Outlet address is required")
	}

	outlet := &entity.Outlet{
		UserID:  input.UserID,
		Name:    input.Name,
		Address: input.Address,
		Notes:   input.Notes,
	}

	if err := s.outletRepo.Create(ctx, outlet); err != nil {
		return nil, err
	}

	return outlet, nil
}

// GetOutlet retrieves an outlet by ID. An outlet belonging to another
// account is reported as not found.
func (s *OutletService) GetOutlet(ctx context.Context, userID, id uuid.UUID) (*entity.Outlet, error) {
	outlet, err := s.outletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if outlet == nil || outlet.UserID != userID {
		return nil, apperror.NewNotFoundError("Outlet")
	}
	return outlet, nil
}

// ListOutlets lists the account's outlets with optional name/address search
func (s *OutletService) ListOutlets(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Outlet], error) {
	outlets, total, err := s.outletRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(outlets, pag), nil
}

// UpdateOutletInput represents the update outlet input
type UpdateOutletInput struct {
	UserID  uuid.UUID
	ID      uuid.UUID
	Name    *string
	Address *string
	Notes   *string
}

// UpdateOutlet updates an outlet
func (s *OutletService) UpdateOutlet(ctx context.Context, input *UpdateOutletInput) (*entity.Outlet, error) {
	outlet, err := s.outletRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if outlet == nil || outlet.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Outlet")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Outlet name is required")
		}
		outlet.Name = *input.Name
	}
	if input.Address != nil {
		if *input.Address == "" {
			return nil, apperror.NewBadRequestError("Outlet address is required")
		}
		outlet.Address = *input.Address
	}
	if input.Notes != nil {
		outlet.Notes = input.Notes
	}

	if err := s.outletRepo.Update(ctx, outlet); err != nil {
		return nil, err
	}

	return outlet, nil
}

// DeleteOutlet removes an outlet. Orders keep a copy of the outlet name
// and address, so past orders are unaffected.
func (s *OutletService) DeleteOutlet(ctx context.Context, userID, id uuid.UUID) error {
	outlet, err := s.outletRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if outlet == nil || outlet.UserID != userID {
		return apperror.NewNotFoundError("Outlet")
	}

	return s.outletRepo.Delete(ctx, id)
}
