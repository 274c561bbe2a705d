package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/domain/entity"
	"github.com/restockhq/restock-api/pkg/pagination"
)

// OutletRepository defines the interface for outlet data operations
type OutletRepository interface {
	Create(ctx context.Context, outlet *entity.Outlet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error)
	Update(ctx context.Context, outlet *entity.Outlet) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Outlet, int64, error)
}
