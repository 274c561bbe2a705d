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

type outletRepository struct {
	db *gorm.DB
}

// NewOutletRepository creates a new outlet repository
func NewOutletRepository(db *gorm.DB) domainRepo.OutletRepository {
	return &outletRepository{db: db}
}

func (r *outletRepository) Create(ctx context.Context, outlet *entity.Outlet) error {
	return r.db.WithContext(ctx).Create(outlet).Error
}

func (r *outletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	var outlet entity.Outlet
	err := r.db.WithContext(ctx).First(&outlet, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &outlet, err
}

func (r *outletRepository) Update(ctx context.Context, outlet *entity.Outlet) error {
	return r.db.WithContext(ctx).Save(outlet).Error
}

func (r *outletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Outlet{}, "id = ?", id).Error
}

func (r *outletRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Outlet, int64, error) {
	var outlets []entity.Outlet
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Outlet{}).Scopes(OwnedBy(userID))

	if search != "" {
		query = query.Where("name ILIKE ? OR address ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&outlets).Error

	return outlets, total, err
}
