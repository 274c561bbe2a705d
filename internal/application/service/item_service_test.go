package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/domain/entity"
	"github.com/restockhq/restock-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newItemFixture(t *testing.T) (uuid.UUID, *entity.Supplier, *mockItemRepo, *mockSupplierRepo, *ItemService) {
	t.Helper()

	userID := uuid.New()
	supplier := &entity.Supplier{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Fresh Farms",
	}

	itemRepo := new(mockItemRepo)
	supplRepo := new(mockSupplierRepo)
	supplRepo.On("GetByID", mock.Anything, supplier.ID).Return(supplier, nil)

	return userID, supplier, itemRepo, supplRepo, NewItemService(itemRepo, supplRepo)
}

func TestCreateItem(t *testing.T) {
	userID, supplier, itemRepo, _, svc := newItemFixture(t)
	itemRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	item, err := svc.CreateItem(context.Background(), &CreateItemInput{
		UserID:     userID,
		SupplierID: supplier.ID,
		Name:       "Tomatoes",
		Unit:       "kg",
		DefaultQty: decimal.RequireFromString("2.5"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Tomatoes", item.Name)
	assert.True(t, item.Active)
	assert.True(t, item.DefaultQty.Equal(decimal.RequireFromString("2.5")))
}

func TestCreateItemValidation(t *testing.T) {
	userID, supplier, _, _, svc := newItemFixture(t)

	cases := map[string]*CreateItemInput{
		"missing name": {
			UserID: userID, SupplierID: supplier.ID,
			Unit: "kg", DefaultQty: decimal.NewFromInt(1),
		},
		"missing unit": {
			UserID: userID, SupplierID: supplier.ID,
			Name: "Tomatoes", DefaultQty: decimal.NewFromInt(1),
		},
		"zero default qty": {
			UserID: userID, SupplierID: supplier.ID,
			Name: "Tomatoes", Unit: "kg",
		},
		"negative default qty": {
			UserID: userID, SupplierID: supplier.ID,
			Name: "Tomatoes", Unit: "kg", DefaultQty: decimal.NewFromInt(-1),
		},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateItem(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, 400, apperror.GetAppError(err).Code)
		})
	}
}

func TestCreateItemDuplicateName(t *testing.T) {
	userID, supplier, itemRepo, _, svc := newItemFixture(t)
	itemRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.CreateItem(context.Background(), &CreateItemInput{
		UserID:     userID,
		SupplierID: supplier.ID,
		Name:       "Tomatoes",
		Unit:       "kg",
		DefaultQty: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, apperror.ErrDuplicateItemName)
}

func TestCreateItemForeignSupplier(t *testing.T) {
	_, supplier, itemRepo, _, svc := newItemFixture(t)

	_, err := svc.CreateItem(context.Background(), &CreateItemInput{
		UserID:     uuid.New(), // not the supplier's owner
		SupplierID: supplier.ID,
		Name:       "Tomatoes",
		Unit:       "kg",
		DefaultQty: decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	itemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateItemDeactivate(t *testing.T) {
	userID, supplier, itemRepo, _, svc := newItemFixture(t)

	item := &entity.Item{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Name:       "Tomatoes",
		Unit:       "kg",
		DefaultQty: decimal.NewFromInt(1),
		Active:     true,
	}
	itemRepo.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	itemRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	inactive := false
	updated, err := svc.UpdateItem(context.Background(), &UpdateItemInput{
		UserID: userID,
		ID:     item.ID,
		Active: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestListItemsActiveOnly(t *testing.T) {
	userID, supplier, itemRepo, _, svc := newItemFixture(t)

	active := []entity.Item{
		{ID: uuid.New(), SupplierID: supplier.ID, Name: "Tomatoes", Unit: "kg", Active: true},
	}
	itemRepo.On("ListBySupplier", mock.Anything, supplier.ID, true).Return(active, nil)

	items, err := svc.ListItems(context.Background(), userID, supplier.ID, true)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	itemRepo.AssertCalled(t, "ListBySupplier", mock.Anything, supplier.ID, true)
}
