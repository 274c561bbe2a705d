package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/domain/entity"
	"github.com/restockhq/restock-api/internal/domain/repository"
	"github.com/restockhq/restock-api/pkg/apperror"
	"github.com/restockhq/restock-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, filters *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	args := m.Called(ctx, userID, params, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Order), args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, filters *repository.OrderFilterParams) ([]entity.Order, bool, error) {
	args := m.Called(ctx, userID, params, filters)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).([]entity.Order), args.Bool(1), args.Error(2)
}

type mockSupplierRepo struct {
	mock.Mock
}

func (m *mockSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *mockSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *mockSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSupplierRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	args := m.Called(ctx, userID, params, search)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Supplier), args.Get(1).(int64), args.Error(2)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, item *entity.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, item *entity.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockItemRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID, activeOnly bool) ([]entity.Item, error) {
	args := m.Called(ctx, supplierID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Item), args.Error(1)
}

type mockOutletRepo struct {
	mock.Mock
}

func (m *mockOutletRepo) Create(ctx context.Context, outlet *entity.Outlet) error {
	args := m.Called(ctx, outlet)
	return args.Error(0)
}

func (m *mockOutletRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Outlet), args.Error(1)
}

func (m *mockOutletRepo) Update(ctx context.Context, outlet *entity.Outlet) error {
	args := m.Called(ctx, outlet)
	return args.Error(0)
}

func (m *mockOutletRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOutletRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Outlet, int64, error) {
	args := m.Called(ctx, userID, params, search)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Outlet), args.Get(1).(int64), args.Error(2)
}

type orderFixture struct {
	userID     uuid.UUID
	supplier   *entity.Supplier
	outlet     *entity.Outlet
	items      []entity.Item
	orderRepo  *mockOrderRepo
	supplRepo  *mockSupplierRepo
	itemRepo   *mockItemRepo
	outletRepo *mockOutletRepo
	svc        *OrderService
}

func testClock() time.Time {
	return time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	userID := uuid.New()
	supplier := &entity.Supplier{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Fresh Farms",
		Phone:  "+1 (555) 123-4567",
	}
	outlet := &entity.Outlet{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    "Downtown Cafe",
		Address: "12 Main St",
	}
	items := []entity.Item{
		{ID: uuid.New(), SupplierID: supplier.ID, Name: "Tomatoes", Unit: "kg", Active: true},
		{ID: uuid.New(), SupplierID: supplier.ID, Name: "Olive Oil", Unit: "l", Active: true},
	}

	f := &orderFixture{
		userID:     userID,
		supplier:   supplier,
		outlet:     outlet,
		items:      items,
		orderRepo:  new(mockOrderRepo),
		supplRepo:  new(mockSupplierRepo),
		itemRepo:   new(mockItemRepo),
		outletRepo: new(mockOutletRepo),
	}
	f.svc = NewOrderService(f.orderRepo, f.supplRepo, f.itemRepo, f.outletRepo, "SR", testClock)

	f.supplRepo.On("GetByID", mock.Anything, supplier.ID).Return(supplier, nil)
	f.outletRepo.On("GetByID", mock.Anything, outlet.ID).Return(outlet, nil)
	f.itemRepo.On("ListBySupplier", mock.Anything, supplier.ID, true).Return(items, nil)

	return f
}

func (f *orderFixture) input(lines ...OrderLineInput) *CreateOrderInput {
	return &CreateOrderInput{
		UserID:     f.userID,
		SupplierID: f.supplier.ID,
		OutletID:   f.outlet.ID,
		Lines:      lines,
	}
}

func TestCreateOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.orderRepo.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	output, err := f.svc.CreateOrder(context.Background(), f.input(
		OrderLineInput{ItemID: f.items[0].ID, Qty: "3"},
		OrderLineInput{ItemID: f.items[1].ID, Qty: "2.5"},
	))
	require.NoError(t, err)

	assert.Contains(t, output.Text, "*Order from: Downtown Cafe*")
	assert.Contains(t, output.Text, "Address: 12 Main St")
	assert.Contains(t, output.Text, "- Tomatoes: 3 kg")
	assert.Contains(t, output.Text, "- Olive Oil: 2.5 l")
	assert.Equal(t, "SR-2026-03-10-1405", output.Reference)
	assert.True(t, strings.HasPrefix(output.Link, "https://wa.me/15551234567?text="))

	assert.Equal(t, f.outlet.Name, output.Order.OutletName)
	assert.Equal(t, f.outlet.Address, output.Order.Address)
	assert.Equal(t, 2, output.Order.ItemCount)

	f.orderRepo.AssertCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.MatchedBy(func(items []entity.OrderItem) bool {
		return len(items) == 2 &&
			items[0].Name == "Tomatoes" && items[0].Qty.Equal(decimal.RequireFromString("3")) &&
			items[1].Name == "Olive Oil" && items[1].Qty.Equal(decimal.RequireFromString("2.5"))
	}))
}

func TestCreateOrderNoItemsSelected(t *testing.T) {
	f := newOrderFixture(t)

	cases := map[string][]OrderLineInput{
		"empty submission": {},
		"zero quantities": {
			{ItemID: f.items[0].ID, Qty: "0"},
			{ItemID: f.items[1].ID, Qty: "0"},
		},
		"negative quantity": {
			{ItemID: f.items[0].ID, Qty: "-2"},
		},
		"unparsable quantity": {
			{ItemID: f.items[0].ID, Qty: "lots"},
		},
		"unknown item": {
			{ItemID: uuid.New(), Qty: "3"},
		},
	}

	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.CreateOrder(context.Background(), f.input(lines...))
			assert.ErrorIs(t, err, apperror.ErrNoItemsSelected)
		})
	}

	f.orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderSkipsInvalidLines(t *testing.T) {
	f := newOrderFixture(t)
	f.orderRepo.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	output, err := f.svc.CreateOrder(context.Background(), f.input(
		OrderLineInput{ItemID: uuid.New(), Qty: "5"},          // unknown item
		OrderLineInput{ItemID: f.items[0].ID, Qty: "0"},       // zero qty
		OrderLineInput{ItemID: f.items[1].ID, Qty: "1.25"},    // valid
		OrderLineInput{ItemID: f.items[0].ID, Qty: "bananas"}, // unparsable
	))
	require.NoError(t, err)

	assert.Equal(t, 1, output.Order.ItemCount)
	assert.Contains(t, output.Text, "- Olive Oil: 1.25 l")
	assert.NotContains(t, output.Text, "Tomatoes")
}

func TestCreateOrderPreservesLineOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.orderRepo.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// Submit in reverse catalog order
	output, err := f.svc.CreateOrder(context.Background(), f.input(
		OrderLineInput{ItemID: f.items[1].ID, Qty: "1"},
		OrderLineInput{ItemID: f.items[0].ID, Qty: "2"},
	))
	require.NoError(t, err)

	oilIdx := strings.Index(output.Text, "Olive Oil")
	tomatoIdx := strings.Index(output.Text, "Tomatoes")
	require.True(t, oilIdx >= 0 && tomatoIdx >= 0)
	assert.Less(t, oilIdx, tomatoIdx)
}

func TestCreateOrderDeliveryDate(t *testing.T) {
	f := newOrderFixture(t)
	f.orderRepo.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	input := f.input(OrderLineInput{ItemID: f.items[0].ID, Qty: "1"})
	input.DeliveryDate = "2026-03-15" // not tomorrow

	output, err := f.svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)

	assert.Contains(t, output.Text, "Date of Delivery: 2026-03-15")
	assert.Contains(t, output.Text, "❗️Order is NOT for next day!")
	require.NotNil(t, output.Order.DeliveryDate)
	assert.Equal(t, "2026-03-15", *output.Order.DeliveryDate)
}

func TestCreateOrderPersistenceFailure(t *testing.T) {
	f := newOrderFixture(t)
	f.orderRepo.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	_, err := f.svc.CreateOrder(context.Background(), f.input(
		OrderLineInput{ItemID: f.items[0].ID, Qty: "1"},
	))
	assert.ErrorIs(t, err, apperror.ErrPersistenceFailed)
}

func TestCreateOrderForeignSupplier(t *testing.T) {
	f := newOrderFixture(t)

	input := f.input(OrderLineInput{ItemID: f.items[0].ID, Qty: "1"})
	input.UserID = uuid.New() // someone else's account

	_, err := f.svc.CreateOrder(context.Background(), input)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestGetOrderForeignAccount(t *testing.T) {
	f := newOrderFixture(t)

	orderID := uuid.New()
	f.orderRepo.On("GetWithItems", mock.Anything, orderID).Return(&entity.Order{
		ID:     orderID,
		UserID: uuid.New(),
	}, nil)

	_, err := f.svc.GetOrder(context.Background(), f.userID, orderID)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestListOrders(t *testing.T) {
	f := newOrderFixture(t)

	orders := []entity.Order{
		{ID: uuid.New(), UserID: f.userID, Reference: "SR-2026-03-10-1405"},
		{ID: uuid.New(), UserID: f.userID, Reference: "SR-2026-03-09-0900"},
	}
	f.orderRepo.On("List", mock.Anything, f.userID, mock.Anything, mock.Anything).
		Return(orders, int64(2), nil)

	params := pagination.DefaultPagination()
	result, err := f.svc.ListOrders(context.Background(), f.userID, params, nil)
	require.NoError(t, err)

	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Pagination.Total)
}
