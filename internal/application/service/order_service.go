package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/domain/entity"
	"github.com/restockhq/restock-api/internal/domain/repository"
	"github.com/restockhq/restock-api/pkg/apperror"
	"github.com/restockhq/restock-api/pkg/pagination"
	"github.com/restockhq/restock-api/pkg/watext"
	"github.com/shopspring/decimal"
)

// OrderService turns a filled order form into a WhatsApp-ready message
// and a persisted order
type OrderService struct {
	orderRepo    repository.OrderRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
	outletRepo   repository.OutletRepository
	refPrefix    string
	now          func() time.Time
}

// NewOrderService creates a new order service. The clock is injected so
// references and delivery-date checks are testable.
func NewOrderService(
	orderRepo repository.OrderRepository,
	supplierRepo repository.SupplierRepository,
	itemRepo repository.ItemRepository,
	outletRepo repository.OutletRepository,
	refPrefix string,
	now func() time.Time,
) *OrderService {
	if refPrefix == "" {
		refPrefix = watext.DefaultRefPrefix
	}
	if now == nil {
		now = time.Now
	}
	return &OrderService{
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
		outletRepo:   outletRepo,
		refPrefix:    refPrefix,
		now:          now,
	}
}

// OrderLineInput is one submitted form line, in form order
type OrderLineInput struct {
	ItemID uuid.UUID
	Qty    string
}

// CreateOrderInput represents the order submission
type CreateOrderInput struct {
	UserID       uuid.UUID
	SupplierID   uuid.UUID
	OutletID     uuid.UUID
	Notes        string
	DeliveryDate string
	Lines        []OrderLineInput
}

// CreateOrderOutput carries the persisted order plus everything the
// client needs to hand off to WhatsApp
type CreateOrderOutput struct {
	Order     *entity.Order
	Text      string
	Link      string
	Reference string
}

// CreateOrder composes, renders and persists an order in one step. Lines
// with a non-positive or unparsable quantity are dropped, as are lines
// referencing inactive or foreign items; if nothing survives the filter
// the submission is rejected.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	outlet, err := s.outletRepo.GetByID(ctx, input.OutletID)
	if err != nil {
		return nil, err
	}
	if outlet == nil || outlet.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Outlet")
	}

	items, err := s.itemRepo.ListBySupplier(ctx, input.SupplierID, true)
	if err != nil {
		return nil, err
	}
	catalog := make(map[uuid.UUID]*entity.Item, len(items))
	for i := range items {
		catalog[items[i].ID] = &items[i]
	}

	lines := composeLines(input.Lines, catalog)
	if len(lines) == 0 {
		return nil, apperror.ErrNoItemsSelected
	}

	now := s.now()
	reference := watext.Reference(s.refPrefix, now)

	msg := watext.Order{
		OutletName:   outlet.Name,
		Address:      outlet.Address,
		Notes:        input.Notes,
		DeliveryDate: input.DeliveryDate,
		Lines:        lines,
		RefPrefix:    s.refPrefix,
	}
	text := msg.Build(now)
	link := watext.Link(watext.DigitsOnly(supplier.Phone), text)

	order := &entity.Order{
		UserID:     input.UserID,
		SupplierID: supplier.ID,
		OutletName: outlet.Name,
		Address:    outlet.Address,
		Notes:      input.Notes,
		Reference:  reference,
		ItemCount:  len(lines),
	}
	if input.DeliveryDate != "" {
		date := input.DeliveryDate
		order.DeliveryDate = &date
	}

	orderItems := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		orderItems = append(orderItems, entity.OrderItem{
			Name: line.Name,
			Unit: line.Unit,
			Qty:  line.Qty,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, orderItems); err != nil {
		return nil, apperror.ErrPersistenceFailed
	}

	return &CreateOrderOutput{
		Order:     order,
		Text:      text,
		Link:      link,
		Reference: reference,
	}, nil
}

// composeLines filters submitted lines against the active catalog,
// keeping form order. Unknown items and quantities that fail to parse
// or are not positive are skipped silently.
func composeLines(inputs []OrderLineInput, catalog map[uuid.UUID]*entity.Item) []watext.Line {
	lines := make([]watext.Line, 0, len(inputs))
	for _, in := range inputs {
		item, ok := catalog[in.ItemID]
		if !ok {
			continue
		}
		qty, err := decimal.NewFromString(in.Qty)
		if err != nil || !qty.IsPositive() {
			continue
		}
		lines = append(lines, watext.Line{
			Name: item.Name,
			Qty:  qty,
			Unit: item.Unit,
		})
	}
	return lines
}

// GetOrder retrieves an order with its lines. An order belonging to
// another account is reported as not found.
func (s *OrderService) GetOrder(ctx context.Context, userID, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists the account's orders newest first, optionally
// filtered by supplier
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, supplierID *uuid.UUID) (*pagination.PaginatedResult[entity.Order], error) {
	filters := &repository.OrderFilterParams{SupplierID: supplierID}

	orders, total, err := s.orderRepo.List(ctx, userID, params, filters)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOrdersWithCursor lists orders using cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, supplierID *uuid.UUID) (*pagination.CursorPaginatedResult[entity.Order], error) {
	filters := &repository.OrderFilterParams{SupplierID: supplierID}

	orders, hasMore, err := s.orderRepo.ListWithCursor(ctx, userID, params, filters)
	if err != nil {
		return nil, err
	}

	cursorPag := &pagination.CursorPagination{
		Limit:   params.Limit,
		HasNext: hasMore,
		HasPrev: params.Cursor != "",
	}
	if len(orders) > 0 {
		last := orders[len(orders)-1]
		next := pagination.EncodeCursor(last.ID.String(), last.CreatedAt)
		cursorPag.NextCursor = &next

		first := orders[0]
		prev := pagination.EncodeCursor(first.ID.String(), first.CreatedAt)
		cursorPag.PrevCursor = &prev
	}

	return pagination.NewCursorPaginatedResult(orders, cursorPag), nil
}
