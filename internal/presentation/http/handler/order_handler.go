package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/application/service"
	"github.com/restockhq/restock-api/internal/presentation/http/dto/request"
	"github.com/restockhq/restock-api/internal/presentation/http/dto/response"
	"github.com/restockhq/restock-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles an order submission for a supplier. The response
// carries the rendered message text and the wa.me link alongside the
// persisted order.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines := make([]service.OrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, service.OrderLineInput{
			ItemID: line.ItemID,
			Qty:    line.Qty,
		})
	}

	output, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		UserID:       *userID,
		SupplierID:   supplierID,
		OutletID:     req.OutletID,
		Notes:        req.Notes,
		DeliveryDate: req.DeliveryDate,
		Lines:        lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", gin.H{
		"order":     output.Order,
		"text":      output.Text,
		"link":      output.Link,
		"reference": output.Reference,
	})
}

// List handles listing the account's orders, newest first. Supports
// both page-based and cursor-based pagination plus an optional
// supplier_id filter.
func (h *OrderHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var supplierID *uuid.UUID
	if raw := c.Query("supplier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		supplierID = &id
	}

	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, *userID, supplierID)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), *userID, params, supplierID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// listWithCursor handles listing orders with cursor-based pagination
func (h *OrderHandler) listWithCursor(c *gin.Context, userID uuid.UUID, supplierID *uuid.UUID) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	params := &pagination.CursorParams{
		Cursor: c.Query("cursor"),
		Limit:  limit,
	}

	result, err := h.orderService.ListOrdersWithCursor(c.Request.Context(), userID, params, supplierID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving a single order with its lines
func (h *OrderHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}
