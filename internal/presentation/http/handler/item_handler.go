package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restockhq/restock-api/internal/application/service"
	"github.com/restockhq/restock-api/internal/presentation/http/dto/request"
	"github.com/restockhq/restock-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// ItemHandler handles catalog item HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List handles listing a supplier's catalog. ?active=true restricts the
// result to orderable items.
func (h *ItemHandler) List(c *gin.Context) {
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

	activeOnly := c.Query("active") == "true"

	items, err := h.itemService.ListItems(c.Request.Context(), *userID, supplierID, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved successfully", gin.H{
		"items": items,
	})
}

// Create handles adding an item to a supplier's catalog
func (h *ItemHandler) Create(c *gin.Context) {
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

	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	defaultQty := decimal.NewFromInt(1)
	if req.DefaultQty != "" {
		defaultQty, err = decimal.NewFromString(req.DefaultQty)
		if err != nil {
			response.BadRequest(c, "Invalid default quantity")
			return
		}
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		UserID:     *userID,
		SupplierID: supplierID,
		Name:       req.Name,
		Unit:       req.Unit,
		DefaultQty: defaultQty,
		ItemType:   req.ItemType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Get handles retrieving a single catalog item
func (h *ItemHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Update handles updating a catalog item
func (h *ItemHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var defaultQty *decimal.Decimal
	if req.DefaultQty != nil {
		qty, err := decimal.NewFromString(*req.DefaultQty)
		if err != nil {
			response.BadRequest(c, "Invalid default quantity")
			return
		}
		defaultQty = &qty
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), &service.UpdateItemInput{
		UserID:     *userID,
		ID:         id,
		Name:       req.Name,
		Unit:       req.Unit,
		DefaultQty: defaultQty,
		ItemType:   req.ItemType,
		Active:     req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles deleting a catalog item
func (h *ItemHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
