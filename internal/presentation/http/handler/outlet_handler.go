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

// OutletHandler handles outlet-related HTTP requests
type OutletHandler struct {
	outletService *service.OutletService
}

// NewOutletHandler creates a new outlet handler
func NewOutletHandler(outletService *service.OutletService) *OutletHandler {
	return &OutletHandler{outletService: outletService}
}

// List handles listing the account's outlets
func (h *OutletHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	search := c.Query("q")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.outletService.ListOutlets(c.Request.Context(), *userID, params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Outlets retrieved successfully", result)
}

// Create handles creating an outlet
func (h *OutletHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	outlet, err := h.outletService.CreateOutlet(c.Request.Context(), &service.CreateOutletInput{
		UserID:  *userID,
		Name:    req.Name,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Outlet created successfully", outlet)
}

// Get handles retrieving a single outlet
func (h *OutletHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid outlet ID")
		return
	}

	outlet, err := h.outletService.GetOutlet(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outlet retrieved successfully", outlet)
}

// Update handles updating an outlet
func (h *OutletHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid outlet ID")
		return
	}

	var req request.UpdateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	outlet, err := h.outletService.UpdateOutlet(c.Request.Context(), &service.UpdateOutletInput{
		UserID:  *userID,
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outlet updated successfully", outlet)
}

// Delete handles deleting an outlet
func (h *OutletHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid outlet ID")
		return
	}

	if err := h.outletService.DeleteOutlet(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
