package v1

import (
	"fmt"
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// OwnerHandler defines the interface for handling owner-related operations
type OwnerHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// ownerHandler struct holds the services
type ownerHandler struct {
	ownerService owners.OwnerService
	logger       logger.Logger
}

// NewOwnerHandler creates a new OwnerHandler
func NewOwnerHandler(ownerService owners.OwnerService, logger logger.Logger) OwnerHandler {
	return &ownerHandler{ownerService: ownerService, logger: logger}
}

// Create handles the POST request to create an owner
// @Summary Create an owner
// @Tags Owner
// @Accept json
// @Produce json
// @Param requestBody body OwnerRequest true "Owner"
// @Success 201 {object} OwnerResponse
// @Failure 400 {object} ErrorResponse
// @Router /owners [post]
func (handler *ownerHandler) Create(ctx *gin.Context) {
	var request OwnerRequest
	if !bindRequest(ctx, &request) {
		return
	}

	owner, err := handler.ownerService.Create(ctx, request.toDomain(""))
	if err != nil {
		respondError(ctx, handler.logger, "create owner", err)
		return
	}
	ctx.JSON(http.StatusCreated, newOwnerResponse(owner))
}

// List handles the GET request to list owners
// @Summary List owners
// @Tags Owner
// @Produce json
// @Param name query string false "Name contains"
// @Param page query int false "Page, starting at 1"
// @Param pageSize query int false "Rows per page"
// @Param sortBy query string false "Sort column"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} PaginatedResponse[OwnerResponse]
// @Failure 400 {object} ErrorResponse
// @Router /owners [get]
func (handler *ownerHandler) List(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	query := &owners.OwnerQuery{
		Query: pagingQuery(ctx, page),
		Name:  ctx.Query("name"),
	}

	list, total, err := handler.ownerService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "list owners", err)
		return
	}
	ctx.JSON(http.StatusOK, newPaginatedResponse(list, total, page, newOwnerResponse))
}

// GetByID handles the GET request to retrieve an owner by ID
// @Summary Retrieve an owner by ID
// @Tags Owner
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} OwnerResponse
// @Failure 404 {object} ErrorResponse
// @Router /owners/{id} [get]
func (handler *ownerHandler) GetByID(ctx *gin.Context) {
	owner, err := handler.ownerService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "get owner", err)
		return
	}
	ctx.JSON(http.StatusOK, newOwnerResponse(owner))
}

// Update handles the PUT request to replace an owner
// @Summary Update an owner
// @Tags Owner
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param requestBody body OwnerRequest true "Owner"
// @Success 200 {object} OwnerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /owners/{id} [put]
func (handler *ownerHandler) Update(ctx *gin.Context) {
	var request OwnerRequest
	if !bindRequest(ctx, &request) {
		return
	}

	owner, err := handler.ownerService.Update(ctx, request.toDomain(ctx.Param("id")))
	if err != nil {
		respondError(ctx, handler.logger, "update owner", err)
		return
	}
	ctx.JSON(http.StatusOK, newOwnerResponse(owner))
}

// DeleteByID handles the DELETE request to delete an owner by ID
// @Summary Delete an owner by ID
// @Tags Owner
// @Param id path string true "Owner ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /owners/{id} [delete]
func (handler *ownerHandler) DeleteByID(ctx *gin.Context) {
	ownerID := ctx.Param("id")
	if err := handler.ownerService.DeleteByID(ctx, ownerID); err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("delete owner %s", ownerID), err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
