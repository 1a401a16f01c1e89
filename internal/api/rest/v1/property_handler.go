package v1

import (
	"fmt"
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PropertyHandler defines the interface for handling property-related operations
type PropertyHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type propertyHandler struct {
	propertyService properties.PropertyService
	logger          logger.Logger
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService properties.PropertyService, logger logger.Logger) PropertyHandler {
	return &propertyHandler{propertyService: propertyService, logger: logger}
}

// Create handles the POST request to create a property
// @Summary Create a property
// @Tags Property
// @Accept json
// @Produce json
// @Param requestBody body PropertyRequest true "Property"
// @Success 201 {object} PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /properties [post]
func (handler *propertyHandler) Create(ctx *gin.Context) {
	var request PropertyRequest
	if !bindRequest(ctx, &request) {
		return
	}

	property, err := handler.propertyService.Create(ctx, request.toDomain(""))
	if err != nil {
		respondError(ctx, handler.logger, "create property", err)
		return
	}
	ctx.JSON(http.StatusCreated, newPropertyResponse(property))
}

// List handles the GET request to list properties
// @Summary List properties
// @Tags Property
// @Produce json
// @Param name query string false "Name contains"
// @Param ownerId query string false "Owner ID"
// @Param cleaningTeamId query string false "Cleaning team ID"
// @Param active query bool false "Active flag"
// @Param page query int false "Page, starting at 1"
// @Param pageSize query int false "Rows per page"
// @Success 200 {object} PaginatedResponse[PropertyResponse]
// @Failure 400 {object} ErrorResponse
// @Router /properties [get]
func (handler *propertyHandler) List(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	query := properties.NewPropertyQuery()
	query.Query = pagingQuery(ctx, page)
	query.Name = ctx.Query("name")
	query.OwnerID = ctx.Query("ownerId")
	query.CleaningTeamID = ctx.Query("cleaningTeamId")
	if active := ctx.Query("active"); len(active) > 0 {
		value, valid := httputil.ParseBool(active)
		if !valid {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid active value %q", active)})
			return
		}
		query.Active = &value
	}

	list, total, err := handler.propertyService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "list properties", err)
		return
	}
	ctx.JSON(http.StatusOK, newPaginatedResponse(list, total, page, newPropertyResponse))
}

// GetByID handles the GET request to retrieve a property by ID
// @Summary Retrieve a property by ID
// @Tags Property
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} PropertyResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [get]
func (handler *propertyHandler) GetByID(ctx *gin.Context) {
	property, err := handler.propertyService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "get property", err)
		return
	}
	ctx.JSON(http.StatusOK, newPropertyResponse(property))
}

// Update handles the PUT request to replace a property
// @Summary Update a property
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param requestBody body PropertyRequest true "Property"
// @Success 200 {object} PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [put]
func (handler *propertyHandler) Update(ctx *gin.Context) {
	var request PropertyRequest
	if !bindRequest(ctx, &request) {
		return
	}

	property, err := handler.propertyService.Update(ctx, request.toDomain(ctx.Param("id")))
	if err != nil {
		respondError(ctx, handler.logger, "update property", err)
		return
	}
	ctx.JSON(http.StatusOK, newPropertyResponse(property))
}

// DeleteByID handles the DELETE request to delete a property by ID
// @Summary Delete a property by ID
// @Tags Property
// @Param id path string true "Property ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /properties/{id} [delete]
func (handler *propertyHandler) DeleteByID(ctx *gin.Context) {
	propertyID := ctx.Param("id")
	if err := handler.propertyService.DeleteByID(ctx, propertyID); err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("delete property %s", propertyID), err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
