package v1

import (
	"fmt"
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// QuotationHandler defines the interface for handling quotations
type QuotationHandler interface {
	Calculate(ctx *gin.Context)
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	DownloadPDF(ctx *gin.Context)
	Send(ctx *gin.Context)
}

type quotationHandler struct {
	quotationService quotations.QuotationService
	logger           logger.Logger
}

// NewQuotationHandler creates a new QuotationHandler
func NewQuotationHandler(quotationService quotations.QuotationService, logger logger.Logger) QuotationHandler {
	return &quotationHandler{quotationService: quotationService, logger: logger}
}

// Calculate handles the POST request previewing a price
// @Summary Calculate a quotation price
// @Tags Quotation
// @Accept json
// @Produce json
// @Param requestBody body PricingRequest true "Property characteristics"
// @Success 200 {object} PriceResponse
// @Failure 400 {object} ErrorResponse
// @Router /quotations/calculate [post]
func (handler *quotationHandler) Calculate(ctx *gin.Context) {
	var request PricingRequest
	if !bindRequest(ctx, &request) {
		return
	}
	input := request.toDomain()

	price, err := handler.quotationService.Calculate(ctx, &input)
	if err != nil {
		respondError(ctx, handler.logger, "calculate quotation", err)
		return
	}
	ctx.JSON(http.StatusOK, newPriceResponse(price))
}

// Create handles the POST request to create a quotation
// @Summary Create a quotation
// @Tags Quotation
// @Accept json
// @Produce json
// @Param requestBody body QuotationRequest true "Quotation"
// @Success 201 {object} QuotationResponse
// @Failure 400 {object} ErrorResponse
// @Router /quotations [post]
func (handler *quotationHandler) Create(ctx *gin.Context) {
	var request QuotationRequest
	if !bindRequest(ctx, &request) {
		return
	}
	quotation, err := request.toDomain("")
	if err != nil {
		respondError(ctx, handler.logger, "create quotation", err)
		return
	}

	created, err := handler.quotationService.Create(ctx, quotation)
	if err != nil {
		respondError(ctx, handler.logger, "create quotation", err)
		return
	}
	ctx.JSON(http.StatusCreated, newQuotationResponse(created))
}

// List handles the GET request to list quotations
// @Summary List quotations
// @Tags Quotation
// @Produce json
// @Param status query string false "Status"
// @Param clientName query string false "Client name contains"
// @Success 200 {object} PaginatedResponse[QuotationResponse]
// @Router /quotations [get]
func (handler *quotationHandler) List(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	query := &quotations.QuotationQuery{
		Query:      pagingQuery(ctx, page),
		Status:     ctx.Query("status"),
		ClientName: ctx.Query("clientName"),
	}

	list, total, err := handler.quotationService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "list quotations", err)
		return
	}
	ctx.JSON(http.StatusOK, newPaginatedResponse(list, total, page, newQuotationResponse))
}

// GetByID handles the GET request to retrieve a quotation by ID
// @Summary Retrieve a quotation by ID
// @Tags Quotation
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} QuotationResponse
// @Failure 404 {object} ErrorResponse
// @Router /quotations/{id} [get]
func (handler *quotationHandler) GetByID(ctx *gin.Context) {
	quotation, err := handler.quotationService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "get quotation", err)
		return
	}
	ctx.JSON(http.StatusOK, newQuotationResponse(quotation))
}

// Update handles the PUT request to replace a quotation, recalculating its price
// @Summary Update a quotation
// @Tags Quotation
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param requestBody body QuotationRequest true "Quotation"
// @Success 200 {object} QuotationResponse
// @Failure 400 {object} ErrorResponse
// @Router /quotations/{id} [put]
func (handler *quotationHandler) Update(ctx *gin.Context) {
	var request QuotationRequest
	if !bindRequest(ctx, &request) {
		return
	}
	quotation, err := request.toDomain(ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "update quotation", err)
		return
	}

	updated, err := handler.quotationService.Update(ctx, quotation)
	if err != nil {
		respondError(ctx, handler.logger, "update quotation", err)
		return
	}
	ctx.JSON(http.StatusOK, newQuotationResponse(updated))
}

// UpdateStatus handles the PATCH request to move a quotation to another status
// @Summary Change the status of a quotation
// @Tags Quotation
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param requestBody body StatusRequest true "Target status"
// @Success 200 {object} QuotationResponse
// @Failure 400 {object} ErrorResponse
// @Router /quotations/{id}/status [patch]
func (handler *quotationHandler) UpdateStatus(ctx *gin.Context) {
	var request StatusRequest
	if !bindRequest(ctx, &request) {
		return
	}

	quotation, err := handler.quotationService.UpdateStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, handler.logger, "update quotation status", err)
		return
	}
	ctx.JSON(http.StatusOK, newQuotationResponse(quotation))
}

// DeleteByID handles the DELETE request to delete a quotation
// @Summary Delete a quotation by ID
// @Tags Quotation
// @Param id path string true "Quotation ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /quotations/{id} [delete]
func (handler *quotationHandler) DeleteByID(ctx *gin.Context) {
	quotationID := ctx.Param("id")
	if err := handler.quotationService.DeleteByID(ctx, quotationID); err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("delete quotation %s", quotationID), err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DownloadPDF handles the GET request rendering the quotation document
// @Summary Download a quotation as PDF
// @Tags Quotation
// @Produce application/pdf
// @Param id path string true "Quotation ID"
// @Success 200 {file} file "Quotation PDF"
// @Failure 404 {object} ErrorResponse
// @Router /quotations/{id}/pdf [get]
func (handler *quotationHandler) DownloadPDF(ctx *gin.Context) {
	data, quotation, err := handler.quotationService.RenderPDF(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "render quotation", err)
		return
	}

	ctx.Header("Content-Disposition", httputil.AttachmentDisposition(quotation.QuotationNumber+".pdf"))
	ctx.Data(http.StatusOK, "application/pdf", data)
}

// Send handles the POST request emailing the quotation to the client
// @Summary Send a quotation by email
// @Tags Quotation
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} QuotationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /quotations/{id}/send [post]
func (handler *quotationHandler) Send(ctx *gin.Context) {
	quotation, err := handler.quotationService.Send(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "send quotation", err)
		return
	}
	ctx.JSON(http.StatusOK, newQuotationResponse(quotation))
}
