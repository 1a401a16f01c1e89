package v1

import (
	"fmt"
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// FinanceHandler defines the interface for handling financial documents
type FinanceHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	AddItem(ctx *gin.Context)
	RemoveItem(ctx *gin.Context)
	RegisterPayment(ctx *gin.Context)
	Summary(ctx *gin.Context)
}

type financeHandler struct {
	documentService finance.DocumentService
	logger          logger.Logger
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(documentService finance.DocumentService, logger logger.Logger) FinanceHandler {
	return &financeHandler{documentService: documentService, logger: logger}
}

// Create handles the POST request to create a financial document
// @Summary Create a financial document
// @Tags Finance
// @Accept json
// @Produce json
// @Param requestBody body DocumentRequest true "Document"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /financial-documents [post]
func (handler *financeHandler) Create(ctx *gin.Context) {
	var request DocumentRequest
	if !bindRequest(ctx, &request) {
		return
	}
	document, err := request.toDomain("")
	if err != nil {
		respondError(ctx, handler.logger, "create financial document", err)
		return
	}

	created, err := handler.documentService.Create(ctx, document)
	if err != nil {
		respondError(ctx, handler.logger, "create financial document", err)
		return
	}
	ctx.JSON(http.StatusCreated, newDocumentResponse(created))
}

// List handles the GET request to list financial documents
// @Summary List financial documents
// @Tags Finance
// @Produce json
// @Param ownerId query string false "Owner ID"
// @Param type query string false "incoming or outgoing"
// @Param status query string false "Status"
// @Param from query string false "Issued on or after (YYYY-MM-DD)"
// @Param to query string false "Issued on or before (YYYY-MM-DD)"
// @Success 200 {object} PaginatedResponse[DocumentResponse]
// @Failure 400 {object} ErrorResponse
// @Router /financial-documents [get]
func (handler *financeHandler) List(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	query := &finance.DocumentQuery{
		Query:   pagingQuery(ctx, page),
		OwnerID: ctx.Query("ownerId"),
		Type:    ctx.Query("type"),
		Status:  ctx.Query("status"),
	}

	var err error
	if query.From, err = httputil.ParseOptionalDate(ctx.Query("from")); err != nil {
		respondError(ctx, handler.logger, "list financial documents", err)
		return
	}
	if query.To, err = httputil.ParseOptionalDate(ctx.Query("to")); err != nil {
		respondError(ctx, handler.logger, "list financial documents", err)
		return
	}

	list, total, err := handler.documentService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "list financial documents", err)
		return
	}
	ctx.JSON(http.StatusOK, newPaginatedResponse(list, total, page, newDocumentResponse))
}

// GetByID handles the GET request to retrieve a document with items and payments
// @Summary Retrieve a financial document by ID
// @Tags Finance
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Router /financial-documents/{id} [get]
func (handler *financeHandler) GetByID(ctx *gin.Context) {
	document, err := handler.documentService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "get financial document", err)
		return
	}
	ctx.JSON(http.StatusOK, newDocumentResponse(document))
}

// Update handles the PUT request to replace the header of a document
// @Summary Update a financial document
// @Description Items and payments are managed through their own endpoints.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param requestBody body DocumentRequest true "Document"
// @Success 200 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Router /financial-documents/{id} [put]
func (handler *financeHandler) Update(ctx *gin.Context) {
	var request DocumentRequest
	if !bindRequest(ctx, &request) {
		return
	}
	document, err := request.toDomain(ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "update financial document", err)
		return
	}

	updated, err := handler.documentService.Update(ctx, document)
	if err != nil {
		respondError(ctx, handler.logger, "update financial document", err)
		return
	}
	ctx.JSON(http.StatusOK, newDocumentResponse(updated))
}

// DeleteByID handles the DELETE request to delete a document
// @Summary Delete a financial document by ID
// @Tags Finance
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /financial-documents/{id} [delete]
func (handler *financeHandler) DeleteByID(ctx *gin.Context) {
	documentID := ctx.Param("id")
	if err := handler.documentService.DeleteByID(ctx, documentID); err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("delete financial document %s", documentID), err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddItem handles the POST request to append a line to a document
// @Summary Add a document item
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param requestBody body ItemRequest true "Item"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Router /financial-documents/{id}/items [post]
func (handler *financeHandler) AddItem(ctx *gin.Context) {
	var request ItemRequest
	if !bindRequest(ctx, &request) {
		return
	}

	document, err := handler.documentService.AddItem(ctx, ctx.Param("id"), request.toDomain())
	if err != nil {
		respondError(ctx, handler.logger, "add document item", err)
		return
	}
	ctx.JSON(http.StatusCreated, newDocumentResponse(document))
}

// RemoveItem handles the DELETE request to drop a line from a document
// @Summary Remove a document item
// @Tags Finance
// @Produce json
// @Param id path string true "Document ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Router /financial-documents/{id}/items/{itemId} [delete]
func (handler *financeHandler) RemoveItem(ctx *gin.Context) {
	document, err := handler.documentService.RemoveItem(ctx, ctx.Param("id"), ctx.Param("itemId"))
	if err != nil {
		respondError(ctx, handler.logger, "remove document item", err)
		return
	}
	ctx.JSON(http.StatusOK, newDocumentResponse(document))
}

// RegisterPayment handles the POST request to record a payment
// @Summary Register a payment
// @Description A payment settling the outstanding amount marks the document paid.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param requestBody body PaymentRequest true "Payment"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Router /financial-documents/{id}/payments [post]
func (handler *financeHandler) RegisterPayment(ctx *gin.Context) {
	var request PaymentRequest
	if !bindRequest(ctx, &request) {
		return
	}
	payment, err := request.toDomain()
	if err != nil {
		respondError(ctx, handler.logger, "register payment", err)
		return
	}

	document, err := handler.documentService.RegisterPayment(ctx, ctx.Param("id"), payment)
	if err != nil {
		respondError(ctx, handler.logger, "register payment", err)
		return
	}
	ctx.JSON(http.StatusCreated, newDocumentResponse(document))
}

// Summary handles the GET request aggregating documents per status
// @Summary Financial summary
// @Tags Finance
// @Produce json
// @Param ownerId query string false "Restrict to one owner"
// @Success 200 {object} SummaryResponse
// @Router /financial-documents/summary [get]
func (handler *financeHandler) Summary(ctx *gin.Context) {
	summary, err := handler.documentService.Summary(ctx, ctx.Query("ownerId"))
	if err != nil {
		respondError(ctx, handler.logger, "summarize financial documents", err)
		return
	}
	ctx.JSON(http.StatusOK, newSummaryResponse(summary))
}
