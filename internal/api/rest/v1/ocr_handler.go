package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// uploadField is the multipart field carrying the document
const uploadField = "file"

// maxUploadBytes bounds how much of an upload is read; the service enforces the exact limit
const maxUploadBytes = 32 << 20

// OCRHandler defines the interface for document ingestion
type OCRHandler interface {
	Process(ctx *gin.Context)
	CreateReservation(ctx *gin.Context)
	Providers(ctx *gin.Context)
}

type ocrHandler struct {
	ocrService ocr.OCRService
	logger     logger.Logger
}

// NewOCRHandler creates a new OCRHandler
func NewOCRHandler(ocrService ocr.OCRService, logger logger.Logger) OCRHandler {
	return &ocrHandler{ocrService: ocrService, logger: logger}
}

// Process handles the POST request extracting a reservation draft from a document
// @Summary Extract a reservation from a document
// @Tags OCR
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or image"
// @Success 200 {object} ProcessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /simple-ocr/process [post]
func (handler *ocrHandler) Process(ctx *gin.Context) {
	document, ok := handler.readDocument(ctx)
	if !ok {
		return
	}

	result, err := handler.ocrService.ProcessDocument(ctx, document)
	if err != nil {
		respondError(ctx, handler.logger, "process document", err)
		return
	}
	ctx.JSON(http.StatusOK, newProcessResponse(result))
}

// CreateReservation handles the POST request creating a pending reservation from a document.
// When fields are missing or no property matches, the extraction is returned with status 422.
// @Summary Create a reservation from a document
// @Tags OCR
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or image"
// @Success 201 {object} ProcessResponse
// @Failure 422 {object} ProcessResponse
// @Failure 503 {object} ErrorResponse
// @Router /simple-ocr/reservations [post]
func (handler *ocrHandler) CreateReservation(ctx *gin.Context) {
	document, ok := handler.readDocument(ctx)
	if !ok {
		return
	}

	result, err := handler.ocrService.CreateReservationFromDocument(ctx, document)
	if err != nil {
		if result != nil && result.Extracted != nil && errors.Is(err, apperrors.ErrValidation) {
			handler.logger.Warn("document ", document.FileName, " not converted: ", err)
			response := newProcessResponse(result)
			response.Message = err.Error()
			ctx.JSON(http.StatusUnprocessableEntity, response)
			return
		}
		respondError(ctx, handler.logger, "create reservation from document", err)
		return
	}
	ctx.JSON(http.StatusCreated, newProcessResponse(result))
}

// Providers handles the GET request describing the configured provider
// @Summary OCR provider status
// @Tags OCR
// @Produce json
// @Success 200 {object} ProviderResponse
// @Router /simple-ocr/providers [get]
func (handler *ocrHandler) Providers(ctx *gin.Context) {
	info := handler.ocrService.Providers(ctx)
	ctx.JSON(http.StatusOK, ProviderResponse{Provider: info.Provider, Model: info.Model, Available: info.Available})
}

func (handler *ocrHandler) readDocument(ctx *gin.Context) (*ocr.Document, bool) {
	header, err := ctx.FormFile(uploadField)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid form data: missing %q file", uploadField)})
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not open %s", header.Filename)})
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not read %s", header.Filename)})
		return nil, false
	}
	return &ocr.Document{
		FileName: header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}, true
}
