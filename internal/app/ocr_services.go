package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
)

// Accepted upload types. Images are sniffed, PDFs recognized by signature.
var supportedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"image/gif":       true,
}

// ocrService implements the OCRService interface
type ocrService struct {
	extractor          ocr.Extractor
	propertyService    properties.PropertyService
	reservationService reservations.ReservationService
	minMatchScore      float64
	maxFileSize        int64
	logger             logger.Logger
}

// NewOCRService creates a new instance of OCRService. A nil extractor makes every
// extraction fail with apperrors.ErrUnavailable.
func NewOCRService(
	extractor ocr.Extractor,
	propertyService properties.PropertyService,
	reservationService reservations.ReservationService,
	minMatchScore float64,
	maxFileSize int64,
	logger logger.Logger,
) (ocr.OCRService, error) {
	return &ocrService{
		extractor:          extractor,
		propertyService:    propertyService,
		reservationService: reservationService,
		minMatchScore:      minMatchScore,
		maxFileSize:        maxFileSize,
		logger:             logger,
	}, nil
}

// ProcessDocument extracts the reservation fields and matches the property
func (s *ocrService) ProcessDocument(ctx context.Context, document *ocr.Document) (*ocr.ProcessResult, error) {
	if s.extractor == nil {
		return nil, fmt.Errorf("%w: no OCR provider is configured", apperrors.ErrUnavailable)
	}
	if err := s.checkDocument(document); err != nil {
		return nil, err
	}

	extraction, err := s.extractor.Extract(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	extracted := ocr.ParseReservation(extraction)

	result := &ocr.ProcessResult{
		Provider:  extraction.Provider,
		RawText:   extraction.Text,
		Extracted: extracted,
	}
	if extracted.PropertyName != "" {
		candidates, err := s.propertyService.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		result.Match = ocr.MatchProperty(extracted.PropertyName, candidates, s.minMatchScore)
	}

	s.logger.With("file", document.FileName, "provider", result.Provider,
		"confidence", extracted.Confidence, "matched", result.Match != nil).Info("document processed")
	return result, nil
}

// CreateReservationFromDocument stores a pending reservation once every field is known and the property matched
func (s *ocrService) CreateReservationFromDocument(ctx context.Context, document *ocr.Document) (*ocr.ProcessResult, error) {
	result, err := s.ProcessDocument(ctx, document)
	if err != nil {
		return nil, err
	}

	extracted := result.Extracted
	if !extracted.Complete() {
		return result, fmt.Errorf("%w: missing fields %s", apperrors.ErrValidation, strings.Join(extracted.MissingFields, ", "))
	}
	if result.Match == nil {
		return result, fmt.Errorf("%w: no property matches %q", apperrors.ErrValidation, extracted.PropertyName)
	}

	platform := extracted.Platform
	if platform == "" {
		platform = reservations.PlatformOther
	}
	numGuests := extracted.NumGuests
	if numGuests <= 0 {
		numGuests = 1
	}
	reservation := &reservations.Reservation{
		PropertyID:   result.Match.PropertyID,
		GuestName:    extracted.GuestName,
		GuestEmail:   extracted.GuestEmail,
		GuestPhone:   extracted.GuestPhone,
		CheckInDate:  *extracted.CheckInDate,
		CheckOutDate: *extracted.CheckOutDate,
		NumGuests:    numGuests,
		TotalAmount:  *extracted.TotalAmount,
		Status:       reservations.StatusPending,
		Platform:     platform,
		Source:       reservations.SourceOCR,
		Notes:        fmt.Sprintf("Importada de %s via %s", document.FileName, result.Provider),
	}
	created, err := s.reservationService.Create(ctx, reservation)
	if err != nil {
		return result, err
	}
	result.Reservation = created
	return result, nil
}

// Providers describes the configured provider
func (s *ocrService) Providers(_ context.Context) *ocr.ProviderInfo {
	if s.extractor == nil {
		return &ocr.ProviderInfo{Provider: "none", Available: false}
	}
	return &ocr.ProviderInfo{Provider: s.extractor.Name(), Model: s.extractor.Model(), Available: true}
}

func (s *ocrService) checkDocument(document *ocr.Document) error {
	if document == nil || len(document.Data) == 0 {
		return fmt.Errorf("%w: the document is empty", apperrors.ErrValidation)
	}
	if s.maxFileSize > 0 && int64(len(document.Data)) > s.maxFileSize {
		return fmt.Errorf("%w: the document exceeds %d bytes", apperrors.ErrValidation, s.maxFileSize)
	}
	if document.MIMEType == "" || document.MIMEType == "application/octet-stream" {
		document.MIMEType = http.DetectContentType(document.Data)
	}
	document.MIMEType = strings.TrimSpace(strings.SplitN(document.MIMEType, ";", 2)[0])
	if !supportedDocumentTypes[document.MIMEType] {
		return fmt.Errorf("%w: unsupported document type %s", apperrors.ErrValidation, document.MIMEType)
	}
	return nil
}
