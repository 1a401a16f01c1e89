package ocr

import (
	"context"
	"fmt"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
)

// NewExtractor creates the extractor of the configured provider.
// It returns nil without error when OCR is disabled.
func NewExtractor(ctx context.Context, settings *config.OCRSettings, logger logger.Logger) (ocr.Extractor, error) {
	switch settings.Provider {
	case config.OCRProviderNone:
		logger.Warn("OCR provider is disabled, document ingestion will be unavailable")
		return nil, nil
	case config.OCRProviderGemini:
		return NewGeminiExtractor(ctx, settings, logger)
	case config.OCRProviderMistral:
		return NewMistralExtractor(settings, logger), nil
	case config.OCRProviderOpenRouter:
		return NewOpenRouterExtractor(settings, logger), nil
	default:
		return nil, fmt.Errorf("unsupported OCR provider: %s", settings.Provider)
	}
}
