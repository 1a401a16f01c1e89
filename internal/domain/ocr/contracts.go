package ocr

import "context"

// Extractor sends a document to a remote OCR provider
type Extractor interface {
	// Name returns the provider name
	Name() string
	// Model returns the provider model used for extraction
	Model() string
	Extract(ctx context.Context, document *Document) (*Extraction, error)
}

// OCRService defines the document ingestion use cases
type OCRService interface {
	// ProcessDocument extracts and matches without storing anything
	ProcessDocument(ctx context.Context, document *Document) (*ProcessResult, error)
	// CreateReservationFromDocument extracts, matches and stores a pending reservation
	CreateReservationFromDocument(ctx context.Context, document *Document) (*ProcessResult, error)
	// Providers describes the configured provider
	Providers(ctx context.Context) *ProviderInfo
}
