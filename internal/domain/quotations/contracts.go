package quotations

import "context"

// QuotationService defines the quotation use cases
type QuotationService interface {
	// Calculate previews the price without storing anything
	Calculate(ctx context.Context, input *PricingInput) (*Price, error)
	Create(ctx context.Context, quotation *Quotation) (*Quotation, error)
	List(ctx context.Context, query *QuotationQuery) ([]*Quotation, int64, error)
	GetByID(ctx context.Context, quotationID string) (*Quotation, error)
	// Update replaces editable fields and recalculates the price
	Update(ctx context.Context, quotation *Quotation) (*Quotation, error)
	UpdateStatus(ctx context.Context, quotationID, status string) (*Quotation, error)
	DeleteByID(ctx context.Context, quotationID string) error
	// RenderPDF returns the quotation document
	RenderPDF(ctx context.Context, quotationID string) ([]byte, *Quotation, error)
	// Send emails the PDF to the client and moves a draft to sent
	Send(ctx context.Context, quotationID string) (*Quotation, error)
}

// PriceCalculator evaluates the pricing formulas
type PriceCalculator interface {
	Calculate(input *PricingInput) (*Price, error)
}

// PDFRenderer renders a quotation document
type PDFRenderer interface {
	RenderQuotation(quotation *Quotation) ([]byte, error)
}

// QuotationRepository defines the interface for Quotation-related operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *Quotation) error
	List(ctx context.Context, query *QuotationQuery) ([]*Quotation, int64, error)
	GetByID(ctx context.Context, quotationID string) (*Quotation, error)
	// LastNumberWithPrefix returns the highest quotation number starting with prefix, or ""
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
	UpdateByID(ctx context.Context, quotation *Quotation) error
	DeleteByID(ctx context.Context, quotationID string) error
}
