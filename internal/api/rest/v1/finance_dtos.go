package v1

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"

	"github.com/shopspring/decimal"
)

// DocumentRequest is the body of financial document create and update
type DocumentRequest struct {
	OwnerID        string          `json:"ownerId" validate:"required,uuid4"`
	Type           string          `json:"type" validate:"required,oneof=incoming outgoing"`
	DocumentNumber string          `json:"documentNumber" validate:"required,max=64"`
	IssueDate      string          `json:"issueDate" validate:"required"`
	DueDate        string          `json:"dueDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         string          `json:"status"`
	Description    string          `json:"description"`
	Items          []ItemRequest   `json:"items" validate:"dive"`
}

// Validate for validating DocumentRequest struct
func (r *DocumentRequest) Validate() error {
	return validators.ValidateStruct(r)
}

func (r *DocumentRequest) toDomain(id string) (*finance.Document, error) {
	issueDate, err := httputil.ParseDate(r.IssueDate)
	if err != nil {
		return nil, err
	}
	document := &finance.Document{
		ID:             id,
		OwnerID:        r.OwnerID,
		Type:           r.Type,
		DocumentNumber: r.DocumentNumber,
		IssueDate:      issueDate,
		TotalAmount:    r.TotalAmount,
		Status:         r.Status,
		Description:    r.Description,
	}
	if r.DueDate != "" {
		dueDate, err := httputil.ParseDate(r.DueDate)
		if err != nil {
			return nil, err
		}
		document.DueDate = &dueDate
	}
	for i := range r.Items {
		document.Items = append(document.Items, r.Items[i].toDomain())
	}
	return document, nil
}

// ItemRequest is a document line
type ItemRequest struct {
	Description   string          `json:"description" validate:"required,max=500"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	ReservationID *string         `json:"reservationId" validate:"omitempty,uuid4"`
	PropertyID    *string         `json:"propertyId" validate:"omitempty,uuid4"`
}

// Validate for validating ItemRequest struct
func (r *ItemRequest) Validate() error {
	return validators.ValidateStruct(r)
}

func (r *ItemRequest) toDomain() *finance.Item {
	return &finance.Item{
		Description:   r.Description,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
		ReservationID: r.ReservationID,
		PropertyID:    r.PropertyID,
	}
}

// PaymentRequest registers a payment against a document
type PaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"`
	Method      string          `json:"method" validate:"required,oneof=transfer cash card mbway other"`
	Reference   string          `json:"reference" validate:"max=255"`
}

// Validate for validating PaymentRequest struct
func (r *PaymentRequest) Validate() error {
	if err := validators.ValidateStruct(r); err != nil {
		return err
	}
	if !r.Amount.IsPositive() {
		return validators.Invalid("payment amount must be greater than zero")
	}
	return nil
}

func (r *PaymentRequest) toDomain() (*finance.Payment, error) {
	paymentDate, err := httputil.ParseOptionalDate(r.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &finance.Payment{
		Amount:      r.Amount,
		PaymentDate: paymentDate,
		Method:      r.Method,
		Reference:   r.Reference,
	}, nil
}

// ItemResponse represents a document line
type ItemResponse struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
	ReservationID *string         `json:"reservationId"`
	PropertyID    *string         `json:"propertyId"`
}

// PaymentResponse represents a registered payment
type PaymentResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
}

// DocumentResponse represents a financial document
type DocumentResponse struct {
	ID              string            `json:"id"`
	OwnerID         string            `json:"ownerId"`
	Type            string            `json:"type"`
	DocumentNumber  string            `json:"documentNumber"`
	IssueDate       string            `json:"issueDate"`
	DueDate         *string           `json:"dueDate"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	PaidAmount      decimal.Decimal   `json:"paidAmount"`
	Outstanding     decimal.Decimal   `json:"outstanding"`
	Status          string            `json:"status"`
	Description     string            `json:"description"`
	Items           []ItemResponse    `json:"items"`
	Payments        []PaymentResponse `json:"payments"`
	DateTimeCreated time.Time         `json:"dateTimeCreated"`
	DateTimeUpdated time.Time         `json:"dateTimeUpdated"`
}

func newDocumentResponse(d *finance.Document) DocumentResponse {
	return DocumentResponse{
		ID:             d.ID,
		OwnerID:        d.OwnerID,
		Type:           d.Type,
		DocumentNumber: d.DocumentNumber,
		IssueDate:      formatDate(d.IssueDate),
		DueDate:        formatOptionalDate(d.DueDate),
		TotalAmount:    d.TotalAmount,
		PaidAmount:     d.PaidAmount,
		Outstanding:    d.Outstanding(),
		Status:         d.Status,
		Description:    d.Description,
		Items: mapSlice(d.Items, func(i *finance.Item) ItemResponse {
			return ItemResponse{
				ID:            i.ID,
				Description:   i.Description,
				Quantity:      i.Quantity,
				UnitPrice:     i.UnitPrice,
				Total:         i.Total,
				ReservationID: i.ReservationID,
				PropertyID:    i.PropertyID,
			}
		}),
		Payments: mapSlice(d.Payments, func(p *finance.Payment) PaymentResponse {
			return PaymentResponse{
				ID:          p.ID,
				Amount:      p.Amount,
				PaymentDate: formatDate(p.PaymentDate),
				Method:      p.Method,
				Reference:   p.Reference,
			}
		}),
		DateTimeCreated: d.DateTimeCreated,
		DateTimeUpdated: d.DateTimeUpdated,
	}
}

// StatusTotalResponse aggregates documents sharing a status
type StatusTotalResponse struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
}

// SummaryResponse aggregates documents per status
type SummaryResponse struct {
	ByStatus     map[string]StatusTotalResponse `json:"byStatus"`
	Outstanding  decimal.Decimal                `json:"outstanding"`
	OverdueCount int                            `json:"overdueCount"`
}

func newSummaryResponse(s *finance.Summary) SummaryResponse {
	byStatus := make(map[string]StatusTotalResponse, len(s.ByStatus))
	for status, total := range s.ByStatus {
		byStatus[status] = StatusTotalResponse{Count: total.Count, TotalAmount: total.TotalAmount, PaidAmount: total.PaidAmount}
	}
	return SummaryResponse{ByStatus: byStatus, Outstanding: s.Outstanding, OverdueCount: s.OverdueCount}
}
