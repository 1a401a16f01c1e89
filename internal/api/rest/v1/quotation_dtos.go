package v1

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"

	"github.com/shopspring/decimal"
)

// PricingRequest carries the property characteristics priced by a quotation
type PricingRequest struct {
	PropertyType   string  `json:"propertyType" validate:"required,oneof=apartment house villa commercial"`
	PropertyArea   float64 `json:"propertyArea" validate:"gt=0"`
	ExteriorArea   float64 `json:"exteriorArea" validate:"gte=0"`
	Bedrooms       int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms      int     `json:"bathrooms" validate:"gte=0"`
	IsDuplex       bool    `json:"isDuplex"`
	HasBBQ         bool    `json:"hasBBQ"`
	HasGlassGarden bool    `json:"hasGlassGarden"`
}

// Validate for validating PricingRequest struct
func (r *PricingRequest) Validate() error {
	return validators.ValidateStruct(r)
}

func (r *PricingRequest) toDomain() quotations.PricingInput {
	return quotations.PricingInput{
		PropertyType:   r.PropertyType,
		Area:           r.PropertyArea,
		ExteriorArea:   r.ExteriorArea,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		IsDuplex:       r.IsDuplex,
		HasBBQ:         r.HasBBQ,
		HasGlassGarden: r.HasGlassGarden,
	}
}

// PriceResponse is the price breakdown of a quotation
type PriceResponse struct {
	BasePrice       decimal.Decimal `json:"basePrice"`
	AdditionalPrice decimal.Decimal `json:"additionalPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

func newPriceResponse(p *quotations.Price) PriceResponse {
	return PriceResponse{BasePrice: p.BasePrice, AdditionalPrice: p.AdditionalPrice, TotalPrice: p.TotalPrice}
}

// QuotationRequest is the body of quotation create and update
type QuotationRequest struct {
	ClientName      string `json:"clientName" validate:"required,max=255"`
	ClientEmail     string `json:"clientEmail"`
	ClientPhone     string `json:"clientPhone"`
	PropertyAddress string `json:"propertyAddress"`
	PricingRequest
	IssueDate    string `json:"issueDate"`
	ValidUntil   string `json:"validUntil"`
	Notes        string `json:"notes"`
	PaymentTerms string `json:"paymentTerms"`
}

// Validate for validating QuotationRequest struct
func (r *QuotationRequest) Validate() error {
	return validators.ValidateStruct(r)
}

func (r *QuotationRequest) toDomain(id string) (*quotations.Quotation, error) {
	issueDate, err := httputil.ParseOptionalDate(r.IssueDate)
	if err != nil {
		return nil, err
	}
	validUntil, err := httputil.ParseOptionalDate(r.ValidUntil)
	if err != nil {
		return nil, err
	}
	return &quotations.Quotation{
		ID:              id,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		PropertyAddress: r.PropertyAddress,
		PricingInput:    r.PricingRequest.toDomain(),
		IssueDate:       issueDate,
		ValidUntil:      validUntil,
		Notes:           r.Notes,
		PaymentTerms:    r.PaymentTerms,
	}, nil
}

// QuotationResponse represents a quotation
type QuotationResponse struct {
	ID              string          `json:"id"`
	QuotationNumber string          `json:"quotationNumber"`
	ClientName      string          `json:"clientName"`
	ClientEmail     string          `json:"clientEmail"`
	ClientPhone     string          `json:"clientPhone"`
	PropertyAddress string          `json:"propertyAddress"`
	PropertyType    string          `json:"propertyType"`
	PropertyArea    float64         `json:"propertyArea"`
	ExteriorArea    float64         `json:"exteriorArea"`
	Bedrooms        int             `json:"bedrooms"`
	Bathrooms       int             `json:"bathrooms"`
	IsDuplex        bool            `json:"isDuplex"`
	HasBBQ          bool            `json:"hasBBQ"`
	HasGlassGarden  bool            `json:"hasGlassGarden"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	AdditionalPrice decimal.Decimal `json:"additionalPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          string          `json:"status"`
	IssueDate       string          `json:"issueDate"`
	ValidUntil      string          `json:"validUntil"`
	Notes           string          `json:"notes"`
	PaymentTerms    string          `json:"paymentTerms"`
	DateTimeCreated time.Time       `json:"dateTimeCreated"`
	DateTimeUpdated time.Time       `json:"dateTimeUpdated"`
}

func newQuotationResponse(q *quotations.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:              q.ID,
		QuotationNumber: q.QuotationNumber,
		ClientName:      q.ClientName,
		ClientEmail:     q.ClientEmail,
		ClientPhone:     q.ClientPhone,
		PropertyAddress: q.PropertyAddress,
		PropertyType:    q.PropertyType,
		PropertyArea:    q.Area,
		ExteriorArea:    q.ExteriorArea,
		Bedrooms:        q.Bedrooms,
		Bathrooms:       q.Bathrooms,
		IsDuplex:        q.IsDuplex,
		HasBBQ:          q.HasBBQ,
		HasGlassGarden:  q.HasGlassGarden,
		BasePrice:       q.BasePrice,
		AdditionalPrice: q.AdditionalPrice,
		TotalPrice:      q.TotalPrice,
		Status:          q.Status,
		IssueDate:       formatDate(q.IssueDate),
		ValidUntil:      formatDate(q.ValidUntil),
		Notes:           q.Notes,
		PaymentTerms:    q.PaymentTerms,
		DateTimeCreated: q.DateTimeCreated,
		DateTimeUpdated: q.DateTimeUpdated,
	}
}
