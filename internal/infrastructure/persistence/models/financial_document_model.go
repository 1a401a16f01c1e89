package models

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// FinancialDocumentModel is the GORM database model for financial documents
type FinancialDocumentModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	OwnerID         string    `gorm:"not null;index;type:varchar(36)"`
	Type            string    `gorm:"not null;uniqueIndex:idx_document_type_number;type:varchar(20)"`
	DocumentNumber  string    `gorm:"not null;uniqueIndex:idx_document_type_number;type:varchar(64)"`
	IssueDate       time.Time `gorm:"not null;index"`
	DueDate         *time.Time
	TotalAmount     decimal.Decimal      `gorm:"type:numeric(12,2);not null;default:0"`
	PaidAmount      decimal.Decimal      `gorm:"type:numeric(12,2);not null;default:0"`
	Status          string               `gorm:"not null;index;type:varchar(20)"`
	Description     string               `gorm:"type:text"`
	Items           []DocumentItemModel  `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
	Payments        []PaymentRecordModel `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
	DateTimeCreated time.Time            `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (FinancialDocumentModel) TableName() string {
	return "financial_documents"
}

// DocumentItemModel is the GORM database model for document items
type DocumentItemModel struct {
	ID            string          `gorm:"primaryKey;type:varchar(36)"`
	DocumentID    string          `gorm:"not null;index;type:varchar(36)"`
	Description   string          `gorm:"not null;type:varchar(500)"`
	Quantity      decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ReservationID *string         `gorm:"index;type:varchar(36)"`
	PropertyID    *string         `gorm:"index;type:varchar(36)"`
}

// TableName specifies the table name for GORM
func (DocumentItemModel) TableName() string {
	return "financial_document_items"
}

// PaymentRecordModel is the GORM database model for payments
type PaymentRecordModel struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	DocumentID  string          `gorm:"not null;index;type:varchar(36)"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentDate time.Time       `gorm:"not null"`
	Method      string          `gorm:"not null;type:varchar(20)"`
	Reference   string          `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (PaymentRecordModel) TableName() string {
	return "payment_records"
}

// ToDomain converts GORM model to domain entity
func (m *FinancialDocumentModel) ToDomain() *finance.Document {
	d := &finance.Document{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Type:            m.Type,
		DocumentNumber:  m.DocumentNumber,
		IssueDate:       m.IssueDate.UTC(),
		TotalAmount:     m.TotalAmount,
		PaidAmount:      m.PaidAmount,
		Status:          m.Status,
		Description:     m.Description,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
	if m.DueDate != nil {
		due := m.DueDate.UTC()
		d.DueDate = &due
	}
	for i := range m.Items {
		d.Items = append(d.Items, m.Items[i].ToDomain())
	}
	for i := range m.Payments {
		d.Payments = append(d.Payments, m.Payments[i].ToDomain())
	}
	return d
}

// FromDomain converts domain entity to GORM model, items and payments included
func (m *FinancialDocumentModel) FromDomain(d *finance.Document) {
	m.ID = d.ID
	m.OwnerID = d.OwnerID
	m.Type = d.Type
	m.DocumentNumber = d.DocumentNumber
	m.IssueDate = d.IssueDate
	m.DueDate = d.DueDate
	m.TotalAmount = d.TotalAmount
	m.PaidAmount = d.PaidAmount
	m.Status = d.Status
	m.Description = d.Description
	m.DateTimeCreated = d.DateTimeCreated
	m.DateTimeUpdated = d.DateTimeUpdated
	m.Items = make([]DocumentItemModel, len(d.Items))
	for i, item := range d.Items {
		m.Items[i].FromDomain(item)
	}
	m.Payments = make([]PaymentRecordModel, len(d.Payments))
	for i, p := range d.Payments {
		m.Payments[i].FromDomain(p)
	}
}

// ToDomain converts GORM model to domain entity
func (m *DocumentItemModel) ToDomain() *finance.Item {
	return &finance.Item{
		ID:            m.ID,
		DocumentID:    m.DocumentID,
		Description:   m.Description,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		Total:         m.Total,
		ReservationID: m.ReservationID,
		PropertyID:    m.PropertyID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DocumentItemModel) FromDomain(i *finance.Item) {
	m.ID = i.ID
	m.DocumentID = i.DocumentID
	m.Description = i.Description
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.Total = i.Total
	m.ReservationID = i.ReservationID
	m.PropertyID = i.PropertyID
}

// ToDomain converts GORM model to domain entity
func (m *PaymentRecordModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		ID:          m.ID,
		DocumentID:  m.DocumentID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate.UTC(),
		Method:      m.Method,
		Reference:   m.Reference,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentRecordModel) FromDomain(p *finance.Payment) {
	m.ID = p.ID
	m.DocumentID = p.DocumentID
	m.Amount = p.Amount
	m.PaymentDate = p.PaymentDate
	m.Method = p.Method
	m.Reference = p.Reference
}
