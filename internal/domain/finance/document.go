// Package finance models invoices and receipts tracked for owner billing.
package finance

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/paging"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Document types
const (
	TypeIncoming = "incoming"
	TypeOutgoing = "outgoing"
)

// Document statuses
const (
	StatusPending   = "pending"
	StatusInvoiced  = "invoiced"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// Payment methods
const (
	MethodTransfer = "transfer"
	MethodCash     = "cash"
	MethodCard     = "card"
	MethodMBWay    = "mbway"
	MethodOther    = "other"
)

// Document is a financial document with its line items and payments
type Document struct {
	ID              string    `validate:"required,uuid4"`
	OwnerID         string    `validate:"required,uuid4"`
	Type            string    `validate:"required,oneof=incoming outgoing"`
	DocumentNumber  string    `validate:"required,min=1,max=64"`
	IssueDate       time.Time `validate:"required"`
	DueDate         *time.Time
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	Status          string     `validate:"required,oneof=pending invoiced paid cancelled"`
	Description     string     `validate:"max=2000"`
	Items           []*Item    `validate:"dive"`
	Payments        []*Payment `validate:"dive"`
	DateTimeCreated time.Time  `validate:"required"`
	DateTimeUpdated time.Time
}

// Item is a document line
type Item struct {
	ID            string `validate:"required,uuid4"`
	DocumentID    string `validate:"required,uuid4"`
	Description   string `validate:"required,min=1,max=500"`
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
	ReservationID *string `validate:"omitempty,uuid4"`
	PropertyID    *string `validate:"omitempty,uuid4"`
}

// Payment records money received or paid against a document
type Payment struct {
	ID          string `validate:"required,uuid4"`
	DocumentID  string `validate:"required,uuid4"`
	Amount      decimal.Decimal
	PaymentDate time.Time `validate:"required"`
	Method      string    `validate:"required,oneof=transfer cash card mbway other"`
	Reference   string    `validate:"max=255"`
}

// Validate for validating Document struct
func (d *Document) Validate() error {
	if err := validators.ValidateStruct(d); err != nil {
		return err
	}
	if d.DueDate != nil && d.DueDate.Before(d.IssueDate) {
		return validators.Invalid("due date must not be before issue date")
	}
	if d.TotalAmount.IsNegative() || d.PaidAmount.IsNegative() {
		return validators.Invalid("amounts must not be negative")
	}
	if d.PaidAmount.GreaterThan(d.TotalAmount) {
		return validators.Invalid("paid amount exceeds total amount")
	}
	for _, item := range d.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate for validating Item struct
func (i *Item) Validate() error {
	if err := validators.ValidateStruct(i); err != nil {
		return err
	}
	if !i.Quantity.IsPositive() {
		return validators.Invalid("item quantity must be greater than zero")
	}
	if i.UnitPrice.IsNegative() {
		return validators.Invalid("item unit price must not be negative")
	}
	return nil
}

// Validate for validating Payment struct
func (p *Payment) Validate() error {
	if err := validators.ValidateStruct(p); err != nil {
		return err
	}
	if !p.Amount.IsPositive() {
		return validators.Invalid("payment amount must be greater than zero")
	}
	return nil
}

// ComputeTotal sets the item total to quantity times unit price
func (i *Item) ComputeTotal() {
	i.Total = i.Quantity.Mul(i.UnitPrice).Round(2)
}

// RecalculateTotal sums the item totals when the document has items
func (d *Document) RecalculateTotal() {
	if len(d.Items) == 0 {
		return
	}
	total := decimal.Zero
	for _, item := range d.Items {
		item.ComputeTotal()
		total = total.Add(item.Total)
	}
	d.TotalAmount = total
}

// AddItem appends an item and recomputes the total
func (d *Document) AddItem(item *Item) error {
	if d.Status == StatusCancelled {
		return validators.Invalid("cancelled documents accept no items")
	}
	item.DocumentID = d.ID
	item.ComputeTotal()
	if err := item.Validate(); err != nil {
		return err
	}
	d.Items = append(d.Items, item)
	d.RecalculateTotal()
	if d.PaidAmount.GreaterThan(d.TotalAmount) {
		return validators.Invalid("paid amount would exceed the new total")
	}
	d.syncStatus()
	return nil
}

// RemoveItem drops the item with itemID and recomputes the total
func (d *Document) RemoveItem(itemID string) error {
	if d.Status == StatusCancelled {
		return validators.Invalid("cancelled documents accept no item changes")
	}
	idx := -1
	for i, item := range d.Items {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return validators.Invalid("item %s does not belong to document %s", itemID, d.ID)
	}
	d.Items = append(d.Items[:idx], d.Items[idx+1:]...)
	if len(d.Items) == 0 {
		d.TotalAmount = decimal.Zero
	}
	d.RecalculateTotal()
	if d.PaidAmount.GreaterThan(d.TotalAmount) {
		return validators.Invalid("paid amount would exceed the new total")
	}
	d.syncStatus()
	return nil
}

// RegisterPayment applies a payment, marking the document paid when fully settled
func (d *Document) RegisterPayment(p *Payment) error {
	if d.Status == StatusCancelled {
		return validators.Invalid("cancelled documents accept no payments")
	}
	p.DocumentID = d.ID
	if err := p.Validate(); err != nil {
		return err
	}
	paid := d.PaidAmount.Add(p.Amount)
	if paid.GreaterThan(d.TotalAmount) {
		return validators.Invalid("payment of %s exceeds outstanding amount %s", p.Amount.StringFixed(2), d.Outstanding().StringFixed(2))
	}
	d.PaidAmount = paid
	d.Payments = append(d.Payments, p)
	d.syncStatus()
	return nil
}

// syncStatus marks a settled document paid and reopens a paid one whose total grew.
// Cancelled documents keep their status.
func (d *Document) syncStatus() {
	if d.Status == StatusCancelled {
		return
	}
	settled := d.TotalAmount.IsPositive() && d.PaidAmount.Equal(d.TotalAmount)
	switch {
	case settled:
		d.Status = StatusPaid
	case d.Status == StatusPaid:
		d.Status = StatusPending
	}
}

// Outstanding returns the amount still to be paid
func (d *Document) Outstanding() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

// IsOverdue reports whether the document is unpaid, not cancelled and past its due date
func (d *Document) IsOverdue(today time.Time) bool {
	if d.DueDate == nil || d.Status == StatusPaid || d.Status == StatusCancelled {
		return false
	}
	return d.DueDate.Before(today)
}

// DocumentQuery filters document lists. From/To bound the issue date.
type DocumentQuery struct {
	paging.Query
	OwnerID string `validate:"omitempty,uuid4"`
	Type    string `validate:"omitempty,oneof=incoming outgoing"`
	Status  string `validate:"omitempty,oneof=pending invoiced paid cancelled"`
	From    time.Time
	To      time.Time
}

// SortableColumns are the columns a document list may be sorted by
var SortableColumns = []string{"issue_date", "due_date", "total_amount", "document_number", "date_time_created"}

// Validate for validating DocumentQuery struct
func (q *DocumentQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// StatusTotal aggregates documents sharing a status
type StatusTotal struct {
	Count       int
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
}

// Summary aggregates documents per status
type Summary struct {
	ByStatus     map[string]*StatusTotal
	Outstanding  decimal.Decimal
	OverdueCount int
}

// Summarize aggregates docs as of today
func Summarize(docs []*Document, today time.Time) *Summary {
	summary := &Summary{ByStatus: map[string]*StatusTotal{}, Outstanding: decimal.Zero}
	for _, status := range []string{StatusPending, StatusInvoiced, StatusPaid, StatusCancelled} {
		summary.ByStatus[status] = &StatusTotal{TotalAmount: decimal.Zero, PaidAmount: decimal.Zero}
	}
	for _, d := range docs {
		st := summary.ByStatus[d.Status]
		if st == nil {
			continue
		}
		st.Count++
		st.TotalAmount = st.TotalAmount.Add(d.TotalAmount)
		st.PaidAmount = st.PaidAmount.Add(d.PaidAmount)
		if d.Status != StatusCancelled {
			summary.Outstanding = summary.Outstanding.Add(d.Outstanding())
		}
		if d.IsOverdue(today) {
			summary.OverdueCount++
		}
	}
	return summary
}
