//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialDocumentModel_RoundTrip(t *testing.T) {
	due := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	doc := &finance.Document{
		ID:             "7a6b5c4d-3e2f-4a1b-9c8d-7e6f5a4b3c2d",
		OwnerID:        "5e4d3c2b-1a0f-4e9d-8c7b-6a5f4e3d2c1b",
		Type:           finance.TypeOutgoing,
		DocumentNumber: "FT 2026/17",
		IssueDate:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        &due,
		TotalAmount:    decimal.RequireFromString("90"),
		PaidAmount:     decimal.RequireFromString("40"),
		Status:         finance.StatusInvoiced,
		Items: []*finance.Item{{
			ID:          "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
			DocumentID:  "7a6b5c4d-3e2f-4a1b-9c8d-7e6f5a4b3c2d",
			Description: "Limpeza",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.NewFromInt(45),
			Total:       decimal.NewFromInt(90),
		}},
		Payments: []*finance.Payment{{
			ID:          "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a",
			DocumentID:  "7a6b5c4d-3e2f-4a1b-9c8d-7e6f5a4b3c2d",
			Amount:      decimal.NewFromInt(40),
			PaymentDate: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
			Method:      finance.MethodMBWay,
		}},
		DateTimeCreated: time.Now(),
	}

	model := &FinancialDocumentModel{}
	model.FromDomain(doc)
	require.Len(t, model.Items, 1)
	require.Len(t, model.Payments, 1)
	assert.Equal(t, doc.ID, model.Items[0].DocumentID)

	back := model.ToDomain()
	assert.Equal(t, doc.DocumentNumber, back.DocumentNumber)
	assert.Equal(t, due, *back.DueDate)
	require.Len(t, back.Items, 1)
	assert.True(t, back.Items[0].Total.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, finance.MethodMBWay, back.Payments[0].Method)
}
