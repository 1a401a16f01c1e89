//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentInput(ownerID, number string) *finance.Document {
	return &finance.Document{
		OwnerID:        ownerID,
		Type:           finance.TypeOutgoing,
		DocumentNumber: number,
		IssueDate:      persistence.Day(2026, time.March, 1),
		Items: []*finance.Item{
			{Description: "Gestão março", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(150)},
			{Description: "Limpezas", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(45)},
		},
	}
}

func TestDocumentService_CreateAndNumbering(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()

	owner, err := services.OwnerService.Create(ctx, persistence.CreateTestOwner(t, "Ana Ferreira"))
	require.NoError(t, err)

	document, err := services.DocumentService.Create(ctx, newDocumentInput(owner.ID, "FT 2026/1"))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(285).Equal(document.TotalAmount))
	assert.Equal(t, finance.StatusPending, document.Status)

	_, err = services.DocumentService.Create(ctx, newDocumentInput(owner.ID, "FT 2026/1"))
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	incoming := newDocumentInput(owner.ID, "FT 2026/1")
	incoming.Type = finance.TypeIncoming
	_, err = services.DocumentService.Create(ctx, incoming)
	assert.NoError(t, err, "numbers are unique per type")
}

func TestDocumentService_ItemsAndPayments(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()

	owner, err := services.OwnerService.Create(ctx, persistence.CreateTestOwner(t, "Ana Ferreira"))
	require.NoError(t, err)
	document, err := services.DocumentService.Create(ctx, newDocumentInput(owner.ID, "FT 2026/2"))
	require.NoError(t, err)

	document, err = services.DocumentService.AddItem(ctx, document.ID, &finance.Item{
		Description: "Check-in", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(15),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(document.TotalAmount))

	_, err = services.DocumentService.RegisterPayment(ctx, document.ID, &finance.Payment{
		Amount: decimal.NewFromInt(400), Method: finance.MethodTransfer,
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	document, err = services.DocumentService.RegisterPayment(ctx, document.ID, &finance.Payment{
		Amount: decimal.NewFromInt(100), Method: finance.MethodMBWay,
	})
	require.NoError(t, err)
	assert.Equal(t, finance.StatusPending, document.Status)

	document, err = services.DocumentService.RegisterPayment(ctx, document.ID, &finance.Payment{
		Amount: decimal.NewFromInt(200), Method: finance.MethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, finance.StatusPaid, document.Status)

	fetched, err := services.DocumentService.GetByID(ctx, document.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Items, 3)
	assert.Len(t, fetched.Payments, 2)
	assert.True(t, fetched.Outstanding().IsZero())
}

func TestDocumentService_RemoveItem(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()

	owner, err := services.OwnerService.Create(ctx, persistence.CreateTestOwner(t, "Ana Ferreira"))
	require.NoError(t, err)
	document, err := services.DocumentService.Create(ctx, newDocumentInput(owner.ID, "FT 2026/3"))
	require.NoError(t, err)

	document, err = services.DocumentService.RemoveItem(ctx, document.ID, document.Items[0].ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(135).Equal(document.TotalAmount))

	_, err = services.DocumentService.RemoveItem(ctx, document.ID, "not-an-item")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestDocumentService_Summary(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()
	pinClock(t, persistence.Day(2026, time.April, 15))

	owner, err := services.OwnerService.Create(ctx, persistence.CreateTestOwner(t, "Ana Ferreira"))
	require.NoError(t, err)

	overdue := newDocumentInput(owner.ID, "FT 2026/4")
	due := persistence.Day(2026, time.March, 31)
	overdue.DueDate = &due
	_, err = services.DocumentService.Create(ctx, overdue)
	require.NoError(t, err)

	paid, err := services.DocumentService.Create(ctx, newDocumentInput(owner.ID, "FT 2026/5"))
	require.NoError(t, err)
	_, err = services.DocumentService.RegisterPayment(ctx, paid.ID, &finance.Payment{Amount: paid.TotalAmount, Method: finance.MethodCard})
	require.NoError(t, err)

	summary, err := services.DocumentService.Summary(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ByStatus[finance.StatusPending].Count)
	assert.Equal(t, 1, summary.ByStatus[finance.StatusPaid].Count)
	assert.True(t, decimal.NewFromInt(285).Equal(summary.Outstanding))
	assert.Equal(t, 1, summary.OverdueCount)
}

func TestDocumentService_ItemChangesResyncStatus(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()

	owner, err := services.OwnerService.Create(ctx, persistence.CreateTestOwner(t, "Ana Ferreira"))
	require.NoError(t, err)
	document, err := services.DocumentService.Create(ctx, newDocumentInput(owner.ID, "FT 2026/6"))
	require.NoError(t, err)
	limpezas := document.Items[1]

	_, err = services.DocumentService.RegisterPayment(ctx, document.ID, &finance.Payment{
		Amount: decimal.NewFromInt(150), Method: finance.MethodTransfer,
	})
	require.NoError(t, err)

	document, err = services.DocumentService.RemoveItem(ctx, document.ID, limpezas.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.StatusPaid, document.Status)

	fetched, err := services.DocumentService.GetByID(ctx, document.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.StatusPaid, fetched.Status)
	assert.True(t, decimal.NewFromInt(150).Equal(fetched.TotalAmount))

	_, err = services.DocumentService.AddItem(ctx, document.ID, &finance.Item{
		Description: "Lavandaria", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	fetched, err = services.DocumentService.GetByID(ctx, document.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.StatusPending, fetched.Status)
	assert.True(t, decimal.NewFromInt(40).Equal(fetched.Outstanding()))
}
