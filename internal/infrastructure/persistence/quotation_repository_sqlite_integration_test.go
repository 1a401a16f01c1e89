//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuotation(t *testing.T, number string, issue time.Time) *quotations.Quotation {
	t.Helper()

	return &quotations.Quotation{
		ID:              uuid.NewString(),
		QuotationNumber: number,
		ClientName:      "Sofia Lopes",
		PricingInput: quotations.PricingInput{
			PropertyType: quotations.PropertyTypeApartment,
			Area:         80,
			Bedrooms:     2,
			Bathrooms:    1,
		},
		Price: quotations.Price{
			BasePrice:       decimal.NewFromInt(80),
			AdditionalPrice: decimal.Zero,
			TotalPrice:      decimal.NewFromInt(80),
		},
		Status:          quotations.StatusDraft,
		IssueDate:       issue,
		ValidUntil:      issue.AddDate(0, 0, 30),
		DateTimeCreated: time.Now().UTC(),
	}
}

func TestQuotationSqliteRepository_LastNumberWithPrefix(t *testing.T) {
	ctx := SetupTestDB(t)

	for i, number := range []string{"ORC-2026-0001", "ORC-2026-0012", "ORC-2025-0099"} {
		q := newTestQuotation(t, number, Day(2026, time.January, i+1))
		require.NoError(t, ctx.QuotationRepo.Create(context.Background(), q))
	}

	last, err := ctx.QuotationRepo.LastNumberWithPrefix(context.Background(), quotations.NumberPrefixForYear(2026))
	require.NoError(t, err)
	assert.Equal(t, "ORC-2026-0012", last)

	none, err := ctx.QuotationRepo.LastNumberWithPrefix(context.Background(), quotations.NumberPrefixForYear(2027))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuotationSqliteRepository_CRUD(t *testing.T) {
	ctx := SetupTestDB(t)

	q := newTestQuotation(t, "ORC-2026-0001", time.Now().UTC().Truncate(24*time.Hour))
	require.NoError(t, ctx.QuotationRepo.Create(context.Background(), q))

	fetched, err := ctx.QuotationRepo.GetByID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.Area, fetched.Area)
	assert.True(t, q.TotalPrice.Equal(fetched.TotalPrice))

	q.Status = quotations.StatusSent
	require.NoError(t, ctx.QuotationRepo.UpdateByID(context.Background(), q))

	list, total, err := ctx.QuotationRepo.List(context.Background(), &quotations.QuotationQuery{Status: quotations.StatusSent})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, q.ID, list[0].ID)

	require.NoError(t, ctx.QuotationRepo.DeleteByID(context.Background(), q.ID))
	_, err = ctx.QuotationRepo.GetByID(context.Background(), q.ID)
	require.Error(t, err)
}

func TestQuotationSqliteRepository_CreateDuplicateNumber(t *testing.T) {
	ctx := SetupTestDB(t)

	require.NoError(t, ctx.QuotationRepo.Create(context.Background(), newTestQuotation(t, "ORC-2026-0001", Day(2026, time.March, 1))))

	err := ctx.QuotationRepo.Create(context.Background(), newTestQuotation(t, "ORC-2026-0001", Day(2026, time.March, 2)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict), "%v", err)
	assert.Contains(t, err.Error(), "ORC-2026-0001")
}
