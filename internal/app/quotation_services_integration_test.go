//go:build integration
// +build integration

package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/reporting"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuotationInput() *quotations.Quotation {
	return &quotations.Quotation{
		ClientName:  "Sofia Lopes",
		ClientEmail: "sofia@example.pt",
		PricingInput: quotations.PricingInput{
			PropertyType: quotations.PropertyTypeApartment,
			Area:         100,
			Bedrooms:     2,
			Bathrooms:    1,
		},
	}
}

func TestQuotationService_CreateNumbersAndPrices(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()
	pinClock(t, persistence.Day(2026, time.March, 1))

	first, err := services.QuotationService.Create(ctx, newQuotationInput())
	require.NoError(t, err)
	assert.Equal(t, "ORC-2026-0001", first.QuotationNumber)
	assert.Equal(t, quotations.StatusDraft, first.Status)
	assert.True(t, persistence.Day(2026, time.March, 31).Equal(first.ValidUntil))
	// (20 + 100*0.3 + 2*5 + 1*8) * 1.0
	assert.Equal(t, "68.00", first.TotalPrice.StringFixed(2))

	second, err := services.QuotationService.Create(ctx, newQuotationInput())
	require.NoError(t, err)
	assert.Equal(t, "ORC-2026-0002", second.QuotationNumber)
}

func TestQuotationService_ExpiresOnRead(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()
	pinClock(t, persistence.Day(2026, time.March, 1))

	quotation, err := services.QuotationService.Create(ctx, newQuotationInput())
	require.NoError(t, err)

	pinClock(t, persistence.Day(2026, time.May, 1))
	fetched, err := services.QuotationService.GetByID(ctx, quotation.ID)
	require.NoError(t, err)
	assert.Equal(t, quotations.StatusExpired, fetched.Status)

	_, err = services.QuotationService.UpdateStatus(ctx, quotation.ID, quotations.StatusAccepted)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestQuotationService_Send(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()

	quotation, err := services.QuotationService.Create(ctx, newQuotationInput())
	require.NoError(t, err)

	sent, err := services.QuotationService.Send(ctx, quotation.ID)
	require.NoError(t, err)
	assert.Equal(t, quotations.StatusSent, sent.Status)

	messages := services.Mailer.Sent()
	require.Len(t, messages, 1)
	assert.Equal(t, "sofia@example.pt", messages[0].To)
	require.Len(t, messages[0].Attachments, 1)
	assert.Equal(t, quotation.QuotationNumber+".pdf", messages[0].Attachments[0].FileName)
	assert.True(t, bytes.HasPrefix(messages[0].Attachments[0].Data, []byte("%PDF")))

	accepted, err := services.QuotationService.UpdateStatus(ctx, quotation.ID, quotations.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, quotations.StatusAccepted, accepted.Status)
}

func TestQuotationService_UpdateRecalculates(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()

	quotation, err := services.QuotationService.Create(ctx, newQuotationInput())
	require.NoError(t, err)

	quotation.HasBBQ = true
	updated, err := services.QuotationService.Update(ctx, quotation)
	require.NoError(t, err)
	assert.Equal(t, "30.00", updated.AdditionalPrice.StringFixed(2))
	assert.Equal(t, "98.00", updated.TotalPrice.StringFixed(2))
}

// staleNumberRepository answers the first number lookups with an empty sequence,
// as if another create had not committed yet
type staleNumberRepository struct {
	quotations.QuotationRepository
	staleLookups int
}

func (r *staleNumberRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	if r.staleLookups > 0 {
		r.staleLookups--
		return "", nil
	}
	return r.QuotationRepository.LastNumberWithPrefix(ctx, prefix)
}

func newStaleNumberService(t *testing.T, services *TestServices, staleLookups int) quotations.QuotationService {
	t.Helper()
	pricing := config.DefaultPricingSettings()
	calculator, err := NewFormulaPriceCalculator(&pricing)
	require.NoError(t, err)
	log := testutil.SetupTestLogger(t)
	repository := &staleNumberRepository{QuotationRepository: services.DBContext.QuotationRepo, staleLookups: staleLookups}
	service, err := NewQuotationService(repository, calculator, reporting.NewQuotationRenderer(log), services.Mailer, pricing.ValidityDays, log)
	require.NoError(t, err)
	return service
}

func TestQuotationService_CreateRetriesTakenNumber(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()
	pinClock(t, persistence.Day(2026, time.March, 1))

	first, err := services.QuotationService.Create(ctx, newQuotationInput())
	require.NoError(t, err)
	require.Equal(t, "ORC-2026-0001", first.QuotationNumber)

	second, err := newStaleNumberService(t, services, 1).Create(ctx, newQuotationInput())
	require.NoError(t, err)
	assert.Equal(t, "ORC-2026-0002", second.QuotationNumber)

	_, err = newStaleNumberService(t, services, maxNumberAttempts).Create(ctx, newQuotationInput())
	assert.True(t, errors.Is(err, apperrors.ErrConflict), "%v", err)
}
