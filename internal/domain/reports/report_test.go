//go:build unit
// +build unit

package reports

import (
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func march(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func stay(propertyID string, in, out time.Time, total int64, status string) *reservations.Reservation {
	amount := decimal.NewFromInt(total)
	return &reservations.Reservation{
		ID:            propertyID + in.Format("0102"),
		PropertyID:    propertyID,
		CheckInDate:   in,
		CheckOutDate:  out,
		TotalAmount:   amount,
		PlatformFee:   decimal.Zero,
		CleaningFee:   decimal.NewFromInt(30),
		CheckInFee:    decimal.Zero,
		CommissionFee: decimal.Zero,
		TeamPayment:   decimal.Zero,
		NetAmount:     amount.Sub(decimal.NewFromInt(30)),
		Status:        status,
	}
}

func TestBuildOwnerReport(t *testing.T) {
	owner := &owners.Owner{ID: "owner", Name: "Maria Conceição"}
	props := []*properties.Property{{ID: "mar", Name: "Casa do Mar"}, {ID: "serra", Name: "Casa da Serra"}}
	list := []*reservations.Reservation{
		stay("mar", march(2), march(5), 300, reservations.StatusConfirmed),
		stay("mar", march(30), march(30).AddDate(0, 0, 4), 400, reservations.StatusPending),
		stay("mar", march(10), march(12), 999, reservations.StatusCancelled),
		stay("serra", march(20), march(21), 100, reservations.StatusCompleted),
		stay("other", march(20), march(21), 100, reservations.StatusCompleted),
		stay("serra", march(30).AddDate(0, 0, 3), march(30).AddDate(0, 0, 5), 100, reservations.StatusConfirmed),
	}

	report := BuildOwnerReport(owner, props, list, march(1), march(31))

	require.Len(t, report.Properties, 2)
	mar := report.Properties[0]
	assert.Len(t, mar.Reservations, 2)
	assert.Equal(t, "700", mar.Totals.Revenue.String())
	assert.Equal(t, 5, mar.Totals.NightsBooked, "nights after the window are not counted")
	assert.Equal(t, 31, mar.Totals.AvailableNights)

	serra := report.Properties[1]
	assert.Len(t, serra.Reservations, 1)
	assert.Equal(t, 1, serra.Totals.NightsBooked)

	totals := report.Totals
	assert.Equal(t, 3, totals.Reservations)
	assert.Equal(t, "800", totals.Revenue.String())
	assert.Equal(t, "90", totals.CleaningFees.String())
	assert.Equal(t, "710", totals.NetAmount.String())
	assert.Equal(t, 62, totals.AvailableNights)
	assert.InDelta(t, 6.0/62.0, totals.Occupancy, 1e-9)
}

func TestBuildOwnerReport_NoProperties(t *testing.T) {
	report := BuildOwnerReport(&owners.Owner{Name: "Rui"}, nil, nil, march(1), march(31))

	assert.Empty(t, report.Properties)
	assert.Equal(t, 0, report.Totals.AvailableNights)
	assert.Zero(t, report.Totals.Occupancy)
	assert.True(t, report.Totals.Revenue.IsZero())
}

func TestTotals_ComputeOccupancyCapped(t *testing.T) {
	totals := NewTotals()
	totals.NightsBooked = 40
	totals.AvailableNights = 31
	totals.ComputeOccupancy()
	assert.Equal(t, 1.0, totals.Occupancy)
}

func TestOwnerReport_FileName(t *testing.T) {
	report := &OwnerReport{Owner: &owners.Owner{Name: "Maria Conceição"}, From: march(1), To: march(31)}
	assert.Equal(t, "relatorio-maria-conceicao-20260301-20260331.pdf", report.FileName(FormatPDF))

	report.Owner.Name = "!!!"
	assert.Equal(t, "relatorio-sem-nome-20260301-20260331.csv", report.FileName(FormatCSV))
}
