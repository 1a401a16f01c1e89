//go:build unit
// +build unit

package reporting

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

func testOwnerReport() *reports.OwnerReport {
	owner := &owners.Owner{ID: "owner-1", Name: "Maria Conceição"}
	mar := &properties.Property{ID: "p1", Name: "Casa do Mar", Commission: decimal.NewFromInt(20)}
	serra := &properties.Property{ID: "p2", Name: "Casa da Serra: T1/Norte [velha] com nome muito comprido"}

	stay := &reservations.Reservation{
		ID: "r1", PropertyID: "p1", GuestName: "Joana Silva",
		CheckInDate: day(time.March, 1), CheckOutDate: day(time.March, 4),
		TotalAmount: decimal.NewFromInt(300), Status: reservations.StatusConfirmed, Platform: reservations.PlatformAirbnb,
	}
	stay.ApplyCosts(mar)

	return reports.BuildOwnerReport(owner, []*properties.Property{mar, serra}, []*reservations.Reservation{stay}, day(time.March, 1), day(time.March, 31))
}

func TestOwnerReportRenderer_RenderCSV(t *testing.T) {
	renderer := NewOwnerReportRenderer(testutil.SetupTestLogger(t))

	data, err := renderer.RenderCSV(testOwnerReport())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\ufeff")))

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, reservationHeaders, records[0])
	assert.Equal(t, "Casa do Mar", records[1][0])
	assert.Equal(t, "300.00", records[1][7])
	assert.Equal(t, "Total", records[2][0])
	assert.Equal(t, "3", records[2][4])
}

func TestOwnerReportRenderer_RenderXLSX(t *testing.T) {
	renderer := NewOwnerReportRenderer(testutil.SetupTestLogger(t))

	data, err := renderer.RenderXLSX(testOwnerReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 3)
	assert.Equal(t, summarySheet, sheets[0])
	assert.Equal(t, "Casa do Mar", sheets[1])
	assert.LessOrEqual(t, len([]rune(sheets[2])), maxSheetName)
	assert.NotContains(t, sheets[2], ":")

	total, err := f.GetCellValue(summarySheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)
}

func TestOwnerReportRenderer_RenderPDF(t *testing.T) {
	renderer := NewOwnerReportRenderer(testutil.SetupTestLogger(t))

	data, err := renderer.RenderPDF(testOwnerReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestQuotationRenderer_RenderQuotation(t *testing.T) {
	renderer := NewQuotationRenderer(testutil.SetupTestLogger(t))

	q := &quotations.Quotation{
		QuotationNumber: "ORC-2026-0001",
		ClientName:      "Sofia Lopes",
		PricingInput:    quotations.PricingInput{PropertyType: quotations.PropertyTypeVilla, Area: 200, Bedrooms: 4, Bathrooms: 3, HasBBQ: true},
		Price:           quotations.Price{BasePrice: decimal.NewFromInt(200), AdditionalPrice: decimal.RequireFromString("30.5"), TotalPrice: decimal.RequireFromString("230.5")},
		IssueDate:       day(time.March, 1),
		ValidUntil:      day(time.March, 31),
		PaymentTerms:    "50% na adjudicação",
	}

	data, err := renderer.RenderQuotation(q)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"1", "one euro"},
		{"230.50", "two hundred thirty euros and fifty cents"},
		{"12.01", "twelve euros and one cent"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, AmountInWords(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestUniqueSheetName(t *testing.T) {
	used := map[string]bool{}

	first := uniqueSheetName("Casa/Mar", used)
	second := uniqueSheetName("Casa/Mar", used)

	assert.Equal(t, "Casa-Mar", first)
	assert.Equal(t, "Casa-Mar (2)", second)
	assert.False(t, strings.ContainsAny(first, "[]:*?/\\"))
}
