// Package reports aggregates reservations into owner reports and dashboard statistics.
package reports

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/strutil"
	"github.com/shopspring/decimal"
)

// Export formats
const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Totals sums the money and nights of a set of reservations
type Totals struct {
	Reservations    int
	Revenue         decimal.Decimal
	PlatformFees    decimal.Decimal
	CleaningFees    decimal.Decimal
	CheckInFees     decimal.Decimal
	CommissionFees  decimal.Decimal
	TeamPayments    decimal.Decimal
	NetAmount       decimal.Decimal
	NightsBooked    int
	AvailableNights int
	Occupancy       float64
}

// NewTotals returns zeroed totals
func NewTotals() Totals {
	return Totals{
		Revenue:        decimal.Zero,
		PlatformFees:   decimal.Zero,
		CleaningFees:   decimal.Zero,
		CheckInFees:    decimal.Zero,
		CommissionFees: decimal.Zero,
		TeamPayments:   decimal.Zero,
		NetAmount:      decimal.Zero,
	}
}

// Add accumulates a reservation. Nights are clipped to [from, to).
func (t *Totals) Add(r *reservations.Reservation, from, to time.Time) {
	t.Reservations++
	t.Revenue = t.Revenue.Add(r.TotalAmount)
	t.PlatformFees = t.PlatformFees.Add(r.PlatformFee)
	t.CleaningFees = t.CleaningFees.Add(r.CleaningFee)
	t.CheckInFees = t.CheckInFees.Add(r.CheckInFee)
	t.CommissionFees = t.CommissionFees.Add(r.CommissionFee)
	t.TeamPayments = t.TeamPayments.Add(r.TeamPayment)
	t.NetAmount = t.NetAmount.Add(r.NetAmount)
	t.NightsBooked += r.NightsWithin(from, to)
}

// Merge adds other into t
func (t *Totals) Merge(other Totals) {
	t.Reservations += other.Reservations
	t.Revenue = t.Revenue.Add(other.Revenue)
	t.PlatformFees = t.PlatformFees.Add(other.PlatformFees)
	t.CleaningFees = t.CleaningFees.Add(other.CleaningFees)
	t.CheckInFees = t.CheckInFees.Add(other.CheckInFees)
	t.CommissionFees = t.CommissionFees.Add(other.CommissionFees)
	t.TeamPayments = t.TeamPayments.Add(other.TeamPayments)
	t.NetAmount = t.NetAmount.Add(other.NetAmount)
	t.NightsBooked += other.NightsBooked
	t.AvailableNights += other.AvailableNights
}

// ComputeOccupancy sets Occupancy to booked over available nights, capped to 1
func (t *Totals) ComputeOccupancy() {
	if t.AvailableNights <= 0 {
		t.Occupancy = 0
		return
	}
	occ := float64(t.NightsBooked) / float64(t.AvailableNights)
	if occ > 1 {
		occ = 1
	}
	t.Occupancy = occ
}

// PropertyReport holds the reservations of one property in the window
type PropertyReport struct {
	Property     *properties.Property
	Reservations []*reservations.Reservation
	Totals       Totals
}

// OwnerReport is the billing report of an owner for a window of check-in dates
type OwnerReport struct {
	Owner       *owners.Owner
	From        time.Time
	To          time.Time
	Properties  []*PropertyReport
	Totals      Totals
	GeneratedAt time.Time
}

// WindowNights returns the number of nights in the inclusive window [from, to]
func WindowNights(from, to time.Time) int {
	return reservations.NightsBetween(from, to) + 1
}

// BuildOwnerReport groups non-cancelled reservations with check-in in [from, to] per property
func BuildOwnerReport(owner *owners.Owner, props []*properties.Property, list []*reservations.Reservation, from, to time.Time) *OwnerReport {
	windowEnd := to.AddDate(0, 0, 1)
	nights := WindowNights(from, to)

	report := &OwnerReport{Owner: owner, From: from, To: to, Totals: NewTotals()}
	byProperty := make(map[string]*PropertyReport, len(props))
	for _, p := range props {
		pr := &PropertyReport{Property: p, Totals: NewTotals()}
		pr.Totals.AvailableNights = nights
		byProperty[p.ID] = pr
		report.Properties = append(report.Properties, pr)
	}

	for _, r := range list {
		pr, ok := byProperty[r.PropertyID]
		if !ok || !r.Blocks() {
			continue
		}
		in := reservations.TruncateDay(r.CheckInDate)
		if in.Before(from) || in.After(to) {
			continue
		}
		pr.Reservations = append(pr.Reservations, r)
		pr.Totals.Add(r, from, windowEnd)
	}

	for _, pr := range report.Properties {
		pr.Totals.ComputeOccupancy()
		report.Totals.Merge(pr.Totals)
	}
	report.Totals.ComputeOccupancy()
	return report
}

// FileName names an export of the report, e.g. relatorio-maria-silva-20260301-20260331.pdf
func (r *OwnerReport) FileName(format string) string {
	return "relatorio-" + strutil.Slug(r.Owner.Name) + "-" + r.From.Format("20060102") + "-" + r.To.Format("20060102") + "." + format
}

// PropertyRevenue ranks a property on the dashboard
type PropertyRevenue struct {
	PropertyID   string
	PropertyName string
	Revenue      decimal.Decimal
	Reservations int
}

// Statistics is the dashboard summary for a window
type Statistics struct {
	From                 time.Time
	To                   time.Time
	TotalRevenue         decimal.Decimal
	NetProfit            decimal.Decimal
	ReservationsByStatus map[string]int
	ActiveProperties     int
	Occupancy            float64
	TopProperties        []PropertyRevenue
	UpcomingCheckIns     int
}
