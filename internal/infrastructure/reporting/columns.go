package reporting

import (
	"strconv"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
)

const dateLayout = "02/01/2006"

var reservationHeaders = []string{
	"Propriedade", "Hóspede", "Check-in", "Check-out", "Noites", "Plataforma", "Estado",
	"Total", "Taxa plataforma", "Limpeza", "Taxa check-in", "Comissão", "Equipa", "Líquido",
}

var totalsHeaders = []string{
	"Propriedade", "Reservas", "Noites", "Ocupação", "Receita", "Taxas plataforma",
	"Limpeza", "Taxas check-in", "Comissão", "Equipa", "Líquido",
}

func reservationRow(propertyName string, r *reservations.Reservation) []string {
	return []string{
		propertyName,
		r.GuestName,
		r.CheckInDate.Format(dateLayout),
		r.CheckOutDate.Format(dateLayout),
		strconv.Itoa(r.Nights()),
		r.Platform,
		r.Status,
		r.TotalAmount.StringFixed(2),
		r.PlatformFee.StringFixed(2),
		r.CleaningFee.StringFixed(2),
		r.CheckInFee.StringFixed(2),
		r.CommissionFee.StringFixed(2),
		r.TeamPayment.StringFixed(2),
		r.NetAmount.StringFixed(2),
	}
}

func totalsRow(label string, t reports.Totals) []string {
	return []string{
		label,
		strconv.Itoa(t.Reservations),
		strconv.Itoa(t.NightsBooked),
		formatPercent(t.Occupancy),
		t.Revenue.StringFixed(2),
		t.PlatformFees.StringFixed(2),
		t.CleaningFees.StringFixed(2),
		t.CheckInFees.StringFixed(2),
		t.CommissionFees.StringFixed(2),
		t.TeamPayments.StringFixed(2),
		t.NetAmount.StringFixed(2),
	}
}

func formatPercent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 1, 64) + "%"
}
