package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Resumo"
	maxSheetName  = 31
	utf8BOM       = "\ufeff"
	csvSeparator  = ';'
	pdfLineHeight = 6.0
)

type ownerReportRenderer struct {
	logger logger.Logger
}

// NewOwnerReportRenderer creates a reports.Renderer
func NewOwnerReportRenderer(logger logger.Logger) reports.Renderer {
	return &ownerReportRenderer{logger: logger}
}

// RenderPDF draws a summary table followed by one reservation table per property
func (r *ownerReportRenderer) RenderPDF(report *reports.OwnerReport) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Relatório de proprietário"), false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de "+report.Owner.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, pdfLineHeight, tr(fmt.Sprintf("Período: %s a %s", report.From.Format(dateLayout), report.To.Format(dateLayout))), "", 1, "L", false, 0, "")
	if report.Owner.TaxID != "" {
		pdf.CellFormat(0, pdfLineHeight, "NIF: "+report.Owner.TaxID, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	summaryWidths := []float64{60, 20, 18, 20, 25, 25, 22, 22, 22, 22, 24}
	writePDFTable(pdf, tr, totalsHeaders, summaryWidths, func(emit func([]string)) {
		for _, pr := range report.Properties {
			emit(totalsRow(pr.Property.Name, pr.Totals))
		}
		emit(totalsRow("Total", report.Totals))
	})

	detailWidths := []float64{36, 34, 18, 18, 12, 18, 18, 18, 18, 17, 17, 18, 17, 18}
	for _, pr := range report.Properties {
		if len(pr.Reservations) == 0 {
			continue
		}
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(pr.Property.Name), "", 1, "L", false, 0, "")
		writePDFTable(pdf, tr, reservationHeaders, detailWidths, func(emit func([]string)) {
			for _, res := range pr.Reservations {
				emit(reservationRow(pr.Property.Name, res))
			}
		})
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	r.logger.Info("Rendered owner report pdf for ", report.Owner.ID)
	return buf.Bytes(), nil
}

func writePDFTable(pdf *fpdf.Fpdf, tr func(string) string, headers []string, widths []float64, rows func(emit func([]string))) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 236, 245)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	rows(func(cells []string) {
		for i, c := range cells {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], pdfLineHeight, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	})
}

// RenderXLSX writes a summary sheet and one sheet per property with reservations
func (r *ownerReportRenderer) RenderXLSX(report *reports.OwnerReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			r.logger.Warn("failed to close workbook: ", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if err := writeSheetRows(f, summarySheet, totalsHeaders, func(emit func([]string)) {
		for _, pr := range report.Properties {
			emit(totalsRow(pr.Property.Name, pr.Totals))
		}
		emit(totalsRow("Total", report.Totals))
	}); err != nil {
		return nil, err
	}

	used := map[string]bool{summarySheet: true}
	for _, pr := range report.Properties {
		name := uniqueSheetName(pr.Property.Name, used)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		if err := writeSheetRows(f, name, reservationHeaders, func(emit func([]string)) {
			for _, res := range pr.Reservations {
				emit(reservationRow(pr.Property.Name, res))
			}
			emit(append([]string{"Total"}, make([]string, 6)...))
		}); err != nil {
			return nil, err
		}
		totals := []interface{}{
			pr.Totals.Revenue.InexactFloat64(), pr.Totals.PlatformFees.InexactFloat64(),
			pr.Totals.CleaningFees.InexactFloat64(), pr.Totals.CheckInFees.InexactFloat64(),
			pr.Totals.CommissionFees.InexactFloat64(), pr.Totals.TeamPayments.InexactFloat64(),
			pr.Totals.NetAmount.InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(8, len(pr.Reservations)+2)
		if err := f.SetSheetRow(name, cell, &totals); err != nil {
			return nil, fmt.Errorf("failed to write totals of %s: %w", name, err)
		}
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render report xlsx: %w", err)
	}
	r.logger.Info("Rendered owner report xlsx for ", report.Owner.ID)
	return buf.Bytes(), nil
}

// writeSheetRows writes headers on row 1 and the emitted rows below; numeric-looking cells stay text
func writeSheetRows(f *excelize.File, sheet string, headers []string, rows func(emit func([]string))) error {
	var writeErr error
	row := 1
	write := func(cells []string) {
		if writeErr != nil {
			return
		}
		values := make([]interface{}, len(cells))
		for i, c := range cells {
			values[i] = c
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			writeErr = fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
		}
		row++
	}
	write(headers)
	rows(write)
	return writeErr
}

// uniqueSheetName strips characters excel rejects, truncates to 31 runes and de-duplicates
func uniqueSheetName(name string, used map[string]bool) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	if cleaned == "" {
		cleaned = "Propriedade"
	}

	candidate := truncateRunes(cleaned, maxSheetName)
	for i := 2; used[candidate]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = truncateRunes(cleaned, maxSheetName-len(suffix)) + suffix
	}
	used[candidate] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// RenderCSV writes one semicolon separated line per reservation, prefixed with a UTF-8 BOM
func (r *ownerReportRenderer) RenderCSV(report *reports.OwnerReport) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = csvSeparator

	records := [][]string{reservationHeaders}
	for _, pr := range report.Properties {
		for _, res := range pr.Reservations {
			records = append(records, reservationRow(pr.Property.Name, res))
		}
	}
	t := report.Totals
	records = append(records, []string{
		"Total", "", "", "", fmt.Sprint(t.NightsBooked), "", "",
		t.Revenue.StringFixed(2), t.PlatformFees.StringFixed(2), t.CleaningFees.StringFixed(2),
		t.CheckInFees.StringFixed(2), t.CommissionFees.StringFixed(2), t.TeamPayments.StringFixed(2),
		t.NetAmount.StringFixed(2),
	})

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to render report csv: %w", err)
	}
	r.logger.Info("Rendered owner report csv for ", report.Owner.ID)
	return buf.Bytes(), nil
}
