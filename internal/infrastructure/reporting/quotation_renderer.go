package reporting

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/divan/num2words"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const companyName = "Maria Faz - Gestão de Alojamento Local"

type quotationRenderer struct {
	logger logger.Logger
}

// NewQuotationRenderer creates a quotations.PDFRenderer
func NewQuotationRenderer(logger logger.Logger) quotations.PDFRenderer {
	return &quotationRenderer{logger: logger}
}

func (r *quotationRenderer) RenderQuotation(q *quotations.Quotation) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(q.QuotationNumber, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(companyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, tr("Orçamento "+q.QuotationNumber), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, pdfLineHeight, tr("Data: "+q.IssueDate.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, pdfLineHeight, tr("Válido até: "+q.ValidUntil.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section(pdf, tr, "Cliente")
	line(pdf, tr, "Nome", q.ClientName)
	line(pdf, tr, "Email", q.ClientEmail)
	line(pdf, tr, "Telefone", q.ClientPhone)
	pdf.Ln(3)

	section(pdf, tr, "Propriedade")
	line(pdf, tr, "Tipo", q.PropertyType)
	line(pdf, tr, "Morada", q.PropertyAddress)
	line(pdf, tr, "Área", fmt.Sprintf("%.1f m²", q.Area))
	if q.ExteriorArea > 0 {
		line(pdf, tr, "Área exterior", fmt.Sprintf("%.1f m²", q.ExteriorArea))
	}
	line(pdf, tr, "Quartos / WC", fmt.Sprintf("%d / %d", q.Bedrooms, q.Bathrooms))
	line(pdf, tr, "Extras", extrasLabel(q))
	pdf.Ln(3)

	section(pdf, tr, "Preço")
	amountLine(pdf, tr, "Preço base", q.BasePrice)
	amountLine(pdf, tr, "Adicionais", q.AdditionalPrice)
	pdf.SetFont("Helvetica", "B", 11)
	amountLine(pdf, tr, "Total", q.TotalPrice)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("("+AmountInWords(q.TotalPrice)+")"), "", "L", false)
	pdf.Ln(3)

	if q.PaymentTerms != "" {
		section(pdf, tr, "Condições de pagamento")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(q.PaymentTerms), "", "L", false)
		pdf.Ln(2)
	}
	if q.Notes != "" {
		section(pdf, tr, "Notas")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(q.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quotation pdf: %w", err)
	}
	r.logger.Info("Rendered quotation pdf ", q.QuotationNumber)
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 236, 245)
	pdf.CellFormat(0, 7, tr(title), "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func line(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		return
	}
	pdf.CellFormat(45, pdfLineHeight, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, pdfLineHeight, tr(value), "", 1, "L", false, 0, "")
}

func amountLine(pdf *fpdf.Fpdf, tr func(string) string, label string, amount decimal.Decimal) {
	pdf.CellFormat(45, pdfLineHeight, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.CellFormat(40, pdfLineHeight, tr(amount.StringFixed(2)+" €"), "", 1, "R", false, 0, "")
}

func extrasLabel(q *quotations.Quotation) string {
	var extras []string
	if q.IsDuplex {
		extras = append(extras, "duplex")
	}
	if q.HasBBQ {
		extras = append(extras, "churrasqueira")
	}
	if q.HasGlassGarden {
		extras = append(extras, "jardim de inverno")
	}
	if len(extras) == 0 {
		return ""
	}
	return strings.Join(extras, ", ")
}

// AmountInWords spells a euro amount, e.g. 230.50 -> "two hundred thirty euros and fifty cents"
func AmountInWords(amount decimal.Decimal) string {
	rounded := amount.Abs().Round(2)
	euros := rounded.IntPart()
	cents := rounded.Sub(decimal.NewFromInt(euros)).Mul(decimal.NewFromInt(100)).IntPart()

	words := num2words.Convert(int(euros)) + " " + plural(euros, "euro", "euros")
	if cents > 0 {
		words += " and " + num2words.Convert(int(cents)) + " " + plural(cents, "cent", "cents")
	}
	return words
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
