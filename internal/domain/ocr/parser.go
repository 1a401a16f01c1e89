package ocr

import (
	"regexp"
	"strings"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/strutil"
)

var (
	labelPatterns = map[string]*regexp.Regexp{
		FieldPropertyName: regexp.MustCompile(`(?im)^\s*(?:propriedade|property|alojamento|listing|accommodation|im[oó]vel)\s*[:\-–]\s*(.+)$`),
		FieldGuestName:    regexp.MustCompile(`(?im)^\s*(?:h[oó]spede|guest name|guest|nome do h[oó]spede|nome|name|cliente)\s*[:\-–]\s*(.+)$`),
		FieldGuestPhone:   regexp.MustCompile(`(?im)\b(?:telefone|telem[oó]vel|phone|tel\.?|mobile)\s*[:\-–]?\s*(\+?[\d][\d ().-]{6,}\d)`),
		FieldCheckIn:      regexp.MustCompile(`(?im)(?:check[\s-]?in|chegada|arrival|entrada)\s*[:\-–]?\s*(.+)$`),
		FieldCheckOut:     regexp.MustCompile(`(?im)(?:check[\s-]?out|sa[ií]da|departure)\s*[:\-–]?\s*(.+)$`),
		FieldGuests:       regexp.MustCompile(`(?im)(?:n[º°o]?\s*de\s*h[oó]spedes|h[oó]spedes|guests|pessoas|adultos|adults)\s*[:\-–]?\s*(\d{1,2})\b`),
		FieldTotalAmount:  regexp.MustCompile(`(?im)(?:valor total|total amount|total|montante|amount|pre[çc]o)\s*[:\-–]?\s*([^\n]*\d[^\n]*)$`),
	}
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	datePattern  = regexp.MustCompile(`(?i)\d{4}-\d{2}-\d{2}|\d{1,2}[./-]\d{1,2}[./-]\d{4}|(?:[a-z]{3},?\s+)?\d{1,2}\s+(?:de\s+)?[a-zç]{3,9}\.?\s+(?:de\s+)?\d{4}|[a-z]{3,9}\s+\d{1,2},\s+\d{4}`)

	platformKeywords = []struct {
		keyword  string
		platform string
	}{
		{"airbnb", reservations.PlatformAirbnb},
		{"booking.com", reservations.PlatformBooking},
		{"expedia", reservations.PlatformExpedia},
	}
)

// ParseReservation builds a reservation draft from extracted text and structured fields.
// Structured fields win over values found in the text.
func ParseReservation(extraction *Extraction) *ExtractedReservation {
	text := extraction.Text
	fields := extraction.Fields
	value := func(field string) string {
		if v := strings.TrimSpace(fields[field]); v != "" {
			return v
		}
		if p, ok := labelPatterns[field]; ok {
			if m := p.FindStringSubmatch(text); len(m) > 1 {
				return strings.TrimSpace(m[1])
			}
		}
		return ""
	}

	result := &ExtractedReservation{
		PropertyName: value(FieldPropertyName),
		GuestName:    value(FieldGuestName),
		GuestPhone:   value(FieldGuestPhone),
	}

	result.GuestEmail = strings.TrimSpace(fields[FieldGuestEmail])
	if result.GuestEmail == "" {
		result.GuestEmail = emailPattern.FindString(text)
	}

	if t, ok := parseDateValue(value(FieldCheckIn)); ok {
		result.CheckInDate = &t
	}
	if t, ok := parseDateValue(value(FieldCheckOut)); ok {
		result.CheckOutDate = &t
	}

	result.NumGuests = strutil.ConvertToInt(value(FieldGuests))

	if raw := value(FieldTotalAmount); raw != "" {
		if amount, err := strutil.ParseAmount(raw); err == nil && amount.IsPositive() {
			result.TotalAmount = &amount
		}
	}

	result.Platform = DetectPlatform(fields[FieldPlatform] + "\n" + text)

	present := map[string]bool{
		FieldPropertyName: result.PropertyName != "",
		FieldGuestName:    result.GuestName != "",
		FieldCheckIn:      result.CheckInDate != nil,
		FieldCheckOut:     result.CheckOutDate != nil,
		FieldTotalAmount:  result.TotalAmount != nil,
	}
	found := 0
	for _, field := range RequiredFields {
		if present[field] {
			found++
		} else {
			result.MissingFields = append(result.MissingFields, field)
		}
	}
	result.Confidence = float64(found) / float64(len(RequiredFields))
	return result
}

// DetectPlatform returns the booking platform named in text, or direct when none is
func DetectPlatform(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range platformKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.platform
		}
	}
	if strings.Contains(lower, "booking") {
		return reservations.PlatformBooking
	}
	return reservations.PlatformDirect
}

func parseDateValue(raw string) (t time.Time, ok bool) {
	if raw == "" {
		return t, false
	}
	if parsed, err := strutil.ParseDate(raw); err == nil {
		return parsed, true
	}
	if m := datePattern.FindString(raw); m != "" {
		if parsed, err := strutil.ParseDate(m); err == nil {
			return parsed, true
		}
	}
	return t, false
}
