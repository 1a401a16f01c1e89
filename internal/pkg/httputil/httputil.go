// Package httputil holds transport helpers shared by the REST handlers: error to
// status mapping, page arithmetic and query value parsing.
package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/strutil"
)

// DateLayout is the calendar date format of query parameters and JSON payloads
const DateLayout = "2006-01-02"

// Page size bounds of list endpoints
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// StatusFromError maps an application error to its HTTP status code
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Page is a 1-based page request
type Page struct {
	Number int
	Size   int
}

// ParsePage reads page and pageSize values, defaulting to the first page of 20 rows
func ParsePage(page, pageSize string) (Page, error) {
	p := Page{Number: 1, Size: DefaultPageSize}
	if page != "" {
		p.Number = strutil.ConvertToInt(page)
		if p.Number < 1 {
			return p, fmt.Errorf("%w: page must be a positive number", apperrors.ErrValidation)
		}
	}
	if pageSize != "" {
		p.Size = strutil.ConvertToInt(pageSize)
		if p.Size < 1 || p.Size > MaxPageSize {
			return p, fmt.Errorf("%w: pageSize must be between 1 and %d", apperrors.ErrValidation, MaxPageSize)
		}
	}
	return p, nil
}

// Offset returns the number of rows before the page
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages of p.Size hold total rows
func (p Page) TotalPages(total int64) int {
	if total <= 0 || p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

// ParseDate parses a YYYY-MM-DD value as midnight UTC
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}

// ParseOptionalDate parses value when it is not empty
func ParseOptionalDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return ParseDate(value)
}

// ParseBool parses true/false, 1/0 and yes/no; ok is false for anything else
func ParseBool(value string) (b bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

// AttachmentDisposition builds a Content-Disposition header for a download
func AttachmentDisposition(fileName string) string {
	return fmt.Sprintf("attachment; filename=%q", fileName)
}
