//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const quotationID = "c0ffee00-1234-4abc-8def-0123456789ab"

func TestQuotationHandler_Calculate(t *testing.T) {
	mockQuotationService := new(MockQuotationService)
	handler := NewQuotationHandler(mockQuotationService, testLogger(t))

	mockQuotationService.On("Calculate", mock.Anything, mock.MatchedBy(func(in *quotations.PricingInput) bool {
		return in.PropertyType == "house" && in.Area == 100 && in.HasBBQ
	})).Return(&quotations.Price{
		BasePrice:       decimal.RequireFromString("78.20"),
		AdditionalPrice: decimal.RequireFromString("36.00"),
		TotalPrice:      decimal.RequireFromString("114.20"),
	}, nil)

	body := `{"propertyType":"house","propertyArea":100,"exteriorArea":40,"bedrooms":2,"bathrooms":1,"hasBBQ":true}`
	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/quotations/calculate", body))
	handler.Calculate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "114.2")
	mockQuotationService.AssertExpectations(t)
}

func TestQuotationHandler_Calculate_UnknownType(t *testing.T) {
	mockQuotationService := new(MockQuotationService)
	handler := NewQuotationHandler(mockQuotationService, testLogger(t))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/quotations/calculate", `{"propertyType":"castle","propertyArea":100}`))
	handler.Calculate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockQuotationService.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
}

func TestQuotationHandler_DownloadPDF(t *testing.T) {
	mockQuotationService := new(MockQuotationService)
	handler := NewQuotationHandler(mockQuotationService, testLogger(t))
	mockQuotationService.On("RenderPDF", mock.Anything, quotationID).
		Return([]byte("%PDF-1.3"), &quotations.Quotation{ID: quotationID, QuotationNumber: "ORC-2026-0007"}, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/quotations/"+quotationID+"/pdf", ""), idParam(quotationID))
	handler.DownloadPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ORC-2026-0007.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestQuotationHandler_Send_MailerUnavailable(t *testing.T) {
	mockQuotationService := new(MockQuotationService)
	handler := NewQuotationHandler(mockQuotationService, testLogger(t))
	mockQuotationService.On("Send", mock.Anything, quotationID).
		Return(nil, fmt.Errorf("mailer: %w", apperrors.ErrUnavailable))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/quotations/"+quotationID+"/send", ""), idParam(quotationID))
	handler.Send(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
