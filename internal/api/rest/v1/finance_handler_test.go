//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const documentID = "d0c0ffee-4321-4cba-9fed-ba9876543210"

func TestFinanceHandler_RegisterPayment_RejectsZeroAmount(t *testing.T) {
	mockDocumentService := new(MockDocumentService)
	handler := NewFinanceHandler(mockDocumentService, testLogger(t))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/financial-documents/"+documentID+"/payments", `{"amount":"0","method":"cash"}`), idParam(documentID))
	handler.RegisterPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "greater than zero")
	mockDocumentService.AssertNotCalled(t, "RegisterPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinanceHandler_RegisterPayment_Success(t *testing.T) {
	mockDocumentService := new(MockDocumentService)
	handler := NewFinanceHandler(mockDocumentService, testLogger(t))

	mockDocumentService.On("RegisterPayment", mock.Anything, documentID, mock.MatchedBy(func(p *finance.Payment) bool {
		return p.Amount.Equal(decimal.NewFromInt(50)) && p.Method == "mbway"
	})).Return(&finance.Document{ID: documentID, Status: finance.StatusInvoiced}, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/financial-documents/"+documentID+"/payments", `{"amount":"50","method":"mbway","paymentDate":"2026-03-05"}`), idParam(documentID))
	handler.RegisterPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockDocumentService.AssertExpectations(t)
}

func TestFinanceHandler_Summary_FiltersByOwner(t *testing.T) {
	mockDocumentService := new(MockDocumentService)
	handler := NewFinanceHandler(mockDocumentService, testLogger(t))
	mockDocumentService.On("Summary", mock.Anything, ownerID).Return(finance.Summarize(nil, testToday), nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/financial-documents/summary?ownerId="+ownerID, ""))
	handler.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pending")
	mockDocumentService.AssertExpectations(t)
}

func TestFinanceHandler_RemoveItem_ReturnsResyncedStatus(t *testing.T) {
	const itemID = "e1d2c3b4-a5f6-4e7d-8c9b-0a1b2c3d4e5f"
	mockDocumentService := new(MockDocumentService)
	handler := NewFinanceHandler(mockDocumentService, testLogger(t))

	mockDocumentService.On("RemoveItem", mock.Anything, documentID, itemID).Return(&finance.Document{
		ID:          documentID,
		Status:      finance.StatusPaid,
		TotalAmount: decimal.NewFromInt(150),
		PaidAmount:  decimal.NewFromInt(150),
	}, nil)

	req := testutil.NewJSONRequest(t, http.MethodDelete, "/api/financial-documents/"+documentID+"/items/"+itemID, "")
	c, w := newTestContext(req, idParam(documentID), gin.Param{Key: "itemId", Value: itemID})
	handler.RemoveItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"paid"`)
	mockDocumentService.AssertExpectations(t)
}
