//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ownerID = "8f1c6f0e-4f6b-4f8e-9d43-2a3c0b1d2e4f"

func TestOwnerHandler_Create_Success(t *testing.T) {
	mockOwnerService := new(MockOwnerService)
	handler := NewOwnerHandler(mockOwnerService, testLogger(t))

	mockOwnerService.On("Create", mock.Anything, mock.MatchedBy(func(o *owners.Owner) bool {
		return o.Name == "Maria Conceição" && o.TaxID == "123456789" && o.ID == ""
	})).Return(&owners.Owner{ID: ownerID, Name: "Maria Conceição", TaxID: "123456789"}, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/owners", `{"name":"Maria Conceição","taxId":"123456789"}`))
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response OwnerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, ownerID, response.ID)
	assert.Equal(t, "Maria Conceição", response.Name)
	mockOwnerService.AssertExpectations(t)
}

func TestOwnerHandler_Create_ValidationError(t *testing.T) {
	mockOwnerService := new(MockOwnerService)
	handler := NewOwnerHandler(mockOwnerService, testLogger(t))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/owners", `{"company":"Sem Nome Lda"}`))
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockOwnerService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOwnerHandler_Create_InvalidBody(t *testing.T) {
	handler := NewOwnerHandler(new(MockOwnerService), testLogger(t))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/owners", `{"name":`))
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestOwnerHandler_List_Paginates(t *testing.T) {
	mockOwnerService := new(MockOwnerService)
	handler := NewOwnerHandler(mockOwnerService, testLogger(t))

	mockOwnerService.On("List", mock.Anything, mock.MatchedBy(func(q *owners.OwnerQuery) bool {
		return q.Limit == 10 && q.Offset == 10 && q.Name == "silva" && q.SortBy == "name"
	})).Return([]*owners.Owner{{ID: ownerID, Name: "Ana Silva"}}, int64(21), nil)

	req := testutil.NewJSONRequest(t, http.MethodGet, "/api/owners?page=2&pageSize=10&name=silva&sortBy=name", "")
	c, w := newTestContext(req)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response PaginatedResponse[OwnerResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, int64(21), response.TotalRows)
	assert.Equal(t, 3, response.TotalPages)
	assert.Equal(t, 2, response.CurrentPage)
	assert.Equal(t, 10, response.PageSize)
	mockOwnerService.AssertExpectations(t)
}

func TestOwnerHandler_List_EmptyEncodesArray(t *testing.T) {
	mockOwnerService := new(MockOwnerService)
	handler := NewOwnerHandler(mockOwnerService, testLogger(t))
	mockOwnerService.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/owners", ""))
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestOwnerHandler_List_InvalidPage(t *testing.T) {
	mockOwnerService := new(MockOwnerService)
	handler := NewOwnerHandler(mockOwnerService, testLogger(t))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/owners?pageSize=500", ""))
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockOwnerService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestOwnerHandler_GetByID_NotFound(t *testing.T) {
	mockOwnerService := new(MockOwnerService)
	handler := NewOwnerHandler(mockOwnerService, testLogger(t))
	mockOwnerService.On("GetByID", mock.Anything, ownerID).
		Return(nil, fmt.Errorf("owner %s: %w", ownerID, apperrors.ErrNotFound))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/owners/"+ownerID, ""), idParam(ownerID))
	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestOwnerHandler_GetByID_InternalErrorIsHidden(t *testing.T) {
	mockOwnerService := new(MockOwnerService)
	handler := NewOwnerHandler(mockOwnerService, testLogger(t))
	mockOwnerService.On("GetByID", mock.Anything, ownerID).Return(nil, errors.New("connection refused"))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/owners/"+ownerID, ""), idParam(ownerID))
	handler.GetByID(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestOwnerHandler_Update_UsesPathID(t *testing.T) {
	mockOwnerService := new(MockOwnerService)
	handler := NewOwnerHandler(mockOwnerService, testLogger(t))
	mockOwnerService.On("Update", mock.Anything, mock.MatchedBy(func(o *owners.Owner) bool {
		return o.ID == ownerID && o.Name == "Ana Silva"
	})).Return(&owners.Owner{ID: ownerID, Name: "Ana Silva"}, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPut, "/api/owners/"+ownerID, `{"name":"Ana Silva"}`), idParam(ownerID))
	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockOwnerService.AssertExpectations(t)
}

func TestOwnerHandler_DeleteByID(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"still has properties", fmt.Errorf("owner has properties: %w", apperrors.ErrConflict), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOwnerService := new(MockOwnerService)
			handler := NewOwnerHandler(mockOwnerService, testLogger(t))
			mockOwnerService.On("DeleteByID", mock.Anything, ownerID).Return(tt.err)

			c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodDelete, "/api/owners/"+ownerID, ""), idParam(ownerID))
			handler.DeleteByID(c)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
