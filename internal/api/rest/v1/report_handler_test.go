//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	marchFirst = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	marchLast  = time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
)

func sampleOwnerReport() *reports.OwnerReport {
	owner := &owners.Owner{ID: ownerID, Name: "Maria Conceição"}
	return reports.BuildOwnerReport(owner, nil, nil, marchFirst, marchLast)
}

func TestReportHandler_OwnerReport_JSON(t *testing.T) {
	mockReportService := new(MockReportService)
	handler := NewReportHandler(mockReportService, new(MockStatisticsService), testLogger(t))
	mockReportService.On("OwnerReport", mock.Anything, ownerID, marchFirst, marchLast).Return(sampleOwnerReport(), nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/reports/owners/"+ownerID+"?from=2026-03-01&to=2026-03-31", ""), idParam(ownerID))
	handler.OwnerReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response OwnerReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "2026-03-01", response.From)
	assert.Equal(t, "Maria Conceição", response.Owner.Name)
	assert.Empty(t, response.Properties)
	mockReportService.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportHandler_OwnerReport_CSVDownload(t *testing.T) {
	mockReportService := new(MockReportService)
	handler := NewReportHandler(mockReportService, new(MockStatisticsService), testLogger(t))

	report := sampleOwnerReport()
	mockReportService.On("OwnerReport", mock.Anything, ownerID, marchFirst, marchLast).Return(report, nil)
	mockReportService.On("Export", mock.Anything, report, reports.FormatCSV).Return(&reports.Export{
		FileName:    report.FileName(reports.FormatCSV),
		ContentType: "text/csv; charset=utf-8",
		Data:        []byte("Propriedade;Hóspede"),
	}, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/reports/owners/"+ownerID+"?from=2026-03-01&to=2026-03-31&format=CSV", ""), idParam(ownerID))
	handler.OwnerReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="relatorio-maria-conceicao-20260301-20260331.csv"`, w.Header().Get("Content-Disposition"))
	mockReportService.AssertExpectations(t)
}

func TestReportHandler_OwnerReport_MissingWindow(t *testing.T) {
	mockReportService := new(MockReportService)
	handler := NewReportHandler(mockReportService, new(MockStatisticsService), testLogger(t))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/reports/owners/"+ownerID+"?from=2026-03-01", ""), idParam(ownerID))
	handler.OwnerReport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "to:")
	mockReportService.AssertNotCalled(t, "OwnerReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportHandler_SendToOwner(t *testing.T) {
	mockReportService := new(MockReportService)
	handler := NewReportHandler(mockReportService, new(MockStatisticsService), testLogger(t))
	mockReportService.On("SendToOwner", mock.Anything, ownerID, marchFirst, marchLast).Return(nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/reports/owners/"+ownerID+"/send?from=2026-03-01&to=2026-03-31", ""), idParam(ownerID))
	handler.SendToOwner(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "report sent")
	mockReportService.AssertExpectations(t)
}

func TestReportHandler_Statistics_DefaultsToCurrentMonth(t *testing.T) {
	mockStatisticsService := new(MockStatisticsService)
	handler := NewReportHandler(new(MockReportService), mockStatisticsService, testLogger(t)).(*reportHandler)
	handler.now = func() time.Time { return time.Date(2026, 2, 14, 18, 30, 0, 0, time.UTC) }

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	mockStatisticsService.On("Statistics", mock.Anything, from, to).Return(&reports.Statistics{
		From:                 from,
		To:                   to,
		TotalRevenue:         decimal.NewFromInt(1400),
		NetProfit:            decimal.NewFromInt(1100),
		ReservationsByStatus: map[string]int{"pending": 2},
		ActiveProperties:     2,
		TopProperties:        []reports.PropertyRevenue{{PropertyID: propertyID, PropertyName: "Casa da Serra", Revenue: decimal.NewFromInt(1000), Reservations: 1}},
	}, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/statistics", ""))
	handler.Statistics(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response StatisticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "2026-02-28", response.To)
	assert.Equal(t, 2, response.ActiveProperties)
	require.Len(t, response.TopProperties, 1)
	assert.Equal(t, "Casa da Serra", response.TopProperties[0].PropertyName)
	mockStatisticsService.AssertExpectations(t)
}
