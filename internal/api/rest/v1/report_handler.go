package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ReportHandler defines the interface for owner reports and dashboard statistics
type ReportHandler interface {
	OwnerReport(ctx *gin.Context)
	SendToOwner(ctx *gin.Context)
	Statistics(ctx *gin.Context)
}

type reportHandler struct {
	reportService     reports.ReportService
	statisticsService reports.StatisticsService
	logger            logger.Logger
	now               func() time.Time
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService reports.ReportService, statisticsService reports.StatisticsService, logger logger.Logger) ReportHandler {
	return &reportHandler{
		reportService:     reportService,
		statisticsService: statisticsService,
		logger:            logger,
		now:               time.Now,
	}
}

// OwnerReport handles the GET request building the report of an owner
// @Summary Owner report
// @Description Returns the report as JSON or, with format=pdf|xlsx|csv, as a file download
// @Tags Reports
// @Produce json
// @Produce application/pdf
// @Param id path string true "Owner ID"
// @Param from query string true "First check-in day (YYYY-MM-DD)"
// @Param to query string true "Last check-in day (YYYY-MM-DD)"
// @Param format query string false "json, pdf, xlsx or csv"
// @Success 200 {object} OwnerReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/owners/{id} [get]
func (handler *reportHandler) OwnerReport(ctx *gin.Context) {
	from, to, ok := requiredWindow(ctx)
	if !ok {
		return
	}
	format := strings.ToLower(strings.TrimSpace(ctx.DefaultQuery("format", reports.FormatJSON)))

	report, err := handler.reportService.OwnerReport(ctx, ctx.Param("id"), from, to)
	if err != nil {
		respondError(ctx, handler.logger, "build owner report", err)
		return
	}
	if format == reports.FormatJSON {
		ctx.JSON(http.StatusOK, newOwnerReportResponse(report))
		return
	}

	export, err := handler.reportService.Export(ctx, report, format)
	if err != nil {
		respondError(ctx, handler.logger, "export owner report", err)
		return
	}
	ctx.Header("Content-Disposition", httputil.AttachmentDisposition(export.FileName))
	ctx.Data(http.StatusOK, export.ContentType, export.Data)
}

// SendToOwner handles the POST request emailing the PDF report to the owner
// @Summary Email an owner report
// @Tags Reports
// @Produce json
// @Param id path string true "Owner ID"
// @Param from query string true "First check-in day (YYYY-MM-DD)"
// @Param to query string true "Last check-in day (YYYY-MM-DD)"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /reports/owners/{id}/send [post]
func (handler *reportHandler) SendToOwner(ctx *gin.Context) {
	from, to, ok := requiredWindow(ctx)
	if !ok {
		return
	}

	if err := handler.reportService.SendToOwner(ctx, ctx.Param("id"), from, to); err != nil {
		respondError(ctx, handler.logger, "send owner report", err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "report sent"})
}

// Statistics handles the GET request returning the dashboard summary.
// The window defaults to the current month.
// @Summary Dashboard statistics
// @Tags Reports
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} StatisticsResponse
// @Failure 400 {object} ErrorResponse
// @Router /statistics [get]
func (handler *reportHandler) Statistics(ctx *gin.Context) {
	from, err := httputil.ParseOptionalDate(ctx.Query("from"))
	if err != nil {
		respondError(ctx, handler.logger, "parse from", err)
		return
	}
	to, err := httputil.ParseOptionalDate(ctx.Query("to"))
	if err != nil {
		respondError(ctx, handler.logger, "parse to", err)
		return
	}

	now := handler.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if from.IsZero() {
		from = monthStart
	}
	if to.IsZero() {
		to = monthStart.AddDate(0, 1, -1)
	}

	stats, err := handler.statisticsService.Statistics(ctx, from, to)
	if err != nil {
		respondError(ctx, handler.logger, "compute statistics", err)
		return
	}
	ctx.JSON(http.StatusOK, newStatisticsResponse(stats))
}

// requiredWindow reads the mandatory from/to query parameters, answering 400 when either is invalid
func requiredWindow(ctx *gin.Context) (from, to time.Time, ok bool) {
	from, err := httputil.ParseDate(ctx.Query("from"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "from: " + err.Error()})
		return from, to, false
	}
	to, err = httputil.ParseDate(ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "to: " + err.Error()})
		return from, to, false
	}
	return from, to, true
}
