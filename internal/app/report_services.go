package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/notifications"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/cache"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/shopspring/decimal"
)

const (
	maxReportDays       = 366
	topPropertiesLimit  = 5
	statisticsKeyPrefix = "stats:"
)

var exportContentTypes = map[string]string{
	reports.FormatPDF:  "application/pdf",
	reports.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	reports.FormatCSV:  "text/csv; charset=utf-8",
}

// reportService implements the ReportService interface
type reportService struct {
	ownerRepository       owners.OwnerRepository
	propertyRepository    properties.PropertyRepository
	reservationRepository reservations.ReservationRepository
	renderer              reports.Renderer
	mailer                notifications.Mailer
	logger                logger.Logger
}

// NewReportService creates a new instance of ReportService
func NewReportService(
	ownerRepository owners.OwnerRepository,
	propertyRepository properties.PropertyRepository,
	reservationRepository reservations.ReservationRepository,
	renderer reports.Renderer,
	mailer notifications.Mailer,
	logger logger.Logger,
) (reports.ReportService, error) {
	return &reportService{
		ownerRepository:       ownerRepository,
		propertyRepository:    propertyRepository,
		reservationRepository: reservationRepository,
		renderer:              renderer,
		mailer:                mailer,
		logger:                logger,
	}, nil
}

// OwnerReport groups the owner's reservations checking in within [from, to] per property
func (s *reportService) OwnerReport(ctx context.Context, ownerID string, from, to time.Time) (*reports.OwnerReport, error) {
	from, to, err := reportWindow(from, to)
	if err != nil {
		return nil, err
	}

	owner, err := s.ownerRepository.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	props, err := s.propertyRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	propertyIDs := make([]string, len(props))
	for i, p := range props {
		propertyIDs[i] = p.ID
	}
	list, err := s.reservationRepository.ListCheckInsBetween(ctx, propertyIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	report := reports.BuildOwnerReport(owner, props, list, from, to)
	report.GeneratedAt = clock()
	return report, nil
}

// Export renders the report as pdf, xlsx or csv
func (s *reportService) Export(_ context.Context, report *reports.OwnerReport, format string) (*reports.Export, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	contentType, ok := exportContentTypes[format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, format)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case reports.FormatPDF:
		data, err = s.renderer.RenderPDF(report)
	case reports.FormatXLSX:
		data, err = s.renderer.RenderXLSX(report)
	case reports.FormatCSV:
		data, err = s.renderer.RenderCSV(report)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &reports.Export{FileName: report.FileName(format), ContentType: contentType, Data: data}, nil
}

// SendToOwner emails the PDF report to the owner's address
func (s *reportService) SendToOwner(ctx context.Context, ownerID string, from, to time.Time) error {
	if s.mailer == nil {
		return fmt.Errorf("%w: mail is not configured", apperrors.ErrUnavailable)
	}
	report, err := s.OwnerReport(ctx, ownerID, from, to)
	if err != nil {
		return err
	}
	if report.Owner.Email == "" {
		return fmt.Errorf("%w: owner %s has no email", apperrors.ErrValidation, report.Owner.Name)
	}
	export, err := s.Export(ctx, report, reports.FormatPDF)
	if err != nil {
		return err
	}

	period := report.From.Format("02/01/2006") + " a " + report.To.Format("02/01/2006")
	message := &notifications.Message{
		To:      report.Owner.Email,
		Subject: "Relatório de reservas " + period,
		Body: fmt.Sprintf("Caro(a) %s,\n\nSegue em anexo o relatório das suas propriedades de %s.\n%d reservas, receita de %s € e valor líquido de %s €.\n\nCom os melhores cumprimentos,\nMaria Faz",
			report.Owner.Name, period, report.Totals.Reservations, report.Totals.Revenue.StringFixed(2), report.Totals.NetAmount.StringFixed(2)),
		Attachments: []notifications.Attachment{{FileName: export.FileName, ContentType: export.ContentType, Data: export.Data}},
	}
	if err := s.mailer.Send(ctx, message); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.logger.With("owner_id", ownerID, "from", report.From, "to", report.To).Info("owner report sent")
	return nil
}

// reportWindow truncates the window to days and bounds its length
func reportWindow(from, to time.Time) (time.Time, time.Time, error) {
	if from.IsZero() || to.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from and to are required", apperrors.ErrValidation)
	}
	from, to = reservations.TruncateDay(from), reservations.TruncateDay(to)
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to must not be before from", apperrors.ErrValidation)
	}
	if reports.WindowNights(from, to) > maxReportDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: the window may not exceed %d days", apperrors.ErrValidation, maxReportDays)
	}
	return from, to, nil
}

// statisticsService implements the StatisticsService interface
type statisticsService struct {
	reservationRepository reservations.ReservationRepository
	propertyRepository    properties.PropertyRepository
	cache                 cache.Cache
	logger                logger.Logger
}

// NewStatisticsService creates a new instance of StatisticsService
func NewStatisticsService(
	reservationRepository reservations.ReservationRepository,
	propertyRepository properties.PropertyRepository,
	cache cache.Cache,
	logger logger.Logger,
) (reports.StatisticsService, error) {
	return &statisticsService{
		reservationRepository: reservationRepository,
		propertyRepository:    propertyRepository,
		cache:                 cache,
		logger:                logger,
	}, nil
}

// Statistics computes the dashboard of [from, to], served from cache when present
func (s *statisticsService) Statistics(ctx context.Context, from, to time.Time) (*reports.Statistics, error) {
	from, to, err := reportWindow(from, to)
	if err != nil {
		return nil, err
	}

	key := statisticsKeyPrefix + from.Format("20060102") + ":" + to.Format("20060102")
	var cached reports.Statistics
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.logger.Warn("failed to read statistics cache: ", err)
	} else if found {
		return &cached, nil
	}

	stats, err := s.compute(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, stats, 0); err != nil {
		s.logger.Warn("failed to cache statistics: ", err)
	}
	return stats, nil
}

// Invalidate drops every cached dashboard
func (s *statisticsService) Invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, statisticsKeyPrefix); err != nil {
		s.logger.Warn("failed to invalidate statistics cache: ", err)
	}
}

func (s *statisticsService) compute(ctx context.Context, from, to time.Time) (*reports.Statistics, error) {
	active, err := s.propertyRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	checkIns, err := s.reservationRepository.ListCheckInsBetween(ctx, nil, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	windowEnd := to.AddDate(0, 0, 1)
	staying, err := s.reservationRepository.ListOverlappingWindow(ctx, from, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	byStatus, err := s.reservationRepository.CountByStatus(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	upcomingFrom := today()
	upcoming, err := s.reservationRepository.ListCheckInsBetween(ctx, nil, upcomingFrom, upcomingFrom.AddDate(0, 0, defaultUpcomingDays))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	stats := &reports.Statistics{
		From:                 from,
		To:                   to,
		TotalRevenue:         decimal.Zero,
		NetProfit:            decimal.Zero,
		ReservationsByStatus: byStatus,
		ActiveProperties:     len(active),
		UpcomingCheckIns:     len(upcoming),
	}

	names := make(map[string]string, len(active))
	for _, p := range active {
		names[p.ID] = p.Name
	}
	revenue := map[string]*reports.PropertyRevenue{}
	for _, r := range checkIns {
		stats.TotalRevenue = stats.TotalRevenue.Add(r.TotalAmount)
		stats.NetProfit = stats.NetProfit.Add(r.NetAmount)
		pr, ok := revenue[r.PropertyID]
		if !ok {
			pr = &reports.PropertyRevenue{PropertyID: r.PropertyID, PropertyName: names[r.PropertyID], Revenue: decimal.Zero}
			revenue[r.PropertyID] = pr
		}
		pr.Revenue = pr.Revenue.Add(r.TotalAmount)
		pr.Reservations++
	}
	stats.TopProperties = topProperties(revenue, topPropertiesLimit)

	occupancy := reports.NewTotals()
	occupancy.AvailableNights = len(active) * reports.WindowNights(from, to)
	for _, r := range staying {
		if _, ok := names[r.PropertyID]; ok {
			occupancy.NightsBooked += r.NightsWithin(from, windowEnd)
		}
	}
	occupancy.ComputeOccupancy()
	stats.Occupancy = occupancy.Occupancy
	return stats, nil
}

// topProperties ranks by revenue, then by name
func topProperties(revenue map[string]*reports.PropertyRevenue, limit int) []reports.PropertyRevenue {
	ranked := make([]reports.PropertyRevenue, 0, len(revenue))
	for _, pr := range revenue {
		ranked = append(ranked, *pr)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].Revenue.Cmp(ranked[j].Revenue); c != 0 {
			return c > 0
		}
		return ranked[i].PropertyName < ranked[j].PropertyName
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
