//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/demo"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/notifications"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/cache"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/reporting"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/security"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	OwnerService       owners.OwnerService
	PropertyService    properties.PropertyService
	ReservationService reservations.ReservationService
	DocumentService    finance.DocumentService
	QuotationService   quotations.QuotationService
	TeamService        cleaning.TeamService
	ScheduleService    cleaning.ScheduleService
	AuthService        auth.AuthService
	OCRService         ocr.OCRService
	ReportService      reports.ReportService
	StatisticsService  reports.StatisticsService
	DemoService        demo.DemoService

	Cache     cache.Cache
	Mailer    *recordingMailer
	Extractor *fakeExtractor

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices wires every service against an in-memory SQLite database,
// the memory cache, a recording mailer and a fake OCR extractor
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t)

	memoryCache := cache.NewMemoryCache(time.Minute)
	mailer := &recordingMailer{}
	extractor := &fakeExtractor{}

	statisticsService, err := NewStatisticsService(dbContext.ReservationRepo, dbContext.PropertyRepo, memoryCache, logger)
	require.NoError(t, err, "Failed to create StatisticsService")

	scheduleService, err := NewScheduleService(dbContext.ScheduleRepo, dbContext.TeamRepo, dbContext.PropertyRepo, dbContext.ReservationRepo, logger)
	require.NoError(t, err, "Failed to create ScheduleService")

	teamService, err := NewTeamService(dbContext.TeamRepo, dbContext.PropertyRepo, logger)
	require.NoError(t, err, "Failed to create TeamService")

	ownerService, err := NewOwnerService(dbContext.OwnerRepo, dbContext.PropertyRepo, dbContext.DocumentRepo, logger)
	require.NoError(t, err, "Failed to create OwnerService")

	propertyService, err := NewPropertyService(dbContext.PropertyRepo, dbContext.OwnerRepo, dbContext.TeamRepo, dbContext.ReservationRepo, logger)
	require.NoError(t, err, "Failed to create PropertyService")

	reservationService, err := NewReservationService(dbContext.ReservationRepo, dbContext.PropertyRepo, scheduleService, statisticsService, logger)
	require.NoError(t, err, "Failed to create ReservationService")

	documentService, err := NewDocumentService(dbContext.DocumentRepo, dbContext.OwnerRepo, logger)
	require.NoError(t, err, "Failed to create DocumentService")

	pricing := config.DefaultPricingSettings()
	calculator, err := NewFormulaPriceCalculator(&pricing)
	require.NoError(t, err, "Failed to create price calculator")

	quotationService, err := NewQuotationService(dbContext.QuotationRepo, calculator, reporting.NewQuotationRenderer(logger), mailer, pricing.ValidityDays, logger)
	require.NoError(t, err, "Failed to create QuotationService")

	tokenIssuer, err := security.NewJWTIssuer(&config.AuthSettings{
		AccessTokenSecret:  "test-access-secret-with-32-bytes!!",
		RefreshTokenSecret: "test-refresh-secret-with-32-bytes!",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    24 * time.Hour,
		Issuer:             "maria-faz-test",
	})
	require.NoError(t, err, "Failed to create JWT issuer")

	authService, err := NewAuthService(dbContext.UserRepo, tokenIssuer, security.NewBcryptHasher(bcrypt.MinCost), cache.NewSessionStore(memoryCache), logger)
	require.NoError(t, err, "Failed to create AuthService")

	ocrService, err := NewOCRService(extractor, propertyService, reservationService, 0.6, 10<<20, logger)
	require.NoError(t, err, "Failed to create OCRService")

	reportService, err := NewReportService(dbContext.OwnerRepo, dbContext.PropertyRepo, dbContext.ReservationRepo, reporting.NewOwnerReportRenderer(logger), mailer, logger)
	require.NoError(t, err, "Failed to create ReportService")

	demoService, err := NewDemoService(dbContext.OwnerRepo, dbContext.TeamRepo, dbContext.PropertyRepo, dbContext.ReservationRepo, dbContext.ScheduleRepo, statisticsService, logger)
	require.NoError(t, err, "Failed to create DemoService")

	return &TestServices{
		OwnerService:       ownerService,
		PropertyService:    propertyService,
		ReservationService: reservationService,
		DocumentService:    documentService,
		QuotationService:   quotationService,
		TeamService:        teamService,
		ScheduleService:    scheduleService,
		AuthService:        authService,
		OCRService:         ocrService,
		ReportService:      reportService,
		StatisticsService:  statisticsService,
		DemoService:        demoService,
		Cache:              memoryCache,
		Mailer:             mailer,
		Extractor:          extractor,
		DBContext:          dbContext,
	}
}

// pinClock fixes the service clock to day at noon UTC for the duration of the test
func pinClock(t *testing.T, day time.Time) {
	t.Helper()
	previous := clock
	clock = func() time.Time { return day.Add(12 * time.Hour) }
	t.Cleanup(func() { clock = previous })
}

// recordingMailer keeps every message instead of sending it
type recordingMailer struct {
	mu       sync.Mutex
	messages []*notifications.Message
}

func (m *recordingMailer) Send(_ context.Context, message *notifications.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, message)
	return nil
}

func (m *recordingMailer) Sent() []*notifications.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*notifications.Message(nil), m.messages...)
}

// fakeExtractor returns a canned extraction
type fakeExtractor struct {
	extraction *ocr.Extraction
	err        error
}

func (e *fakeExtractor) Name() string  { return "fake" }
func (e *fakeExtractor) Model() string { return "fake-1" }

func (e *fakeExtractor) Extract(_ context.Context, _ *ocr.Document) (*ocr.Extraction, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.extraction, nil
}

// createOwnerAndProperty stores an owner and a property through the services
func createOwnerAndProperty(t *testing.T, services *TestServices, propertyName string) (*owners.Owner, *properties.Property) {
	t.Helper()
	ctx := context.Background()

	owner, err := services.OwnerService.Create(ctx, persistence.CreateTestOwner(t, "Maria Conceição"))
	require.NoError(t, err)
	property, err := services.PropertyService.Create(ctx, persistence.CreateTestProperty(t, owner.ID, propertyName))
	require.NoError(t, err)
	return owner, property
}
