//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/demo"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"

	"github.com/stretchr/testify/mock"
)

// mockValue returns the typed mock return value at index, or the zero value when nil was configured
func mockValue[T any](args mock.Arguments, index int) T {
	var zero T
	if v := args.Get(index); v != nil {
		return v.(T)
	}
	return zero
}

// MockAuthService is a mock implementation of auth.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*auth.TokenPair, *auth.User, error) {
	args := m.Called(ctx, email, password)
	return mockValue[*auth.TokenPair](args, 0), mockValue[*auth.User](args, 1), args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return mockValue[*auth.TokenPair](args, 0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthService) Register(ctx context.Context, caller *auth.Claims, input *auth.RegisterInput) (*auth.User, error) {
	args := m.Called(ctx, caller, input)
	return mockValue[*auth.User](args, 0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, accessToken string) (*auth.Claims, error) {
	args := m.Called(ctx, accessToken)
	return mockValue[*auth.Claims](args, 0), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, claims *auth.Claims) (*auth.User, error) {
	args := m.Called(ctx, claims)
	return mockValue[*auth.User](args, 0), args.Error(1)
}

// MockOwnerService is a mock implementation of owners.OwnerService
type MockOwnerService struct {
	mock.Mock
}

func (m *MockOwnerService) Create(ctx context.Context, owner *owners.Owner) (*owners.Owner, error) {
	args := m.Called(ctx, owner)
	return mockValue[*owners.Owner](args, 0), args.Error(1)
}

func (m *MockOwnerService) List(ctx context.Context, query *owners.OwnerQuery) ([]*owners.Owner, int64, error) {
	args := m.Called(ctx, query)
	return mockValue[[]*owners.Owner](args, 0), mockValue[int64](args, 1), args.Error(2)
}

func (m *MockOwnerService) GetByID(ctx context.Context, ownerID string) (*owners.Owner, error) {
	args := m.Called(ctx, ownerID)
	return mockValue[*owners.Owner](args, 0), args.Error(1)
}

func (m *MockOwnerService) Update(ctx context.Context, owner *owners.Owner) (*owners.Owner, error) {
	args := m.Called(ctx, owner)
	return mockValue[*owners.Owner](args, 0), args.Error(1)
}

func (m *MockOwnerService) DeleteByID(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// MockPropertyService is a mock implementation of properties.PropertyService
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Create(ctx context.Context, property *properties.Property) (*properties.Property, error) {
	args := m.Called(ctx, property)
	return mockValue[*properties.Property](args, 0), args.Error(1)
}

func (m *MockPropertyService) List(ctx context.Context, query *properties.PropertyQuery) ([]*properties.Property, int64, error) {
	args := m.Called(ctx, query)
	return mockValue[[]*properties.Property](args, 0), mockValue[int64](args, 1), args.Error(2)
}

func (m *MockPropertyService) GetByID(ctx context.Context, propertyID string) (*properties.Property, error) {
	args := m.Called(ctx, propertyID)
	return mockValue[*properties.Property](args, 0), args.Error(1)
}

func (m *MockPropertyService) Update(ctx context.Context, property *properties.Property) (*properties.Property, error) {
	args := m.Called(ctx, property)
	return mockValue[*properties.Property](args, 0), args.Error(1)
}

func (m *MockPropertyService) DeleteByID(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *MockPropertyService) ListActive(ctx context.Context) ([]*properties.Property, error) {
	args := m.Called(ctx)
	return mockValue[[]*properties.Property](args, 0), args.Error(1)
}

// MockReservationService is a mock implementation of reservations.ReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Create(ctx context.Context, reservation *reservations.Reservation) (*reservations.Reservation, error) {
	args := m.Called(ctx, reservation)
	return mockValue[*reservations.Reservation](args, 0), args.Error(1)
}

func (m *MockReservationService) List(ctx context.Context, query *reservations.ReservationQuery) ([]*reservations.Reservation, int64, error) {
	args := m.Called(ctx, query)
	return mockValue[[]*reservations.Reservation](args, 0), mockValue[int64](args, 1), args.Error(2)
}

func (m *MockReservationService) GetByID(ctx context.Context, reservationID string) (*reservations.Reservation, error) {
	args := m.Called(ctx, reservationID)
	return mockValue[*reservations.Reservation](args, 0), args.Error(1)
}

func (m *MockReservationService) Update(ctx context.Context, reservation *reservations.Reservation) (*reservations.Reservation, error) {
	args := m.Called(ctx, reservation)
	return mockValue[*reservations.Reservation](args, 0), args.Error(1)
}

func (m *MockReservationService) UpdateStatus(ctx context.Context, reservationID, status string) (*reservations.Reservation, error) {
	args := m.Called(ctx, reservationID, status)
	return mockValue[*reservations.Reservation](args, 0), args.Error(1)
}

func (m *MockReservationService) DeleteByID(ctx context.Context, reservationID string) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

func (m *MockReservationService) UpcomingCheckIns(ctx context.Context, days int) ([]*reservations.Reservation, error) {
	args := m.Called(ctx, days)
	return mockValue[[]*reservations.Reservation](args, 0), args.Error(1)
}

func (m *MockReservationService) UpcomingCheckOuts(ctx context.Context, days int) ([]*reservations.Reservation, error) {
	args := m.Called(ctx, days)
	return mockValue[[]*reservations.Reservation](args, 0), args.Error(1)
}

// MockTeamService is a mock implementation of cleaning.TeamService
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) Create(ctx context.Context, team *cleaning.Team) (*cleaning.Team, error) {
	args := m.Called(ctx, team)
	return mockValue[*cleaning.Team](args, 0), args.Error(1)
}

func (m *MockTeamService) List(ctx context.Context, query *cleaning.TeamQuery) ([]*cleaning.Team, int64, error) {
	args := m.Called(ctx, query)
	return mockValue[[]*cleaning.Team](args, 0), mockValue[int64](args, 1), args.Error(2)
}

func (m *MockTeamService) GetByID(ctx context.Context, teamID string) (*cleaning.Team, error) {
	args := m.Called(ctx, teamID)
	return mockValue[*cleaning.Team](args, 0), args.Error(1)
}

func (m *MockTeamService) Update(ctx context.Context, team *cleaning.Team) (*cleaning.Team, error) {
	args := m.Called(ctx, team)
	return mockValue[*cleaning.Team](args, 0), args.Error(1)
}

func (m *MockTeamService) DeleteByID(ctx context.Context, teamID string) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

// MockScheduleService is a mock implementation of cleaning.ScheduleService
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) ScheduleForReservation(ctx context.Context, reservationID string) (*cleaning.Schedule, error) {
	args := m.Called(ctx, reservationID)
	return mockValue[*cleaning.Schedule](args, 0), args.Error(1)
}

func (m *MockScheduleService) CancelForReservation(ctx context.Context, reservationID string) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

func (m *MockScheduleService) List(ctx context.Context, query *cleaning.ScheduleQuery) ([]*cleaning.Schedule, int64, error) {
	args := m.Called(ctx, query)
	return mockValue[[]*cleaning.Schedule](args, 0), mockValue[int64](args, 1), args.Error(2)
}

func (m *MockScheduleService) Complete(ctx context.Context, scheduleID string) (*cleaning.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	return mockValue[*cleaning.Schedule](args, 0), args.Error(1)
}

func (m *MockScheduleService) Cancel(ctx context.Context, scheduleID string) (*cleaning.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	return mockValue[*cleaning.Schedule](args, 0), args.Error(1)
}

// MockDocumentService is a mock implementation of finance.DocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Create(ctx context.Context, document *finance.Document) (*finance.Document, error) {
	args := m.Called(ctx, document)
	return mockValue[*finance.Document](args, 0), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, query *finance.DocumentQuery) ([]*finance.Document, int64, error) {
	args := m.Called(ctx, query)
	return mockValue[[]*finance.Document](args, 0), mockValue[int64](args, 1), args.Error(2)
}

func (m *MockDocumentService) GetByID(ctx context.Context, documentID string) (*finance.Document, error) {
	args := m.Called(ctx, documentID)
	return mockValue[*finance.Document](args, 0), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, document *finance.Document) (*finance.Document, error) {
	args := m.Called(ctx, document)
	return mockValue[*finance.Document](args, 0), args.Error(1)
}

func (m *MockDocumentService) DeleteByID(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentService) AddItem(ctx context.Context, documentID string, item *finance.Item) (*finance.Document, error) {
	args := m.Called(ctx, documentID, item)
	return mockValue[*finance.Document](args, 0), args.Error(1)
}

func (m *MockDocumentService) RemoveItem(ctx context.Context, documentID, itemID string) (*finance.Document, error) {
	args := m.Called(ctx, documentID, itemID)
	return mockValue[*finance.Document](args, 0), args.Error(1)
}

func (m *MockDocumentService) RegisterPayment(ctx context.Context, documentID string, payment *finance.Payment) (*finance.Document, error) {
	args := m.Called(ctx, documentID, payment)
	return mockValue[*finance.Document](args, 0), args.Error(1)
}

func (m *MockDocumentService) Summary(ctx context.Context, ownerID string) (*finance.Summary, error) {
	args := m.Called(ctx, ownerID)
	return mockValue[*finance.Summary](args, 0), args.Error(1)
}

// MockQuotationService is a mock implementation of quotations.QuotationService
type MockQuotationService struct {
	mock.Mock
}

func (m *MockQuotationService) Calculate(ctx context.Context, input *quotations.PricingInput) (*quotations.Price, error) {
	args := m.Called(ctx, input)
	return mockValue[*quotations.Price](args, 0), args.Error(1)
}

func (m *MockQuotationService) Create(ctx context.Context, quotation *quotations.Quotation) (*quotations.Quotation, error) {
	args := m.Called(ctx, quotation)
	return mockValue[*quotations.Quotation](args, 0), args.Error(1)
}

func (m *MockQuotationService) List(ctx context.Context, query *quotations.QuotationQuery) ([]*quotations.Quotation, int64, error) {
	args := m.Called(ctx, query)
	return mockValue[[]*quotations.Quotation](args, 0), mockValue[int64](args, 1), args.Error(2)
}

func (m *MockQuotationService) GetByID(ctx context.Context, quotationID string) (*quotations.Quotation, error) {
	args := m.Called(ctx, quotationID)
	return mockValue[*quotations.Quotation](args, 0), args.Error(1)
}

func (m *MockQuotationService) Update(ctx context.Context, quotation *quotations.Quotation) (*quotations.Quotation, error) {
	args := m.Called(ctx, quotation)
	return mockValue[*quotations.Quotation](args, 0), args.Error(1)
}

func (m *MockQuotationService) UpdateStatus(ctx context.Context, quotationID, status string) (*quotations.Quotation, error) {
	args := m.Called(ctx, quotationID, status)
	return mockValue[*quotations.Quotation](args, 0), args.Error(1)
}

func (m *MockQuotationService) DeleteByID(ctx context.Context, quotationID string) error {
	args := m.Called(ctx, quotationID)
	return args.Error(0)
}

func (m *MockQuotationService) RenderPDF(ctx context.Context, quotationID string) ([]byte, *quotations.Quotation, error) {
	args := m.Called(ctx, quotationID)
	return mockValue[[]byte](args, 0), mockValue[*quotations.Quotation](args, 1), args.Error(2)
}

func (m *MockQuotationService) Send(ctx context.Context, quotationID string) (*quotations.Quotation, error) {
	args := m.Called(ctx, quotationID)
	return mockValue[*quotations.Quotation](args, 0), args.Error(1)
}

// MockOCRService is a mock implementation of ocr.OCRService
type MockOCRService struct {
	mock.Mock
}

func (m *MockOCRService) ProcessDocument(ctx context.Context, document *ocr.Document) (*ocr.ProcessResult, error) {
	args := m.Called(ctx, document)
	return mockValue[*ocr.ProcessResult](args, 0), args.Error(1)
}

func (m *MockOCRService) CreateReservationFromDocument(ctx context.Context, document *ocr.Document) (*ocr.ProcessResult, error) {
	args := m.Called(ctx, document)
	return mockValue[*ocr.ProcessResult](args, 0), args.Error(1)
}

func (m *MockOCRService) Providers(ctx context.Context) *ocr.ProviderInfo {
	args := m.Called(ctx)
	return mockValue[*ocr.ProviderInfo](args, 0)
}

// MockReportService is a mock implementation of reports.ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) OwnerReport(ctx context.Context, ownerID string, from, to time.Time) (*reports.OwnerReport, error) {
	args := m.Called(ctx, ownerID, from, to)
	return mockValue[*reports.OwnerReport](args, 0), args.Error(1)
}

func (m *MockReportService) Export(ctx context.Context, report *reports.OwnerReport, format string) (*reports.Export, error) {
	args := m.Called(ctx, report, format)
	return mockValue[*reports.Export](args, 0), args.Error(1)
}

func (m *MockReportService) SendToOwner(ctx context.Context, ownerID string, from, to time.Time) error {
	args := m.Called(ctx, ownerID, from, to)
	return args.Error(0)
}

// MockStatisticsService is a mock implementation of reports.StatisticsService
type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) Statistics(ctx context.Context, from, to time.Time) (*reports.Statistics, error) {
	args := m.Called(ctx, from, to)
	return mockValue[*reports.Statistics](args, 0), args.Error(1)
}

func (m *MockStatisticsService) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

// MockDemoService is a mock implementation of demo.DemoService
type MockDemoService struct {
	mock.Mock
}

func (m *MockDemoService) Generate(ctx context.Context, options demo.GenerateOptions) (*demo.Summary, error) {
	args := m.Called(ctx, options)
	return mockValue[*demo.Summary](args, 0), args.Error(1)
}

func (m *MockDemoService) Reset(ctx context.Context) (*demo.Summary, error) {
	args := m.Called(ctx)
	return mockValue[*demo.Summary](args, 0), args.Error(1)
}
