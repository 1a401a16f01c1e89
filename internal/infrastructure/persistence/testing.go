//go:build integration || container
// +build integration container

package persistence

import (
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	OwnerRepo       owners.OwnerRepository
	PropertyRepo    properties.PropertyRepository
	ReservationRepo reservations.ReservationRepository
	TeamRepo        cleaning.TeamRepository
	ScheduleRepo    cleaning.ScheduleRepository
	DocumentRepo    finance.DocumentRepository
	QuotationRepo   quotations.QuotationRepository
	UserRepo        auth.UserRepository
}

// SetupTestDB initializes an in-memory SQLite database with every repository
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()
	return SetupTestDBWithSettings(t, config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	})
}

// SetupTestDBWithSettings connects with settings, migrates and builds the repositories
func SetupTestDBWithSettings(t *testing.T, settings config.DatabaseSettings) *TestContext {
	t.Helper()

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	ownerRepo, err := NewGormOwnerRepository(db, logger)
	require.NoError(t, err)
	propertyRepo, err := NewGormPropertyRepository(db, logger)
	require.NoError(t, err)
	reservationRepo, err := NewGormReservationRepository(db, logger)
	require.NoError(t, err)
	teamRepo, err := NewGormCleaningTeamRepository(db, logger)
	require.NoError(t, err)
	scheduleRepo, err := NewGormCleaningScheduleRepository(db, logger)
	require.NoError(t, err)
	documentRepo, err := NewGormFinancialDocumentRepository(db, logger)
	require.NoError(t, err)
	quotationRepo, err := NewGormQuotationRepository(db, logger)
	require.NoError(t, err)
	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err)

	return &TestContext{
		DB:              db,
		OwnerRepo:       ownerRepo,
		PropertyRepo:    propertyRepo,
		ReservationRepo: reservationRepo,
		TeamRepo:        teamRepo,
		ScheduleRepo:    scheduleRepo,
		DocumentRepo:    documentRepo,
		QuotationRepo:   quotationRepo,
		UserRepo:        userRepo,
	}
}

// Day returns midnight UTC of the given date
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestOwner builds an owner with default values
func CreateTestOwner(t *testing.T, name string) *owners.Owner {
	t.Helper()

	return &owners.Owner{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           "owner@example.pt",
		TaxID:           "123456789",
		DateTimeCreated: time.Now().UTC(),
	}
}

// CreateTestProperty builds an active property of ownerID with a typical cost profile
func CreateTestProperty(t *testing.T, ownerID, name string) *properties.Property {
	t.Helper()

	return &properties.Property{
		ID:              uuid.NewString(),
		Name:            name,
		OwnerID:         ownerID,
		CleaningCost:    decimal.NewFromInt(45),
		CheckInFee:      decimal.NewFromInt(15),
		Commission:      decimal.NewFromInt(20),
		TeamPayment:     decimal.NewFromInt(30),
		Active:          true,
		DateTimeCreated: time.Now().UTC(),
	}
}

// CreateTestReservation builds a pending direct reservation of propertyID
func CreateTestReservation(t *testing.T, propertyID string, checkIn, checkOut time.Time) *reservations.Reservation {
	t.Helper()

	return &reservations.Reservation{
		ID:              uuid.NewString(),
		PropertyID:      propertyID,
		GuestName:       "Joana Silva",
		GuestEmail:      "joana@example.pt",
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       2,
		TotalAmount:     decimal.NewFromInt(400),
		Status:          reservations.StatusPending,
		Platform:        reservations.PlatformDirect,
		Source:          reservations.SourceManual,
		DateTimeCreated: time.Now().UTC(),
	}
}

// CreateTestTeam builds an active cleaning team
func CreateTestTeam(t *testing.T, name string) *cleaning.Team {
	t.Helper()

	return &cleaning.Team{
		ID:              uuid.NewString(),
		Name:            name,
		Rate:            decimal.NewFromInt(12),
		Status:          cleaning.TeamStatusActive,
		DateTimeCreated: time.Now().UTC(),
	}
}
