// Package bootstrap wires configuration, storage, infrastructure adapters and
// application services into one container shared by the REST API and the CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	v1 "github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/api/rest/v1"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/app"
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
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/mail"
	ocrproviders "github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/reporting"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/security"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const healthProbeKey = "health:probe"

// Container holds every initialized application component
type Container struct {
	DB    *gorm.DB
	Cache cache.Cache

	Auth         auth.AuthService
	Owners       owners.OwnerService
	Properties   properties.PropertyService
	Reservations reservations.ReservationService
	Teams        cleaning.TeamService
	Schedules    cleaning.ScheduleService
	Documents    finance.DocumentService
	Quotations   quotations.QuotationService
	Calculator   quotations.PriceCalculator
	OCR          ocr.OCRService
	Reports      reports.ReportService
	Statistics   reports.StatisticsService
	Demo         demo.DemoService

	logger logger.Logger
}

type repositories struct {
	owners       owners.OwnerRepository
	properties   properties.PropertyRepository
	reservations reservations.ReservationRepository
	teams        cleaning.TeamRepository
	schedules    cleaning.ScheduleRepository
	documents    finance.DocumentRepository
	quotations   quotations.QuotationRepository
	users        auth.UserRepository
}

// OpenDatabase connects to the configured database and, when migrate is set, updates the schema
func OpenDatabase(cfg *config.RestConfig, migrate bool, log logger.Logger) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if migrate {
		if err := persistence.Migrate(db); err != nil {
			_ = persistence.CloseDB(db)
			return nil, err
		}
		log.Info("Database migrations completed successfully")
	}
	return db, nil
}

// New builds the container. The database schema is migrated before services are created.
func New(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*Container, error) {
	db, err := OpenDatabase(cfg, true, log)
	if err != nil {
		return nil, err
	}

	c := &Container{DB: db, logger: log}
	if err := c.initialize(ctx, cfg); err != nil {
		if closeErr := c.Close(); closeErr != nil {
			log.Warn("failed to release resources: ", closeErr)
		}
		return nil, err
	}
	return c, nil
}

func (c *Container) initialize(ctx context.Context, cfg *config.RestConfig) error {
	repos, err := newRepositories(c.DB, c.logger)
	if err != nil {
		return err
	}

	c.Cache, err = cache.NewCache(ctx, &cfg.Cache, c.logger)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}

	mailer, err := mail.NewMailer(&cfg.Mail, c.logger)
	if err != nil {
		return fmt.Errorf("failed to create mailer: %w", err)
	}

	extractor, err := ocrproviders.NewExtractor(ctx, &cfg.OCR, c.logger)
	if err != nil {
		return fmt.Errorf("failed to create OCR extractor: %w", err)
	}

	tokenIssuer, err := security.NewJWTIssuer(&cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}

	c.Calculator, err = app.NewFormulaPriceCalculator(&cfg.Pricing)
	if err != nil {
		return fmt.Errorf("failed to create price calculator: %w", err)
	}

	return c.initializeServices(repos, mailer, extractor, tokenIssuer, cfg)
}

func newRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	var (
		repos repositories
		err   error
	)
	if repos.owners, err = persistence.NewGormOwnerRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create owner repository: %w", err)
	}
	if repos.properties, err = persistence.NewGormPropertyRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	if repos.reservations, err = persistence.NewGormReservationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create reservation repository: %w", err)
	}
	if repos.teams, err = persistence.NewGormCleaningTeamRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create cleaning team repository: %w", err)
	}
	if repos.schedules, err = persistence.NewGormCleaningScheduleRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create cleaning schedule repository: %w", err)
	}
	if repos.documents, err = persistence.NewGormFinancialDocumentRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create financial document repository: %w", err)
	}
	if repos.quotations, err = persistence.NewGormQuotationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create quotation repository: %w", err)
	}
	if repos.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	return &repos, nil
}

func (c *Container) initializeServices(
	repos *repositories,
	mailer notifications.Mailer,
	extractor ocr.Extractor,
	tokenIssuer auth.TokenIssuer,
	cfg *config.RestConfig,
) error {
	var err error
	log := c.logger

	if c.Statistics, err = app.NewStatisticsService(repos.reservations, repos.properties, c.Cache, log); err != nil {
		return fmt.Errorf("failed to create statistics service: %w", err)
	}
	if c.Schedules, err = app.NewScheduleService(repos.schedules, repos.teams, repos.properties, repos.reservations, log); err != nil {
		return fmt.Errorf("failed to create schedule service: %w", err)
	}
	if c.Teams, err = app.NewTeamService(repos.teams, repos.properties, log); err != nil {
		return fmt.Errorf("failed to create team service: %w", err)
	}
	if c.Owners, err = app.NewOwnerService(repos.owners, repos.properties, repos.documents, log); err != nil {
		return fmt.Errorf("failed to create owner service: %w", err)
	}
	if c.Properties, err = app.NewPropertyService(repos.properties, repos.owners, repos.teams, repos.reservations, log); err != nil {
		return fmt.Errorf("failed to create property service: %w", err)
	}
	if c.Reservations, err = app.NewReservationService(repos.reservations, repos.properties, c.Schedules, c.Statistics, log); err != nil {
		return fmt.Errorf("failed to create reservation service: %w", err)
	}
	if c.Documents, err = app.NewDocumentService(repos.documents, repos.owners, log); err != nil {
		return fmt.Errorf("failed to create financial document service: %w", err)
	}
	if c.Quotations, err = app.NewQuotationService(repos.quotations, c.Calculator, reporting.NewQuotationRenderer(log), mailer, cfg.Pricing.ValidityDays, log); err != nil {
		return fmt.Errorf("failed to create quotation service: %w", err)
	}
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	if c.Auth, err = app.NewAuthService(repos.users, tokenIssuer, hasher, cache.NewSessionStore(c.Cache), log); err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}
	if c.OCR, err = app.NewOCRService(extractor, c.Properties, c.Reservations, cfg.OCR.MinMatchScore, cfg.OCR.MaxFileSize, log); err != nil {
		return fmt.Errorf("failed to create OCR service: %w", err)
	}
	if c.Reports, err = app.NewReportService(repos.owners, repos.properties, repos.reservations, reporting.NewOwnerReportRenderer(log), mailer, log); err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}
	if c.Demo, err = app.NewDemoService(repos.owners, repos.teams, repos.properties, repos.reservations, repos.schedules, c.Statistics, log); err != nil {
		return fmt.Errorf("failed to create demo service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return nil
}

// RestServices exposes the container to the REST routes
func (c *Container) RestServices() v1.Services {
	return v1.Services{
		Auth:         c.Auth,
		Owners:       c.Owners,
		Properties:   c.Properties,
		Reservations: c.Reservations,
		Teams:        c.Teams,
		Schedules:    c.Schedules,
		Documents:    c.Documents,
		Quotations:   c.Quotations,
		OCR:          c.OCR,
		Reports:      c.Reports,
		Statistics:   c.Statistics,
		Demo:         c.Demo,
		HealthChecks: map[string]v1.HealthCheck{
			"database": c.pingDatabase,
			"cache":    c.pingCache,
		},
	}
}

func (c *Container) pingDatabase(ctx context.Context) error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *Container) pingCache(ctx context.Context) error {
	var probe struct{}
	_, err := c.Cache.Get(ctx, healthProbeKey, &probe)
	return err
}

// Close releases the cache and the database connection
func (c *Container) Close() error {
	var errs []error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close cache: %w", err))
		}
	}
	if c.DB != nil {
		if err := persistence.CloseDB(c.DB); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
