package app

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/demo"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/strutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	demoOwnerNames = []string{
		"Ana Ferreira", "João Martins", "Carla Sousa", "Rui Almeida", "Marta Costa",
		"Pedro Santos", "Inês Rodrigues", "Miguel Pereira", "Sofia Carvalho", "Tiago Lopes",
	}
	demoPlaces = []string{
		"Alfama", "Baixa", "Cascais", "Sintra", "Ericeira", "Comporta", "Lagos", "Tavira",
		"Porto Ribeira", "Foz", "Nazaré", "Óbidos",
	}
	demoKinds  = []string{"Apartamento", "Estúdio", "Casa", "Loft", "Moradia"}
	demoGuests = []string{
		"Emma Schmidt", "Lucas Dubois", "Olivia Smith", "Mateo García", "Sara Rossi",
		"Noah Johnson", "Lena Müller", "Hugo Martin", "Alice Brown", "Diego Fernández",
	}
	demoPlatforms = []string{
		reservations.PlatformAirbnb, reservations.PlatformAirbnb, reservations.PlatformBooking,
		reservations.PlatformBooking, reservations.PlatformDirect, reservations.PlatformExpedia,
	}
)

// demoService implements the DemoService interface
type demoService struct {
	ownerRepository       owners.OwnerRepository
	teamRepository        cleaning.TeamRepository
	propertyRepository    properties.PropertyRepository
	reservationRepository reservations.ReservationRepository
	scheduleRepository    cleaning.ScheduleRepository
	statisticsService     reports.StatisticsService
	random                *rand.Rand
	logger                logger.Logger
}

// NewDemoService creates a new instance of DemoService
func NewDemoService(
	ownerRepository owners.OwnerRepository,
	teamRepository cleaning.TeamRepository,
	propertyRepository properties.PropertyRepository,
	reservationRepository reservations.ReservationRepository,
	scheduleRepository cleaning.ScheduleRepository,
	statisticsService reports.StatisticsService,
	logger logger.Logger,
) (demo.DemoService, error) {
	return &demoService{
		ownerRepository:       ownerRepository,
		teamRepository:        teamRepository,
		propertyRepository:    propertyRepository,
		reservationRepository: reservationRepository,
		scheduleRepository:    scheduleRepository,
		statisticsService:     statisticsService,
		random:                rand.New(rand.NewSource(clock().UnixNano())), // #nosec G404 - synthetic data only
		logger:                logger,
	}, nil
}

// Generate creates owners, one cleaning team per owner, properties and back-to-back
// reservations around today, all flagged as demo
func (s *demoService) Generate(ctx context.Context, options demo.GenerateOptions) (*demo.Summary, error) {
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	summary := &demo.Summary{}
	for i := 0; i < options.Owners; i++ {
		owner, err := s.createOwner(ctx, i)
		if err != nil {
			return summary, err
		}
		summary.Owners++

		team, err := s.createTeam(ctx, owner)
		if err != nil {
			return summary, err
		}
		summary.CleaningTeams++

		for j := 0; j < options.PropertiesPerOwner; j++ {
			property, err := s.createProperty(ctx, owner, team, i*options.PropertiesPerOwner+j)
			if err != nil {
				return summary, err
			}
			summary.Properties++

			created, scheduled, err := s.createReservations(ctx, property, options.ReservationsPerProperty)
			summary.Reservations += created
			summary.Schedules += scheduled
			if err != nil {
				return summary, err
			}
		}
	}

	if s.statisticsService != nil {
		s.statisticsService.Invalidate(ctx)
	}
	s.logger.With("owners", summary.Owners, "properties", summary.Properties, "reservations", summary.Reservations).Info("demo data generated")
	return summary, nil
}

// Reset deletes demo records in dependency order. Demo owners, teams and properties
// still referenced by operator data are kept.
func (s *demoService) Reset(ctx context.Context) (*demo.Summary, error) {
	summary := &demo.Summary{}
	var err error

	if summary.Schedules, err = s.scheduleRepository.DeleteDemo(ctx); err != nil {
		return summary, fmt.Errorf("%w", err)
	}
	if summary.Reservations, err = s.reservationRepository.DeleteDemo(ctx); err != nil {
		return summary, fmt.Errorf("%w", err)
	}
	if summary.Properties, err = s.propertyRepository.DeleteDemo(ctx); err != nil {
		return summary, fmt.Errorf("%w", err)
	}
	if summary.CleaningTeams, err = s.teamRepository.DeleteDemo(ctx); err != nil {
		return summary, fmt.Errorf("%w", err)
	}
	if summary.Owners, err = s.ownerRepository.DeleteDemo(ctx); err != nil {
		return summary, fmt.Errorf("%w", err)
	}

	if s.statisticsService != nil {
		s.statisticsService.Invalidate(ctx)
	}
	s.logger.With("owners", summary.Owners, "properties", summary.Properties, "reservations", summary.Reservations).Info("demo data reset")
	return summary, nil
}

func (s *demoService) createOwner(ctx context.Context, index int) (*owners.Owner, error) {
	name := demoOwnerNames[index%len(demoOwnerNames)]
	if index >= len(demoOwnerNames) {
		name = fmt.Sprintf("%s %d", name, index/len(demoOwnerNames)+1)
	}
	owner := &owners.Owner{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           strings.ReplaceAll(strutil.Slug(name), "-", ".") + "@demo.mariafaz.pt",
		Phone:           fmt.Sprintf("+351 91%07d", s.random.Intn(10000000)),
		IsDemo:          true,
		DateTimeCreated: clock(),
	}
	owner.DateTimeUpdated = owner.DateTimeCreated
	if err := s.ownerRepository.Create(ctx, owner); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return owner, nil
}

func (s *demoService) createTeam(ctx context.Context, owner *owners.Owner) (*cleaning.Team, error) {
	name, err := s.freeTeamName(ctx, "Equipa Demo "+strings.Fields(owner.Name)[0])
	if err != nil {
		return nil, err
	}
	team := &cleaning.Team{
		ID:              uuid.NewString(),
		Name:            name,
		Rate:            decimal.NewFromInt(int64(10 + s.random.Intn(6))),
		Status:          cleaning.TeamStatusActive,
		IsDemo:          true,
		DateTimeCreated: clock(),
	}
	team.DateTimeUpdated = team.DateTimeCreated
	if err := s.teamRepository.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return team, nil
}

func (s *demoService) createProperty(ctx context.Context, owner *owners.Owner, team *cleaning.Team, index int) (*properties.Property, error) {
	place := demoPlaces[index%len(demoPlaces)]
	base := fmt.Sprintf("Demo %s %s", demoKinds[index%len(demoKinds)], place)
	name, err := s.freePropertyName(ctx, base)
	if err != nil {
		return nil, err
	}
	property := &properties.Property{
		ID:               uuid.NewString(),
		Name:             name,
		Aliases:          []string{place + " demo"},
		OwnerID:          owner.ID,
		CleaningCost:     decimal.NewFromInt(int64(30 + 5*s.random.Intn(7))),
		CheckInFee:       decimal.NewFromInt(int64(10 + 5*s.random.Intn(3))),
		Commission:       decimal.NewFromInt(int64(15 + s.random.Intn(11))),
		TeamPayment:      decimal.NewFromInt(int64(20 + 5*s.random.Intn(5))),
		MonthlyFixedCost: decimal.NewFromInt(int64(50 * s.random.Intn(4))),
		CleaningTeamID:   &team.ID,
		Active:           true,
		IsDemo:           true,
		DateTimeCreated:  clock(),
	}
	property.DateTimeUpdated = property.DateTimeCreated
	if err := s.propertyRepository.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return property, nil
}

// createReservations lays stays one after another starting 30 days ago, so they never overlap
func (s *demoService) createReservations(ctx context.Context, property *properties.Property, count int) (int64, int64, error) {
	var created, scheduled int64
	now := today()
	checkIn := now.AddDate(0, 0, -30+s.random.Intn(5))

	for k := 0; k < count; k++ {
		nights := 2 + s.random.Intn(5)
		checkOut := checkIn.AddDate(0, 0, nights)
		nightly := decimal.NewFromInt(int64(60 + 10*s.random.Intn(10)))
		platform := demoPlatforms[s.random.Intn(len(demoPlatforms))]

		status := reservations.StatusConfirmed
		switch {
		case !checkOut.After(now):
			status = reservations.StatusCompleted
		case checkIn.After(now.AddDate(0, 0, 14)):
			status = reservations.StatusPending
		}

		r := &reservations.Reservation{
			ID:              uuid.NewString(),
			PropertyID:      property.ID,
			GuestName:       demoGuests[s.random.Intn(len(demoGuests))],
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumGuests:       1 + s.random.Intn(4),
			TotalAmount:     nightly.Mul(decimal.NewFromInt(int64(nights))),
			Status:          status,
			Platform:        platform,
			Source:          reservations.SourceDemo,
			DateTimeCreated: clock(),
		}
		if platform == reservations.PlatformAirbnb || platform == reservations.PlatformBooking {
			r.PlatformFee = r.TotalAmount.Mul(decimal.RequireFromString("0.15")).Round(2)
		}
		r.DateTimeUpdated = r.DateTimeCreated
		r.ApplyCosts(property)
		if err := s.reservationRepository.Create(ctx, r); err != nil {
			return created, scheduled, fmt.Errorf("%w", err)
		}
		created++

		if status == reservations.StatusConfirmed && property.CleaningTeamID != nil {
			schedule := &cleaning.Schedule{
				ID:              uuid.NewString(),
				TeamID:          *property.CleaningTeamID,
				PropertyID:      property.ID,
				ReservationID:   &r.ID,
				ScheduledDate:   checkOut,
				Status:          cleaning.ScheduleStatusScheduled,
				DateTimeCreated: clock(),
			}
			schedule.DateTimeUpdated = schedule.DateTimeCreated
			if err := s.scheduleRepository.Create(ctx, schedule); err != nil {
				return created, scheduled, fmt.Errorf("%w", err)
			}
			scheduled++
		}

		checkIn = checkOut.AddDate(0, 0, s.random.Intn(4))
	}
	return created, scheduled, nil
}

func (s *demoService) freePropertyName(ctx context.Context, base string) (string, error) {
	name := base
	for n := 2; ; n++ {
		existing, err := s.propertyRepository.FindByName(ctx, name)
		if err != nil {
			return "", fmt.Errorf("%w", err)
		}
		if existing == nil {
			return name, nil
		}
		name = fmt.Sprintf("%s %d", base, n)
	}
}

func (s *demoService) freeTeamName(ctx context.Context, base string) (string, error) {
	name := base
	for n := 2; ; n++ {
		existing, err := s.teamRepository.FindByName(ctx, name)
		if err != nil {
			return "", fmt.Errorf("%w", err)
		}
		if existing == nil {
			return name, nil
		}
		name = fmt.Sprintf("%s %d", base, n)
	}
}
