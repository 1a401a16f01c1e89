package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/google/uuid"
)

// teamService implements the TeamService interface
type teamService struct {
	teamRepository     cleaning.TeamRepository
	propertyRepository properties.PropertyRepository
	logger             logger.Logger
}

// NewTeamService creates a new instance of TeamService
func NewTeamService(
	teamRepository cleaning.TeamRepository,
	propertyRepository properties.PropertyRepository,
	logger logger.Logger,
) (cleaning.TeamService, error) {
	return &teamService{
		teamRepository:     teamRepository,
		propertyRepository: propertyRepository,
		logger:             logger,
	}, nil
}

// Create stores a team with a unique name
func (s *teamService) Create(ctx context.Context, team *cleaning.Team) (*cleaning.Team, error) {
	team.ID = uuid.NewString()
	team.Name = strings.TrimSpace(team.Name)
	team.DateTimeCreated = clock()
	team.DateTimeUpdated = team.DateTimeCreated
	if team.Status == "" {
		team.Status = cleaning.TeamStatusActive
	}

	if err := s.checkName(ctx, team); err != nil {
		return nil, err
	}
	if err := s.teamRepository.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return team, nil
}

// List returns a page of teams
func (s *teamService) List(ctx context.Context, query *cleaning.TeamQuery) ([]*cleaning.Team, int64, error) {
	list, total, err := s.teamRepository.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return list, total, nil
}

// GetByID retrieves a team by ID
func (s *teamService) GetByID(ctx context.Context, teamID string) (*cleaning.Team, error) {
	team, err := s.teamRepository.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return team, nil
}

// Update replaces the editable fields of a team
func (s *teamService) Update(ctx context.Context, team *cleaning.Team) (*cleaning.Team, error) {
	existing, err := s.teamRepository.GetByID(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	team.Name = strings.TrimSpace(team.Name)
	team.DateTimeCreated = existing.DateTimeCreated
	team.IsDemo = existing.IsDemo
	team.DateTimeUpdated = clock()
	if team.Status == "" {
		team.Status = existing.Status
	}

	if err := s.checkName(ctx, team); err != nil {
		return nil, err
	}
	if err := s.teamRepository.UpdateByID(ctx, team); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return team, nil
}

// DeleteByID removes a team no property references
func (s *teamService) DeleteByID(ctx context.Context, teamID string) error {
	if _, err := s.teamRepository.GetByID(ctx, teamID); err != nil {
		return fmt.Errorf("%w", err)
	}

	count, err := s.propertyRepository.CountByCleaningTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: cleaning team %s is assigned to %d properties", apperrors.ErrConflict, teamID, count)
	}

	if err := s.teamRepository.DeleteByID(ctx, teamID); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.logger.With("team_id", teamID).Info("cleaning team deleted")
	return nil
}

func (s *teamService) checkName(ctx context.Context, team *cleaning.Team) error {
	if team.Name == "" {
		return nil
	}
	other, err := s.teamRepository.FindByName(ctx, team.Name)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if other != nil && other.ID != team.ID {
		return fmt.Errorf("%w: a cleaning team named %q already exists", apperrors.ErrConflict, team.Name)
	}
	return nil
}

// scheduleService implements the ScheduleService interface
type scheduleService struct {
	scheduleRepository    cleaning.ScheduleRepository
	teamRepository        cleaning.TeamRepository
	propertyRepository    properties.PropertyRepository
	reservationRepository reservations.ReservationRepository
	logger                logger.Logger
}

// NewScheduleService creates a new instance of ScheduleService
func NewScheduleService(
	scheduleRepository cleaning.ScheduleRepository,
	teamRepository cleaning.TeamRepository,
	propertyRepository properties.PropertyRepository,
	reservationRepository reservations.ReservationRepository,
	logger logger.Logger,
) (cleaning.ScheduleService, error) {
	return &scheduleService{
		scheduleRepository:    scheduleRepository,
		teamRepository:        teamRepository,
		propertyRepository:    propertyRepository,
		reservationRepository: reservationRepository,
		logger:                logger,
	}, nil
}

// ScheduleForReservation books the property's active team on the check-out day
func (s *scheduleService) ScheduleForReservation(ctx context.Context, reservationID string) (*cleaning.Schedule, error) {
	reservation, err := s.reservationRepository.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	property, err := s.propertyRepository.GetByID(ctx, reservation.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if property.CleaningTeamID == nil || *property.CleaningTeamID == "" {
		return nil, nil
	}

	existing, err := s.scheduleRepository.FindByReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if existing != nil {
		return nil, nil
	}

	team, err := s.teamRepository.GetByID(ctx, *property.CleaningTeamID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if team.Status != cleaning.TeamStatusActive {
		s.logger.Warn("cleaning team ", team.ID, " is inactive, not scheduling reservation ", reservationID)
		return nil, nil
	}

	schedule := &cleaning.Schedule{
		ID:              uuid.NewString(),
		TeamID:          team.ID,
		PropertyID:      property.ID,
		ReservationID:   &reservation.ID,
		ScheduledDate:   reservation.CheckOutDate,
		Status:          cleaning.ScheduleStatusScheduled,
		Notes:           fmt.Sprintf("Limpeza após saída de %s", reservation.GuestName),
		DateTimeCreated: clock(),
	}
	schedule.DateTimeUpdated = schedule.DateTimeCreated
	if err := s.scheduleRepository.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return schedule, nil
}

// CancelForReservation cancels the active schedule of a reservation
func (s *scheduleService) CancelForReservation(ctx context.Context, reservationID string) error {
	schedule, err := s.scheduleRepository.FindByReservation(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if schedule == nil || schedule.Status != cleaning.ScheduleStatusScheduled {
		return nil
	}
	_, err = s.transition(ctx, schedule, cleaning.ScheduleStatusCancelled)
	return err
}

// List returns a page of schedules
func (s *scheduleService) List(ctx context.Context, query *cleaning.ScheduleQuery) ([]*cleaning.Schedule, int64, error) {
	list, total, err := s.scheduleRepository.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return list, total, nil
}

// Complete marks a scheduled cleaning as done
func (s *scheduleService) Complete(ctx context.Context, scheduleID string) (*cleaning.Schedule, error) {
	schedule, err := s.scheduleRepository.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.transition(ctx, schedule, cleaning.ScheduleStatusCompleted)
}

// Cancel cancels a scheduled cleaning
func (s *scheduleService) Cancel(ctx context.Context, scheduleID string) (*cleaning.Schedule, error) {
	schedule, err := s.scheduleRepository.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.transition(ctx, schedule, cleaning.ScheduleStatusCancelled)
}

// transition moves a scheduled cleaning to a terminal status
func (s *scheduleService) transition(ctx context.Context, schedule *cleaning.Schedule, status string) (*cleaning.Schedule, error) {
	if schedule.Status != cleaning.ScheduleStatusScheduled {
		return nil, fmt.Errorf("%w: cleaning schedule is already %s", apperrors.ErrValidation, schedule.Status)
	}
	schedule.Status = status
	schedule.DateTimeUpdated = clock()
	if err := s.scheduleRepository.UpdateByID(ctx, schedule); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.logger.With("schedule_id", schedule.ID, "status", status).Info("cleaning schedule updated")
	return schedule, nil
}
