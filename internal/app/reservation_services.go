package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/google/uuid"
)

const (
	defaultUpcomingDays = 7
	maxUpcomingDays     = 365
)

// reservationService implements the ReservationService interface
type reservationService struct {
	reservationRepository reservations.ReservationRepository
	propertyRepository    properties.PropertyRepository
	scheduleService       cleaning.ScheduleService
	statisticsService     reports.StatisticsService
	logger                logger.Logger
}

// NewReservationService creates a new instance of ReservationService.
// statisticsService may be nil when no dashboard cache is in use.
func NewReservationService(
	reservationRepository reservations.ReservationRepository,
	propertyRepository properties.PropertyRepository,
	scheduleService cleaning.ScheduleService,
	statisticsService reports.StatisticsService,
	logger logger.Logger,
) (reservations.ReservationService, error) {
	return &reservationService{
		reservationRepository: reservationRepository,
		propertyRepository:    propertyRepository,
		scheduleService:       scheduleService,
		statisticsService:     statisticsService,
		logger:                logger,
	}, nil
}

// Create fills defaults, derives the cost breakdown, checks availability and stores the reservation
func (s *reservationService) Create(ctx context.Context, reservation *reservations.Reservation) (*reservations.Reservation, error) {
	reservation.ID = uuid.NewString()
	reservation.DateTimeCreated = clock()
	reservation.DateTimeUpdated = reservation.DateTimeCreated
	if reservation.Status == "" {
		reservation.Status = reservations.StatusPending
	}
	if reservation.Source == "" {
		reservation.Source = reservations.SourceManual
	}
	if reservation.Platform == "" {
		reservation.Platform = reservations.PlatformDirect
	}
	if reservation.NumGuests == 0 {
		reservation.NumGuests = 1
	}

	property, err := s.prepare(ctx, reservation)
	if err != nil {
		return nil, err
	}
	if err := s.store(ctx, reservation, property, true); err != nil {
		return nil, err
	}

	s.invalidateStatistics(ctx)
	if reservation.Status == reservations.StatusConfirmed {
		s.scheduleCleaning(ctx, reservation.ID)
	}
	return reservation, nil
}

// List returns a page of reservations
func (s *reservationService) List(ctx context.Context, query *reservations.ReservationQuery) ([]*reservations.Reservation, int64, error) {
	list, total, err := s.reservationRepository.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return list, total, nil
}

// GetByID retrieves a reservation by ID
func (s *reservationService) GetByID(ctx context.Context, reservationID string) (*reservations.Reservation, error) {
	reservation, err := s.reservationRepository.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return reservation, nil
}

// Update replaces the editable fields and recomputes costs and availability.
// Status and source are kept; status changes go through UpdateStatus.
// A confirmed stay that moves property or check-out gets its cleaning rebooked.
func (s *reservationService) Update(ctx context.Context, reservation *reservations.Reservation) (*reservations.Reservation, error) {
	existing, err := s.reservationRepository.GetByID(ctx, reservation.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	reservation.Status = existing.Status
	reservation.Source = existing.Source
	reservation.DateTimeCreated = existing.DateTimeCreated
	reservation.DateTimeUpdated = clock()
	if reservation.Platform == "" {
		reservation.Platform = existing.Platform
	}
	if reservation.NumGuests == 0 {
		reservation.NumGuests = existing.NumGuests
	}

	property, err := s.prepare(ctx, reservation)
	if err != nil {
		return nil, err
	}
	if err := s.store(ctx, reservation, property, false); err != nil {
		return nil, err
	}

	s.invalidateStatistics(ctx)
	moved := reservation.PropertyID != existing.PropertyID || !reservation.CheckOutDate.Equal(existing.CheckOutDate)
	if moved && reservation.Status == reservations.StatusConfirmed {
		s.rescheduleCleaning(ctx, reservation.ID)
	}
	return reservation, nil
}

// UpdateStatus applies a status transition. Confirming books the cleaning team,
// cancelling drops the booked cleaning.
func (s *reservationService) UpdateStatus(ctx context.Context, reservationID, status string) (*reservations.Reservation, error) {
	reservation, err := s.reservationRepository.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !reservations.CanTransition(reservation.Status, status) {
		return nil, fmt.Errorf("%w: cannot change reservation status from %s to %s", apperrors.ErrValidation, reservation.Status, status)
	}

	reservation.Status = status
	reservation.DateTimeUpdated = clock()
	if err := s.reservationRepository.UpdateByID(ctx, reservation); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.logger.With("reservation_id", reservationID, "status", status).Info("reservation status changed")

	s.invalidateStatistics(ctx)
	switch status {
	case reservations.StatusConfirmed:
		s.scheduleCleaning(ctx, reservationID)
	case reservations.StatusCancelled:
		if s.scheduleService != nil {
			if err := s.scheduleService.CancelForReservation(ctx, reservationID); err != nil {
				s.logger.Warn("failed to cancel cleaning of reservation ", reservationID, ": ", err)
			}
		}
	}
	return reservation, nil
}

// DeleteByID removes a reservation
func (s *reservationService) DeleteByID(ctx context.Context, reservationID string) error {
	if _, err := s.reservationRepository.GetByID(ctx, reservationID); err != nil {
		return fmt.Errorf("%w", err)
	}
	if s.scheduleService != nil {
		if err := s.scheduleService.CancelForReservation(ctx, reservationID); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	if err := s.reservationRepository.DeleteByID(ctx, reservationID); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.invalidateStatistics(ctx)
	return nil
}

// UpcomingCheckIns returns reservations checking in from today through today + days
func (s *reservationService) UpcomingCheckIns(ctx context.Context, days int) ([]*reservations.Reservation, error) {
	days, err := upcomingDays(days)
	if err != nil {
		return nil, err
	}
	from := today()
	list, err := s.reservationRepository.ListCheckInsBetween(ctx, nil, from, from.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

// UpcomingCheckOuts returns reservations checking out from today through today + days
func (s *reservationService) UpcomingCheckOuts(ctx context.Context, days int) ([]*reservations.Reservation, error) {
	days, err := upcomingDays(days)
	if err != nil {
		return nil, err
	}
	from := today()
	list, err := s.reservationRepository.ListCheckOutsBetween(ctx, from, from.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

func upcomingDays(days int) (int, error) {
	if days == 0 {
		return defaultUpcomingDays, nil
	}
	if days < 0 || days > maxUpcomingDays {
		return 0, fmt.Errorf("%w: days must be between 1 and %d", apperrors.ErrValidation, maxUpcomingDays)
	}
	return days, nil
}

// prepare normalizes dates and derives costs from the property
func (s *reservationService) prepare(ctx context.Context, reservation *reservations.Reservation) (*properties.Property, error) {
	reservation.GuestName = strings.TrimSpace(reservation.GuestName)
	reservation.CheckInDate = reservations.TruncateDay(reservation.CheckInDate)
	reservation.CheckOutDate = reservations.TruncateDay(reservation.CheckOutDate)

	property, err := s.propertyRepository.GetByID(ctx, reservation.PropertyID)
	if err != nil {
		return nil, mustExist(err, "property", reservation.PropertyID)
	}
	reservation.ApplyCosts(property)

	if err := reservation.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return property, nil
}

// store writes the reservation. Blocking stays go through the availability check of the repository.
func (s *reservationService) store(ctx context.Context, reservation *reservations.Reservation, property *properties.Property, isNew bool) error {
	var overlapping []*reservations.Reservation
	var err error
	switch {
	case !reservation.Blocks() && isNew:
		err = s.reservationRepository.Create(ctx, reservation)
	case !reservation.Blocks():
		err = s.reservationRepository.UpdateByID(ctx, reservation)
	case isNew:
		overlapping, err = s.reservationRepository.CreateIfAvailable(ctx, reservation)
	default:
		overlapping, err = s.reservationRepository.UpdateIfAvailable(ctx, reservation)
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if len(overlapping) > 0 {
		other := overlapping[0]
		return fmt.Errorf("%w: %s is already booked from %s to %s by %s", apperrors.ErrConflict,
			property.Name, other.CheckInDate.Format("2006-01-02"), other.CheckOutDate.Format("2006-01-02"), other.GuestName)
	}
	return nil
}

// scheduleCleaning books the property's team; a failure leaves the reservation in place
func (s *reservationService) scheduleCleaning(ctx context.Context, reservationID string) {
	if s.scheduleService == nil {
		return
	}
	if _, err := s.scheduleService.ScheduleForReservation(ctx, reservationID); err != nil {
		s.logger.Warn("failed to schedule cleaning for reservation ", reservationID, ": ", err)
	}
}

// rescheduleCleaning drops the booked cleaning and books it again for the current check-out
func (s *reservationService) rescheduleCleaning(ctx context.Context, reservationID string) {
	if s.scheduleService == nil {
		return
	}
	if err := s.scheduleService.CancelForReservation(ctx, reservationID); err != nil {
		s.logger.Warn("failed to cancel cleaning of reservation ", reservationID, ": ", err)
		return
	}
	s.scheduleCleaning(ctx, reservationID)
}

func (s *reservationService) invalidateStatistics(ctx context.Context) {
	if s.statisticsService != nil {
		s.statisticsService.Invalidate(ctx)
	}
}
