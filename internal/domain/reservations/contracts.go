package reservations

import (
	"context"
	"time"
)

// ReservationService defines the reservation use cases
type ReservationService interface {
	// Create computes the cost breakdown, checks availability and stores the reservation
	Create(ctx context.Context, reservation *Reservation) (*Reservation, error)
	List(ctx context.Context, query *ReservationQuery) ([]*Reservation, int64, error)
	GetByID(ctx context.Context, reservationID string) (*Reservation, error)
	// Update replaces the editable fields, recomputing costs and availability
	Update(ctx context.Context, reservation *Reservation) (*Reservation, error)
	// UpdateStatus applies a status transition
	UpdateStatus(ctx context.Context, reservationID, status string) (*Reservation, error)
	DeleteByID(ctx context.Context, reservationID string) error
	// UpcomingCheckIns returns non-cancelled reservations checking in within the next days
	UpcomingCheckIns(ctx context.Context, days int) ([]*Reservation, error)
	// UpcomingCheckOuts returns non-cancelled reservations checking out within the next days
	UpcomingCheckOuts(ctx context.Context, days int) ([]*Reservation, error)
}

// ReservationRepository defines the interface for Reservation-related operations
type ReservationRepository interface {
	Create(ctx context.Context, reservation *Reservation) error
	List(ctx context.Context, query *ReservationQuery) ([]*Reservation, int64, error)
	GetByID(ctx context.Context, reservationID string) (*Reservation, error)
	UpdateByID(ctx context.Context, reservation *Reservation) error
	DeleteByID(ctx context.Context, reservationID string) error
	// FindOverlapping returns non-cancelled reservations of the property intersecting [checkIn, checkOut),
	// ignoring excludeID
	FindOverlapping(ctx context.Context, propertyID string, checkIn, checkOut time.Time, excludeID string) ([]*Reservation, error)
	// CreateIfAvailable stores the reservation unless another non-cancelled stay of the property overlaps it.
	// The check and the write run in one transaction holding the property row; overlapping stays are
	// returned instead of saving.
	CreateIfAvailable(ctx context.Context, reservation *Reservation) ([]*Reservation, error)
	// UpdateIfAvailable is CreateIfAvailable for an existing reservation
	UpdateIfAvailable(ctx context.Context, reservation *Reservation) ([]*Reservation, error)
	// ListCheckInsBetween returns non-cancelled reservations with check-in in [from, to]
	ListCheckInsBetween(ctx context.Context, propertyIDs []string, from, to time.Time) ([]*Reservation, error)
	// ListCheckOutsBetween returns non-cancelled reservations with check-out in [from, to]
	ListCheckOutsBetween(ctx context.Context, from, to time.Time) ([]*Reservation, error)
	// ListOverlappingWindow returns non-cancelled reservations intersecting [from, to)
	ListOverlappingWindow(ctx context.Context, from, to time.Time) ([]*Reservation, error)
	// CountByStatus counts reservations of every status with check-in in [from, to]
	CountByStatus(ctx context.Context, from, to time.Time) (map[string]int, error)
	// CountFutureBlocking counts non-cancelled, not completed reservations of the property checking out after day
	CountFutureBlocking(ctx context.Context, propertyID string, day time.Time) (int64, error)
	DeleteDemo(ctx context.Context) (int64, error)
}
