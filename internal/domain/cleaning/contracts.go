package cleaning

import "context"

// TeamService defines the cleaning team use cases
type TeamService interface {
	Create(ctx context.Context, team *Team) (*Team, error)
	List(ctx context.Context, query *TeamQuery) ([]*Team, int64, error)
	GetByID(ctx context.Context, teamID string) (*Team, error)
	Update(ctx context.Context, team *Team) (*Team, error)
	// DeleteByID removes a team that no property references
	DeleteByID(ctx context.Context, teamID string) error
}

// ScheduleService defines the cleaning schedule use cases
type ScheduleService interface {
	// ScheduleForReservation books the property's team on the reservation check-out day.
	// It returns nil without error when the property has no team or a schedule already exists.
	ScheduleForReservation(ctx context.Context, reservationID string) (*Schedule, error)
	// CancelForReservation cancels the scheduled cleaning of a reservation, if any
	CancelForReservation(ctx context.Context, reservationID string) error
	List(ctx context.Context, query *ScheduleQuery) ([]*Schedule, int64, error)
	Complete(ctx context.Context, scheduleID string) (*Schedule, error)
	Cancel(ctx context.Context, scheduleID string) (*Schedule, error)
}

// TeamRepository defines the interface for Team-related operations
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	List(ctx context.Context, query *TeamQuery) ([]*Team, int64, error)
	GetByID(ctx context.Context, teamID string) (*Team, error)
	// FindByName looks a team up by case-insensitive name, returning nil when absent
	FindByName(ctx context.Context, name string) (*Team, error)
	UpdateByID(ctx context.Context, team *Team) error
	DeleteByID(ctx context.Context, teamID string) error
	// DeleteDemo removes demo teams no property or schedule refers to
	DeleteDemo(ctx context.Context) (int64, error)
}

// ScheduleRepository defines the interface for Schedule-related operations
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *Schedule) error
	List(ctx context.Context, query *ScheduleQuery) ([]*Schedule, int64, error)
	GetByID(ctx context.Context, scheduleID string) (*Schedule, error)
	// FindByReservation returns the active schedule of a reservation or nil
	FindByReservation(ctx context.Context, reservationID string) (*Schedule, error)
	UpdateByID(ctx context.Context, schedule *Schedule) error
	// DeleteDemo removes schedules of demo reservations and unattached schedules of demo properties
	DeleteDemo(ctx context.Context) (int64, error)
}
