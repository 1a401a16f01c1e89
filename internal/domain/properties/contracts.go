package properties

import "context"

// PropertyService defines the property use cases
type PropertyService interface {
	Create(ctx context.Context, property *Property) (*Property, error)
	List(ctx context.Context, query *PropertyQuery) ([]*Property, int64, error)
	GetByID(ctx context.Context, propertyID string) (*Property, error)
	Update(ctx context.Context, property *Property) (*Property, error)
	// DeleteByID removes a property without pending or confirmed future reservations
	DeleteByID(ctx context.Context, propertyID string) error
	// ListActive returns every active property ordered by name
	ListActive(ctx context.Context) ([]*Property, error)
}

// PropertyRepository defines the interface for Property-related operations
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	List(ctx context.Context, query *PropertyQuery) ([]*Property, int64, error)
	GetByID(ctx context.Context, propertyID string) (*Property, error)
	// FindByName looks a property up by case-insensitive name, returning nil when absent
	FindByName(ctx context.Context, name string) (*Property, error)
	ListActive(ctx context.Context) ([]*Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Property, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	CountByCleaningTeam(ctx context.Context, teamID string) (int64, error)
	UpdateByID(ctx context.Context, property *Property) error
	DeleteByID(ctx context.Context, propertyID string) error
	// DeleteDemo removes demo properties with no reservation or document item left
	DeleteDemo(ctx context.Context) (int64, error)
}
