package owners

import "context"

// OwnerService defines the owner use cases
type OwnerService interface {
	// Create stores a new owner and returns it with generated fields set
	Create(ctx context.Context, owner *Owner) (*Owner, error)
	// List returns a page of owners and the total count matching the query
	List(ctx context.Context, query *OwnerQuery) ([]*Owner, int64, error)
	// GetByID returns the owner or an error wrapping apperrors.ErrNotFound
	GetByID(ctx context.Context, ownerID string) (*Owner, error)
	// Update replaces the editable fields of an existing owner
	Update(ctx context.Context, owner *Owner) (*Owner, error)
	// DeleteByID removes an owner that no longer has properties
	DeleteByID(ctx context.Context, ownerID string) error
}

// OwnerRepository defines the interface for Owner-related operations
type OwnerRepository interface {
	Create(ctx context.Context, owner *Owner) error
	List(ctx context.Context, query *OwnerQuery) ([]*Owner, int64, error)
	GetByID(ctx context.Context, ownerID string) (*Owner, error)
	UpdateByID(ctx context.Context, owner *Owner) error
	DeleteByID(ctx context.Context, ownerID string) error
	// DeleteDemo removes demo owners that own no property or document and returns how many were deleted
	DeleteDemo(ctx context.Context) (int64, error)
}
