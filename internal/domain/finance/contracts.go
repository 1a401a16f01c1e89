package finance

import "context"

// DocumentService defines the financial document use cases
type DocumentService interface {
	Create(ctx context.Context, document *Document) (*Document, error)
	List(ctx context.Context, query *DocumentQuery) ([]*Document, int64, error)
	GetByID(ctx context.Context, documentID string) (*Document, error)
	// Update replaces header fields; items and payments are managed separately
	Update(ctx context.Context, document *Document) (*Document, error)
	DeleteByID(ctx context.Context, documentID string) error
	AddItem(ctx context.Context, documentID string, item *Item) (*Document, error)
	RemoveItem(ctx context.Context, documentID, itemID string) (*Document, error)
	RegisterPayment(ctx context.Context, documentID string, payment *Payment) (*Document, error)
	// Summary aggregates the documents of an owner, or of all owners when ownerID is empty
	Summary(ctx context.Context, ownerID string) (*Summary, error)
}

// DocumentRepository defines the interface for Document-related operations
type DocumentRepository interface {
	// Create stores the document with its items
	Create(ctx context.Context, document *Document) error
	List(ctx context.Context, query *DocumentQuery) ([]*Document, int64, error)
	// ListAll returns every document of the owner (all owners when empty) without items
	ListAll(ctx context.Context, ownerID string) ([]*Document, error)
	// GetByID loads the document with items and payments
	GetByID(ctx context.Context, documentID string) (*Document, error)
	// NumberExists reports whether another document of the type already uses number
	NumberExists(ctx context.Context, docType, number, excludeID string) (bool, error)
	UpdateByID(ctx context.Context, document *Document) error
	DeleteByID(ctx context.Context, documentID string) error
	// AddItem stores item and the recomputed document header in one transaction
	AddItem(ctx context.Context, document *Document, item *Item) error
	// RemoveItem deletes the item and stores the recomputed header in one transaction
	RemoveItem(ctx context.Context, document *Document, itemID string) error
	// AddPayment stores payment and the updated header in one transaction
	AddPayment(ctx context.Context, document *Document, payment *Payment) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}
