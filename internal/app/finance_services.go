package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// documentService implements the DocumentService interface
type documentService struct {
	documentRepository finance.DocumentRepository
	ownerRepository    owners.OwnerRepository
	logger             logger.Logger
}

// NewDocumentService creates a new instance of DocumentService
func NewDocumentService(
	documentRepository finance.DocumentRepository,
	ownerRepository owners.OwnerRepository,
	logger logger.Logger,
) (finance.DocumentService, error) {
	return &documentService{
		documentRepository: documentRepository,
		ownerRepository:    ownerRepository,
		logger:             logger,
	}, nil
}

// Create stores a document and its items. Payments are registered separately, so paid starts at zero.
func (s *documentService) Create(ctx context.Context, document *finance.Document) (*finance.Document, error) {
	document.ID = uuid.NewString()
	document.DocumentNumber = strings.TrimSpace(document.DocumentNumber)
	document.DateTimeCreated = clock()
	document.DateTimeUpdated = document.DateTimeCreated
	document.PaidAmount = decimal.Zero
	document.Payments = nil
	if document.Status == "" {
		document.Status = finance.StatusPending
	}
	if document.Status == finance.StatusPaid {
		return nil, fmt.Errorf("%w: a new document cannot be created as paid", apperrors.ErrValidation)
	}
	for _, item := range document.Items {
		item.ID = uuid.NewString()
		item.DocumentID = document.ID
	}
	document.RecalculateTotal()

	if err := s.checkOwnerAndNumber(ctx, document); err != nil {
		return nil, err
	}
	if err := s.documentRepository.Create(ctx, document); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return document, nil
}

// List returns a page of documents without items
func (s *documentService) List(ctx context.Context, query *finance.DocumentQuery) ([]*finance.Document, int64, error) {
	list, total, err := s.documentRepository.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return list, total, nil
}

// GetByID retrieves a document with items and payments
func (s *documentService) GetByID(ctx context.Context, documentID string) (*finance.Document, error) {
	document, err := s.documentRepository.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return document, nil
}

// Update replaces header fields. The total only follows the request when the document has no items.
func (s *documentService) Update(ctx context.Context, document *finance.Document) (*finance.Document, error) {
	existing, err := s.documentRepository.GetByID(ctx, document.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	document.DocumentNumber = strings.TrimSpace(document.DocumentNumber)
	document.Items = existing.Items
	document.Payments = existing.Payments
	document.PaidAmount = existing.PaidAmount
	document.DateTimeCreated = existing.DateTimeCreated
	document.DateTimeUpdated = clock()
	if document.Status == "" {
		document.Status = existing.Status
	}
	if len(existing.Items) > 0 {
		document.TotalAmount = existing.TotalAmount
	}
	if document.Status == finance.StatusPaid && !document.PaidAmount.Equal(document.TotalAmount) {
		return nil, fmt.Errorf("%w: document is not fully paid", apperrors.ErrValidation)
	}

	if err := s.checkOwnerAndNumber(ctx, document); err != nil {
		return nil, err
	}
	if err := s.documentRepository.UpdateByID(ctx, document); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return document, nil
}

// DeleteByID removes a document with its items and payments
func (s *documentService) DeleteByID(ctx context.Context, documentID string) error {
	if _, err := s.documentRepository.GetByID(ctx, documentID); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := s.documentRepository.DeleteByID(ctx, documentID); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.logger.With("document_id", documentID).Info("financial document deleted")
	return nil
}

// AddItem appends a line and recomputes the document total
func (s *documentService) AddItem(ctx context.Context, documentID string, item *finance.Item) (*finance.Document, error) {
	document, err := s.documentRepository.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	item.ID = uuid.NewString()
	if err := document.AddItem(item); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	document.DateTimeUpdated = clock()
	if err := s.documentRepository.AddItem(ctx, document, item); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return document, nil
}

// RemoveItem drops a line and recomputes the document total
func (s *documentService) RemoveItem(ctx context.Context, documentID, itemID string) (*finance.Document, error) {
	document, err := s.documentRepository.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := document.RemoveItem(itemID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	document.DateTimeUpdated = clock()
	if err := s.documentRepository.RemoveItem(ctx, document, itemID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return document, nil
}

// RegisterPayment records a payment, marking the document paid once settled
func (s *documentService) RegisterPayment(ctx context.Context, documentID string, payment *finance.Payment) (*finance.Document, error) {
	document, err := s.documentRepository.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	payment.ID = uuid.NewString()
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = today()
	}
	if err := document.RegisterPayment(payment); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	document.DateTimeUpdated = clock()
	if err := s.documentRepository.AddPayment(ctx, document, payment); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.logger.With("document_id", documentID, "amount", payment.Amount.StringFixed(2), "status", document.Status).Info("payment registered")
	return document, nil
}

// Summary aggregates the documents of one owner, or of every owner when ownerID is empty
func (s *documentService) Summary(ctx context.Context, ownerID string) (*finance.Summary, error) {
	if ownerID != "" {
		if _, err := s.ownerRepository.GetByID(ctx, ownerID); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
	docs, err := s.documentRepository.ListAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return finance.Summarize(docs, today()), nil
}

func (s *documentService) checkOwnerAndNumber(ctx context.Context, document *finance.Document) error {
	if document.OwnerID != "" {
		if _, err := s.ownerRepository.GetByID(ctx, document.OwnerID); err != nil {
			return mustExist(err, "owner", document.OwnerID)
		}
	}
	if document.DocumentNumber == "" {
		return nil
	}
	exists, err := s.documentRepository.NumberExists(ctx, document.Type, document.DocumentNumber, document.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s document number %s is already in use", apperrors.ErrConflict, document.Type, document.DocumentNumber)
	}
	return nil
}
