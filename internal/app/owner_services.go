package app

import (
	"context"
	"fmt"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/google/uuid"
)

// ownerService implements the OwnerService interface
type ownerService struct {
	ownerRepository    owners.OwnerRepository
	propertyRepository properties.PropertyRepository
	documentRepository finance.DocumentRepository
	logger             logger.Logger
}

// NewOwnerService creates a new instance of OwnerService
func NewOwnerService(
	ownerRepository owners.OwnerRepository,
	propertyRepository properties.PropertyRepository,
	documentRepository finance.DocumentRepository,
	logger logger.Logger,
) (owners.OwnerService, error) {
	return &ownerService{
		ownerRepository:    ownerRepository,
		propertyRepository: propertyRepository,
		documentRepository: documentRepository,
		logger:             logger,
	}, nil
}

// Create assigns an ID and creation time and stores the owner
func (s *ownerService) Create(ctx context.Context, owner *owners.Owner) (*owners.Owner, error) {
	owner.ID = uuid.NewString()
	owner.DateTimeCreated = clock()
	owner.DateTimeUpdated = owner.DateTimeCreated

	if err := s.ownerRepository.Create(ctx, owner); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return owner, nil
}

// List returns a page of owners
func (s *ownerService) List(ctx context.Context, query *owners.OwnerQuery) ([]*owners.Owner, int64, error) {
	list, total, err := s.ownerRepository.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return list, total, nil
}

// GetByID retrieves an owner by ID
func (s *ownerService) GetByID(ctx context.Context, ownerID string) (*owners.Owner, error) {
	owner, err := s.ownerRepository.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return owner, nil
}

// Update replaces the editable fields, keeping identity, creation time and demo flag
func (s *ownerService) Update(ctx context.Context, owner *owners.Owner) (*owners.Owner, error) {
	existing, err := s.ownerRepository.GetByID(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	owner.DateTimeCreated = existing.DateTimeCreated
	owner.IsDemo = existing.IsDemo
	owner.DateTimeUpdated = clock()

	if err := s.ownerRepository.UpdateByID(ctx, owner); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return owner, nil
}

// DeleteByID removes an owner without properties or financial documents
func (s *ownerService) DeleteByID(ctx context.Context, ownerID string) error {
	if _, err := s.ownerRepository.GetByID(ctx, ownerID); err != nil {
		return fmt.Errorf("%w", err)
	}

	count, err := s.propertyRepository.CountByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: owner %s still has %d properties", apperrors.ErrConflict, ownerID, count)
	}

	count, err = s.documentRepository.CountByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: owner %s still has %d financial documents", apperrors.ErrConflict, ownerID, count)
	}

	if err := s.ownerRepository.DeleteByID(ctx, ownerID); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.logger.With("owner_id", ownerID).Info("owner deleted")
	return nil
}
