package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/google/uuid"
)

// propertyService implements the PropertyService interface
type propertyService struct {
	propertyRepository    properties.PropertyRepository
	ownerRepository       owners.OwnerRepository
	teamRepository        cleaning.TeamRepository
	reservationRepository reservations.ReservationRepository
	logger                logger.Logger
}

// NewPropertyService creates a new instance of PropertyService
func NewPropertyService(
	propertyRepository properties.PropertyRepository,
	ownerRepository owners.OwnerRepository,
	teamRepository cleaning.TeamRepository,
	reservationRepository reservations.ReservationRepository,
	logger logger.Logger,
) (properties.PropertyService, error) {
	return &propertyService{
		propertyRepository:    propertyRepository,
		ownerRepository:       ownerRepository,
		teamRepository:        teamRepository,
		reservationRepository: reservationRepository,
		logger:                logger,
	}, nil
}

// Create checks references and name uniqueness, then stores the property
func (s *propertyService) Create(ctx context.Context, property *properties.Property) (*properties.Property, error) {
	property.ID = uuid.NewString()
	property.Name = strings.TrimSpace(property.Name)
	property.DateTimeCreated = clock()
	property.DateTimeUpdated = property.DateTimeCreated

	if err := s.checkReferences(ctx, property); err != nil {
		return nil, err
	}
	if err := s.propertyRepository.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return property, nil
}

// List returns a page of properties
func (s *propertyService) List(ctx context.Context, query *properties.PropertyQuery) ([]*properties.Property, int64, error) {
	list, total, err := s.propertyRepository.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return list, total, nil
}

// GetByID retrieves a property by ID
func (s *propertyService) GetByID(ctx context.Context, propertyID string) (*properties.Property, error) {
	property, err := s.propertyRepository.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return property, nil
}

// Update replaces the editable fields. Existing reservations keep their stored cost breakdown.
func (s *propertyService) Update(ctx context.Context, property *properties.Property) (*properties.Property, error) {
	existing, err := s.propertyRepository.GetByID(ctx, property.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	property.Name = strings.TrimSpace(property.Name)
	property.DateTimeCreated = existing.DateTimeCreated
	property.IsDemo = existing.IsDemo
	property.DateTimeUpdated = clock()

	if err := s.checkReferences(ctx, property); err != nil {
		return nil, err
	}
	if err := s.propertyRepository.UpdateByID(ctx, property); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return property, nil
}

// DeleteByID removes a property that has no pending or confirmed reservation ending after today
func (s *propertyService) DeleteByID(ctx context.Context, propertyID string) error {
	if _, err := s.propertyRepository.GetByID(ctx, propertyID); err != nil {
		return fmt.Errorf("%w", err)
	}

	count, err := s.reservationRepository.CountFutureBlocking(ctx, propertyID, today())
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: property %s has %d upcoming reservations", apperrors.ErrConflict, propertyID, count)
	}

	if err := s.propertyRepository.DeleteByID(ctx, propertyID); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.logger.With("property_id", propertyID).Info("property deleted")
	return nil
}

// ListActive returns every active property ordered by name
func (s *propertyService) ListActive(ctx context.Context) ([]*properties.Property, error) {
	list, err := s.propertyRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

func (s *propertyService) checkReferences(ctx context.Context, property *properties.Property) error {
	if property.OwnerID != "" {
		if _, err := s.ownerRepository.GetByID(ctx, property.OwnerID); err != nil {
			return mustExist(err, "owner", property.OwnerID)
		}
	}
	if property.CleaningTeamID != nil && *property.CleaningTeamID != "" {
		if _, err := s.teamRepository.GetByID(ctx, *property.CleaningTeamID); err != nil {
			return mustExist(err, "cleaning team", *property.CleaningTeamID)
		}
	}
	if property.Name != "" {
		other, err := s.propertyRepository.FindByName(ctx, property.Name)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if other != nil && other.ID != property.ID {
			return fmt.Errorf("%w: a property named %q already exists", apperrors.ErrConflict, property.Name)
		}
	}
	return nil
}
