package persistence

import (
	"context"
	"fmt"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence/models"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormOwnerRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOwnerRepository creates a new GORM-based OwnerRepository implementation
func NewGormOwnerRepository(db *gorm.DB, logger logger.Logger) (owners.OwnerRepository, error) {
	return &gormOwnerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOwnerRepository) Create(ctx context.Context, owner *owners.Owner) error {
	if err := owner.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OwnerModel{}
	model.FromDomain(owner)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}

	r.logger.Info("Created owner with id ", owner.ID)
	return nil
}

func (r *gormOwnerRepository) List(ctx context.Context, query *owners.OwnerQuery) ([]*owners.Owner, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.OwnerModel{})
	if query.Name != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ?", containsPattern(query.Name))
	}

	var modelList []*models.OwnerModel
	total, err := listPage(dbQuery, query.Query, "name asc", owners.SortableColumns, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list owners: %w", err)
	}

	domainList := make([]*owners.Owner, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormOwnerRepository) GetByID(ctx context.Context, ownerID string) (*owners.Owner, error) {
	var model models.OwnerModel
	if err := r.db.WithContext(ctx).Where("id = ?", ownerID).First(&model).Error; err != nil {
		return nil, wrapNotFound(err, "owner", ownerID)
	}
	return model.ToDomain(), nil
}

func (r *gormOwnerRepository) UpdateByID(ctx context.Context, owner *owners.Owner) error {
	if err := owner.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OwnerModel{}
	model.FromDomain(owner)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update owner: %w", err)
	}

	r.logger.Info("Updated owner with id ", owner.ID)
	return nil
}

func (r *gormOwnerRepository) DeleteByID(ctx context.Context, ownerID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", ownerID).Delete(&models.OwnerModel{})
	if err := requireAffected(result, "owner", ownerID); err != nil {
		return fmt.Errorf("failed to delete owner: %w", err)
	}

	r.logger.Info("Deleted owner with id ", ownerID)
	return nil
}

func (r *gormOwnerRepository) DeleteDemo(ctx context.Context) (int64, error) {
	owning := r.db.Model(&models.PropertyModel{}).Select("owner_id")
	billed := r.db.Model(&models.FinancialDocumentModel{}).Select("owner_id")
	result := r.db.WithContext(ctx).
		Where("is_demo = ?", true).
		Where("id NOT IN (?)", owning).
		Where("id NOT IN (?)", billed).
		Delete(&models.OwnerModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete demo owners: %w", result.Error)
	}
	return result.RowsAffected, nil
}
