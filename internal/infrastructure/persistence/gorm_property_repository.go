package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence/models"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormPropertyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPropertyRepository creates a new GORM-based PropertyRepository implementation
func NewGormPropertyRepository(db *gorm.DB, logger logger.Logger) (properties.PropertyRepository, error) {
	return &gormPropertyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPropertyRepository) Create(ctx context.Context, property *properties.Property) error {
	if err := property.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PropertyModel{}
	model.FromDomain(property)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	r.logger.Info("Created property with id ", property.ID)
	return nil
}

func (r *gormPropertyRepository) List(ctx context.Context, query *properties.PropertyQuery) ([]*properties.Property, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.PropertyModel{})
	if query.Name != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ?", containsPattern(query.Name))
	}
	if query.OwnerID != "" {
		dbQuery = dbQuery.Where("owner_id = ?", query.OwnerID)
	}
	if query.CleaningTeamID != "" {
		dbQuery = dbQuery.Where("cleaning_team_id = ?", query.CleaningTeamID)
	}
	if query.Active != nil {
		dbQuery = dbQuery.Where("active = ?", *query.Active)
	}

	var modelList []*models.PropertyModel
	total, err := listPage(dbQuery, query.Query, "name asc", properties.SortableColumns, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}
	return toPropertyList(modelList), total, nil
}

func (r *gormPropertyRepository) GetByID(ctx context.Context, propertyID string) (*properties.Property, error) {
	var model models.PropertyModel
	if err := r.db.WithContext(ctx).Where("id = ?", propertyID).First(&model).Error; err != nil {
		return nil, wrapNotFound(err, "property", propertyID)
	}
	return model.ToDomain(), nil
}

func (r *gormPropertyRepository) FindByName(ctx context.Context, name string) (*properties.Property, error) {
	var model models.PropertyModel
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch property by name: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPropertyRepository) ListActive(ctx context.Context) ([]*properties.Property, error) {
	var modelList []*models.PropertyModel
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list active properties: %w", err)
	}
	return toPropertyList(modelList), nil
}

func (r *gormPropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]*properties.Property, error) {
	var modelList []*models.PropertyModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties of owner: %w", err)
	}
	return toPropertyList(modelList), nil
}

func (r *gormPropertyRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PropertyModel{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count properties of owner: %w", err)
	}
	return count, nil
}

func (r *gormPropertyRepository) CountByCleaningTeam(ctx context.Context, teamID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PropertyModel{}).Where("cleaning_team_id = ?", teamID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count properties of cleaning team: %w", err)
	}
	return count, nil
}

func (r *gormPropertyRepository) UpdateByID(ctx context.Context, property *properties.Property) error {
	if err := property.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PropertyModel{}
	model.FromDomain(property)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	r.logger.Info("Updated property with id ", property.ID)
	return nil
}

func (r *gormPropertyRepository) DeleteByID(ctx context.Context, propertyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", propertyID).Delete(&models.PropertyModel{})
	if err := requireAffected(result, "property", propertyID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	r.logger.Info("Deleted property with id ", propertyID)
	return nil
}

func (r *gormPropertyRepository) DeleteDemo(ctx context.Context) (int64, error) {
	result := unreferencedDemoProperties(r.db.WithContext(ctx)).Delete(&models.PropertyModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete demo properties: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func toPropertyList(modelList []*models.PropertyModel) []*properties.Property {
	domainList := make([]*properties.Property, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
