package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence/models"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormQuotationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormQuotationRepository creates a new GORM-based QuotationRepository implementation
func NewGormQuotationRepository(db *gorm.DB, logger logger.Logger) (quotations.QuotationRepository, error) {
	return &gormQuotationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormQuotationRepository) Create(ctx context.Context, quotation *quotations.Quotation) error {
	if err := quotation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.QuotationModel{}
	model.FromDomain(quotation)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create quotation: %w", wrapDuplicate(err, "quotation number "+quotation.QuotationNumber))
	}

	r.logger.Info("Created quotation with id ", quotation.ID)
	return nil
}

func (r *gormQuotationRepository) List(ctx context.Context, query *quotations.QuotationQuery) ([]*quotations.Quotation, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.QuotationModel{})
	today := time.Now().UTC().Truncate(24 * time.Hour)
	open := []string{quotations.StatusDraft, quotations.StatusSent}
	switch query.Status {
	case "":
	case quotations.StatusExpired:
		dbQuery = dbQuery.Where("status = ? OR (status IN ? AND valid_until < ?)", quotations.StatusExpired, open, today)
	case quotations.StatusDraft, quotations.StatusSent:
		dbQuery = dbQuery.Where("status = ? AND valid_until >= ?", query.Status, today)
	default:
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.ClientName != "" {
		dbQuery = dbQuery.Where("LOWER(client_name) LIKE ?", containsPattern(query.ClientName))
	}

	var modelList []*models.QuotationModel
	total, err := listPage(dbQuery, query.Query, "quotation_number desc", quotations.SortableColumns, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quotations: %w", err)
	}

	domainList := make([]*quotations.Quotation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormQuotationRepository) GetByID(ctx context.Context, quotationID string) (*quotations.Quotation, error) {
	var model models.QuotationModel
	if err := r.db.WithContext(ctx).Where("id = ?", quotationID).First(&model).Error; err != nil {
		return nil, wrapNotFound(err, "quotation", quotationID)
	}
	return model.ToDomain(), nil
}

func (r *gormQuotationRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var model models.QuotationModel
	err := r.db.WithContext(ctx).
		Where("quotation_number LIKE ?", prefix+"%").
		Order("quotation_number desc").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch last quotation number: %w", err)
	}
	return model.QuotationNumber, nil
}

func (r *gormQuotationRepository) UpdateByID(ctx context.Context, quotation *quotations.Quotation) error {
	if err := quotation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.QuotationModel{}
	model.FromDomain(quotation)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update quotation: %w", err)
	}

	r.logger.Info("Updated quotation with id ", quotation.ID)
	return nil
}

func (r *gormQuotationRepository) DeleteByID(ctx context.Context, quotationID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", quotationID).Delete(&models.QuotationModel{})
	if err := requireAffected(result, "quotation", quotationID); err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}

	r.logger.Info("Deleted quotation with id ", quotationID)
	return nil
}
