package persistence

import (
	"context"
	"fmt"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence/models"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormFinancialDocumentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFinancialDocumentRepository creates a new GORM-based DocumentRepository implementation
func NewGormFinancialDocumentRepository(db *gorm.DB, logger logger.Logger) (finance.DocumentRepository, error) {
	return &gormFinancialDocumentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFinancialDocumentRepository) Create(ctx context.Context, document *finance.Document) error {
	if err := document.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.FinancialDocumentModel{}
	model.FromDomain(document)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create financial document: %w", wrapDuplicate(err, "document number "+document.DocumentNumber))
	}

	r.logger.Info("Created financial document with id ", document.ID)
	return nil
}

func (r *gormFinancialDocumentRepository) filter(ctx context.Context, query *finance.DocumentQuery) *gorm.DB {
	dbQuery := r.db.WithContext(ctx).Model(&models.FinancialDocumentModel{})
	if query.OwnerID != "" {
		dbQuery = dbQuery.Where("owner_id = ?", query.OwnerID)
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("issue_date >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("issue_date <= ?", query.To)
	}
	return dbQuery
}

func (r *gormFinancialDocumentRepository) List(ctx context.Context, query *finance.DocumentQuery) ([]*finance.Document, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.FinancialDocumentModel
	total, err := listPage(r.filter(ctx, query), query.Query, "issue_date desc", finance.SortableColumns, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list financial documents: %w", err)
	}

	domainList := make([]*finance.Document, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormFinancialDocumentRepository) ListAll(ctx context.Context, ownerID string) ([]*finance.Document, error) {
	var modelList []*models.FinancialDocumentModel
	if err := r.filter(ctx, &finance.DocumentQuery{OwnerID: ownerID}).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list financial documents: %w", err)
	}

	domainList := make([]*finance.Document, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormFinancialDocumentRepository) GetByID(ctx context.Context, documentID string) (*finance.Document, error) {
	var model models.FinancialDocumentModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("payment_date asc") }).
		Where("id = ?", documentID).
		First(&model).Error
	if err != nil {
		return nil, wrapNotFound(err, "financial document", documentID)
	}
	return model.ToDomain(), nil
}

func (r *gormFinancialDocumentRepository) NumberExists(ctx context.Context, docType, number, excludeID string) (bool, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.FinancialDocumentModel{}).
		Where("type = ? AND document_number = ?", docType, number)
	if excludeID != "" {
		dbQuery = dbQuery.Where("id <> ?", excludeID)
	}

	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check document number: %w", err)
	}
	return count > 0, nil
}

// updateHeader saves the document columns without touching items or payments
func updateHeader(tx *gorm.DB, document *finance.Document) error {
	return tx.Model(&models.FinancialDocumentModel{ID: document.ID}).Updates(map[string]interface{}{
		"owner_id":          document.OwnerID,
		"type":              document.Type,
		"document_number":   document.DocumentNumber,
		"issue_date":        document.IssueDate,
		"due_date":          document.DueDate,
		"total_amount":      document.TotalAmount,
		"paid_amount":       document.PaidAmount,
		"status":            document.Status,
		"description":       document.Description,
		"date_time_updated": document.DateTimeUpdated,
	}).Error
}

func (r *gormFinancialDocumentRepository) UpdateByID(ctx context.Context, document *finance.Document) error {
	if err := document.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if err := updateHeader(r.db.WithContext(ctx), document); err != nil {
		return fmt.Errorf("failed to update financial document: %w", err)
	}

	r.logger.Info("Updated financial document with id ", document.ID)
	return nil
}

func (r *gormFinancialDocumentRepository) DeleteByID(ctx context.Context, documentID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", documentID).Delete(&models.DocumentItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_id = ?", documentID).Delete(&models.PaymentRecordModel{}).Error; err != nil {
			return err
		}
		return requireAffected(tx.Where("id = ?", documentID).Delete(&models.FinancialDocumentModel{}), "financial document", documentID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete financial document: %w", err)
	}

	r.logger.Info("Deleted financial document with id ", documentID)
	return nil
}

func (r *gormFinancialDocumentRepository) AddItem(ctx context.Context, document *finance.Document, item *finance.Item) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.DocumentItemModel{}
		model.FromDomain(item)
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return updateHeader(tx, document)
	})
	if err != nil {
		return fmt.Errorf("failed to add item to financial document: %w", err)
	}

	r.logger.Info("Added item ", item.ID, " to financial document with id ", document.ID)
	return nil
}

func (r *gormFinancialDocumentRepository) RemoveItem(ctx context.Context, document *finance.Document, itemID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND document_id = ?", itemID, document.ID).Delete(&models.DocumentItemModel{})
		if err := requireAffected(result, "document item", itemID); err != nil {
			return err
		}
		return updateHeader(tx, document)
	})
	if err != nil {
		return fmt.Errorf("failed to remove item from financial document: %w", err)
	}

	r.logger.Info("Removed item ", itemID, " from financial document with id ", document.ID)
	return nil
}

func (r *gormFinancialDocumentRepository) AddPayment(ctx context.Context, document *finance.Document, payment *finance.Payment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.PaymentRecordModel{}
		model.FromDomain(payment)
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return updateHeader(tx, document)
	})
	if err != nil {
		return fmt.Errorf("failed to register payment: %w", err)
	}

	r.logger.Info("Registered payment ", payment.ID, " on financial document with id ", document.ID)
	return nil
}

func (r *gormFinancialDocumentRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FinancialDocumentModel{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count financial documents of owner: %w", err)
	}
	return count, nil
}
