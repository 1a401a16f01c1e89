package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/paging"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence/models"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// listPage counts the rows matched by filtered and loads one page of them into dest
func listPage(filtered *gorm.DB, query paging.Query, fallbackOrder string, sortable []string, dest interface{}) (int64, error) {
	order, err := query.OrderClause(fallbackOrder, sortable...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	reusable := filtered.Session(&gorm.Session{})

	var total int64
	if err := reusable.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}

	if err := reusable.Order(order).Limit(query.EffectiveLimit()).Offset(query.Offset).Find(dest).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch rows: %w", err)
	}
	return total, nil
}

// containsPattern builds a case-insensitive LIKE pattern
func containsPattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

// wrapNotFound turns gorm.ErrRecordNotFound into apperrors.ErrNotFound
func wrapNotFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s with ID %s %w", entity, id, apperrors.ErrNotFound)
	}
	return fmt.Errorf("failed to fetch %s: %w", entity, err)
}

// wrapDuplicate turns a unique constraint violation into apperrors.ErrConflict
func wrapDuplicate(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s already exists", apperrors.ErrConflict, what)
	}
	return err
}

// requireAffected reports ErrNotFound when a write touched no row
func requireAffected(result *gorm.DB, entity, id string) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %s %w", entity, id, apperrors.ErrNotFound)
	}
	return nil
}

// unreferencedDemoProperties narrows db to demo properties that no remaining
// reservation or document item points at
func unreferencedDemoProperties(db *gorm.DB) *gorm.DB {
	booked := db.Session(&gorm.Session{NewDB: true}).Model(&models.ReservationModel{}).Select("property_id")
	invoiced := db.Session(&gorm.Session{NewDB: true}).Model(&models.DocumentItemModel{}).Select("property_id").Where("property_id IS NOT NULL")
	return db.Where("is_demo = ?", true).
		Where("id NOT IN (?)", booked).
		Where("id NOT IN (?)", invoiced)
}
