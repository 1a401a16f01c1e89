package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence/models"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormCleaningTeamRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCleaningTeamRepository creates a new GORM-based TeamRepository implementation
func NewGormCleaningTeamRepository(db *gorm.DB, logger logger.Logger) (cleaning.TeamRepository, error) {
	return &gormCleaningTeamRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCleaningTeamRepository) Create(ctx context.Context, team *cleaning.Team) error {
	if err := team.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CleaningTeamModel{}
	model.FromDomain(team)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cleaning team: %w", wrapDuplicate(err, "cleaning team "+team.Name))
	}

	r.logger.Info("Created cleaning team with id ", team.ID)
	return nil
}

func (r *gormCleaningTeamRepository) List(ctx context.Context, query *cleaning.TeamQuery) ([]*cleaning.Team, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.CleaningTeamModel{})
	if query.Name != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ?", containsPattern(query.Name))
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	var modelList []*models.CleaningTeamModel
	total, err := listPage(dbQuery, query.Query, "name asc", cleaning.TeamSortableColumns, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cleaning teams: %w", err)
	}

	domainList := make([]*cleaning.Team, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormCleaningTeamRepository) GetByID(ctx context.Context, teamID string) (*cleaning.Team, error) {
	var model models.CleaningTeamModel
	if err := r.db.WithContext(ctx).Where("id = ?", teamID).First(&model).Error; err != nil {
		return nil, wrapNotFound(err, "cleaning team", teamID)
	}
	return model.ToDomain(), nil
}

func (r *gormCleaningTeamRepository) FindByName(ctx context.Context, name string) (*cleaning.Team, error) {
	var model models.CleaningTeamModel
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cleaning team by name: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCleaningTeamRepository) UpdateByID(ctx context.Context, team *cleaning.Team) error {
	if err := team.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CleaningTeamModel{}
	model.FromDomain(team)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update cleaning team: %w", err)
	}

	r.logger.Info("Updated cleaning team with id ", team.ID)
	return nil
}

func (r *gormCleaningTeamRepository) DeleteByID(ctx context.Context, teamID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", teamID).Delete(&models.CleaningTeamModel{})
	if err := requireAffected(result, "cleaning team", teamID); err != nil {
		return fmt.Errorf("failed to delete cleaning team: %w", err)
	}

	r.logger.Info("Deleted cleaning team with id ", teamID)
	return nil
}

func (r *gormCleaningTeamRepository) DeleteDemo(ctx context.Context) (int64, error) {
	assigned := r.db.Model(&models.PropertyModel{}).Select("cleaning_team_id").Where("cleaning_team_id IS NOT NULL")
	scheduled := r.db.Model(&models.CleaningScheduleModel{}).Select("team_id")
	result := r.db.WithContext(ctx).
		Where("is_demo = ?", true).
		Where("id NOT IN (?)", assigned).
		Where("id NOT IN (?)", scheduled).
		Delete(&models.CleaningTeamModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete demo cleaning teams: %w", result.Error)
	}
	return result.RowsAffected, nil
}

type gormCleaningScheduleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCleaningScheduleRepository creates a new GORM-based ScheduleRepository implementation
func NewGormCleaningScheduleRepository(db *gorm.DB, logger logger.Logger) (cleaning.ScheduleRepository, error) {
	return &gormCleaningScheduleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCleaningScheduleRepository) Create(ctx context.Context, schedule *cleaning.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CleaningScheduleModel{}
	model.FromDomain(schedule)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cleaning schedule: %w", err)
	}

	r.logger.Info("Created cleaning schedule with id ", schedule.ID)
	return nil
}

func (r *gormCleaningScheduleRepository) List(ctx context.Context, query *cleaning.ScheduleQuery) ([]*cleaning.Schedule, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.CleaningScheduleModel{})
	if query.TeamID != "" {
		dbQuery = dbQuery.Where("team_id = ?", query.TeamID)
	}
	if query.PropertyID != "" {
		dbQuery = dbQuery.Where("property_id = ?", query.PropertyID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("scheduled_date >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("scheduled_date <= ?", query.To)
	}

	var modelList []*models.CleaningScheduleModel
	total, err := listPage(dbQuery, query.Query, "scheduled_date asc", cleaning.ScheduleSortableColumns, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cleaning schedules: %w", err)
	}

	domainList := make([]*cleaning.Schedule, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormCleaningScheduleRepository) GetByID(ctx context.Context, scheduleID string) (*cleaning.Schedule, error) {
	var model models.CleaningScheduleModel
	if err := r.db.WithContext(ctx).Where("id = ?", scheduleID).First(&model).Error; err != nil {
		return nil, wrapNotFound(err, "cleaning schedule", scheduleID)
	}
	return model.ToDomain(), nil
}

func (r *gormCleaningScheduleRepository) FindByReservation(ctx context.Context, reservationID string) (*cleaning.Schedule, error) {
	var model models.CleaningScheduleModel
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Where("status <> ?", cleaning.ScheduleStatusCancelled).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cleaning schedule of reservation: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCleaningScheduleRepository) UpdateByID(ctx context.Context, schedule *cleaning.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CleaningScheduleModel{}
	model.FromDomain(schedule)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update cleaning schedule: %w", err)
	}

	r.logger.Info("Updated cleaning schedule with id ", schedule.ID)
	return nil
}

func (r *gormCleaningScheduleRepository) DeleteDemo(ctx context.Context) (int64, error) {
	invoiced := r.db.Model(&models.DocumentItemModel{}).Select("reservation_id").Where("reservation_id IS NOT NULL")
	demoReservations := r.db.Model(&models.ReservationModel{}).Select("id").
		Where("source = ?", reservations.SourceDemo).
		Where("id NOT IN (?)", invoiced)
	demoProperties := r.db.Model(&models.PropertyModel{}).Select("id").Where("is_demo = ?", true)
	result := r.db.WithContext(ctx).
		Where("reservation_id IN (?)", demoReservations).
		Or("reservation_id IS NULL AND property_id IN (?)", demoProperties).
		Delete(&models.CleaningScheduleModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete demo cleaning schedules: %w", result.Error)
	}
	return result.RowsAffected, nil
}
