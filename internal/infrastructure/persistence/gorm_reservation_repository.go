package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence/models"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormReservationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReservationRepository creates a new GORM-based ReservationRepository implementation
func NewGormReservationRepository(db *gorm.DB, logger logger.Logger) (reservations.ReservationRepository, error) {
	return &gormReservationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReservationRepository) Create(ctx context.Context, reservation *reservations.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReservationModel{}
	model.FromDomain(reservation)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	r.logger.Info("Created reservation with id ", reservation.ID)
	return nil
}

func (r *gormReservationRepository) List(ctx context.Context, query *reservations.ReservationQuery) ([]*reservations.Reservation, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ReservationModel{})
	if query.PropertyID != "" {
		dbQuery = dbQuery.Where("property_id = ?", query.PropertyID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Platform != "" {
		dbQuery = dbQuery.Where("platform = ?", query.Platform)
	}
	if query.GuestName != "" {
		dbQuery = dbQuery.Where("LOWER(guest_name) LIKE ?", containsPattern(query.GuestName))
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("check_out_date > ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("check_in_date < ?", query.To)
	}

	var modelList []*models.ReservationModel
	total, err := listPage(dbQuery, query.Query, "check_in_date desc", reservations.SortableColumns, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}
	return toReservationList(modelList), total, nil
}

func (r *gormReservationRepository) GetByID(ctx context.Context, reservationID string) (*reservations.Reservation, error) {
	var model models.ReservationModel
	if err := r.db.WithContext(ctx).Where("id = ?", reservationID).First(&model).Error; err != nil {
		return nil, wrapNotFound(err, "reservation", reservationID)
	}
	return model.ToDomain(), nil
}

func (r *gormReservationRepository) UpdateByID(ctx context.Context, reservation *reservations.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReservationModel{}
	model.FromDomain(reservation)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	r.logger.Info("Updated reservation with id ", reservation.ID)
	return nil
}

func (r *gormReservationRepository) DeleteByID(ctx context.Context, reservationID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", reservationID).Delete(&models.ReservationModel{})
	if err := requireAffected(result, "reservation", reservationID); err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	r.logger.Info("Deleted reservation with id ", reservationID)
	return nil
}

func (r *gormReservationRepository) FindOverlapping(ctx context.Context, propertyID string, checkIn, checkOut time.Time, excludeID string) ([]*reservations.Reservation, error) {
	return findOverlapping(r.db.WithContext(ctx), propertyID, checkIn, checkOut, excludeID)
}

func (r *gormReservationRepository) CreateIfAvailable(ctx context.Context, reservation *reservations.Reservation) ([]*reservations.Reservation, error) {
	return r.saveIfAvailable(ctx, reservation, "create", func(tx *gorm.DB, model *models.ReservationModel) error {
		return tx.Create(model).Error
	})
}

func (r *gormReservationRepository) UpdateIfAvailable(ctx context.Context, reservation *reservations.Reservation) ([]*reservations.Reservation, error) {
	return r.saveIfAvailable(ctx, reservation, "update", func(tx *gorm.DB, model *models.ReservationModel) error {
		return tx.Save(model).Error
	})
}

// saveIfAvailable locks the property row so bookings of one property are checked and written one at a time
func (r *gormReservationRepository) saveIfAvailable(
	ctx context.Context,
	reservation *reservations.Reservation,
	action string,
	save func(tx *gorm.DB, model *models.ReservationModel) error,
) ([]*reservations.Reservation, error) {
	if err := reservation.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReservationModel{}
	model.FromDomain(reservation)

	var overlapping []*reservations.Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var property models.PropertyModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", reservation.PropertyID).
			First(&property).Error
		if err != nil {
			return wrapNotFound(err, "property", reservation.PropertyID)
		}

		overlapping, err = findOverlapping(tx, reservation.PropertyID, reservation.CheckInDate, reservation.CheckOutDate, reservation.ID)
		if err != nil || len(overlapping) > 0 {
			return err
		}
		return save(tx, model)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to %s reservation: %w", action, err)
	}
	if len(overlapping) > 0 {
		return overlapping, nil
	}

	r.logger.Info("Saved reservation with id ", reservation.ID)
	return nil, nil
}

func findOverlapping(db *gorm.DB, propertyID string, checkIn, checkOut time.Time, excludeID string) ([]*reservations.Reservation, error) {
	dbQuery := db.
		Where("property_id = ?", propertyID).
		Where("status <> ?", reservations.StatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != "" {
		dbQuery = dbQuery.Where("id <> ?", excludeID)
	}

	var modelList []*models.ReservationModel
	if err := dbQuery.Order("check_in_date asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	return toReservationList(modelList), nil
}

func (r *gormReservationRepository) ListCheckInsBetween(ctx context.Context, propertyIDs []string, from, to time.Time) ([]*reservations.Reservation, error) {
	dbQuery := r.db.WithContext(ctx).
		Where("status <> ?", reservations.StatusCancelled).
		Where("check_in_date >= ? AND check_in_date <= ?", from, to)
	if propertyIDs != nil {
		if len(propertyIDs) == 0 {
			return []*reservations.Reservation{}, nil
		}
		dbQuery = dbQuery.Where("property_id IN ?", propertyIDs)
	}

	var modelList []*models.ReservationModel
	if err := dbQuery.Order("check_in_date asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return toReservationList(modelList), nil
}

func (r *gormReservationRepository) ListCheckOutsBetween(ctx context.Context, from, to time.Time) ([]*reservations.Reservation, error) {
	var modelList []*models.ReservationModel
	err := r.db.WithContext(ctx).
		Where("status <> ?", reservations.StatusCancelled).
		Where("check_out_date >= ? AND check_out_date <= ?", from, to).
		Order("check_out_date asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list check-outs: %w", err)
	}
	return toReservationList(modelList), nil
}

func (r *gormReservationRepository) ListOverlappingWindow(ctx context.Context, from, to time.Time) ([]*reservations.Reservation, error) {
	var modelList []*models.ReservationModel
	err := r.db.WithContext(ctx).
		Where("status <> ?", reservations.StatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", to, from).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations in window: %w", err)
	}
	return toReservationList(modelList), nil
}

func (r *gormReservationRepository) CountByStatus(ctx context.Context, from, to time.Time) (map[string]int, error) {
	var rows []struct {
		Status string
		Count  int
	}
	err := r.db.WithContext(ctx).Model(&models.ReservationModel{}).
		Select("status, COUNT(*) AS count").
		Where("check_in_date >= ? AND check_in_date <= ?", from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations by status: %w", err)
	}

	counts := map[string]int{
		reservations.StatusPending:   0,
		reservations.StatusConfirmed: 0,
		reservations.StatusCancelled: 0,
		reservations.StatusCompleted: 0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *gormReservationRepository) CountFutureBlocking(ctx context.Context, propertyID string, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ReservationModel{}).
		Where("property_id = ?", propertyID).
		Where("status IN ?", []string{reservations.StatusPending, reservations.StatusConfirmed}).
		Where("check_out_date > ?", day).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count future reservations: %w", err)
	}
	return count, nil
}

func (r *gormReservationRepository) DeleteDemo(ctx context.Context) (int64, error) {
	invoiced := r.db.Model(&models.DocumentItemModel{}).Select("reservation_id").Where("reservation_id IS NOT NULL")
	result := r.db.WithContext(ctx).
		Where("source = ?", reservations.SourceDemo).
		Where("id NOT IN (?)", invoiced).
		Delete(&models.ReservationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete demo reservations: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func toReservationList(modelList []*models.ReservationModel) []*reservations.Reservation {
	domainList := make([]*reservations.Reservation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
