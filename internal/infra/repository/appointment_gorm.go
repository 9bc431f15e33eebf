package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/velvetnails/salon-scheduler/internal/domain/appointment"
	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetClientByUserID(
	ctx context.Context,
	userID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// overlapScope matches every non-cancelled appointment whose stored window
// collides with [start, end). end_time > date filters out zero-duration rows,
// which by construction have no services.
func overlapScope(tx *gorm.DB, start, end time.Time, excludeID uint) *gorm.DB {
	q := tx.
		Model(&models.Appointment{}).
		Where(
			"status <> ? AND date < ? AND end_time > ? AND end_time > date",
			string(domain.StatusCancelled), end, start,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

func (r *AppointmentGormRepository) FindActiveOverlapping(
	ctx context.Context,
	start time.Time,
	end time.Time,
	excludeID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := overlapScope(r.db.WithContext(ctx), start, end, excludeID).
		Preload("Services").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := overlapScope(tx, ap.Date, ap.EndTime, 0).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Find(&conflicts).Error; err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}

		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}
	return err
}

// --------------------------------------------------
// Appointment (read / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Services").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	services []models.Service,
	recheck bool,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if recheck {
			var conflicts []models.Appointment
			if err := overlapScope(tx, ap.Date, ap.EndTime, ap.ID).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Find(&conflicts).Error; err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
			}
		}

		if services != nil {
			if err := tx.Model(ap).Association("Services").Replace(services); err != nil {
				return err
			}
			ap.Services = services
		}

		return tx.Omit("Services", "Client").Save(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}
	return err
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// Hard delete; the cancelation row and the join rows go with it via
	// foreign-key cascade.
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, ap.ID).Error
}

func (r *AppointmentGormRepository) CancelAppointment(
	ctx context.Context,
	ap *models.Appointment,
	cancelation *models.Cancelation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services", "Client").Save(ap).Error; err != nil {
			return err
		}
		return tx.Create(cancelation).Error
	})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	q domain.ListQuery,
) ([]models.Appointment, int64, error) {

	base := r.db.WithContext(ctx).Model(&models.Appointment{})
	if q.Search != "" {
		base = base.
			Joins("JOIN clients ON clients.id = appointments.client_id").
			Where("clients.name ILIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var aps []models.Appointment
	if err := base.
		Preload("Client").
		Preload("Services").
		Order("date ASC").
		Offset(q.Skip).
		Limit(q.Limit).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByClient(
	ctx context.Context,
	clientID uint,
	q domain.ListQuery,
) ([]models.Appointment, int64, error) {

	base := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_id = ?", clientID)
	if q.Search != "" {
		base = base.Where("notes ILIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var aps []models.Appointment
	if err := base.
		Preload("Client").
		Preload("Services").
		Order("date ASC").
		Offset(q.Skip).
		Limit(q.Limit).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

func (r *AppointmentGormRepository) ListActiveExcludingClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where(
			"status IN ? AND client_id <> ?",
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			clientID,
		).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
