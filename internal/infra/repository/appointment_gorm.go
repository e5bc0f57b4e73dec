package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/consultant-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultant-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// storageErr wraps a driver failure. A Postgres error's SQLSTATE is appended
// to op so it shows up in logs without exposing the message to clients.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		op = op + " [" + pgErr.Code + "]"
	}

	return httperr.ErrStorage(op, errors.Wrap(err, op))
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("get_customer", err)
	}
	return &customer, nil
}

func (r *AppointmentGormRepository) GetConsultant(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("get_consultant", err)
	}
	return &user, nil
}

// --------------------------------------------------
// Appointment (conflict / save)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("get_appointment", err)
	}
	return &ap, nil
}

// ListAppointmentsForPersonBetween returns the consultant's appointments
// that intersect [rangeStart, rangeEnd). Touching windows are excluded.
func (r *AppointmentGormRepository) ListAppointmentsForPersonBetween(
	ctx context.Context,
	personID uint,
	rangeStart time.Time,
	rangeEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND start_utc < ? AND end_utc > ?",
			personID,
			rangeEnd.UTC(),
			rangeStart.UTC(),
		).
		Order("start_utc ASC").
		Find(&apps).Error; err != nil {
		return nil, storageErr("list_appointments_between", err)
	}

	return apps, nil
}

// SaveAppointment inserts when ap.ID is zero and updates otherwise.
func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) (uint, error) {

	db := r.db.WithContext(ctx)

	if ap.ID == 0 {
		if err := db.Omit("Customer", "User").Create(ap).Error; err != nil {
			return 0, storageErr("create_appointment", err)
		}
		return ap.ID, nil
	}

	var existing models.Appointment
	if err := db.Select("created_at").First(&existing, ap.ID).Error; err != nil {
		return 0, storageErr("update_appointment", err)
	}
	ap.CreatedAt = existing.CreatedAt

	if err := db.Omit("Customer", "User").Save(ap).Error; err != nil {
		return 0, storageErr("update_appointment", err)
	}

	return ap.ID, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	personID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where(
			"user_id = ? AND start_utc >= ? AND start_utc < ?",
			personID,
			start.UTC(),
			end.UTC(),
		).
		Order("start_utc ASC").
		Find(&apps).Error

	if err != nil {
		return nil, storageErr("list_appointments_period", err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
