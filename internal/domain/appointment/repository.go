package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

// Repository is the persistence collaborator. Failures other than "not
// found" come back as httperr.StorageError; lookups that find nothing
// return (nil, nil).
type Repository interface {
	// -------- References --------
	GetCustomer(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	GetConsultant(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Appointment (conflict / save) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointmentsForPersonBetween(
		ctx context.Context,
		personID uint,
		rangeStart time.Time,
		rangeEnd time.Time,
	) ([]models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) (uint, error)

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		personID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
