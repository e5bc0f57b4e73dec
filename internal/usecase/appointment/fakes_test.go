package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/consultant-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consultant-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
	"github.com/BruksfildServices01/consultant-scheduler/internal/timezone"
)

// memoryRepo is an in-memory domain.Repository.
type memoryRepo struct {
	customers    map[uint]models.Customer
	consultants  map[uint]models.User
	appointments []models.Appointment
	nextID       uint

	listErr error
	saveErr error
	saved   []models.Appointment
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		customers:   map[uint]models.Customer{1: {ID: 1, Name: "Acme Ltd"}},
		consultants: map[uint]models.User{7: {ID: 7, Name: "Dana", Role: "consultant"}},
		nextID:      100,
	}
}

func (r *memoryRepo) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memoryRepo) GetConsultant(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.consultants[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == id {
			ap := ap
			return &ap, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) ListAppointmentsForPersonBetween(
	ctx context.Context,
	personID uint,
	rangeStart time.Time,
	rangeEnd time.Time,
) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == personID && ap.StartUTC.Before(rangeEnd) && ap.EndUTC.After(rangeStart) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memoryRepo) SaveAppointment(ctx context.Context, ap *models.Appointment) (uint, error) {
	if r.saveErr != nil {
		return 0, r.saveErr
	}
	if ap.ID == 0 {
		r.nextID++
		ap.ID = r.nextID
		r.appointments = append(r.appointments, *ap)
	} else {
		for i := range r.appointments {
			if r.appointments[i].ID == ap.ID {
				r.appointments[i] = *ap
			}
		}
	}
	r.saved = append(r.saved, *ap)
	return ap.ID, nil
}

func (r *memoryRepo) ListAppointmentsForPeriod(
	ctx context.Context,
	personID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == personID && !ap.StartUTC.Before(start) && ap.StartUTC.Before(end) {
			ap.Customer = r.customers[ap.CustomerID]
			out = append(out, ap)
		}
	}
	return out, nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []audit.Event
}

func (d *recordingDispatcher) Dispatch(ev audit.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, ev)
}

func (d *recordingDispatcher) actions() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for _, ev := range d.events {
		out = append(out, ev.Action)
	}
	return out
}

type fixedViewer string

func (v fixedViewer) CurrentLocalZone() string { return string(v) }

func newNormalizer(viewer string) *domain.TimeNormalizer {
	return domain.NewTimeNormalizer(timezone.NewResolver(), fixedViewer(viewer))
}

func stored(id uint, title string, start, end time.Time) models.Appointment {
	return models.Appointment{
		ID: id, Title: title, Type: "Support", Location: "UTC",
		StartUTC: start, EndUTC: end, CustomerID: 1, UserID: 7,
	}
}
