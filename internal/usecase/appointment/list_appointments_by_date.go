package appointment

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/consultant-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultant-scheduler/internal/dto"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

type ListAppointmentsByDate struct {
	repo       domain.Repository
	normalizer *domain.TimeNormalizer
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	normalizer *domain.TimeNormalizer,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:       repo,
		normalizer: normalizer,
	}
}

// Execute lists a consultant's appointments starting on date, where the day
// is taken in the operator's zone.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	consultantID uint,
	date domain.Date,
) ([]dto.AppointmentListDTO, error) {

	if date.IsZero() {
		return nil, domain.Err(domain.CodeMissingDate)
	}
	if !date.Valid() {
		return nil, domain.Err(domain.CodeInvalidDate)
	}

	loc, err := uc.normalizer.ViewerLocation()
	if err != nil {
		return nil, err
	}

	start := date.At(0, 0, loc)
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		consultantID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments, uc.normalizer), nil
}

// toListDTOs rehydrates stored rows. Rows whose zone no longer resolves are
// logged and skipped instead of failing the whole listing.
func toListDTOs(appointments []models.Appointment, n *domain.TimeNormalizer) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, m := range appointments {
		ap, err := domain.FromModel(m, n)
		if err != nil {
			slog.Warn("skipping appointment with unresolvable zone",
				"appointment_id", m.ID,
				"location", m.Location)
			continue
		}
		w := ap.Window
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			Title:         ap.Title,
			Type:          string(ap.Type),
			Location:      w.ZoneID(),
			CustomerID:    ap.CustomerID,
			CustomerName:  m.Customer.Name,
			LocationStart: w.LocationStart(),
			LocationEnd:   w.LocationEnd(),
			ViewerStart:   w.ViewerStart(),
			ViewerEnd:     w.ViewerEnd(),
			StartUTC:      w.UTCStart(),
			EndUTC:        w.UTCEnd(),
		})
	}
	return out
}
