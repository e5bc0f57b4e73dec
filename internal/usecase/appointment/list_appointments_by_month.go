package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/consultant-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultant-scheduler/internal/dto"
)

type ListAppointmentsByMonth struct {
	repo       domain.Repository
	normalizer *domain.TimeNormalizer
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	normalizer *domain.TimeNormalizer,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo:       repo,
		normalizer: normalizer,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	consultantID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	loc, err := uc.normalizer.ViewerLocation()
	if err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

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
