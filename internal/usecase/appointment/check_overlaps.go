package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/consultant-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

// CheckOverlaps normalizes a candidate and reports what it would collide
// with, without saving anything.
type CheckOverlaps struct {
	normalizer *domain.TimeNormalizer
	checker    *domain.ConflictChecker
}

func NewCheckOverlaps(
	repo domain.Repository,
	normalizer *domain.TimeNormalizer,
) *CheckOverlaps {
	return &CheckOverlaps{
		normalizer: normalizer,
		checker:    domain.NewConflictChecker(repo),
	}
}

func (uc *CheckOverlaps) Execute(
	ctx context.Context,
	in ScheduleInput,
) (domain.Window, []models.Appointment, error) {

	window, err := uc.normalizer.FromInput(domain.Input{
		StartDate: in.StartDate,
		StartTime: in.StartTime,
		EndDate:   in.EndDate,
		EndTime:   in.EndTime,
		ZoneID:    in.Location,
	})
	if err != nil {
		return domain.Window{}, nil, err
	}

	conflicts, err := uc.checker.FindOverlaps(ctx, in.ConsultantID, window, in.AppointmentID)
	if err != nil {
		return window, nil, err
	}

	return window, conflicts, nil
}
