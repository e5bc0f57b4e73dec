package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/consultant-scheduler/internal/domain/appointment"
)

const defaultSlotDuration = time.Hour

type GetAvailability struct {
	repo       domain.Repository
	normalizer *domain.TimeNormalizer
}

func NewGetAvailability(
	repo domain.Repository,
	normalizer *domain.TimeNormalizer,
) *GetAvailability {
	return &GetAvailability{
		repo:       repo,
		normalizer: normalizer,
	}
}

// Execute returns the free slots of in.Duration between opening and closing
// time at the location. Each candidate goes through the same normalization
// as a booking, so a listed slot is always bookable.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	duration := in.Duration
	if duration <= 0 {
		duration = defaultSlotDuration
	}
	step := int(duration / time.Minute)
	if step <= 0 {
		step = int(defaultSlotDuration / time.Minute)
	}

	open := domain.OpeningHour * 60
	closing := domain.ClosingHour * 60

	var candidates []domain.Window
	for m := open; m+step <= closing; m += step {
		w, err := uc.normalizer.FromInput(domain.Input{
			StartDate: in.Date,
			StartTime: hhmm(m),
			EndDate:   in.Date,
			EndTime:   hhmm(m + step),
			ZoneID:    in.ZoneID,
		})
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, w)
	}

	if len(candidates) == 0 {
		return []domain.TimeSlot{}, nil
	}

	busy, err := uc.repo.ListAppointmentsForPersonBetween(
		ctx,
		in.ConsultantID,
		candidates[0].UTCStart(),
		candidates[len(candidates)-1].UTCEnd(),
	)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(candidates))
	for _, w := range candidates {
		conflict := false
		for _, ap := range busy {
			if domain.Overlaps(w.UTCStart(), w.UTCEnd(), ap.StartUTC, ap.EndUTC) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start:    w.LocationStart().Format("15:04"),
			End:      w.LocationEnd().Format("15:04"),
			StartUTC: w.UTCStart(),
			EndUTC:   w.UTCEnd(),
		})
	}

	return slots, nil
}

func hhmm(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
