package appointment

import (
	"context"

	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

// ConflictChecker finds a person's appointments that collide with a
// candidate window.
type ConflictChecker struct {
	repo Repository
}

func NewConflictChecker(repo Repository) *ConflictChecker {
	return &ConflictChecker{repo: repo}
}

// FindOverlaps returns every stored appointment of personID whose UTC span
// intersects w, in the order the repository returned them. When excludeID
// is set, the appointment with that ID is left out.
func (c *ConflictChecker) FindOverlaps(
	ctx context.Context,
	personID uint,
	w Window,
	excludeID *uint,
) ([]models.Appointment, error) {

	existing, err := c.repo.ListAppointmentsForPersonBetween(
		ctx,
		personID,
		w.UTCStart(),
		w.UTCEnd(),
	)
	if err != nil {
		return nil, err
	}

	var conflicts []models.Appointment
	for _, ap := range existing {
		if excludeID != nil && ap.ID == *excludeID {
			continue
		}
		if !Overlaps(w.UTCStart(), w.UTCEnd(), ap.StartUTC, ap.EndUTC) {
			continue
		}
		conflicts = append(conflicts, ap)
	}

	return conflicts, nil
}
