package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/consultant-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

// rangeRepo serves ListAppointmentsForPersonBetween from a fixed slice and
// records the query it received.
type rangeRepo struct {
	Repository

	rows    []models.Appointment
	err     error
	gotID   uint
	gotFrom time.Time
	gotTo   time.Time
}

func (r *rangeRepo) ListAppointmentsForPersonBetween(
	ctx context.Context,
	personID uint,
	rangeStart time.Time,
	rangeEnd time.Time,
) ([]models.Appointment, error) {
	r.gotID, r.gotFrom, r.gotTo = personID, rangeStart, rangeEnd
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

func utcAt(hour, minute int) time.Time {
	return time.Date(2024, 6, 3, hour, minute, 0, 0, time.UTC)
}

func row(id uint, title string, start, end time.Time) models.Appointment {
	return models.Appointment{ID: id, Title: title, StartUTC: start, EndUTC: end, Location: "UTC", UserID: 7}
}

func utcWindow(start, end time.Time) Window {
	return newWindow("UTC", start, end, time.UTC, time.UTC)
}

func TestFindOverlapsScenario(t *testing.T) {
	repo := &rangeRepo{rows: []models.Appointment{
		row(1, "Quarterly review", utcAt(14, 0), utcAt(15, 0)),
	}}
	checker := NewConflictChecker(repo)

	candidate := utcWindow(utcAt(14, 30), utcAt(15, 30))
	conflicts, err := checker.FindOverlaps(context.Background(), 7, candidate, nil)
	require.NoError(t, err)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "Quarterly review", conflicts[0].Title)
	assert.Equal(t, uint(7), repo.gotID)
	assert.Equal(t, candidate.UTCStart(), repo.gotFrom)
	assert.Equal(t, candidate.UTCEnd(), repo.gotTo)
}

func TestFindOverlapsFiltersBroadResults(t *testing.T) {
	// The store may hand back a wider range; only true intersections survive.
	repo := &rangeRepo{rows: []models.Appointment{
		row(1, "before", utcAt(9, 0), utcAt(10, 0)),
		row(2, "touching end", utcAt(11, 0), utcAt(12, 0)),
		row(3, "contained", utcAt(10, 15), utcAt(10, 45)),
		row(4, "touching start", utcAt(9, 0), utcAt(10, 0)),
		row(5, "partial", utcAt(10, 30), utcAt(11, 30)),
		row(6, "contains", utcAt(9, 0), utcAt(13, 0)),
	}}

	conflicts, err := NewConflictChecker(repo).FindOverlaps(
		context.Background(), 7, utcWindow(utcAt(10, 0), utcAt(11, 0)), nil,
	)
	require.NoError(t, err)

	var titles []string
	for _, c := range conflicts {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"contained", "partial", "contains"}, titles)
}

func TestFindOverlapsExcludesSelf(t *testing.T) {
	repo := &rangeRepo{rows: []models.Appointment{
		row(42, "self", utcAt(10, 0), utcAt(11, 0)),
		row(43, "other", utcAt(10, 30), utcAt(11, 30)),
	}}
	checker := NewConflictChecker(repo)
	w := utcWindow(utcAt(10, 0), utcAt(11, 0))

	all, err := checker.FindOverlaps(context.Background(), 7, w, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	self := uint(42)
	others, err := checker.FindOverlaps(context.Background(), 7, w, &self)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, uint(43), others[0].ID)
}

func TestFindOverlapsKeepsDuplicates(t *testing.T) {
	dup := row(9, "dup", utcAt(10, 0), utcAt(11, 0))
	repo := &rangeRepo{rows: []models.Appointment{dup, dup}}

	conflicts, err := NewConflictChecker(repo).FindOverlaps(
		context.Background(), 7, utcWindow(utcAt(10, 30), utcAt(11, 30)), nil,
	)
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)
}

func TestFindOverlapsNone(t *testing.T) {
	conflicts, err := NewConflictChecker(&rangeRepo{}).FindOverlaps(
		context.Background(), 7, utcWindow(utcAt(10, 0), utcAt(11, 0)), nil,
	)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindOverlapsPassesStorageErrorThrough(t *testing.T) {
	storageErr := httperr.ErrStorage("list_appointments", errors.New("connection reset"))
	repo := &rangeRepo{err: storageErr}

	_, err := NewConflictChecker(repo).FindOverlaps(
		context.Background(), 7, utcWindow(utcAt(10, 0), utcAt(11, 0)), nil,
	)
	assert.Equal(t, storageErr, err)
	assert.True(t, httperr.IsStorage(err))
}

func TestModelRoundTrip(t *testing.T) {
	n := newNormalizer("UTC")
	w, err := n.FromInput(sameDay("10:00", "11:00", "Europe/Berlin"))
	require.NoError(t, err)

	operator := uint(3)
	ap := Appointment{
		Title: "Demo", Type: TypeSales, Window: w,
		CustomerID: 5, ConsultantID: 7, CreatedBy: &operator,
	}

	m := ap.Model()
	assert.Equal(t, "Europe/Berlin", m.Location)
	assert.Equal(t, uint(7), m.UserID)
	assert.Equal(t, "Sales", m.Type)
	assert.Equal(t, w.UTCStart(), m.StartUTC)

	back, err := FromModel(*m, n)
	require.NoError(t, err)
	assert.Equal(t, ap, back)
}
