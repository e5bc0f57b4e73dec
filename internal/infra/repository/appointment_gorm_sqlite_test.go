package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/consultant-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

// newTestDB opens a private in-memory database with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.User{},
		&models.Appointment{},
	))

	require.NoError(t, db.Create(&models.Customer{ID: 1, Name: "Acme Ltd"}).Error)
	require.NoError(t, db.Create(&models.User{ID: 7, Name: "Dana", Email: "dana@example.com"}).Error)
	require.NoError(t, db.Create(&models.User{ID: 8, Name: "Noor", Email: "noor@example.com"}).Error)

	return db
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 3, hour, minute, 0, 0, time.UTC)
}

func seed(t *testing.T, repo *AppointmentGormRepository, userID uint, title string, start, end time.Time) uint {
	t.Helper()
	id, err := repo.SaveAppointment(context.Background(), &models.Appointment{
		Title:      title,
		Type:       "Support",
		Location:   "UTC",
		StartUTC:   start,
		EndUTC:     end,
		CustomerID: 1,
		UserID:     userID,
	})
	require.NoError(t, err)
	return id
}

func titles(apps []models.Appointment) []string {
	out := make([]string, 0, len(apps))
	for _, ap := range apps {
		out = append(out, ap.Title)
	}
	return out
}

func TestListBetweenIsHalfOpen(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))

	seed(t, repo, 7, "touches start", at(9, 0), at(10, 0))
	seed(t, repo, 7, "overlaps start", at(9, 30), at(10, 30))
	seed(t, repo, 7, "inside", at(10, 15), at(10, 45))
	seed(t, repo, 7, "contains", at(8, 0), at(12, 0))
	seed(t, repo, 7, "overlaps end", at(10, 45), at(11, 15))
	seed(t, repo, 7, "touches end", at(11, 0), at(12, 0))
	seed(t, repo, 7, "next day", at(10, 0).AddDate(0, 0, 1), at(11, 0).AddDate(0, 0, 1))
	seed(t, repo, 8, "other consultant", at(10, 0), at(11, 0))

	apps, err := repo.ListAppointmentsForPersonBetween(context.Background(), 7, at(10, 0), at(11, 0))
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"contains", "overlaps start", "inside", "overlaps end"},
		titles(apps))
}

func TestListBetweenAcceptsZonedBounds(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	seed(t, repo, 7, "call", at(14, 0), at(15, 0))

	sp := time.FixedZone("BRT", -3*60*60)

	// 11:30-12:30 at UTC-3 is 14:30-15:30 UTC.
	apps, err := repo.ListAppointmentsForPersonBetween(context.Background(), 7,
		time.Date(2024, 6, 3, 11, 30, 0, 0, sp),
		time.Date(2024, 6, 3, 12, 30, 0, 0, sp))
	require.NoError(t, err)
	assert.Equal(t, []string{"call"}, titles(apps))
}

func TestSaveAppointmentInsertsThenUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	id := seed(t, repo, 7, "draft", at(10, 0), at(11, 0))
	require.NotZero(t, id)

	created, err := repo.GetAppointment(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, created)

	got, err := repo.SaveAppointment(ctx, &models.Appointment{
		ID:         id,
		Title:      "moved",
		Type:       "Sales",
		Location:   "UTC",
		StartUTC:   at(13, 0),
		EndUTC:     at(14, 0),
		CustomerID: 1,
		UserID:     7,
	})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	updated, err := repo.GetAppointment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "moved", updated.Title)
	assert.True(t, updated.StartUTC.Equal(at(13, 0)))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestLookupsReturnNilWhenMissing(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	customer, err := repo.GetCustomer(ctx, 99)
	assert.NoError(t, err)
	assert.Nil(t, customer)

	consultant, err := repo.GetConsultant(ctx, 99)
	assert.NoError(t, err)
	assert.Nil(t, consultant)

	ap, err := repo.GetAppointment(ctx, 99)
	assert.NoError(t, err)
	assert.Nil(t, ap)

	found, err := repo.GetConsultant(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Dana", found.Name)
}

func TestListForPeriodPreloadsCustomer(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))

	seed(t, repo, 7, "afternoon", at(14, 0), at(15, 0))
	seed(t, repo, 7, "morning", at(9, 0), at(10, 0))
	seed(t, repo, 7, "tomorrow", at(9, 0).AddDate(0, 0, 1), at(10, 0).AddDate(0, 0, 1))

	apps, err := repo.ListAppointmentsForPeriod(context.Background(), 7, at(0, 0), at(0, 0).AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, []string{"morning", "afternoon"}, titles(apps))
	assert.Equal(t, "Acme Ltd", apps[0].Customer.Name)
}

func TestClosedStoreReportsStorageError(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.ListAppointmentsForPersonBetween(context.Background(), 7, at(10, 0), at(11, 0))
	assert.True(t, httperr.IsStorage(err))

	_, err = repo.GetCustomer(context.Background(), 1)
	assert.True(t, httperr.IsStorage(err))
}
