package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Logger writes audit rows and reads them back for the audit screen.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

// Log implements Writer.
func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	row := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: encodeMetadata(action, metadata),
	}

	return errors.Wrap(l.db.Create(&row).Error, "insert audit log")
}

func encodeMetadata(action string, metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		slog.Warn("audit metadata not serializable", "action", action, "err", err)
		return ""
	}
	return string(b)
}

// Filter narrows a listing. Zero fields do not filter. To is inclusive of
// the whole day it falls on.
type Filter struct {
	Action   string
	Entity   string
	EntityID *uint
	From     time.Time
	To       time.Time

	Page  int
	Limit int
}

// Normalize clamps paging to sane values.
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxPageSize {
		f.Limit = defaultPageSize
	}
}

func (f Filter) offset() int {
	return (f.Page - 1) * f.Limit
}

// List returns one page of entries, newest first, and the total count.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != nil {
		q = q.Where("entity_id = ?", *f.EntityID)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count audit logs")
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list audit logs")
	}

	return logs, total, nil
}
