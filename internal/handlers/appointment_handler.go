package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/consultant-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultant-scheduler/internal/dto"
	"github.com/BruksfildServices01/consultant-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultant-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/consultant-scheduler/internal/middleware"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/consultant-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	schedule      *ucAppointment.ScheduleAppointment
	checkOverlaps *ucAppointment.CheckOverlaps
	listByDate    *ucAppointment.ListAppointmentsByDate
	listByMonth   *ucAppointment.ListAppointmentsByMonth
	availability  *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	schedule *ucAppointment.ScheduleAppointment,
	checkOverlaps *ucAppointment.CheckOverlaps,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
	availability *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		schedule:      schedule,
		checkOverlaps: checkOverlaps,
		listByDate:    listByDate,
		listByMonth:   listByMonth,
		availability:  availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// ScheduleAppointmentRequest is the body of create, update and overlap
// checks. Dates are YYYY-MM-DD and times HH:MM, both in Location's zone.
type ScheduleAppointmentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	URL         string `json:"url"`
	Type        string `json:"type" binding:"required"`

	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	EndDate   string `json:"end_date"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`

	CustomerID   uint `json:"customer_id" binding:"required"`
	ConsultantID uint `json:"consultant_id" binding:"required"`

	ConfirmOverlap bool `json:"confirm_overlap"`
}

type OverlapCheckRequest struct {
	AppointmentID *uint  `json:"appointment_id"`
	StartDate     string `json:"start_date"`
	StartTime     string `json:"start_time"`
	EndDate       string `json:"end_date"`
	EndTime       string `json:"end_time"`
	Location      string `json:"location"`
	ConsultantID  uint   `json:"consultant_id" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func parseDates(start, end string) (domain.Date, domain.Date, bool) {
	sd, err := domain.ParseDate(start)
	if err != nil {
		return domain.Date{}, domain.Date{}, false
	}
	ed, err := domain.ParseDate(end)
	if err != nil {
		return domain.Date{}, domain.Date{}, false
	}
	return sd, ed, true
}

func confirmWith(answer bool) ucAppointment.ConfirmFunc {
	return func(ctx context.Context, conflicts []models.Appointment) (bool, error) {
		return answer, nil
	}
}

func toConflictDTOs(conflicts []models.Appointment) []dto.ConflictDTO {
	out := make([]dto.ConflictDTO, 0, len(conflicts))
	for _, ap := range conflicts {
		out = append(out, dto.ConflictDTO{
			ID:       ap.ID,
			Title:    ap.Title,
			StartUTC: ap.StartUTC,
			EndUTC:   ap.EndUTC,
		})
	}
	return out
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

// writeError logs failures that are not the caller's fault and writes the
// classified response.
func writeError(c *gin.Context, op string, err error) {
	if httperr.Status(err) >= http.StatusInternalServerError {
		slog.Error("request failed",
			"op", op,
			"request_id", middleware.RequestID(c),
			"err", err)
	} else {
		slog.Debug("request rejected",
			"op", op,
			"request_id", middleware.RequestID(c),
			"error_code", httperr.Code(err))
	}
	httperr.FromError(c, err)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	h.save(c, nil)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.save(c, &id)
}

func (h *AppointmentHandler) save(c *gin.Context, appointmentID *uint) {
	var req ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	startDate, endDate, ok := parseDates(req.StartDate, req.EndDate)
	if !ok {
		httperr.FromError(c, domain.Err(domain.CodeInvalidDate))
		return
	}

	res, err := h.schedule.Execute(c.Request.Context(), ucAppointment.ScheduleInput{
		AppointmentID: appointmentID,
		OperatorID:    middleware.CurrentUserID(c),
		Title:         req.Title,
		Description:   req.Description,
		Contact:       req.Contact,
		URL:           req.URL,
		Type:          req.Type,
		StartDate:     startDate,
		StartTime:     req.StartTime,
		EndDate:       endDate,
		EndTime:       req.EndTime,
		Location:      req.Location,
		CustomerID:    req.CustomerID,
		ConsultantID:  req.ConsultantID,
	}, confirmWith(req.ConfirmOverlap))

	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) && be.Code == domain.CodeOverlapNotConfirmed {
			c.JSON(http.StatusConflict, gin.H{
				"error_code": be.Code,
				"message":    be.Message,
				"conflicts":  toConflictDTOs(res.Conflicts),
			})
			return
		}
		writeError(c, "schedule_appointment", err)
		return
	}

	body := gin.H{
		"id":        res.AppointmentID,
		"start_utc": res.Window.UTCStart(),
		"end_utc":   res.Window.UTCEnd(),
		"conflicts": toConflictDTOs(res.Conflicts),
	}

	if appointmentID != nil {
		httpresp.OK(c, body)
		return
	}
	httpresp.Created(c, body)
}

// ======================================================
// OVERLAPS
// ======================================================

func (h *AppointmentHandler) Overlaps(c *gin.Context) {
	var req OverlapCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	startDate, endDate, ok := parseDates(req.StartDate, req.EndDate)
	if !ok {
		httperr.FromError(c, domain.Err(domain.CodeInvalidDate))
		return
	}

	w, conflicts, err := h.checkOverlaps.Execute(c.Request.Context(), ucAppointment.ScheduleInput{
		AppointmentID: req.AppointmentID,
		StartDate:     startDate,
		StartTime:     req.StartTime,
		EndDate:       endDate,
		EndTime:       req.EndTime,
		Location:      req.Location,
		ConsultantID:  req.ConsultantID,
	})
	if err != nil {
		writeError(c, "check_overlaps", err)
		return
	}

	httpresp.OK(c, gin.H{
		"location_start": w.LocationStart(),
		"location_end":   w.LocationEnd(),
		"viewer_start":   w.ViewerStart(),
		"viewer_end":     w.ViewerEnd(),
		"start_utc":      w.UTCStart(),
		"end_utc":        w.UTCEnd(),
		"duration_min":   int(w.Duration() / time.Minute),
		"conflicts":      toConflictDTOs(conflicts),
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	consultantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		httperr.FromError(c, domain.Err(domain.CodeInvalidDate))
		return
	}

	list, err := h.listByDate.Execute(c.Request.Context(), consultantID, date)
	if err != nil {
		writeError(c, "list_appointments_by_date", err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	consultantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Month must be between 1 and 12.")
		return
	}

	list, err := h.listByMonth.Execute(c.Request.Context(), consultantID, year, month)
	if err != nil {
		writeError(c, "list_appointments_by_month", err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	consultantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	date, err := domain.ParseDate(c.Query("date"))
	if err != nil || date.IsZero() {
		httperr.FromError(c, domain.Err(domain.CodeInvalidDate))
		return
	}

	var duration time.Duration
	if s := c.Query("duration_min"); s != "" {
		minutes, err := strconv.Atoi(s)
		if err != nil || minutes <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be a positive number of minutes.")
			return
		}
		duration = time.Duration(minutes) * time.Minute
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ConsultantID: consultantID,
		Date:         date,
		ZoneID:       c.Query("zone"),
		Duration:     duration,
	})
	if err != nil {
		writeError(c, "get_availability", err)
		return
	}

	httpresp.List(c, slots)
}
