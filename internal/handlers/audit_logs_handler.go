package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultant-scheduler/internal/audit"
	"github.com/BruksfildServices01/consultant-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultant-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/consultant-scheduler/internal/middleware"
)

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List pages through the audit trail. Malformed filters are ignored rather
// than rejected, matching how the audit screen builds its query string.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if s := c.Query("entity_id"); s != "" {
		if id, err := strconv.ParseUint(s, 10, 64); err == nil {
			v := uint(id)
			f.EntityID = &v
		}
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		f.To = to
	}
	f.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		slog.Error("list audit logs failed",
			"request_id", middleware.RequestID(c),
			"err", err)
		httperr.Internal(c, "audit_list_failed", "Could not list audit entries.")
		return
	}

	httpresp.Page(c, logs, f.Page, f.Limit, total)
}
