package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultant-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultant-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/consultant-scheduler/internal/middleware"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

type DirectoryHandler struct {
	db *gorm.DB
}

func NewDirectoryHandler(db *gorm.DB) *DirectoryHandler {
	return &DirectoryHandler{db: db}
}

// ======================================================
// LIST CUSTOMERS
// ======================================================

// ListCustomers backs the customer picker of the booking form.
func (h *DirectoryHandler) ListCustomers(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Model(&models.Customer{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := q.
		Order("name ASC").
		Find(&customers).Error; err != nil {

		slog.Error("list customers failed",
			"request_id", middleware.RequestID(c),
			"err", err)
		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}

	httpresp.List(c, customers)
}

// ======================================================
// LIST CONSULTANTS
// ======================================================

func (h *DirectoryHandler) ListConsultants(c *gin.Context) {
	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("role = ?", "consultant").
		Order("name ASC").
		Find(&users).Error; err != nil {

		slog.Error("list consultants failed",
			"request_id", middleware.RequestID(c),
			"err", err)
		httperr.Internal(c, "failed_to_list_consultants", "Could not list consultants.")
		return
	}

	c.JSON(http.StatusOK, httpresp.ListResponse[models.User]{
		Data:  users,
		Total: len(users),
	})
}
