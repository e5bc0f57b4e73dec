package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultant-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultant-scheduler/internal/middleware"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
	"github.com/BruksfildServices01/consultant-scheduler/internal/timezone"
)

type MeHandler struct {
	db       *gorm.DB
	operator timezone.Operator
}

func NewMeHandler(db *gorm.DB, operator timezone.Operator) *MeHandler {
	return &MeHandler{db: db, operator: operator}
}

// GetMe returns the authenticated user together with the zone appointment
// times are shown in.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		httperr.Unauthorized(c, "user_not_in_context", "Not authenticated.")
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, *userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_user", "Could not load user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"timezone": h.operator.CurrentLocalZone(),
	})
}
