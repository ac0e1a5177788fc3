package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/domain/access"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/httpresp"
	"github.com/plateful/restaurant-admin/internal/middleware"
	"github.com/plateful/restaurant-admin/internal/models"
)

type AuditHandler struct {
	db *gorm.DB
}

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{db: db}
}

// List returns the audit trail, newest first. Superuser only.
func (h *AuditHandler) List(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	if err := access.RequireSuperuser(actor); err != nil {
		httperr.Handle(c, err)
		return
	}

	query := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Limit(200)

	if raw := c.Query("restaurant_id"); raw != "" {
		query = query.Where("restaurant_id = ?", raw)
	}
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, logs)
}
