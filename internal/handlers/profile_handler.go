package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/domain/access"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/httpresp"
	"github.com/plateful/restaurant-admin/internal/middleware"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/usecase/account"
)

type ProfileHandler struct {
	db            *gorm.DB
	updateProfile *account.UpdateProfile
}

func NewProfileHandler(db *gorm.DB, updateProfile *account.UpdateProfile) *ProfileHandler {
	return &ProfileHandler{db: db, updateProfile: updateProfile}
}

// targetEmail resolves which account a profile request refers to: the
// email query parameter when present, the actor otherwise.
func targetEmail(c *gin.Context, actor *models.User) string {
	if email := c.Query("email"); email != "" {
		return email
	}
	return actor.Email
}

// --------- Handlers ---------

// ListRestaurants returns every profile keyed by the owning user's id.
// Superuser only.
func (h *ProfileHandler) ListRestaurants(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	if err := access.RequireSuperuser(actor); err != nil {
		httperr.Handle(c, err)
		return
	}

	var profiles []models.UserProfile
	if err := h.db.WithContext(c.Request.Context()).
		Find(&profiles).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	out := make(map[string]models.UserProfile, len(profiles))
	for _, p := range profiles {
		out[p.UserID.String()] = p
	}
	httpresp.OK(c, out)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	email := targetEmail(c, actor)

	if err := access.RequireSelfOrSuperuser(actor, email); err != nil {
		httperr.Handle(c, err)
		return
	}

	var profile models.UserProfile
	err := h.db.WithContext(c.Request.Context()).
		Joins("JOIN users ON users.id = user_profiles.user_id").
		Where("users.email = ?", email).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeProfileNotFound, "Profile not found.")
			return
		}
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	email := targetEmail(c, actor)

	var patch account.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	profile, err := h.updateProfile.Execute(c.Request.Context(), actor, email, patch)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, profile)
}
