package handlers

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/config"
	"github.com/plateful/restaurant-admin/internal/domain/access"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/httpresp"
	"github.com/plateful/restaurant-admin/internal/middleware"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/photostore"
	"github.com/plateful/restaurant-admin/internal/usecase/account"
)

type ImageHandler struct {
	db     *gorm.DB
	config *config.Config
	photos photostore.Store
	update *account.UpdateProfile
}

func NewImageHandler(
	db *gorm.DB,
	cfg *config.Config,
	photos photostore.Store,
	update *account.UpdateProfile,
) *ImageHandler {
	return &ImageHandler{
		db:     db,
		config: cfg,
		photos: photos,
		update: update,
	}
}

func contentTypeFor(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if mime, ok := photostore.MIMETypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}

// --------- Handlers ---------

// Get streams a restaurant photo. A missing or unreadable photo falls
// back to the bundled default image rather than a 404: menus always
// render something.
func (h *ImageHandler) Get(c *gin.Context) {
	raw := c.Query("restaurant_id")
	restaurantID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.serveDefault(c)
		return
	}

	photo := c.Query("photo")
	if photo == "" || strings.Contains(photo, "/") || strings.Contains(photo, "..") {
		h.serveDefault(c)
		return
	}

	rc, err := h.photos.Open(uint(restaurantID), photo)
	if err != nil {
		h.serveDefault(c)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", contentTypeFor(photo))
	c.Status(200)
	io.Copy(c.Writer, rc)
}

func (h *ImageHandler) serveDefault(c *gin.Context) {
	path := filepath.Join(h.config.PhotoDir, h.config.DefaultPhoto)
	f, err := os.Open(path)
	if err != nil {
		httperr.NotFound(c, httperr.CodeInvalidArgument, "Image not found.")
		return
	}
	defer f.Close()

	c.Header("Content-Type", contentTypeFor(h.config.DefaultPhoto))
	c.Status(200)
	io.Copy(c.Writer, f)
}

// Upload stores a photo into the actor's own restaurant namespace and
// records it on the profile.
func (h *ImageHandler) Upload(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	raw := c.PostForm("restaurant_id")
	restaurantID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "restaurant_id must be a positive integer")
		return
	}

	var profile models.UserProfile
	err = h.db.WithContext(c.Request.Context()).
		Joins("JOIN users ON users.id = user_profiles.user_id").
		Where("users.email = ?", actor.Email).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeProfileNotFound, "Profile not found.")
			return
		}
		httperr.Handle(c, err)
		return
	}

	if err := access.RequireRestaurantOwnership(actor, profile.RestaurantID, uint(restaurantID)); err != nil {
		httperr.Handle(c, err)
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "photo file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	defer src.Close()

	filename := filepath.Base(file.Filename)
	if err := h.photos.Save(uint(restaurantID), filename, src); err != nil {
		httperr.Handle(c, err)
		return
	}

	// Recording the filename through the profile usecase keeps the
	// restaurant dual-write in one place.
	if _, err := h.update.Execute(c.Request.Context(), actor, actor.Email, account.ProfilePatch{
		Photo: &filename,
	}); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, gin.H{"photo": filename})
}
