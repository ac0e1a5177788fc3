package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/auth"
	"github.com/plateful/restaurant-admin/internal/config"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/httpresp"
	"github.com/plateful/restaurant-admin/internal/middleware"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/usecase/account"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	register *account.RegisterOwner
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, register *account.RegisterOwner) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, register: register}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		httperr.BadRequest(c, httperr.CodeAlreadyAuthenticated, "You are already authenticated.")
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	user, err := h.register.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		httperr.BadRequest(c, httperr.CodeAlreadyAuthenticated, "You are already authenticated.")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", req.Email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "Incorrect email or password.")
			return
		}
		httperr.Handle(c, err)
		return
	}

	if !auth.CheckPassword(user.HashedPassword, req.Password) {
		httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "Incorrect email or password.")
		return
	}
	if !user.Role.Valid() {
		httperr.Forbidden(c, httperr.CodeForbidden, "Account role does not permit access.")
		return
	}

	token, err := auth.IssueToken(h.config.JWTSecret, user.Email, user.Role, h.config.JWTExpiry())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
