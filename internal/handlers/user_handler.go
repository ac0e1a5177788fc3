package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/domain/access"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/httpresp"
	"github.com/plateful/restaurant-admin/internal/middleware"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/usecase/account"
)

type UserHandler struct {
	db         *gorm.DB
	createUser *account.CreateUser
	approve    *account.ApproveUser
	deleteUser *account.DeleteUser
	changePass *account.ChangePassword
}

func NewUserHandler(
	db *gorm.DB,
	createUser *account.CreateUser,
	approve *account.ApproveUser,
	deleteUser *account.DeleteUser,
	changePass *account.ChangePassword,
) *UserHandler {
	return &UserHandler{
		db:         db,
		createUser: createUser,
		approve:    approve,
		deleteUser: deleteUser,
		changePass: changePass,
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type UserEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type ChangePasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)
	if err := access.RequireSuperuser(actor); err != nil {
		httperr.Handle(c, err)
		return
	}

	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at").
		Find(&users).Error; err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	user, err := h.createUser.Execute(
		c.Request.Context(),
		actor,
		req.Email,
		req.Password,
		models.Role(req.Role),
	)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, user)
}

func (h *UserHandler) Approve(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var req UserEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	user, err := h.approve.Execute(c.Request.Context(), actor, req.Email)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "email query parameter is required")
		return
	}

	if err := h.deleteUser.Execute(c.Request.Context(), actor, email); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	if err := h.changePass.Execute(c.Request.Context(), actor, req.Email, req.NewPassword); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "password_changed"})
}
