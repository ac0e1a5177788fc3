package account

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/audit"
	"github.com/plateful/restaurant-admin/internal/domain/access"
	domain "github.com/plateful/restaurant-admin/internal/domain/account"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
)

// ApproveUser flips a pending account to approved. Superuser only.
type ApproveUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApproveUser(repo domain.Repository, audit *audit.Dispatcher) *ApproveUser {
	return &ApproveUser{repo: repo, audit: audit}
}

func (uc *ApproveUser) Execute(
	ctx context.Context,
	actor *models.User,
	email string,
) (*models.User, error) {

	if err := access.RequireSuperuser(actor); err != nil {
		return nil, err
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	user.Approved = true
	if err := uc.repo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "user_approved",
		Entity:   "user",
		EntityID: user.ID.String(),
	})

	return user, nil
}
