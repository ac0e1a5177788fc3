package account

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/audit"
	"github.com/plateful/restaurant-admin/internal/auth"
	"github.com/plateful/restaurant-admin/internal/domain/access"
	domain "github.com/plateful/restaurant-admin/internal/domain/account"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
)

// ChangePassword overwrites an account's password. The caller must be
// the account itself or a superuser; the old password is not asked
// for.
type ChangePassword struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangePassword(repo domain.Repository, audit *audit.Dispatcher) *ChangePassword {
	return &ChangePassword{repo: repo, audit: audit}
}

func (uc *ChangePassword) Execute(
	ctx context.Context,
	actor *models.User,
	email string,
	newPassword string,
) error {

	if err := access.RequireSelfOrSuperuser(actor, email); err != nil {
		return err
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness(httperr.CodeUserNotFound)
		}
		return fmt.Errorf("load user: %w", err)
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.HashedPassword = hashed
	if err := uc.repo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "password_changed",
		Entity:   "user",
		EntityID: user.ID.String(),
	})

	return nil
}
