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
	"github.com/plateful/restaurant-admin/internal/logger"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/photostore"

	"go.uber.org/zap"
)

// DeleteUser removes an account and everything hanging off it: reset
// tokens, the profile, and for restaurant owners the restaurant with
// its dishes and photo namespace. Superuser only.
type DeleteUser struct {
	repo   domain.Repository
	photos photostore.Store
	audit  *audit.Dispatcher
}

func NewDeleteUser(
	repo domain.Repository,
	photos photostore.Store,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{
		repo:   repo,
		photos: photos,
		audit:  audit,
	}
}

func (uc *DeleteUser) Execute(
	ctx context.Context,
	actor *models.User,
	email string,
) error {

	if err := access.RequireSuperuser(actor); err != nil {
		return err
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness(httperr.CodeUserNotFound)
		}
		return fmt.Errorf("load user: %w", err)
	}

	var restaurantID *uint
	profile, err := uc.repo.GetProfileByEmail(ctx, email)
	if err == nil {
		restaurantID = profile.RestaurantID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load profile: %w", err)
	}

	// Photos go first: losing orphaned files is acceptable, leaking a
	// namespace for a deleted restaurant is not.
	if restaurantID != nil {
		if err := uc.photos.RemoveNamespace(*restaurantID); err != nil {
			logger.Warn("failed to remove photo namespace",
				zap.Uint("restaurant_id", *restaurantID),
				zap.Error(err),
			)
		}
	}

	if err := uc.repo.DeleteUserCascade(ctx, user); err != nil {
		return fmt.Errorf("delete user cascade: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:        actor.Email,
		Action:       "user_deleted",
		Entity:       "user",
		EntityID:     user.ID.String(),
		RestaurantID: restaurantID,
	})

	return nil
}
