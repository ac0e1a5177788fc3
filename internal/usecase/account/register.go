package account

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/audit"
	"github.com/plateful/restaurant-admin/internal/auth"
	domain "github.com/plateful/restaurant-admin/internal/domain/account"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/photostore"
	"github.com/plateful/restaurant-admin/internal/validators"
)

// RegisterOwner creates the restaurant-owner aggregate: a pending
// user, its profile and a default restaurant, linked together in one
// transaction, plus a fresh photo namespace for the new restaurant.
type RegisterOwner struct {
	repo   domain.Repository
	photos photostore.Store
	audit  *audit.Dispatcher
}

func NewRegisterOwner(
	repo domain.Repository,
	photos photostore.Store,
	audit *audit.Dispatcher,
) *RegisterOwner {
	return &RegisterOwner{
		repo:   repo,
		photos: photos,
		audit:  audit,
	}
}

func (uc *RegisterOwner) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	if !validators.IsEmailValid(email) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidArgument)
	}

	// Checked before any write; a concurrent duplicate still trips the
	// unique index inside the transaction below.
	_, err := uc.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateEmail)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:          email,
		HashedPassword: hashed,
		Role:           models.RoleRestaurant,
		Approved:       false,
	}

	_, restaurant, err := uc.repo.CreateOwnerAggregate(ctx, user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness(httperr.CodeDuplicateEmail)
		}
		return nil, fmt.Errorf("create owner aggregate: %w", err)
	}

	if err := uc.photos.CreateNamespace(restaurant.ID); err != nil {
		return nil, fmt.Errorf("provision photo namespace: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:        email,
		Action:       "user_registered",
		Entity:       "user",
		EntityID:     user.ID.String(),
		RestaurantID: &restaurant.ID,
	})

	return user, nil
}
