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
	"github.com/plateful/restaurant-admin/internal/photostore"
)

// CreateUser lets a superuser provision accounts directly. Restaurant
// accounts get the full owner aggregate; superuser accounts are bare
// users, already approved.
type CreateUser struct {
	repo   domain.Repository
	photos photostore.Store
	audit  *audit.Dispatcher
}

func NewCreateUser(
	repo domain.Repository,
	photos photostore.Store,
	audit *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		repo:   repo,
		photos: photos,
		audit:  audit,
	}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	actor *models.User,
	email string,
	password string,
	role models.Role,
) (*models.User, error) {

	if err := access.RequireSuperuser(actor); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRole)
	}

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
		Role:           role,
		Approved:       role == models.RoleSuperuser,
	}

	if role == models.RoleSuperuser {
		if err := uc.repo.CreateUser(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, httperr.ErrBusiness(httperr.CodeDuplicateEmail)
			}
			return nil, fmt.Errorf("create user: %w", err)
		}
	} else {
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
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "user_created",
		Entity:   "user",
		EntityID: user.ID.String(),
		Metadata: map[string]string{"role": string(role)},
	})

	return user, nil
}
