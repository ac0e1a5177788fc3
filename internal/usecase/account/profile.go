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

// ProfilePatch carries the fields a profile update may touch. Nil
// pointers mean "leave as is". Rating arrives as a raw string so the
// rounding rules live in one place.
type ProfilePatch struct {
	RestaurantName     *string `json:"restaurant_name"`
	Reviews            *string `json:"reviews"`
	Photo              *string `json:"photo"`
	Telegram           *string `json:"telegram"`
	Rating             *string `json:"rating"`
	RestaurantCurrency *string `json:"restaurant_currency"`
	TablesAmount       *int    `json:"tables_amount"`
}

// UpdateProfile applies a patch to a profile and mirrors the shared
// fields onto the linked restaurant in the same transaction.
type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(repo domain.Repository, audit *audit.Dispatcher) *UpdateProfile {
	return &UpdateProfile{repo: repo, audit: audit}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	actor *models.User,
	email string,
	patch ProfilePatch,
) (*models.UserProfile, error) {

	if err := access.RequireSelfOrSuperuser(actor, email); err != nil {
		return nil, err
	}

	profile, err := uc.repo.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeProfileNotFound)
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if patch.RestaurantName != nil {
		profile.RestaurantName = patch.RestaurantName
	}
	if patch.Reviews != nil {
		profile.RestaurantReviews = patch.Reviews
	}
	if patch.Photo != nil {
		profile.RestaurantPhoto = patch.Photo
	}
	if patch.Telegram != nil {
		profile.Telegram = patch.Telegram
	}
	if patch.Rating != nil {
		rating, err := domain.ParseRating(*patch.Rating)
		if err != nil {
			return nil, err
		}
		profile.Rating = &rating
	}
	if patch.RestaurantCurrency != nil {
		profile.RestaurantCurrency = patch.RestaurantCurrency
	}
	if patch.TablesAmount != nil {
		if *patch.TablesAmount < 0 {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidArgument)
		}
		profile.TablesAmount = *patch.TablesAmount
	}

	// Name, photo, rating, currency and table count are shared with
	// the restaurant row; reviews and telegram live on the profile
	// only.
	var restaurant *models.Restaurant
	if profile.RestaurantID != nil {
		restaurant, err = uc.repo.GetRestaurantByID(ctx, *profile.RestaurantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
			}
			return nil, fmt.Errorf("load restaurant: %w", err)
		}
		if profile.RestaurantName != nil {
			restaurant.Name = *profile.RestaurantName
		}
		if profile.RestaurantPhoto != nil {
			restaurant.Photo = profile.RestaurantPhoto
		}
		if profile.Rating != nil {
			restaurant.Rating = *profile.Rating
		}
		if profile.RestaurantCurrency != nil {
			restaurant.Currency = *profile.RestaurantCurrency
		}
		restaurant.TablesAmount = profile.TablesAmount
	}

	if err := uc.repo.SaveProfileWithRestaurant(ctx, profile, restaurant); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:        actor.Email,
		Action:       "profile_updated",
		Entity:       "profile",
		EntityID:     profile.ID.String(),
		RestaurantID: profile.RestaurantID,
	})

	return profile, nil
}
