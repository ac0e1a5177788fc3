package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/plateful/restaurant-admin/internal/models"
)

// Repository is the storage surface of the account aggregate. The
// multi-row operations are transactional: either every row lands or
// none does.
type Repository interface {
	// -------- User --------
	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetUserByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	SaveUser(
		ctx context.Context,
		user *models.User,
	) error

	// CreateOwnerAggregate creates the user, its profile and the
	// default restaurant in one transaction and backfills
	// profile.restaurant_id.
	CreateOwnerAggregate(
		ctx context.Context,
		user *models.User,
	) (*models.UserProfile, *models.Restaurant, error)

	// DeleteUserCascade removes, in one transaction, the linked
	// restaurant (with its dishes and profiles) and then the user row
	// with its profile and reset tokens.
	DeleteUserCascade(
		ctx context.Context,
		user *models.User,
	) error

	// -------- Profile --------
	GetProfileByEmail(
		ctx context.Context,
		email string,
	) (*models.UserProfile, error)

	// SaveProfileWithRestaurant persists the profile and, when non-nil,
	// the restaurant dual-write in one transaction.
	SaveProfileWithRestaurant(
		ctx context.Context,
		profile *models.UserProfile,
		restaurant *models.Restaurant,
	) error

	GetRestaurantByID(
		ctx context.Context,
		id uint,
	) (*models.Restaurant, error)

	// -------- Reset tokens --------
	CreateResetToken(
		ctx context.Context,
		token *models.ResetToken,
	) error

	GetResetToken(
		ctx context.Context,
		token string,
	) (*models.ResetToken, error)

	DeleteResetToken(
		ctx context.Context,
		token string,
	) error
}
