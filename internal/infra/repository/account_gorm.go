package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/models"
)

// DefaultRestaurantName is the placeholder a new owner's restaurant is
// created with; the owner renames it through the profile update.
const DefaultRestaurantName = "Default Restaurant Name"

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AccountGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) GetUserByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AccountGormRepository) SaveUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *AccountGormRepository) CreateOwnerAggregate(
	ctx context.Context,
	user *models.User,
) (*models.UserProfile, *models.Restaurant, error) {

	var (
		profile    models.UserProfile
		restaurant models.Restaurant
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile = models.UserProfile{
			UserID:       user.ID,
			TablesAmount: 0,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		restaurant = models.Restaurant{
			Name:         DefaultRestaurantName,
			Rating:       decimal.New(0, -1),
			Currency:     "USD",
			TablesAmount: 0,
		}
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}

		profile.RestaurantID = &restaurant.ID
		return tx.Model(&profile).
			Update("restaurant_id", restaurant.ID).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &profile, &restaurant, nil
}

func (r *AccountGormRepository) DeleteUserCascade(
	ctx context.Context,
	user *models.User,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.UserProfile
		err := tx.Where("user_id = ?", user.ID).First(&profile).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		// Restaurant artifacts go first so the user-side cascade can
		// never leave a dangling restaurant.
		if err == nil && profile.RestaurantID != nil {
			restaurantID := *profile.RestaurantID
			if err := tx.Where("restaurant_id = ?", restaurantID).
				Delete(&models.Dish{}).Error; err != nil {
				return err
			}
			// Deleting a restaurant orphans every profile pointing at
			// it, so those rows go too.
			if err := tx.Where("restaurant_id = ?", restaurantID).
				Delete(&models.UserProfile{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Restaurant{}, restaurantID).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", user.ID).
			Delete(&models.ResetToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).
			Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", user.ID).Error
	})
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *AccountGormRepository) GetProfileByEmail(
	ctx context.Context,
	email string,
) (*models.UserProfile, error) {

	var profile models.UserProfile
	if err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = user_profiles.user_id").
		Where("users.email = ?", email).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *AccountGormRepository) SaveProfileWithRestaurant(
	ctx context.Context,
	profile *models.UserProfile,
	restaurant *models.Restaurant,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(profile).Error; err != nil {
			return err
		}
		if restaurant != nil {
			return tx.Save(restaurant).Error
		}
		return nil
	})
}

func (r *AccountGormRepository) GetRestaurantByID(
	ctx context.Context,
	id uint,
) (*models.Restaurant, error) {

	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// --------------------------------------------------
// Reset tokens
// --------------------------------------------------

func (r *AccountGormRepository) CreateResetToken(
	ctx context.Context,
	token *models.ResetToken,
) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *AccountGormRepository) GetResetToken(
	ctx context.Context,
	token string,
) (*models.ResetToken, error) {

	var rt models.ResetToken
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *AccountGormRepository) DeleteResetToken(
	ctx context.Context,
	token string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.ResetToken{}, "token = ?", token).Error
}
