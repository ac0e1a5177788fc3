package menu

import (
	"context"

	"github.com/plateful/restaurant-admin/internal/models"
)

type Repository interface {
	// -------- Ownership resolution --------
	GetProfileByEmail(
		ctx context.Context,
		email string,
	) (*models.UserProfile, error)

	GetRestaurantByID(
		ctx context.Context,
		id uint,
	) (*models.Restaurant, error)

	// -------- Dishes --------
	ListDishes(
		ctx context.Context,
		restaurantID uint,
	) ([]models.Dish, error)

	GetDish(
		ctx context.Context,
		dishID uint,
	) (*models.Dish, error)

	CreateDish(
		ctx context.Context,
		dish *models.Dish,
	) error

	SaveDish(
		ctx context.Context,
		dish *models.Dish,
	) error

	DeleteDish(
		ctx context.Context,
		dishID uint,
	) error

	// -------- Categories --------
	GetCategory(
		ctx context.Context,
		categoryID uint,
	) (*models.Category, error)

	ListCategories(
		ctx context.Context,
	) ([]models.Category, error)

	// ListCategoriesForRestaurant returns only categories referenced by
	// at least one dish of the restaurant.
	ListCategoriesForRestaurant(
		ctx context.Context,
		restaurantID uint,
	) ([]models.Category, error)

	CreateCategory(
		ctx context.Context,
		category *models.Category,
	) error
}
