package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/models"
)

type MenuGormRepository struct {
	db *gorm.DB
}

func NewMenuGormRepository(db *gorm.DB) *MenuGormRepository {
	return &MenuGormRepository{db: db}
}

// --------------------------------------------------
// Ownership resolution
// --------------------------------------------------

func (r *MenuGormRepository) GetProfileByEmail(
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

func (r *MenuGormRepository) GetRestaurantByID(
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
// Dishes
// --------------------------------------------------

func (r *MenuGormRepository) ListDishes(
	ctx context.Context,
	restaurantID uint,
) ([]models.Dish, error) {

	var dishes []models.Dish
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id ASC").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *MenuGormRepository) GetDish(
	ctx context.Context,
	dishID uint,
) (*models.Dish, error) {

	var dish models.Dish
	if err := r.db.WithContext(ctx).First(&dish, dishID).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *MenuGormRepository) CreateDish(
	ctx context.Context,
	dish *models.Dish,
) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *MenuGormRepository) SaveDish(
	ctx context.Context,
	dish *models.Dish,
) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *MenuGormRepository) DeleteDish(
	ctx context.Context,
	dishID uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Dish{}, dishID).Error
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *MenuGormRepository) GetCategory(
	ctx context.Context,
	categoryID uint,
) (*models.Category, error) {

	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, categoryID).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *MenuGormRepository) ListCategories(
	ctx context.Context,
) ([]models.Category, error) {

	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MenuGormRepository) ListCategoriesForRestaurant(
	ctx context.Context,
	restaurantID uint,
) ([]models.Category, error) {

	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Joins("JOIN dishes ON dishes.category_id = categories.id").
		Where("dishes.restaurant_id = ?", restaurantID).
		Distinct("categories.id", "categories.name").
		Order("categories.id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MenuGormRepository) CreateCategory(
	ctx context.Context,
	category *models.Category,
) error {
	return r.db.WithContext(ctx).Create(category).Error
}
