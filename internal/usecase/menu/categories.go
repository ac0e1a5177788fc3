package menu

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/audit"
	"github.com/plateful/restaurant-admin/internal/domain/access"
	domain "github.com/plateful/restaurant-admin/internal/domain/menu"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
)

// ListCategories returns the id-to-name map of categories. With a
// restaurant scope, only categories referenced by at least one of its
// dishes are included.
type ListCategories struct {
	repo domain.Repository
}

func NewListCategories(repo domain.Repository) *ListCategories {
	return &ListCategories{repo: repo}
}

func (uc *ListCategories) Execute(ctx context.Context) (map[uint]string, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categoryMap(categories), nil
}

func (uc *ListCategories) ExecuteForRestaurant(
	ctx context.Context,
	restaurantID uint,
) (map[uint]string, error) {

	if _, err := uc.repo.GetRestaurantByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
		}
		return nil, fmt.Errorf("load restaurant: %w", err)
	}

	categories, err := uc.repo.ListCategoriesForRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list restaurant categories: %w", err)
	}
	return categoryMap(categories), nil
}

func categoryMap(categories []models.Category) map[uint]string {
	out := make(map[uint]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Name
	}
	return out
}

// CreateCategory adds a menu category to the global catalog. Superuser
// only.
type CreateCategory struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCategory(repo domain.Repository, audit *audit.Dispatcher) *CreateCategory {
	return &CreateCategory{repo: repo, audit: audit}
}

func (uc *CreateCategory) Execute(
	ctx context.Context,
	actor *models.User,
	name string,
) (*models.Category, error) {

	if err := access.RequireSuperuser(actor); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidArgument)
	}

	category := &models.Category{Name: name}
	if err := uc.repo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidArgument)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "category_created",
		Entity:   "category",
		EntityID: fmt.Sprint(category.ID),
	})

	return category, nil
}
