package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/audit"
	"github.com/plateful/restaurant-admin/internal/domain/access"
	domain "github.com/plateful/restaurant-admin/internal/domain/menu"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
)

// resolveOwnerRestaurant maps the actor's email to the restaurant
// linked to their profile, nil when the actor has no profile or the
// profile has no restaurant.
func resolveOwnerRestaurant(
	ctx context.Context,
	repo domain.Repository,
	actor *models.User,
) (*uint, error) {

	profile, err := repo.GetProfileByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile.RestaurantID, nil
}

// --------------------------------------------------
// List
// --------------------------------------------------

// ListDishes returns the menu of the restaurant identified by its
// owner's email, prices normalized.
type ListDishes struct {
	repo domain.Repository
}

func NewListDishes(repo domain.Repository) *ListDishes {
	return &ListDishes{repo: repo}
}

func (uc *ListDishes) Execute(
	ctx context.Context,
	actor *models.User,
	ownerEmail string,
) ([]models.Dish, error) {

	if err := access.RequireSelfOrSuperuser(actor, ownerEmail); err != nil {
		return nil, err
	}

	profile, err := uc.repo.GetProfileByEmail(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeProfileNotFound)
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile.RestaurantID == nil {
		return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
	}

	dishes, err := uc.repo.ListDishes(ctx, *profile.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	for i := range dishes {
		domain.NormalizeDish(&dishes[i])
	}
	return dishes, nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------

type CreateDishInput struct {
	RestaurantID uint            `json:"restaurant_id"`
	CategoryID   uint            `json:"category_id"`
	Name         string          `json:"name"`
	Photo        *string         `json:"photo"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Extra        models.Extra    `json:"extra"`
}

type CreateDish struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateDish(repo domain.Repository, audit *audit.Dispatcher) *CreateDish {
	return &CreateDish{repo: repo, audit: audit}
}

func (uc *CreateDish) Execute(
	ctx context.Context,
	actor *models.User,
	in CreateDishInput,
) (*models.Dish, error) {

	ownerRestaurantID, err := resolveOwnerRestaurant(ctx, uc.repo, actor)
	if err != nil {
		return nil, err
	}
	if err := access.RequireRestaurantOwnership(actor, ownerRestaurantID, in.RestaurantID); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetRestaurantByID(ctx, in.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
		}
		return nil, fmt.Errorf("load restaurant: %w", err)
	}
	if _, err := uc.repo.GetCategory(ctx, in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeCategoryNotFound)
		}
		return nil, fmt.Errorf("load category: %w", err)
	}

	dish := &models.Dish{
		RestaurantID: in.RestaurantID,
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Photo:        in.Photo,
		Description:  in.Description,
		Price:        in.Price,
		Extra:        in.Extra,
	}
	domain.NormalizeDish(dish)

	if err := uc.repo.CreateDish(ctx, dish); err != nil {
		return nil, fmt.Errorf("create dish: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:        actor.Email,
		Action:       "dish_created",
		Entity:       "dish",
		EntityID:     fmt.Sprint(dish.ID),
		RestaurantID: &dish.RestaurantID,
	})

	return dish, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

// DishPatch carries the fields a dish update may touch. Nil pointers
// mean "leave as is". RestaurantID is honored for superusers only;
// anyone else asking for it is refused outright.
type DishPatch struct {
	RestaurantID *uint            `json:"restaurant_id"`
	CategoryID   *uint            `json:"category_id"`
	Name         *string          `json:"name"`
	Photo        *string          `json:"photo"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Extra        *models.Extra    `json:"extra"`
}

type UpdateDish struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateDish(repo domain.Repository, audit *audit.Dispatcher) *UpdateDish {
	return &UpdateDish{repo: repo, audit: audit}
}

func (uc *UpdateDish) Execute(
	ctx context.Context,
	actor *models.User,
	dishID uint,
	patch DishPatch,
) (*models.Dish, error) {

	dish, err := uc.repo.GetDish(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeDishNotFound)
		}
		return nil, fmt.Errorf("load dish: %w", err)
	}

	ownerRestaurantID, err := resolveOwnerRestaurant(ctx, uc.repo, actor)
	if err != nil {
		return nil, err
	}
	if err := access.RequireRestaurantOwnership(actor, ownerRestaurantID, dish.RestaurantID); err != nil {
		return nil, err
	}

	if patch.RestaurantID != nil {
		if !access.CanReassignRestaurant(actor) {
			return nil, httperr.ErrBusiness(httperr.CodeForbidden)
		}
		if _, err := uc.repo.GetRestaurantByID(ctx, *patch.RestaurantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
			}
			return nil, fmt.Errorf("load restaurant: %w", err)
		}
		dish.RestaurantID = *patch.RestaurantID
	}
	if patch.CategoryID != nil {
		if _, err := uc.repo.GetCategory(ctx, *patch.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness(httperr.CodeCategoryNotFound)
			}
			return nil, fmt.Errorf("load category: %w", err)
		}
		dish.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		dish.Name = *patch.Name
	}
	if patch.Photo != nil {
		dish.Photo = patch.Photo
	}
	if patch.Description != nil {
		dish.Description = *patch.Description
	}
	if patch.Price != nil {
		dish.Price = *patch.Price
	}
	if patch.Extra != nil {
		dish.Extra = *patch.Extra
	}
	domain.NormalizeDish(dish)

	if err := uc.repo.SaveDish(ctx, dish); err != nil {
		return nil, fmt.Errorf("save dish: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:        actor.Email,
		Action:       "dish_updated",
		Entity:       "dish",
		EntityID:     fmt.Sprint(dish.ID),
		RestaurantID: &dish.RestaurantID,
	})

	return dish, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

type DeleteDish struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteDish(repo domain.Repository, audit *audit.Dispatcher) *DeleteDish {
	return &DeleteDish{repo: repo, audit: audit}
}

func (uc *DeleteDish) Execute(
	ctx context.Context,
	actor *models.User,
	dishID uint,
) error {

	dish, err := uc.repo.GetDish(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness(httperr.CodeDishNotFound)
		}
		return fmt.Errorf("load dish: %w", err)
	}

	ownerRestaurantID, err := resolveOwnerRestaurant(ctx, uc.repo, actor)
	if err != nil {
		return err
	}
	if err := access.RequireRestaurantOwnership(actor, ownerRestaurantID, dish.RestaurantID); err != nil {
		return err
	}

	if err := uc.repo.DeleteDish(ctx, dishID); err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:        actor.Email,
		Action:       "dish_deleted",
		Entity:       "dish",
		EntityID:     fmt.Sprint(dishID),
		RestaurantID: &dish.RestaurantID,
	})

	return nil
}
