package menu_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/usecase/menu"
)

func TestCreateCategorySuperuserOnly(t *testing.T) {
	f := newFixture(t)
	owner, _ := f.seedOwner(t, "owner@cafe.test")
	uc := menu.NewCreateCategory(f.repo, f.audit)

	_, err := uc.Execute(context.Background(), owner, "Mains")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	category, err := uc.Execute(context.Background(), f.admin, "Mains")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Mains", category.Name)
}

func TestCreateCategoryEmptyName(t *testing.T) {
	f := newFixture(t)
	uc := menu.NewCreateCategory(f.repo, f.audit)

	_, err := uc.Execute(context.Background(), f.admin, "")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidArgument))
}

func TestListCategories(t *testing.T) {
	f := newFixture(t)
	f.seedCategory(t, "Mains")
	f.seedCategory(t, "Desserts")
	uc := menu.NewListCategories(f.repo)

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	names := make(map[string]bool, len(got))
	for _, name := range got {
		names[name] = true
	}
	assert.True(t, names["Mains"])
	assert.True(t, names["Desserts"])
}

func TestListCategoriesForRestaurant(t *testing.T) {
	f := newFixture(t)
	owner, restaurant := f.seedOwner(t, "owner@cafe.test")
	mains := f.seedCategory(t, "Mains")
	f.seedCategory(t, "Desserts")

	create := menu.NewCreateDish(f.repo, f.audit)
	_, err := create.Execute(context.Background(), owner, menu.CreateDishInput{
		RestaurantID: restaurant.ID,
		CategoryID:   mains.ID,
		Name:         "Borscht",
		Price:        dec("5"),
	})
	require.NoError(t, err)

	uc := menu.NewListCategories(f.repo)
	got, err := uc.ExecuteForRestaurant(context.Background(), restaurant.ID)
	require.NoError(t, err)

	// Only categories with at least one dish show up.
	require.Len(t, got, 1)
	assert.Equal(t, "Mains", got[mains.ID])
}

func TestListCategoriesForUnknownRestaurant(t *testing.T) {
	f := newFixture(t)
	uc := menu.NewListCategories(f.repo)

	_, err := uc.ExecuteForRestaurant(context.Background(), 999)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeRestaurantNotFound))
}
