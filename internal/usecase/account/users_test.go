package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/usecase/account"
)

func TestCreateUserSuperuserRole(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "admin@plateful.app", "admin123", models.RoleSuperuser, true)
	uc := account.NewCreateUser(f.repo, f.photos, f.audit)

	user, err := uc.Execute(context.Background(), admin, "second@plateful.app", "secret123", models.RoleSuperuser)
	require.NoError(t, err)

	assert.True(t, user.Approved)

	// No profile, no restaurant for superusers.
	_, err = f.repo.GetProfileByEmail(context.Background(), "second@plateful.app")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateUserRestaurantRole(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "admin@plateful.app", "admin123", models.RoleSuperuser, true)
	uc := account.NewCreateUser(f.repo, f.photos, f.audit)

	user, err := uc.Execute(context.Background(), admin, "owner@cafe.test", "secret123", models.RoleRestaurant)
	require.NoError(t, err)
	assert.False(t, user.Approved)

	profile, err := f.repo.GetProfileByEmail(context.Background(), "owner@cafe.test")
	require.NoError(t, err)
	require.NotNil(t, profile.RestaurantID)
	assert.True(t, f.photos.has(*profile.RestaurantID))
}

func TestCreateUserForbiddenForNonSuperuser(t *testing.T) {
	f := newFixture(t)
	owner, _, _ := f.seedOwner(t, "owner@cafe.test", "secret123")
	uc := account.NewCreateUser(f.repo, f.photos, f.audit)

	_, err := uc.Execute(context.Background(), owner, "new@cafe.test", "secret123", models.RoleRestaurant)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestCreateUserInvalidRole(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "admin@plateful.app", "admin123", models.RoleSuperuser, true)
	uc := account.NewCreateUser(f.repo, f.photos, f.audit)

	_, err := uc.Execute(context.Background(), admin, "x@cafe.test", "secret123", models.Role("manager"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRole))
}

func TestApproveUser(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "admin@plateful.app", "admin123", models.RoleSuperuser, true)
	f.seedOwner(t, "owner@cafe.test", "secret123")
	uc := account.NewApproveUser(f.repo, f.audit)

	user, err := uc.Execute(context.Background(), admin, "owner@cafe.test")
	require.NoError(t, err)
	assert.True(t, user.Approved)

	// Idempotent.
	user, err = uc.Execute(context.Background(), admin, "owner@cafe.test")
	require.NoError(t, err)
	assert.True(t, user.Approved)
}

func TestApproveUserNotFound(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "admin@plateful.app", "admin123", models.RoleSuperuser, true)
	uc := account.NewApproveUser(f.repo, f.audit)

	_, err := uc.Execute(context.Background(), admin, "ghost@cafe.test")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUserNotFound))
}

func TestApproveUserForbidden(t *testing.T) {
	f := newFixture(t)
	owner, _, _ := f.seedOwner(t, "owner@cafe.test", "secret123")
	uc := account.NewApproveUser(f.repo, f.audit)

	_, err := uc.Execute(context.Background(), owner, "owner@cafe.test")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestDeleteUserCascades(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "admin@plateful.app", "admin123", models.RoleSuperuser, true)
	owner, profile, restaurant := f.seedOwner(t, "owner@cafe.test", "secret123")

	category := &models.Category{Name: "Mains"}
	require.NoError(t, f.db.Create(category).Error)
	dish := &models.Dish{
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
		Name:         "Borscht",
		Description:  "beet soup",
	}
	require.NoError(t, f.db.Create(dish).Error)

	rt := &models.ResetToken{Token: "tok", UserID: owner.ID}
	require.NoError(t, f.db.Create(rt).Error)

	uc := account.NewDeleteUser(f.repo, f.photos, f.audit)
	require.NoError(t, uc.Execute(context.Background(), admin, "owner@cafe.test"))

	var count int64
	f.db.Model(&models.User{}).Where("email = ?", "owner@cafe.test").Count(&count)
	assert.Zero(t, count)
	f.db.Model(&models.UserProfile{}).Where("id = ?", profile.ID).Count(&count)
	assert.Zero(t, count)
	f.db.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).Count(&count)
	assert.Zero(t, count)
	f.db.Model(&models.Dish{}).Where("restaurant_id = ?", restaurant.ID).Count(&count)
	assert.Zero(t, count)
	f.db.Model(&models.ResetToken{}).Where("user_id = ?", owner.ID).Count(&count)
	assert.Zero(t, count)

	// Categories survive their dishes.
	f.db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	assert.False(t, f.photos.has(restaurant.ID))
}

func TestDeleteUserForbidden(t *testing.T) {
	f := newFixture(t)
	owner, _, _ := f.seedOwner(t, "owner@cafe.test", "secret123")
	uc := account.NewDeleteUser(f.repo, f.photos, f.audit)

	err := uc.Execute(context.Background(), owner, "owner@cafe.test")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestDeleteUserNotFound(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "admin@plateful.app", "admin123", models.RoleSuperuser, true)
	uc := account.NewDeleteUser(f.repo, f.photos, f.audit)

	err := uc.Execute(context.Background(), admin, "ghost@cafe.test")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUserNotFound))
}
