package menu_test

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/audit"
	"github.com/plateful/restaurant-admin/internal/infra/repository"
	"github.com/plateful/restaurant-admin/internal/models"
	"github.com/plateful/restaurant-admin/internal/testutil"
)

type fixture struct {
	db    *gorm.DB
	repo  *repository.MenuGormRepository
	audit *audit.Dispatcher

	admin *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	f := &fixture{
		db:    db,
		repo:  repository.NewMenuGormRepository(db),
		audit: audit.NewDispatcher(audit.New(db)),
	}

	f.admin = &models.User{Email: "admin@plateful.app", Role: models.RoleSuperuser, Approved: true}
	if err := db.Create(f.admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return f
}

// seedOwner creates a restaurant user with a linked restaurant and
// returns both.
func (f *fixture) seedOwner(t *testing.T, email string) (*models.User, *models.Restaurant) {
	t.Helper()

	accountRepo := repository.NewAccountGormRepository(f.db)
	user := &models.User{
		Email:          email,
		HashedPassword: "x",
		Role:           models.RoleRestaurant,
	}
	_, restaurant, err := accountRepo.CreateOwnerAggregate(context.Background(), user)
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	return user, restaurant
}

func (f *fixture) seedCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	if err := f.db.Create(c).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}
