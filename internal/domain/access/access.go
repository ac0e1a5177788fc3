package access

import (
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
)

// Pure authorization decisions, evaluated before any state change or
// sensitive read. Rules in priority order: superuser passes everything;
// self-service requires the actor to own the target; everything else is
// forbidden.

// RequireSuperuser gates superuser-only operations.
func RequireSuperuser(actor *models.User) error {
	if actor == nil || actor.Role != models.RoleSuperuser {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}

// RequireSelfOrSuperuser gates operations a user may run against their
// own records, identified by the owner's email.
func RequireSelfOrSuperuser(actor *models.User, ownerEmail string) error {
	if actor == nil {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	if actor.Role == models.RoleSuperuser {
		return nil
	}
	if actor.Email == ownerEmail {
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeForbidden)
}

// RequireRestaurantOwnership gates dish operations: the actor must be a
// superuser or own the restaurant the dish belongs to. ownerRestaurantID
// is the restaurant linked to the actor's own profile, nil when the
// actor has none.
func RequireRestaurantOwnership(actor *models.User, ownerRestaurantID *uint, restaurantID uint) error {
	if actor == nil {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	if actor.Role == models.RoleSuperuser {
		return nil
	}
	if ownerRestaurantID != nil && *ownerRestaurantID == restaurantID {
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeForbidden)
}

// CanReassignRestaurant reports whether the actor may move a dish to a
// different restaurant. Only superusers may.
func CanReassignRestaurant(actor *models.User) bool {
	return actor != nil && actor.Role == models.RoleSuperuser
}
