package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/httperr"
)

// Role is the closed set of user roles. Anything else is rejected
// before it ever reaches the database.
type Role string

const (
	RoleSuperuser  Role = "superuser"
	RoleRestaurant Role = "restaurant"
)

func (r Role) Valid() bool {
	return r == RoleSuperuser || r == RoleRestaurant
}

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	Role           Role      `gorm:"size:20;not null;index" json:"role"`
	Approved       bool      `gorm:"not null;default:false" json:"approved"`

	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if !u.Role.Valid() {
		return httperr.ErrBusiness(httperr.CodeInvalidRole)
	}
	return nil
}
