package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserProfile carries the restaurant display metadata for a
// restaurant-role user. The restaurant_* fields are denormalized copies
// kept in sync with the linked Restaurant row by dual-write on update.
type UserProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	RestaurantID *uint     `json:"restaurant_id"`

	RestaurantName     *string          `gorm:"size:255" json:"restaurant_name"`
	RestaurantReviews  *string          `gorm:"size:255" json:"restaurant_reviews"`
	RestaurantPhoto    *string          `gorm:"size:255" json:"restaurant_photo"`
	Telegram           *string          `gorm:"size:255" json:"telegram"`
	Rating             *decimal.Decimal `gorm:"type:numeric(2,1)" json:"rating"`
	RestaurantCurrency *string          `gorm:"size:10" json:"restaurant_currency"`
	TablesAmount       int              `gorm:"not null" json:"tables_amount"`

	User       *User       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
