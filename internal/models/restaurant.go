package models

import "github.com/shopspring/decimal"

type Restaurant struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Photo        *string         `gorm:"size:255" json:"photo"`
	Rating       decimal.Decimal `gorm:"type:numeric(2,1);not null" json:"rating"`
	Currency     string          `gorm:"size:10;not null;default:'USD'" json:"currency"`
	TablesAmount int             `gorm:"not null" json:"tables_amount"`

	Dishes []Dish `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
}
