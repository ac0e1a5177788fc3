package models

// Category is a shared lookup table; it is not owned by any restaurant.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}
