package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Actor        string `gorm:"size:255" json:"actor"`
	Action       string `gorm:"size:50;not null" json:"action"`
	Entity       string `gorm:"size:50" json:"entity"`
	EntityID     string `gorm:"size:64" json:"entity_id"`
	RestaurantID *uint  `json:"restaurant_id"`
	Metadata     string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
