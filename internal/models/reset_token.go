package models

import (
	"time"

	"github.com/google/uuid"
)

// ResetToken is a single-use password reset credential. It is deleted
// on redemption or when found expired.
type ResetToken struct {
	Token      string    `gorm:"primaryKey;size:255" json:"token"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ExpiryTime time.Time `gorm:"not null" json:"expiry_time"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiryTime)
}
