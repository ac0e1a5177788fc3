package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		Actor:        ev.Actor,
		Action:       ev.Action,
		Entity:       ev.Entity,
		EntityID:     ev.EntityID,
		RestaurantID: ev.RestaurantID,
		Metadata:     metaJSON,
	}

	return l.db.Create(&row).Error
}
