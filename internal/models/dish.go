package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ExtraOption is one optional add-on for a dish. On the wire it is a
// two-element array: [description, price].
type ExtraOption struct {
	Description string
	Price       decimal.Decimal
}

func (o ExtraOption) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{o.Description, o.Price})
}

func (o *ExtraOption) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &o.Description); err != nil {
		return err
	}
	if len(pair[1]) == 0 {
		return errors.New("extra option price missing")
	}
	return json.Unmarshal(pair[1], &o.Price)
}

// Extra maps option name to its [description, price] pair and is stored
// as a JSON column.
type Extra map[string]ExtraOption

func (e Extra) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	b, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (e *Extra) Scan(value any) error {
	if value == nil {
		*e = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	default:
		return fmt.Errorf("unsupported extra column type %T", value)
	}
}

type Dish struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id"`
	CategoryID   uint `gorm:"not null;index" json:"category_id"`

	Name        string          `gorm:"size:255;not null" json:"name"`
	Photo       *string         `gorm:"size:255" json:"photo"`
	Description string          `gorm:"size:1024;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Extra       Extra           `gorm:"type:json" json:"extra"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	Category   *Category   `gorm:"foreignKey:CategoryID" json:"-"`
}
