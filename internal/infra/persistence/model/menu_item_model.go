package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Rating       float64   `gorm:"not null;default:0"`
	Review       string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
