package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table. Features and categories are
// stored as comma-joined text so substring filters can run server-side.
type RestaurantModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Location   string    `gorm:"type:varchar(255)"`
	Price      int       `gorm:"not null;default:0"`
	Rating     float64   `gorm:"not null;default:0"`
	Review     string    `gorm:"type:text"`
	Features   string    `gorm:"type:text"`
	Categories string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	MenuItems []*MenuItemModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
