package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	UserName     string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	// RefreshTokenHash is NULL when the user has no active session.
	RefreshTokenHash *string `gorm:"type:varchar(255)"`
	Role             string  `gorm:"type:varchar(20);not null;default:'USER'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Restaurants []*RestaurantModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserFavouriteRestaurantModel mirrors the 'user_favourite_restaurants' join table.
type UserFavouriteRestaurantModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserFavouriteRestaurantModel) TableName() string {
	return "user_favourite_restaurants"
}

// UserFavouriteMenuItemModel mirrors the 'user_favourite_menu_items' join table.
type UserFavouriteMenuItemModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserFavouriteMenuItemModel) TableName() string {
	return "user_favourite_menu_items"
}
