package entity

import (
	"gorm.io/gorm"
)

// Favorite is a denormalized snapshot taken at the time of favoriting.
// RestaurantName, FoodName, FoodImage and Price are never refreshed from
// the catalog rows they were copied from.
type Favorite struct {
	gorm.Model
	FBID         string `gorm:"size:16;uniqueIndex:idx_favorite_identity;not null" json:"fbid"`
	FoodID       uint   `gorm:"uniqueIndex:idx_favorite_identity;not null" json:"foodId"`
	RestaurantID uint   `gorm:"uniqueIndex:idx_favorite_identity;not null" json:"restaurantId"`

	RestaurantName string  `json:"restaurantName"`
	FoodName       string  `json:"foodName"`
	FoodImage      string  `json:"foodImage"`
	Price          float64 `json:"price"`
}
