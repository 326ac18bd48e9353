package repository

import (
	"context"

	"foodserver/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

type FavoriteRow struct {
	FBID           string  `json:"fbid"`
	FoodID         uint    `json:"foodId"`
	RestaurantID   uint    `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	FoodName       string  `json:"foodName"`
	FoodImage      string  `json:"foodImage"`
	Price          float64 `json:"price"`
}

const favoriteColumns = "fbid, food_id, restaurant_id, restaurant_name, food_name, food_image, price"

// GET /api/foods/favorite?fbid=
func (r *FavoriteRepository) ListByFBID(ctx context.Context, fbid string) ([]FavoriteRow, error) {
	var out []FavoriteRow
	err := r.DB.WithContext(ctx).Model(&entity.Favorite{}).
		Select(favoriteColumns).
		Where("fbid = ?", fbid).
		Scan(&out).Error
	return out, err
}

// GET /api/foods/favoriteByRestaurant?fbid=&restaurantId=
func (r *FavoriteRepository) ListByFBIDAndRestaurant(ctx context.Context, fbid string, restaurantID uint) ([]FavoriteRow, error) {
	var out []FavoriteRow
	err := r.DB.WithContext(ctx).Model(&entity.Favorite{}).
		Select(favoriteColumns).
		Where("fbid = ? AND restaurant_id = ?", fbid, restaurantID).
		Scan(&out).Error
	return out, err
}

func (r *FavoriteRepository) Create(ctx context.Context, f *entity.Favorite) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

// Delete removes the row outright so the same favorite can be added
// again without tripping the identity index.
func (r *FavoriteRepository) Delete(ctx context.Context, fbid string, foodID, restaurantID uint) error {
	return r.DB.WithContext(ctx).Unscoped().
		Where("fbid = ? AND food_id = ? AND restaurant_id = ?", fbid, foodID, restaurantID).
		Delete(&entity.Favorite{}).Error
}
