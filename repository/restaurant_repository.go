package repository

import (
	"context"

	"foodserver/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

type RestaurantRow struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	UserOwner  string  `json:"userOwner"`
	Image      string  `json:"image"`
	PaymentURL string  `json:"paymentUrl"`
}

const restaurantColumns = "id, name, address, phone, lat, lng, user_owner, image, payment_url"

// GET /api/restaurants
func (r *RestaurantRepository) List(ctx context.Context) ([]RestaurantRow, error) {
	var out []RestaurantRow
	err := r.DB.WithContext(ctx).Model(&entity.Restaurant{}).
		Select(restaurantColumns).
		Scan(&out).Error
	return out, err
}

// GET /api/restaurants/restaurantById?restaurantId=
func (r *RestaurantRepository) GetByID(ctx context.Context, id uint) ([]RestaurantRow, error) {
	var out []RestaurantRow
	err := r.DB.WithContext(ctx).Model(&entity.Restaurant{}).
		Select(restaurantColumns).
		Where("id = ?", id).
		Scan(&out).Error
	return out, err
}

type MenuRow struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// GET /api/restaurants/menu?restaurantId= — menus joined through
// restaurant_menus.
func (r *RestaurantRepository) MenusOf(ctx context.Context, restaurantID uint) ([]MenuRow, error) {
	sub := r.DB.Table("restaurant_menus").Select("menu_id").Where("restaurant_id = ?", restaurantID)
	var out []MenuRow
	err := r.DB.WithContext(ctx).Model(&entity.Menu{}).
		Select("id, name, description, image").
		Where("id IN (?)", sub).
		Scan(&out).Error
	return out, err
}
