package repository

import (
	"context"

	"foodserver/entity"

	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

type FoodRow struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	IsAddon     bool    `json:"isAddon"`
	Discount    int     `json:"discount"`
}

const foodColumns = "id, name, description, image, price, is_addon, discount"

// GET /api/foods/food?menuId= — foods joined through menu_foods.
func (r *FoodRepository) ByMenu(ctx context.Context, menuID uint) ([]FoodRow, error) {
	sub := r.DB.Table("menu_foods").Select("food_id").Where("menu_id = ?", menuID)
	var out []FoodRow
	err := r.DB.WithContext(ctx).Model(&entity.Food{}).
		Select(foodColumns).
		Where("id IN (?)", sub).
		Scan(&out).Error
	return out, err
}

// GET /api/foods/foodById?foodId=
func (r *FoodRepository) ByID(ctx context.Context, foodID uint) ([]FoodRow, error) {
	var out []FoodRow
	err := r.DB.WithContext(ctx).Model(&entity.Food{}).
		Select(foodColumns).
		Where("id = ?", foodID).
		Scan(&out).Error
	return out, err
}

// GET /api/foods/searchFood?foodName= — wildcard wrapping on a bound
// parameter, never concatenated into the statement.
func (r *FoodRepository) Search(ctx context.Context, name string) ([]FoodRow, error) {
	var out []FoodRow
	err := r.DB.WithContext(ctx).Model(&entity.Food{}).
		Select(foodColumns).
		Where("name LIKE ?", "%"+name+"%").
		Scan(&out).Error
	return out, err
}

type SizeRow struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	ExtraPrice  float64 `json:"extraPrice"`
}

// GET /api/foods/size?foodId=
func (r *FoodRepository) SizesOf(ctx context.Context, foodID uint) ([]SizeRow, error) {
	sub := r.DB.Table("food_sizes").Select("size_id").Where("food_id = ?", foodID)
	var out []SizeRow
	err := r.DB.WithContext(ctx).Model(&entity.Size{}).
		Select("id, description, extra_price").
		Where("id IN (?)", sub).
		Scan(&out).Error
	return out, err
}

// GET /api/foods/addon?foodId=
func (r *FoodRepository) AddonsOf(ctx context.Context, foodID uint) ([]SizeRow, error) {
	sub := r.DB.Table("food_addons").Select("addon_id").Where("food_id = ?", foodID)
	var out []SizeRow
	err := r.DB.WithContext(ctx).Model(&entity.Addon{}).
		Select("id, description, extra_price").
		Where("id IN (?)", sub).
		Scan(&out).Error
	return out, err
}
