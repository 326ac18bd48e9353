package entity

import (
	"gorm.io/gorm"
)

// OrderDetail is one line item of an order. The (order_id, food_id) pair
// is unique per order, so re-submitting a batch in append mode conflicts
// instead of silently duplicating rows.
type OrderDetail struct {
	gorm.Model
	OrderID    uint    `gorm:"uniqueIndex:idx_order_food;not null" json:"orderId"`
	FoodID     uint    `gorm:"uniqueIndex:idx_order_food;not null" json:"foodId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Discount   int     `json:"discount"`
	Size       string  `gorm:"size:50" json:"size"`
	Addon      string  `gorm:"size:4000" json:"addon"`
	ExtraPrice float64 `json:"extraPrice"`
}
