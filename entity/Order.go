package entity

import (
	"gorm.io/gorm"
)

// Order status codes. Only OrderPlaced is written by this service; the
// remaining transitions belong to the (separate) fulfilment flow.
const (
	OrderPlaced = 0
)

type Order struct {
	gorm.Model
	FBID          string  `gorm:"size:16;index;not null" json:"orderFBID"`
	Phone         string  `json:"orderPhone"`
	Name          string  `json:"orderName"`
	Address       string  `json:"orderAddress"`
	Status        int     `gorm:"default:0" json:"orderStatus"`
	OrderDate     string  `json:"orderDate"`
	RestaurantID  uint    `json:"restaurantId"`
	TransactionID string  `json:"transactionId"`
	COD           bool    `json:"cod"`
	TotalPrice    float64 `json:"totalPrice"`
	NumOfItem     int     `json:"numOfItem"`

	Details []OrderDetail `gorm:"foreignKey:OrderID" json:"-"`
}
