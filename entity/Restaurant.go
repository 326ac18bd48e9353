package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	UserOwner  string  `json:"userOwner"`
	Image      string  `json:"image"`
	PaymentURL string  `gorm:"column:payment_url" json:"paymentUrl"`

	Menus []Menu `gorm:"many2many:restaurant_menus;" json:"-"`
}
