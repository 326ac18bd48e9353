package entity

import (
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	IsAddon     bool    `json:"isAddon"`
	Discount    int     `json:"discount"`

	Menus  []Menu  `gorm:"many2many:menu_foods;" json:"-"`
	Sizes  []Size  `gorm:"many2many:food_sizes;" json:"-"`
	Addons []Addon `gorm:"many2many:food_addons;" json:"-"`
}
