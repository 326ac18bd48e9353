package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`

	Restaurants []Restaurant `gorm:"many2many:restaurant_menus;" json:"-"`
	Foods       []Food       `gorm:"many2many:menu_foods;" json:"-"`
}
