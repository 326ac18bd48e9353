package entity

import (
	"gorm.io/gorm"
)

type Addon struct {
	gorm.Model
	Description string  `json:"description"`
	ExtraPrice  float64 `json:"extraPrice"`

	Foods []Food `gorm:"many2many:food_addons;" json:"-"`
}
