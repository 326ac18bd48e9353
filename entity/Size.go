package entity

import (
	"gorm.io/gorm"
)

type Size struct {
	gorm.Model
	Description string  `json:"description"`
	ExtraPrice  float64 `json:"extraPrice"`

	Foods []Food `gorm:"many2many:food_sizes;" json:"-"`
}
