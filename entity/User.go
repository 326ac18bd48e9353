package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	// FBID is the 16-digit external identifier clients address users by.
	// Immutable once assigned.
	FBID    string `gorm:"size:16;uniqueIndex;not null" json:"fbid"`
	Phone   string `json:"userPhone"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
