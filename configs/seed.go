package configs

import (
	"log"

	"foodserver/entity"

	"gorm.io/gorm"
)

// SeedDemo loads a small catalog for local development. Idempotent.
func SeedDemo(db *gorm.DB) error {
	var rest entity.Restaurant
	if err := db.FirstOrCreate(&rest, entity.Restaurant{
		Name:      "Pizza Corner",
		Address:   "3 Broadway",
		Phone:     "+1 555 0100",
		Lat:       30.32,
		Lng:       -81.485,
		UserOwner: "demo",
		Image:     "/img/pizza_corner.jpg",
	}).Error; err != nil {
		return err
	}

	var menu entity.Menu
	if err := db.FirstOrCreate(&menu, entity.Menu{
		Name:        "Pizza",
		Description: "Stone-oven pizzas",
		Image:       "/img/menu_pizza.jpg",
	}).Error; err != nil {
		return err
	}
	if err := db.Model(&rest).Association("Menus").Append(&menu); err != nil {
		return err
	}

	var food entity.Food
	if err := db.FirstOrCreate(&food, entity.Food{
		Name:        "MUSHROOM PIZZA",
		Description: "Mushrooms, mozzarella, tomato sauce",
		Image:       "/img/21_mushroom_pizza.jpg",
		Price:       25.0,
	}).Error; err != nil {
		return err
	}
	if err := db.Model(&menu).Association("Foods").Append(&food); err != nil {
		return err
	}

	sizes := []entity.Size{
		{Description: "Medium", ExtraPrice: 0},
		{Description: "Large", ExtraPrice: 4.0},
	}
	for i := range sizes {
		if err := db.FirstOrCreate(&sizes[i], entity.Size{Description: sizes[i].Description}).Error; err != nil {
			return err
		}
		if err := db.Model(&food).Association("Sizes").Append(&sizes[i]); err != nil {
			return err
		}
	}

	addons := []entity.Addon{
		{Description: "Special Sauce 02", ExtraPrice: 5.0},
		{Description: "Special Sauce 03", ExtraPrice: 5.0},
	}
	for i := range addons {
		if err := db.FirstOrCreate(&addons[i], entity.Addon{Description: addons[i].Description}).Error; err != nil {
			return err
		}
		if err := db.Model(&food).Association("Addons").Append(&addons[i]); err != nil {
			return err
		}
	}

	log.Println("demo catalog seeded")
	return nil
}
