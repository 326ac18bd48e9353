package routes

import (
	"foodserver/configs"
	"foodserver/controllers"
	"foodserver/middlewares"
	"foodserver/pkg/cache"
	"foodserver/queue"
	"foodserver/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, store *cache.Cache, events *queue.Producer) {
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(500, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	})

	// Controllers
	userCtrl := controllers.NewUserController(db)
	restCtrl := controllers.NewRestaurantController(db, store)
	foodCtrl := controllers.NewFoodController(db)
	favCtrl := controllers.NewFavoriteController(db)
	orderCtrl := controllers.NewOrderController(db, services.ItemsMode(cfg.OrderItemsMode), events)

	api := r.Group("/api", middlewares.APIKeyAuth(cfg.APIKey))

	// Users
	api.GET("/users", userCtrl.Get)
	api.POST("/users", userCtrl.Create)
	api.PUT("/users", userCtrl.Update)

	// Restaurants (catalog, read-only)
	rest := api.Group("/restaurants")
	{
		rest.GET("", restCtrl.List)
		rest.GET("/restaurantById", restCtrl.ByID)
		rest.GET("/nearbyRestaurants", restCtrl.Nearby)
		rest.GET("/menu", restCtrl.Menus)
	}

	// Foods and favorites
	foods := api.Group("/foods")
	{
		foods.GET("/food", foodCtrl.ByMenu)
		foods.GET("/foodById", foodCtrl.ByID)
		foods.GET("/searchFood", foodCtrl.Search)
		foods.GET("/size", foodCtrl.Sizes)
		foods.GET("/addon", foodCtrl.Addons)

		foods.GET("/favorite", favCtrl.List)
		foods.GET("/favoriteByRestaurant", favCtrl.ListByRestaurant)
		foods.POST("/favorite", favCtrl.Create)
		foods.DELETE("/favorite", favCtrl.Delete)
	}

	// Orders
	orders := api.Group("/orders")
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/orderDetail", orderCtrl.Details)
		orders.POST("", orderCtrl.Create)
		orders.PUT("", orderCtrl.UpdateItems)
	}
}
