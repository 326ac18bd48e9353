package controllers

import (
	"foodserver/pkg/resp"
	"foodserver/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FoodController struct {
	Repo *repository.FoodRepository
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{Repo: repository.NewFoodRepository(db)}
}

// GET /api/foods/food?menuId=
func (fc *FoodController) ByMenu(c *gin.Context) {
	id, ok := queryUint(c, "menuId")
	if !ok {
		resp.Missing(c, "menu id in query")
		return
	}
	rows, err := fc.Repo.ByMenu(c.Request.Context(), id)
	fc.respond(c, rows, err)
}

// GET /api/foods/foodById?foodId=
func (fc *FoodController) ByID(c *gin.Context) {
	id, ok := queryUint(c, "foodId")
	if !ok {
		resp.Missing(c, "food id in query")
		return
	}
	rows, err := fc.Repo.ByID(c.Request.Context(), id)
	fc.respond(c, rows, err)
}

// GET /api/foods/searchFood?foodName=
func (fc *FoodController) Search(c *gin.Context) {
	name := c.Query("foodName")
	if name == "" {
		resp.Missing(c, "name in food search")
		return
	}
	rows, err := fc.Repo.Search(c.Request.Context(), name)
	fc.respond(c, rows, err)
}

// GET /api/foods/size?foodId=
func (fc *FoodController) Sizes(c *gin.Context) {
	id, ok := queryUint(c, "foodId")
	if !ok {
		resp.Missing(c, "food id in query")
		return
	}
	rows, err := fc.Repo.SizesOf(c.Request.Context(), id)
	if err != nil {
		resp.StoreError(c, err)
		return
	}
	if len(rows) == 0 {
		resp.Empty(c)
		return
	}
	resp.OK(c, rows)
}

// GET /api/foods/addon?foodId=
func (fc *FoodController) Addons(c *gin.Context) {
	id, ok := queryUint(c, "foodId")
	if !ok {
		resp.Missing(c, "food id in query")
		return
	}
	rows, err := fc.Repo.AddonsOf(c.Request.Context(), id)
	if err != nil {
		resp.StoreError(c, err)
		return
	}
	if len(rows) == 0 {
		resp.Empty(c)
		return
	}
	resp.OK(c, rows)
}

func (fc *FoodController) respond(c *gin.Context, rows []repository.FoodRow, err error) {
	if err != nil {
		resp.StoreError(c, err)
		return
	}
	if len(rows) == 0 {
		resp.Empty(c)
		return
	}
	resp.OK(c, rows)
}
