package controllers

import (
	"foodserver/entity"
	"foodserver/pkg/resp"
	"foodserver/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	Repo *repository.FavoriteRepository
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{Repo: repository.NewFavoriteRepository(db)}
}

// GET /api/foods/favorite?fbid=
func (fc *FavoriteController) List(c *gin.Context) {
	fbid := c.Query("fbid")
	if fbid == "" {
		resp.Missing(c, "fbid in query")
		return
	}

	rows, err := fc.Repo.ListByFBID(c.Request.Context(), fbid)
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

// GET /api/foods/favoriteByRestaurant?fbid=&restaurantId=
func (fc *FavoriteController) ListByRestaurant(c *gin.Context) {
	fbid := c.Query("fbid")
	if fbid == "" {
		resp.Missing(c, "fbid in query")
		return
	}
	restaurantID, ok := queryUint(c, "restaurantId")
	if !ok {
		resp.Missing(c, "restaurantId in query")
		return
	}

	rows, err := fc.Repo.ListByFBIDAndRestaurant(c.Request.Context(), fbid, restaurantID)
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

type createFavoriteReq struct {
	Key            string  `json:"key"`
	FBID           string  `json:"fbid"`
	FoodID         uint    `json:"foodId"`
	RestaurantID   uint    `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	FoodName       string  `json:"foodName"`
	FoodImage      string  `json:"foodImage"`
	Price          float64 `json:"price"`
}

// POST /api/foods/favorite — stores the denormalized snapshot as sent;
// the snapshot fields are never refreshed from the catalog afterwards.
func (fc *FavoriteController) Create(c *gin.Context) {
	var req createFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Invalid(c, err.Error())
		return
	}
	if req.FBID == "" {
		resp.Missing(c, "fbid in body of post")
		return
	}

	fav := entity.Favorite{
		FBID:           req.FBID,
		FoodID:         req.FoodID,
		RestaurantID:   req.RestaurantID,
		RestaurantName: req.RestaurantName,
		FoodName:       req.FoodName,
		FoodImage:      req.FoodImage,
		Price:          req.Price,
	}
	if err := fc.Repo.Create(c.Request.Context(), &fav); err != nil {
		resp.StoreError(c, err)
		return
	}
	resp.Done(c, "Success")
}

// DELETE /api/foods/favorite?fbid=&foodId=&restaurantId=
func (fc *FavoriteController) Delete(c *gin.Context) {
	fbid := c.Query("fbid")
	if fbid == "" {
		resp.Missing(c, "fbid in query")
		return
	}
	foodID, ok := queryUint(c, "foodId")
	if !ok {
		resp.Missing(c, "foodId in query")
		return
	}
	restaurantID, ok := queryUint(c, "restaurantId")
	if !ok {
		resp.Missing(c, "restaurantId in query")
		return
	}

	if err := fc.Repo.Delete(c.Request.Context(), fbid, foodID, restaurantID); err != nil {
		resp.StoreError(c, err)
		return
	}
	resp.Done(c, "Success")
}
