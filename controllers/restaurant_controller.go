package controllers

import (
	"log"
	"strconv"

	"foodserver/pkg/cache"
	"foodserver/pkg/resp"
	"foodserver/repository"
	"foodserver/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Repo  *repository.RestaurantRepository
	Cache *cache.Cache
}

func NewRestaurantController(db *gorm.DB, store *cache.Cache) *RestaurantController {
	return &RestaurantController{Repo: repository.NewRestaurantRepository(db), Cache: store}
}

// GET /api/restaurants — served through the TTL cache when configured.
func (rc *RestaurantController) List(c *gin.Context) {
	ctx := c.Request.Context()

	var rows []repository.RestaurantRow
	hit, err := rc.Cache.GetJSON(ctx, cache.RestaurantListKey, &rows)
	if err != nil {
		log.Println("restaurant cache read:", err)
	}
	if !hit {
		rows, err = rc.Repo.List(ctx)
		if err != nil {
			resp.StoreError(c, err)
			return
		}
		if len(rows) > 0 {
			if err := rc.Cache.SetJSON(ctx, cache.RestaurantListKey, rows); err != nil {
				log.Println("restaurant cache write:", err)
			}
		}
	}

	if len(rows) == 0 {
		resp.Empty(c)
		return
	}
	resp.OK(c, rows)
}

// GET /api/restaurants/restaurantById?restaurantId=
func (rc *RestaurantController) ByID(c *gin.Context) {
	id, ok := queryUint(c, "restaurantId")
	if !ok {
		resp.Missing(c, "restaurant id in query")
		return
	}

	rows, err := rc.Repo.GetByID(c.Request.Context(), id)
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

type nearbyRestaurantRow struct {
	repository.RestaurantRow
	DistanceInKm float64 `json:"distance_in_km"`
}

// GET /api/restaurants/nearbyRestaurants?lat=&lng=&distance= — radius
// filter in km. The distance math runs here because sqlite has no trig
// builtins.
func (rc *RestaurantController) Nearby(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	distance, err3 := strconv.ParseFloat(c.Query("distance"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		resp.Missing(c, "latitude, longitude or distance in query")
		return
	}

	rows, err := rc.Repo.List(c.Request.Context())
	if err != nil {
		resp.StoreError(c, err)
		return
	}

	var out []nearbyRestaurantRow
	for _, r := range rows {
		d := utils.DistanceKm(lat, lng, r.Lat, r.Lng)
		if d < distance {
			out = append(out, nearbyRestaurantRow{RestaurantRow: r, DistanceInKm: round2(d)})
		}
	}
	if len(out) == 0 {
		resp.Empty(c)
		return
	}
	resp.OK(c, out)
}

// GET /api/restaurants/menu?restaurantId=
func (rc *RestaurantController) Menus(c *gin.Context) {
	id, ok := queryUint(c, "restaurantId")
	if !ok {
		resp.Missing(c, "restaurant id in query")
		return
	}

	rows, err := rc.Repo.MenusOf(c.Request.Context(), id)
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

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}

// queryUint extracts a required positive integer query parameter.
func queryUint(c *gin.Context, name string) (uint, bool) {
	v := c.Query(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
