package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"foodserver/pkg/resp"
	"foodserver/queue"
	"foodserver/repository"
	"foodserver/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Service *services.OrderService
	Repo    *repository.OrderRepository
	Events  *queue.Producer
}

func NewOrderController(db *gorm.DB, mode services.ItemsMode, events *queue.Producer) *OrderController {
	repo := repository.NewOrderRepository(db)
	return &OrderController{
		Service: services.NewOrderService(db, repo, mode),
		Repo:    repo,
		Events:  events,
	}
}

// GET /api/orders?orderFBID=
func (oc *OrderController) List(c *gin.Context) {
	fbid := c.Query("orderFBID")
	if fbid == "" {
		resp.Missing(c, "orderFBID in query")
		return
	}

	rows, err := oc.Repo.ListByFBID(c.Request.Context(), fbid)
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

// GET /api/orders/orderDetail?orderId=
func (oc *OrderController) Details(c *gin.Context) {
	orderID, ok := queryUint(c, "orderId")
	if !ok {
		resp.Missing(c, "orderId in query")
		return
	}

	rows, err := oc.Repo.DetailsOf(c.Request.Context(), orderID)
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

type createOrderReq struct {
	Key           string  `json:"key"`
	OrderFBID     string  `json:"orderFBID"`
	OrderPhone    string  `json:"orderPhone"`
	OrderName     string  `json:"orderName"`
	OrderAddress  string  `json:"orderAddress"`
	OrderDate     string  `json:"orderDate"`
	RestaurantID  uint    `json:"restaurantId"`
	TransactionID string  `json:"transactionId"`
	COD           bool    `json:"cod"`
	TotalPrice    float64 `json:"totalPrice"`
	NumOfItem     int     `json:"numOfItem"`
}

type orderNumberRow struct {
	OrderNumber uint `json:"orderNumber"`
}

// POST /api/orders — create the order header and return the generated
// key.
func (oc *OrderController) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Invalid(c, err.Error())
		return
	}
	if req.OrderFBID == "" {
		resp.Missing(c, "orderFBID in body of POST request")
		return
	}
	if req.TotalPrice < 0 {
		resp.Invalid(c, "totalPrice must not be negative")
		return
	}
	if req.NumOfItem < 0 {
		resp.Invalid(c, "numOfItem must not be negative")
		return
	}

	orderNumber, err := oc.Service.CreateHeader(c.Request.Context(), &services.CreateOrderReq{
		FBID:          req.OrderFBID,
		Phone:         req.OrderPhone,
		Name:          req.OrderName,
		Address:       req.OrderAddress,
		OrderDate:     req.OrderDate,
		RestaurantID:  req.RestaurantID,
		TransactionID: req.TransactionID,
		COD:           req.COD,
		TotalPrice:    req.TotalPrice,
		NumOfItem:     req.NumOfItem,
	})
	if err != nil {
		resp.StoreError(c, err)
		return
	}

	// The order stands regardless of event delivery.
	if err := oc.Events.Publish(c.Request.Context(), queue.OrderEvent{
		OrderNumber:  orderNumber,
		FBID:         req.OrderFBID,
		RestaurantID: req.RestaurantID,
		TotalPrice:   req.TotalPrice,
		NumOfItem:    req.NumOfItem,
		CreatedAt:    time.Now(),
	}); err != nil {
		log.Println("publish order event:", err)
	}

	resp.OK(c, []orderNumberRow{{OrderNumber: orderNumber}})
}

type updateOrderReq struct {
	Key         string          `json:"key"`
	OrderID     uint            `json:"orderId"`
	OrderDetail json.RawMessage `json:"orderDetail"`
}

// PUT /api/orders — write the line-item batch for an existing order.
func (oc *OrderController) UpdateItems(c *gin.Context) {
	var req updateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Invalid(c, err.Error())
		return
	}
	if req.OrderID == 0 {
		resp.Missing(c, "orderId in body of PUT request")
		return
	}

	items, err := services.ParseItems(req.OrderDetail)
	if err != nil {
		resp.Invalid(c, err.Error())
		return
	}

	err = oc.Service.SaveItems(c.Request.Context(), req.OrderID, items)
	var itemErr *services.ItemError
	switch {
	case err == nil:
		resp.Done(c, "Update successfully")
	case errors.Is(err, services.ErrEmptyBatch):
		resp.Invalid(c, err.Error())
	case errors.As(err, &itemErr):
		resp.Invalid(c, itemErr.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	default:
		resp.StoreError(c, err)
	}
}
