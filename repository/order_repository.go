package repository

import (
	"context"
	"time"

	"foodserver/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// CreateHeader inserts the order header. GORM fills o.ID from the insert,
// so the generated key never needs a read-back query.
func (r *OrderRepository) CreateHeader(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

type OrderRow struct {
	OrderID       uint      `json:"orderId"`
	OrderFBID     string    `json:"orderFBID"`
	OrderPhone    string    `json:"orderPhone"`
	OrderName     string    `json:"orderName"`
	OrderAddress  string    `json:"orderAddress"`
	OrderStatus   int       `json:"orderStatus"`
	OrderDate     string    `json:"orderDate"`
	RestaurantID  uint      `json:"restaurantId"`
	TransactionID string    `json:"transactionId"`
	COD           bool      `json:"cod"`
	TotalPrice    float64   `json:"totalPrice"`
	NumOfItem     int       `json:"numOfItem"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GET /api/orders?orderFBID= — order headers of a user.
func (r *OrderRepository) ListByFBID(ctx context.Context, fbid string) ([]OrderRow, error) {
	var out []OrderRow
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("id AS order_id, fbid AS order_fbid, phone AS order_phone, name AS order_name, "+
			"address AS order_address, status AS order_status, order_date, restaurant_id, "+
			"transaction_id, cod, total_price, num_of_item, created_at").
		Where("fbid = ?", fbid).
		Order("id DESC").
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) Exists(ctx context.Context, orderID uint) (bool, error) {
	var cnt int64
	if err := r.DB.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Order details ----------------

type OrderDetailRow struct {
	OrderID    uint    `json:"orderId"`
	ItemID     uint    `json:"itemId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Discount   int     `json:"discount"`
	ExtraPrice float64 `json:"extraPrice"`
	Size       string  `json:"size"`
	Addon      string  `json:"addon"`
}

// GET /api/orders/orderDetail?orderId= — line items of one order.
func (r *OrderRepository) DetailsOf(ctx context.Context, orderID uint) ([]OrderDetailRow, error) {
	var out []OrderDetailRow
	err := r.DB.WithContext(ctx).Model(&entity.OrderDetail{}).
		Select("order_id, food_id AS item_id, quantity, price, discount, extra_price, size, addon").
		Where("order_id = ?", orderID).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) DeleteDetails(tx *gorm.DB, orderID uint) error {
	return tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderDetail{}).Error
}

// CreateDetails submits the whole batch as one bulk insert.
func (r *OrderRepository) CreateDetails(tx *gorm.DB, rows []entity.OrderDetail) error {
	return tx.CreateInBatches(rows, len(rows)).Error
}
