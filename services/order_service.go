package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"foodserver/entity"
	"foodserver/repository"

	"gorm.io/gorm"
)

// ItemsMode selects what a line-item batch does to rows already stored
// for the order.
type ItemsMode string

const (
	// ItemsReplace deletes the existing line items of the order before
	// inserting the batch. The default.
	ItemsReplace ItemsMode = "replace"
	// ItemsAppend inserts on top of existing rows; the (order, food)
	// uniqueness constraint turns duplicates into store errors.
	ItemsAppend ItemsMode = "append"
)

const maxAddonBytes = 4000

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyBatch    = errors.New("orderDetail must contain at least one item")
)

// ItemError marks one invalid line-item descriptor; it renders as a
// validation failure, not a store failure.
type ItemError struct {
	Index  int
	Reason string
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %s", e.Index, e.Reason)
}

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Mode ItemsMode
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, mode ItemsMode) *OrderService {
	if mode != ItemsAppend {
		mode = ItemsReplace
	}
	return &OrderService{DB: db, Repo: repo, Mode: mode}
}

// ----- Header creation -----

type CreateOrderReq struct {
	FBID          string
	Phone         string
	Name          string
	Address       string
	OrderDate     string
	RestaurantID  uint
	TransactionID string
	COD           bool
	TotalPrice    float64
	NumOfItem     int
}

// CreateHeader inserts the order header with the initial status and
// returns the store-assigned key taken from the insert itself.
func (s *OrderService) CreateHeader(ctx context.Context, req *CreateOrderReq) (uint, error) {
	order := entity.Order{
		FBID:          req.FBID,
		Phone:         req.Phone,
		Name:          req.Name,
		Address:       req.Address,
		Status:        entity.OrderPlaced,
		OrderDate:     req.OrderDate,
		RestaurantID:  req.RestaurantID,
		TransactionID: req.TransactionID,
		COD:           req.COD,
		TotalPrice:    req.TotalPrice,
		NumOfItem:     req.NumOfItem,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateHeader(tx, &order)
	})
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

// ----- Line-item batch -----

// ItemIn mirrors one descriptor of the orderDetail payload.
type ItemIn struct {
	FoodID     uint        `json:"foodId"`
	Quantity   int         `json:"foodQuantity"`
	Price      float64     `json:"foodPrice"`
	Discount   int         `json:"foodDiscount"`
	Size       string      `json:"foodSize"`
	Addon      string      `json:"foodAddon"`
	ExtraPrice json.Number `json:"foodExtraPrice"`
}

// ParseItems decodes the orderDetail payload. It accepts either a JSON
// array or (as the original clients send it) a JSON string wrapping one.
func ParseItems(raw json.RawMessage) ([]ItemIn, error) {
	if len(raw) == 0 {
		return nil, errors.New("orderDetail is empty")
	}
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = json.RawMessage(inner)
	}
	var items []ItemIn
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("malformed orderDetail: %w", err)
	}
	return items, nil
}

// SaveItems writes the whole batch for one order in a single
// transaction: all rows land or none do. Replace mode clears existing
// rows first; append mode relies on the uniqueness constraint.
func (s *OrderService) SaveItems(ctx context.Context, orderID uint, items []ItemIn) error {
	if len(items) == 0 {
		return ErrEmptyBatch
	}

	rows := make([]entity.OrderDetail, 0, len(items))
	for i, it := range items {
		extra, err := it.ExtraPrice.Float64()
		if err != nil {
			return &ItemError{Index: i, Reason: "foodExtraPrice is missing or not numeric"}
		}
		if it.FoodID == 0 {
			return &ItemError{Index: i, Reason: "foodId is required"}
		}
		if it.Quantity < 0 {
			return &ItemError{Index: i, Reason: "foodQuantity must not be negative"}
		}
		if len(it.Addon) > maxAddonBytes {
			return &ItemError{Index: i, Reason: fmt.Sprintf("foodAddon exceeds %d bytes", maxAddonBytes)}
		}
		rows = append(rows, entity.OrderDetail{
			OrderID:    orderID,
			FoodID:     it.FoodID,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Discount:   it.Discount,
			Size:       it.Size,
			Addon:      it.Addon,
			ExtraPrice: extra,
		})
	}

	exists, err := s.Repo.Exists(ctx, orderID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrOrderNotFound
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.Mode == ItemsReplace {
			if err := s.Repo.DeleteDetails(tx, orderID); err != nil {
				return err
			}
		}
		return s.Repo.CreateDetails(tx, rows)
	})
}
