package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"foodserver/entity"
	"foodserver/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T, mode ItemsMode) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db), mode), db
}

func createTestHeader(t *testing.T, svc *OrderService, fbid string) uint {
	t.Helper()
	id, err := svc.CreateHeader(context.Background(), &CreateOrderReq{
		FBID:         fbid,
		RestaurantID: 1,
		TotalPrice:   100,
		NumOfItem:    2,
	})
	require.NoError(t, err)
	require.NotZero(t, id)
	return id
}

func items(extraPrice string, foodIDs ...uint) []ItemIn {
	out := make([]ItemIn, 0, len(foodIDs))
	for _, id := range foodIDs {
		out = append(out, ItemIn{
			FoodID:     id,
			Quantity:   2,
			Price:      25,
			Size:       "Large",
			Addon:      "[]",
			ExtraPrice: json.Number(extraPrice),
		})
	}
	return out
}

func TestCreateHeaderKeyBelongsToOwner(t *testing.T) {
	svc, db := newOrderService(t, ItemsReplace)
	id := createTestHeader(t, svc, "2739799736047038")

	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	require.Equal(t, "2739799736047038", o.FBID)
	require.Equal(t, entity.OrderPlaced, o.Status)
}

func TestCreateHeaderKeysAreMonotonic(t *testing.T) {
	svc, _ := newOrderService(t, ItemsReplace)
	first := createTestHeader(t, svc, "1111111111111111")
	second := createTestHeader(t, svc, "1111111111111111")
	require.Greater(t, second, first)
}

func TestSaveItemsPersistsWholeBatch(t *testing.T) {
	svc, db := newOrderService(t, ItemsReplace)
	id := createTestHeader(t, svc, "2739799736047038")

	require.NoError(t, svc.SaveItems(context.Background(), id, items("14.0", 39, 40, 41)))

	var rows []entity.OrderDetail
	require.NoError(t, db.Where("order_id = ?", id).Find(&rows).Error)
	require.Len(t, rows, 3)
	for _, r := range rows {
		require.Equal(t, id, r.OrderID)
		require.Equal(t, 14.0, r.ExtraPrice)
	}
}

func TestSaveItemsEmptyBatchRejected(t *testing.T) {
	svc, _ := newOrderService(t, ItemsReplace)
	id := createTestHeader(t, svc, "2739799736047038")

	err := svc.SaveItems(context.Background(), id, nil)
	require.ErrorIs(t, err, ErrEmptyBatch)
}

func TestSaveItemsUnknownOrderRejected(t *testing.T) {
	svc, _ := newOrderService(t, ItemsReplace)
	err := svc.SaveItems(context.Background(), 9999, items("1.0", 39))
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSaveItemsRejectsNonNumericExtraPrice(t *testing.T) {
	svc, _ := newOrderService(t, ItemsReplace)
	id := createTestHeader(t, svc, "2739799736047038")

	var itemErr *ItemError
	err := svc.SaveItems(context.Background(), id, items("", 39))
	require.ErrorAs(t, err, &itemErr)
	require.Equal(t, 0, itemErr.Index)
}

func TestSaveItemsRejectsOversizedAddon(t *testing.T) {
	svc, _ := newOrderService(t, ItemsReplace)
	id := createTestHeader(t, svc, "2739799736047038")

	batch := items("1.0", 39)
	batch[0].Addon = strings.Repeat("x", maxAddonBytes+1)

	var itemErr *ItemError
	err := svc.SaveItems(context.Background(), id, batch)
	require.ErrorAs(t, err, &itemErr)
}

func TestSaveItemsInvalidDescriptorLeavesNoRows(t *testing.T) {
	svc, db := newOrderService(t, ItemsReplace)
	id := createTestHeader(t, svc, "2739799736047038")

	batch := append(items("1.0", 39), items("not-a-number", 40)...)
	require.Error(t, svc.SaveItems(context.Background(), id, batch))

	var cnt int64
	require.NoError(t, db.Model(&entity.OrderDetail{}).Where("order_id = ?", id).Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestSaveItemsReplaceModeDropsOldRows(t *testing.T) {
	svc, db := newOrderService(t, ItemsReplace)
	id := createTestHeader(t, svc, "2739799736047038")

	require.NoError(t, svc.SaveItems(context.Background(), id, items("1.0", 39, 40)))
	require.NoError(t, svc.SaveItems(context.Background(), id, items("1.0", 41)))

	var rows []entity.OrderDetail
	require.NoError(t, db.Where("order_id = ?", id).Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, uint(41), rows[0].FoodID)
}

func TestSaveItemsAppendModeKeepsOldRows(t *testing.T) {
	svc, db := newOrderService(t, ItemsAppend)
	id := createTestHeader(t, svc, "2739799736047038")

	require.NoError(t, svc.SaveItems(context.Background(), id, items("1.0", 39)))
	require.NoError(t, svc.SaveItems(context.Background(), id, items("1.0", 40)))

	var cnt int64
	require.NoError(t, db.Model(&entity.OrderDetail{}).Where("order_id = ?", id).Count(&cnt).Error)
	require.EqualValues(t, 2, cnt)
}

func TestSaveItemsAppendModeConflictsOnDuplicateFood(t *testing.T) {
	svc, _ := newOrderService(t, ItemsAppend)
	id := createTestHeader(t, svc, "2739799736047038")

	require.NoError(t, svc.SaveItems(context.Background(), id, items("1.0", 39)))
	err := svc.SaveItems(context.Background(), id, items("1.0", 39))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrEmptyBatch))
}

func TestParseItemsAcceptsStringWrappedArray(t *testing.T) {
	raw := json.RawMessage(`"[{\"foodId\":39,\"foodQuantity\":2,\"foodPrice\":25,\"foodSize\":\"Large\",\"foodAddon\":\"[]\",\"foodExtraPrice\":14.0}]"`)
	got, err := ParseItems(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, uint(39), got[0].FoodID)
	require.Equal(t, json.Number("14.0"), got[0].ExtraPrice)
}

func TestParseItemsAcceptsBareArray(t *testing.T) {
	raw := json.RawMessage(`[{"foodId":7,"foodQuantity":1,"foodExtraPrice":0}]`)
	got, err := ParseItems(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, uint(7), got[0].FoodID)
}

func TestParseItemsRejectsMalformedPayload(t *testing.T) {
	_, err := ParseItems(json.RawMessage(`"{not json"`))
	require.Error(t, err)

	_, err = ParseItems(nil)
	require.Error(t, err)
}
