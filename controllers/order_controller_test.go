package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"foodserver/entity"
	"foodserver/pkg/resp"

	"github.com/stretchr/testify/require"
)

func TestOrderScenarioCreateThenItems(t *testing.T) {
	r, db := newTestServer(t)

	// POST header
	w, env := doJSON(t, r, http.MethodPost, "/api/orders", map[string]any{
		"key":          testKey,
		"orderFBID":    "0204678921183554",
		"orderPhone":   "+84988353682",
		"orderName":    "Angel",
		"orderAddress": "3 Broadway",
		"orderDate":    "02/03/2019",
		"restaurantId": 1,
		"cod":          false,
		"totalPrice":   100,
		"numOfItem":    2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	rows := resultRows(t, env)
	require.Len(t, rows, 1)
	orderNumber := uint(rows[0]["orderNumber"].(float64))
	require.NotZero(t, orderNumber)

	var o entity.Order
	require.NoError(t, db.First(&o, orderNumber).Error)
	require.Equal(t, "0204678921183554", o.FBID)

	// PUT line items, orderDetail as the string-wrapped array the mobile
	// clients send
	detail := `[{"foodId":39,"foodQuantity":2,"foodPrice":25,"foodSize":"Large","foodAddon":"[]","foodExtraPrice":14.0}]`
	w, env = doJSON(t, r, http.MethodPut, "/api/orders", map[string]any{
		"key":         testKey,
		"orderId":     orderNumber,
		"orderDetail": detail,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)
	require.Equal(t, "Update successfully", env.Message)

	var details []entity.OrderDetail
	require.NoError(t, db.Where("order_id = ?", orderNumber).Find(&details).Error)
	require.Len(t, details, 1)
	require.Equal(t, uint(39), details[0].FoodID)
	require.Equal(t, 14.0, details[0].ExtraPrice)

	// GET order detail
	w, env = doJSON(t, r, http.MethodGet,
		"/api/orders/orderDetail?key="+testKey+"&orderId="+jsonNumber(orderNumber), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)
	got := resultRows(t, env)
	require.Len(t, got, 1)
	require.EqualValues(t, 39, got[0]["itemId"])
}

func jsonNumber(n uint) string {
	raw, _ := json.Marshal(n)
	return string(raw)
}

func TestCreateOrderRequiresFBID(t *testing.T) {
	r, _ := newTestServer(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/orders", map[string]any{
		"key":        testKey,
		"totalPrice": 100,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.False(t, env.Success)
	require.Equal(t, resp.CodeInvalid, env.Code)
}

func TestCreateOrderRejectsNegativeTotals(t *testing.T) {
	r, _ := newTestServer(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/orders", map[string]any{
		"key":        testKey,
		"orderFBID":  "0204678921183554",
		"totalPrice": -1,
	})
	require.False(t, env.Success)
	require.Equal(t, resp.CodeInvalid, env.Code)
}

func TestUpdateItemsEmptyBatchRejected(t *testing.T) {
	r, _ := newTestServer(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/orders", map[string]any{
		"key":       testKey,
		"orderFBID": "1",
	})
	rows := resultRows(t, env)
	orderNumber := uint(rows[0]["orderNumber"].(float64))

	_, env = doJSON(t, r, http.MethodPut, "/api/orders", map[string]any{
		"key":         testKey,
		"orderId":     orderNumber,
		"orderDetail": "[]",
	})
	require.False(t, env.Success)
	require.Equal(t, resp.CodeInvalid, env.Code)
}

func TestUpdateItemsMalformedDetailIsClientError(t *testing.T) {
	r, _ := newTestServer(t)

	w, env := doJSON(t, r, http.MethodPut, "/api/orders", map[string]any{
		"key":         testKey,
		"orderId":     1,
		"orderDetail": "{not json",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.False(t, env.Success)
	require.Equal(t, resp.CodeInvalid, env.Code)
}

func TestUpdateItemsUnknownOrder(t *testing.T) {
	r, _ := newTestServer(t)

	_, env := doJSON(t, r, http.MethodPut, "/api/orders", map[string]any{
		"key":         testKey,
		"orderId":     4242,
		"orderDetail": `[{"foodId":1,"foodQuantity":1,"foodExtraPrice":0}]`,
	})
	require.False(t, env.Success)
	require.Equal(t, resp.CodeNotFound, env.Code)
}

func TestListOrdersByFBID(t *testing.T) {
	r, _ := newTestServer(t)

	for i := 0; i < 2; i++ {
		_, env := doJSON(t, r, http.MethodPost, "/api/orders", map[string]any{
			"key":       testKey,
			"orderFBID": "2739799736047038",
		})
		require.True(t, env.Success)
	}

	_, env := doJSON(t, r, http.MethodGet, "/api/orders?key="+testKey+"&orderFBID=2739799736047038", nil)
	require.True(t, env.Success)
	rows := resultRows(t, env)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Equal(t, "2739799736047038", row["orderFBID"])
	}

	_, env = doJSON(t, r, http.MethodGet, "/api/orders?key="+testKey+"&orderFBID=0000000000000000", nil)
	require.False(t, env.Success)
	require.Equal(t, "Empty", env.Message)
}
