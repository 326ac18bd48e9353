package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducerWithoutBrokersIsNil(t *testing.T) {
	require.Nil(t, NewProducer(nil, "order-events"))
}

func TestNilProducerIsNoOp(t *testing.T) {
	var p *Producer
	require.NoError(t, p.Publish(context.Background(), OrderEvent{OrderNumber: 1, FBID: "x"}))
	require.NoError(t, p.Close())
}

func TestOrderEventWireShape(t *testing.T) {
	evt := OrderEvent{
		OrderNumber:  45,
		FBID:         "0204678921183554",
		RestaurantID: 1,
		TotalPrice:   100,
		NumOfItem:    5,
		CreatedAt:    time.Date(2019, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(evt)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.EqualValues(t, 45, got["orderNumber"])
	require.Equal(t, "0204678921183554", got["orderFBID"])
	require.EqualValues(t, 5, got["numOfItem"])
}
