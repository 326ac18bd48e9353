package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderEvent is published when an order header is created.
type OrderEvent struct {
	OrderNumber  uint      `json:"orderNumber"`
	FBID         string    `json:"orderFBID"`
	RestaurantID uint      `json:"restaurantId"`
	TotalPrice   float64   `json:"totalPrice"`
	NumOfItem    int       `json:"numOfItem"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Producer wraps a kafka writer. A nil *Producer is a valid no-op so the
// service runs unchanged when no brokers are configured.
type Producer struct {
	w *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  5,
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  5 * time.Second,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Publish writes one order-created event, keyed by the owner fbid so one
// user's orders land on the same partition.
func (p *Producer) Publish(ctx context.Context, evt OrderEvent) error {
	if p == nil {
		return nil
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.FBID),
		Value: b,
	})
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.w.Close()
}
