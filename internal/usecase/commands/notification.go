package commands

import (
	"encoding/json"
	"time"

	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderEventItem struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderEvent is the payload of every order notification.
type OrderEvent struct {
	EventID     uuid.UUID        `json:"event_id"`
	Kind        string           `json:"kind"`
	OrderID     uuid.UUID        `json:"order_id"`
	OrderNumber string           `json:"order_number"`
	UserID      uuid.UUID        `json:"user_id"`
	Email       string           `json:"email"`
	Status      string           `json:"status"`
	TotalAmount int64            `json:"total_amount"`
	Items       []OrderEventItem `json:"items,omitempty"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

// newOrderJob builds the outbox row for an order event on topic.
func newOrderJob(kind, topic string, o *order.Order, at time.Time) (shared.NotificationJob, error) {
	ev := OrderEvent{
		EventID:     uuid.New(),
		Kind:        kind,
		OrderID:     o.ID(),
		OrderNumber: o.OrderNumber(),
		UserID:      o.UserID(),
		Email:       o.Contact().Email,
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount(),
		OccurredAt:  at.UTC(),
	}
	if kind == shared.NotificationKindOrderConfirmation {
		for _, it := range o.Items() {
			ev.Items = append(ev.Items, OrderEventItem{
				Title:     it.Title(),
				Artist:    it.Artist(),
				Quantity:  it.Quantity(),
				UnitPrice: it.UnitPrice(),
			})
		}
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return shared.NotificationJob{}, errs.Wrap(err, "marshal order event")
	}
	return shared.NotificationJob{
		Kind:    kind,
		Topic:   topic,
		Key:     o.ID().String(),
		Payload: payload,
		RunAt:   at,
	}, nil
}
