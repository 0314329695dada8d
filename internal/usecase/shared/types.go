package shared

import (
	"time"

	"vinyl-record-house/internal/domain/user"

	"github.com/google/uuid"
)

const (
	NotificationKindOrderConfirmation = "order.confirmation"
	NotificationKindOrderCancelled    = "order.cancelled"
	NotificationKindOrderStatus       = "order.status_changed"
)

// NotificationJob is written to the outbox inside the business transaction.
type NotificationJob struct {
	Kind    string
	Topic   string
	Key     string
	Payload []byte
	RunAt   time.Time
}

// OutboxJob is a claimed outbox row awaiting delivery.
type OutboxJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Key      string
	Payload  []byte
	Attempts int32
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// CanActFor reports whether the actor may operate on a resource owned by ownerID.
func (a Actor) CanActFor(ownerID uuid.UUID) bool {
	return a.UserID == ownerID || a.Role.IsStaff()
}
