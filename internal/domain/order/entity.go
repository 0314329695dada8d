package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is a purchase-time snapshot; it never follows later catalog edits.
type Item struct {
	recordID  *uuid.UUID
	title     string
	artist    string
	year      int
	unitPrice int64
	quantity  int
}

func ReconstructItem(recordID *uuid.UUID, title, artist string, year int, unitPrice int64, quantity int) Item {
	return Item{recordID: recordID, title: title, artist: artist, year: year, unitPrice: unitPrice, quantity: quantity}
}

// RecordID is nil once the source record has been deleted from the catalog.
func (i Item) RecordID() *uuid.UUID { return i.recordID }
func (i Item) Title() string        { return i.title }
func (i Item) Artist() string       { return i.artist }
func (i Item) Year() int            { return i.year }
func (i Item) UnitPrice() int64     { return i.unitPrice }
func (i Item) Quantity() int        { return i.quantity }
func (i Item) LineTotal() int64     { return i.unitPrice * int64(i.quantity) }

type Order struct {
	id               uuid.UUID
	seq              int64
	userID           uuid.UUID
	contact          Contact
	shipTo           Address
	notes            string
	status           Status
	subtotal         int64
	shippingCost     int64
	totalAmount      int64
	paymentReference string
	items            []Item
	createdAt        time.Time
	updatedAt        time.Time
	shippedAt        *time.Time
	deliveredAt      *time.Time
}

type Fields struct {
	ID               uuid.UUID
	Seq              int64
	UserID           uuid.UUID
	Contact          Contact
	ShipTo           Address
	Notes            string
	Status           Status
	Subtotal         int64
	ShippingCost     int64
	TotalAmount      int64
	PaymentReference string
	Items            []Item
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ShippedAt        *time.Time
	DeliveredAt      *time.Time
}

func Reconstruct(f Fields) *Order {
	items := make([]Item, len(f.Items))
	copy(items, f.Items)
	return &Order{
		id:               f.ID,
		seq:              f.Seq,
		userID:           f.UserID,
		contact:          f.Contact,
		shipTo:           f.ShipTo,
		notes:            f.Notes,
		status:           f.Status,
		subtotal:         f.Subtotal,
		shippingCost:     f.ShippingCost,
		totalAmount:      f.TotalAmount,
		paymentReference: f.PaymentReference,
		items:            items,
		createdAt:        f.CreatedAt,
		updatedAt:        f.UpdatedAt,
		shippedAt:        f.ShippedAt,
		deliveredAt:      f.DeliveredAt,
	}
}

func (o *Order) ID() uuid.UUID             { return o.id }
func (o *Order) Seq() int64                { return o.seq }
func (o *Order) UserID() uuid.UUID         { return o.userID }
func (o *Order) Contact() Contact          { return o.contact }
func (o *Order) ShipTo() Address           { return o.shipTo }
func (o *Order) Notes() string             { return o.notes }
func (o *Order) Status() Status            { return o.status }
func (o *Order) Subtotal() int64           { return o.subtotal }
func (o *Order) ShippingCost() int64       { return o.shippingCost }
func (o *Order) TotalAmount() int64        { return o.totalAmount }
func (o *Order) PaymentReference() string  { return o.paymentReference }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }
func (o *Order) ShippedAt() *time.Time     { return o.shippedAt }
func (o *Order) DeliveredAt() *time.Time   { return o.deliveredAt }

func (o *Order) Items() []Item {
	cp := make([]Item, len(o.items))
	copy(cp, o.items)
	return cp
}

// AssignSeq records the surrogate key handed out by storage.
func (o *Order) AssignSeq(seq int64) { o.seq = seq }

// OrderNumber is the customer-facing reference.
func (o *Order) OrderNumber() string { return NumberFor(o.id) }

func NumberFor(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}

func (o *Order) TotalItems() int {
	n := 0
	for _, it := range o.items {
		n += it.quantity
	}
	return n
}

func (o *Order) CanBeCancelled() bool {
	return o.status.IsCancellable()
}

// Cancel moves the order to cancelled. Stock restoration is the caller's job, using Items quantities.
func (o *Order) Cancel(now time.Time) error {
	if !o.CanBeCancelled() {
		return &InvalidTransitionError{From: o.status, To: StatusCancelled}
	}
	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

// Advance applies a forward fulfilment step. Reaching or passing shipped stamps shippedAt;
// reaching delivered stamps deliveredAt.
func (o *Order) Advance(to Status, now time.Time) error {
	if !canAdvance(o.status, to) {
		return &InvalidTransitionError{From: o.status, To: to}
	}
	if progression[to] >= progression[StatusShipped] && o.shippedAt == nil {
		t := now
		o.shippedAt = &t
	}
	if to == StatusDelivered && o.deliveredAt == nil {
		t := now
		o.deliveredAt = &t
	}
	o.status = to
	o.updatedAt = now
	return nil
}
