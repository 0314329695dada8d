package cart

import (
	"time"

	"vinyl-record-house/internal/domain/catalog"

	"github.com/google/uuid"
)

// Item is one line; unitPrice is the record price when the line was first added.
type Item struct {
	recordID  uuid.UUID
	quantity  int
	unitPrice int64
	addedAt   time.Time
}

func ReconstructItem(recordID uuid.UUID, quantity int, unitPrice int64, addedAt time.Time) Item {
	return Item{recordID: recordID, quantity: quantity, unitPrice: unitPrice, addedAt: addedAt}
}

func (i Item) RecordID() uuid.UUID { return i.recordID }
func (i Item) Quantity() int       { return i.quantity }
func (i Item) UnitPrice() int64    { return i.unitPrice }
func (i Item) AddedAt() time.Time  { return i.addedAt }
func (i Item) LineTotal() int64    { return i.unitPrice * int64(i.quantity) }

type Cart struct {
	id        uuid.UUID
	owner     Owner
	items     []Item
	createdAt time.Time
	updatedAt time.Time
}

func NewCart(owner Owner, now time.Time) (*Cart, error) {
	if owner.IsZero() {
		return nil, ErrInvalidOwner
	}
	return &Cart{
		id:        uuid.New(),
		owner:     owner,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCart(id uuid.UUID, owner Owner, items []Item, createdAt, updatedAt time.Time) *Cart {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Cart{id: id, owner: owner, items: cp, createdAt: createdAt, updatedAt: updatedAt}
}

func (c *Cart) ID() uuid.UUID        { return c.id }
func (c *Cart) Owner() Owner         { return c.owner }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

func (c *Cart) Items() []Item {
	cp := make([]Item, len(c.items))
	copy(cp, c.items)
	return cp
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) Item(recordID uuid.UUID) (Item, bool) {
	if i := c.indexOf(recordID); i >= 0 {
		return c.items[i], true
	}
	return Item{}, false
}

func (c *Cart) RecordIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(c.items))
	for i, it := range c.items {
		ids[i] = it.recordID
	}
	return ids
}

func (c *Cart) Subtotal() int64 {
	var total int64
	for _, it := range c.items {
		total += it.LineTotal()
	}
	return total
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.quantity
	}
	return n
}

// Add merges qty into an existing line or creates one priced at the record's current price.
// The merged quantity must be fulfillable from current stock.
func (c *Cart) Add(rec *catalog.VinylRecord, qty int, now time.Time) (Item, error) {
	if qty < 1 {
		return Item{}, catalog.ErrInvalidQuantity
	}
	idx := c.indexOf(rec.ID())
	merged := qty
	if idx >= 0 {
		merged += c.items[idx].quantity
	}
	if err := rec.EnsureFulfillable(merged); err != nil {
		return Item{}, err
	}

	if idx >= 0 {
		c.items[idx].quantity = merged
		c.updatedAt = now
		return c.items[idx], nil
	}
	item := Item{recordID: rec.ID(), quantity: qty, unitPrice: rec.Price(), addedAt: now}
	c.items = append(c.items, item)
	c.updatedAt = now
	return item, nil
}

// SetQuantity overwrites a line's quantity; qty <= 0 removes the line and reports removed=true.
func (c *Cart) SetQuantity(rec *catalog.VinylRecord, qty int, now time.Time) (item Item, removed bool, err error) {
	idx := c.indexOf(rec.ID())
	if idx < 0 {
		return Item{}, false, ErrItemNotInCart
	}
	if qty <= 0 {
		c.removeAt(idx)
		c.updatedAt = now
		return Item{}, true, nil
	}
	if err := rec.EnsureFulfillable(qty); err != nil {
		return Item{}, false, err
	}
	c.items[idx].quantity = qty
	c.updatedAt = now
	return c.items[idx], false, nil
}

func (c *Cart) Remove(recordID uuid.UUID, now time.Time) bool {
	idx := c.indexOf(recordID)
	if idx < 0 {
		return false
	}
	c.removeAt(idx)
	c.updatedAt = now
	return true
}

func (c *Cart) Clear(now time.Time) {
	c.items = nil
	c.updatedAt = now
}

func (c *Cart) indexOf(recordID uuid.UUID) int {
	for i, it := range c.items {
		if it.recordID == recordID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(idx int) {
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}
