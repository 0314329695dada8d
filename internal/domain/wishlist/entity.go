package wishlist

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	RecordID uuid.UUID
	AddedAt  time.Time
}

// Wishlist belongs to one user; each record appears at most once.
type Wishlist struct {
	id        uuid.UUID
	userID    uuid.UUID
	items     []Item
	createdAt time.Time
}

func NewWishlist(userID uuid.UUID, now time.Time) *Wishlist {
	return &Wishlist{id: uuid.New(), userID: userID, createdAt: now}
}

func ReconstructWishlist(id, userID uuid.UUID, items []Item, createdAt time.Time) *Wishlist {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Wishlist{id: id, userID: userID, items: cp, createdAt: createdAt}
}

func (w *Wishlist) ID() uuid.UUID        { return w.id }
func (w *Wishlist) UserID() uuid.UUID    { return w.userID }
func (w *Wishlist) CreatedAt() time.Time { return w.createdAt }
func (w *Wishlist) Len() int             { return len(w.items) }

func (w *Wishlist) Contains(recordID uuid.UUID) bool {
	return w.indexOf(recordID) >= 0
}

// Toggle adds the record when absent and removes it otherwise; added reports which happened.
func (w *Wishlist) Toggle(recordID uuid.UUID, now time.Time) (added bool) {
	if i := w.indexOf(recordID); i >= 0 {
		w.items = append(w.items[:i], w.items[i+1:]...)
		return false
	}
	w.items = append(w.items, Item{RecordID: recordID, AddedAt: now})
	return true
}

func (w *Wishlist) Remove(recordID uuid.UUID) bool {
	i := w.indexOf(recordID)
	if i < 0 {
		return false
	}
	w.items = append(w.items[:i], w.items[i+1:]...)
	return true
}

func (w *Wishlist) indexOf(recordID uuid.UUID) int {
	for i, it := range w.items {
		if it.RecordID == recordID {
			return i
		}
	}
	return -1
}
