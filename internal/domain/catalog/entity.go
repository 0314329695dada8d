package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Artist struct {
	ID   uuid.UUID
	Name string
	Type ArtistType
}

// VinylRecord is the catalog item. Only the checkout and cancellation flows change its stock.
type VinylRecord struct {
	id            uuid.UUID
	title         string
	slug          string
	artist        Artist
	genre         string
	label         string
	releaseYear   int
	condition     Condition
	speed         string
	size          string
	price         int64
	stockQuantity int
	isAvailable   bool
	featured      bool
	createdAt     time.Time
	updatedAt     time.Time
}

type RecordFields struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Artist        Artist
	Genre         string
	Label         string
	ReleaseYear   int
	Condition     Condition
	Speed         string
	Size          string
	Price         int64
	StockQuantity int
	IsAvailable   bool
	Featured      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructVinylRecord(f RecordFields) *VinylRecord {
	return &VinylRecord{
		id:            f.ID,
		title:         f.Title,
		slug:          f.Slug,
		artist:        f.Artist,
		genre:         f.Genre,
		label:         f.Label,
		releaseYear:   f.ReleaseYear,
		condition:     f.Condition,
		speed:         f.Speed,
		size:          f.Size,
		price:         f.Price,
		stockQuantity: f.StockQuantity,
		isAvailable:   f.IsAvailable,
		featured:      f.Featured,
		createdAt:     f.CreatedAt,
		updatedAt:     f.UpdatedAt,
	}
}

func (v *VinylRecord) ID() uuid.UUID         { return v.id }
func (v *VinylRecord) Title() string         { return v.title }
func (v *VinylRecord) Slug() string          { return v.slug }
func (v *VinylRecord) Artist() Artist        { return v.artist }
func (v *VinylRecord) Genre() string         { return v.genre }
func (v *VinylRecord) Label() string         { return v.label }
func (v *VinylRecord) ReleaseYear() int      { return v.releaseYear }
func (v *VinylRecord) Condition() Condition  { return v.condition }
func (v *VinylRecord) Speed() string         { return v.speed }
func (v *VinylRecord) Size() string          { return v.size }
func (v *VinylRecord) Price() int64          { return v.price }
func (v *VinylRecord) StockQuantity() int    { return v.stockQuantity }
func (v *VinylRecord) IsAvailable() bool     { return v.isAvailable }
func (v *VinylRecord) Featured() bool        { return v.featured }
func (v *VinylRecord) CreatedAt() time.Time  { return v.createdAt }
func (v *VinylRecord) UpdatedAt() time.Time  { return v.updatedAt }

func (v *VinylRecord) IsInStock() bool {
	return v.isAvailable && v.stockQuantity > 0
}

// Sellable is the quantity a buyer may take right now; an unlisted record sells nothing.
func (v *VinylRecord) Sellable() int {
	if !v.isAvailable {
		return 0
	}
	return v.stockQuantity
}

func (v *VinylRecord) CanFulfil(qty int) bool {
	return qty <= v.Sellable()
}

// EnsureFulfillable fails with *InsufficientStockError when qty cannot be sold.
func (v *VinylRecord) EnsureFulfillable(qty int) error {
	if qty > v.Sellable() {
		return &InsufficientStockError{
			RecordID:  v.id,
			Title:     v.title,
			Requested: qty,
			Available: v.Sellable(),
		}
	}
	return nil
}

// Reserve decrements the in-memory stock after the same check as EnsureFulfillable.
func (v *VinylRecord) Reserve(qty int, now time.Time) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if err := v.EnsureFulfillable(qty); err != nil {
		return err
	}
	v.stockQuantity -= qty
	v.updatedAt = now
	return nil
}

func (v *VinylRecord) Restock(qty int, now time.Time) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	v.stockQuantity += qty
	v.updatedAt = now
	return nil
}
