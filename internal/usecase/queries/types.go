package queries

import (
	"time"

	"github.com/google/uuid"
)

// RecordView is the catalog read model; it is also the cached representation.
type RecordView struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	ArtistID      uuid.UUID `json:"artist_id"`
	ArtistName    string    `json:"artist_name"`
	ArtistType    string    `json:"artist_type"`
	Genre         string    `json:"genre"`
	Label         string    `json:"label"`
	ReleaseYear   int       `json:"release_year"`
	Condition     string    `json:"condition"`
	Speed         string    `json:"speed"`
	Size          string    `json:"size"`
	Price         int64     `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	IsAvailable   bool      `json:"is_available"`
	InStock       bool      `json:"in_stock"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RecordFilter struct {
	Genre        string
	Artist       string
	Query        string
	InStockOnly  bool
	FeaturedOnly bool
}

type CartLineView struct {
	RecordID      uuid.UUID `json:"record_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Artist        string    `json:"artist"`
	Quantity      int       `json:"quantity"`
	UnitPrice     int64     `json:"unit_price"`
	LineTotal     int64     `json:"line_total"`
	StockQuantity int       `json:"stock_quantity"`
	IsAvailable   bool      `json:"is_available"`
	// Short is set when the live stock no longer covers the quantity.
	Short   bool      `json:"short"`
	AddedAt time.Time `json:"added_at"`
}

type CartView struct {
	Lines        []CartLineView `json:"lines"`
	Subtotal     int64          `json:"subtotal"`
	ShippingCost int64          `json:"shipping_cost"`
	Total        int64          `json:"total"`
	TotalItems   int            `json:"total_items"`
}

type AddressView struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

type OrderItemView struct {
	RecordID  *uuid.UUID `json:"record_id,omitempty"`
	Title     string     `json:"title"`
	Artist    string     `json:"artist"`
	Year      int        `json:"year"`
	UnitPrice int64      `json:"unit_price"`
	Quantity  int        `json:"quantity"`
	LineTotal int64      `json:"line_total"`
}

type OrderView struct {
	ID               uuid.UUID       `json:"id"`
	OrderNumber      string          `json:"order_number"`
	UserID           uuid.UUID       `json:"user_id"`
	Status           string          `json:"status"`
	Email            string          `json:"email"`
	FullName         string          `json:"full_name"`
	Phone            string          `json:"phone,omitempty"`
	ShipTo           AddressView     `json:"ship_to"`
	Notes            string          `json:"notes,omitempty"`
	Subtotal         int64           `json:"subtotal"`
	ShippingCost     int64           `json:"shipping_cost"`
	TotalAmount      int64           `json:"total_amount"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	Items            []OrderItemView `json:"items"`
	TotalItems       int             `json:"total_items"`
	CanBeCancelled   bool            `json:"can_be_cancelled"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	ShippedAt        *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt      *time.Time      `json:"delivered_at,omitempty"`
}

const InvoiceNumberPrefix = "INV-"

type InvoiceView struct {
	InvoiceNumber string     `json:"invoice_number"`
	IssuedAt      time.Time  `json:"issued_at"`
	Paid          bool       `json:"paid"`
	Void          bool       `json:"void"`
	Order         *OrderView `json:"order"`
}

type OrderListItem struct {
	ID           uuid.UUID `json:"id"`
	OrderNumber  string    `json:"order_number"`
	Status       string    `json:"status"`
	Subtotal     int64     `json:"subtotal"`
	ShippingCost int64     `json:"shipping_cost"`
	TotalAmount  int64     `json:"total_amount"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewView struct {
	ID               uuid.UUID `json:"id"`
	RecordID         uuid.UUID `json:"record_id"`
	RecordTitle      string    `json:"record_title,omitempty"`
	UserID           uuid.UUID `json:"user_id"`
	AuthorName       string    `json:"author_name"`
	Rating           int       `json:"rating"`
	Title            string    `json:"title"`
	Comment          string    `json:"comment"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type RatingStats struct {
	RecordID      uuid.UUID `json:"record_id"`
	TotalReviews  int       `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WishlistItemView struct {
	RecordID uuid.UUID `json:"record_id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Artist   string    `json:"artist"`
	Price    int64     `json:"price"`
	InStock  bool      `json:"in_stock"`
	AddedAt  time.Time `json:"added_at"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ProfileView struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	AddressLine1 string    `json:"address_line_1"`
	AddressLine2 string    `json:"address_line_2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
	Newsletter   bool      `json:"newsletter"`
	UpdatedAt    time.Time `json:"updated_at"`
}
