package shared

import (
	"context"
	"time"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/domain/review"
	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/domain/wishlist"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Catalog() CatalogRepository
	Carts() CartRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Wishlists() WishlistRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are unlocked lookups used for validation on the write side.
type CommandReads interface {
	RecordByID(ctx context.Context, id uuid.UUID) (*catalog.VinylRecord, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type CatalogRepository interface {
	// LockByIDs locks the rows in id order; missing ids are simply absent from the result.
	LockByIDs(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]*catalog.VinylRecord, error)
	DecrementStock(ctx context.Context, tx sqlc.DBTX, recordID uuid.UUID, qty int) error
	// RestoreStock reports false when the record no longer exists.
	RestoreStock(ctx context.Context, tx sqlc.DBTX, recordID uuid.UUID, qty int) (bool, error)
}

type CartRepository interface {
	// GetOrCreate returns the owner's cart locked for update, inserting it on first use.
	GetOrCreate(ctx context.Context, tx sqlc.DBTX, owner cart.Owner, now time.Time) (*cart.Cart, error)
	SaveItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, item cart.Item) error
	DeleteItem(ctx context.Context, tx sqlc.DBTX, cartID, recordID uuid.UUID) error
	ClearItems(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	HasDeliveredPurchase(ctx context.Context, tx sqlc.DBTX, userID, recordID uuid.UUID) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) (*review.Review, error)
	Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	Recalc(ctx context.Context, tx sqlc.DBTX, recordID uuid.UUID) error
}

type WishlistRepository interface {
	GetOrCreate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, now time.Time) (*wishlist.Wishlist, error)
	AddItem(ctx context.Context, tx sqlc.DBTX, wishlistID uuid.UUID, item wishlist.Item) error
	RemoveItem(ctx context.Context, tx sqlc.DBTX, wishlistID, recordID uuid.UUID) error
	Clear(ctx context.Context, tx sqlc.DBTX, wishlistID uuid.UUID) (int, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	CreateProfile(ctx context.Context, tx sqlc.DBTX, p *user.Profile) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
	FindProfileForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*user.Profile, error)
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, p *user.Profile) error
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]OutboxJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, retryAt time.Time, maxAttempts int32) error
}
