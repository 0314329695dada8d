package queries

import (
	"context"
	"time"

	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order access denied")
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Keyset, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error)
	ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
	Invoice(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InvoiceView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error) {
	o, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	// Foreign orders look missing to customers.
	if !actor.CanActFor(o.UserID()) {
		return nil, ErrOrderNotFound
	}
	return OrderViewFrom(o), nil
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	if actor.UserID == uuid.Nil {
		return nil, nil, ErrOrderAccess
	}
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, ErrInvalidCursor
	}
	rows, err := q.store.ListByUser(ctx, actor.UserID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(o *OrderListItem) (time.Time, uuid.UUID) { return o.CreatedAt, o.ID })
	return rows, next, nil
}

// Invoice renders the order's frozen lines and totals as a printable invoice.
func (q *orderQueriesImpl) Invoice(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InvoiceView, error) {
	view, err := q.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return &InvoiceView{
		InvoiceNumber: InvoiceNumberPrefix + view.OrderNumber,
		IssuedAt:      view.CreatedAt,
		Paid:          view.PaymentReference != "",
		Void:          view.Status == order.StatusCancelled.String(),
		Order:         view,
	}, nil
}

func OrderViewFrom(o *order.Order) *OrderView {
	contact := o.Contact()
	shipTo := o.ShipTo()
	items := o.Items()

	view := &OrderView{
		ID:          o.ID(),
		OrderNumber: o.OrderNumber(),
		UserID:      o.UserID(),
		Status:      o.Status().String(),
		Email:       contact.Email,
		FullName:    contact.FullName(),
		Phone:       contact.Phone,
		ShipTo: AddressView{
			Line1:      shipTo.Line1,
			Line2:      shipTo.Line2,
			City:       shipTo.City,
			State:      shipTo.State,
			PostalCode: shipTo.PostalCode,
			Country:    shipTo.Country,
		},
		Notes:            o.Notes(),
		Subtotal:         o.Subtotal(),
		ShippingCost:     o.ShippingCost(),
		TotalAmount:      o.TotalAmount(),
		PaymentReference: o.PaymentReference(),
		Items:            make([]OrderItemView, 0, len(items)),
		TotalItems:       o.TotalItems(),
		CanBeCancelled:   o.CanBeCancelled(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		ShippedAt:        o.ShippedAt(),
		DeliveredAt:      o.DeliveredAt(),
	}
	for _, it := range items {
		view.Items = append(view.Items, OrderItemView{
			RecordID:  it.RecordID(),
			Title:     it.Title(),
			Artist:    it.Artist(),
			Year:      it.Year(),
			UnitPrice: it.UnitPrice(),
			Quantity:  it.Quantity(),
			LineTotal: it.LineTotal(),
		})
	}
	return view
}
