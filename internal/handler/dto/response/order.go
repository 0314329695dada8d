package response

import (
	"time"

	"vinyl-record-house/internal/pkg/money"
	"vinyl-record-house/internal/usecase/queries"
)

type OrderItemResponse struct {
	RecordID  *string `json:"record_id"`
	Title     string  `json:"title"`
	Artist    string  `json:"artist"`
	Year      int     `json:"year"`
	UnitPrice string  `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal string  `json:"line_total"`
}

type OrderResponse struct {
	ID               string              `json:"id"`
	OrderNumber      string              `json:"order_number"`
	Status           string              `json:"status"`
	Email            string              `json:"email"`
	FullName         string              `json:"full_name"`
	Phone            string              `json:"phone,omitempty"`
	ShipTo           queries.AddressView `json:"ship_to"`
	Notes            string              `json:"notes,omitempty"`
	Subtotal         string              `json:"subtotal"`
	ShippingCost     string              `json:"shipping_cost"`
	TotalAmount      string              `json:"total_amount"`
	PaymentReference string              `json:"payment_reference,omitempty"`
	Items            []OrderItemResponse `json:"items"`
	TotalItems       int                 `json:"total_items"`
	CanBeCancelled   bool                `json:"can_be_cancelled"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	ShippedAt        *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt      *time.Time          `json:"delivered_at,omitempty"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		var recordID *string
		if it.RecordID != nil {
			s := it.RecordID.String()
			recordID = &s
		}
		items[i] = OrderItemResponse{
			RecordID:  recordID,
			Title:     it.Title,
			Artist:    it.Artist,
			Year:      it.Year,
			UnitPrice: money.Format(it.UnitPrice),
			Quantity:  it.Quantity,
			LineTotal: money.Format(it.LineTotal),
		}
	}
	return &OrderResponse{
		ID:               v.ID.String(),
		OrderNumber:      v.OrderNumber,
		Status:           v.Status,
		Email:            v.Email,
		FullName:         v.FullName,
		Phone:            v.Phone,
		ShipTo:           v.ShipTo,
		Notes:            v.Notes,
		Subtotal:         money.Format(v.Subtotal),
		ShippingCost:     money.Format(v.ShippingCost),
		TotalAmount:      money.Format(v.TotalAmount),
		PaymentReference: v.PaymentReference,
		Items:            items,
		TotalItems:       v.TotalItems,
		CanBeCancelled:   v.CanBeCancelled,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
		ShippedAt:        v.ShippedAt,
		DeliveredAt:      v.DeliveredAt,
	}
}

type InvoiceResponse struct {
	InvoiceNumber    string              `json:"invoice_number"`
	IssuedAt         time.Time           `json:"issued_at"`
	OrderID          string              `json:"order_id"`
	OrderNumber      string              `json:"order_number"`
	Status           string              `json:"status"`
	Paid             bool                `json:"paid"`
	Void             bool                `json:"void"`
	PaymentReference string              `json:"payment_reference,omitempty"`
	BillTo           InvoiceParty        `json:"bill_to"`
	Lines            []OrderItemResponse `json:"lines"`
	Subtotal         string              `json:"subtotal"`
	ShippingCost     string              `json:"shipping_cost"`
	TotalAmount      string              `json:"total_amount"`
}

type InvoiceParty struct {
	Name    string              `json:"name"`
	Email   string              `json:"email"`
	Phone   string              `json:"phone,omitempty"`
	Address queries.AddressView `json:"address"`
}

func FromInvoiceView(v *queries.InvoiceView) *InvoiceResponse {
	o := FromOrderView(v.Order)
	return &InvoiceResponse{
		InvoiceNumber:    v.InvoiceNumber,
		IssuedAt:         v.IssuedAt,
		OrderID:          o.ID,
		OrderNumber:      o.OrderNumber,
		Status:           o.Status,
		Paid:             v.Paid,
		Void:             v.Void,
		PaymentReference: o.PaymentReference,
		BillTo: InvoiceParty{
			Name:    o.FullName,
			Email:   o.Email,
			Phone:   o.Phone,
			Address: o.ShipTo,
		},
		Lines:        o.Items,
		Subtotal:     o.Subtotal,
		ShippingCost: o.ShippingCost,
		TotalAmount:  o.TotalAmount,
	}
}

type OrderListItemResponse struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"order_number"`
	Status       string    `json:"status"`
	Subtotal     string    `json:"subtotal"`
	ShippingCost string    `json:"shipping_cost"`
	TotalAmount  string    `json:"total_amount"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromOrderList(items []*queries.OrderListItem) []*OrderListItemResponse {
	res := make([]*OrderListItemResponse, len(items))
	for i, it := range items {
		res[i] = &OrderListItemResponse{
			ID:           it.ID.String(),
			OrderNumber:  it.OrderNumber,
			Status:       it.Status,
			Subtotal:     money.Format(it.Subtotal),
			ShippingCost: money.Format(it.ShippingCost),
			TotalAmount:  money.Format(it.TotalAmount),
			ItemCount:    it.ItemCount,
			CreatedAt:    it.CreatedAt,
		}
	}
	return res
}
