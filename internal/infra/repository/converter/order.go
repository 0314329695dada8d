package converter

import (
	"vinyl-record-house/internal/domain/order"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	contact, ship := o.Contact(), o.ShipTo()
	return sqlc.CreateOrderParams{
		OrderID:          o.ID(),
		UserID:           o.UserID(),
		Email:            contact.Email,
		FirstName:        contact.FirstName,
		LastName:         contact.LastName,
		Phone:            contact.Phone,
		AddressLine1:     ship.Line1,
		AddressLine2:     ship.Line2,
		City:             ship.City,
		State:            ship.State,
		PostalCode:       ship.PostalCode,
		Country:          ship.Country,
		Notes:            o.Notes(),
		Status:           o.Status().String(),
		Subtotal:         o.Subtotal(),
		ShippingCost:     o.ShippingCost(),
		TotalAmount:      o.TotalAmount(),
		PaymentReference: pgconv.OptionalStringToPgtype(o.PaymentReference()),
		CreatedAt:        pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderItemsToCopyParams(seq int64, items []order.Item) []sqlc.CreateOrderItemsParams {
	params := make([]sqlc.CreateOrderItemsParams, 0, len(items))
	for _, it := range items {
		params = append(params, sqlc.CreateOrderItemsParams{
			OrderID:       seq,
			VinylRecordID: pgconv.UUIDPtrToPgtype(it.RecordID()),
			Title:         it.Title(),
			Artist:        it.Artist(),
			ReleaseYear:   pgconv.IntToInt32(it.Year()),
			UnitPrice:     it.UnitPrice(),
			Quantity:      pgconv.IntToInt32(it.Quantity()),
		})
	}
	return params
}

func OrderToStatusParams(o *order.Order) sqlc.UpdateOrderStatusParams {
	return sqlc.UpdateOrderStatusParams{
		ID:          o.Seq(),
		Status:      o.Status().String(),
		ShippedAt:   pgconv.TimePtrToPgtype(o.ShippedAt()),
		DeliveredAt: pgconv.TimePtrToPgtype(o.DeliveredAt()),
		UpdatedAt:   pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderFromRows(row sqlc.Orders, itemRows []sqlc.OrderItems) *order.Order {
	items := make([]order.Item, 0, len(itemRows))
	for _, it := range itemRows {
		items = append(items, order.ReconstructItem(
			pgconv.UUIDPtrFromPgtype(it.VinylRecordID),
			it.Title,
			it.Artist,
			int(it.ReleaseYear),
			it.UnitPrice,
			int(it.Quantity),
		))
	}
	return order.Reconstruct(order.Fields{
		ID:     row.OrderID,
		Seq:    row.ID,
		UserID: row.UserID,
		Contact: order.Contact{
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Phone:     row.Phone,
		},
		ShipTo: order.Address{
			Line1:      row.AddressLine1,
			Line2:      row.AddressLine2,
			City:       row.City,
			State:      row.State,
			PostalCode: row.PostalCode,
			Country:    row.Country,
		},
		Notes:            row.Notes,
		Status:           order.Status(row.Status),
		Subtotal:         row.Subtotal,
		ShippingCost:     row.ShippingCost,
		TotalAmount:      row.TotalAmount,
		PaymentReference: pgconv.StringFromPgtype(row.PaymentReference),
		Items:            items,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		ShippedAt:        pgconv.TimePtrFromPgtype(row.ShippedAt),
		DeliveredAt:      pgconv.TimePtrFromPgtype(row.DeliveredAt),
	})
}
