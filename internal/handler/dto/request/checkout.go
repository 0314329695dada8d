package request

import "vinyl-record-house/internal/domain/order"

// Field rules live in order.CheckoutInput.Validate so the form reports every problem together.
type AddressRequest struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type CheckoutRequest struct {
	Email                 string         `json:"email"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	Phone                 string         `json:"phone"`
	Billing               AddressRequest `json:"billing"`
	ShippingSameAsBilling *bool          `json:"shipping_same_as_billing"`
	Shipping              AddressRequest `json:"shipping"`
	Notes                 string         `json:"notes"`
}

type PaidCheckoutRequest struct {
	CheckoutRequest
	PaymentSessionToken string `json:"payment_session_token" binding:"required"`
}

func (r *CheckoutRequest) ToDomain() order.CheckoutInput {
	sameAsBilling := true
	if r.ShippingSameAsBilling != nil {
		sameAsBilling = *r.ShippingSameAsBilling
	}
	return order.CheckoutInput{
		Contact: order.Contact{
			Email:     r.Email,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Phone:     r.Phone,
		},
		Billing:               r.Billing.toDomain(),
		ShippingSameAsBilling: sameAsBilling,
		Shipping:              r.Shipping.toDomain(),
		Notes:                 r.Notes,
	}
}

func (a AddressRequest) toDomain() order.Address {
	return order.Address{
		Line1:      a.AddressLine1,
		Line2:      a.AddressLine2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
