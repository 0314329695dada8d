package order

import (
	"regexp"
	"strings"
)

const (
	DefaultCountry   = "Hong Kong"
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MaxAddressLength = 255
	MaxCityLength    = 100
	MaxPostalLength  = 20
	MaxNotesLength   = 1000
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)
)

type Contact struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Lines renders the address the way it is printed on a shipping label.
func (a Address) Lines() []string {
	lines := []string{a.Line1}
	if a.Line2 != "" {
		lines = append(lines, a.Line2)
	}
	locality := strings.TrimSpace(strings.Join(nonEmpty(a.City, a.State, a.PostalCode), ", "))
	if locality != "" {
		lines = append(lines, locality)
	}
	return append(lines, a.Country)
}

// CheckoutInput is the billing/shipping form of one checkout.
type CheckoutInput struct {
	Contact               Contact
	Billing               Address
	ShippingSameAsBilling bool
	Shipping              Address
	Notes                 string
}

// Normalize trims every field and fills the default country.
func (in CheckoutInput) Normalize() CheckoutInput {
	in.Contact = Contact{
		Email:     strings.ToLower(strings.TrimSpace(in.Contact.Email)),
		FirstName: strings.TrimSpace(in.Contact.FirstName),
		LastName:  strings.TrimSpace(in.Contact.LastName),
		Phone:     strings.TrimSpace(in.Contact.Phone),
	}
	in.Billing = normalizeAddress(in.Billing)
	in.Shipping = normalizeAddress(in.Shipping)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

// ShipTo is the address the order will be delivered to.
func (in CheckoutInput) ShipTo() Address {
	if in.ShippingSameAsBilling {
		return in.Billing
	}
	return in.Shipping
}

// Validate reports every problem at once; nil means the input can be used for an order.
func (in CheckoutInput) Validate() error {
	var errs ValidationErrors

	c := in.Contact
	switch {
	case c.Email == "":
		errs.add("email", "is required")
	case len(c.Email) > MaxEmailLength || !emailPattern.MatchString(c.Email):
		errs.add("email", "is not a valid email address")
	}
	requireText(&errs, "first_name", c.FirstName, MaxNameLength)
	requireText(&errs, "last_name", c.LastName, MaxNameLength)
	if c.Phone != "" && !phonePattern.MatchString(c.Phone) {
		errs.add("phone", "is not a valid phone number")
	}

	validateAddress(&errs, "billing", in.Billing)
	if !in.ShippingSameAsBilling {
		validateAddress(&errs, "shipping", in.Shipping)
	}
	if len(in.Notes) > MaxNotesLength {
		errs.add("notes", "is too long")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateAddress(errs *ValidationErrors, prefix string, a Address) {
	requireText(errs, prefix+".address_line_1", a.Line1, MaxAddressLength)
	if len(a.Line2) > MaxAddressLength {
		errs.add(prefix+".address_line_2", "is too long")
	}
	requireText(errs, prefix+".city", a.City, MaxCityLength)
	if len(a.State) > MaxCityLength {
		errs.add(prefix+".state", "is too long")
	}
	if len(a.PostalCode) > MaxPostalLength {
		errs.add(prefix+".postal_code", "is too long")
	}
	requireText(errs, prefix+".country", a.Country, MaxCityLength)
}

func requireText(errs *ValidationErrors, field, v string, maxLen int) {
	switch {
	case v == "":
		errs.add(field, "is required")
	case len(v) > maxLen:
		errs.add(field, "is too long")
	}
}

func normalizeAddress(a Address) Address {
	a = Address{
		Line1:      strings.TrimSpace(a.Line1),
		Line2:      strings.TrimSpace(a.Line2),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Country:    strings.TrimSpace(a.Country),
	}
	if a.Country == "" && a.Line1 != "" {
		a.Country = DefaultCountry
	}
	return a
}

func nonEmpty(vals ...string) []string {
	out := vals[:0:0]
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
