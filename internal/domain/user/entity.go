package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, role Role, lastLogin *time.Time, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// Profile is created together with its User and holds the default shipping details.
type Profile struct {
	userID       uuid.UUID
	firstName    string
	lastName     string
	phone        string
	addressLine1 string
	addressLine2 string
	city         string
	state        string
	postalCode   string
	country      string
	newsletter   bool
	createdAt    time.Time
	updatedAt    time.Time
}

const DefaultCountry = "Hong Kong"

func NewProfile(userID uuid.UUID, firstName, lastName string, now time.Time) (*Profile, error) {
	p := &Profile{
		userID:    userID,
		country:   DefaultCountry,
		createdAt: now,
		updatedAt: now,
	}
	if err := p.setNames(firstName, lastName); err != nil {
		return nil, err
	}
	return p, nil
}

type ProfileFields struct {
	FirstName    string
	LastName     string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	Newsletter   bool
}

func ReconstructProfile(userID uuid.UUID, f ProfileFields, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		userID:       userID,
		firstName:    f.FirstName,
		lastName:     f.LastName,
		phone:        f.Phone,
		addressLine1: f.AddressLine1,
		addressLine2: f.AddressLine2,
		city:         f.City,
		state:        f.State,
		postalCode:   f.PostalCode,
		country:      f.Country,
		newsletter:   f.Newsletter,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Update replaces every editable field; callers merge partial input beforehand.
func (p *Profile) Update(f ProfileFields, now time.Time) error {
	if err := p.setNames(f.FirstName, f.LastName); err != nil {
		return err
	}
	phone := strings.TrimSpace(f.Phone)
	if len(phone) > MaxPhoneLength {
		return ErrPhoneTooLong
	}
	p.phone = phone
	p.addressLine1 = strings.TrimSpace(f.AddressLine1)
	p.addressLine2 = strings.TrimSpace(f.AddressLine2)
	p.city = strings.TrimSpace(f.City)
	p.state = strings.TrimSpace(f.State)
	p.postalCode = strings.TrimSpace(f.PostalCode)
	p.country = strings.TrimSpace(f.Country)
	if p.country == "" {
		p.country = DefaultCountry
	}
	p.newsletter = f.Newsletter
	p.updatedAt = now
	return nil
}

func (p *Profile) setNames(first, last string) error {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if len(first) > MaxNameLength || len(last) > MaxNameLength {
		return ErrNameTooLong
	}
	p.firstName, p.lastName = first, last
	return nil
}

func (p *Profile) Fields() ProfileFields {
	return ProfileFields{
		FirstName:    p.firstName,
		LastName:     p.lastName,
		Phone:        p.phone,
		AddressLine1: p.addressLine1,
		AddressLine2: p.addressLine2,
		City:         p.city,
		State:        p.state,
		PostalCode:   p.postalCode,
		Country:      p.country,
		Newsletter:   p.newsletter,
	}
}

func (p *Profile) UserID() uuid.UUID    { return p.userID }
func (p *Profile) FirstName() string    { return p.firstName }
func (p *Profile) LastName() string     { return p.lastName }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }
