package password

import (
	"vinyl-record-house/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the bcrypt input limit; longer passwords are rejected rather than silently truncated.
const MaxLength = 72

var (
	ErrEmpty    = errs.New("password is empty")
	ErrTooLong  = errs.Newf("password exceeds %d bytes", MaxLength)
	ErrMismatch = errs.New("password does not match")
)

const cost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmpty
	case len(plain) > MaxLength:
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt hash")
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return errs.Wrap(err, "bcrypt compare")
}
