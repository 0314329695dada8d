package order

import (
	"fmt"
	"strings"

	"vinyl-record-house/internal/pkg/errs"
)

var (
	ErrEmptyCart             = errs.New("cart is empty")
	ErrInvalidTransition     = errs.New("invalid order status transition")
	ErrInvalidStatus         = errs.New("invalid order status")
	ErrValidation            = errs.New("checkout input validation failed")
	ErrInvalidShippingPolicy = errs.New("shipping fee and threshold must not be negative")
	ErrRecordMissing         = errs.New("cart references a record that no longer exists")
)

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors lists every invalid field of one input.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (v *ValidationErrors) add(field, msg string) {
	*v = append(*v, FieldError{Field: field, Message: msg})
}
