package catalog

import (
	"fmt"

	"vinyl-record-house/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInsufficientStock = errs.New("insufficient stock")
	ErrInvalidQuantity   = errs.New("quantity must be at least 1")
	ErrRecordNotFound    = errs.New("vinyl record not found")
)

// InsufficientStockError identifies the line that cannot be fulfilled.
type InsufficientStockError struct {
	RecordID  uuid.UUID
	Title     string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q (%s): requested %d, available %d",
		e.Title, e.RecordID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type ArtistType string

const (
	ArtistTypeSolo  ArtistType = "solo"
	ArtistTypeBand  ArtistType = "band"
	ArtistTypeGroup ArtistType = "group"
	ArtistTypeDuo   ArtistType = "duo"
)

// Condition follows the Goldmine grading scale.
type Condition string

const (
	ConditionMint         Condition = "M"
	ConditionNearMint     Condition = "NM"
	ConditionVeryGoodPlus Condition = "VG+"
	ConditionVeryGood     Condition = "VG"
	ConditionGoodPlus     Condition = "G+"
	ConditionGood         Condition = "G"
	ConditionFair         Condition = "F"
	ConditionPoor         Condition = "P"
)

func (c Condition) IsValid() bool {
	switch c {
	case ConditionMint, ConditionNearMint, ConditionVeryGoodPlus, ConditionVeryGood,
		ConditionGoodPlus, ConditionGood, ConditionFair, ConditionPoor:
		return true
	default:
		return false
	}
}
