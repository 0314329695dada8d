package request

import "github.com/google/uuid"

type AddCartItemRequest struct {
	RecordID uuid.UUID `json:"record_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest removes the line when quantity is zero.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
