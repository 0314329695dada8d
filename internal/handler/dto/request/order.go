package request

import "vinyl-record-house/internal/domain/order"

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *UpdateOrderStatusRequest) ToDomain() (order.Status, error) {
	return order.ParseStatus(r.Status)
}
