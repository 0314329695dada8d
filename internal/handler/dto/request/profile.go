package request

import (
	"vinyl-record-house/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// UpdateProfileRequest has patch semantics: omitted fields keep their stored value.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName     *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,max=20"`
	AddressLine1 *string `json:"address_line_1" binding:"omitempty,max=255"`
	AddressLine2 *string `json:"address_line_2" binding:"omitempty,max=255"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	PostalCode   *string `json:"postal_code" binding:"omitempty,max=20"`
	Country      *string `json:"country" binding:"omitempty,max=100"`
	Newsletter   *bool   `json:"newsletter"`
}

func (r *UpdateProfileRequest) ToPatch() (commands.ProfilePatch, error) {
	var p commands.ProfilePatch
	if err := copier.Copy(&p, r); err != nil {
		return commands.ProfilePatch{}, err
	}
	return p, nil
}
