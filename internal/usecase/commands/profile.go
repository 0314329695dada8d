package commands

import (
	"context"

	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/pkg/patch"
	"vinyl-record-house/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errs.New("profile not found")

// ProfilePatch carries only the fields the caller sent.
type ProfilePatch struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string
	Newsletter   *bool
}

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, p ProfilePatch) error
}

type profileUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProfileUseCase(uow shared.UnitOfWork, clk clock.Clock) ProfileCommands {
	return &profileUseCaseImpl{uow: uow, clock: clk}
}

func (uc *profileUseCaseImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, p ProfilePatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		profile, err := tx.Users().FindProfileForUpdate(ctx, tx.DB(), userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		if err := profile.Update(p.apply(profile.Fields()), uc.clock.Now()); err != nil {
			return err
		}
		return tx.Users().UpdateProfile(ctx, tx.DB(), profile)
	})
}

func (p ProfilePatch) apply(cur user.ProfileFields) user.ProfileFields {
	return user.ProfileFields{
		FirstName:    patch.Text(p.FirstName, cur.FirstName),
		LastName:     patch.Text(p.LastName, cur.LastName),
		Phone:        patch.Text(p.Phone, cur.Phone),
		AddressLine1: patch.Text(p.AddressLine1, cur.AddressLine1),
		AddressLine2: patch.Text(p.AddressLine2, cur.AddressLine2),
		City:         patch.Text(p.City, cur.City),
		State:        patch.Text(p.State, cur.State),
		PostalCode:   patch.Text(p.PostalCode, cur.PostalCode),
		Country:      patch.Text(p.Country, cur.Country),
		Newsletter:   patch.Coalesce(p.Newsletter, cur.Newsletter),
	}
}
