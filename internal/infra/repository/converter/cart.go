package converter

import (
	"vinyl-record-house/internal/domain/cart"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// OwnerToPgtype splits an owner into the two nullable owner columns.
func OwnerToPgtype(owner cart.Owner) (pgtype.UUID, pgtype.Text) {
	if id, ok := owner.UserID(); ok {
		return pgconv.UUIDToPgtype(id), pgtype.Text{}
	}
	key, _ := owner.SessionKey()
	return pgtype.UUID{}, pgconv.StringToPgtype(key)
}

func CartFromRows(row sqlc.Carts, items []sqlc.CartItems) (*cart.Cart, error) {
	owner, err := ownerFromRow(row)
	if err != nil {
		return nil, err
	}
	lines := make([]cart.Item, 0, len(items))
	for _, it := range items {
		lines = append(lines, cart.ReconstructItem(it.VinylRecordID, int(it.Quantity), it.UnitPrice, pgconv.TimeFromPgtype(it.AddedAt)))
	}
	return cart.ReconstructCart(row.ID, owner, lines, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}

func CartItemToUpsertParams(cartID uuid.UUID, item cart.Item) sqlc.UpsertCartItemParams {
	return sqlc.UpsertCartItemParams{
		CartID:        cartID,
		VinylRecordID: item.RecordID(),
		Quantity:      pgconv.IntToInt32(item.Quantity()),
		UnitPrice:     item.UnitPrice(),
		AddedAt:       pgconv.TimeToPgtype(item.AddedAt()),
	}
}

func ownerFromRow(row sqlc.Carts) (cart.Owner, error) {
	if row.UserID.Valid {
		return cart.UserOwner(uuid.UUID(row.UserID.Bytes))
	}
	return cart.SessionOwner(row.SessionKey.String)
}
