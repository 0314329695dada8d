package repository

import (
	"context"
	"time"

	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/infra/repository/converter"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	CreateProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProfileParams) error
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLastLoginParams) error
	GetProfileForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.UserProfiles, error)
	UpdateProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProfileParams) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) CreateProfile(ctx context.Context, tx sqlc.DBTX, p *user.Profile) error {
	err := r.queries.CreateProfile(ctx, tx, sqlc.CreateProfileParams{
		UserID:    p.UserID(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
		Country:   p.Fields().Country,
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create profile", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateLastLogin(ctx, tx, sqlc.UpdateLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) FindProfileForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*user.Profile, error) {
	row, err := r.queries.GetProfileForUpdate(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock profile", err)
	}
	return converter.ProfileFromRow(row), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, p *user.Profile) error {
	if err := r.queries.UpdateProfile(ctx, tx, converter.ProfileToUpdateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	return nil
}
