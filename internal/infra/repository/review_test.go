//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"vinyl-record-house/internal/domain/review"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/infra/repository"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/tests/common/builder"
	repositorymock "vinyl-record-house/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Review Tests
// =============================================================================

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, *review.Review, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review created successfully",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReviewParams) error {
						assert.Equal(t, rev.ID(), arg.ID)
						assert.Equal(t, rev.RecordID(), arg.VinylRecordID)
						assert.Equal(t, int32(5), arg.Rating)
						assert.True(t, arg.IsVerifiedPurchase)
						return nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate review error",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: record deleted meanwhile",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries)

			domainReview, err := builder.NewReviewBuilder().AsVerified().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReview, mockDB)

			actualError := repo.Create(ctx, mockDB, domainReview)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestReviewRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converts to the domain review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		repo := repository.NewReviewRepository(mockQueries)
		row := builder.NewReviewBuilder().WithRating(3).WithTitle("Some surface noise").BuildInfra()

		mockQueries.EXPECT().GetReviewForUpdate(ctx, gomock.Any(), row.ID).Return(row, nil)

		rev, err := repo.FindForUpdate(ctx, &mockDBTX{}, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, rev.ID())
		assert.Equal(t, 3, rev.Rating().Value())
		assert.Equal(t, "Some surface noise", rev.Title().String())
		assert.Equal(t, row.UserID, rev.UserID())
	})

	t.Run("error: review not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		repo := repository.NewReviewRepository(mockQueries)
		id := uuid.New()

		mockQueries.EXPECT().GetReviewForUpdate(ctx, gomock.Any(), id).Return(sqlc.Reviews{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, &mockDBTX{}, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Update / Delete Review Tests
// =============================================================================

func TestReviewRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
	}{
		{name: "success"},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run("update "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			repo := repository.NewReviewRepository(mockQueries)
			rev, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().UpdateReview(ctx, gomock.Any(), gomock.Any()).Return(tc.queryErr)

			actualError := repo.Update(ctx, &mockDBTX{}, rev)
			if tc.expectedError {
				assert.True(t, infra.IsKind(actualError, infra.KindDBFailure))
			} else {
				assert.NoError(t, actualError)
			}
		})

		t.Run("delete "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			repo := repository.NewReviewRepository(mockQueries)
			id := uuid.New()

			mockQueries.EXPECT().DeleteReview(ctx, gomock.Any(), id).Return(tc.queryErr)

			actualError := repo.Delete(ctx, &mockDBTX{}, id)
			if tc.expectedError {
				assert.True(t, infra.IsKind(actualError, infra.KindDBFailure))
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
