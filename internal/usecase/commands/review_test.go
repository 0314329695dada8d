//go:build unit

package commands_test

import (
	"context"
	"testing"

	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/domain/review"
	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/usecase/commands"
	"vinyl-record-house/internal/usecase/shared"
	"vinyl-record-house/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewCommands_CreateReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	rec := builder.NewRecordBuilder().BuildDomain()
	req := commands.CreateReviewRequest{RecordID: rec.ID(), Rating: 4, Title: "Warm master", Comment: "Bass sits right."}

	newUseCase := func(t *testing.T) (*txMocks, commands.ReviewCommands) {
		m := newTxMocks(gomock.NewController(t))
		return m, commands.NewReviewUseCase(m.uow, clock.NewMockClock(fixedNow))
	}

	t.Run("success: delivered purchase marks the review verified", func(t *testing.T) {
		m, uc := newUseCase(t)

		m.expectWithin()
		m.reads.EXPECT().RecordByID(gomock.Any(), rec.ID()).Return(rec, nil)
		m.orders.EXPECT().HasDeliveredPurchase(gomock.Any(), gomock.Any(), userID, rec.ID()).Return(true, nil)
		m.reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, rev *review.Review) error {
				assert.Equal(t, 4, rev.Rating().Value())
				assert.True(t, rev.VerifiedPurchase())
				assert.Equal(t, fixedNow, rev.CreatedAt())
				return nil
			})
		m.ratingStats.EXPECT().Recalc(gomock.Any(), gomock.Any(), rec.ID()).Return(nil)

		result, err := uc.CreateReview(ctx, req, userID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ReviewID)
		assert.True(t, result.VerifiedPurchase)
	})

	t.Run("error: second review of the same record", func(t *testing.T) {
		m, uc := newUseCase(t)

		m.expectWithin()
		m.reads.EXPECT().RecordByID(gomock.Any(), rec.ID()).Return(rec, nil)
		m.orders.EXPECT().HasDeliveredPurchase(gomock.Any(), gomock.Any(), userID, rec.ID()).Return(false, nil)
		m.reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create review", nil, infra.KindDuplicateKey))

		_, err := uc.CreateReview(ctx, req, userID)
		assert.ErrorIs(t, err, review.ErrReviewExists)
	})

	t.Run("error: unknown record", func(t *testing.T) {
		m, uc := newUseCase(t)

		m.expectWithin()
		m.reads.EXPECT().RecordByID(gomock.Any(), rec.ID()).
			Return(nil, infra.WrapRepoErr("record not found", nil, infra.KindNotFound))

		_, err := uc.CreateReview(ctx, req, userID)
		assert.ErrorIs(t, err, catalog.ErrRecordNotFound)
	})

	t.Run("error: invalid rating", func(t *testing.T) {
		m, uc := newUseCase(t)
		bad := req
		bad.Rating = 0

		m.expectWithin()
		m.reads.EXPECT().RecordByID(gomock.Any(), rec.ID()).Return(rec, nil)
		m.orders.EXPECT().HasDeliveredPurchase(gomock.Any(), gomock.Any(), userID, rec.ID()).Return(false, nil)

		_, err := uc.CreateReview(ctx, bad, userID)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	})
}

func TestReviewCommands_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	newUseCase := func(t *testing.T) (*txMocks, commands.ReviewCommands) {
		m := newTxMocks(gomock.NewController(t))
		return m, commands.NewReviewUseCase(m.uow, clock.NewMockClock(fixedNow))
	}
	stored := func(t *testing.T) *review.Review {
		rev, err := builder.NewReviewBuilder().WithUserID(authorID).BuildDomain()
		require.NoError(t, err)
		return rev
	}

	t.Run("author revises the review", func(t *testing.T) {
		m, uc := newUseCase(t)
		rev := stored(t)

		m.expectWithin()
		m.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rev.ID()).Return(rev, nil)
		m.reviews.EXPECT().Update(gomock.Any(), gomock.Any(), rev).Return(nil)
		m.ratingStats.EXPECT().Recalc(gomock.Any(), gomock.Any(), rev.RecordID()).Return(nil)

		err := uc.UpdateReview(ctx, rev.ID(), commands.UpdateReviewRequest{Rating: 2, Title: "Noisy side B", Comment: "Surface noise."}, authorID)
		require.NoError(t, err)
		assert.Equal(t, 2, rev.Rating().Value())
		assert.Equal(t, fixedNow, rev.UpdatedAt())
	})

	t.Run("someone else cannot revise", func(t *testing.T) {
		m, uc := newUseCase(t)
		rev := stored(t)

		m.expectWithin()
		m.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rev.ID()).Return(rev, nil)

		err := uc.UpdateReview(ctx, rev.ID(), commands.UpdateReviewRequest{Rating: 1, Title: "x", Comment: "y"}, uuid.New())
		assert.ErrorIs(t, err, review.ErrReviewNotOwned)
	})

	t.Run("staff may delete", func(t *testing.T) {
		m, uc := newUseCase(t)
		rev := stored(t)

		m.expectWithin()
		m.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rev.ID()).Return(rev, nil)
		m.reviews.EXPECT().Delete(gomock.Any(), gomock.Any(), rev.ID()).Return(nil)
		m.ratingStats.EXPECT().Recalc(gomock.Any(), gomock.Any(), rev.RecordID()).Return(nil)

		err := uc.DeleteReview(ctx, rev.ID(), shared.Actor{UserID: uuid.New(), Role: user.RoleStaff})
		assert.NoError(t, err)
	})

	t.Run("missing review", func(t *testing.T) {
		m, uc := newUseCase(t)
		id := uuid.New()

		m.expectWithin()
		m.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound))

		err := uc.DeleteReview(ctx, id, shared.Actor{UserID: authorID, Role: user.RoleCustomer})
		assert.ErrorIs(t, err, review.ErrReviewNotFound)
	})
}
