package commands

import (
	"context"

	"vinyl-record-house/internal/domain/catalog"
	domreview "vinyl-record-house/internal/domain/review"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewResult struct {
	ReviewID         uuid.UUID
	VerifiedPurchase bool
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actor shared.Actor) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

type CreateReviewRequest struct {
	RecordID uuid.UUID
	Rating   int
	Title    string
	Comment  string
}

type UpdateReviewRequest struct {
	Rating  int
	Title   string
	Comment string
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	var result CreateReviewResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RecordByID(ctx, req.RecordID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.ErrRecordNotFound
			}
			return err
		}

		verified, err := tx.Orders().HasDeliveredPurchase(ctx, tx.DB(), userID, req.RecordID)
		if err != nil {
			return err
		}

		rev, err := domreview.NewReview(uuid.Nil, userID, req.RecordID, req.Rating, req.Title, req.Comment, verified, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return domreview.ErrReviewExists
			}
			return err
		}
		result = CreateReviewResult{ReviewID: rev.ID(), VerifiedPurchase: verified}
		return tx.RatingStats().Recalc(ctx, tx.DB(), req.RecordID)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := uc.lockReview(ctx, tx, reviewID)
		if err != nil {
			return err
		}
		if rev.UserID() != actorID {
			return domreview.ErrReviewNotOwned
		}
		if err := rev.Revise(req.Rating, req.Title, req.Comment, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reviews().Update(ctx, tx.DB(), rev); err != nil {
			return err
		}
		return tx.RatingStats().Recalc(ctx, tx.DB(), rev.RecordID())
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := uc.lockReview(ctx, tx, reviewID)
		if err != nil {
			return err
		}
		if !actor.CanActFor(rev.UserID()) {
			return domreview.ErrReviewNotOwned
		}
		if err := tx.Reviews().Delete(ctx, tx.DB(), reviewID); err != nil {
			return err
		}
		return tx.RatingStats().Recalc(ctx, tx.DB(), rev.RecordID())
	})
}

func (uc *reviewUseCaseImpl) lockReview(ctx context.Context, tx shared.Tx, reviewID uuid.UUID) (*domreview.Review, error) {
	rev, err := tx.Reviews().FindForUpdate(ctx, tx.DB(), reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, domreview.ErrReviewNotFound
		}
		return nil, err
	}
	return rev, nil
}
