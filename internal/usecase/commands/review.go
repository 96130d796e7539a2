package commands

import (
	"context"

	domreview "shop-api/internal/domain/review"
	"shop-api/internal/infra"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const reviewCounter = "review"

type CreateReviewRequest struct {
	ProductID int64
	Rating    int32
	Comment   string
}

type CreateReviewResult struct {
	ReviewID int64
}

type ReviewCommands interface {
	Create(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	Delete(ctx context.Context, reviewID int64, userID uuid.UUID) error
}

type reviewUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewReviewUseCase(uow shared.UnitOfWork) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow}
}

func (uc *reviewUseCaseImpl) Create(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProductByID(ctx, req.ProductID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrProductNotFound
			}
			return err
		}

		id, err := tx.Counters().Next(ctx, tx.DB(), reviewCounter)
		if err != nil {
			return err
		}

		rev, err := domreview.NewReview(id, req.ProductID, userID, req.Rating, req.Comment)
		if err != nil {
			return err
		}

		createdID, err = tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.ErrDuplicateReview
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.ErrProductNotFound
			}
			return err
		}

		return tx.RatingStats().RecalcProductRatingStats(ctx, tx.DB(), req.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

// Delete removes the caller's own review. Reviews of other users are
// reported as not found rather than forbidden.
func (uc *reviewUseCaseImpl) Delete(ctx context.Context, reviewID int64, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReviewByID(ctx, reviewID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReviewNotFound
			}
			return err
		}

		removed, err := tx.Reviews().Delete(ctx, tx.DB(), reviewID, userID)
		if err != nil {
			return err
		}
		if !removed {
			return errs.ErrReviewNotFound
		}

		return tx.RatingStats().RecalcProductRatingStats(ctx, tx.DB(), snap.ProductID)
	})
}
