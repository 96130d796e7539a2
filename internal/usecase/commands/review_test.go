//go:build unit

package commands_test

import (
	"context"
	"testing"

	domreview "shop-api/internal/domain/review"
	"shop-api/internal/infra"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/commands"
	"shop-api/internal/usecase/shared"
	"shop-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCommands_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates the review and recalculates the product rating", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.products[100] = &shared.ProductSnapshot{ID: 100, Name: "Widget", Price: 10, Status: "active"}

		uc := commands.NewReviewUseCase(uow)
		result, err := uc.Create(ctx, builder.NewReviewBuilder().BuildCommandRequest(), userID)
		require.NoError(t, err)

		assert.Equal(t, int64(1), result.ReviewID)
		require.Len(t, uow.tx.reviews.createdReviews, 1)
		rev := uow.tx.reviews.createdReviews[0]
		assert.Equal(t, userID, rev.UserID())
		assert.Equal(t, int32(5), rev.Rating().Value())
		assert.Equal(t, []int64{100}, uow.tx.ratingStats.recalced)
	})

	t.Run("fails with ErrProductNotFound for an unknown product", func(t *testing.T) {
		uow := newFakeUoW()

		uc := commands.NewReviewUseCase(uow)
		_, err := uc.Create(ctx, builder.NewReviewBuilder().WithProductID(999).BuildCommandRequest(), userID)

		assert.ErrorIs(t, err, errs.ErrProductNotFound)
		assert.Empty(t, uow.tx.reviews.createdReviews)
		assert.Empty(t, uow.tx.ratingStats.recalced)
	})

	t.Run("propagates domain validation errors", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.products[100] = &shared.ProductSnapshot{ID: 100, Status: "active"}

		uc := commands.NewReviewUseCase(uow)
		_, err := uc.Create(ctx, builder.NewReviewBuilder().WithRating(6).BuildCommandRequest(), userID)

		assert.ErrorIs(t, err, domreview.ErrInvalidRating)
	})

	t.Run("maps a duplicate review to ErrDuplicateReview", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.products[100] = &shared.ProductSnapshot{ID: 100, Status: "active"}
		uow.tx.reviews.createErr = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)

		uc := commands.NewReviewUseCase(uow)
		_, err := uc.Create(ctx, builder.NewReviewBuilder().BuildCommandRequest(), userID)

		assert.ErrorIs(t, err, errs.ErrDuplicateReview)
		assert.Empty(t, uow.tx.ratingStats.recalced)
	})
}

func TestReviewCommands_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes the caller's review and recalculates the rating", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.reviews[1] = builder.NewReviewBuilder().WithUserID(userID).BuildSnapshot()
		uow.tx.reviews.deleted = true

		uc := commands.NewReviewUseCase(uow)
		err := uc.Delete(ctx, 1, userID)
		require.NoError(t, err)

		assert.Equal(t, []int64{1}, uow.tx.reviews.deletedIDs)
		assert.Equal(t, []int64{100}, uow.tx.ratingStats.recalced)
	})

	t.Run("fails with ErrReviewNotFound for an unknown review", func(t *testing.T) {
		uow := newFakeUoW()

		uc := commands.NewReviewUseCase(uow)
		err := uc.Delete(ctx, 999, userID)

		assert.ErrorIs(t, err, errs.ErrReviewNotFound)
		assert.Empty(t, uow.tx.reviews.deletedIDs)
	})

	t.Run("reports another user's review as not found", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.reviews[1] = builder.NewReviewBuilder().BuildSnapshot()
		// The delete is scoped to the caller, so no row matches.
		uow.tx.reviews.deleted = false

		uc := commands.NewReviewUseCase(uow)
		err := uc.Delete(ctx, 1, userID)

		assert.ErrorIs(t, err, errs.ErrReviewNotFound)
		assert.Empty(t, uow.tx.ratingStats.recalced)
	})
}
