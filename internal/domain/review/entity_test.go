//go:build unit

package review_test

import (
	"strings"
	"testing"

	"shop-api/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	for _, v := range []int32{1, 3, 5} {
		r, err := review.NewRating(v)
		require.NoError(t, err)
		assert.Equal(t, v, r.Value())
	}

	for _, v := range []int32{0, 6, -1} {
		_, err := review.NewRating(v)
		assert.ErrorIs(t, err, review.ErrInvalidRating, "rating %d", v)
	}
}

func TestNewComment(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		c, err := review.NewComment("  great product  ")
		require.NoError(t, err)
		assert.Equal(t, "great product", c.String())
	})

	t.Run("rejects empty and whitespace-only comments", func(t *testing.T) {
		_, err := review.NewComment("")
		assert.ErrorIs(t, err, review.ErrEmptyComment)

		_, err = review.NewComment("   ")
		assert.ErrorIs(t, err, review.ErrEmptyComment)
	})

	t.Run("enforces the maximum length", func(t *testing.T) {
		_, err := review.NewComment(strings.Repeat("a", review.MaxCommentLength))
		assert.NoError(t, err)

		_, err = review.NewComment(strings.Repeat("a", review.MaxCommentLength+1))
		assert.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}

func TestNewReview(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a review with validated fields", func(t *testing.T) {
		rev, err := review.NewReview(1, 100, userID, 4, "solid choice")
		require.NoError(t, err)

		assert.Equal(t, int64(1), rev.ID())
		assert.Equal(t, int64(100), rev.ProductID())
		assert.Equal(t, userID, rev.UserID())
		assert.Equal(t, int32(4), rev.Rating().Value())
		assert.Equal(t, "solid choice", rev.Comment().String())
	})

	t.Run("propagates rating validation", func(t *testing.T) {
		_, err := review.NewReview(1, 100, userID, 0, "solid choice")
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	})

	t.Run("propagates comment validation", func(t *testing.T) {
		_, err := review.NewReview(1, 100, userID, 4, "")
		assert.ErrorIs(t, err, review.ErrEmptyComment)
	})
}

func TestMeanRating(t *testing.T) {
	assert.Equal(t, 0.0, review.MeanRating(nil))
	assert.Equal(t, 4.0, review.MeanRating([]int32{4}))
	assert.Equal(t, 3.5, review.MeanRating([]int32{3, 4}))
	assert.InDelta(t, 4.333, review.MeanRating([]int32{5, 4, 4}), 0.001)
}
