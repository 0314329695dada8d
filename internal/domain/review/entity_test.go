//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"vinyl-record-house/internal/domain/review"
	"vinyl-record-house/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Flawless pressing", actual.Title().String())
		assert.Equal(t, "Quiet vinyl, great sleeve.", actual.Comment().String())
		assert.False(t, actual.VerifiedPurchase())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("title validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.ReviewBuilder) { b.WithTitle("  ") },
				errIs:  review.ErrEmptyTitle,
			},
			{
				name:   "maximum length title",
				mutate: func(b *builder.ReviewBuilder) { b.WithTitle(strings.Repeat("t", review.MaxTitleLength)) },
			},
			{
				name:   "title exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithTitle(strings.Repeat("t", review.MaxTitleLength+1)) },
				errIs:  review.ErrTitleTooLong,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") },
			},
			{
				name:   "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{
				name:   "empty comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "whitespace only comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("verified flag survives revision", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().AsVerified().BuildDomain()
		require.NoError(t, err)

		later := rev.CreatedAt().Add(time.Hour)
		require.NoError(t, rev.Revise(3, "  Second listen ", "Grew on me", later))

		assert.True(t, rev.VerifiedPurchase())
		assert.Equal(t, 3, rev.Rating().Value())
		assert.Equal(t, "Second listen", rev.Title().String())
		assert.Equal(t, later, rev.UpdatedAt())
	})

	t.Run("failed revision changes nothing", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		err = rev.Revise(9, "t", "c", time.Now())
		require.ErrorIs(t, err, review.ErrInvalidRating)
		assert.Equal(t, 5, rev.Rating().Value())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		review1, err1 := builder.NewReviewBuilder().BuildDomain()
		review2, err2 := builder.NewReviewBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, review1.ID(), review2.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
