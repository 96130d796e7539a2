//go:build unit || e2e

package builder

import (
	"time"

	domreview "shop-api/internal/domain/review"
	reqdto "shop-api/internal/handler/dto/request"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/internal/pkg/pgconv"
	"shop-api/internal/usecase/commands"
	"shop-api/internal/usecase/queries"
	"shop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID        int64
	ProductID int64
	UserID    uuid.UUID
	Rating    int32
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:        1,
		ProductID: 100,
		UserID:    uuid.New(),
		Rating:    5,
		Comment:   "Excellent product!",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(b.ID, b.ProductID, b.UserID, b.Rating, b.Comment)
}

func (b *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:        b.ID,
		ProductID: b.ProductID,
		UserID:    b.UserID,
		Rating:    b.Rating,
		Comment:   b.Comment,
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        b.ID,
		ProductID: b.ProductID,
		UserID:    b.UserID,
		Rating:    b.Rating,
		Comment:   b.Comment,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:        b.ID,
		ProductID: b.ProductID,
		UserID:    b.UserID,
		Rating:    b.Rating,
		Comment:   b.Comment,
	}
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  b.Rating,
		Comment: b.Comment,
	}
}

func (b *ReviewBuilder) BuildCommandRequest() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		ProductID: b.ProductID,
		Rating:    b.Rating,
		Comment:   b.Comment,
	}
}

// Fluent builder methods
func (b *ReviewBuilder) WithID(id int64) *ReviewBuilder {
	b.ID = id
	return b
}

func (b *ReviewBuilder) WithProductID(productID int64) *ReviewBuilder {
	b.ProductID = productID
	return b
}

func (b *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	b.UserID = userID
	return b
}

func (b *ReviewBuilder) WithRating(rating int32) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}
