package response

import (
	"time"

	"shop-api/internal/usecase/queries"
)

type ReviewResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		UserID:    v.UserID.String(),
		Rating:    v.Rating,
		Comment:   v.Comment,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(views))
	for i, v := range views {
		res[i] = FromReviewView(v)
	}
	return res
}
