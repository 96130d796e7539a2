package review

import (
	"github.com/google/uuid"
)

type Review struct {
	id        int64
	productID int64
	userID    uuid.UUID
	rating    Rating
	comment   Comment
}

func NewReview(id, productID int64, userID uuid.UUID, ratingValue int32, commentText string) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        id,
		productID: productID,
		userID:    userID,
		rating:    rating,
		comment:   comment,
	}, nil
}

func (r *Review) ID() int64         { return r.id }
func (r *Review) ProductID() int64  { return r.productID }
func (r *Review) UserID() uuid.UUID { return r.userID }
func (r *Review) Rating() Rating    { return r.rating }
func (r *Review) Comment() Comment  { return r.comment }

// MeanRating is the unweighted arithmetic mean of ratings; an empty slice
// yields zero rather than dividing by zero.
func MeanRating(ratings []int32) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	return float64(sum) / float64(len(ratings))
}
