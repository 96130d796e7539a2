package request

type CreateReviewRequest struct {
	Rating  int32  `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=500"`
}
