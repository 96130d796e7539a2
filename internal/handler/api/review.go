package api

import (
	"errors"
	"net/http"
	"strconv"

	domreview "shop-api/internal/domain/review"
	reqdto "shop-api/internal/handler/dto/request"
	resdto "shop-api/internal/handler/dto/response"
	"shop-api/internal/handler/httperr"
	"shop-api/internal/handler/middleware"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/commands"
	"shop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Create a review for a product; one review per user per product
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products/{productId}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), commands.CreateReviewRequest{
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}, userID)
	if err != nil {
		abortReviewError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.ReviewID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review")
		return
	}

	c.JSON(http.StatusCreated, resdto.OK(resdto.FromReviewView(view)))
}

// @Summary List product reviews
// @Description List all reviews for a product, newest first
// @Tags reviews
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Router /products/{productId}/reviews [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	views, err := h.q.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews")
		return
	}

	c.JSON(http.StatusOK, resdto.OKList(resdto.FromReviewViews(views), len(views)))
}

// @Summary Delete review
// @Description Delete own review by ID
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}

	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review id")
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), reviewID, userID); err != nil {
		abortReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OKMessage("Review deleted successfully"))
}

func abortReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
	case errors.Is(err, errs.ErrReviewNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found")
	case errors.Is(err, errs.ErrDuplicateReview):
		httperr.AbortWithError(c, http.StatusConflict, err, "Product already reviewed")
	case errors.Is(err, domreview.ErrInvalidRating),
		errors.Is(err, domreview.ErrEmptyComment),
		errors.Is(err, domreview.ErrCommentTooLong):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
