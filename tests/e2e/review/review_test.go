//go:build e2e

package review_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"shop-api/internal/domain/user"
	"shop-api/internal/handler/dto/request"
	"shop-api/internal/handler/dto/response"
	"shop-api/tests/common/authtest"
	"shop-api/tests/common/dbtest"
	"shop-api/tests/common/httptest"
	"shop-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productReviewsURL = "/api/products/%d/reviews"
	reviewsURL        = "/api/reviews"
)

type ReviewSuite struct {
	e2e.SharedSuite
}

func (s *ReviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

func (s *ReviewSuite) customerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, user.RoleCustomer)
}

func (s *ReviewSuite) productRatingStats(t *testing.T, productID int64) (float64, int32) {
	t.Helper()
	var avg float64
	var count int32
	err := s.DB.QueryRow(context.Background(),
		"SELECT average_rating, num_reviews FROM products WHERE id = $1", productID).Scan(&avg, &count)
	require.NoError(t, err)
	return avg, count
}

// =============================================================================
// TestCreateReview - Review creation API tests
// =============================================================================

func (s *ReviewSuite) TestCreateReview() {
	url := fmt.Sprintf(productReviewsURL, dbtest.ProductMouseID)

	s.Run("Normal case: User can create review and rating stats are recalculated", func() {
		t := s.T()
		userID := uuid.New()
		token := s.customerToken(t, userID)

		req := request.CreateReviewRequest{Rating: 5, Comment: "Excellent product!"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, req, token)

		var created response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		expected := &response.ReviewResponse{
			ProductID: dbtest.ProductMouseID,
			UserID:    userID.String(),
			Rating:    5,
			Comment:   "Excellent product!",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReviewResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Review response mismatch (-want +got):\n%s", diff)
		}

		avg, count := s.productRatingStats(t, dbtest.ProductMouseID)
		require.InDelta(t, 5.0, avg, 0.001)
		require.Equal(t, int32(1), count)
	})

	s.Run("Normal case: Average rating reflects multiple reviewers", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateReviewRequest{Rating: 5, Comment: "Great"}, s.customerToken(t, uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateReviewRequest{Rating: 2, Comment: "Not for me"}, s.customerToken(t, uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)

		avg, count := s.productRatingStats(t, dbtest.ProductMouseID)
		require.InDelta(t, 3.5, avg, 0.001)
		require.Equal(t, int32(2), count)
	})

	s.Run("Error case: Duplicate review for same product fails", func() {
		t := s.T()
		token := s.customerToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateReviewRequest{Rating: 4, Comment: "First review"}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateReviewRequest{Rating: 1, Comment: "Second attempt"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Product already reviewed")
	})

	s.Run("Error case: Unknown product returns 404", func() {
		t := s.T()
		token := s.customerToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(productReviewsURL, int64(99999)),
			request.CreateReviewRequest{Rating: 4, Comment: "Ghost product"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Product not found")
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateReviewRequest{Rating: 5, Comment: "Great product"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "Should reject unauthorized access")
	})
}

// =============================================================================
// TestListReviews - Product review listing tests
// =============================================================================

func (s *ReviewSuite) TestListReviews() {
	url := fmt.Sprintf(productReviewsURL, dbtest.ProductMouseID)

	s.Run("Normal case: Reviews are listed newest first", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateReviewRequest{Rating: 5, Comment: "First in"}, s.customerToken(t, uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateReviewRequest{Rating: 3, Comment: "Second in"}, s.customerToken(t, uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")

		var listed []*response.ReviewResponse
		httptest.AssertListCount(t, w, http.StatusOK, 2, &listed)
		require.Len(t, listed, 2)
		require.Equal(t, "Second in", listed[0].Comment)
		require.Equal(t, "First in", listed[1].Comment)
	})

	s.Run("Normal case: Product without reviews returns an empty list", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(productReviewsURL, dbtest.ProductKeyboardID), nil, "")

		var listed []*response.ReviewResponse
		httptest.AssertListCount(t, w, http.StatusOK, 0, &listed)
		require.Empty(t, listed)
	})
}

// =============================================================================
// TestDeleteReview - Review deletion API tests
// =============================================================================

func (s *ReviewSuite) TestDeleteReview() {
	url := fmt.Sprintf(productReviewsURL, dbtest.ProductMouseID)

	s.Run("Normal case: Owner can delete review and stats are recalculated", func() {
		t := s.T()
		token := s.customerToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateReviewRequest{Rating: 4, Comment: "Will remove"}, token)
		var created response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%d", reviewsURL, created.ID), nil, token)
		httptest.AssertSuccessMessage(t, w, http.StatusOK, "Review deleted successfully")

		avg, count := s.productRatingStats(t, dbtest.ProductMouseID)
		require.InDelta(t, 0, avg, 0.001)
		require.Equal(t, int32(0), count)
	})

	s.Run("Error case: Deleting someone else's review returns 404", func() {
		t := s.T()
		ownerToken := s.customerToken(t, uuid.New())
		otherToken := s.customerToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateReviewRequest{Rating: 4, Comment: "Mine"}, ownerToken)
		var created response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%d", reviewsURL, created.ID), nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Review not found")

		// The review survives and so do the stats
		_, count := s.productRatingStats(t, dbtest.ProductMouseID)
		require.Equal(t, int32(1), count)
	})

	s.Run("Error case: Unknown review id returns 404", func() {
		t := s.T()
		token := s.customerToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%d", reviewsURL, int64(99999)), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Review not found")
	})
}
