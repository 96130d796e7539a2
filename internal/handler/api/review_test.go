//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"shop-api/internal/domain/user"
	"shop-api/internal/handler/api"
	resdto "shop-api/internal/handler/dto/response"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/commands"
	"shop-api/internal/usecase/queries"
	"shop-api/tests/common/builder"
	"shop-api/tests/common/httptest"
	"shop-api/tests/common/testutil"
	commandsmock "shop-api/tests/mock/commands"
	queriesmock "shop-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Stub authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/api/products/:productId/reviews", authMiddleware, s.handler.Create)
	s.router.GET("/api/products/:productId/reviews", s.handler.ListByProduct)
	s.router.DELETE("/api/reviews/:id", authMiddleware, s.handler.Delete)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/api/products/100/reviews"
	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the review", func() {
		view := builder.NewReviewBuilder().WithUserID(s.userID).BuildViewQuery()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.CreateReviewResult{ReviewID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Rating, response.Rating)
		s.Equal(view.Comment, response.Comment)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name         string
			mutate       func(m map[string]any)
			expectCreate bool
		}{
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0)},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6)},
			{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil)},
			{name: "missing field: comment (required)", mutate: testutil.Field("comment", nil)},
			{name: "comment too long (501 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 501))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for a non-numeric product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/products/abc/reviews", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "product not found",
				commandsError:  errs.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "duplicate review",
				commandsError:  errs.ErrDuplicateReview,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Product already reviewed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListByProduct
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByProduct() {
	url := "/api/products/100/reviews"

	s.Run("success: returns the product's reviews with a count", func() {
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().WithID(2).WithComment("Newest first").BuildViewQuery(),
			builder.NewReviewBuilder().WithID(1).BuildViewQuery(),
		}
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), int64(100)).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ReviewResponse
		httptest.AssertListCount(s.T(), rec, http.StatusOK, 2, &response)
		s.Equal(int64(2), response[0].ID)
		s.Equal("Newest first", response[0].Comment)
	})

	s.Run("success: empty list for a product without reviews", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), int64(100)).
			Return([]*queries.ReviewView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertListCount(s.T(), rec, http.StatusOK, 0, nil)
	})

	s.Run("error: 400 Bad Request for a non-numeric product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/abc/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product id")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDelete() {
	url := "/api/reviews/1"

	s.Run("success: returns 200 OK with a confirmation message", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1), s.userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessMessage(s.T(), rec, http.StatusOK, "Review deleted successfully")
	})

	s.Run("error: 400 Bad Request for a non-numeric review id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reviews/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid review id")
	})

	s.Run("error: 404 Not Found for a missing or foreign review", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1), s.userID).
			Return(errs.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
