package api

import (
	"errors"
	"net/http"

	domcoupon "shop-api/internal/domain/coupon"
	reqdto "shop-api/internal/handler/dto/request"
	resdto "shop-api/internal/handler/dto/response"
	"shop-api/internal/handler/httperr"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/commands"
	"shop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Validate coupon
// @Description Check a coupon against a cart total and price the discount without consuming it
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Validate coupon request"
// @Success 200 {object} resdto.ValidateCouponResponse
// @Failure 400 {object} httperr.Response
// @Router /coupon/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	result, err := h.q.Validate(c.Request.Context(), req.Code, req.CartTotal)
	if err != nil {
		abortCouponError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromValidationResult(result)))
}

// @Summary Use coupon
// @Description Consume one redemption of a coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UseCouponRequest true "Use coupon request"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupon/use [post]
func (h *CouponHandler) Use(c *gin.Context) {
	var req reqdto.UseCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	snap, err := h.cmds.Use(c.Request.Context(), req.Code)
	if err != nil {
		abortCouponError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OKWithMessage(resdto.FromCouponSnapshot(snap), "Coupon applied successfully"))
}

// @Summary Create coupon
// @Description Create a new coupon (admin only)
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupon [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	snap, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortCouponError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.OK(resdto.FromCouponSnapshot(snap)))
}

// @Summary List active coupons
// @Description List all currently active coupons
// @Tags coupons
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Router /coupon [get]
func (h *CouponHandler) List(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list coupons")
		return
	}

	c.JSON(http.StatusOK, resdto.OKList(resdto.FromCouponViews(views), len(views)))
}

func abortCouponError(c *gin.Context, err error) {
	var belowMin *domcoupon.BelowMinimumError

	switch {
	case errors.Is(err, errs.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
	case errors.Is(err, errs.ErrCouponInvalidOrExpired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired coupon")
	case errors.Is(err, errs.ErrCouponUsageLimitReached):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon usage limit reached")
	case errors.Is(err, errs.ErrCouponAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon code already exists")
	case errors.As(err, &belowMin):
		httperr.AbortWithError(c, http.StatusBadRequest, err, belowMin.Error())
	case errors.Is(err, domcoupon.ErrInvalidCouponCode),
		errors.Is(err, domcoupon.ErrInvalidDiscountPercent),
		errors.Is(err, domcoupon.ErrInvalidMinAmount),
		errors.Is(err, domcoupon.ErrInvalidMaxDiscount),
		errors.Is(err, domcoupon.ErrInvalidUsageLimit):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
