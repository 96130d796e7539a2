package api

import (
	"errors"
	"net/http"
	"strconv"

	domcart "shop-api/internal/domain/cart"
	reqdto "shop-api/internal/handler/dto/request"
	resdto "shop-api/internal/handler/dto/response"
	"shop-api/internal/handler/httperr"
	"shop-api/internal/handler/middleware"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/commands"
	"shop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get the authenticated user's cart, creating it on first access
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}

	if err := h.cmds.EnsureCart(c.Request.Context(), userID); err != nil {
		abortCartError(c, err)
		return
	}

	h.respondWithCart(c, userID, http.StatusOK, "")
}

// @Summary Add item to cart
// @Description Add a product to the cart, merging quantity if already present
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddItemRequest true "Add item request"
// @Success 201 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/add [post]
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}

	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	if err := h.cmds.AddItem(c.Request.Context(), userID, req.ProductID, req.NormalizedQuantity()); err != nil {
		abortCartError(c, err)
		return
	}

	h.respondWithCart(c, userID, http.StatusCreated, "Item added to cart")
}

// @Summary Update item quantity
// @Description Set a cart line's quantity; zero or less removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/update [put]
func (h *CartHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	if err := h.cmds.UpdateItemQuantity(c.Request.Context(), userID, req.ProductID, *req.Quantity); err != nil {
		abortCartError(c, err)
		return
	}

	h.respondWithCart(c, userID, http.StatusOK, "")
}

// @Summary Remove item from cart
// @Description Remove a product from the cart; absent products are ignored
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /cart/remove/{productId} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
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

	if err := h.cmds.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		abortCartError(c, err)
		return
	}

	h.respondWithCart(c, userID, http.StatusOK, "")
}

// @Summary Clear cart
// @Description Remove every item from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Router /cart/clear [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}

	if err := h.cmds.ClearCart(c.Request.Context(), userID); err != nil {
		abortCartError(c, err)
		return
	}

	h.respondWithCart(c, userID, http.StatusOK, "Cart cleared successfully")
}

func (h *CartHandler) respondWithCart(c *gin.Context, userID uuid.UUID, status int, message string) {
	view, err := h.q.GetByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart")
		return
	}

	if message != "" {
		c.JSON(status, resdto.OKWithMessage(resdto.FromCartView(view), message))
		return
	}
	c.JSON(status, resdto.OK(resdto.FromCartView(view)))
}

func abortCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
	case errors.Is(err, errs.ErrCartNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found")
	case errors.Is(err, errs.ErrCartItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found in cart")
	case errors.Is(err, domcart.ErrInvalidQuantity), errors.Is(err, domcart.ErrInvalidPrice):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
