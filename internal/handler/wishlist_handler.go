package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wishcart/internal/auth"
	"wishcart/internal/errors"
	"wishcart/internal/model"
	"wishcart/internal/service"
)

// WishlistHandler handles wishlist endpoints. Every route requires auth.Middleware.
type WishlistHandler struct {
	wishlistService service.WishlistService
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// AddToWishlistRequest represents a wishlist add request.
type AddToWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// WishlistResponse is returned when reading the wishlist.
type WishlistResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    []model.WishlistEntry `json:"data"`
}

// AddToWishlistResponse is returned after a product was added.
type AddToWishlistResponse struct {
	Message  string                `json:"message"`
	Wishlist []model.WishlistEntry `json:"wishlist"`
}

// GetWishlist godoc
// @Summary Get the wishlist of the current user
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} WishlistResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/wishlist [get]
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return respondError(err)
	}

	wishlist, err := h.wishlistService.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, WishlistResponse{
		Success: true,
		Message: "Wishlist fetched successfully",
		Data:    wishlist,
	})
}

// AddToWishlist godoc
// @Summary Add a catalog product to the wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddToWishlistRequest true "Product to add"
// @Success 200 {object} AddToWishlistResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/wishlist [post]
func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return respondError(err)
	}

	var req AddToWishlistRequest
	if err := c.Bind(&req); err != nil {
		return respondError(errors.ErrInvalidRequestBody)
	}

	if err := c.Validate(&req); err != nil {
		return respondError(errors.ErrMissingProductID)
	}

	// An id that is not a UUID cannot name a catalog product.
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return respondError(errors.ErrProductNotFound)
	}

	wishlist, err := h.wishlistService.AddToWishlist(c.Request().Context(), userID, productID)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, AddToWishlistResponse{
		Message:  "Product added to wishlist",
		Wishlist: wishlist,
	})
}

// RemoveFromWishlist godoc
// @Summary Remove an entry from the wishlist
// @Description The path parameter is the wishlist entry id, not the product id. Unknown ids succeed without changes.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Wishlist entry ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/wishlist/{productId} [delete]
func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return respondError(err)
	}

	// A malformed id matches no entry, which is a successful no-op.
	entryID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		entryID = uuid.Nil
	}

	if err := h.wishlistService.RemoveFromWishlist(c.Request().Context(), userID, entryID); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Product removed from wishlist",
	})
}
