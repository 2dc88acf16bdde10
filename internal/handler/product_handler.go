package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wishcart/internal/errors"
	"wishcart/internal/model"
	"wishcart/internal/service"
)

// ProductHandler exposes read-only catalog endpoints.
type ProductHandler struct {
	catalogService service.CatalogService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// ProductListResponse wraps the catalog listing.
type ProductListResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    []model.Product `json:"data"`
}

// ProductResponse wraps a single product.
type ProductResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *model.Product `json:"data"`
}

// ListProducts godoc
// @Summary List catalog products
// @Tags products
// @Produce json
// @Success 200 {object} ProductListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, ProductListResponse{
		Success: true,
		Message: "Products fetched successfully",
		Data:    products,
	})
}

// GetProduct godoc
// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(errors.ErrProductNotFound)
	}

	product, err := h.catalogService.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, ProductResponse{
		Success: true,
		Message: "Product fetched successfully",
		Data:    product,
	})
}
