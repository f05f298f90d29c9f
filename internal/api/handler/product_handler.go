package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/storefront/internal/core/domain"
	"github.com/shopkeep/storefront/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products. Hidden and sold products are included;
// the storefront filters them.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "讀取商品失敗"})
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /api/products.
//
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Product  true  "Product, stored as given"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var p domain.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	created, err := h.service.Insert(c.Request().Context(), p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "寫入商品失敗"})
	}
	return c.JSON(http.StatusOK, created)
}

// UpdateStatus handles POST /api/products/:id/status. The status is stored
// verbatim, recognized or not.
//
// @Summary      Change a product's status
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Product id"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  successResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/products/{id}/status [post]
func (h *ProductHandler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	updated, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "找不到商品"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "寫入商品失敗"})
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Product: updated})
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "找不到商品"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "刪除商品失敗"})
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// FactoryReset handles POST /api/factory-reset.
//
// @Summary      Remove every product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/factory-reset [post]
func (h *ProductHandler) FactoryReset(c echo.Context) error {
	if err := h.service.FactoryReset(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "清空商品失敗"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "所有商品已清空（恢復出廠）"})
}
