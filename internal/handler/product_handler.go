package handler

import (
	"net/http"
	"strconv"

	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// POST /newProduct・PUT /updateProduct のリクエストボディ。
// Priceはポインタで必須チェックできるようにする。
type ProductRequest struct {
	Name    string `json:"name"`
	Details string `json:"details"`
	Price   *int64 `json:"price"`
}

// 商品まわりの公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/allProducts", h.list)
	e.POST("/newProduct", h.create)
	e.PUT("/updateProduct/:id", h.update)
	e.GET("/product/:id", h.detail)
}

func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid body"})
	}

	err := h.uc.CreateProduct(c.Request().Context(), usecase.ProductInput{
		Name:    req.Name,
		Details: req.Details,
		Price:   req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product created successfully!"})
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Product not found"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid body"})
	}

	err = h.uc.UpdateProduct(c.Request().Context(), id, usecase.ProductInput{
		Name:    req.Name,
		Details: req.Details,
		Price:   req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product updated successfully!"})
}

// 詳細はidを含めない形で返す（仕様通り）。
func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Product not found"})
	}

	out, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
