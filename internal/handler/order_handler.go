package handler

import (
	"net/http"

	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 注文まわりの公開API。一覧のみ（作成・更新・削除は公開しない）。
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 注文のルートを登録
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/allOrders", h.list)
}

func (h *OrderHandler) list(c echo.Context) error {
	items, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
