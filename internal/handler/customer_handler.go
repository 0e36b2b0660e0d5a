package handler

import (
	"net/http"
	"strconv"

	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 確認メッセージもエラーも {message} の1形で返す。
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, MessageResponse{Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "internal error"})
}

// POST /newCustomer・PUT /updateCustomer のリクエストボディ。
type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// 顧客まわりの公開API
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

// DI
func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// 顧客のルートを登録
func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/allCustomers", h.list)
	e.POST("/newCustomer", h.create)
	e.PUT("/updateCustomer/:id", h.update)
	e.GET("/customer/:id", h.detail)
	e.DELETE("/deleteCustomer/:id", h.delete)
}

func (h *CustomerHandler) list(c echo.Context) error {
	items, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CustomerHandler) create(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid body"})
	}

	err := h.uc.CreateCustomer(c.Request().Context(), usecase.CustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Customer created successfully!"})
}

func (h *CustomerHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// 数値でないidはルーティング上存在しない扱い
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Customer not found"})
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid body"})
	}

	err = h.uc.UpdateCustomer(c.Request().Context(), id, usecase.CustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Customer updated successfully!"})
}

func (h *CustomerHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Customer not found"})
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Customer not found"})
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Customer deleted successfully!"})
}
