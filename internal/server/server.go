package server

import (
	"shopapi/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Newはechoを組み立ててルートを登録する。
func New(
	customerH *handler.CustomerHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, customerH, productH, orderH)

	return e
}

// Startはサーバーを起動する。
func Start(
	addr string,
	customerH *handler.CustomerHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
) error {
	e := New(customerH, productH, orderH)
	return e.Start(addr)
}
