package server

import (
	"shopapi/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	customerH *handler.CustomerHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
) {
	customerH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}
