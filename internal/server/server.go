package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"app/internal/handler"
	"app/internal/middleware"
)

// Handlers はルート登録に必要な一式。
type Handlers struct {
	Session   *handler.SessionHandler
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
	Events    *handler.EventsHandler
}

func New(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.Session())

	RegisterRoutes(e, h)
	return e
}
