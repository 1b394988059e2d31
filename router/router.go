package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	cropCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Export(echo.Context) error
	},
	rotationPlan func(echo.Context) error,
	weatherCurrent func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	g := e.Group("/crops")
	g.POST("", cropCtrl.Create)
	g.GET("", cropCtrl.List)
	g.GET("/export", cropCtrl.Export)
	g.GET("/:id", cropCtrl.Get)

	e.POST("/rotation/plan", rotationPlan)
	e.GET("/weather", weatherCurrent)
	return e
}
