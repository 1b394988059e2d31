package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrismart/pkg/weather"
)

type WeatherCtrl struct{ feed *weather.Feed }

func New(feed *weather.Feed) *WeatherCtrl { return &WeatherCtrl{feed} }

func (h *WeatherCtrl) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, h.feed.Current())
}
