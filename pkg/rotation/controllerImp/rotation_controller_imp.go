package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"agrismart/pkg/ai"
	cropservice "agrismart/pkg/crop/service"
	"agrismart/pkg/insight"
	"agrismart/pkg/rotation/service"
)

type RotationCtrl struct{ svc service.RotationService }

func New(svc service.RotationService) *RotationCtrl { return &RotationCtrl{svc} }

type planReq struct {
	LastCrop string `json:"last_crop"`
	LandSize string `json:"land_size"`
	Location string `json:"location"`
}

func (h *RotationCtrl) Plan(c echo.Context) error {
	var req planReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	plan, err := h.svc.Plan(c.Request().Context(), req.LastCrop, req.LandSize, req.Location)
	if err != nil {
		var in *cropservice.InputError
		if errors.As(err, &in) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": in.Error()})
		}
		var gw *ai.GatewayError
		if errors.As(err, &gw) || errors.Is(err, ai.ErrEmptyResponse) {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "rotation planning failed, please try again"})
		}
		if insight.IsDecodeError(err) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "could not interpret result, please try again"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, plan)
}
