package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrismart/entities"
	"agrismart/pkg/ai"
	"agrismart/pkg/crop/service"
	"agrismart/pkg/insight"
	"agrismart/pkg/lifecycle"
	"agrismart/pkg/report"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

// cropView pairs the immutable record with progress derived at read time.
type cropView struct {
	entities.CropRecord
	Progress lifecycle.Progress `json:"progress"`
}

func view(rec *entities.CropRecord, now time.Time) cropView {
	return cropView{CropRecord: *rec, Progress: lifecycle.Derive(rec, now)}
}

func (h *CropCtrl) Create(c echo.Context) error {
	var in entities.CropInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rec, err := h.svc.AddCrop(c.Request().Context(), in)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusCreated, view(rec, time.Now()))
}

func (h *CropCtrl) Get(c echo.Context) error {
	rec, err := h.svc.GetCrop(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, view(rec, time.Now()))
}

func (h *CropCtrl) List(c echo.Context) error {
	recs, err := h.svc.ListCrops()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	now := time.Now()
	out := make([]cropView, 0, len(recs))
	for i := range recs {
		out = append(out, view(&recs[i], now))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Export(c echo.Context) error {
	recs, err := h.svc.ListCrops()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, err := report.BuildWorkbook(recs, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="crops.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}

// failure collapses the error taxonomy to the user-visible conditions:
// bad input, analysis failed (gateway), could not interpret result (decode).
func failure(c echo.Context, err error) error {
	var in *service.InputError
	if errors.As(err, &in) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": in.Error()})
	}
	var gw *ai.GatewayError
	if errors.As(err, &gw) || errors.Is(err, ai.ErrEmptyResponse) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "analysis failed, please try again"})
	}
	if insight.IsDecodeError(err) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "could not interpret result, please try again"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
