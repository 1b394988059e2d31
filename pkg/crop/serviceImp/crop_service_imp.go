package serviceImp

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agrismart/entities"
	"agrismart/pkg/ai"
	"agrismart/pkg/crop/repository"
	"agrismart/pkg/crop/service"
	"agrismart/pkg/insight"
)

const dateLayout = "2006-01-02"

type weatherSource interface {
	Current() entities.WeatherReading
}

type CropSvc struct {
	llm     ai.Client
	repo    repository.CropRepository
	weather weatherSource
	log     *zap.Logger
	now     func() time.Time
}

func New(llm ai.Client, repo repository.CropRepository, weather weatherSource, log *zap.Logger) *CropSvc {
	return &CropSvc{llm: llm, repo: repo, weather: weather, log: log, now: time.Now}
}

var _ service.CropService = (*CropSvc)(nil)

func (s *CropSvc) AddCrop(ctx context.Context, in entities.CropInput) (*entities.CropRecord, error) {
	sowing, err := s.checkInput(&in)
	if err != nil {
		return nil, err
	}

	// snapshot of the feed at submission time; not persisted with the record
	reading := s.weather.Current()
	prompt := insight.BuildCropAnalysisPrompt(in, reading)

	raw, err := s.llm.Invoke(ctx, prompt, insight.CropAnalysisSchema())
	if err != nil {
		s.log.Warn("crop analysis failed", zap.String("crop", in.CropName), zap.Error(err))
		return nil, err
	}
	analysis, err := insight.DecodeCropAnalysis(raw)
	if err != nil {
		s.log.Warn("crop analysis payload rejected", zap.String("crop", in.CropName), zap.Error(err))
		return nil, err
	}

	rec := &entities.CropRecord{
		ID:         uuid.NewString(),
		CropName:   in.CropName,
		LandArea:   in.LandArea,
		LandUnit:   in.LandUnit,
		Location:   in.Location,
		SowingDate: sowing,
		Analysis:   *analysis,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(rec); err != nil {
		return nil, err
	}
	s.log.Info("crop added",
		zap.String("id", rec.ID),
		zap.String("crop", rec.CropName),
		zap.Int("duration_days", analysis.TotalDurationDays),
	)
	return rec, nil
}

func (s *CropSvc) GetCrop(id string) (*entities.CropRecord, error) { return s.repo.FindByID(id) }

func (s *CropSvc) ListCrops() ([]entities.CropRecord, error) { return s.repo.ListRecentFirst() }

// checkInput enforces the record-entry contract before anything leaves the
// process: required fields non-empty, positive land area, known unit, and a
// parseable sowing date defaulting to today.
func (s *CropSvc) checkInput(in *entities.CropInput) (time.Time, error) {
	in.CropName = strings.TrimSpace(in.CropName)
	in.Location = strings.TrimSpace(in.Location)
	in.LandArea = strings.TrimSpace(in.LandArea)
	in.SowingDate = strings.TrimSpace(in.SowingDate)

	if in.CropName == "" {
		return time.Time{}, &service.InputError{Field: "crop_name", Reason: "required"}
	}
	if in.Location == "" {
		return time.Time{}, &service.InputError{Field: "location", Reason: "required"}
	}
	area, err := strconv.ParseFloat(in.LandArea, 64)
	if err != nil || area <= 0 {
		return time.Time{}, &service.InputError{Field: "land_area", Reason: "must be a positive decimal"}
	}
	if !in.LandUnit.Valid() {
		return time.Time{}, &service.InputError{Field: "land_unit", Reason: "must be acres or hectares"}
	}
	if in.SowingDate == "" {
		in.SowingDate = s.now().Format(dateLayout)
	}
	sowing, err := time.Parse(dateLayout, in.SowingDate)
	if err != nil {
		return time.Time{}, &service.InputError{Field: "sowing_date", Reason: "must be YYYY-MM-DD"}
	}
	return sowing, nil
}
