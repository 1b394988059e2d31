package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"agrismart/entities"
	"agrismart/pkg/ai"
	cropservice "agrismart/pkg/crop/service"
	"agrismart/pkg/insight"
	"agrismart/pkg/rotation/service"
)

type RotationSvc struct {
	llm ai.Client
	log *zap.Logger
}

func New(llm ai.Client, log *zap.Logger) *RotationSvc { return &RotationSvc{llm: llm, log: log} }

var _ service.RotationService = (*RotationSvc)(nil)

func (s *RotationSvc) Plan(ctx context.Context, lastCrop, landSize, location string) (*entities.RotationPlan, error) {
	lastCrop = strings.TrimSpace(lastCrop)
	landSize = strings.TrimSpace(landSize)
	location = strings.TrimSpace(location)
	if lastCrop == "" {
		return nil, &cropservice.InputError{Field: "last_crop", Reason: "required"}
	}
	if landSize == "" {
		return nil, &cropservice.InputError{Field: "land_size", Reason: "required"}
	}
	if location == "" {
		return nil, &cropservice.InputError{Field: "location", Reason: "required"}
	}

	prompt := insight.BuildRotationPrompt(lastCrop, landSize, location)
	raw, err := s.llm.Invoke(ctx, prompt, insight.RotationPlanSchema())
	if err != nil {
		s.log.Warn("rotation plan failed", zap.String("last_crop", lastCrop), zap.Error(err))
		return nil, err
	}
	plan, err := insight.DecodeRotationPlan(raw)
	if err != nil {
		s.log.Warn("rotation payload rejected", zap.String("last_crop", lastCrop), zap.Error(err))
		return nil, err
	}
	s.log.Info("rotation plan generated", zap.String("last_crop", lastCrop), zap.Int("steps", len(plan.Steps)))
	return plan, nil
}
