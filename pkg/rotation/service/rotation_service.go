package service

import (
	"context"

	"agrismart/entities"
)

type RotationService interface {
	// Plan asks the inference service for a 3-season rotation plan. The plan
	// is transient: it is returned to the caller and never stored.
	Plan(ctx context.Context, lastCrop, landSize, location string) (*entities.RotationPlan, error)
}
