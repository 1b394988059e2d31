package insight

import (
	"encoding/json"

	"agrismart/entities"
)

// DecodeCropAnalysis parses and validates a raw inference payload. Either the
// whole payload satisfies the crop-analysis contract and a fully populated
// record comes back, or a typed decode error does — never partial data.
func DecodeCropAnalysis(raw string) (*entities.CropAnalysis, error) {
	var probe any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, &MalformedPayloadError{Cause: err}
	}
	if err := validate(CropAnalysisSchema(), probe, ""); err != nil {
		return nil, err
	}
	var out entities.CropAnalysis
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &MalformedPayloadError{Cause: err}
	}
	// empty sequences are valid; keep them non-nil for stable JSON output
	if out.Fertilizers == nil {
		out.Fertilizers = []entities.FertilizerRecommendation{}
	}
	if out.PestsAndDiseases == nil {
		out.PestsAndDiseases = []entities.PestRisk{}
	}
	if out.HarvestTips == nil {
		out.HarvestTips = []string{}
	}
	return &out, nil
}

// DecodeRotationPlan is the rotation-shaped counterpart of
// DecodeCropAnalysis.
func DecodeRotationPlan(raw string) (*entities.RotationPlan, error) {
	var probe any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, &MalformedPayloadError{Cause: err}
	}
	if err := validate(RotationPlanSchema(), probe, ""); err != nil {
		return nil, err
	}
	var out entities.RotationPlan
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &MalformedPayloadError{Cause: err}
	}
	if out.Steps == nil {
		out.Steps = []entities.RotationStep{}
	}
	return &out, nil
}
