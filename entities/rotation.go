package entities

// RotationPlan is transient: returned to the caller of the rotation
// pipeline, never stored and never linked to a CropRecord.
type RotationPlan struct {
	Introduction string         `json:"introduction"`
	Steps        []RotationStep `json:"steps"`
}

type RotationStep struct {
	Season          string `json:"season"`
	RecommendedCrop string `json:"recommendedCrop"`
	Reason          string `json:"reason"`
	SoilBenefit     string `json:"soilBenefit"`
}
