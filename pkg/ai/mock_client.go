package ai

import (
	"context"

	"google.golang.org/genai"
)

type mockClient struct{}

// NewMock is the keyless fallback used when no API key is configured. It
// answers with fixed payloads that satisfy the declared schemas, so the rest
// of the pipeline behaves as in production.
func NewMock() Client { return &mockClient{} }

const mockAnalysisJSON = `{
  "idealConditions": {
    "temperatureRange": "18-27°C",
    "humidityRange": "55-75%",
    "rainfallRequirement": "450-650mm over the season",
    "soilType": "Well-drained loam, pH 6.0-7.0"
  },
  "fertilizers": [
    {"name": "NPK 15-15-15", "quantity": "50 kg per acre", "applicationMethod": "Broadcast and incorporate", "timing": "At sowing"},
    {"name": "Urea", "quantity": "25 kg per acre", "applicationMethod": "Side dressing", "timing": "30 days after sowing"}
  ],
  "pestsAndDiseases": [
    {"name": "Aphids", "riskLevel": "Medium", "symptoms": "Curled leaves, sticky residue", "prevention": "Encourage ladybirds, neem spray at first sign"}
  ],
  "marketOutlook": {
    "averagePrice": "220-260 per quintal",
    "currency": "$",
    "trend": "Stable",
    "seasonalInsight": "Demand steady through the season"
  },
  "harvestTips": [
    "Harvest in the morning after dew has dried",
    "Check grain moisture before storage"
  ],
  "summary": "Conditions look favourable; follow the fertilizer schedule and scout weekly for pests.",
  "totalDurationDays": 110
}`

const mockRotationJSON = `{
  "introduction": "Rotating crops interrupts pest cycles and restores soil nutrients between seasons.",
  "steps": [
    {"season": "Next Season", "recommendedCrop": "Legumes (beans or peas)", "reason": "Break cereal pest cycle", "soilBenefit": "Fixes nitrogen"},
    {"season": "Following Season", "recommendedCrop": "Leafy brassicas", "reason": "Use residual nitrogen", "soilBenefit": "Deep roots loosen soil"},
    {"season": "Third Season", "recommendedCrop": "Root vegetables", "reason": "Low nutrient demand", "soilBenefit": "Improves soil structure"}
  ]
}`

func (m *mockClient) Invoke(_ context.Context, _ string, schema *genai.Schema) (string, error) {
	if schema != nil {
		if _, ok := schema.Properties["introduction"]; ok {
			return mockRotationJSON, nil
		}
	}
	return mockAnalysisJSON, nil
}
