// Package insight owns the contract with the inference service: the output
// schemas, the prompt construction, and the validation that turns raw model
// text into trusted domain records.
package insight

import "google.golang.org/genai"

// CropAnalysisSchema declares the crop-analysis output shape. The same
// declaration is sent with the request (to bias generation) and consulted by
// the decoder, so the two can never drift apart.
func CropAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"idealConditions": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"temperatureRange":    {Type: genai.TypeString},
					"humidityRange":       {Type: genai.TypeString},
					"rainfallRequirement": {Type: genai.TypeString},
					"soilType":            {Type: genai.TypeString},
				},
				Required: []string{"temperatureRange", "humidityRange", "rainfallRequirement", "soilType"},
			},
			"fertilizers": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":              {Type: genai.TypeString},
						"quantity":          {Type: genai.TypeString},
						"applicationMethod": {Type: genai.TypeString},
						"timing":            {Type: genai.TypeString},
					},
					Required: []string{"name", "quantity", "applicationMethod", "timing"},
				},
			},
			"pestsAndDiseases": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":       {Type: genai.TypeString},
						"riskLevel":  {Type: genai.TypeString, Enum: []string{"High", "Medium", "Low"}},
						"symptoms":   {Type: genai.TypeString},
						"prevention": {Type: genai.TypeString},
					},
					Required: []string{"name", "riskLevel", "symptoms", "prevention"},
				},
			},
			"marketOutlook": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"averagePrice":    {Type: genai.TypeString, Description: "Price range per unit (kg/ton)"},
					"currency":        {Type: genai.TypeString, Description: "Currency symbol e.g. $"},
					"trend":           {Type: genai.TypeString, Enum: []string{"Up", "Down", "Stable"}},
					"seasonalInsight": {Type: genai.TypeString, Description: "Short note on market demand"},
				},
				Required: []string{"averagePrice", "currency", "trend", "seasonalInsight"},
			},
			"harvestTips": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"summary": {Type: genai.TypeString},
			"totalDurationDays": {
				Type:        genai.TypeInteger,
				Minimum:     genai.Ptr(1.0),
				Description: "Total days from sowing to harvest",
			},
		},
		Required: []string{"idealConditions", "fertilizers", "pestsAndDiseases", "marketOutlook", "harvestTips", "summary", "totalDurationDays"},
	}
}

// RotationPlanSchema declares the 3-season rotation-plan output shape.
func RotationPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"introduction": {Type: genai.TypeString, Description: "Brief explanation of why rotation is good"},
			"steps": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"season":          {Type: genai.TypeString, Description: "e.g., Next Season, Following Year"},
						"recommendedCrop": {Type: genai.TypeString},
						"reason":          {Type: genai.TypeString},
						"soilBenefit":     {Type: genai.TypeString},
					},
					Required: []string{"season", "recommendedCrop", "reason", "soilBenefit"},
				},
			},
		},
		Required: []string{"introduction", "steps"},
	}
}
