package entities

import "time"

type LandUnit string

const (
	LandUnitAcres    LandUnit = "acres"
	LandUnitHectares LandUnit = "hectares"
)

func (u LandUnit) Valid() bool { return u == LandUnitAcres || u == LandUnitHectares }

type CropStatus string

const (
	StatusGrowing      CropStatus = "Growing"
	StatusHarvestReady CropStatus = "HarvestReady"
)

// CropInput is what the record-entry boundary supplies. LandArea and
// SowingDate stay as submitted text so the prompt can carry them verbatim.
type CropInput struct {
	CropName   string   `json:"crop_name"`
	LandArea   string   `json:"land_area"`
	LandUnit   LandUnit `json:"land_unit"`
	Location   string   `json:"location"`
	SowingDate string   `json:"sowing_date"` // YYYY-MM-DD, defaults to today
}

// CropRecord is append-only: created once after a validated analysis,
// never mutated afterwards.
type CropRecord struct {
	ID         string       `gorm:"primaryKey" json:"id"`
	CropName   string       `json:"crop_name"`
	LandArea   string       `json:"land_area"`
	LandUnit   LandUnit     `json:"land_unit"`
	Location   string       `json:"location"`
	SowingDate time.Time    `json:"sowing_date"`
	Analysis   CropAnalysis `gorm:"serializer:json" json:"analysis"`
	CreatedAt  time.Time    `json:"created_at"`
}

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

type MarketTrend string

const (
	TrendUp     MarketTrend = "Up"
	TrendDown   MarketTrend = "Down"
	TrendStable MarketTrend = "Stable"
)

// JSON tags below follow the generated payload keys, so the same struct
// round-trips both the inference response and the store serializer.

type IdealConditions struct {
	TemperatureRange    string `json:"temperatureRange"`
	HumidityRange       string `json:"humidityRange"`
	RainfallRequirement string `json:"rainfallRequirement"`
	SoilType            string `json:"soilType"`
}

type FertilizerRecommendation struct {
	Name              string `json:"name"`
	Quantity          string `json:"quantity"`
	ApplicationMethod string `json:"applicationMethod"`
	Timing            string `json:"timing"`
}

type PestRisk struct {
	Name       string    `json:"name"`
	RiskLevel  RiskLevel `json:"riskLevel"`
	Symptoms   string    `json:"symptoms"`
	Prevention string    `json:"prevention"`
}

type MarketOutlook struct {
	AveragePrice    string      `json:"averagePrice"`
	Currency        string      `json:"currency"`
	Trend           MarketTrend `json:"trend"`
	SeasonalInsight string      `json:"seasonalInsight"`
}

type CropAnalysis struct {
	IdealConditions   IdealConditions            `json:"idealConditions"`
	Fertilizers       []FertilizerRecommendation `json:"fertilizers"`
	PestsAndDiseases  []PestRisk                 `json:"pestsAndDiseases"`
	MarketOutlook     MarketOutlook              `json:"marketOutlook"`
	HarvestTips       []string                   `json:"harvestTips"`
	Summary           string                     `json:"summary"`
	TotalDurationDays int                        `json:"totalDurationDays"`
}
