package insight

import (
	"fmt"

	"agrismart/entities"
)

// BuildCropAnalysisPrompt renders the submission and the current reading into
// the analysis instruction. Every caller-supplied field appears verbatim so
// the rendered prompt is reproducible and auditable.
func BuildCropAnalysisPrompt(in entities.CropInput, w entities.WeatherReading) string {
	return fmt.Sprintf(`Act as an expert agronomist.
I am a farmer growing '%s' in '%s' on a land area of '%s %s'.
The sowing date was '%s'.
The current local weather conditions are: Temperature %g°C, Humidity %g%%, Rainfall %gmm, Condition %s.

Please provide a detailed analysis including:
1. Ideal growing conditions.
2. Specific fertilizer recommendations.
3. Critical tips for harvest.
4. PEST & DISEASE ALERTS: Based on the *current weather* provided (especially temp/humidity) and location, predict 2-3 likely pests or diseases.
5. MARKET INSIGHTS: Estimate current market price range for this crop in this region (or general global trend if local unknown) and the price trend.
6. ESTIMATED DURATION: The typical total growing duration (in days) for this crop variety in this season.
7. A brief encouraging summary.`,
		in.CropName, in.Location, in.LandArea, in.LandUnit,
		in.SowingDate,
		w.Temperature, w.Humidity, w.Rainfall, w.Condition,
	)
}

// BuildRotationPrompt renders the 3-season rotation request. All three
// inputs appear verbatim.
func BuildRotationPrompt(lastCrop, landSize, location string) string {
	return fmt.Sprintf(`I am a farmer in %s with %s of land.
My most recent crop was %s.
Generate a 3-season crop rotation plan to maximize soil fertility and reduce disease.`,
		location, landSize, lastCrop,
	)
}
