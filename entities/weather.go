package entities

// WeatherReading is the environmental feed's current value. It is read
// once when a crop-analysis prompt is built and is not persisted.
type WeatherReading struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // 0-100
	WindSpeed   float64 `json:"wind_speed"`  // >= 0
	Rainfall    float64 `json:"rainfall"`    // mm, >= 0
	Condition   string  `json:"condition"`
}
