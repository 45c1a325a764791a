package nws

import "encoding/json"

// AlertsResponse is the active-alerts collection returned by the NWS API.
type AlertsResponse struct {
	Features []AlertFeature `json:"features"`
}

// AlertFeature is a single alert entry.
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties holds the alert fields the gateway renders. Fields the
// upstream omits decode to their zero value and are rendered as placeholders.
type AlertProperties struct {
	Event       string `json:"event"`
	AreaDesc    string `json:"areaDesc"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// PointsResponse is the coordinate-to-forecast-endpoint lookup result.
type PointsResponse struct {
	Properties PointsProperties `json:"properties"`
}

// PointsProperties carries the forecast endpoint URL for a grid point.
type PointsProperties struct {
	Forecast string `json:"forecast"`
}

// ForecastResponse is the detailed forecast document.
type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}

// ForecastProperties holds the forecast periods.
type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

// ForecastPeriod is one forecast window (e.g. "Tonight").
type ForecastPeriod struct {
	Name             string      `json:"name"`
	Temperature      json.Number `json:"temperature"`
	TemperatureUnit  string      `json:"temperatureUnit"`
	WindSpeed        string      `json:"windSpeed"`
	WindDirection    string      `json:"windDirection"`
	DetailedForecast string      `json:"detailedForecast"`
}
