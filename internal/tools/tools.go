// Package tools implements the gateway's metered weather tools.
//
// Every tool follows the same pipeline: read the caller's API key from the
// request context, charge a fixed per-call fee via AgentPay, and only then
// perform the weather lookups. The charge is attempted before any upstream
// fetch so failed metering never reaches paid-for work, and a charge that
// succeeds is never rolled back by a later fetch failure.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/agentpay/weather-mcp-go/internal/agentpay"
	"github.com/agentpay/weather-mcp-go/internal/apikey"
	"github.com/agentpay/weather-mcp-go/internal/logging"
	"github.com/agentpay/weather-mcp-go/internal/metrics"
	"github.com/agentpay/weather-mcp-go/internal/nws"
)

// Per-call pricing in cents.
const (
	AlertCostCents    = 2
	ForecastCostCents = 3
)

const (
	msgAPIKeyMissing   = "Error: API Key missing"
	msgMeteringFailed  = "Error: usage metering failed"
	msgInvalidState    = "Error: Please provide a valid two-letter US state code."
	msgNoAlerts        = "No active alerts for this state."
	msgPointsFailed    = "Error: Unable to fetch forecast data for this location."
	msgForecastFailed  = "Error: Unable to fetch detailed forecast."
	responseSeparator  = "\n---\n"
	maxForecastPeriods = 5
)

// BillingClient is the subset of the AgentPay client the tools use.
type BillingClient interface {
	Consume(ctx context.Context, req *agentpay.ConsumeRequest) (*agentpay.ConsumeResult, error)
}

// WeatherClient is the subset of the NWS client the tools use.
type WeatherClient interface {
	Get(ctx context.Context, url string, out any) bool
	ActiveAlertsURL(state string) string
	PointsURL(latitude, longitude float64) string
}

// Handler holds the dependencies shared by all metered tools.
type Handler struct {
	billing BillingClient
	weather WeatherClient
	logger  logging.Logger
	metrics *metrics.Metrics
}

// NewHandler creates a tool handler.
func NewHandler(billing BillingClient, weather WeatherClient, logger logging.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		billing: billing,
		weather: weather,
		logger:  logger,
		metrics: m,
	}
}

// charge reads the caller's API key from ctx and deducts costCents from its
// account under a fresh usage event ID. On failure it returns the text the
// caller should see and ok=false; no upstream fetch may run in that case.
func (h *Handler) charge(ctx context.Context, tool string, costCents int) (string, bool) {
	key, ok := apikey.FromContext(ctx)
	if !ok {
		h.countCall(tool, "missing_key")
		return msgAPIKeyMissing, false
	}

	usageID := uuid.New().String()
	result, err := h.billing.Consume(ctx, &agentpay.ConsumeRequest{
		APIKey:       key,
		AmountCents:  costCents,
		UsageEventID: usageID,
	})
	if err != nil {
		h.logger.WithFields(logging.Fields{
			"error":          err,
			"tool":           tool,
			"usage_event_id": usageID,
		}).Error("Usage consume call failed")
		h.countCall(tool, "consume_error")
		return msgMeteringFailed, false
	}
	if !result.Success {
		h.countCall(tool, "consume_rejected")
		return "Error: " + result.ErrorMessage, false
	}

	if h.metrics != nil {
		h.metrics.UsageCents.WithLabelValues(tool).Add(float64(costCents))
	}
	return "", true
}

// GetAlerts returns the active weather alerts for a two-letter US state code.
func (h *Handler) GetAlerts(ctx context.Context, state string) string {
	if msg, ok := h.charge(ctx, "get_alerts", AlertCostCents); !ok {
		return msg
	}

	// Input validation runs after metering: malformed input still consumes
	// the fee. This is billing policy, not an accident.
	if len(state) != 2 {
		h.countCall("get_alerts", "invalid_input")
		return msgInvalidState
	}

	var data nws.AlertsResponse
	if !h.weather.Get(ctx, h.weather.ActiveAlertsURL(state), &data) || len(data.Features) == 0 {
		h.countCall("get_alerts", "ok")
		return msgNoAlerts
	}

	blocks := make([]string, 0, len(data.Features))
	for _, feature := range data.Features {
		props := feature.Properties
		blocks = append(blocks, fmt.Sprintf("\nEvent: %s\nArea: %s\nSeverity: %s\nDescription: %s\n",
			orDefault(props.Event, "Unknown"),
			orDefault(props.AreaDesc, "Unknown"),
			orDefault(props.Severity, "Unknown"),
			orDefault(props.Description, "No description available"),
		))
	}

	h.countCall("get_alerts", "ok")
	return strings.Join(blocks, responseSeparator)
}

// GetForecast returns the short-term forecast for a coordinate pair.
func (h *Handler) GetForecast(ctx context.Context, latitude, longitude float64) string {
	if msg, ok := h.charge(ctx, "get_forecast", ForecastCostCents); !ok {
		return msg
	}

	var points nws.PointsResponse
	if !h.weather.Get(ctx, h.weather.PointsURL(latitude, longitude), &points) || points.Properties.Forecast == "" {
		h.countCall("get_forecast", "points_unavailable")
		return msgPointsFailed
	}

	var forecast nws.ForecastResponse
	if !h.weather.Get(ctx, points.Properties.Forecast, &forecast) || len(forecast.Properties.Periods) == 0 {
		h.countCall("get_forecast", "forecast_unavailable")
		return msgForecastFailed
	}

	periods := forecast.Properties.Periods
	if len(periods) > maxForecastPeriods {
		periods = periods[:maxForecastPeriods]
	}

	blocks := make([]string, 0, len(periods))
	for _, period := range periods {
		blocks = append(blocks, fmt.Sprintf("\n%s:\nTemperature: %s°%s\nWind: %s %s\nForecast: %s\n",
			period.Name,
			period.Temperature,
			period.TemperatureUnit,
			period.WindSpeed,
			period.WindDirection,
			period.DetailedForecast,
		))
	}

	h.countCall("get_forecast", "ok")
	return strings.Join(blocks, responseSeparator)
}

func (h *Handler) countCall(tool, status string) {
	if h.metrics != nil {
		h.metrics.ToolCalls.WithLabelValues(tool, status).Inc()
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
