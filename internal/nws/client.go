// Package nws is a client for the National Weather Service API.
//
// Callers never observe an error taxonomy from this client: every transport
// error, timeout, non-success status, or malformed body collapses to a single
// absent outcome. Upstream failures are not actionable beyond "treat as
// unavailable", so the two-variant result is deliberate.
package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agentpay/weather-mcp-go/internal/logging"
)

const (
	defaultBaseURL = "https://api.weather.gov"
	defaultTimeout = 30 * time.Second
	userAgent      = "weather-app/1.0"
)

// Config represents the configuration for the NWS client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  logging.Logger
}

// Client fetches JSON documents from the NWS API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// NewClient creates a new NWS API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     cfg.Logger,
	}
}

// Get fetches url and decodes the JSON body into out. It returns false on
// any failure; out is only valid when the return value is true.
func (c *Client) Get(ctx context.Context, url string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.debugf("NWS request failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.debugf("NWS request to %s returned status %d", url, resp.StatusCode)
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.debugf("NWS response decode failed: %v", err)
		return false
	}
	return true
}

// ActiveAlertsURL returns the active-alerts URL for a two-letter state code.
func (c *Client) ActiveAlertsURL(state string) string {
	return fmt.Sprintf("%s/alerts/active/area/%s", c.baseURL, state)
}

// PointsURL returns the points lookup URL for a coordinate pair.
func (c *Client) PointsURL(latitude, longitude float64) string {
	return fmt.Sprintf("%s/points/%g,%g", c.baseURL, latitude, longitude)
}

func (c *Client) debugf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
