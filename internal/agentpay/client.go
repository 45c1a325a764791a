// Package agentpay is a client for the AgentPay billing API.
//
// It exposes the two operations the gateway needs: API key validation and
// usage consumption. Consume calls are deduplicated server-side by usage
// event ID, so callers must supply a fresh ID per metering attempt.
package agentpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/agentpay/weather-mcp-go/internal/logging"
)

const (
	validatePath = "/v1/keys/validate"
	consumePath  = "/v1/usage/consume"
)

// ValidationResult is the outcome of an API key validation.
type ValidationResult struct {
	IsValid       bool   `json:"is_valid"`
	InvalidReason string `json:"invalid_reason,omitempty"`
}

// ConsumeRequest describes a single usage charge against an API key.
type ConsumeRequest struct {
	APIKey       string `json:"api_key"`
	AmountCents  int    `json:"amount_cents"`
	UsageEventID string `json:"usage_event_id"`
}

// ConsumeResult is the outcome of a usage charge.
type ConsumeResult struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Client calls the AgentPay billing API.
type Client struct {
	cfg    *Config
	logger logging.Logger
}

// NewClient creates a new AgentPay client with the given options. Settings
// not supplied via options fall back to AGENTPAY_* environment variables.
func NewClient(opts ...Option) (*Client, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	loadFromEnv(cfg)
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
		if cfg.Debug {
			logger.SetLevel(logrus.DebugLevel)
		}
	}
	return &Client{cfg: cfg, logger: logger}, nil
}

type validateRequest struct {
	APIKey string `json:"api_key"`
}

// ValidateAPIKey checks whether the given API key is usable. A non-nil error
// means the validation call itself failed; it does not mean the key is invalid.
func (c *Client) ValidateAPIKey(ctx context.Context, apiKey string) (*ValidationResult, error) {
	var result ValidationResult
	if err := c.post(ctx, validatePath, &validateRequest{APIKey: apiKey}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Consume deducts amountCents from the account behind the API key, keyed by
// usage event ID for server-side deduplication. A non-nil error means the
// charge could not be attempted; a ConsumeResult with Success=false means
// AgentPay rejected it (e.g. insufficient balance).
func (c *Client) Consume(ctx context.Context, req *ConsumeRequest) (*ConsumeResult, error) {
	var result ConsumeResult
	if err := c.post(ctx, consumePath, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return newBillingError("failed to marshal payload", err)
	}

	url := c.cfg.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return newNetworkError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.ServiceToken)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return newNetworkError("request failed", err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debugf("agentpay API response (%d): %s", resp.StatusCode, string(respBody))
		return newBillingError(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return newBillingError("failed to decode response", err)
	}
	return nil
}
