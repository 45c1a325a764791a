package agentpay

import (
	"net/http"
	"os"
	"time"

	"github.com/agentpay/weather-mcp-go/internal/logging"
)

const (
	defaultBaseURL = "https://api.agentpay.com"
	defaultTimeout = 10 * time.Second
)

// Config holds the configuration for the AgentPay client.
type Config struct {
	// ServiceToken authenticates this service to the AgentPay API (required).
	ServiceToken string

	// BaseURL is the AgentPay API base URL. Defaults to "https://api.agentpay.com".
	BaseURL string

	// Timeout bounds each API call. Defaults to 10 seconds so a hung billing
	// service cannot stall inbound requests indefinitely.
	Timeout time.Duration

	// Debug enables debug-level logging of request/response bodies.
	Debug bool

	// Logger is an optional structured logger. A default is created when nil.
	Logger logging.Logger

	// HTTPClient is an optional custom HTTP client for API requests.
	HTTPClient *http.Client
}

// Option is a functional option for configuring a Client.
type Option func(*Config)

// WithServiceToken sets the AgentPay service token.
func WithServiceToken(token string) Option {
	return func(c *Config) { c.ServiceToken = token }
}

// WithBaseURL sets the AgentPay API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) { c.BaseURL = url }
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithDebug enables debug-level logging.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}

// WithLogger sets the structured logger used by the client.
func WithLogger(logger logging.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) { c.HTTPClient = client }
}

func loadFromEnv(c *Config) {
	if v := os.Getenv("AGENTPAY_SERVICE_TOKEN"); v != "" && c.ServiceToken == "" {
		c.ServiceToken = v
	}
	if v := os.Getenv("AGENTPAY_BASE_URL"); v != "" && c.BaseURL == "" {
		c.BaseURL = v
	}
}

func (c *Config) validate() error {
	if c.ServiceToken == "" {
		return newConfigError("service token is required", nil)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
}
