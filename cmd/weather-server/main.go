package main

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/agentpay/weather-mcp-go/internal/agentpay"
	"github.com/agentpay/weather-mcp-go/internal/config"
	"github.com/agentpay/weather-mcp-go/internal/logging"
	"github.com/agentpay/weather-mcp-go/internal/metrics"
	"github.com/agentpay/weather-mcp-go/internal/nws"
	"github.com/agentpay/weather-mcp-go/internal/server"
	"github.com/agentpay/weather-mcp-go/internal/tools"
)

const (
	serviceName    = "weather-server"
	serviceVersion = "1.0.0"
	defaultPort    = "8000"
)

func main() {
	logger := logging.NewLoggerWithService(serviceName)

	config.LoadEnv(logger)

	logger.Info("Starting weather MCP server")

	serviceToken := config.RequireEnv("AGENTPAY_SERVICE_TOKEN")

	billing, err := agentpay.NewClient(
		agentpay.WithServiceToken(serviceToken),
		agentpay.WithBaseURL(config.GetEnv("AGENTPAY_BASE_URL", "")),
		agentpay.WithTimeout(config.GetEnvDuration("AGENTPAY_TIMEOUT", 0)),
		agentpay.WithDebug(config.GetEnvBool("AGENTPAY_DEBUG", false)),
		agentpay.WithLogger(logger),
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create AgentPay client")
	}

	weather := nws.NewClient(nws.Config{
		BaseURL: config.GetEnv("NWS_API_BASE", ""),
		Logger:  logger,
	})

	m := metrics.New("weather_server")

	handler := tools.NewHandler(billing, weather, logger, m)

	mcpSrv := mcpserver.NewMCPServer(serviceName, serviceVersion,
		mcpserver.WithToolCapabilities(false),
	)
	handler.Register(mcpSrv)

	httpTransport := mcpserver.NewStreamableHTTPServer(mcpSrv)

	router := server.NewRouter(logger, m, billing, httpTransport, serviceName)

	cfg := server.DefaultConfig(serviceName, defaultPort)
	if err := server.Start(cfg, router, logger); err != nil {
		logger.WithError(err).Fatal("Server error")
	}
}
