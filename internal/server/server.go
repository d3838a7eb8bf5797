package server

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"

	"github.com/averycrespi/weather-mcp/internal/config"
	"github.com/averycrespi/weather-mcp/internal/resources"
	"github.com/averycrespi/weather-mcp/internal/tools"
	"github.com/averycrespi/weather-mcp/pkg/project"
	"github.com/averycrespi/weather-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

var _ types.Server = &WeatherServer{}

// WeatherServer represents the weather MCP server.
// Tools and resources are registered on its own MCPServer instance.
type WeatherServer struct {
	mcpServer *server.MCPServer
	client    types.AlertsClient
	config    *types.Config
	logger    *logrus.Logger
}

// NewWeatherServer creates a new weather MCP server with its tools and resources registered
func NewWeatherServer(config *types.Config, logger *logrus.Logger, client types.AlertsClient) *WeatherServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
		server.WithRecovery(),
	)

	s := &WeatherServer{
		mcpServer: mcpServer,
		client:    client,
		config:    config,
		logger:    logger,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying MCP server
func (s *WeatherServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve serves the MCP server over the configured transport until ctx is done
func (s *WeatherServer) Serve(ctx context.Context) error {
	s.logger.WithFields(logrus.Fields{
		"transport": s.config.Server.Transport,
		"nws_url":   s.config.NWS.BaseURL,
	}).Info("Starting weather MCP server")

	switch s.config.Server.Transport {
	case config.TransportHTTP:
		return s.serveHTTP(ctx)
	case config.TransportStdio, "":
		return s.serveStdio(ctx)
	default:
		return fmt.Errorf("unsupported transport: %s", s.config.Server.Transport)
	}
}

func (s *WeatherServer) registerTools() {
	getAlertTool := tools.NewGetAlertTool(s.client)
	s.mcpServer.AddTool(getAlertTool.GetTool(), getAlertTool.Handle)
}

func (s *WeatherServer) registerResources() {
	configResource := resources.NewConfigResource(s.config.Resources.AppConfig)
	s.mcpServer.AddResource(configResource.GetResource(), configResource.Handle)

	echoResource := resources.NewEchoResource()
	s.mcpServer.AddResourceTemplate(echoResource.GetTemplate(), echoResource.Handle)
}

func (s *WeatherServer) serveStdio(ctx context.Context) error {
	errWriter := s.logger.WriterLevel(logrus.ErrorLevel)
	defer errWriter.Close()

	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(stdlog.New(errWriter, "", 0))

	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP server over stdio: %w", err)
	}
	return nil
}

func (s *WeatherServer) serveHTTP(ctx context.Context) error {
	httpServer := server.NewStreamableHTTPServer(s.mcpServer)

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.config.Server.HTTPAddr).Info("Listening for streamable HTTP clients")
		errCh <- httpServer.Start(s.config.Server.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve MCP server over HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
		timeout := s.config.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = config.DefaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
		return nil
	}
}
