package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/averycrespi/weather-mcp/internal/client"
	"github.com/averycrespi/weather-mcp/internal/config"
	"github.com/averycrespi/weather-mcp/internal/logging"
	"github.com/averycrespi/weather-mcp/internal/server"
	"github.com/averycrespi/weather-mcp/pkg/project"
	"github.com/averycrespi/weather-mcp/pkg/types"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/common/version"
)

// flags holds command line overrides; a field only applies when its flag was given
type flags struct {
	configPath string

	transport    string
	transportSet bool
	httpAddr     string
	httpAddrSet  bool
	logLevel     string
	logLevelSet  bool
	logFormat    string
	logFormatSet bool
	baseURL      string
	baseURLSet   bool
	timeout      time.Duration
	timeoutSet   bool
}

func main() {
	var f flags

	app := kingpin.New(filepath.Base(os.Args[0]), "MCP server for active U.S. weather alerts.")
	app.HelpFlag.Short('h')
	app.Flag("config", "Path to a YAML config file.").PlaceHolder("PATH").StringVar(&f.configPath)
	app.Flag("transport", "MCP transport, one of [stdio, http].").IsSetByUser(&f.transportSet).EnumVar(&f.transport, config.TransportStdio, config.TransportHTTP)
	app.Flag("http.addr", "Listen address for the http transport (e.g. :8080).").IsSetByUser(&f.httpAddrSet).StringVar(&f.httpAddr)
	app.Flag("log.level", "Log level, one of [debug, info, warn, error].").IsSetByUser(&f.logLevelSet).EnumVar(&f.logLevel, "debug", "info", "warn", "error")
	app.Flag("log.format", "Log format, one of [json, text].").IsSetByUser(&f.logFormatSet).EnumVar(&f.logFormat, "json", "text")
	app.Flag("nws.base-url", "Base URL of the National Weather Service API.").IsSetByUser(&f.baseURLSet).StringVar(&f.baseURL)
	app.Flag("nws.timeout", "Timeout for a single NWS request (Go duration, 0 disables).").IsSetByUser(&f.timeoutSet).DurationVar(&f.timeout)
	app.Version(version.Print(project.Name + "-mcp"))

	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("failed to parse commandline arguments: %w", err))
		app.Usage(os.Args[1:])
		os.Exit(2)
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// stdout carries the stdio transport, so logs go to stderr
	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	nwsClient := client.NewNWSClient(cfg.NWS, logger)
	mcpServer := server.NewWeatherServer(cfg, logger, nwsClient)

	// Serve blocks until the client disconnects or a signal arrives
	if err := mcpServer.Serve(ctx); err != nil {
		logger.WithError(err).Fatal("Server error")
	}

	logger.Info("Server stopped")
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(f flags) (*types.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if f.transportSet {
		cfg.Server.Transport = f.transport
	}
	if f.httpAddrSet {
		cfg.Server.HTTPAddr = f.httpAddr
	}
	if f.logLevelSet {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormatSet {
		cfg.Log.Format = f.logFormat
	}
	if f.baseURLSet {
		cfg.NWS.BaseURL = f.baseURL
	}
	if f.timeoutSet {
		cfg.NWS.Timeout = f.timeout
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
