package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/averycrespi/weather-mcp/pkg/types"

	"gopkg.in/yaml.v3"
)

// Transport names accepted by server.transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Default values for the server configuration.
const (
	DefaultTransport       = TransportStdio
	DefaultHTTPAddr        = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultBaseURL         = "https://api.weather.gov"
	DefaultUserAgent       = "weather-app/1.0"
	DefaultTimeout         = 30 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultAppConfig       = "App configuration here"
)

// Load reads and parses the config file at path.
// An empty path yields the defaults. Fields missing from the file keep their defaults.
func Load(path string) (*types.Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a Config pre-populated with default values.
func Defaults() *types.Config {
	return &types.Config{
		Server: types.ServerConfig{
			Transport:       DefaultTransport,
			HTTPAddr:        DefaultHTTPAddr,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		NWS: types.NWSConfig{
			BaseURL:   DefaultBaseURL,
			UserAgent: DefaultUserAgent,
			Timeout:   DefaultTimeout,
		},
		Log: types.LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Resources: types.ResourcesConfig{
			AppConfig: DefaultAppConfig,
		},
	}
}

// Validate checks structural constraints on the configuration.
func Validate(cfg *types.Config) error {
	switch cfg.Server.Transport {
	case TransportStdio:
	case TransportHTTP:
		if cfg.Server.HTTPAddr == "" {
			return fmt.Errorf("server.http_addr is required when server.transport is %q", TransportHTTP)
		}
	default:
		return fmt.Errorf("server.transport %q unknown: want stdio|http", cfg.Server.Transport)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}

	u, err := url.Parse(cfg.NWS.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("nws.base_url %q is not an absolute URL", cfg.NWS.BaseURL)
	}
	if strings.TrimSpace(cfg.NWS.UserAgent) == "" {
		return fmt.Errorf("nws.user_agent must not be empty")
	}
	if cfg.NWS.Timeout < 0 {
		return fmt.Errorf("nws.timeout must not be negative")
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown: want debug|info|warn|error", cfg.Log.Level)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q unknown: want text|json", cfg.Log.Format)
	}

	return nil
}
