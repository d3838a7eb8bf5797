package types

import "time"

// Config represents the configuration for the weather-mcp server
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	NWS       NWSConfig       `yaml:"nws" json:"nws"`
	Log       LogConfig       `yaml:"log" json:"log"`
	Resources ResourcesConfig `yaml:"resources" json:"resources"`
}

// ServerConfig controls how the MCP server is exposed
type ServerConfig struct {
	// Transport is one of: stdio | http.
	Transport string `yaml:"transport" json:"transport"`

	// HTTPAddr is the listen address used when Transport is "http".
	HTTPAddr string `yaml:"http_addr" json:"http_addr,omitempty"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP transport.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout,omitempty"`
}

// NWSConfig configures the National Weather Service API client
type NWSConfig struct {
	BaseURL   string `yaml:"base_url" json:"base_url"`
	UserAgent string `yaml:"user_agent" json:"user_agent"`

	// Timeout bounds a single upstream request. Zero disables it.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `yaml:"level" json:"level,omitempty"`
	Format string `yaml:"format" json:"format,omitempty"`
}

// ResourcesConfig holds the content served by static resources
type ResourcesConfig struct {
	AppConfig string `yaml:"app_config" json:"app_config"`
}
