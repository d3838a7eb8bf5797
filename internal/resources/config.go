package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ConfigResource serves the static application configuration string
type ConfigResource struct {
	content string
}

// NewConfigResource creates a new config resource
func NewConfigResource(content string) *ConfigResource {
	return &ConfigResource{content: content}
}

// GetResource returns the MCP resource definition
func (r *ConfigResource) GetResource() mcp.Resource {
	return mcp.NewResource(ConfigURI, "App configuration",
		mcp.WithResourceDescription("Static configuration data"),
		mcp.WithMIMEType(textMIMEType),
	)
}

// Handle processes the resource read
func (r *ConfigResource) Handle(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ConfigURI,
			MIMEType: textMIMEType,
			Text:     r.content,
		},
	}, nil
}
