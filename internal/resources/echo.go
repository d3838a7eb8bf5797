package resources

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// EchoResource echoes the message embedded in an echo:// URI
type EchoResource struct{}

// NewEchoResource creates a new echo resource
func NewEchoResource() *EchoResource {
	return &EchoResource{}
}

// GetTemplate returns the MCP resource template definition
func (r *EchoResource) GetTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(EchoURITemplate, "Echo",
		mcp.WithTemplateDescription("Echo a message"),
		mcp.WithTemplateMIMEType(textMIMEType),
	)
}

// Handle processes the resource read
func (r *EchoResource) Handle(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: textMIMEType,
			Text:     Echo(echoMessage(req)),
		},
	}, nil
}

// Echo returns message unchanged behind a fixed prefix
func Echo(message string) string {
	return echoPrefix + message
}

// echoMessage extracts the message from the template arguments, falling back to the raw URI
func echoMessage(req mcp.ReadResourceRequest) string {
	switch v := req.Params.Arguments[echoMessageParam].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return strings.Join(v, ",")
		}
	}
	return strings.TrimPrefix(req.Params.URI, EchoScheme)
}
