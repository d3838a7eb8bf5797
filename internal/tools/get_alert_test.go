package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/averycrespi/weather-mcp/internal/results"
	"github.com/averycrespi/weather-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAlertsClient returns a canned result and records the requested states
type fakeAlertsClient struct {
	result types.AlertsResult
	states []string
}

func (f *fakeAlertsClient) Fetch(ctx context.Context, url string) types.FetchResult {
	return types.FetchResult{Outcome: types.OutcomeTransportError, Err: errors.New("not used")}
}

func (f *fakeAlertsClient) ActiveAlerts(ctx context.Context, state string) types.AlertsResult {
	f.states = append(f.states, state)
	return f.result
}

func callGetAlert(t *testing.T, client types.AlertsClient, arguments map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := NewGetAlertTool(client)

	request := mcp.CallToolRequest{}
	request.Params.Name = ToolGetAlert
	request.Params.Arguments = arguments

	result, err := tool.Handle(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestGetAlertToolDefinition(t *testing.T) {
	tool := NewGetAlertTool(&fakeAlertsClient{}).GetTool()
	assert.Equal(t, ToolGetAlert, tool.Name)
	assert.NotEmpty(t, tool.Description)
	assert.Contains(t, tool.InputSchema.Properties, ParamState)
	assert.Contains(t, tool.InputSchema.Required, ParamState)
}

func TestGetAlertNoAlertsIsIndistinguishable(t *testing.T) {
	tests := []struct {
		name   string
		result types.AlertsResult
	}{
		{name: "Empty object", result: types.AlertsResult{Outcome: types.OutcomeEmpty}},
		{name: "Empty features", result: types.AlertsResult{Outcome: types.OutcomeEmpty, StatusCode: 200}},
		{name: "Transport failure", result: types.AlertsResult{Outcome: types.OutcomeTransportError, Err: errors.New("no such host")}},
		{name: "HTTP failure", result: types.AlertsResult{Outcome: types.OutcomeHTTPError, StatusCode: 503}},
		{name: "Malformed body", result: types.AlertsResult{Outcome: types.OutcomeDecodeError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callGetAlert(t, &fakeAlertsClient{result: tt.result}, map[string]any{ParamState: "CA"})
			assert.False(t, result.IsError)
			assert.Equal(t, "No active alerts found.", resultText(t, result))
		})
	}
}

func TestGetAlertFormatsAlertsInOrder(t *testing.T) {
	first := types.AlertFeature{Properties: types.AlertProperties{"event": "Tornado Warning", "area": "Dallas"}}
	second := types.AlertFeature{Properties: types.AlertProperties{"event": "Flash Flood Watch", "area": "Austin"}}
	client := &fakeAlertsClient{result: types.AlertsResult{
		Outcome: types.OutcomeOK,
		Alerts:  types.AlertCollection{Features: []types.AlertFeature{first, second}},
	}}

	text := resultText(t, callGetAlert(t, client, map[string]any{ParamState: "TX"}))

	assert.Equal(t, results.FormatAlert(first)+"\n---\n"+results.FormatAlert(second), text)
	assert.Less(t, strings.Index(text, "Tornado Warning"), strings.Index(text, "Flash Flood Watch"))
}

func TestGetAlertPassesStateVerbatim(t *testing.T) {
	tests := []struct {
		name      string
		arguments map[string]any
		expected  string
	}{
		{name: "State code", arguments: map[string]any{ParamState: "NY"}, expected: "NY"},
		{name: "Lower case", arguments: map[string]any{ParamState: "ny"}, expected: "ny"},
		{name: "Whitespace kept", arguments: map[string]any{ParamState: " NY "}, expected: " NY "},
		{name: "Missing argument", arguments: map[string]any{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeAlertsClient{result: types.AlertsResult{Outcome: types.OutcomeEmpty}}
			callGetAlert(t, client, tt.arguments)
			assert.Equal(t, []string{tt.expected}, client.states)
		})
	}
}
