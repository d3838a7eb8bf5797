package results

import (
	"errors"
	"strings"
	"testing"

	"github.com/averycrespi/weather-mcp/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullFeature() types.AlertFeature {
	return types.AlertFeature{Properties: types.AlertProperties{
		"event":       "Winter Storm Warning",
		"area":        "Lake Tahoe",
		"severity":    "Severe",
		"status":      "Actual",
		"start":       "2026-01-10T06:00:00-08:00",
		"end":         "2026-01-11T18:00:00-08:00",
		"description": "Heavy snow expected.",
		"instruction": "Avoid travel.",
	}}
}

func TestFormatAlertAllFields(t *testing.T) {
	expected := strings.Join([]string{
		"Event: Winter Storm Warning",
		"Area: Lake Tahoe",
		"Severity: Severe",
		"Status: Actual",
		"Start: 2026-01-10T06:00:00-08:00",
		"End: 2026-01-11T18:00:00-08:00",
		"Description: Heavy snow expected.",
		"Instruction: Avoid travel.",
	}, "\n")

	assert.Equal(t, expected, FormatAlert(fullFeature()))
}

func TestFormatAlertMissingField(t *testing.T) {
	for _, field := range alertFields {
		t.Run(field.Label, func(t *testing.T) {
			feature := fullFeature()
			delete(feature.Properties, field.Key)

			lines := strings.Split(FormatAlert(feature), "\n")
			require.Len(t, lines, len(alertFields))
			for i, line := range lines {
				if alertFields[i].Key == field.Key {
					assert.Equal(t, field.Label+": unknown", line)
				} else {
					assert.NotContains(t, line, UnknownValue)
				}
			}
		})
	}
}

func TestFormatAlertNullAndNoProperties(t *testing.T) {
	feature := fullFeature()
	feature.Properties["instruction"] = nil
	assert.True(t, strings.HasSuffix(FormatAlert(feature), "\nInstruction: unknown"))

	bare := FormatAlert(types.AlertFeature{})
	for _, field := range alertFields {
		assert.Contains(t, bare, field.Label+": unknown")
	}
}

func TestFormatAlertsJoinsInOrder(t *testing.T) {
	first := types.AlertFeature{Properties: types.AlertProperties{"event": "Flood Warning"}}
	second := types.AlertFeature{Properties: types.AlertProperties{"event": "Heat Advisory"}}

	out := FormatAlerts([]types.AlertFeature{first, second})
	blocks := strings.Split(out, AlertSeparator)
	require.Len(t, blocks, 2)
	assert.Equal(t, FormatAlert(first), blocks[0])
	assert.Equal(t, FormatAlert(second), blocks[1])

	assert.Contains(t, strings.Split(out, "\n"), "---")
	assert.Less(t, strings.Index(out, "Flood Warning"), strings.Index(out, "Heat Advisory"))
}

func TestRenderAlerts(t *testing.T) {
	tests := []struct {
		name   string
		result types.AlertsResult
	}{
		{name: "Empty", result: types.AlertsResult{Outcome: types.OutcomeEmpty}},
		{name: "HTTP error", result: types.AlertsResult{Outcome: types.OutcomeHTTPError, StatusCode: 500}},
		{name: "Transport error", result: types.AlertsResult{Outcome: types.OutcomeTransportError, Err: errors.New("dial tcp: connection refused")}},
		{name: "Decode error", result: types.AlertsResult{Outcome: types.OutcomeDecodeError}},
		{name: "OK without features", result: types.AlertsResult{Outcome: types.OutcomeOK}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, NoActiveAlertsMessage, RenderAlerts(tt.result))
		})
	}

	ok := types.AlertsResult{
		Outcome: types.OutcomeOK,
		Alerts:  types.AlertCollection{Features: []types.AlertFeature{fullFeature()}},
	}
	assert.Equal(t, FormatAlert(fullFeature()), RenderAlerts(ok))
}
