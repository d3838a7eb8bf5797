package results

import (
	"strings"

	"github.com/averycrespi/weather-mcp/pkg/types"
)

const (
	// NoActiveAlertsMessage is returned for empty results and for every upstream failure
	NoActiveAlertsMessage = "No active alerts found."

	// AlertSeparator puts "---" on its own line between formatted alerts
	AlertSeparator = "\n---\n"

	// UnknownValue replaces missing alert properties
	UnknownValue = "unknown"
)

// alertField pairs a rendered label with its NWS property key
type alertField struct {
	Label string
	Key   string
}

var alertFields = []alertField{
	{Label: "Event", Key: "event"},
	{Label: "Area", Key: "area"},
	{Label: "Severity", Key: "severity"},
	{Label: "Status", Key: "status"},
	{Label: "Start", Key: "start"},
	{Label: "End", Key: "end"},
	{Label: "Description", Key: "description"},
	{Label: "Instruction", Key: "instruction"},
}

// FormatAlert renders one alert as labeled lines in a fixed order
func FormatAlert(feature types.AlertFeature) string {
	var b strings.Builder
	for i, field := range alertFields {
		if i > 0 {
			b.WriteByte('\n')
		}
		value, ok := feature.Properties.Value(field.Key)
		if !ok {
			value = UnknownValue
		}
		b.WriteString(field.Label)
		b.WriteString(": ")
		b.WriteString(value)
	}
	return b.String()
}

// FormatAlerts renders each alert in order, separated by AlertSeparator
func FormatAlerts(features []types.AlertFeature) string {
	blocks := make([]string, 0, len(features))
	for _, feature := range features {
		blocks = append(blocks, FormatAlert(feature))
	}
	return strings.Join(blocks, AlertSeparator)
}

// RenderAlerts returns the user-facing text for an alerts lookup.
// Upstream failures and empty results produce the same message.
func RenderAlerts(result types.AlertsResult) string {
	if !result.HasAlerts() {
		return NoActiveAlertsMessage
	}
	return FormatAlerts(result.Alerts.Features)
}
