package tools

// Tool names
const (
	ToolGetAlert = "get_alert"
)

// Tool parameter names
const (
	ParamState = "state"
)
