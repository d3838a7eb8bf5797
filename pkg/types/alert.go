package types

import "fmt"

// AlertCollection represents the GeoJSON feature collection returned by the NWS alerts endpoint.
// Features keep the order the API returned them in.
type AlertCollection struct {
	Features []AlertFeature `json:"features"`
}

// AlertFeature represents a single alert feature
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties holds the properties object of an alert feature
type AlertProperties map[string]any

// Value returns the property for key as a string.
// It reports false when the key is absent or null.
func (p AlertProperties) Value(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}
