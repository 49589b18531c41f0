package entities

// TrafficEntry is one recorded storefront visit. The collection is written by
// the storefront and is read-only for this service; it only feeds the
// conversion-rate and acquisition figures in reporting.
type TrafficEntry struct {
	Source     string `json:"source"`
	DeviceType string `json:"device_type"`
	OS         string `json:"os"`
}
