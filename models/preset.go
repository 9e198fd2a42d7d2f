package models

// Preset is a pre-assembled, named bundle of products with a fixed total
// price, offered as an alternative to manual configuration.
type Preset struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      *string  `json:"description"`
	TotalPrice       float64  `json:"total_price"`
	PerformanceScore *float64 `json:"performance_score"`
	Priority         int      `json:"priority"`
	DeviceType       string   `json:"device_type"`
	Segment          string   `json:"segment"`
	ImageURL         string   `json:"image_url,omitempty"`
}

// PresetDetails is the detail view with the nested product list.
type PresetDetails struct {
	Preset
	Products []Product `json:"products"`
}

// SeriesName buckets a preset into its marketing series by total price.
func SeriesName(totalPrice float64) string {
	if totalPrice < 5000 {
		return "START & GAMER"
	}
	if totalPrice < 8000 {
		return "ELITE & MASTER"
	}
	return "ULTRA & LEGEND"
}
