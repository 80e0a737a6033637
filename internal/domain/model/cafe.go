package model

// Cafe is a physical point-of-sale location.
type Cafe struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	// AccessCode is the staff login code for this café. It is write-only
	// from the terminal's point of view; the Gateway never echoes it back.
	AccessCode string `json:"access_code,omitempty"`
}

// CardMetrics holds the dashboard headline numbers for one month.
type CardMetrics struct {
	TopProduct      string  `json:"top_product"`
	TopProductSales int     `json:"top_product_sales,omitempty"`
	TopCafe         string  `json:"top_cafe"`
	TotalSales      float64 `json:"total_sales"`
	GrowthPercent   float64 `json:"growth_percent"`
}
