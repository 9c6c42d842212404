package aqi

// Category is the qualitative band of an AQI reading.
type Category string

const (
	CategoryGood                  Category = "Good"
	CategoryModerate              Category = "Moderate"
	CategoryUnhealthyForSensitive Category = "Unhealthy for Sensitive Groups"
	CategoryUnhealthy             Category = "Unhealthy"
)

// Color is the display color paired with a category.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

// Request captures the AQI lookup query.
type Request struct {
	Zip string `form:"zip" json:"zip" binding:"required,min=5"`
}

// Reading is the derived air quality reading for a postal code.
type Reading struct {
	ID       int      `json:"id"`
	Zip      string   `json:"zip"`
	Value    int      `json:"value"`
	Category Category `json:"category"`
	Color    Color    `json:"color"`
}
