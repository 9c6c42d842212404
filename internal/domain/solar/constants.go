package solar

// Panel and tariff assumptions.
const (
	PanelWatts     = 500.0
	SunHoursPerDay = 4.0
	PricePerKwh    = 8.0
	// CarbonKgPerKwh is the CO2 avoided per kWh not drawn from the grid.
	CarbonKgPerKwh = 0.4
	DaysPerYear    = 365

	// WorthItThresholdKwh is the daily consumption below which solar is not recommended.
	WorthItThresholdKwh = 5.0

	// MaxDailyKwh bounds accepted consumption so every derived figure fits its integer field.
	MaxDailyKwh = 1_000_000.0
)

// EPA greenhouse gas equivalency factors (kg CO2e per unit).
const (
	EPAMilesDrivenFactor  = 0.192
	EPATreeSeedlingFactor = 60.0
)

const (
	summaryNotWorthIt = "Your energy usage is relatively low. Solar installation may not provide optimal return on investment for your current consumption patterns."
	summaryWorthIt    = "Based on your energy consumption and regional factors, solar installation is recommended for your location."
)

// PanelDailyKwh is the energy one panel produces per day.
func PanelDailyKwh() float64 {
	return PanelWatts / 1000 * SunHoursPerDay
}
