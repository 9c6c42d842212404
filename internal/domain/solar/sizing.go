package solar

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Size converts daily consumption into a panel installation estimate.
//
// dailyKwh must be finite and within [0, MaxDailyKwh]; callers validate it. A zero input
// yields an all-zero estimate with a zero offset instead of dividing by zero.
func Size(dailyKwh float64) Estimate {
	perPanel := PanelDailyKwh()

	panels := int(math.Ceil(dailyKwh / perPanel))
	systemSizeKw := float64(panels) * PanelWatts / 1000
	dailyProduction := float64(panels) * perPanel

	offset := 0
	if dailyKwh > 0 {
		offset = int(math.Min(100, math.Round(dailyProduction/dailyKwh*100)))
	}

	annualKwh := dailyProduction * DaysPerYear
	co2Kg := annualKwh * CarbonKgPerKwh
	co2Tons := math.Round(co2Kg/1000*10) / 10
	savings := int64(math.Round(annualKwh * PricePerKwh))

	est := Estimate{
		DailyKwh:               dailyKwh,
		Panels:                 panels,
		SystemSizeKw:           systemSizeKw,
		DailyProductionKwh:     dailyProduction,
		EnergyOffsetPercent:    offset,
		AnnualCo2ReductionTons: co2Tons,
		AnnualSavingsInr:       savings,
		Co2ReductionKg:         co2Kg,
		Equivalents: Equivalents{
			MilesDriven:   math.Round(co2Kg / EPAMilesDrivenFactor),
			TreeSeedlings: math.Round(co2Kg / EPATreeSeedlingFactor),
		},
	}

	if dailyKwh < WorthItThresholdKwh {
		est.WorthIt = false
		est.Summary = summaryNotWorthIt
	} else {
		est.WorthIt = true
		est.Summary = summaryWorthIt
	}
	est.DisplayText = displayText(est)
	return est
}

func displayText(est Estimate) string {
	if est.Panels == 0 {
		return "No panels needed for zero consumption"
	}
	return printer.Sprintf("%d panels avoid ~%d kg CO2 a year, equivalent to driving ~%d miles or growing ~%d tree seedlings",
		est.Panels,
		int64(math.Round(est.Co2ReductionKg)),
		int64(est.Equivalents.MilesDriven),
		int64(est.Equivalents.TreeSeedlings),
	)
}
