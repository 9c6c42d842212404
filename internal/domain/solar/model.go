package solar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number accepts a JSON number or a numeric string, as HTML forms send both.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("dailyKwh: %q is not a number", raw)
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Request is the sizing query accepted from transports.
type Request struct {
	Zip      string  `json:"zip"`
	DailyKwh *Number `json:"dailyKwh" binding:"required,gte=0,lte=1000000"`
}

// Equivalents restates the avoided emissions in everyday terms.
type Equivalents struct {
	MilesDriven   float64 `json:"milesDriven"`
	TreeSeedlings float64 `json:"treeSeedlings"`
}

// Estimate is the derived sizing result.
type Estimate struct {
	DailyKwh               float64     `json:"dailyKwh"`
	WorthIt                bool        `json:"worthIt"`
	Panels                 int         `json:"panels"`
	SystemSizeKw           float64     `json:"systemSizeKw"`
	DailyProductionKwh     float64     `json:"dailyProductionKwh"`
	EnergyOffsetPercent    int         `json:"energyOffsetPercent"`
	AnnualCo2ReductionTons float64     `json:"annualCo2ReductionTons"`
	AnnualSavingsInr       int64       `json:"annualSavingsInr"`
	Summary                string      `json:"summary"`
	Co2ReductionKg         float64     `json:"co2ReductionKg"`
	Equivalents            Equivalents `json:"equivalents"`
	DisplayText            string      `json:"displayText"`
}
