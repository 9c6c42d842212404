package plant

import "fmt"

// Sunlight is the light requirement of a plant.
type Sunlight string

const (
	SunlightLow      Sunlight = "low"
	SunlightModerate Sunlight = "moderate"
	SunlightHigh     Sunlight = "high"
)

// Watering is how often a plant needs water.
type Watering string

const (
	WateringRare     Watering = "rare"
	WateringModerate Watering = "moderate"
	WateringFrequent Watering = "frequent"
)

// CareIntensity is how demanding a plant is to keep.
type CareIntensity string

const (
	CareEasy     CareIntensity = "easy"
	CareModerate CareIntensity = "moderate"
	CareHard     CareIntensity = "hard"
)

// Weather is the climate the client reports alongside a recommendation query.
type Weather string

const (
	WeatherHot      Weather = "hot"
	WeatherModerate Weather = "moderate"
	WeatherCold     Weather = "cold"
)

// Plant is an immutable catalog entry.
type Plant struct {
	ID             int           `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Sunlight       Sunlight      `json:"sunlight" yaml:"sunlight"`
	Watering       Watering      `json:"watering" yaml:"watering"`
	CareIntensity  CareIntensity `json:"careIntensity" yaml:"careIntensity"`
	MedicinalValue string        `json:"medicinalValue" yaml:"medicinalValue"`
	DiseaseTags    []string      `json:"diseaseTags" yaml:"diseaseTags"`
}

func (p Plant) clone() Plant {
	tags := make([]string, len(p.DiseaseTags))
	copy(tags, p.DiseaseTags)
	p.DiseaseTags = tags
	return p
}

// Criteria narrows the catalog. Zero-valued fields impose no constraint.
type Criteria struct {
	Sunlight      Sunlight
	Watering      Watering
	CareIntensity CareIntensity
	Disease       string
}

// Request is the recommendation query accepted from transports.
type Request struct {
	Zip           string `form:"zip" json:"zip"`
	Weather       string `form:"weather" json:"weather" binding:"required,oneof=hot moderate cold"`
	Disease       string `form:"disease" json:"disease"`
	Sunlight      string `form:"sunlight" json:"sunlight" binding:"omitempty,oneof=low moderate high"`
	Watering      string `form:"watering" json:"watering" binding:"omitempty,oneof=rare moderate frequent"`
	CareIntensity string `form:"careIntensity" json:"careIntensity" binding:"omitempty,oneof=easy moderate hard"`
}

// ParseSunlight validates a sunlight value; "" is allowed and means unset.
func ParseSunlight(v string) (Sunlight, error) {
	switch s := Sunlight(v); s {
	case "", SunlightLow, SunlightModerate, SunlightHigh:
		return s, nil
	}
	return "", fmt.Errorf("unknown sunlight %q", v)
}

// ParseWatering validates a watering value; "" is allowed and means unset.
func ParseWatering(v string) (Watering, error) {
	switch w := Watering(v); w {
	case "", WateringRare, WateringModerate, WateringFrequent:
		return w, nil
	}
	return "", fmt.Errorf("unknown watering %q", v)
}

// ParseCareIntensity validates a care value; "" is allowed and means unset.
func ParseCareIntensity(v string) (CareIntensity, error) {
	switch c := CareIntensity(v); c {
	case "", CareEasy, CareModerate, CareHard:
		return c, nil
	}
	return "", fmt.Errorf("unknown care intensity %q", v)
}

// ParseWeather validates a weather value. Weather is mandatory.
func ParseWeather(v string) (Weather, error) {
	switch w := Weather(v); w {
	case WeatherHot, WeatherModerate, WeatherCold:
		return w, nil
	}
	return "", fmt.Errorf("unknown weather %q", v)
}
