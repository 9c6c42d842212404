package aqi

import (
	"unicode"
)

const (
	// readingID is constant: readings are derived per request and carry no identity.
	readingID = 1

	overrideZip = "90210"

	minZipLength = 5
)

// Estimate maps a postal code to its deterministic air quality reading.
//
// The code is parsed the way a lenient integer parser would: leading
// whitespace and sign are skipped, a 0x prefix switches to hex, and parsing
// stops at the first non-digit. Input with no digits counts as zero.
func Estimate(zip string) Reading {
	value, category, color := 45, CategoryGood, ColorGreen

	mod3, mod2 := zipRemainders(zip)
	switch {
	case mod3 == 0:
		value, category, color = 112, CategoryUnhealthyForSensitive, ColorOrange
	case mod2 == 0:
		value, category, color = 75, CategoryModerate, ColorYellow
	}

	if zip == overrideZip {
		value, category, color = 155, CategoryUnhealthy, ColorRed
	}

	return Reading{
		ID:       readingID,
		Zip:      zip,
		Value:    value,
		Category: category,
		Color:    color,
	}
}

// Classify returns the category covering an arbitrary index using the EPA breakpoints.
func Classify(value int) Category {
	switch {
	case value <= 50:
		return CategoryGood
	case value <= 100:
		return CategoryModerate
	case value <= 150:
		return CategoryUnhealthyForSensitive
	default:
		return CategoryUnhealthy
	}
}

// ColorFor returns the display color of a category.
func ColorFor(c Category) Color {
	switch c {
	case CategoryGood:
		return ColorGreen
	case CategoryModerate:
		return ColorYellow
	case CategoryUnhealthyForSensitive:
		return ColorOrange
	case CategoryUnhealthy:
		return ColorRed
	}
	panic("aqi: unknown category " + string(c))
}

// zipRemainders returns the parsed value modulo 3 and modulo 2. Working on the
// digits keeps the result exact for codes longer than any integer type.
func zipRemainders(zip string) (int, int) {
	runes := []rune(zip)
	i := 0
	for i < len(runes) && (unicode.IsSpace(runes[i]) || runes[i] == '\uFEFF') {
		i++
	}
	if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
		i++
	}

	base := 10
	if i+1 < len(runes) && runes[i] == '0' && (runes[i+1] == 'x' || runes[i+1] == 'X') {
		base = 16
		i += 2
	}

	// mod 6 carries both remainders.
	rem := 0
	for ; i < len(runes); i++ {
		d, ok := digitValue(runes[i], base)
		if !ok {
			break
		}
		rem = (rem*base + d) % 6
	}
	return rem % 3, rem % 2
}

func digitValue(r rune, base int) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case base == 16 && r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case base == 16 && r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}
