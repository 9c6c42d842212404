package heatmap

import "math"

// GridSize is the number of cells along each side of the map.
const GridSize = 10

// Band is the display band of a cell's heat value.
type Band string

const (
	BandCool     Band = "cool"
	BandMild     Band = "mild"
	BandElevated Band = "elevated"
	BandHigh     Band = "high"
	BandExtreme  Band = "extreme"
)

// hotspot is a heat source with its peak value and per-unit falloff.
type hotspot struct {
	x, y    float64
	peak    float64
	falloff float64
}

var hotspots = [...]hotspot{
	{x: 3, y: 3, peak: 10, falloff: 2},
	{x: 7, y: 8, peak: 8, falloff: 1.5},
}

// Cell is a single grid square.
type Cell struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Value float64 `json:"value"`
	Band  Band    `json:"band"`
}

// Grid is the regional heat map.
type Grid struct {
	Size  int    `json:"size"`
	Cells []Cell `json:"cells"`
}

// Generate builds the heat map, row by row.
func Generate() Grid {
	cells := make([]Cell, 0, GridSize*GridSize)
	for i := 0; i < GridSize*GridSize; i++ {
		x, y := i%GridSize, i/GridSize
		v := heatAt(float64(x), float64(y))
		cells = append(cells, Cell{X: x, Y: y, Value: math.Round(v*10) / 10, Band: BandFor(v)})
	}
	return Grid{Size: GridSize, Cells: cells}
}

func heatAt(x, y float64) float64 {
	heat := 0.0
	for _, h := range hotspots {
		d := math.Hypot(x-h.x, y-h.y)
		heat += math.Max(0, h.peak-d*h.falloff)
	}
	return math.Min(10, heat)
}

// BandFor classifies a heat value.
func BandFor(v float64) Band {
	switch {
	case v > 8:
		return BandExtreme
	case v > 6:
		return BandHigh
	case v > 4:
		return BandElevated
	case v > 2:
		return BandMild
	default:
		return BandCool
	}
}
