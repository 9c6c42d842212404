package brand

import (
	"time"

	"github.com/google/uuid"
)

// EcoRating is the qualitative sustainability grade of a brand.
type EcoRating string

const (
	EcoRatingLow    EcoRating = "Low"
	EcoRatingMedium EcoRating = "Medium"
	EcoRatingHigh   EcoRating = "High"
)

// PackagingImpact is the qualitative packaging footprint of a brand.
type PackagingImpact string

const (
	PackagingLow      PackagingImpact = "Low"
	PackagingModerate PackagingImpact = "Moderate"
	PackagingHigh     PackagingImpact = "High"
)

// Score is the derived eco assessment of a brand name.
type Score struct {
	Name            string          `json:"name"`
	Score           int             `json:"score"`
	EcoRating       EcoRating       `json:"ecoRating"`
	PackagingImpact PackagingImpact `json:"packagingImpact"`
}

// TrendingBrand is a frequently searched brand.
type TrendingBrand struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Lookup records a single brand score request.
type Lookup struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	EcoRating  EcoRating `json:"ecoRating"`
	LookedUpAt time.Time `json:"lookedUpAt"`
}

// Config holds runtime knobs for the brand service.
type Config struct {
	TrendingLimit int
	RecentLimit   int
}
