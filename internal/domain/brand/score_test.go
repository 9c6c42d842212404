package brand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeGoldenScores(t *testing.T) {
	tests := []struct {
		name      string
		hash      int32
		score     int
		rating    EcoRating
		packaging PackagingImpact
	}{
		{"Nike", 2428021, 21, EcoRatingLow, PackagingHigh},
		{"Apple", 63476538, 38, EcoRatingLow, PackagingHigh},
		{"Nestle", -1965077007, 7, EcoRatingLow, PackagingHigh},
		{"Patagonia", 1433219744, 44, EcoRatingMedium, PackagingModerate},
		{"Coca-Cola", -172702460, 60, EcoRatingMedium, PackagingModerate},
		{"a", 97, 97, EcoRatingHigh, PackagingLow},
		{"nike", 3381333, 33, EcoRatingLow, PackagingHigh},
		{"Café", 2092609, 9, EcoRatingLow, PackagingHigh},
		// Astral plane runes hash as two UTF-16 surrogates.
		{"😀", 1772899, 99, EcoRatingHigh, PackagingLow},
		{"", 0, 0, EcoRatingLow, PackagingHigh},
	}

	for _, tc := range tests {
		require.Equal(t, tc.hash, Hash(tc.name), tc.name)
		got := Compute(tc.name)
		require.Equal(t, tc.name, got.Name)
		require.Equal(t, tc.score, got.Score, tc.name)
		require.Equal(t, tc.rating, got.EcoRating, tc.name)
		require.Equal(t, tc.packaging, got.PackagingImpact, tc.name)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	for _, name := range []string{"Nike", "Apple", "Unilever", "H&M"} {
		first := Compute(name)
		for i := 0; i < 3; i++ {
			require.Equal(t, first, Compute(name))
		}
	}
}

func TestComputeScoreRange(t *testing.T) {
	names := []string{"Procter & Gamble", "Samsung", "Toyota", "Zara", "Adidas", "Danone", "PepsiCo", "L'Oréal"}
	for _, name := range names {
		got := Compute(name)
		require.GreaterOrEqual(t, got.Score, 0, name)
		require.LessOrEqual(t, got.Score, 99, name)
	}
}

func TestRatingsForBoundaries(t *testing.T) {
	tests := []struct {
		score     int
		rating    EcoRating
		packaging PackagingImpact
	}{
		{0, EcoRatingLow, PackagingHigh},
		{40, EcoRatingLow, PackagingHigh},
		{41, EcoRatingMedium, PackagingModerate},
		{70, EcoRatingMedium, PackagingModerate},
		{71, EcoRatingHigh, PackagingLow},
		{99, EcoRatingHigh, PackagingLow},
	}
	for _, tc := range tests {
		rating, packaging := ratingsFor(tc.score)
		require.Equal(t, tc.rating, rating, "score %d", tc.score)
		require.Equal(t, tc.packaging, packaging, "score %d", tc.score)
	}
}
