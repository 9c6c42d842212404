package brand

import "unicode/utf16"

// Hash is the 32-bit rolling string hash behind brand scores. It walks UTF-16
// code units and lets int32 arithmetic wrap, so results match the scores the
// web client has always shown.
func Hash(name string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(name)) {
		h = int32(unit) + ((h << 5) - h)
	}
	return h
}

// Compute derives the eco score for a brand name. The name is kept as given.
func Compute(name string) Score {
	score := int(Hash(name) % 100)
	if score < 0 {
		score = -score
	}
	rating, packaging := ratingsFor(score)
	return Score{
		Name:            name,
		Score:           score,
		EcoRating:       rating,
		PackagingImpact: packaging,
	}
}

func ratingsFor(score int) (EcoRating, PackagingImpact) {
	switch {
	case score > 70:
		return EcoRatingHigh, PackagingLow
	case score > 40:
		return EcoRatingMedium, PackagingModerate
	default:
		return EcoRatingLow, PackagingHigh
	}
}
