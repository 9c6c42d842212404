package brand

import "context"

// TrendStore keeps search counters for brand names.
type TrendStore interface {
	IncrementSearch(ctx context.Context, canonical, display string) error
	TopSearches(ctx context.Context, limit int) ([]TrendingBrand, error)
}

// LookupRepository keeps the history of brand lookups.
type LookupRepository interface {
	Append(ctx context.Context, lookup Lookup) error
	Recent(ctx context.Context, limit int) ([]Lookup, error)
}
