package brandrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecolife/ecolife-api/internal/domain/brand"
)

const schemaDDL = `
	CREATE TABLE IF NOT EXISTS brand_lookups (
		id           UUID PRIMARY KEY,
		name         TEXT NOT NULL,
		score        INTEGER NOT NULL,
		eco_rating   TEXT NOT NULL,
		looked_up_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS brand_lookups_looked_up_at_idx ON brand_lookups (looked_up_at DESC);
`

// PostgresRepository implements brand.LookupRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the lookup table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schemaDDL)
	return err
}

// Append inserts a lookup row.
func (r *PostgresRepository) Append(ctx context.Context, lookup brand.Lookup) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO brand_lookups (id, name, score, eco_rating, looked_up_at)
		VALUES ($1, $2, $3, $4, $5)
	`, lookup.ID, lookup.Name, lookup.Score, string(lookup.EcoRating), lookup.LookedUpAt)
	return err
}

// Recent returns the newest lookups first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]brand.Lookup, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, score, eco_rating, looked_up_at
		FROM brand_lookups
		ORDER BY looked_up_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]brand.Lookup, 0, limit)
	for rows.Next() {
		var (
			lookup brand.Lookup
			rating string
		)
		if err := rows.Scan(&lookup.ID, &lookup.Name, &lookup.Score, &rating, &lookup.LookedUpAt); err != nil {
			return nil, err
		}
		lookup.EcoRating = brand.EcoRating(rating)
		out = append(out, lookup)
	}
	return out, rows.Err()
}

var _ brand.LookupRepository = (*PostgresRepository)(nil)
