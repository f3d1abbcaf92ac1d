// README: Pricing store backed by PostgreSQL.
package pricing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadConfig reads the current pricing row. It is called once at startup;
// the returned Config is immutable afterwards.
func (s *Store) LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	err := s.db.QueryRow(ctx, `
		SELECT base_fare, per_km_rate, min_fare, round_trip_discount, estimate_variance, currency
		FROM pricing_config
		ORDER BY updated_at DESC
		LIMIT 1
	`).Scan(&cfg.BaseFare, &cfg.PerKmRate, &cfg.MinFare, &cfg.RoundTripDiscount, &cfg.EstimateVariance, &cfg.Currency)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
