package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
)

// Postgres is a persistent geocode cache. It survives restarts, so repeated
// optimizations against the same address book skip the rate-limited
// geocoder entirely.
type Postgres struct {
	DB *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

// InitSchema creates the cache table if it does not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address    TEXT PRIMARY KEY,
		lat        DOUBLE PRECISION NOT NULL,
		lon        DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("geocode cache: init schema: %w", err)
	}
	return nil
}

func (c *Postgres) Get(ctx context.Context, key string) (_ domain.Coordinate, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if c.DB == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: db is nil")
	}

	q := `
	SELECT lat, lon
	FROM geocode_cache
	WHERE address = $1;
	`

	var coord domain.Coordinate
	row := c.DB.QueryRowContext(ctx, q, key)
	if err := row.Scan(&coord.Lat, &coord.Lon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Coordinate{}, false, nil
		}
		return domain.Coordinate{}, false, fmt.Errorf("geocode cache: query %q: %w", key, err)
	}

	return coord, true, nil
}

func (c *Postgres) Put(ctx context.Context, key string, coord domain.Coordinate) (err error) {
	defer obs.Time(ctx, "geocode.cache.Put")(&err)

	if c.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	q := `
	INSERT INTO geocode_cache (address, lat, lon)
	VALUES ($1, $2, $3)
	ON CONFLICT (address) DO UPDATE SET lat = EXCLUDED.lat, lon = EXCLUDED.lon;
	`

	if _, err := c.DB.ExecContext(ctx, q, key, coord.Lat, coord.Lon); err != nil {
		return fmt.Errorf("geocode cache: upsert %q: %w", key, err)
	}

	return nil
}
