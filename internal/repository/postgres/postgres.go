package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/desertfarm/backend/internal/domain"
)

// historyLockKey serializes history inserts so timestamps never go backwards
const historyLockKey = 7207

const schema = `
	CREATE TABLE IF NOT EXISTS advice_history (
		id            BIGSERIAL PRIMARY KEY,
		query         TEXT NOT NULL,
		advice        TEXT NOT NULL,
		language      TEXT NOT NULL,
		temperature   REAL NOT NULL,
		humidity      REAL NOT NULL,
		rainfall      REAL NOT NULL,
		wind_speed    REAL NOT NULL,
		location_name TEXT,
		latitude      REAL NOT NULL,
		longitude     REAL NOT NULL,
		timestamp     TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS advice_history_timestamp_idx ON advice_history (timestamp DESC, id DESC);
`

// PostgresRepository implements domain.AdviceRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the advice_history table when missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to apply schema: %w", err)
	}
	return nil
}

// SaveAdviceHistory persists an advice exchange to PostgreSQL
func (r *PostgresRepository) SaveAdviceHistory(ctx context.Context, rec domain.NewAdviceHistory) (domain.AdviceHistoryRecord, error) {
	query := `
		INSERT INTO advice_history (
			query, advice, language, temperature, humidity, rainfall,
			wind_speed, location_name, latitude, longitude, timestamp
		)
		SELECT $1::text, $2::text, $3::text, $4::real, $5::real, $6::real,
			$7::real, $8::text, $9::real, $10::real,
			GREATEST($11::timestamptz, COALESCE(MAX(timestamp), $11::timestamptz))
		FROM advice_history
		RETURNING id, timestamp
	`

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.AdviceHistoryRecord{}, fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, historyLockKey); err != nil {
		return domain.AdviceHistoryRecord{}, fmt.Errorf("postgres: failed to lock advice history: %w", err)
	}

	var (
		id     int64
		stored time.Time
	)
	err = tx.QueryRow(ctx, query,
		rec.Query, rec.Advice, string(rec.Language), rec.Temperature, rec.Humidity, rec.Rainfall,
		rec.WindSpeed, rec.LocationName, rec.Latitude, rec.Longitude, ts,
	).Scan(&id, &stored)
	if err != nil {
		return domain.AdviceHistoryRecord{}, fmt.Errorf("postgres: failed to save advice history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.AdviceHistoryRecord{}, fmt.Errorf("postgres: failed to commit advice history: %w", err)
	}

	return rec.Stored(id, stored.UTC()), nil
}

// GetAdviceHistory retrieves the most recent advice exchanges from PostgreSQL
func (r *PostgresRepository) GetAdviceHistory(ctx context.Context, limit int) ([]domain.AdviceHistoryRecord, error) {
	query := `
		SELECT id, query, advice, language, temperature, humidity, rainfall,
			   wind_speed, location_name, latitude, longitude, timestamp
		FROM advice_history
		ORDER BY timestamp DESC, id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query advice history: %w", err)
	}
	defer rows.Close()

	results := make([]domain.AdviceHistoryRecord, 0, limit)
	for rows.Next() {
		rec, err := scanAdviceHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan advice history row: %w", err)
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read advice history: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

func scanAdviceHistory(rows pgx.Rows) (domain.AdviceHistoryRecord, error) {
	var (
		rec      domain.AdviceHistoryRecord
		language string
	)
	err := rows.Scan(
		&rec.ID, &rec.Query, &rec.Advice, &language, &rec.Temperature, &rec.Humidity, &rec.Rainfall,
		&rec.WindSpeed, &rec.LocationName, &rec.Latitude, &rec.Longitude, &rec.Timestamp,
	)
	if err != nil {
		return domain.AdviceHistoryRecord{}, err
	}
	rec.Language = domain.Language(language)
	rec.Timestamp = rec.Timestamp.UTC()
	return rec, nil
}
