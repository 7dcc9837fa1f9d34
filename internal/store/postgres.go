package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golf_stats/internal/app"
	"golf_stats/internal/config"
	"golf_stats/internal/retry"

	"github.com/lib/pq"
)

// Schema creates the tables PostgresStore reads from
const Schema = `
CREATE TABLE IF NOT EXISTS rounds (
	id          TEXT PRIMARY KEY,
	played_at   TIMESTAMPTZ NOT NULL,
	course      TEXT NOT NULL,
	tees        TEXT NOT NULL DEFAULT '',
	slope       INTEGER,
	rating      DOUBLE PRECISION,
	par         INTEGER,
	match_type  TEXT NOT NULL DEFAULT '',
	result      TEXT NOT NULL DEFAULT '',
	player_hcp  DOUBLE PRECISION,
	notes       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS round_holes (
	round_id     TEXT NOT NULL REFERENCES rounds(id) ON DELETE CASCADE,
	hole         INTEGER NOT NULL,
	fairway_hit  BOOLEAN,
	green_in_reg BOOLEAN NOT NULL,
	putts        INTEGER NOT NULL,
	score        INTEGER NOT NULL,
	PRIMARY KEY (round_id, hole)
);
`

const roundColumns = `id, played_at, course, tees, slope, rating, par, match_type, result, player_hcp, notes`

// PostgresStore implements RoundStore for PostgreSQL
type PostgresStore struct {
	db    *sql.DB
	retry config.RetryConfig
}

// NewPostgresStore opens a connection pool for the given DSN
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return NewPostgresStoreFromDB(db), nil
}

// NewPostgresStoreFromDB wraps an existing pool
func NewPostgresStoreFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, retry: config.DefaultResilienceConfig.StoreRead}
}

// Ping checks database connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate creates the schema if it does not exist
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate rounds schema: %w", err)
	}
	return nil
}

// Close closes the pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// ListRounds returns up to limit rounds, most recent first
func (s *PostgresStore) ListRounds(ctx context.Context, limit int) ([]app.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds ORDER BY played_at DESC, id LIMIT $1`

	// LIMIT NULL means no limit
	var limitArg interface{}
	if limit > 0 {
		limitArg = limit
	}

	var rounds []app.Round
	err := retry.Do(ctx, s.retry, "list rounds", func(ctx context.Context) error {
		var err error
		rounds, err = s.queryRounds(ctx, query, limitArg)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rounds, nil
}

// GetRoundByID returns the round with the given id, or nil when unknown
func (s *PostgresStore) GetRoundByID(ctx context.Context, id string) (*app.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds WHERE id = $1`

	var rounds []app.Round
	err := retry.Do(ctx, s.retry, "get round", func(ctx context.Context) error {
		var err error
		rounds, err = s.queryRounds(ctx, query, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil
	}
	return &rounds[0], nil
}

// SaveRound upserts a round and replaces its holes in one transaction
func (s *PostgresStore) SaveRound(ctx context.Context, round app.Round) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rounds (`+roundColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			played_at = EXCLUDED.played_at, course = EXCLUDED.course, tees = EXCLUDED.tees,
			slope = EXCLUDED.slope, rating = EXCLUDED.rating, par = EXCLUDED.par,
			match_type = EXCLUDED.match_type, result = EXCLUDED.result,
			player_hcp = EXCLUDED.player_hcp, notes = EXCLUDED.notes
	`,
		round.ID, round.Date, round.Course, round.Tees,
		round.Slope, round.Rating, round.Par,
		round.MatchType, round.Result, round.PlayerHcp, round.Notes,
	)
	if err != nil {
		return fmt.Errorf("upsert round %s: %w", round.ID, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM round_holes WHERE round_id = $1`, round.ID); err != nil {
		return fmt.Errorf("clear holes for round %s: %w", round.ID, err)
	}

	for _, h := range round.Holes {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO round_holes (round_id, hole, fairway_hit, green_in_reg, putts, score)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, round.ID, h.Hole, h.FairwayHit, h.GreenInReg, h.Putts, h.Score)
		if err != nil {
			return fmt.Errorf("insert hole %d for round %s: %w", h.Hole, round.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit round %s: %w", round.ID, err)
	}
	return nil
}

func (s *PostgresStore) queryRounds(ctx context.Context, query string, args ...interface{}) ([]app.Round, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	rounds := make([]app.Round, 0)
	for rows.Next() {
		var (
			r         app.Round
			slope     sql.NullInt64
			rating    sql.NullFloat64
			par       sql.NullInt64
			playerHcp sql.NullFloat64
		)
		if err := rows.Scan(&r.ID, &r.Date, &r.Course, &r.Tees, &slope, &rating, &par,
			&r.MatchType, &r.Result, &playerHcp, &r.Notes); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		r.Slope = nullIntPtr(slope)
		r.Par = nullIntPtr(par)
		r.Rating = nullFloatPtr(rating)
		r.PlayerHcp = nullFloatPtr(playerHcp)
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rounds: %w", err)
	}

	if len(rounds) == 0 {
		return rounds, nil
	}

	holes, err := s.queryHoles(ctx, roundIDs(rounds))
	if err != nil {
		return nil, err
	}
	attachHoles(rounds, holes)
	return rounds, nil
}

type holeRow struct {
	roundID string
	hole    app.HoleStat
}

func (s *PostgresStore) queryHoles(ctx context.Context, ids []string) ([]holeRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT round_id, hole, fairway_hit, green_in_reg, putts, score
		FROM round_holes
		WHERE round_id = ANY($1)
		ORDER BY round_id, hole
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query holes: %w", err)
	}
	defer rows.Close()

	var out []holeRow
	for rows.Next() {
		var (
			row     holeRow
			fairway sql.NullBool
		)
		if err := rows.Scan(&row.roundID, &row.hole.Hole, &fairway, &row.hole.GreenInReg,
			&row.hole.Putts, &row.hole.Score); err != nil {
			return nil, fmt.Errorf("scan hole: %w", err)
		}
		if fairway.Valid {
			hit := fairway.Bool
			row.hole.FairwayHit = &hit
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holes: %w", err)
	}
	return out, nil
}

// attachHoles appends each hole row to its round, keeping row order
func attachHoles(rounds []app.Round, rows []holeRow) {
	index := make(map[string]int, len(rounds))
	for i, r := range rounds {
		index[r.ID] = i
	}
	for _, row := range rows {
		if i, ok := index[row.roundID]; ok {
			rounds[i].Holes = append(rounds[i].Holes, row.hole)
		}
	}
}

func roundIDs(rounds []app.Round) []string {
	ids := make([]string, len(rounds))
	for i, r := range rounds {
		ids[i] = r.ID
	}
	return ids
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
