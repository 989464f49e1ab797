// Package sqlsource reads match records from a SQL database (Postgres or SQLite).
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/preston-bernstein/league-standings-service/internal/domain/matches"
	"github.com/preston-bernstein/league-standings-service/internal/logging"
	"github.com/preston-bernstein/league-standings-service/internal/timeutil"
)

const selectMatches = `SELECT match_date_ms, stadium, home_team, away_team, match_played, home_team_score, away_team_score
	FROM matches ORDER BY id`

// Config selects the database to read from.
type Config struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	Logger       *slog.Logger
}

// Provider serves the matches table as a providers.MatchProvider.
type Provider struct {
	db      *sql.DB
	dialect dialect
	logger  *slog.Logger
}

// Open connects, verifies the connection, and creates the matches table when missing.
func Open(ctx context.Context, cfg Config) (*Provider, error) {
	d, err := lookupDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("sqlsource: empty connection string for %s", d.driver)
	}

	db, err := sql.Open(d.driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: opening database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlsource: pinging database: %w", err)
	}

	p := &Provider{db: db, dialect: d, logger: cfg.Logger}
	if err := p.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

func (p *Provider) migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, p.dialect.createTable); err != nil {
		return fmt.Errorf("sqlsource: migrating: %w", err)
	}
	return nil
}

// FetchMatches returns every row of the matches table in insertion order.
// NULL scores read as zero and a NULL date as the zero time.
func (p *Provider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	rows, err := p.db.QueryContext(ctx, selectMatches)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: querying matches: %w", err)
	}
	defer rows.Close()

	list := make([]matches.Match, 0)
	for rows.Next() {
		var (
			m         matches.Match
			dateMS    sql.NullInt64
			homeScore sql.NullInt64
			awayScore sql.NullInt64
		)
		if err := rows.Scan(&dateMS, &m.Stadium, &m.HomeTeam, &m.AwayTeam, &m.Played, &homeScore, &awayScore); err != nil {
			return nil, fmt.Errorf("sqlsource: scanning match: %w", err)
		}
		if dateMS.Valid {
			m.Date = timeutil.FromUnixMilli(dateMS.Int64)
		}
		m.HomeTeamScore = score(homeScore)
		m.AwayTeamScore = score(awayScore)
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlsource: reading matches: %w", err)
	}

	logging.Debug(logging.FromContext(ctx, p.logger), "sql matches fetched",
		slog.String(logging.FieldProvider, p.dialect.driver),
		slog.Int(logging.FieldCount, len(list)),
	)
	return list, nil
}

// ReplaceAll swaps the table contents for list inside one transaction.
func (p *Provider) ReplaceAll(ctx context.Context, list []matches.Match) (err error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlsource: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("sqlsource: clearing matches: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, p.dialect.insertStatement())
	if err != nil {
		return fmt.Errorf("sqlsource: preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range list {
		var date sql.NullInt64
		if !m.Date.IsZero() {
			date = sql.NullInt64{Int64: m.Date.UnixMilli(), Valid: true}
		}
		if _, err = stmt.ExecContext(ctx, date, m.Stadium, m.HomeTeam, m.AwayTeam, m.Played, m.HomeTeamScore, m.AwayTeamScore); err != nil {
			return fmt.Errorf("sqlsource: inserting match %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlsource: commit: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (p *Provider) Close() error {
	return p.db.Close()
}

func score(v sql.NullInt64) int {
	if !v.Valid || v.Int64 < 0 {
		return 0
	}
	return int(v.Int64)
}
