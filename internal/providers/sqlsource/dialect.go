package sqlsource

import (
	"fmt"
	"strings"
)

// Driver names registered by the imported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type dialect struct {
	driver      string
	createTable string
	placeholder func(n int) string
}

var dialects = map[string]dialect{
	DriverPostgres: {
		driver: DriverPostgres,
		createTable: `CREATE TABLE IF NOT EXISTS matches (
			id              BIGSERIAL PRIMARY KEY,
			match_date_ms   BIGINT,
			stadium         TEXT    NOT NULL DEFAULT '',
			home_team       TEXT    NOT NULL,
			away_team       TEXT    NOT NULL,
			match_played    BOOLEAN NOT NULL DEFAULT FALSE,
			home_team_score INT,
			away_team_score INT
		)`,
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	},
	DriverSQLite: {
		driver: DriverSQLite,
		createTable: `CREATE TABLE IF NOT EXISTS matches (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			match_date_ms   INTEGER,
			stadium         TEXT    NOT NULL DEFAULT '',
			home_team       TEXT    NOT NULL,
			away_team       TEXT    NOT NULL,
			match_played    INTEGER NOT NULL DEFAULT 0,
			home_team_score INTEGER,
			away_team_score INTEGER
		)`,
		placeholder: func(int) string { return "?" },
	},
}

func lookupDialect(driver string) (dialect, error) {
	d, ok := dialects[strings.ToLower(driver)]
	if !ok {
		return dialect{}, fmt.Errorf("sqlsource: unsupported driver %q", driver)
	}
	return d, nil
}

func (d dialect) insertStatement() string {
	ph := make([]string, 7)
	for i := range ph {
		ph[i] = d.placeholder(i + 1)
	}
	return `INSERT INTO matches (match_date_ms, stadium, home_team, away_team, match_played, home_team_score, away_team_score)
		VALUES (` + strings.Join(ph, ", ") + `)`
}
