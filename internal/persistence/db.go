// Package persistence provides SQLite-based storage for per-year,
// per-community simulation statistics.
package persistence

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection for year-stats persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path and runs
// migrations.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("persistence: open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("persistence: migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS year_stats (
		community_id TEXT NOT NULL,
		year INTEGER NOT NULL,
		population INTEGER NOT NULL,
		births INTEGER NOT NULL,
		deaths INTEGER NOT NULL,
		marriages INTEGER NOT NULL,
		moves INTEGER NOT NULL,
		occupied_houses INTEGER NOT NULL,
		housing_capacity INTEGER NOT NULL,
		PRIMARY KEY (community_id, year)
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// YearStats is one community's statistics row for a single simulation year.
type YearStats struct {
	CommunityID     string `db:"community_id"`
	Year            int    `db:"year"`
	Population      int    `db:"population"`
	Births          int    `db:"births"`
	Deaths          int    `db:"deaths"`
	Marriages       int    `db:"marriages"`
	Moves           int    `db:"moves"`
	OccupiedHouses  int    `db:"occupied_houses"`
	HousingCapacity int    `db:"housing_capacity"`
}

// SaveYearStats records one community's statistics for the year just
// advanced.
func (db *DB) SaveYearStats(row YearStats) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO year_stats
		(community_id, year, population, births, deaths, marriages, moves,
		 occupied_houses, housing_capacity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.CommunityID, row.Year, row.Population, row.Births, row.Deaths,
		row.Marriages, row.Moves, row.OccupiedHouses, row.HousingCapacity,
	)
	return err
}

// LoadYearStats returns every recorded year for communityID, ordered by
// year ascending, satisfying the round-trip law: every row previously
// saved for that community comes back unchanged.
func (db *DB) LoadYearStats(communityID string) ([]YearStats, error) {
	var rows []YearStats
	err := db.conn.Select(&rows,
		`SELECT community_id, year, population, births, deaths, marriages,
		 moves, occupied_houses, housing_capacity
		 FROM year_stats WHERE community_id = ?
		 ORDER BY year ASC`,
		communityID,
	)
	return rows, err
}
