// Package storage provides the SQLite results ledger for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only final standings are stored; game state is never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/robot-arena/internal/match"
)

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// MatchRecord is one stored match.
type MatchRecord struct {
	ID         int64
	MatchID    string
	Seed       int64
	Width      int
	Height     int
	Ticks      int
	Winner     string // Robot id, empty for a draw
	WinnerBot  string
	EndReason  match.EndReason
	Duration   time.Duration
	CreatedAt  time.Time
	Standings  []match.Standing // Loaded by MatchByID only
	RobotCount int
}

// BotStats contains aggregated results for one bot.
type BotStats struct {
	Bot        string
	Entries    int
	Wins       int
	AvgPlace   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SSH sessions and batch runs save concurrently; SQLite takes one writer.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			winner TEXT,
			winner_bot TEXT,
			end_reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS standings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL REFERENCES matches(match_id) ON DELETE CASCADE,
			robot_id TEXT NOT NULL,
			bot TEXT NOT NULL,
			place INTEGER NOT NULL,
			hit_points INTEGER NOT NULL,
			eliminated_at INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_standings_match_id ON standings(match_id);
		CREATE INDEX IF NOT EXISTS idx_standings_bot ON standings(bot);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatchResult implements match.ResultSaver.
// The match row and its standings are written in one transaction.
func (s *Store) SaveMatchResult(r match.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO matches
		 (match_id, seed, width, height, ticks, winner, winner_bot, end_reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Seed,
		r.Width,
		r.Height,
		r.Ticks,
		nullString(r.Winner),
		nullString(r.WinnerBot()),
		r.Reason.String(),
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save match: %w", err)
	}

	for _, st := range r.Standings {
		_, err := tx.Exec(
			`INSERT INTO standings (match_id, robot_id, bot, place, hit_points, eliminated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, st.RobotID, st.Bot, st.Place, st.HitPoints, st.EliminatedAt,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save standing for %s: %w", st.RobotID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit match: %w", err)
	}
	return nil
}

// Ensure Store implements ResultSaver
var _ match.ResultSaver = (*Store)(nil)

const matchColumns = `m.id, m.match_id, m.seed, m.width, m.height, m.ticks, m.winner, m.winner_bot,
	m.end_reason, m.duration_ms, m.created_at,
	(SELECT COUNT(*) FROM standings st WHERE st.match_id = m.match_id)`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var (
		rec        MatchRecord
		winner     sql.NullString
		winnerBot  sql.NullString
		reason     string
		durationMS int64
		createdAt  any
	)
	err := row.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.Seed,
		&rec.Width,
		&rec.Height,
		&rec.Ticks,
		&winner,
		&winnerBot,
		&reason,
		&durationMS,
		&createdAt,
		&rec.RobotCount,
	)
	if err != nil {
		return rec, err
	}

	rec.Winner = winner.String
	rec.WinnerBot = winnerBot.String
	rec.EndReason = match.ParseEndReason(reason)
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches m
		 ORDER BY m.created_at DESC, m.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ErrAmbiguousMatch is returned by MatchByID when a shortened id fits more
// than one stored match.
var ErrAmbiguousMatch = errors.New("storage: match id prefix is ambiguous")

// MatchByID retrieves a match and its standings by match ID, or by a prefix
// of it such as the short ids shown in listings. An exact id always wins.
// Returns nil if no match fits.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	if matchID == "" {
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches m
		 WHERE m.match_id = ? OR substr(m.match_id, 1, ?) = ?
		 ORDER BY m.match_id = ? DESC, m.id
		 LIMIT 2`,
		matchID, utf8.RuneCountInString(matchID), matchID, matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	var found []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		found = append(found, rec)
	}
	// Release the connection before the standings query.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch {
	case len(found) == 0:
		return nil, nil
	case len(found) > 1 && found[0].MatchID != matchID:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousMatch, matchID)
	}

	rec := found[0]
	if rec.Standings, err = s.standings(rec.MatchID); err != nil {
		return nil, err
	}
	return &rec, nil
}

// standings loads one match's standings, best place first.
func (s *Store) standings(matchID string) ([]match.Standing, error) {
	rows, err := s.db.Query(
		`SELECT robot_id, bot, place, hit_points, eliminated_at
		 FROM standings
		 WHERE match_id = ?
		 ORDER BY place, id`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var standings []match.Standing
	for rows.Next() {
		var st match.Standing
		if err := rows.Scan(&st.RobotID, &st.Bot, &st.Place, &st.HitPoints, &st.EliminatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan standing: %w", err)
		}
		standings = append(standings, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return standings, nil
}

// BotStats aggregates results per bot, most wins first.
func (s *Store) BotStats() ([]BotStats, error) {
	rows, err := s.db.Query(
		`SELECT st.bot,
		        COUNT(*),
		        SUM(CASE WHEN st.robot_id = m.winner THEN 1 ELSE 0 END),
		        AVG(st.place),
		        MAX(m.created_at)
		 FROM standings st
		 JOIN matches m ON m.match_id = st.match_id
		 GROUP BY st.bot
		 ORDER BY 3 DESC, 4 ASC, st.bot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get bot stats: %w", err)
	}
	defer rows.Close()

	var stats []BotStats
	for rows.Next() {
		var b BotStats
		var lastPlayed any
		if err := rows.Scan(&b.Bot, &b.Entries, &b.Wins, &b.AvgPlace, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		b.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// MatchCount returns the number of stored matches.
func (s *Store) MatchCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count matches: %w", err)
	}
	return n, nil
}

// ClearMatches deletes every stored match and standing.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM standings; DELETE FROM matches;"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
