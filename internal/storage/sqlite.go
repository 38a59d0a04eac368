// Package storage persists duel results in SQLite. It uses the pure-Go
// modernc.org/sqlite driver, so no CGO toolchain is needed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// GameID is the key duel rows are stored under in the scores table.
const GameID = "duel"

// Winner values stored in duel_matches.
const (
	WinnerPlayer = "player"
	WinnerBot    = "bot"
	WinnerNone   = "none" // quit before either side reached the win score
)

// sqliteTime is the layout CURRENT_TIMESTAMP produces.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one high score row.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// MatchResult is one finished (or abandoned) duel.
type MatchResult struct {
	ID          int64
	PlayerScore int
	BotScore    int
	Winner      string
	Frames      int
	Duration    time.Duration
	CreatedAt   time.Time
}

// MatchStats aggregates duel_matches.
type MatchStats struct {
	Matches     int
	PlayerWins  int
	BotWins     int
	Unfinished  int
	BestScore   int
	TotalFrames int64
	LastPlayed  time.Time
}

// WinRate is the fraction of decided matches the player won.
func (s MatchStats) WinRate() float64 {
	decided := s.PlayerWins + s.BotWins
	if decided == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(decided)
}

// Open creates or opens a SQLite database at dbPath, creating parent
// directories and running migrations. A leading ~ is expanded.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS duel_matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_score INTEGER NOT NULL DEFAULT 0,
			bot_score INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_duel_matches_winner ON duel_matches(winner);
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

// TopScores returns the best limit scores for gameID, highest first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for gameID, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for gameID and the duel match history.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if gameID != GameID {
		return nil
	}
	if _, err := s.db.Exec("DELETE FROM duel_matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// SaveMatch records m. The player's score also goes into the scores table
// so TopScores covers duels.
func (s *Store) SaveMatch(m MatchResult) (int64, error) {
	switch m.Winner {
	case WinnerPlayer, WinnerBot, WinnerNone:
	default:
		return 0, fmt.Errorf("storage: invalid winner %q", m.Winner)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO duel_matches (player_score, bot_score, winner, frames, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		m.PlayerScore, m.BotScore, m.Winner, m.Frames, m.Duration.Seconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		GameID, m.PlayerScore,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit match: %w", err)
	}
	return id, nil
}

// RecentMatches returns the latest limit matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player_score, bot_score, winner, frames, duration_secs, created_at
		 FROM duel_matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var m MatchResult
		var secs float64
		var createdAt any
		if err := rows.Scan(&m.ID, &m.PlayerScore, &m.BotScore, &m.Winner, &m.Frames, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.Duration = time.Duration(secs * float64(time.Second))
		m.CreatedAt = parseTime(createdAt)
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// MatchStats aggregates every stored match.
func (s *Store) MatchStats() (*MatchStats, error) {
	stats := &MatchStats{}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = ?), 0),
		        COALESCE(SUM(winner = ?), 0),
		        COALESCE(SUM(winner = ?), 0),
		        COALESCE(MAX(player_score), 0),
		        COALESCE(SUM(frames), 0)
		 FROM duel_matches`,
		WinnerPlayer, WinnerBot, WinnerNone,
	).Scan(&stats.Matches, &stats.PlayerWins, &stats.BotWins, &stats.Unfinished, &stats.BestScore, &stats.TotalFrames)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM duel_matches ORDER BY id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}
	return stats, nil
}

// parseTime handles both driver-decoded times and raw timestamp text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
