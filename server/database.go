package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"cursor-arcade/credits"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// RunRow represents a finished run
type RunRow struct {
	ID        int64
	GuestID   string
	Mode      string
	Score     int
	Wave      int
	Won       bool
	Duration  float64 // seconds
	CreatedAt time.Time
}

// LeaderboardEntry is one row of the public leaderboard
type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Guest string `json:"guest"`
	Mode  string `json:"mode"`
	Score int    `json:"score"`
	Wave  int    `json:"wave"`
	Won   bool   `json:"won"`
}

// OpenDB opens (or creates) the SQLite database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS guests (
		id TEXT PRIMARY KEY,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		last_seen DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS guest_kv (
		guest_id TEXT NOT NULL REFERENCES guests(id),
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (guest_id, key)
	);

	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guest_id TEXT NOT NULL REFERENCES guests(id),
		mode TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		wave INTEGER NOT NULL DEFAULT 0,
		won INTEGER NOT NULL DEFAULT 0,
		duration REAL NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS analytics_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		guest_id TEXT,
		session_id TEXT,
		data TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(mode, score DESC);
	CREATE INDEX IF NOT EXISTS idx_analytics_type ON analytics_events(event_type, created_at);
	`
	_, err := db.conn.Exec(schema)
	if err != nil {
		log.Printf("DB migration error: %v", err)
	}
	return err
}

// GetSetting returns a server-wide setting, or "" if unset
func (db *DB) GetSetting(key string) string {
	var value string
	err := db.conn.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("DB get setting %s: %v", key, err)
		}
		return ""
	}
	return value
}

// SetSetting upserts a server-wide setting
func (db *DB) SetSetting(key, value string) error {
	_, err := db.conn.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// TouchGuest records a guest the first time it is seen and bumps last_seen
func (db *DB) TouchGuest(id string) error {
	_, err := db.conn.Exec(`
		INSERT INTO guests (id) VALUES (?)
		ON CONFLICT(id) DO UPDATE SET last_seen = CURRENT_TIMESTAMP
	`, id)
	return err
}

// GuestCount returns the number of known guests
func (db *DB) GuestCount() (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM guests`).Scan(&n)
	return n, err
}

// GuestStore returns the key-value store scoped to one guest. It backs the
// guest's credit balance.
func (db *DB) GuestStore(guestID string) *GuestKV {
	return &GuestKV{db: db, guestID: guestID}
}

// GuestKV implements credits.KV on the guest_kv table
type GuestKV struct {
	db      *DB
	guestID string
}

var (
	_ credits.KV          = (*GuestKV)(nil)
	_ credits.Incrementer = (*GuestKV)(nil)
)

// Get implements credits.KV
func (kv *GuestKV) Get(key string) (string, bool, error) {
	var value string
	err := kv.db.conn.QueryRow(`SELECT value FROM guest_kv WHERE guest_id = ? AND key = ?`,
		kv.guestID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s for guest %s: %w", key, kv.guestID, err)
	}
	return value, true, nil
}

// Set implements credits.KV
func (kv *GuestKV) Set(key, value string) error {
	_, err := kv.db.conn.Exec(`
		INSERT INTO guest_kv (guest_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT(guest_id, key) DO UPDATE SET value = excluded.value
	`, kv.guestID, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s for guest %s: %w", key, kv.guestID, err)
	}
	return nil
}

// Incr implements credits.Incrementer. The addition runs inside SQLite, so
// two sessions of the same guest cannot overwrite each other.
func (kv *GuestKV) Incr(key string, delta int) (int, error) {
	var raw string
	err := kv.db.conn.QueryRow(`
		INSERT INTO guest_kv (guest_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT(guest_id, key) DO UPDATE SET value = CAST(
			CASE WHEN value GLOB '[0-9]*' AND NOT value GLOB '*[^0-9]*'
				THEN CAST(value AS INTEGER) ELSE 0 END + ? AS TEXT)
		RETURNING value
	`, kv.guestID, key, strconv.Itoa(delta), delta).Scan(&raw)
	if err != nil {
		return 0, fmt.Errorf("failed to add to %s for guest %s: %w", key, kv.guestID, err)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("stored %s for guest %s is not an integer: %q", key, kv.guestID, raw)
	}
	return n, nil
}

// RecordRun stores a finished run and returns its ID
func (db *DB) RecordRun(r RunRow) (int64, error) {
	won := 0
	if r.Won {
		won = 1
	}
	res, err := db.conn.Exec(`
		INSERT INTO runs (guest_id, mode, score, wave, won, duration) VALUES (?, ?, ?, ?, ?, ?)
	`, r.GuestID, r.Mode, r.Score, r.Wave, won, r.Duration)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetLeaderboard returns the best runs for a mode, highest score first
func (db *DB) GetLeaderboard(mode string, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT guest_id, mode, score, wave, won FROM runs
		WHERE mode = ?
		ORDER BY score DESC, created_at ASC
		LIMIT ?
	`, mode, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		var won int
		if err := rows.Scan(&e.Guest, &e.Mode, &e.Score, &e.Wave, &won); err != nil {
			return nil, err
		}
		e.Won = won != 0
		e.Guest = shortGuest(e.Guest)
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// shortGuest hides most of a guest ID on public pages
func shortGuest(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return "Guest_" + id
}
