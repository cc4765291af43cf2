// Package device is the durable on-device storage for the client: the
// session token, the chatbot conversation history, and the offline mirror of
// tracked applications. Backed by a single SQLite file.
package device

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// tokenKey is the single credential slot; the token is opaque to the client.
const tokenKey = "session_token"

// Store wraps the device database. Open one per process; construct a fresh
// one per test with a temp path.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the conventional device DB location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobportal/device.db"
	}
	return filepath.Join(home, ".jobportal", "device.db")
}

// Open opens (or creates) the device database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("device: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("device: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("device: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS credentials (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL,
			sender     TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tracked_jobs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id     TEXT,
			title      TEXT NOT NULL,
			company    TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'applied',
			notes      TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- credentials ---

// Token returns the persisted session token, empty when absent.
func (s *Store) Token() (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM credentials WHERE key = ?`, tokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("device: read token: %w", err)
	}
	return value, nil
}

// SaveToken persists the session token, replacing any previous one.
func (s *Store) SaveToken(token string) error {
	_, err := s.db.Exec(
		`INSERT INTO credentials (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		tokenKey, token,
	)
	if err != nil {
		return fmt.Errorf("device: save token: %w", err)
	}
	return nil
}

// DeleteToken removes the persisted session token.
func (s *Store) DeleteToken() error {
	if _, err := s.db.Exec(`DELETE FROM credentials WHERE key = ?`, tokenKey); err != nil {
		return fmt.Errorf("device: delete token: %w", err)
	}
	return nil
}

// --- chat history ---

// ChatMessage is one persisted conversation entry.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"` // "user" or "bot"
	Timestamp time.Time `json:"timestamp"`
}

// AppendChatMessage stores msg and trims the history to limit entries,
// dropping oldest first.
func (s *Store) AppendChatMessage(msg ChatMessage, limit int) error {
	_, err := s.db.Exec(
		`INSERT INTO chat_messages (id, content, sender, created_at) VALUES (?, ?, ?, ?)`,
		msg.ID, msg.Content, msg.Sender, msg.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("device: append chat: %w", err)
	}

	if limit > 0 {
		_, err = s.db.Exec(
			`DELETE FROM chat_messages WHERE id NOT IN (
				SELECT id FROM chat_messages ORDER BY created_at DESC, rowid DESC LIMIT ?
			)`, limit,
		)
		if err != nil {
			return fmt.Errorf("device: trim chat: %w", err)
		}
	}
	return nil
}

// ChatHistory returns the stored conversation, oldest first.
func (s *Store) ChatHistory() ([]ChatMessage, error) {
	rows, err := s.db.Query(
		`SELECT id, content, sender, created_at FROM chat_messages ORDER BY created_at ASC, rowid ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("device: chat history: %w", err)
	}
	defer rows.Close()

	var msgs []ChatMessage
	for rows.Next() {
		var m ChatMessage
		var ts string
		if err := rows.Scan(&m.ID, &m.Content, &m.Sender, &ts); err != nil {
			continue
		}
		m.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// ClearChat deletes the whole conversation.
func (s *Store) ClearChat() error {
	if _, err := s.db.Exec(`DELETE FROM chat_messages`); err != nil {
		return fmt.Errorf("device: clear chat: %w", err)
	}
	return nil
}

// --- tracked jobs (offline mirror) ---

// TrackedJob is a locally tracked application, shown when the backend is
// unreachable.
type TrackedJob struct {
	ID        int64  `json:"id"`
	JobID     string `json:"job_id,omitempty"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TrackJob records an application locally. Called after a successful apply.
func (s *Store) TrackJob(jobID, title, company, status string) (int64, error) {
	if title == "" || company == "" {
		return 0, fmt.Errorf("device: track job: title and company are required")
	}
	if status == "" {
		status = "applied"
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO tracked_jobs (job_id, title, company, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, '', ?, ?)`,
		jobID, title, company, status, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("device: track job: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// TrackedJobs lists locally tracked applications, most recently updated first.
func (s *Store) TrackedJobs(limit int) ([]TrackedJob, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, job_id, title, company, status, notes, created_at, updated_at
		 FROM tracked_jobs ORDER BY updated_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("device: tracked jobs: %w", err)
	}
	defer rows.Close()

	var jobs []TrackedJob
	for rows.Next() {
		var j TrackedJob
		var jobID, notes sql.NullString
		if err := rows.Scan(&j.ID, &jobID, &j.Title, &j.Company, &j.Status, &notes, &j.CreatedAt, &j.UpdatedAt); err != nil {
			continue
		}
		j.JobID = jobID.String
		j.Notes = notes.String
		jobs = append(jobs, j)
	}
	if jobs == nil {
		jobs = []TrackedJob{}
	}
	return jobs, rows.Err()
}

// UpdateTrackedJob updates the status and/or notes of a local record.
func (s *Store) UpdateTrackedJob(id int64, status, notes string) error {
	if id <= 0 {
		return fmt.Errorf("device: update tracked job: id is required")
	}
	if status == "" && notes == "" {
		return fmt.Errorf("device: update tracked job: nothing to update")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var err error
	switch {
	case status != "" && notes != "":
		_, err = s.db.Exec(`UPDATE tracked_jobs SET status=?, notes=?, updated_at=? WHERE id=?`, status, notes, now, id)
	case status != "":
		_, err = s.db.Exec(`UPDATE tracked_jobs SET status=?, updated_at=? WHERE id=?`, status, now, id)
	default:
		_, err = s.db.Exec(`UPDATE tracked_jobs SET notes=?, updated_at=? WHERE id=?`, notes, now, id)
	}
	if err != nil {
		return fmt.Errorf("device: update tracked job: %w", err)
	}
	return nil
}
