package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the sqlite database holding load history and the search
// audit log. The datasets themselves are never persisted here, only
// operational bookkeeping.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	loadTable := `
	CREATE TABLE IF NOT EXISTS load_events (
		id TEXT PRIMARY KEY,
		dataset TEXT,
		file_count INTEGER,
		record_count INTEGER,
		status TEXT,
		error_message TEXT,
		duration_ms INTEGER,
		created_at DATETIME
	);
	`
	auditTable := `
	CREATE TABLE IF NOT EXISTS audit_log (
		id TEXT PRIMARY KEY,
		action TEXT,
		detail TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(loadTable); err != nil {
		return err
	}
	if _, err := db.Exec(auditTable); err != nil {
		return err
	}

	return nil
}

// Close closes the database handle.
func Close() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveLoadEvent records one dataset load cycle, successful or failed.
func SaveLoadEvent(dataset string, fileCount, recordCount int, duration time.Duration, loadErr error) error {
	if db == nil {
		return nil
	}

	status := "ok"
	message := ""
	if loadErr != nil {
		status = "failed"
		message = loadErr.Error()
	}

	_, err := db.Exec(`INSERT INTO load_events (id, dataset, file_count, record_count, status, error_message, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), dataset, fileCount, recordCount, status, message,
		duration.Milliseconds(), time.Now().UTC())
	return err
}

// SaveAudit records one user-facing action (search, summary, export).
func SaveAudit(action, detail string) error {
	if db == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO audit_log (id, action, detail, created_at) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), action, detail, time.Now().UTC())
	return err
}

// ListLoadEvents returns the most recent dataset load cycles.
func ListLoadEvents(limit int) ([]map[string]interface{}, error) {
	if db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`SELECT id, dataset, file_count, record_count, status, error_message, duration_ms, created_at
		FROM load_events ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []map[string]interface{}
	for rows.Next() {
		var id, dataset, status, message string
		var fileCount, recordCount int
		var durationMS int64
		var createdAt time.Time
		if err := rows.Scan(&id, &dataset, &fileCount, &recordCount, &status, &message, &durationMS, &createdAt); err != nil {
			return nil, err
		}
		events = append(events, map[string]interface{}{
			"id":          id,
			"dataset":     dataset,
			"fileCount":   fileCount,
			"recordCount": recordCount,
			"status":      status,
			"error":       message,
			"durationMs":  durationMS,
			"createdAt":   createdAt,
		})
	}
	return events, rows.Err()
}

// ListAudit returns the most recent audit entries.
func ListAudit(limit int) ([]map[string]interface{}, error) {
	if db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`SELECT id, action, detail, created_at FROM audit_log ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []map[string]interface{}
	for rows.Next() {
		var id, action, detail string
		var createdAt time.Time
		if err := rows.Scan(&id, &action, &detail, &createdAt); err != nil {
			return nil, err
		}
		entries = append(entries, map[string]interface{}{
			"id":        id,
			"action":    action,
			"detail":    detail,
			"createdAt": createdAt,
		})
	}
	return entries, rows.Err()
}
