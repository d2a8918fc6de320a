// Package audit keeps a local append-only record of every validation run.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/invoice-sentinel/internal/validation"
)

const schema = `
CREATE TABLE IF NOT EXISTS validation_audit (
	id          TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	pdf_path    TEXT NOT NULL,
	vendor      TEXT,
	overall     TEXT,
	result_json TEXT NOT NULL
);
`

// Entry is one persisted validation run.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	PDFPath   string    `json:"pdf_path"`
	Vendor    string    `json:"vendor"`
	Overall   string    `json:"overall"`
	Result    string    `json:"result"`
}

// Store writes validation results to a local sqlite database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init audit schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Record persists one finished result.
func (s *Store) Record(ctx context.Context, pdfPath string, res *validation.ValidationResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal audit result: %w", err)
	}

	vendor := ""
	if res.Vendor != nil {
		vendor = *res.Vendor
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO validation_audit (id, created_at, pdf_path, vendor, overall, result_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		time.Now().UTC().Format(time.RFC3339),
		pdfPath,
		vendor,
		res.Overall,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert audit row: %w", err)
	}
	s.logger.Debug("audit.record", "id", id, "path", pdfPath, "vendor", vendor)
	return nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, pdf_path, vendor, overall, result_json
		 FROM validation_audit ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit rows: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &created, &e.PDFPath, &e.Vendor, &e.Overall, &e.Result); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			e.CreatedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
