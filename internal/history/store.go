package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"subgrid/internal/fileutil"
)

// Record describes one completed conversion run.
type Record struct {
	ID             string
	CreatedAt      time.Time
	SRTPath        string
	MediaPath      string
	TextGridPath   string
	CSVPath        string
	MediaDuration  float64
	Diarize        bool
	ConvertNumbers bool
	SpeakerCount   int
	IntervalCount  int
	ChangeCount    int
}

// Store manages conversion history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS conversions (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    srt_path TEXT NOT NULL,
    media_path TEXT NOT NULL,
    textgrid_path TEXT NOT NULL,
    csv_path TEXT NOT NULL DEFAULT '',
    media_duration REAL NOT NULL,
    diarize INTEGER NOT NULL,
    convert_numbers INTEGER NOT NULL,
    speaker_count INTEGER NOT NULL,
    interval_count INTEGER NOT NULL,
    change_count INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversions_created_at ON conversions (created_at);
`

// Open initializes or connects to the history database and applies the schema.
func Open(path string) (*Store, error) {
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add inserts a conversion record, assigning an ID and timestamp when unset,
// and returns the stored record.
func (s *Store) Add(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO conversions (
            id, created_at, srt_path, media_path, textgrid_path, csv_path,
            media_duration, diarize, convert_numbers,
            speaker_count, interval_count, change_count
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.SRTPath,
		rec.MediaPath,
		rec.TextGridPath,
		rec.CSVPath,
		rec.MediaDuration,
		boolToInt(rec.Diarize),
		boolToInt(rec.ConvertNumbers),
		rec.SpeakerCount,
		rec.IntervalCount,
		rec.ChangeCount,
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert conversion: %w", err)
	}
	return rec, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, created_at, srt_path, media_path, textgrid_path, csv_path,
            media_duration, diarize, convert_numbers,
            speaker_count, interval_count, change_count
        FROM conversions ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt string
		var diarize, convertNumbers int
		if err := rows.Scan(
			&rec.ID,
			&createdAt,
			&rec.SRTPath,
			&rec.MediaPath,
			&rec.TextGridPath,
			&rec.CSVPath,
			&rec.MediaDuration,
			&diarize,
			&convertNumbers,
			&rec.SpeakerCount,
			&rec.IntervalCount,
			&rec.ChangeCount,
		); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			rec.CreatedAt = parsed
		}
		rec.Diarize = diarize != 0
		rec.ConvertNumbers = convertNumbers != 0
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
