package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"homedash/internal/modules/review/domain"
	reviewout "homedash/internal/modules/review/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteHistory struct {
	db *sql.DB
}

func NewSQLiteHistory(dbPath string) (*SQLiteHistory, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	history := &SQLiteHistory{db: db}
	if err := history.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return history, nil
}

var _ reviewout.HistoryProjector = (*SQLiteHistory)(nil)

func (s *SQLiteHistory) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS review_days (
  day TEXT PRIMARY KEY,
  count INTEGER NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create review_days table: %w", err)
	}
	return nil
}

func (s *SQLiteHistory) Record(ctx context.Context, day time.Time, count int) error {
	const stmt = `
INSERT INTO review_days (day, count, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(day) DO UPDATE SET
  count=excluded.count,
  updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		day.Format(domain.DayLayout),
		count,
		day.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert review day: %w", err)
	}
	return nil
}

func (s *SQLiteHistory) Recent(ctx context.Context, limit int) ([]domain.DayCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day, count FROM review_days ORDER BY day DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query review days: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DayCount, 0, limit)
	for rows.Next() {
		var raw string
		var count int
		if err := rows.Scan(&raw, &count); err != nil {
			return nil, fmt.Errorf("scan review day: %w", err)
		}
		day, err := time.Parse(domain.DayLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("parse review day %q: %w", raw, err)
		}
		out = append(out, domain.DayCount{Day: day, Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review days: %w", err)
	}
	return out, nil
}

func (s *SQLiteHistory) Close() error {
	return s.db.Close()
}
