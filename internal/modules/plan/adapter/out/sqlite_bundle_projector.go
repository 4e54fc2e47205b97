package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fitfusion/internal/modules/plan/domain"
	planout "fitfusion/internal/modules/plan/port/out"
	"fitfusion/internal/platform/clock"

	_ "modernc.org/sqlite"
)

// SQLiteBundleProjector keeps the last fetched plan bundles in a local
// database so listings render without the backend. Rows carry the time
// they were mirrored; the freshest copy wins the listing order.
type SQLiteBundleProjector struct {
	db  *sql.DB
	clk clock.Clock
}

func NewSQLiteBundleProjector(dbPath string, clk clock.Clock) (*SQLiteBundleProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteBundleProjector{db: db, clk: clk}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteBundleProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS plan_bundles (
  id INTEGER PRIMARY KEY,
  user_id INTEGER NOT NULL,
  status TEXT NOT NULL,
  start_date TEXT,
  created_at TEXT,
  fetched_at TEXT NOT NULL DEFAULT '',
  payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_plan_bundles_user ON plan_bundles(user_id);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create plan_bundles table: %w", err)
	}
	return nil
}

func (s *SQLiteBundleProjector) Upsert(ctx context.Context, bundle domain.Bundle) error {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}
	const stmt = `
INSERT INTO plan_bundles (id, user_id, status, start_date, created_at, fetched_at, payload)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  user_id=excluded.user_id,
  status=excluded.status,
  start_date=excluded.start_date,
  created_at=excluded.created_at,
  fetched_at=excluded.fetched_at,
  payload=excluded.payload;
`
	_, err = s.db.ExecContext(ctx, stmt,
		bundle.ID,
		bundle.UserID,
		string(bundle.Status),
		bundle.StartDate,
		bundle.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		s.clk.Now().Format("2006-01-02T15:04:05Z07:00"),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("upsert bundle: %w", err)
	}
	return nil
}

func (s *SQLiteBundleProjector) ListByUser(ctx context.Context, userID int64) ([]domain.Bundle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM plan_bundles WHERE user_id = ? ORDER BY fetched_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query bundles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	bundles := []domain.Bundle{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan bundle: %w", err)
		}
		bundle := domain.Bundle{}
		if err := json.Unmarshal([]byte(payload), &bundle); err != nil {
			return nil, fmt.Errorf("decode cached bundle: %w", err)
		}
		bundles = append(bundles, bundle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bundles: %w", err)
	}
	return bundles, nil
}

func (s *SQLiteBundleProjector) Close() error {
	return s.db.Close()
}

var _ planout.BundleProjector = (*SQLiteBundleProjector)(nil)
