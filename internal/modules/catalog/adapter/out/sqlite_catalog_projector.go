package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fitfusion/internal/modules/catalog/domain"
	catalogout "fitfusion/internal/modules/catalog/port/out"
	apperrors "fitfusion/internal/platform/errors"
	"fitfusion/internal/platform/slug"

	_ "modernc.org/sqlite"
)

// SQLiteCatalogProjector caches exercises and foods locally. Rows carry the
// full JSON payload; the indexed columns exist only for lookups.
type SQLiteCatalogProjector struct {
	db *sql.DB
}

func NewSQLiteCatalogProjector(dbPath string) (*SQLiteCatalogProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteCatalogProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteCatalogProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS exercises (
  id INTEGER PRIMARY KEY,
  slug TEXT NOT NULL,
  muscle_group TEXT,
  payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exercises_slug ON exercises(slug);
CREATE TABLE IF NOT EXISTS foods (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  payload TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create catalog tables: %w", err)
	}
	return nil
}

func (s *SQLiteCatalogProjector) UpsertExercises(ctx context.Context, exercises []domain.Exercise) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const stmt = `
INSERT INTO exercises (id, slug, muscle_group, payload)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  slug=excluded.slug,
  muscle_group=excluded.muscle_group,
  payload=excluded.payload;
`
	for _, exercise := range exercises {
		payload, err := json.Marshal(exercise)
		if err != nil {
			return fmt.Errorf("marshal exercise: %w", err)
		}
		if _, err := tx.ExecContext(ctx, stmt,
			exercise.ID, slug.Make(exercise.Name), exercise.MuscleGroup, string(payload)); err != nil {
			return fmt.Errorf("upsert exercise %d: %w", exercise.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteCatalogProjector) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM exercises ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer func() { _ = rows.Close() }()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercise := domain.Exercise{}
		if err := json.Unmarshal([]byte(payload), &exercise); err != nil {
			return nil, fmt.Errorf("decode cached exercise: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	return exercises, rows.Err()
}

func (s *SQLiteCatalogProjector) ExerciseBySlug(ctx context.Context, key string) (domain.Exercise, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM exercises WHERE slug = ? LIMIT 1`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return domain.Exercise{}, fmt.Errorf("%w: exercise %q", apperrors.ErrNotFound, key)
	}
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("query exercise: %w", err)
	}
	exercise := domain.Exercise{}
	if err := json.Unmarshal([]byte(payload), &exercise); err != nil {
		return domain.Exercise{}, fmt.Errorf("decode cached exercise: %w", err)
	}
	return exercise, nil
}

func (s *SQLiteCatalogProjector) UpsertFoods(ctx context.Context, foods []domain.Food) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const stmt = `
INSERT INTO foods (id, name, payload)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  payload=excluded.payload;
`
	for _, food := range foods {
		payload, err := json.Marshal(food)
		if err != nil {
			return fmt.Errorf("marshal food: %w", err)
		}
		if _, err := tx.ExecContext(ctx, stmt, food.ID, food.Name, string(payload)); err != nil {
			return fmt.Errorf("upsert food %d: %w", food.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteCatalogProjector) ListFoods(ctx context.Context) ([]domain.Food, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM foods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer func() { _ = rows.Close() }()

	foods := []domain.Food{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		food := domain.Food{}
		if err := json.Unmarshal([]byte(payload), &food); err != nil {
			return nil, fmt.Errorf("decode cached food: %w", err)
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

func (s *SQLiteCatalogProjector) Close() error {
	return s.db.Close()
}

var _ catalogout.CatalogProjector = (*SQLiteCatalogProjector)(nil)
