package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// CatalogFile is the catalog database name inside the store directory.
const CatalogFile = "catalog.db"

const catalogSchema = `CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	a          REAL NOT NULL,
	e          REAL NOT NULL,
	period     REAL NOT NULL,
	steps      INTEGER NOT NULL,
	timing     TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	metrics    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_body_created ON runs (body, created_at);`

// Catalog indexes run metadata in SQLite so listings do not have to walk
// every run directory.
type Catalog struct {
	sqlDB *sql.DB
}

// created_at holds Unix nanoseconds; runs saved in the same millisecond
// must still list in order.
func toNanos(value time.Time) int64 {
	return value.UTC().UnixNano()
}

func fromNanos(value int64) time.Time {
	return time.Unix(0, value).UTC()
}

// OpenCatalog opens (creating if needed) the catalog at path. ":memory:"
// opens a private in-memory catalog.
func OpenCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one connection keeps ":memory:" databases shared across queries
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(catalogSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create catalog schema: %w", err)
	}
	return &Catalog{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (c *Catalog) Close() error {
	if c == nil || c.sqlDB == nil {
		return nil
	}
	return c.sqlDB.Close()
}

// Record inserts or replaces one run.
func (c *Catalog) Record(ctx context.Context, meta RunMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(meta.ID) == "" {
		return fmt.Errorf("run id is required")
	}
	metrics, err := json.Marshal(meta.Metrics)
	if err != nil {
		return fmt.Errorf("encode metrics: %w", err)
	}

	_, err = c.sqlDB.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO runs (
		   id, body, a, e, period, steps, timing, created_at, metrics
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.ID,
		meta.Body,
		meta.A,
		meta.E,
		meta.Period,
		meta.Steps,
		meta.Timing,
		toNanos(meta.Timestamp),
		string(metrics),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// List returns runs in creation order, optionally restricted to one body.
func (c *Catalog) List(ctx context.Context, body string) ([]RunMetadata, error) {
	query := `SELECT id, body, a, e, period, steps, timing, created_at, metrics FROM runs`
	args := []any{}
	if body != "" {
		query += ` WHERE body = ?`
		args = append(args, body)
	}
	query += ` ORDER BY created_at, id`

	rows, err := c.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]RunMetadata, 0)
	for rows.Next() {
		var (
			meta      RunMetadata
			createdAt int64
			metrics   string
		)
		if err := rows.Scan(&meta.ID, &meta.Body, &meta.A, &meta.E, &meta.Period, &meta.Steps, &meta.Timing, &createdAt, &metrics); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		meta.Timestamp = fromNanos(createdAt)
		if err := json.Unmarshal([]byte(metrics), &meta.Metrics); err != nil {
			return nil, fmt.Errorf("decode metrics of %s: %w", meta.ID, err)
		}
		runs = append(runs, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Count returns the number of indexed runs.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

// Rebuild replaces the catalog contents with runs in one transaction.
func (c *Catalog) Rebuild(ctx context.Context, runs []RunMetadata) error {
	tx, err := c.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}

	for _, meta := range runs {
		metrics, err := json.Marshal(meta.Metrics)
		if err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO runs (id, body, a, e, period, steps, timing, created_at, metrics)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			meta.ID, meta.Body, meta.A, meta.E, meta.Period, meta.Steps, meta.Timing,
			toNanos(meta.Timestamp), string(metrics),
		); err != nil {
			return fmt.Errorf("insert %s: %w", meta.ID, err)
		}
	}
	return tx.Commit()
}

// Stamps returns the creation time, in Unix nanoseconds, of every indexed
// run keyed by ID.
func (c *Catalog) Stamps(ctx context.Context) (map[string]int64, error) {
	rows, err := c.sqlDB.QueryContext(ctx, `SELECT id, created_at FROM runs`)
	if err != nil {
		return nil, fmt.Errorf("list run ids: %w", err)
	}
	defer rows.Close()

	stamps := make(map[string]int64)
	for rows.Next() {
		var id string
		var created int64
		if err := rows.Scan(&id, &created); err != nil {
			return nil, fmt.Errorf("scan run id: %w", err)
		}
		stamps[id] = created
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run ids: %w", err)
	}
	return stamps, nil
}

// Sync rebuilds the catalog from the store's run directories unless both
// hold exactly the same runs with the same creation times.
func Sync(ctx context.Context, st *Store, c *Catalog) error {
	runs, err := st.List()
	if err != nil {
		return err
	}
	stamps, err := c.Stamps(ctx)
	if err != nil {
		return err
	}
	if inSync(runs, stamps) {
		return nil
	}
	return c.Rebuild(ctx, runs)
}

func inSync(runs []RunMetadata, stamps map[string]int64) bool {
	if len(runs) != len(stamps) {
		return false
	}
	for _, r := range runs {
		created, ok := stamps[r.ID]
		if !ok || created != toNanos(r.Timestamp) {
			return false
		}
	}
	return true
}
