package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// PgPool is the subset of pgxpool.Pool the catalog needs; tests substitute a
// mock.
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Catalog manages the editable name lists (players, maps, weapons) backing
// the submission form dropdowns. These live in Postgres rather than
// ClickHouse because they are tiny, mutable and relational.
type Catalog struct {
	pg     PgPool
	logger *zap.SugaredLogger
}

func NewCatalog(pg PgPool, logger *zap.SugaredLogger) *Catalog {
	return &Catalog{pg: pg, logger: logger}
}

var catalogTables = map[string]string{
	"players": "catalog_players",
	"maps":    "catalog_maps",
	"weapons": "catalog_weapons",
}

// InstallSchema creates the catalog tables if absent.
func (c *Catalog) InstallSchema(ctx context.Context) error {
	for _, table := range catalogTables {
		ddl := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				name       TEXT PRIMARY KEY,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, table)
		if _, err := c.pg.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create %s: %w", table, err)
		}
	}
	return nil
}

// List returns the sorted names of one catalog kind. Unknown kinds are an
// error; an empty catalog is an empty slice.
func (c *Catalog) List(ctx context.Context, kind string) ([]string, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown catalog kind %q", kind)
	}
	rows, err := c.pg.Query(ctx, fmt.Sprintf("SELECT name FROM %s", table))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	sort.Strings(out)
	return out, nil
}

// Add inserts a name into a catalog. Re-adding an existing name is a no-op,
// not an error.
func (c *Catalog) Add(ctx context.Context, kind, name string) error {
	table, ok := catalogTables[kind]
	if !ok {
		return fmt.Errorf("unknown catalog kind %q", kind)
	}
	if name == "" {
		return fmt.Errorf("empty catalog name")
	}
	sql := fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", table)
	if _, err := c.pg.Exec(ctx, sql, name); err != nil {
		return fmt.Errorf("add to %s: %w", kind, err)
	}
	return nil
}

// Remove deletes a name from a catalog. Removing an absent name is a no-op.
func (c *Catalog) Remove(ctx context.Context, kind, name string) error {
	table, ok := catalogTables[kind]
	if !ok {
		return fmt.Errorf("unknown catalog kind %q", kind)
	}
	sql := fmt.Sprintf("DELETE FROM %s WHERE name = $1", table)
	if _, err := c.pg.Exec(ctx, sql, name); err != nil {
		return fmt.Errorf("remove from %s: %w", kind, err)
	}
	return nil
}

// RecordSubmission upserts the names seen in an accepted match so the
// dropdown catalogs stay in sync with the data without manual curation.
func (c *Catalog) RecordSubmission(ctx context.Context, players, maps, weapons []string) {
	for _, p := range players {
		if err := c.Add(ctx, "players", p); err != nil {
			c.logger.Warnw("catalog player upsert failed", "name", p, "error", err)
		}
	}
	for _, m := range maps {
		if err := c.Add(ctx, "maps", m); err != nil {
			c.logger.Warnw("catalog map upsert failed", "name", m, "error", err)
		}
	}
	for _, w := range weapons {
		if err := c.Add(ctx, "weapons", w); err != nil {
			c.logger.Warnw("catalog weapon upsert failed", "name", w, "error", err)
		}
	}
}
