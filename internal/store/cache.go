// Package store persists resolved symbol registries in SQLite so repeat
// runs skip the discovery pass while the project is unchanged.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"uismith/internal/logging"
	"uismith/internal/symbol"
)

const schema = `
CREATE TABLE IF NOT EXISTS registry_cache (
	project_root TEXT PRIMARY KEY,
	records      TEXT NOT NULL,
	built_at     INTEGER NOT NULL,
	saved_at     INTEGER NOT NULL
);
`

// Cache stores serialized registries keyed by absolute project root. Each
// Load builds a fresh Registry instance; cached state never aliases a
// registry already handed out.
type Cache struct {
	db  *sql.DB
	mu  sync.Mutex
	ttl time.Duration
}

// Open initializes the cache database at path, creating parent
// directories and the schema as needed.
func Open(path string, ttl time.Duration) (*Cache, error) {
	timer := logging.StartTimer(logging.CategoryStore, "store.Open")
	defer timer.Stop()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("failed to set busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("failed to set journal_mode=WAL: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logging.StoreDebug("failed to set synchronous=NORMAL: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	logging.Store("registry cache opened at %s (ttl %v)", path, ttl)
	return &Cache{db: db, ttl: ttl}, nil
}

// Load returns the cached registry for a project root. ok is false on a
// miss or when the entry has aged past the TTL; stale entries are
// evicted on the way out.
func (c *Cache) Load(ctx context.Context, projectRoot string) (*symbol.Registry, bool, error) {
	key, err := cacheKey(projectRoot)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		recordsJSON string
		builtAt     int64
		savedAt     int64
	)
	row := c.db.QueryRowContext(ctx,
		`SELECT records, built_at, saved_at FROM registry_cache WHERE project_root = ?`, key)
	if err := row.Scan(&recordsJSON, &builtAt, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logging.StoreDebug("cache miss for %s", key)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache row: %w", err)
	}

	if time.Since(time.Unix(savedAt, 0)) > c.ttl {
		logging.Store("cache entry for %s expired, evicting", key)
		if _, err := c.db.ExecContext(ctx,
			`DELETE FROM registry_cache WHERE project_root = ?`, key); err != nil {
			logging.StoreDebug("failed to evict stale entry: %v", err)
		}
		return nil, false, nil
	}

	var records []symbol.Record
	if err := json.Unmarshal([]byte(recordsJSON), &records); err != nil {
		logging.Get(logging.CategoryStore).Warn("cache entry for %s is corrupt, evicting: %v", key, err)
		if _, err := c.db.ExecContext(ctx,
			`DELETE FROM registry_cache WHERE project_root = ?`, key); err != nil {
			logging.StoreDebug("failed to evict corrupt entry: %v", err)
		}
		return nil, false, nil
	}

	registry := symbol.RebuildFrom(records, time.Unix(builtAt, 0))
	logging.Store("cache hit for %s (%d symbols)", key, registry.Len())
	return registry, true, nil
}

// Save serializes and upserts the registry for a project root.
func (c *Cache) Save(ctx context.Context, projectRoot string, registry *symbol.Registry) error {
	key, err := cacheKey(projectRoot)
	if err != nil {
		return err
	}

	recordsJSON, err := json.Marshal(registry.Records())
	if err != nil {
		return fmt.Errorf("failed to serialize registry: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO registry_cache (project_root, records, built_at, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project_root) DO UPDATE SET
			records = excluded.records,
			built_at = excluded.built_at,
			saved_at = excluded.saved_at`,
		key, string(recordsJSON), registry.BuiltAt().Unix(), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}

	logging.Store("cached registry for %s (%d symbols)", key, registry.Len())
	return nil
}

// Invalidate removes the cached registry for one project root.
func (c *Cache) Invalidate(ctx context.Context, projectRoot string) error {
	key, err := cacheKey(projectRoot)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.ExecContext(ctx,
		`DELETE FROM registry_cache WHERE project_root = ?`, key); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	logging.Store("invalidated cache for %s", key)
	return nil
}

// Clear drops every cached registry.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.ExecContext(ctx, `DELETE FROM registry_cache`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	logging.Store("cleared registry cache")
	return nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db.Close()
}

// cacheKey normalizes a project root to its absolute path so relative and
// absolute spellings of the same project share one entry.
func cacheKey(projectRoot string) (string, error) {
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	return abs, nil
}
