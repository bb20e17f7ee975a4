package cache

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteCache persists cached responses to a SQLite database so a restart
// does not cold-start every symbol.
type SQLiteCache struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteCache opens (or creates) the SQLite database and runs migrations.
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reads don't block the refresh scheduler's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite cache opened: %s", dbPath)
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS fetch_cache (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		expires_at INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create fetch_cache: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var value []byte
	var expiresAt int64
	err := c.db.QueryRow(
		`SELECT value, expires_at FROM fetch_cache WHERE key = ?`, key,
	).Scan(&value, &expiresAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[WARN] cache get %s: %v", key, err)
		}
		return nil, false
	}
	if time.Now().Unix() >= expiresAt {
		if _, err := c.db.Exec(`DELETE FROM fetch_cache WHERE key = ?`, key); err != nil {
			log.Printf("[WARN] cache evict %s: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

func (c *SQLiteCache) Set(key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO fetch_cache (key, value, expires_at) VALUES (?,?,?)`,
		key, value, time.Now().Add(ttl).Unix(),
	)
	return err
}

func (c *SQLiteCache) Close() error {
	log.Println("[INFO] closing sqlite cache")
	return c.db.Close()
}
