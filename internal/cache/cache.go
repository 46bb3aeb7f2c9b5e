// Package cache stores conversion results in a sqlite database so that a
// structure or InChI string is only sent to the native library once.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/chemkit/inchi-go/pkg/inchi"
)

// ErrMiss is returned when no entry is stored for a lookup.
var ErrMiss = errors.New("cache: miss")

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	fingerprint TEXT PRIMARY KEY,
	payload     BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS keys (
	inchi   TEXT    NOT NULL,
	extra1  INTEGER NOT NULL,
	extra2  INTEGER NOT NULL,
	payload BLOB    NOT NULL,
	PRIMARY KEY (inchi, extra1, extra2)
);`

// Cache is a sqlite-backed result store. It is safe for concurrent use.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the database at path. ":memory:" gives a private
// in-memory cache.
func Open(path string) (*Cache, error) {
	dsn := "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL"
	if path == ":memory:" {
		dsn = "file::memory:"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	// An in-memory database lives as long as its one connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Bind ties the stored entries to a library version. Entries written by a
// different version are dropped.
func (c *Cache) Bind(ctx context.Context, libraryVersion string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cache: bind: %w", err)
	}
	defer tx.Rollback()

	var stored string
	err = tx.QueryRowContext(ctx, `SELECT value FROM meta WHERE name = 'library_version'`).Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("cache: bind: %w", err)
	case stored == libraryVersion:
		return nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM results`); err != nil {
		return fmt.Errorf("cache: bind: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM keys`); err != nil {
		return fmt.Errorf("cache: bind: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO meta (name, value) VALUES ('library_version', ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		libraryVersion)
	if err != nil {
		return fmt.Errorf("cache: bind: %w", err)
	}
	return tx.Commit()
}

// identity is what a cached result depends on besides the library version.
type identity struct {
	Input    *inchi.Input   `msgpack:"i"`
	Settings inchi.Settings `msgpack:"s"`
}

// Fingerprint identifies a conversion: the hex SHA-256 of the msgpack
// encoding of in together with the settings in effect for it.
func Fingerprint(in *inchi.Input, s inchi.Settings) (string, error) {
	if in == nil {
		return "", errors.New("cache: fingerprint: nil input")
	}
	id := identity{Input: in, Settings: s.Effective(in)}
	b, err := msgpack.Marshal(&id)
	if err != nil {
		return "", fmt.Errorf("cache: fingerprint: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// GetResult returns the result stored under fingerprint.
func (c *Cache) GetResult(ctx context.Context, fingerprint string) (*inchi.Result, error) {
	var payload []byte
	err := c.db.QueryRowContext(ctx, `SELECT payload FROM results WHERE fingerprint = ?`, fingerprint).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get result: %w", err)
	}
	var res inchi.Result
	if err := msgpack.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("cache: decode result: %w", err)
	}
	return &res, nil
}

// PutResult stores res under fingerprint, replacing any previous entry.
func (c *Cache) PutResult(ctx context.Context, fingerprint string, res *inchi.Result) error {
	payload, err := msgpack.Marshal(res)
	if err != nil {
		return fmt.Errorf("cache: encode result: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO results (fingerprint, payload) VALUES (?, ?)
		 ON CONFLICT(fingerprint) DO UPDATE SET payload = excluded.payload`,
		fingerprint, payload)
	if err != nil {
		return fmt.Errorf("cache: put result: %w", err)
	}
	return nil
}

// GetKey returns the key stored for inchi with the given extensions.
func (c *Cache) GetKey(ctx context.Context, inchiStr string, opts inchi.KeyOptions) (*inchi.Key, error) {
	var payload []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT payload FROM keys WHERE inchi = ? AND extra1 = ? AND extra2 = ?`,
		inchiStr, opts.Extra1, opts.Extra2).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get key: %w", err)
	}
	var k inchi.Key
	if err := msgpack.Unmarshal(payload, &k); err != nil {
		return nil, fmt.Errorf("cache: decode key: %w", err)
	}
	return &k, nil
}

// PutKey stores k for inchi with the given extensions.
func (c *Cache) PutKey(ctx context.Context, inchiStr string, opts inchi.KeyOptions, k *inchi.Key) error {
	payload, err := msgpack.Marshal(k)
	if err != nil {
		return fmt.Errorf("cache: encode key: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO keys (inchi, extra1, extra2, payload) VALUES (?, ?, ?, ?)
		 ON CONFLICT(inchi, extra1, extra2) DO UPDATE SET payload = excluded.payload`,
		inchiStr, opts.Extra1, opts.Extra2, payload)
	if err != nil {
		return fmt.Errorf("cache: put key: %w", err)
	}
	return nil
}

// Stats reports the number of stored results and keys.
func (c *Cache) Stats(ctx context.Context) (results, keys int, err error) {
	err = c.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM results), (SELECT COUNT(*) FROM keys)`).Scan(&results, &keys)
	if err != nil {
		return 0, 0, fmt.Errorf("cache: stats: %w", err)
	}
	return results, keys, nil
}

// Vacuum rebuilds the database file to reclaim space from dropped entries.
func (c *Cache) Vacuum(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `VACUUM`); err != nil {
		return fmt.Errorf("cache: vacuum: %w", err)
	}
	return nil
}
