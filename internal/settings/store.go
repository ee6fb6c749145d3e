package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zjrosen/parlor/internal/cachemanager"
	"github.com/zjrosen/parlor/internal/log"
)

const (
	cacheTTL             = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Minute
)

// ErrEmptyKey is returned when a setting key is blank.
var ErrEmptyKey = errors.New("setting key is required")

type intSetting struct {
	value int
	ok    bool
}

// Store reads and writes integer settings. Reads go through a cache that
// also remembers unset keys.
type Store struct {
	db    *DB
	cache *cachemanager.ReadThroughCache[intSetting]
	now   func() time.Time
}

// NewStore returns a store backed by db.
func NewStore(db *DB) *Store {
	s := &Store{db: db, now: time.Now}
	mgr := cachemanager.NewInMemoryCacheManager[intSetting]("settings", cacheTTL, cacheCleanupInterval)
	s.cache = cachemanager.NewReadThroughCache[intSetting](mgr, cacheTTL, s.load)
	return s
}

// GetInt returns the value stored under key; ok is false when it is unset.
func (s *Store) GetInt(ctx context.Context, key string) (value int, ok bool, err error) {
	if key == "" {
		return 0, false, ErrEmptyKey
	}
	setting, err := s.cache.Get(ctx, key)
	if err != nil {
		return 0, false, err
	}
	return setting.value, setting.ok, nil
}

// SetInt stores value under key.
func (s *Store) SetInt(ctx context.Context, key string, value int) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	s.cache.Invalidate(ctx, key)
	log.Debug(log.CatSettings, "Setting saved", "key", key, "value", value)
	return nil
}

// Delete removes key. Deleting an unset key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := s.db.conn.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	s.cache.Invalidate(ctx, key)
	return nil
}

func (s *Store) load(ctx context.Context, key string) (intSetting, error) {
	var value int
	err := s.db.conn.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return intSetting{}, nil
	}
	if err != nil {
		return intSetting{}, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return intSetting{value: value, ok: true}, nil
}
