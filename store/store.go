package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/filemap-go/filemap"
	"github.com/filemap-go/filemap/common"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const batchSize = 500

// Entry is a single key-value pair of a snapshot. Source is the path the map was built from.
type Entry struct {
	Source    string `gorm:"primaryKey;size:1024"`
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	CreatedAt time.Time
}

func (Entry) TableName() string {
	return "filemap_entries"
}

// DSNFromEnv builds a postgres DSN from DB_HOST, DB_PORT, DB_USER, DB_PASS and DB_NAME.
// The names of those variables can be remapped in the runtime config file, e.g. "DB_HOST->PGHOST".
func DSNFromEnv() string {
	hostKey := "DB_HOST"
	portKey := "DB_PORT"
	userKey := "DB_USER"
	passKey := "DB_PASS"
	nameKey := "DB_NAME"

	rc := common.LoadRuntimeConfig()
	if oHostKey, ok := rc["DB_HOST"]; ok {
		hostKey = oHostKey
	}

	if oPortKey, ok := rc["DB_PORT"]; ok {
		portKey = oPortKey
	}

	if oUserKey, ok := rc["DB_USER"]; ok {
		userKey = oUserKey
	}

	if oPassKey, ok := rc["DB_PASS"]; ok {
		passKey = oPassKey
	}

	if oNameKey, ok := rc["DB_NAME"]; ok {
		nameKey = oNameKey
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s", os.Getenv(hostKey), os.Getenv(portKey), os.Getenv(userKey), os.Getenv(passKey), os.Getenv(nameKey))
}

// Open connects to postgres. An empty dsn falls back to DSNFromEnv.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DSNFromEnv()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the entries table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("error migrating %s: %w", Entry{}.TableName(), err)
	}

	return nil
}

// Snapshot replaces the stored entries of m.Path() with the entries of m in a single transaction.
func Snapshot(ctx context.Context, db *gorm.DB, m *filemap.Map) error {
	entries := entriesOf(m, time.Now())

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("source = ?", m.Path()).Delete(&Entry{}).Error; err != nil {
			return fmt.Errorf("error clearing snapshot of %s: %w", m.Path(), err)
		}

		if len(entries) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(entries, batchSize).Error; err != nil {
			return fmt.Errorf("error writing snapshot of %s: %w", m.Path(), err)
		}

		return nil
	})
}

// Restore returns the entries stored for source. ErrNoSnapshot is returned when there are none.
func Restore(ctx context.Context, db *gorm.DB, source string) (map[string]string, error) {
	var entries []Entry
	if err := db.WithContext(ctx).Where("source = ?", source).Order("key").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("error reading snapshot of %s: %w", source, err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, source)
	}

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}

	return out, nil
}

func entriesOf(m *filemap.Map, now time.Time) []Entry {
	entries := make([]Entry, 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Entry{
			Source:    m.Path(),
			Key:       k,
			Value:     v,
			CreatedAt: now,
		})
	}

	return entries
}
