package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/digidrobe/digidrobe-go/internal/domain"
)

const snapshotBucket = "snapshots"

// envelope wraps a stored payload with its save time so readers can
// judge staleness.
type envelope struct {
	SavedAt int64           `json:"savedAt"`
	Data    json.RawMessage `json:"data"`
}

// boltStore implements Store backed by BoltDB.
type boltStore struct {
	db  *bolt.DB
	ttl time.Duration
}

// openBolt initializes a BoltDB-backed snapshot store.
func openBolt(path string, opts Options) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(snapshotBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	return &boltStore{db: db, ttl: opts.SnapshotTTL}, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

func wardrobeKey(category string) string {
	if category == "" {
		category = domain.CategoryAll
	}
	return "wardrobe:" + category
}

const outfitKey = "outfit:last"

// SaveWardrobe stores the given items under their category filter key.
func (b *boltStore) SaveWardrobe(category string, items []domain.ClothingItem) error {
	return b.put(wardrobeKey(category), items)
}

// LoadWardrobe returns the last saved items for the category filter
// along with when they were saved. Expired or missing snapshots return
// ErrNoSnapshot.
func (b *boltStore) LoadWardrobe(category string) ([]domain.ClothingItem, time.Time, error) {
	var items []domain.ClothingItem
	savedAt, err := b.get(wardrobeKey(category), &items)
	if err != nil {
		return nil, time.Time{}, err
	}
	return items, savedAt, nil
}

// SaveOutfit stores the most recent outfit recommendation.
func (b *boltStore) SaveOutfit(outfit domain.Outfit) error {
	return b.put(outfitKey, outfit)
}

// LastOutfit returns the most recently saved outfit recommendation.
func (b *boltStore) LastOutfit() (*domain.Outfit, time.Time, error) {
	var outfit domain.Outfit
	savedAt, err := b.get(outfitKey, &outfit)
	if err != nil {
		return nil, time.Time{}, err
	}
	return &outfit, savedAt, nil
}

func (b *boltStore) put(key string, payload any) error {
	if b == nil || b.db == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	env, err := json.Marshal(envelope{SavedAt: time.Now().Unix(), Data: data})
	if err != nil {
		return fmt.Errorf("encode envelope %s: %w", key, err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(snapshotBucket)).Put([]byte(key), env)
	})
}

// get loads and decodes a snapshot. Entries older than the TTL are
// deleted and reported as missing.
func (b *boltStore) get(key string, out any) (time.Time, error) {
	if b == nil || b.db == nil {
		return time.Time{}, ErrNoSnapshot
	}

	var raw []byte
	if err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(snapshotBucket)).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return time.Time{}, err
	}
	if raw == nil {
		return time.Time{}, ErrNoSnapshot
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return time.Time{}, fmt.Errorf("decode envelope %s: %w", key, err)
	}

	savedAt := time.Unix(env.SavedAt, 0)
	if time.Since(savedAt) > b.ttl {
		_ = b.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket([]byte(snapshotBucket)).Delete([]byte(key))
		})
		return time.Time{}, ErrNoSnapshot
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return time.Time{}, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return savedAt, nil
}
