package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/digidrobe/digidrobe-go/internal/domain"
)

// Package storage keeps local snapshots of the last successful API
// responses so the CLI can fall back to stale data when the backend is
// unreachable. The API client itself never touches this; it stays a
// stateless pass-through.

// ErrNoSnapshot is returned when no usable snapshot exists for a key.
var ErrNoSnapshot = errors.New("no snapshot available")

// Store persists wardrobe and outfit snapshots.
type Store interface {
	Close() error
	SaveWardrobe(category string, items []domain.ClothingItem) error
	LoadWardrobe(category string) ([]domain.ClothingItem, time.Time, error)
	SaveOutfit(outfit domain.Outfit) error
	LastOutfit() (*domain.Outfit, time.Time, error)
}

// Options controls snapshot retention for concrete implementations.
type Options struct {
	SnapshotTTL time.Duration
}

const defaultSnapshotTTL = 7 * 24 * time.Hour

// NewStore creates the configured snapshot backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	if opts.SnapshotTTL <= 0 {
		opts.SnapshotTTL = defaultSnapshotTTL
	}

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

type noopStore struct{}

func (noopStore) Close() error                                  { return nil }
func (noopStore) SaveWardrobe(string, []domain.ClothingItem) error { return nil }
func (noopStore) LoadWardrobe(string) ([]domain.ClothingItem, time.Time, error) {
	return nil, time.Time{}, ErrNoSnapshot
}
func (noopStore) SaveOutfit(domain.Outfit) error { return nil }
func (noopStore) LastOutfit() (*domain.Outfit, time.Time, error) {
	return nil, time.Time{}, ErrNoSnapshot
}
