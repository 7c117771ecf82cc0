// Package storage persists whole collections as JSON documents in a
// key-value store.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

const (
	BookingsKey = "hamsika_bookings"
	PackagesKey = "hamsika_packages"
)

var (
	ErrNotFound      = errors.New("storage: key not found")
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// Store is a raw key-value backend. Get returns ErrNotFound for absent keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Load decodes the document stored under key. Missing or undecodable
// documents yield def. Only backend failures are returned as errors.
func Load[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("load %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("Stored %s is malformed, using defaults: %v", key, err)
		return def, nil
	}
	return v, nil
}

// Save encodes value and overwrites whatever is stored under key.
func Save[T any](ctx context.Context, s Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
