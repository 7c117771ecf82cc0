package storage

import (
	"context"
	"errors"

	"github.com/gdg-garage/tour-api/internal/models"
	"gorm.io/gorm"
)

// GormStore keeps documents in the kv_entries table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where(&models.KVEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.KVEntry
		if err := tx.FirstOrInit(&entry, models.KVEntry{Key: key}).Error; err != nil {
			return err
		}

		entry.Value = string(value)
		entry.Revision++

		return tx.Save(&entry).Error
	})
}

// Revision reports how many times key has been written. Zero means never.
func (s *GormStore) Revision(ctx context.Context, key string) (int64, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Select("revision").Where(&models.KVEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return entry.Revision, nil
}
