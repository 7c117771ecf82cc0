package models

import (
	"time"
)

// KVEntry is one stored collection document.
type KVEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	Revision  int64
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
