package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoreEntry struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (StoreEntry) TableName() string {
	return "store_entries"
}

// GormStore keeps the durable copy in Postgres. Change notifications only
// reach subscribers of this process.
type GormStore struct {
	db  *gorm.DB
	hub *hub
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, hub: newHub()}
}

func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&StoreEntry{})
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry StoreEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := StoreEntry{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return err
	}

	s.hub.publish(Change{Key: key, Value: value, At: entry.UpdatedAt})
	return nil
}

func (s *GormStore) Subscribe(ctx context.Context, keys ...string) (<-chan Change, error) {
	return s.hub.subscribe(ctx, keys), nil
}
