package models

import (
	"strings"
	"time"
)

// Item is the single entity managed by the shelf service.
//
// The store assigns ID and CreatedAt on insert. IDs are autoincrementing
// and never reused, even after deletion; CreatedAt is immutable.
type Item struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName returns the table name for Item.
func (Item) TableName() string {
	return "items"
}

// Age returns how long the item has existed relative to now.
func (i *Item) Age(now time.Time) time.Duration {
	return now.Sub(i.CreatedAt)
}

// Validate checks that the item holds a persistable name.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrNameRequired
	}
	return nil
}
