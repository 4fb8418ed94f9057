package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shelf-labs/shelf/pkg/shelf/models"
)

// seedItems are the placeholder items inserted into an empty store.
// Their timestamps are backdated past the default retention hold so a
// fresh install can exercise deletion immediately.
var seedItems = []struct {
	name string
	age  time.Duration
}{
	{"Welcome to Shelf", 9 * 24 * time.Hour},
	{"Sample Item", 8 * 24 * time.Hour},
	{"Another Sample Item", 7 * 24 * time.Hour},
}

// Seed inserts the placeholder items if the table is empty.
// Returns the number of items created. Safe to call repeatedly.
func (s *GORMStore) Seed(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Item{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	created := 0
	for _, seed := range seedItems {
		item := &models.Item{
			Name:      seed.name,
			CreatedAt: now.Add(-seed.age),
		}
		if err := s.CreateItem(ctx, item); err != nil {
			return created, fmt.Errorf("failed to seed item %q: %w", seed.name, err)
		}
		created++
	}
	return created, nil
}
