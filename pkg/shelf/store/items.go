package store

import (
	"context"
	"time"

	"github.com/shelf-labs/shelf/pkg/shelf/models"
)

// ============================================
// ITEM OPERATIONS
// ============================================

func (s *GORMStore) CreateItem(ctx context.Context, item *models.Item) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *GORMStore) ListItems(ctx context.Context) ([]*models.Item, error) {
	items := make([]*models.Item, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GORMStore) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, convertNotFoundError(err, models.ErrItemNotFound)
	}
	return &item, nil
}

func (s *GORMStore) DeleteItem(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Item{})
	if result.Error != nil {
		return result.Error
	}
	// Zero rows means the item was already gone, possibly deleted by a
	// concurrent request between lookup and delete.
	if result.RowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}
