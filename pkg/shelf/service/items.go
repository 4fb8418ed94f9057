// Package service implements the item lifecycle rules on top of the store:
// name validation on create and the retention hold that gates deletion.
package service

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/shelf-labs/shelf/internal/logger"
	"github.com/shelf-labs/shelf/internal/telemetry"
	"github.com/shelf-labs/shelf/pkg/metrics"
	"github.com/shelf-labs/shelf/pkg/shelf/models"
	"github.com/shelf-labs/shelf/pkg/shelf/store"
)

// DefaultMinimumAge is the default retention hold: an item may only be
// deleted once it is at least this old.
const DefaultMinimumAge = 5 * 24 * time.Hour

// Service enforces the item lifecycle rules. It holds no item state of its
// own; all state lives in the store.
type Service struct {
	store  store.Store
	minAge time.Duration
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithMinimumAge overrides the retention hold duration.
func WithMinimumAge(d time.Duration) Option {
	return func(s *Service) {
		s.minAge = d
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service over the given store.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		minAge: DefaultMinimumAge,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MinimumAge returns the configured retention hold.
func (s *Service) MinimumAge() time.Duration {
	return s.minAge
}

// Create validates the name and persists a new item.
// Returns models.ErrNameRequired if the name is blank after trimming.
func (s *Service) Create(ctx context.Context, name string) (*models.Item, error) {
	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanItemCreate)
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrNameRequired
	}

	item := &models.Item{Name: name}
	if err := s.store.CreateItem(ctx, item); err != nil {
		telemetry.RecordError(ctx, err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int64(telemetry.AttrItemID, int64(item.ID)),
		attribute.String(telemetry.AttrItemName, item.Name),
	)

	metrics.ItemCreates.Inc()
	logger.Info("Item created", "id", item.ID, "name", item.Name)
	return item, nil
}

// List returns all items, newest first.
func (s *Service) List(ctx context.Context) ([]*models.Item, error) {
	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanItemList)
	defer span.End()

	items, err := s.store.ListItems(ctx)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int(telemetry.AttrItemCount, len(items)))
	return items, nil
}

// Delete removes an item if it is old enough.
//
// Returns models.ErrItemNotFound if the item doesn't exist (or was deleted
// by a racing request) and models.ErrItemRetained if it is younger than the
// retention hold; a retained item is left untouched.
func (s *Service) Delete(ctx context.Context, id uint) error {
	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanItemDelete)
	defer span.End()
	span.SetAttributes(attribute.Int64(telemetry.AttrItemID, int64(id)))

	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if age := item.Age(s.now()); age < s.minAge {
		metrics.ItemDeletesRetained.Inc()
		logger.Debug("Item delete refused by retention hold",
			"id", id, "age", age.String(), "minimum_age", s.minAge.String())
		return models.ErrItemRetained
	}

	if err := s.store.DeleteItem(ctx, id); err != nil {
		return err
	}

	metrics.ItemDeletes.Inc()
	logger.Info("Item deleted", "id", id, "name", item.Name)
	return nil
}
