//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shelf-labs/shelf/pkg/shelf/models"
)

// createTestStore creates an in-memory SQLite store for testing.
func createTestStore(t *testing.T) *GORMStore {
	t.Helper()
	store, err := New(&Config{
		Type: DatabaseTypeSQLite,
		SQLite: SQLiteConfig{
			Path: MemoryDSN,
		},
	})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return store
}

func TestNew(t *testing.T) {
	t.Run("default config uses sqlite", func(t *testing.T) {
		config := &Config{}
		config.ApplyDefaults()

		if config.Type != DatabaseTypeSQLite {
			t.Errorf("expected SQLite, got %s", config.Type)
		}
		if config.SQLite.Path != MemoryDSN {
			t.Errorf("expected in-memory path, got %s", config.SQLite.Path)
		}
	})

	t.Run("invalid config returns error", func(t *testing.T) {
		config := &Config{
			Type: "invalid",
		}
		_, err := New(config)
		if err == nil {
			t.Error("expected error for invalid config")
		}
	})

	t.Run("creates in-memory store", func(t *testing.T) {
		store := createTestStore(t)
		defer store.Close()

		if err := store.Healthcheck(context.Background()); err != nil {
			t.Errorf("healthcheck failed: %v", err)
		}
	})
}

func TestItemOperations(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		item := &models.Item{Name: "first"}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("failed to create item: %v", err)
		}
		if item.ID == 0 {
			t.Error("expected non-zero item ID")
		}
		if item.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be set")
		}
	})

	t.Run("create honors preset timestamp", func(t *testing.T) {
		backdated := time.Now().UTC().Add(-10 * 24 * time.Hour).Truncate(time.Second)
		item := &models.Item{Name: "backdated", CreatedAt: backdated}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("failed to create item: %v", err)
		}

		got, err := store.GetItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("failed to get item: %v", err)
		}
		if !got.CreatedAt.Equal(backdated) {
			t.Errorf("expected CreatedAt %v, got %v", backdated, got.CreatedAt)
		}
	})

	t.Run("get missing item", func(t *testing.T) {
		_, err := store.GetItem(ctx, 9999)
		if !errors.Is(err, models.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("delete removes item", func(t *testing.T) {
		item := &models.Item{Name: "doomed"}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("failed to create item: %v", err)
		}

		if err := store.DeleteItem(ctx, item.ID); err != nil {
			t.Fatalf("failed to delete item: %v", err)
		}

		_, err := store.GetItem(ctx, item.ID)
		if !errors.Is(err, models.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound after delete, got %v", err)
		}
	})

	t.Run("delete is not idempotent", func(t *testing.T) {
		item := &models.Item{Name: "once"}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("failed to create item: %v", err)
		}
		if err := store.DeleteItem(ctx, item.ID); err != nil {
			t.Fatalf("first delete failed: %v", err)
		}

		err := store.DeleteItem(ctx, item.ID)
		if !errors.Is(err, models.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound on second delete, got %v", err)
		}
	})

	t.Run("ids are never reused", func(t *testing.T) {
		a := &models.Item{Name: "a"}
		if err := store.CreateItem(ctx, a); err != nil {
			t.Fatalf("failed to create item: %v", err)
		}
		if err := store.DeleteItem(ctx, a.ID); err != nil {
			t.Fatalf("failed to delete item: %v", err)
		}

		b := &models.Item{Name: "b"}
		if err := store.CreateItem(ctx, b); err != nil {
			t.Fatalf("failed to create item: %v", err)
		}
		if b.ID <= a.ID {
			t.Errorf("expected new id > %d, got %d", a.ID, b.ID)
		}
	})
}

func TestListItemsOrdering(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)

	// Insert out of chronological order
	oldest := &models.Item{Name: "oldest", CreatedAt: now.Add(-3 * time.Hour)}
	newest := &models.Item{Name: "newest", CreatedAt: now.Add(-1 * time.Hour)}
	middle := &models.Item{Name: "middle", CreatedAt: now.Add(-2 * time.Hour)}

	for _, item := range []*models.Item{oldest, newest, middle} {
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("failed to create %s: %v", item.Name, err)
		}
	}

	items, err := store.ListItems(ctx)
	if err != nil {
		t.Fatalf("failed to list items: %v", err)
	}

	want := []string{"newest", "middle", "oldest"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, items[i].Name)
		}
	}
}

func TestListItemsTieBreak(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	// Same timestamp: the later insertion (higher id) wins
	ts := time.Now().UTC().Truncate(time.Second)
	first := &models.Item{Name: "first", CreatedAt: ts}
	second := &models.Item{Name: "second", CreatedAt: ts}

	if err := store.CreateItem(ctx, first); err != nil {
		t.Fatalf("failed to create first: %v", err)
	}
	if err := store.CreateItem(ctx, second); err != nil {
		t.Fatalf("failed to create second: %v", err)
	}

	items, err := store.ListItems(ctx)
	if err != nil {
		t.Fatalf("failed to list items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "second" {
		t.Errorf("expected later insertion first, got %q", items[0].Name)
	}
}

func TestListItemsEmpty(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	items, err := store.ListItems(context.Background())
	if err != nil {
		t.Fatalf("failed to list items: %v", err)
	}
	if items == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestSeed(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("seeds empty database", func(t *testing.T) {
		count, err := store.Seed(ctx)
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if count != 3 {
			t.Errorf("expected 3 seeded items, got %d", count)
		}
	})

	t.Run("seeded items are past the retention hold", func(t *testing.T) {
		items, err := store.ListItems(ctx)
		if err != nil {
			t.Fatalf("failed to list items: %v", err)
		}
		now := time.Now()
		for _, item := range items {
			if item.Age(now) < 5*24*time.Hour {
				t.Errorf("seeded item %q is only %v old", item.Name, item.Age(now))
			}
		}
	})

	t.Run("reseed is a no-op", func(t *testing.T) {
		count, err := store.Seed(ctx)
		if err != nil {
			t.Fatalf("reseed failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected no items on reseed, got %d", count)
		}
	})

	t.Run("non-empty database is never seeded", func(t *testing.T) {
		other := createTestStore(t)
		defer other.Close()

		item := &models.Item{Name: "existing"}
		if err := other.CreateItem(ctx, item); err != nil {
			t.Fatalf("failed to create item: %v", err)
		}

		count, err := other.Seed(ctx)
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected no seeding with existing items, got %d", count)
		}
	})
}
