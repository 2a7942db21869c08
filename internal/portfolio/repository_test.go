package portfolio

import (
	"context"
	"testing"
	"time"

	"studiosite-backend/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLRepository {
	t.Helper()
	database, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.Migrate(context.Background(), database))
	return NewRepository(database)
}

func insertItem(t *testing.T, repo *SQLRepository, title string, order int, createdAt time.Time) int64 {
	t.Helper()
	id, err := repo.Insert(context.Background(), Item{
		Title:        title,
		Slug:         title,
		Category:     "Web",
		DisplayOrder: order,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	})
	require.NoError(t, err)
	return id
}

func TestListOrdersByDisplayOrderThenNewest(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	insertItem(t, repo, "second-order", 2, now)
	insertItem(t, repo, "first-order", 1, now)
	insertItem(t, repo, "tie-older", 1, now.Add(-time.Hour))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first-order", items[0].Title)
	assert.Equal(t, "tie-older", items[1].Title)
	assert.Equal(t, "second-order", items[2].Title)
}

func TestUpdateOverwritesOptionalFieldsWithNull(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	tools := "Go, React"
	id, err := repo.Insert(context.Background(), Item{
		Title:     "proj",
		Slug:      "proj",
		Category:  "Web",
		Tools:     &tools,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	// Full-row overwrite with tools omitted nulls the column.
	require.NoError(t, repo.Update(context.Background(), id, Item{
		Title:     "proj",
		Slug:      "proj",
		Category:  "Web",
		UpdatedAt: now,
	}))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Tools)
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := newTestRepo(t)
	id := insertItem(t, repo, "gone", 0, time.Now().UTC())

	require.NoError(t, repo.Delete(context.Background(), id))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
