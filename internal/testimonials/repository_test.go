package testimonials

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

func insertTestimonial(t *testing.T, repo *SQLRepository, name string, featured bool, order int, createdAt time.Time) {
	t.Helper()
	_, err := repo.Insert(context.Background(), Testimonial{
		ClientName:   name,
		Testimonial:  "great work",
		Rating:       5,
		IsFeatured:   featured,
		DisplayOrder: order,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	})
	require.NoError(t, err)
}

func TestListFeaturedFiltersUnfeatured(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	insertTestimonial(t, repo, "Featured Client", true, 0, now)
	insertTestimonial(t, repo, "Hidden Client", false, 0, now)

	featured, err := repo.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Featured Client", featured[0].ClientName)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListFeaturedOrdersByDisplayOrder(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	insertTestimonial(t, repo, "Second", true, 2, now)
	insertTestimonial(t, repo, "First", true, 1, now)

	items, err := repo.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].ClientName)
	assert.Equal(t, "Second", items[1].ClientName)
}

func TestListFeaturedEmptyIsEmptySlice(t *testing.T) {
	repo := newTestRepo(t)

	items, err := repo.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListAllBreaksTiesByNewestCreated(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	insertTestimonial(t, repo, "Older", false, 1, now.Add(-time.Hour))
	insertTestimonial(t, repo, "Newer", false, 1, now)

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Newer", items[0].ClientName)
}
