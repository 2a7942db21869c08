package blog

import (
	"context"
	"database/sql"
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

func insertPost(t *testing.T, repo *SQLRepository, slug string, published bool, publishedAt time.Time) int64 {
	t.Helper()
	now := time.Now().UTC()
	post := Post{
		Title:       "Post " + slug,
		Slug:        slug,
		Content:     "content",
		Author:      "author",
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if published {
		post.PublishedAt = &publishedAt
	}
	id, err := repo.Insert(context.Background(), post)
	require.NoError(t, err)
	return id
}

func TestListPublishedExcludesDrafts(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	insertPost(t, repo, "published-post", true, now)
	insertPost(t, repo, "draft-post", false, time.Time{})

	items, err := repo.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "published-post", items[0].Slug)
}

func TestListPublishedNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	insertPost(t, repo, "older", true, now.Add(-48*time.Hour))
	insertPost(t, repo, "newer", true, now)

	items, err := repo.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Slug)
	assert.Equal(t, "older", items[1].Slug)
}

func TestGetPublishedBySlugIgnoresDraft(t *testing.T) {
	repo := newTestRepo(t)

	insertPost(t, repo, "hidden", false, time.Time{})

	_, err := repo.GetPublishedBySlug(context.Background(), "hidden")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetByIDRoundTripsNullableFields(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	excerpt := "short version"
	id, err := repo.Insert(context.Background(), Post{
		Title:       "Full Post",
		Slug:        "full-post",
		Excerpt:     &excerpt,
		Content:     "content",
		Author:      "author",
		IsPublished: true,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	post, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, post.Excerpt)
	assert.Equal(t, excerpt, *post.Excerpt)
	assert.Nil(t, post.Category)
	assert.Nil(t, post.Tags)
	require.NotNil(t, post.PublishedAt)
	assert.WithinDuration(t, now, *post.PublishedAt, time.Second)
}

func TestListAllIncludesDrafts(t *testing.T) {
	repo := newTestRepo(t)

	insertPost(t, repo, "live", true, time.Now().UTC())
	insertPost(t, repo, "draft", false, time.Time{})

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update(context.Background(), 12345, Post{
		Title: "ghost", Slug: "ghost", Content: "c", Author: "a",
		UpdatedAt: time.Now().UTC(),
	})
	assert.NoError(t, err)
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.Delete(context.Background(), 12345))
}
