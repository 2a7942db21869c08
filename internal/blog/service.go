package blog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("blog post not found")

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (int64, error) {
	now := time.Now().In(s.location)

	publishedAt := req.PublishedAt
	if req.IsPublished && publishedAt == nil {
		publishedAt = &now
	}

	post := Post{
		Title:         strings.TrimSpace(req.Title),
		Slug:          strings.TrimSpace(req.Slug),
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Author:        strings.TrimSpace(req.Author),
		Category:      req.Category,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		IsPublished:   req.IsPublished,
		PublishedAt:   publishedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.repo.Insert(ctx, post)
}

// Update overwrites every mutable field of the row. The publish timestamp is
// the one field with history: when the post stays published and the caller
// sends no explicit published_at, the previously stamped value is kept; a post
// publishing for the first time is stamped now.
func (s *Service) Update(ctx context.Context, id int64, req UpsertRequest) error {
	now := time.Now().In(s.location)

	publishedAt := req.PublishedAt
	if req.IsPublished && publishedAt == nil {
		prior, err := s.repo.GetByID(ctx, id)
		switch {
		case err == nil && prior.PublishedAt != nil:
			publishedAt = prior.PublishedAt
		case err == nil || errors.Is(err, sql.ErrNoRows):
			publishedAt = &now
		default:
			return err
		}
	}

	post := Post{
		Title:         strings.TrimSpace(req.Title),
		Slug:          strings.TrimSpace(req.Slug),
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Author:        strings.TrimSpace(req.Author),
		Category:      req.Category,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		IsPublished:   req.IsPublished,
		PublishedAt:   publishedAt,
		UpdatedAt:     now,
	}

	// A missing id matches zero rows and still reports success; the admin UI
	// treats updates as idempotent.
	return s.repo.Update(ctx, id, post)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (Post, error) {
	post, err := s.repo.GetPublishedBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	return post, nil
}

func (s *Service) ListPublished(ctx context.Context) ([]Summary, error) {
	return s.repo.ListPublished(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Post, error) {
	return s.repo.ListAll(ctx)
}
