package portfolio

import (
	"context"
	"strings"
	"time"
)

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

func (s *Service) fromRequest(req UpsertRequest, now time.Time) Item {
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	return Item{
		Title:        strings.TrimSpace(req.Title),
		Slug:         strings.TrimSpace(req.Slug),
		Category:     strings.TrimSpace(req.Category),
		Description:  req.Description,
		Problem:      req.Problem,
		Solution:     req.Solution,
		Tools:        req.Tools,
		Image:        req.Image,
		DemoURL:      req.DemoURL,
		GithubURL:    req.GithubURL,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: displayOrder,
		UpdatedAt:    now,
	}
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (int64, error) {
	now := time.Now().In(s.location)
	item := s.fromRequest(req, now)
	item.CreatedAt = now
	return s.repo.Insert(ctx, item)
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertRequest) error {
	now := time.Now().In(s.location)
	return s.repo.Update(ctx, id, s.fromRequest(req, now))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List serves both the public page and the admin console; portfolio items have
// no draft state, so there is no separate admin listing.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}
