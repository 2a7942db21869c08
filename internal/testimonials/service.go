package testimonials

import (
	"context"
	"strings"
	"time"
)

const defaultRating = 5

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

func (s *Service) fromRequest(req UpsertRequest, now time.Time) Testimonial {
	rating := defaultRating
	if req.Rating != nil {
		rating = *req.Rating
	}
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	return Testimonial{
		ClientName:    strings.TrimSpace(req.ClientName),
		ClientTitle:   req.ClientTitle,
		ClientCompany: req.ClientCompany,
		ClientImage:   req.ClientImage,
		Testimonial:   req.Testimonial,
		Rating:        rating,
		ProjectType:   req.ProjectType,
		IsFeatured:    req.IsFeatured,
		DisplayOrder:  displayOrder,
		UpdatedAt:     now,
	}
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (int64, error) {
	now := time.Now().In(s.location)
	t := s.fromRequest(req, now)
	t.CreatedAt = now
	return s.repo.Insert(ctx, t)
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertRequest) error {
	now := time.Now().In(s.location)
	return s.repo.Update(ctx, id, s.fromRequest(req, now))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListFeatured backs the public page; only rows an admin marked featured are
// ever exposed there.
func (s *Service) ListFeatured(ctx context.Context) ([]Testimonial, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Testimonial, error) {
	return s.repo.ListAll(ctx)
}
