package inquiries

import (
	"context"
	"strings"
	"time"

	"studiosite-backend/internal/db"
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

// Create records a public submission. The status always starts as "new"; any
// status in the request is discarded.
func (s *Service) Create(ctx context.Context, req CreateRequest) (int64, error) {
	now := time.Now().In(s.location)

	inquiry := Inquiry{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Company:   req.Company,
		Service:   strings.TrimSpace(req.Service),
		Message:   req.Message,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.repo.Insert(ctx, inquiry)
}

// UpdateStatus moves an inquiry to any of the four states; the graph is fully
// connected, so "back to new" is a legal admin action. Notes ride along with
// every status change.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateRequest) error {
	now := time.Now().In(s.location)
	return s.repo.UpdateStatus(ctx, id, req.Status, req.Notes, db.FormatTime(now))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Inquiry, error) {
	return s.repo.ListAll(ctx)
}
