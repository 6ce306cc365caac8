package services

import (
	"context"

	"vogue/internal/repositories"
)

// VisitService tracks storefront visits.
type VisitService struct {
	repo repositories.VisitRepository
}

// NewVisitService creates a new VisitService.
func NewVisitService(repo repositories.VisitRepository) *VisitService {
	return &VisitService{repo: repo}
}

// Init makes sure the counter exists. It is called once at startup.
func (s *VisitService) Init(ctx context.Context) error {
	return s.repo.Ensure(ctx)
}

// TrackVisit records one visit and returns the new total.
func (s *VisitService) TrackVisit(ctx context.Context) (int64, error) {
	return s.repo.Increment(ctx)
}
