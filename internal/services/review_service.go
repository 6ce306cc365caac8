package services

import (
	"context"
	"time"

	"vogue/internal/models"
	"vogue/internal/repositories"
)

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	repo      repositories.ReviewRepository
	publisher EventPublisher
}

// NewReviewService creates a new ReviewService. publisher may be nil.
func NewReviewService(repo repositories.ReviewRepository, publisher EventPublisher) *ReviewService {
	return &ReviewService{repo: repo, publisher: publisher}
}

// CreateReview stamps and stores a new review.
func (s *ReviewService) CreateReview(ctx context.Context, review *models.Review) error {
	review.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, review); err != nil {
		return err
	}
	publish(s.publisher, EventReviewCreated, review)
	return nil
}

// GetAllReviews retrieves all reviews, newest first.
func (s *ReviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return s.repo.GetAll(ctx)
}

// DeleteReview deletes a review by its ID.
func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(s.publisher, EventReviewDeleted, deletedEvent{ID: id})
	return nil
}
