package repositories

import (
	"context"

	"vogue/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetAll(ctx context.Context) ([]models.Review, error) // newest first
	Delete(ctx context.Context, id string) error
}
