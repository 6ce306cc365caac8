package repositories

import (
	"context"

	"vogue/internal/models"
)

// OfferRepository defines the interface for offer data access.
type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) error
	GetAll(ctx context.Context) ([]models.Offer, error) // newest first
	Update(ctx context.Context, id, imageURL, description string) (*models.Offer, error)
	Delete(ctx context.Context, id string) error
}
