package services

import (
	"context"
	"time"

	"vogue/internal/models"
	"vogue/internal/repositories"
)

// OfferService handles business logic related to offers.
type OfferService struct {
	repo      repositories.OfferRepository
	publisher EventPublisher
}

// NewOfferService creates a new OfferService. publisher may be nil.
func NewOfferService(repo repositories.OfferRepository, publisher EventPublisher) *OfferService {
	return &OfferService{repo: repo, publisher: publisher}
}

// CreateOffer stores a new offer.
func (s *OfferService) CreateOffer(ctx context.Context, imageURL, description string) (*models.Offer, error) {
	offer := &models.Offer{
		ImageURL:    imageURL,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, offer); err != nil {
		return nil, err
	}
	publish(s.publisher, EventOfferCreated, offer)
	return offer, nil
}

// GetAllOffers retrieves all offers, newest first.
func (s *OfferService) GetAllOffers(ctx context.Context) ([]models.Offer, error) {
	return s.repo.GetAll(ctx)
}

// UpdateOffer replaces the image and description of an offer.
func (s *OfferService) UpdateOffer(ctx context.Context, id, imageURL, description string) (*models.Offer, error) {
	offer, err := s.repo.Update(ctx, id, imageURL, description)
	if err != nil {
		return nil, err
	}
	publish(s.publisher, EventOfferUpdated, offer)
	return offer, nil
}

// DeleteOffer deletes an offer by its ID.
func (s *OfferService) DeleteOffer(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(s.publisher, EventOfferDeleted, deletedEvent{ID: id})
	return nil
}
