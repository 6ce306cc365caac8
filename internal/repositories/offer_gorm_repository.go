package repositories

import (
	"context"
	"errors"
	"fmt"

	"vogue/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOfferRepository is a GORM implementation of OfferRepository.
type GORMOfferRepository struct {
	db *gorm.DB
}

// NewGORMOfferRepository creates a new instance of GORMOfferRepository.
func NewGORMOfferRepository(db *gorm.DB) *GORMOfferRepository {
	return &GORMOfferRepository{db: db}
}

func (r *GORMOfferRepository) Create(ctx context.Context, offer *models.Offer) error {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(offer).Error; err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

func (r *GORMOfferRepository) GetAll(ctx context.Context) ([]models.Offer, error) {
	offers := []models.Offer{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all offers: %w", err)
	}
	return offers, nil
}

func (r *GORMOfferRepository) Update(ctx context.Context, id, imageURL, description string) (*models.Offer, error) {
	res := r.db.WithContext(ctx).Model(&models.Offer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"image_url":   imageURL,
		"description": description,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update offer %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
	}

	var offer models.Offer
	if err := r.db.WithContext(ctx).First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to reload offer %s: %w", id, err)
	}
	return &offer, nil
}

func (r *GORMOfferRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Offer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete offer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
