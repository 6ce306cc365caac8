package repositories

import (
	"context"
	"errors"

	"vogue/internal/models"
)

// ErrNotFound is returned when no document matches the given id.
var ErrNotFound = errors.New("not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	Find(ctx context.Context, query models.ProductQuery) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
