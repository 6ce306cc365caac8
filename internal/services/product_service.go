package services

import (
	"context"
	"time"

	"vogue/internal/models"
	"vogue/internal/repositories"
)

const (
	// RecentWindow is how far back GetRecentProducts looks.
	RecentWindow = 3 * 24 * time.Hour
	// RecentLimit caps the number of recent products returned.
	RecentLimit = 6
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	now       func() time.Time
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetAllProducts retrieves every product, unfiltered.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.Find(ctx, models.ProductQuery{})
}

// SearchProducts retrieves products by exact category and case-insensitive
// title substring. Empty arguments are ignored.
func (s *ProductService) SearchProducts(ctx context.Context, category, name string) ([]models.Product, error) {
	return s.repo.Find(ctx, models.ProductQuery{Category: category, Name: name})
}

// GetProductsByCategory retrieves the products of one category.
func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.repo.Find(ctx, models.ProductQuery{Category: category})
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetRecentProducts retrieves the newest products created within
// RecentWindow, at most RecentLimit of them.
func (s *ProductService) GetRecentProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.Find(ctx, models.ProductQuery{
		CreatedAfter: s.now().Add(-RecentWindow),
		NewestFirst:  true,
		Limit:        RecentLimit,
	})
}

// GetTrendingProducts retrieves trending products, newest first.
func (s *ProductService) GetTrendingProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.Find(ctx, models.ProductQuery{TrendingOnly: true, NewestFirst: true})
}

// CountProducts returns the total number of products.
func (s *ProductService) CountProducts(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// CreateProduct stamps and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	product.Normalize()
	now := s.now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	publish(s.publisher, EventProductCreated, product)
	return nil
}

// UpdateProduct applies a partial update and returns the updated product.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	product, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	publish(s.publisher, EventProductUpdated, product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(s.publisher, EventProductDeleted, deletedEvent{ID: id})
	return nil
}
