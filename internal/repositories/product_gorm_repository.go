package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vogue/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Find retrieves the products matching query.
func (r *GORMProductRepository) Find(ctx context.Context, query models.ProductQuery) ([]models.Product, error) {
	tx := r.db.WithContext(ctx).Model(&models.Product{})
	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Name != "" {
		tx = tx.Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(query.Name))+"%")
	}
	if query.TrendingOnly {
		tx = tx.Where("is_trending = ?", true)
	}
	if !query.CreatedAfter.IsZero() {
		tx = tx.Where("created_at >= ?", query.CreatedAfter)
	}
	if query.NewestFirst {
		tx = tx.Order("created_at DESC")
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	products := []models.Product{}
	if err := tx.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Update applies patch to the product with the given ID and returns the
// updated product. Only the patched columns are written.
func (r *GORMProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	var values models.Product
	patch.Apply(&values)
	values.UpdatedAt = time.Now().UTC()

	columns := []string{"updated_at"}
	for name := range patch.Fields() {
		columns = append(columns, productColumns[name])
	}

	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Select(columns).
		Updates(&values)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the total number of products.
func (r *GORMProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// productColumns maps patch field names to their column names.
var productColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"mrp":         "mrp",
	"price":       "price",
	"category":    "category",
	"sizes":       "sizes",
	"colors":      "colors",
	"isTrending":  "is_trending",
	"images":      "images",
	"date":        "date",
	"time":        "time",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes the LIKE wildcards in s.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
