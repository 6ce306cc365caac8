package repositories

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"vogue/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(ProductsCollection)}
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = ""
	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	product.ID = insertedID(res)
	return nil
}

func (r *MongoProductRepository) Find(ctx context.Context, query models.ProductQuery) ([]models.Product, error) {
	filter := productFilter(query)
	opts := options.Find()
	if query.NewestFirst {
		opts.SetSort(newestFirst)
	}
	if query.Limit > 0 {
		opts.SetLimit(int64(query.Limit))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	filter, err := idFilter("product", id)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := r.coll.FindOne(ctx, filter).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, notFound(err, "product", id))
	}
	return &product, nil
}

func (r *MongoProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	filter, err := idFilter("product", id)
	if err != nil {
		return nil, err
	}
	set := bson.M(patch.Fields())
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, notFound(err, "product", id))
	}
	return &product, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	filter, err := idFilter("product", id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// productFilter translates query into a MongoDB filter document.
func productFilter(query models.ProductQuery) bson.M {
	filter := bson.M{}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.Name != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(query.Name), Options: "i"}
	}
	if query.TrendingOnly {
		filter["isTrending"] = true
	}
	if !query.CreatedAfter.IsZero() {
		filter["createdAt"] = bson.M{"$gte": query.CreatedAfter}
	}
	return filter
}
