package repositories

import (
	"context"
	"fmt"

	"vogue/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepository is a MongoDB implementation of ReviewRepository.
type MongoReviewRepository struct {
	coll *mongo.Collection
}

// NewMongoReviewRepository creates a new instance of MongoReviewRepository.
func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{coll: db.Collection(ReviewsCollection)}
}

func (r *MongoReviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.ID = ""
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	review.ID = insertedID(res)
	return nil
}

func (r *MongoReviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to get all reviews: %w", err)
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepository) Delete(ctx context.Context, id string) error {
	filter, err := idFilter("review", id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("review with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
