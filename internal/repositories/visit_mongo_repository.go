package repositories

import (
	"context"
	"fmt"

	"vogue/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVisitRepository is a MongoDB implementation of VisitRepository.
type MongoVisitRepository struct {
	coll *mongo.Collection
}

// NewMongoVisitRepository creates a new instance of MongoVisitRepository.
func NewMongoVisitRepository(db *mongo.Database) *MongoVisitRepository {
	return &MongoVisitRepository{coll: db.Collection(VisitsCollection)}
}

func (r *MongoVisitRepository) Ensure(ctx context.Context) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": models.VisitKey},
		bson.M{"$setOnInsert": bson.M{"count": int64(0)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize visit counter: %w", err)
	}
	return nil
}

// Increment relies on $inc with upsert, which the server applies atomically
// per document.
func (r *MongoVisitRepository) Increment(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var visit models.Visit
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": models.VisitKey},
		bson.M{"$inc": bson.M{"count": int64(1)}},
		opts,
	).Decode(&visit)
	if err != nil {
		return 0, fmt.Errorf("failed to increment visit counter: %w", err)
	}
	return visit.Count, nil
}
