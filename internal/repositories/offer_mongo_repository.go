package repositories

import (
	"context"
	"fmt"

	"vogue/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOfferRepository is a MongoDB implementation of OfferRepository.
type MongoOfferRepository struct {
	coll *mongo.Collection
}

// NewMongoOfferRepository creates a new instance of MongoOfferRepository.
func NewMongoOfferRepository(db *mongo.Database) *MongoOfferRepository {
	return &MongoOfferRepository{coll: db.Collection(OffersCollection)}
}

func (r *MongoOfferRepository) Create(ctx context.Context, offer *models.Offer) error {
	offer.ID = ""
	res, err := r.coll.InsertOne(ctx, offer)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	offer.ID = insertedID(res)
	return nil
}

func (r *MongoOfferRepository) GetAll(ctx context.Context) ([]models.Offer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to get all offers: %w", err)
	}
	offers := []models.Offer{}
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode offers: %w", err)
	}
	return offers, nil
}

func (r *MongoOfferRepository) Update(ctx context.Context, id, imageURL, description string) (*models.Offer, error) {
	filter, err := idFilter("offer", id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"imageUrl": imageURL, "description": description}}
	if description == "" {
		update = bson.M{
			"$set":   bson.M{"imageUrl": imageURL},
			"$unset": bson.M{"description": ""},
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var offer models.Offer
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&offer); err != nil {
		return nil, fmt.Errorf("failed to update offer %s: %w", id, notFound(err, "offer", id))
	}
	return &offer, nil
}

func (r *MongoOfferRepository) Delete(ctx context.Context, id string) error {
	filter, err := idFilter("offer", id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
