package repositories

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used by the MongoDB repositories.
const (
	ProductsCollection = "products"
	OffersCollection   = "offers"
	ReviewsCollection  = "reviews"
	VisitsCollection   = "visits"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// idFilter builds an _id filter from a hex ObjectID. A malformed id cannot
// match any document and is reported as ErrNotFound.
func idFilter(kind, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s with ID %s: %w", kind, id, ErrNotFound)
	}
	return bson.M{"_id": oid}, nil
}

// insertedID returns the hex form of the id generated by InsertOne.
func insertedID(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}

func notFound(err error, kind, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s with ID %s: %w", kind, id, ErrNotFound)
	}
	return err
}
