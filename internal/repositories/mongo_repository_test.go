package repositories

import (
	"testing"
	"time"

	"vogue/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductFilter(t *testing.T) {
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, bson.M{}, productFilter(models.ProductQuery{}))

	filter := productFilter(models.ProductQuery{
		Category:     "men",
		Name:         "t-shirt (xl)",
		TrendingOnly: true,
		CreatedAfter: since,
	})
	assert.Equal(t, bson.M{
		"category":   "men",
		"title":      primitive.Regex{Pattern: `t-shirt \(xl\)`, Options: "i"},
		"isTrending": true,
		"createdAt":  bson.M{"$gte": since},
	}, filter)
}

func TestIDFilter(t *testing.T) {
	oid := primitive.NewObjectID()

	filter, err := idFilter("product", oid.Hex())
	assert.NoError(t, err)
	assert.Equal(t, bson.M{"_id": oid}, filter)

	_, err = idFilter("product", "not-an-object-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
