package repositories

import (
	"context"
	"testing"

	"vogue/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockMongo(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestMongoProductRepository(t *testing.T) {
	mt := newMockMongo(t)
	ctx := context.Background()
	ns := "db." + ProductsCollection

	mt.Run("create returns the generated id as hex", func(mt *mtest.T) {
		repo := NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		product := &models.Product{ID: "client-id", Title: "Shirt"}
		product.Normalize()
		require.NoError(mt, repo.Create(ctx, product))

		oid, err := primitive.ObjectIDFromHex(product.ID)
		require.NoError(mt, err)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, oid, cmd.Lookup("documents", "0", "_id").ObjectID())
		assert.Equal(mt, "Shirt", cmd.Lookup("documents", "0", "title").StringValue())
	})

	mt.Run("get decodes the object id into a hex string", func(mt *mtest.T) {
		repo := NewMongoProductRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "title", Value: "Shirt"},
			{Key: "images", Value: bson.A{"a.jpg"}},
			{Key: "isTrending", Value: true},
		}))

		product, err := repo.GetByID(ctx, oid.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), product.ID)
		assert.Equal(mt, "Shirt", product.Title)
		assert.Equal(mt, []string{"a.jpg"}, product.Images)
		assert.True(mt, product.IsTrending)
	})

	mt.Run("get unknown id", func(mt *mtest.T) {
		repo := NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("find sends filter sort and limit", func(mt *mtest.T) {
		repo := NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "A"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "B"}},
		))

		products, err := repo.Find(ctx, models.ProductQuery{Category: "men", NewestFirst: true, Limit: 6})
		require.NoError(mt, err)
		require.Len(mt, products, 2)
		assert.Equal(mt, "A", products[0].Title)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, "men", cmd.Lookup("filter", "category").StringValue())
		assert.Equal(mt, int64(-1), cmd.Lookup("sort", "createdAt").AsInt64())
		assert.Equal(mt, int64(6), cmd.Lookup("limit").AsInt64())
	})

	mt.Run("update sets only patched fields and returns the new document", func(mt *mtest.T) {
		repo := NewMongoProductRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: oid},
			{Key: "title", Value: "Oxford Shirt"},
			{Key: "price", Value: 20.0},
		}}))

		title := "Oxford Shirt"
		product, err := repo.Update(ctx, oid.Hex(), models.ProductPatch{Title: &title})
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), product.ID)
		assert.Equal(mt, "Oxford Shirt", product.Title)
		assert.Equal(mt, 20.0, product.Price)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, oid, cmd.Lookup("query", "_id").ObjectID())
		assert.True(mt, cmd.Lookup("new").Boolean())
		assert.Equal(mt, "Oxford Shirt", cmd.Lookup("update", "$set", "title").StringValue())
		_, err = cmd.LookupErr("update", "$set", "updatedAt")
		assert.NoError(mt, err)
		_, err = cmd.LookupErr("update", "$set", "price")
		assert.Error(mt, err)
	})

	mt.Run("update unknown id", func(mt *mtest.T) {
		repo := NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		title := "Ghost"
		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), models.ProductPatch{Title: &title})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete unknown id", func(mt *mtest.T) {
		repo := NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		assert.ErrorIs(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()), ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		assert.NoError(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()))
	})

	mt.Run("malformed id never reaches the server", func(mt *mtest.T) {
		repo := NewMongoProductRepository(mt.DB)

		_, err := repo.GetByID(ctx, "not-an-object-id")
		assert.ErrorIs(mt, err, ErrNotFound)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestMongoOfferRepository_Update(t *testing.T) {
	mt := newMockMongo(t)
	ctx := context.Background()

	mt.Run("with description", func(mt *mtest.T) {
		repo := NewMongoOfferRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: oid},
			{Key: "imageUrl", Value: "b.jpg"},
			{Key: "description", Value: "Sale"},
		}}))

		offer, err := repo.Update(ctx, oid.Hex(), "b.jpg", "Sale")
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), offer.ID)
		assert.Equal(mt, "Sale", offer.Description)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, "Sale", cmd.Lookup("update", "$set", "description").StringValue())
		_, err = cmd.LookupErr("update", "$unset")
		assert.Error(mt, err)
	})

	mt.Run("empty description is unset", func(mt *mtest.T) {
		repo := NewMongoOfferRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: oid},
			{Key: "imageUrl", Value: "b.jpg"},
		}}))

		offer, err := repo.Update(ctx, oid.Hex(), "b.jpg", "")
		require.NoError(mt, err)
		assert.Empty(mt, offer.Description)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, "b.jpg", cmd.Lookup("update", "$set", "imageUrl").StringValue())
		_, err = cmd.LookupErr("update", "$set", "description")
		assert.Error(mt, err)
		_, err = cmd.LookupErr("update", "$unset", "description")
		assert.NoError(mt, err)
	})

	mt.Run("unknown id", func(mt *mtest.T) {
		repo := NewMongoOfferRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), "b.jpg", "")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoReviewRepository_DeleteMissing(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("delete unknown id", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoVisitRepository(t *testing.T) {
	mt := newMockMongo(t)
	ctx := context.Background()

	mt.Run("increment upserts and returns the new count", func(mt *mtest.T) {
		repo := NewMongoVisitRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: models.VisitKey},
			{Key: "count", Value: int64(42)},
		}}))

		n, err := repo.Increment(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, int64(42), n)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, models.VisitKey, cmd.Lookup("query", "_id").StringValue())
		assert.Equal(mt, int64(1), cmd.Lookup("update", "$inc", "count").AsInt64())
		assert.True(mt, cmd.Lookup("upsert").Boolean())
		assert.True(mt, cmd.Lookup("new").Boolean())
	})

	mt.Run("ensure only sets the count on insert", func(mt *mtest.T) {
		repo := NewMongoVisitRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		require.NoError(mt, repo.Ensure(ctx))

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, models.VisitKey, cmd.Lookup("updates", "0", "q", "_id").StringValue())
		assert.Equal(mt, int64(0), cmd.Lookup("updates", "0", "u", "$setOnInsert", "count").AsInt64())
		assert.True(mt, cmd.Lookup("updates", "0", "upsert").Boolean())
	})
}
