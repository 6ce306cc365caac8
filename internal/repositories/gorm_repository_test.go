package repositories_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"vogue/internal/database"
	"vogue/internal/models"
	"vogue/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite("file::memory:")
	require.NoError(t, err)
	return db
}

func TestGORMProductRepository_Find(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	products := []models.Product{
		{Title: "Linen_Shirt", Category: "men", CreatedAt: now.Add(-time.Hour)},
		{Title: "linenxshirt", Category: "men", CreatedAt: now.Add(-2 * time.Hour), IsTrending: true},
		{Title: "Old Coat", Category: "women", CreatedAt: now.Add(-96 * time.Hour), IsTrending: true},
	}
	for i := range products {
		products[i].Normalize()
		require.NoError(t, repo.Create(ctx, &products[i]))
		assert.NotEmpty(t, products[i].ID)
	}

	// "_" is matched literally, not as a wildcard.
	found, err := repo.Find(ctx, models.ProductQuery{Name: "n_s"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Linen_Shirt", found[0].Title)

	found, err = repo.Find(ctx, models.ProductQuery{TrendingOnly: true, NewestFirst: true})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "linenxshirt", found[0].Title)
	assert.Equal(t, "Old Coat", found[1].Title)

	found, err = repo.Find(ctx, models.ProductQuery{CreatedAfter: now.Add(-72 * time.Hour), NewestFirst: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Linen_Shirt", found[0].Title)

	found, err = repo.Find(ctx, models.ProductQuery{Category: "women", Name: "shirt"})
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.NotNil(t, found)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestGORMProductRepository_UpdateKeepsUnpatchedFields(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))
	ctx := context.Background()

	product := &models.Product{Title: "Shirt", Price: 20, Colors: []string{"red"}, Images: []string{"a.jpg"}}
	product.Normalize()
	require.NoError(t, repo.Create(ctx, product))

	title := "Oxford Shirt"
	colors := []string{"blue", "white"}
	updated, err := repo.Update(ctx, product.ID, models.ProductPatch{Title: &title, Colors: &colors})
	require.NoError(t, err)
	assert.Equal(t, "Oxford Shirt", updated.Title)
	assert.Equal(t, []string{"blue", "white"}, updated.Colors)
	assert.Equal(t, 20.0, updated.Price)
	assert.Equal(t, []string{"a.jpg"}, updated.Images)

	stored, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Title, stored.Title)
	assert.Equal(t, updated.Colors, stored.Colors)

	_, err = repo.Update(ctx, "missing", models.ProductPatch{Title: &title})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMProductRepository_UpdateWritesZeroValuesAndNeverRecreates(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))
	ctx := context.Background()

	product := &models.Product{Title: "Shirt", Price: 20, IsTrending: true, Sizes: []string{"M"}}
	product.Normalize()
	require.NoError(t, repo.Create(ctx, product))

	trending := false
	sizes := []string{}
	updated, err := repo.Update(ctx, product.ID, models.ProductPatch{IsTrending: &trending, Sizes: &sizes})
	require.NoError(t, err)
	assert.False(t, updated.IsTrending)
	assert.Equal(t, []string{}, updated.Sizes)
	assert.Equal(t, "Shirt", updated.Title)
	assert.Equal(t, 20.0, updated.Price)
	assert.False(t, updated.UpdatedAt.Before(product.UpdatedAt))

	require.NoError(t, repo.Delete(ctx, product.ID))
	title := "Ghost"
	_, err = repo.Update(ctx, product.ID, models.ProductPatch{Title: &title})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestGORMRepositories_DeleteMissing(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	assert.ErrorIs(t, repositories.NewGORMProductRepository(db).Delete(ctx, "missing"), repositories.ErrNotFound)
	assert.ErrorIs(t, repositories.NewGORMOfferRepository(db).Delete(ctx, "missing"), repositories.ErrNotFound)
	assert.ErrorIs(t, repositories.NewGORMReviewRepository(db).Delete(ctx, "missing"), repositories.ErrNotFound)

	_, err := repositories.NewGORMProductRepository(db).GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMVisitRepository_ConcurrentIncrements(t *testing.T) {
	repo := repositories.NewGORMVisitRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx))
	require.NoError(t, repo.Ensure(ctx)) // idempotent

	initial, err := repo.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), initial)

	const workers = 100
	var wg sync.WaitGroup
	counts := make(chan int64, workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := repo.Increment(ctx)
			if err != nil {
				errs <- err
				return
			}
			counts <- n
		}()
	}
	wg.Wait()
	close(counts)
	close(errs)

	for err := range errs {
		t.Fatalf("increment failed: %v", err)
	}
	seen := make(map[int64]bool)
	for n := range counts {
		assert.False(t, seen[n], "count %d returned twice", n)
		seen[n] = true
	}
	assert.Len(t, seen, workers)

	final, err := repo.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, initial+workers+1, final)
}

func TestGORMVisitRepository_IncrementCreatesMissingCounter(t *testing.T) {
	repo := repositories.NewGORMVisitRepository(openTestDB(t))

	n, err := repo.Increment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
