package repositories

import (
	"context"
	"fmt"

	"vogue/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMVisitRepository is a GORM implementation of VisitRepository.
type GORMVisitRepository struct {
	db *gorm.DB
}

// NewGORMVisitRepository creates a new instance of GORMVisitRepository.
func NewGORMVisitRepository(db *gorm.DB) *GORMVisitRepository {
	return &GORMVisitRepository{db: db}
}

func (r *GORMVisitRepository) Ensure(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Visit{ID: models.VisitKey}).Error
	if err != nil {
		return fmt.Errorf("failed to initialize visit counter: %w", err)
	}
	return nil
}

// Increment bumps the counter in a single UPDATE ... RETURNING statement so
// concurrent callers never observe or write a stale count.
func (r *GORMVisitRepository) Increment(ctx context.Context) (int64, error) {
	visit, err := r.increment(ctx)
	if err != nil {
		return 0, err
	}
	if visit == nil {
		if err := r.Ensure(ctx); err != nil {
			return 0, err
		}
		if visit, err = r.increment(ctx); err != nil {
			return 0, err
		}
		if visit == nil {
			return 0, fmt.Errorf("visit counter: %w", ErrNotFound)
		}
	}
	return visit.Count, nil
}

func (r *GORMVisitRepository) increment(ctx context.Context) (*models.Visit, error) {
	var visit models.Visit
	res := r.db.WithContext(ctx).
		Model(&visit).
		Clauses(clause.Returning{}).
		Where("id = ?", models.VisitKey).
		UpdateColumn("count", gorm.Expr("count + ?", 1))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to increment visit counter: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &visit, nil
}
