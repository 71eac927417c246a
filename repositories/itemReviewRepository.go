package repositories

import (
	"MedBook/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ItemReviewRepository owns item review persistence. Every mutation runs in a
// transaction that also rewrites the owning item's average rating, so "review
// mutation commits" and "average rating reflects it" are never observable
// apart.
type ItemReviewRepository struct {
	db *gorm.DB
}

func NewItemReviewRepository(db *gorm.DB) *ItemReviewRepository {
	return &ItemReviewRepository{db: db}
}

func (r *ItemReviewRepository) Create(ctx context.Context, review *models.ItemReview) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.TreatmentItem{}, "treatment item", review.ItemID); err != nil {
			return err
		}
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create item review: %w", err)
		}
		return recomputeAverageRating(tx, review.ItemID)
	})
}

func (r *ItemReviewRepository) GetByID(ctx context.Context, id uint) (*models.ItemReview, error) {
	var review models.ItemReview
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item review: %w", err)
	}
	return &review, nil
}

func (r *ItemReviewRepository) GetAllByItem(ctx context.Context, itemID uint) ([]models.ItemReview, error) {
	var reviews []models.ItemReview
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get item reviews: %w", err)
	}
	return reviews, nil
}

// Update replaces the review's own fields. The owning item cannot change.
func (r *ItemReviewRepository) Update(ctx context.Context, review *models.ItemReview) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ItemReview
		if err := tx.First(&existing, "id = ?", review.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceNotFoundError{Kind: "item review", ID: fmt.Sprint(review.ID)}
			}
			return fmt.Errorf("failed to load item review: %w", err)
		}
		review.ItemID = existing.ItemID
		err := tx.Model(&models.ItemReview{}).
			Where("id = ?", review.ID).
			Select("is_helped", "rating", "usage_count", "usage_period").
			Updates(review).Error
		if err != nil {
			return fmt.Errorf("failed to update item review: %w", err)
		}
		return recomputeAverageRating(tx, existing.ItemID)
	})
}

func (r *ItemReviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ItemReview
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceNotFoundError{Kind: "item review", ID: fmt.Sprint(id)}
			}
			return fmt.Errorf("failed to load item review: %w", err)
		}
		if err := tx.Where("item_review_id = ?", id).Delete(&models.RecordReview{}).Error; err != nil {
			return fmt.Errorf("failed to delete record review links: %w", err)
		}
		if err := tx.Delete(&models.ItemReview{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete item review: %w", err)
		}
		return recomputeAverageRating(tx, existing.ItemID)
	})
}

// recomputeAverageRating rewrites treatment_item.average_rating from the
// current review set, NULL when the set is empty. Must run inside the same
// transaction as the review mutation that triggered it.
func recomputeAverageRating(tx *gorm.DB, itemID uint) error {
	var avg *float64
	err := tx.Model(&models.ItemReview{}).
		Where("item_id = ?", itemID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return fmt.Errorf("failed to compute average rating: %w", err)
	}
	err = tx.Model(&models.TreatmentItem{}).
		Where("id = ?", itemID).
		Update("average_rating", avg).Error
	if err != nil {
		return fmt.Errorf("failed to store average rating: %w", err)
	}
	return nil
}
