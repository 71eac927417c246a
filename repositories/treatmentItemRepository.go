package repositories

import (
	"MedBook/models"
	"MedBook/search"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// TreatmentItemRepository owns treatment item persistence; filtered listing
// goes through the query engine's item strategy table.
type TreatmentItemRepository struct {
	db     *gorm.DB
	engine *search.Engine
}

func NewTreatmentItemRepository(db *gorm.DB) *TreatmentItemRepository {
	return &TreatmentItemRepository{db: db, engine: search.NewEngine(db)}
}

func (r *TreatmentItemRepository) Create(ctx context.Context, item *models.TreatmentItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.ItemCategory{}, "item category", item.CategoryID); err != nil {
			return err
		}
		if err := requireExists(tx, &models.ItemType{}, "item type", item.TypeID); err != nil {
			return err
		}
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create treatment item: %w", err)
		}
		return nil
	})
}

func (r *TreatmentItemRepository) GetByID(ctx context.Context, id uint) (*models.TreatmentItem, error) {
	var item models.TreatmentItem
	err := r.db.WithContext(ctx).Preload("Reviews").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get treatment item: %w", err)
	}
	return &item, nil
}

func (r *TreatmentItemRepository) Search(ctx context.Context, criteria search.ItemCriteria) ([]models.TreatmentItem, error) {
	return r.engine.SearchItems(ctx, criteria)
}

// Update replaces the item's caller-editable fields. The derived average
// rating is owned by the review repository and never written here.
func (r *TreatmentItemRepository) Update(ctx context.Context, item *models.TreatmentItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.TreatmentItem{}, "treatment item", item.ID); err != nil {
			return err
		}
		if err := requireExists(tx, &models.ItemCategory{}, "item category", item.CategoryID); err != nil {
			return err
		}
		if err := requireExists(tx, &models.ItemType{}, "item type", item.TypeID); err != nil {
			return err
		}
		err := tx.Model(&models.TreatmentItem{}).
			Where("id = ?", item.ID).
			Select("title", "price", "description", "category_id", "type_id").
			Updates(item).Error
		if err != nil {
			return fmt.Errorf("failed to update treatment item: %w", err)
		}
		return nil
	})
}

// Delete removes the item together with its reviews and any record links
// pointing at those reviews.
func (r *TreatmentItemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reviewIDs []uint
		if err := tx.Model(&models.ItemReview{}).Where("item_id = ?", id).Pluck("id", &reviewIDs).Error; err != nil {
			return fmt.Errorf("failed to list item reviews: %w", err)
		}
		if len(reviewIDs) > 0 {
			if err := tx.Where("item_review_id IN ?", reviewIDs).Delete(&models.RecordReview{}).Error; err != nil {
				return fmt.Errorf("failed to delete record review links: %w", err)
			}
			if err := tx.Where("item_id = ?", id).Delete(&models.ItemReview{}).Error; err != nil {
				return fmt.Errorf("failed to delete item reviews: %w", err)
			}
		}
		if err := tx.Delete(&models.TreatmentItem{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete treatment item: %w", err)
		}
		return nil
	})
}
