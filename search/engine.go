package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"MedBook/models"
)

// Engine resolves an arbitrary combination of optional search criteria into a
// single relational query: select the strategy for the criteria's signature,
// fold its appliers over a base query, fix the ordering, then paginate.
// Nested collections are attached through a second, keyed, unpaginated fetch
// (GORM preload), never through a join that could multiply or reorder the
// paginated root rows. The engine holds no cross-call state.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// SearchRecords returns the ordered, deduplicated medical records matching the
// criteria. Unknown ids in filters simply match nothing.
func (e *Engine) SearchRecords(ctx context.Context, criteria RecordCriteria) ([]models.MedicalRecord, error) {
	sig := criteria.Normalize()
	strategy, err := SelectRecordStrategy(sig)
	if err != nil {
		return nil, err
	}

	q := e.db.WithContext(ctx).Model(&models.MedicalRecord{}).Select("medical_record.*")
	for _, apply := range strategy.appliers {
		q = apply(q, &criteria)
	}
	q, err = applyRecordOrder(q, &criteria)
	if err != nil {
		return nil, err
	}
	q = applyPagination(q, criteria.Limit, criteria.Offset)

	if criteria.WithSymptoms {
		q = q.Preload("Symptoms")
	}
	if criteria.WithReviews {
		q = q.Preload("Reviews")
	}

	var records []models.MedicalRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to search medical records: %w", err)
	}
	return records, nil
}

// SearchItems returns the ordered treatment items matching the criteria.
func (e *Engine) SearchItems(ctx context.Context, criteria ItemCriteria) ([]models.TreatmentItem, error) {
	sig := criteria.Normalize()
	strategy, err := SelectItemStrategy(sig)
	if err != nil {
		return nil, err
	}

	q := e.db.WithContext(ctx).Model(&models.TreatmentItem{}).Select("treatment_item.*")
	for _, apply := range strategy.appliers {
		q = apply(q, &criteria)
	}
	q, err = applyItemOrder(q, &criteria)
	if err != nil {
		return nil, err
	}
	q = applyPagination(q, criteria.Limit, criteria.Offset)

	if criteria.WithReviews {
		q = q.Preload("Reviews")
	}

	var items []models.TreatmentItem
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to search treatment items: %w", err)
	}
	return items, nil
}
