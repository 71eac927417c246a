package search

import (
	"fmt"

	"gorm.io/gorm"
)

// Record query appliers. Each one folds a single predicate into the query;
// the strategy decides which are applied and in what order.

func filterOwner(q *gorm.DB, c *RecordCriteria) *gorm.DB {
	return q.Where("medical_record.patient_id = ?", *c.PatientID)
}

func filterStatus(q *gorm.DB, c *RecordCriteria) *gorm.DB {
	return q.Where("medical_record.is_public = ?", *c.IsPublic)
}

func filterDiagnosis(q *gorm.DB, c *RecordCriteria) *gorm.DB {
	return q.Where("medical_record.diagnosis_id = ?", *c.DiagnosisID)
}

func filterItemMembership(q *gorm.DB, c *RecordCriteria) *gorm.DB {
	return q.
		Joins("JOIN record_reviews ON record_reviews.medical_record_id = medical_record.id").
		Joins("JOIN item_review ON item_review.id = record_reviews.item_review_id").
		Where("item_review.item_id IN ?", c.ItemIDs)
}

func filterTagMembership(q *gorm.DB, c *RecordCriteria) *gorm.DB {
	return q.
		Joins("JOIN record_symptoms ON record_symptoms.medical_record_id = medical_record.id").
		Where("record_symptoms.symptom_id IN ?", c.SymptomIDs)
}

func groupByRoot(q *gorm.DB, _ *RecordCriteria) *gorm.DB {
	return q.Group("medical_record.id")
}

// havingAllTags keeps only roots whose distinct matched tag count equals the
// requested set size, which is subset containment. A plain join+filter would
// express ANY, not ALL.
func havingAllTags(q *gorm.DB, c *RecordCriteria) *gorm.DB {
	return q.Having("COUNT(DISTINCT record_symptoms.symptom_id) = ?", len(c.SymptomIDs))
}

// Treatment item query appliers.

func filterCategory(q *gorm.DB, c *ItemCriteria) *gorm.DB {
	return q.Where("treatment_item.category_id = ?", *c.CategoryID)
}

func filterType(q *gorm.DB, c *ItemCriteria) *gorm.DB {
	return q.Where("treatment_item.type_id = ?", *c.TypeID)
}

// filterHelpedOnly keeps items with at least one review marked as helped; the
// fan-out join collapses back onto the item id.
func filterHelpedOnly(q *gorm.DB, _ *ItemCriteria) *gorm.DB {
	return q.
		Joins("JOIN item_review ON item_review.item_id = treatment_item.id").
		Where("item_review.is_helped = ?", true).
		Group("treatment_item.id")
}

// Ordering. Sort fields map to columns through a closed table so no caller
// input ever reaches the ORDER BY clause verbatim; nullable columns sort
// NULLS LAST in both directions, and the root id breaks ties so pagination
// stays deterministic.

type sortColumn struct {
	column   string
	nullable bool
}

var recordSortColumns = map[RecordSortField]sortColumn{
	RecordSortID:        {column: "medical_record.id"},
	RecordSortTitle:     {column: "medical_record.title"},
	RecordSortBody:      {column: "medical_record.body", nullable: true},
	RecordSortCreatedAt: {column: "medical_record.created_at"},
}

var itemSortColumns = map[ItemSortField]sortColumn{
	ItemSortTitle:         {column: "treatment_item.title"},
	ItemSortPrice:         {column: "treatment_item.price", nullable: true},
	ItemSortAverageRating: {column: "treatment_item.average_rating", nullable: true},
	ItemSortCreatedAt:     {column: "treatment_item.created_at"},
}

func applyRecordOrder(q *gorm.DB, c *RecordCriteria) (*gorm.DB, error) {
	col, ok := recordSortColumns[c.SortField]
	if !ok {
		return nil, &InvalidCriteriaError{Reason: "unknown sort field", Fields: []string{string(c.SortField)}}
	}
	return applyOrder(q, col, c.SortDirection, "medical_record.id")
}

func applyItemOrder(q *gorm.DB, c *ItemCriteria) (*gorm.DB, error) {
	col, ok := itemSortColumns[c.SortField]
	if !ok {
		return nil, &InvalidCriteriaError{Reason: "unknown sort field", Fields: []string{string(c.SortField)}}
	}
	return applyOrder(q, col, c.SortDirection, "treatment_item.id")
}

func applyOrder(q *gorm.DB, col sortColumn, direction SortDirection, tiebreak string) (*gorm.DB, error) {
	var dir string
	switch direction {
	case SortAsc:
		dir = "ASC"
	case SortDesc:
		dir = "DESC"
	default:
		return nil, &InvalidCriteriaError{Reason: "unknown sort direction", Fields: []string{string(direction)}}
	}
	expr := fmt.Sprintf("%s %s", col.column, dir)
	if col.nullable {
		expr += " NULLS LAST"
	}
	q = q.Order(expr)
	if col.column != tiebreak {
		q = q.Order(tiebreak + " ASC")
	}
	return q, nil
}

// applyPagination adds limit/offset strictly after the ordering is fixed.
func applyPagination(q *gorm.DB, limit, offset *int) *gorm.DB {
	if limit != nil {
		q = q.Limit(*limit)
	}
	if offset != nil {
		q = q.Offset(*offset)
	}
	return q
}
