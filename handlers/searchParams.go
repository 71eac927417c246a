package handlers

import (
	"MedBook/search"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseRecordCriteria reads the medical record search criteria from the query
// string. It returns the criteria together with the caller-supplied field
// exclusion list.
func parseRecordCriteria(c *gin.Context) (search.RecordCriteria, []string, error) {
	var criteria search.RecordCriteria

	if v := c.Query("patient_id"); v != "" {
		criteria.PatientID = &v
	}
	if v := c.Query("is_public"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return criteria, nil, badQueryParam("is_public")
		}
		criteria.IsPublic = &b
	}
	if v := c.Query("diagnosis_id"); v != "" {
		id, err := parseID(v)
		if err != nil {
			return criteria, nil, badQueryParam("diagnosis_id")
		}
		criteria.DiagnosisID = &id
	}
	symptomIDs, err := parseIDList(c.Query("symptom_ids"))
	if err != nil {
		return criteria, nil, badQueryParam("symptom_ids")
	}
	criteria.SymptomIDs = symptomIDs
	if v := c.Query("match_all"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return criteria, nil, badQueryParam("match_all")
		}
		criteria.MatchAllSymptoms = b
	}
	itemIDs, err := parseIDList(c.Query("item_ids"))
	if err != nil {
		return criteria, nil, badQueryParam("item_ids")
	}
	criteria.ItemIDs = itemIDs

	criteria.SortField = search.RecordSortField(c.DefaultQuery("sort_field", string(search.RecordSortID)))
	criteria.SortDirection = search.SortDirection(c.DefaultQuery("sort_direction", string(search.SortAsc)))

	if criteria.Limit, err = parseOptionalInt(c.Query("limit")); err != nil {
		return criteria, nil, badQueryParam("limit")
	}
	if criteria.Offset, err = parseOptionalInt(c.Query("offset")); err != nil {
		return criteria, nil, badQueryParam("offset")
	}
	if criteria.WithSymptoms, err = parseFlag(c.Query("with_symptoms")); err != nil {
		return criteria, nil, badQueryParam("with_symptoms")
	}
	if criteria.WithReviews, err = parseFlag(c.Query("with_reviews")); err != nil {
		return criteria, nil, badQueryParam("with_reviews")
	}

	return criteria, splitList(c.Query("exclude_fields")), nil
}

// parseItemCriteria reads the treatment item search criteria from the query
// string.
func parseItemCriteria(c *gin.Context) (search.ItemCriteria, []string, error) {
	var criteria search.ItemCriteria
	var err error

	if v := c.Query("category_id"); v != "" {
		id, err := parseID(v)
		if err != nil {
			return criteria, nil, badQueryParam("category_id")
		}
		criteria.CategoryID = &id
	}
	if v := c.Query("type_id"); v != "" {
		id, err := parseID(v)
		if err != nil {
			return criteria, nil, badQueryParam("type_id")
		}
		criteria.TypeID = &id
	}
	if criteria.HelpedOnly, err = parseFlag(c.Query("helped_only")); err != nil {
		return criteria, nil, badQueryParam("helped_only")
	}

	criteria.SortField = search.ItemSortField(c.DefaultQuery("sort_field", string(search.ItemSortTitle)))
	criteria.SortDirection = search.SortDirection(c.DefaultQuery("sort_direction", string(search.SortAsc)))

	if criteria.Limit, err = parseOptionalInt(c.Query("limit")); err != nil {
		return criteria, nil, badQueryParam("limit")
	}
	if criteria.Offset, err = parseOptionalInt(c.Query("offset")); err != nil {
		return criteria, nil, badQueryParam("offset")
	}
	if criteria.WithReviews, err = parseFlag(c.Query("with_reviews")); err != nil {
		return criteria, nil, badQueryParam("with_reviews")
	}

	return criteria, splitList(c.Query("exclude_fields")), nil
}

func badQueryParam(name string) error {
	return &search.InvalidCriteriaError{Reason: "invalid query parameter", Fields: []string{name}}
}

func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseIDList(value string) ([]uint, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := parseID(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseFlag(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}
