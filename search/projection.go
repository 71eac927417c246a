package search

// RecordFieldNames is the full serializable field set of a medical record,
// used to validate caller-supplied exclusion lists.
func RecordFieldNames() []string {
	return []string{"id", "title", "body", "patient_id", "diagnosis_id", "is_public", "created_at", "symptoms", "reviews"}
}

// ItemFieldNames is the full serializable field set of a treatment item.
func ItemFieldNames() []string {
	return []string{"id", "title", "price", "description", "category_id", "type_id", "average_rating", "created_at", "reviews"}
}

// AllowedFields validates an exclusion list against the full field set and
// returns the complement in the original order. It rejects an exclusion that
// removes the active sort field, and one that removes every field. Unknown
// excluded names are ignored.
func AllowedFields(all []string, excluded []string, sortField string) ([]string, error) {
	excludedSet := make(map[string]struct{}, len(excluded))
	for _, field := range excluded {
		excludedSet[field] = struct{}{}
	}
	if _, ok := excludedSet[sortField]; ok {
		return nil, &InvalidCriteriaError{Reason: "cannot exclude the active sort field", Fields: []string{sortField}}
	}
	allowed := make([]string, 0, len(all))
	for _, field := range all {
		if _, ok := excludedSet[field]; !ok {
			allowed = append(allowed, field)
		}
	}
	if len(allowed) == 0 {
		return nil, &InvalidCriteriaError{Reason: "exclusion list removes every field", Fields: excluded}
	}
	return allowed, nil
}
