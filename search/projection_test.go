package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedFields_ComplementKeepsOrder(t *testing.T) {
	allowed, err := AllowedFields(RecordFieldNames(), []string{"body", "reviews"}, "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "title", "patient_id", "diagnosis_id", "is_public", "created_at", "symptoms"}, allowed)
}

func TestAllowedFields_NoExclusionReturnsEverything(t *testing.T) {
	allowed, err := AllowedFields(ItemFieldNames(), nil, "title")
	require.NoError(t, err)
	assert.Equal(t, ItemFieldNames(), allowed)
}

func TestAllowedFields_RejectsExcludingSortField(t *testing.T) {
	_, err := AllowedFields(RecordFieldNames(), []string{"title"}, "title")
	require.Error(t, err)

	var invalid *InvalidCriteriaError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Fields, "title")
}

func TestAllowedFields_RejectsExcludingEverything(t *testing.T) {
	// The sort field check fires first, so sort by a name outside the set.
	_, err := AllowedFields([]string{"id", "title"}, []string{"id", "title"}, "created_at")
	require.Error(t, err)

	var invalid *InvalidCriteriaError
	assert.ErrorAs(t, err, &invalid)
}

func TestAllowedFields_IgnoresUnknownNames(t *testing.T) {
	allowed, err := AllowedFields([]string{"id", "title"}, []string{"no_such_field"}, "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "title"}, allowed)
}
