package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string   { return &s }
func boolPtr(b bool) *bool      { return &b }
func uintPtr(u uint) *uint      { return &u }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestRecordCriteriaNormalize_DedupesIDSets(t *testing.T) {
	c := RecordCriteria{
		SymptomIDs: []uint{3, 1, 3, 2, 1},
		ItemIDs:    []uint{5, 5, 5},
	}
	c.Normalize()

	assert.Equal(t, []uint{3, 1, 2}, c.SymptomIDs, "duplicates removed, first occurrence order kept")
	assert.Equal(t, []uint{5}, c.ItemIDs)
}

func TestRecordCriteriaNormalize_ClearsAllMatchWithoutTags(t *testing.T) {
	c := RecordCriteria{MatchAllSymptoms: true}
	sig := c.Normalize()

	assert.False(t, c.MatchAllSymptoms)
	assert.False(t, sig.AllMatch)
	assert.False(t, sig.HasTags)
}

func TestRecordCriteriaNormalize_KeepsAllMatchWithTags(t *testing.T) {
	c := RecordCriteria{SymptomIDs: []uint{1, 2}, MatchAllSymptoms: true}
	sig := c.Normalize()

	assert.True(t, sig.HasTags)
	assert.True(t, sig.AllMatch)
}

func TestRecordCriteriaNormalize_DefaultsOrdering(t *testing.T) {
	c := RecordCriteria{}
	c.Normalize()

	assert.Equal(t, RecordSortID, c.SortField)
	assert.Equal(t, SortAsc, c.SortDirection)
}

func TestRecordCriteriaNormalize_SignatureReflectsPresence(t *testing.T) {
	c := RecordCriteria{
		PatientID:   strPtr("MP-000001"),
		IsPublic:    boolPtr(true),
		DiagnosisID: uintPtr(4),
		SymptomIDs:  []uint{1},
		ItemIDs:     []uint{2},
	}
	sig := c.Normalize()

	assert.Equal(t, Signature{
		HasOwner:     true,
		HasStatus:    true,
		HasDiagnosis: true,
		HasTags:      true,
		HasItems:     true,
	}, sig)
}

func TestItemCriteriaNormalize_Defaults(t *testing.T) {
	c := ItemCriteria{}
	sig := c.Normalize()

	assert.Equal(t, ItemSortTitle, c.SortField)
	assert.Equal(t, SortAsc, c.SortDirection)
	assert.Equal(t, ItemSignature{}, sig)
}

func TestItemCriteriaNormalize_Signature(t *testing.T) {
	c := ItemCriteria{CategoryID: uintPtr(1), HelpedOnly: true}
	sig := c.Normalize()

	assert.Equal(t, ItemSignature{HasCategory: true, HelpedOnly: true}, sig)
}
