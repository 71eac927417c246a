package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MedBook/models"
	"MedBook/search"
)

func TestValidatePatient(t *testing.T) {
	valid := models.Patient{DisplayName: "anon-bluebird", Sex: "Female", DateOfBirth: "1984-03-12", Email: "someone@example.com"}
	assert.NoError(t, ValidatePatient(valid))

	missingName := valid
	missingName.DisplayName = ""
	assert.Error(t, ValidatePatient(missingName))

	badSex := valid
	badSex.Sex = "unknown"
	assert.Error(t, ValidatePatient(badSex))

	badDate := valid
	badDate.DateOfBirth = "12/03/1984"
	assert.Error(t, ValidatePatient(badDate))

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, ValidatePatient(badEmail))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Migraine"))
	assert.Error(t, ValidateName(""))
}

func TestValidateItemReview_RatingStep(t *testing.T) {
	cases := []struct {
		name   string
		rating float64
		valid  bool
	}{
		{"whole point", 6, true},
		{"half point", 6.5, true},
		{"lower bound", 1, true},
		{"upper bound", 10, true},
		{"off step", 6.3, false},
		{"below range", 0.5, false},
		{"above range", 10.5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			review := models.ItemReview{ItemID: 1, Rating: tc.rating, UsageCount: 1}
			err := ValidateItemReview(review)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateItemReview_UsageCount(t *testing.T) {
	review := models.ItemReview{ItemID: 1, Rating: 6, UsageCount: 0}
	assert.Error(t, ValidateItemReview(review))

	review.UsageCount = 1
	assert.NoError(t, ValidateItemReview(review))
}

func TestValidateTreatmentItem(t *testing.T) {
	price := 12.5
	item := models.TreatmentItem{Title: "Ibuprofen", Price: &price, CategoryID: 1, TypeID: 1}
	assert.NoError(t, ValidateTreatmentItem(item))

	negative := -1.0
	item.Price = &negative
	assert.Error(t, ValidateTreatmentItem(item))

	item.Price = nil
	assert.NoError(t, ValidateTreatmentItem(item), "price is optional")

	item.Title = ""
	assert.Error(t, ValidateTreatmentItem(item))
}

func TestValidateMedicalRecord(t *testing.T) {
	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1}
	assert.NoError(t, ValidateMedicalRecord(record))

	record.Title = ""
	assert.Error(t, ValidateMedicalRecord(record))
}

func TestValidateRecordCriteria(t *testing.T) {
	assert.NoError(t, ValidateRecordCriteria(search.RecordCriteria{}), "empty criteria are valid before normalization")

	valid := search.RecordCriteria{SortField: search.RecordSortTitle, SortDirection: search.SortDesc}
	assert.NoError(t, ValidateRecordCriteria(valid))

	badField := search.RecordCriteria{SortField: "bogus"}
	require.Error(t, ValidateRecordCriteria(badField))

	badDirection := search.RecordCriteria{SortDirection: "sideways"}
	require.Error(t, ValidateRecordCriteria(badDirection))

	zero := 0
	badLimit := search.RecordCriteria{Limit: &zero}
	assert.Error(t, ValidateRecordCriteria(badLimit))

	negative := -1
	badOffset := search.RecordCriteria{Offset: &negative}
	assert.Error(t, ValidateRecordCriteria(badOffset))

	okOffset := search.RecordCriteria{Offset: &zero}
	assert.NoError(t, ValidateRecordCriteria(okOffset), "offset zero is the lower bound")
}

func TestValidateItemCriteria(t *testing.T) {
	valid := search.ItemCriteria{SortField: search.ItemSortAverageRating, SortDirection: search.SortAsc}
	assert.NoError(t, ValidateItemCriteria(valid))

	badField := search.ItemCriteria{SortField: "bogus"}
	assert.Error(t, ValidateItemCriteria(badField))

	zero := 0
	badLimit := search.ItemCriteria{Limit: &zero}
	assert.Error(t, ValidateItemCriteria(badLimit), "a zero limit is below the minimum of one")

	one := 1
	okLimit := search.ItemCriteria{Limit: &one}
	assert.NoError(t, ValidateItemCriteria(okLimit))
}
