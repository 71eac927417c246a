package utils

import (
	"MedBook/models"
	"MedBook/search"
	"errors"
	"fmt"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrRatingStep    = errors.New("rating must be between 1 and 10 in 0.5 increments")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// ValidatePatient validates patient data using ozzo-validation.
func ValidatePatient(patient models.Patient) error {
	return validation.ValidateStruct(&patient,
		validation.Field(&patient.DisplayName, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.Sex, validation.Required, validation.In("Male", "Female", "Other")),
		validation.Field(&patient.DateOfBirth, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&patient.Email, is.Email),
	)
}

// ValidateName validates the name of a reference entity (diagnosis, symptom,
// item category, item type).
func ValidateName(name string) error {
	return validation.Validate(name, validation.Required.Error("name cannot be blank"), validation.Length(1, 100))
}

// ValidateTreatmentItem validates treatment item data.
func ValidateTreatmentItem(item models.TreatmentItem) error {
	return validation.ValidateStruct(&item,
		validation.Field(&item.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&item.Price, validation.By(validatePrice)),
		validation.Field(&item.CategoryID, validation.Required),
		validation.Field(&item.TypeID, validation.Required),
	)
}

// ValidateItemReview validates review data: rating bounded to 1-10 in half
// point steps, usage count at least 1.
func ValidateItemReview(review models.ItemReview) error {
	return validation.ValidateStruct(&review,
		validation.Field(&review.Rating, validation.Required, validation.By(validateRating)),
		validation.Field(&review.UsageCount, validation.Required, validation.Min(1)),
	)
}

// ValidateMedicalRecord validates medical record data.
func ValidateMedicalRecord(record models.MedicalRecord) error {
	return validation.ValidateStruct(&record,
		validation.Field(&record.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&record.PatientID, validation.Required),
		validation.Field(&record.DiagnosisID, validation.Required),
	)
}

// ValidateRecordCriteria checks the bounds and enums of a record search before
// it reaches the query engine, so an invalid sort field or direction is
// rejected at the input boundary.
func ValidateRecordCriteria(criteria search.RecordCriteria) error {
	return validation.Errors{
		"sort_field": validation.Validate(string(criteria.SortField),
			validation.In(string(search.RecordSortID), string(search.RecordSortTitle), string(search.RecordSortBody), string(search.RecordSortCreatedAt))),
		"sort_direction": validation.Validate(string(criteria.SortDirection),
			validation.In(string(search.SortAsc), string(search.SortDesc))),
		"limit":  validateOptionalMin(criteria.Limit, 1),
		"offset": validateOptionalMin(criteria.Offset, 0),
	}.Filter()
}

// ValidateItemCriteria is the treatment item counterpart of
// ValidateRecordCriteria.
func ValidateItemCriteria(criteria search.ItemCriteria) error {
	return validation.Errors{
		"sort_field": validation.Validate(string(criteria.SortField),
			validation.In(string(search.ItemSortTitle), string(search.ItemSortPrice), string(search.ItemSortAverageRating), string(search.ItemSortCreatedAt))),
		"sort_direction": validation.Validate(string(criteria.SortDirection),
			validation.In(string(search.SortAsc), string(search.SortDesc))),
		"limit":  validateOptionalMin(criteria.Limit, 1),
		"offset": validateOptionalMin(criteria.Offset, 0),
	}.Filter()
}

// validateOptionalMin bounds an optional int. Compared by hand because ozzo
// treats a zero int as empty and would wave a zero limit through.
func validateOptionalMin(value *int, min int) error {
	if value == nil {
		return nil
	}
	if *value < min {
		return fmt.Errorf("must be no less than %d", min)
	}
	return nil
}

// validateRating checks the rating bounds and the half point step.
func validateRating(value interface{}) error {
	rating, _ := value.(float64)
	if rating < 1 || rating > 10 {
		return ErrRatingStep
	}
	doubled := rating * 2
	if math.Abs(doubled-math.Round(doubled)) > 1e-9 {
		return ErrRatingStep
	}
	return nil
}

func validatePrice(value interface{}) error {
	price, ok := value.(*float64)
	if !ok || price == nil {
		return nil
	}
	if *price < 0 {
		return ErrNegativePrice
	}
	return nil
}
