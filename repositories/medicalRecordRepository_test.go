package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"MedBook/models"
	"MedBook/search"
)

func seedRecordFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Patient{ID: "MP-000001", DisplayName: "anon-bluebird", Sex: "Female", DateOfBirth: "1984-03-12"}).Error)
	require.NoError(t, db.Create(&models.Diagnosis{ID: 1, Name: "Migraine"}).Error)
	require.NoError(t, db.Create(&models.Symptom{ID: 1, Name: "Headache"}).Error)
	require.NoError(t, db.Create(&models.Symptom{ID: 2, Name: "Nausea"}).Error)
	require.NoError(t, db.Create(&models.ItemCategory{ID: 1, Name: "Medication"}).Error)
	require.NoError(t, db.Create(&models.ItemType{ID: 1, Name: "Tablet"}).Error)
	require.NoError(t, db.Create(&models.TreatmentItem{ID: 1, Title: "Ibuprofen", CategoryID: 1, TypeID: 1}).Error)
	require.NoError(t, db.Create(&models.ItemReview{ID: 1, ItemID: 1, IsHelped: true, Rating: 6, UsageCount: 1}).Error)
}

func symptomLinkCount(t *testing.T, db *gorm.DB, recordID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.RecordSymptom{}).Where("medical_record_id = ?", recordID).Count(&count).Error)
	return count
}

func TestMedicalRecordCreate_WithInitialSets(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)
	ctx := context.Background()

	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1, IsPublic: true}
	require.NoError(t, repo.Create(ctx, &record, []uint{1, 2}, []uint{1}))

	stored, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Symptoms, 2)
	assert.Len(t, stored.Reviews, 1)
}

func TestMedicalRecordCreate_MissingPatient(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)

	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-999999", DiagnosisID: 1}
	err := repo.Create(context.Background(), &record, nil, nil)
	require.Error(t, err)

	var notFound *ReferenceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "patient", notFound.Kind)
}

func TestMedicalRecordCreate_MissingSymptomRollsBack(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)

	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1}
	err := repo.Create(context.Background(), &record, []uint{1, 42}, nil)
	require.Error(t, err)

	var notFound *ReferenceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "symptom", notFound.Kind)

	var count int64
	require.NoError(t, db.Model(&models.MedicalRecord{}).Count(&count).Error)
	assert.Zero(t, count, "nothing is persisted when a referenced id is missing")
}

func TestMedicalRecordGetByID_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := NewMedicalRecordRepository(db)

	record, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestMedicalRecordAddSymptom_Idempotent(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)
	ctx := context.Background()

	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1}
	require.NoError(t, repo.Create(ctx, &record, nil, nil))

	require.NoError(t, repo.AddSymptom(ctx, record.ID, 1))
	require.NoError(t, repo.AddSymptom(ctx, record.ID, 1))

	assert.EqualValues(t, 1, symptomLinkCount(t, db, record.ID))
}

func TestMedicalRecordRemoveSymptom_AbsentIsNoOp(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)
	ctx := context.Background()

	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1}
	require.NoError(t, repo.Create(ctx, &record, []uint{1}, nil))

	require.NoError(t, repo.RemoveSymptom(ctx, record.ID, 2))
	assert.EqualValues(t, 1, symptomLinkCount(t, db, record.ID))

	require.NoError(t, repo.RemoveSymptom(ctx, record.ID, 1))
	assert.Zero(t, symptomLinkCount(t, db, record.ID))
}

func TestMedicalRecordAddSymptom_MissingRecord(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)

	err := repo.AddSymptom(context.Background(), 42, 1)
	require.Error(t, err)

	var notFound *ReferenceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "medical record", notFound.Kind)
}

func TestMedicalRecordAddRemoveReview(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)
	ctx := context.Background()

	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1}
	require.NoError(t, repo.Create(ctx, &record, nil, nil))

	require.NoError(t, repo.AddReview(ctx, record.ID, 1))
	require.NoError(t, repo.AddReview(ctx, record.ID, 1))

	var links int64
	require.NoError(t, db.Model(&models.RecordReview{}).Where("medical_record_id = ?", record.ID).Count(&links).Error)
	assert.EqualValues(t, 1, links)

	require.NoError(t, repo.RemoveReview(ctx, record.ID, 1))
	require.NoError(t, db.Model(&models.RecordReview{}).Where("medical_record_id = ?", record.ID).Count(&links).Error)
	assert.Zero(t, links)
}

func TestMedicalRecordUpdate_ScalarFieldsOnly(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)
	ctx := context.Background()

	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1}
	require.NoError(t, repo.Create(ctx, &record, []uint{1}, nil))

	body := "updated body"
	updated := models.MedicalRecord{ID: record.ID, Title: "Spring flare, day 3", Body: &body, PatientID: "MP-000001", DiagnosisID: 1, IsPublic: true}
	require.NoError(t, repo.Update(ctx, &updated))

	stored, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Spring flare, day 3", stored.Title)
	require.NotNil(t, stored.Body)
	assert.Equal(t, "updated body", *stored.Body)
	assert.True(t, stored.IsPublic)
	assert.Len(t, stored.Symptoms, 1, "the symptom set is untouched by a scalar update")
}

func TestMedicalRecordDelete_RemovesLinks(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)
	ctx := context.Background()

	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1}
	require.NoError(t, repo.Create(ctx, &record, []uint{1, 2}, []uint{1}))

	require.NoError(t, repo.Delete(ctx, record.ID))

	stored, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Zero(t, symptomLinkCount(t, db, record.ID))
}

func TestMedicalRecordSearch_DelegatesToEngine(t *testing.T) {
	db := newTestDB(t)
	seedRecordFixture(t, db)
	repo := NewMedicalRecordRepository(db)
	ctx := context.Background()

	record := models.MedicalRecord{Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1, IsPublic: true}
	require.NoError(t, repo.Create(ctx, &record, []uint{1}, nil))

	isPublic := true
	records, err := repo.Search(ctx, search.RecordCriteria{IsPublic: &isPublic, SymptomIDs: []uint{1}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}
