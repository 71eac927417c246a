package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"MedBook/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Patient{},
		&models.Diagnosis{},
		&models.Symptom{},
		&models.ItemCategory{},
		&models.ItemType{},
		&models.TreatmentItem{},
		&models.ItemReview{},
		&models.MedicalRecord{},
		&models.RecordSymptom{},
		&models.RecordReview{},
	))
	return db
}

func seedItem(t *testing.T, db *gorm.DB) models.TreatmentItem {
	t.Helper()
	require.NoError(t, db.Create(&models.ItemCategory{ID: 1, Name: "Medication"}).Error)
	require.NoError(t, db.Create(&models.ItemType{ID: 1, Name: "Tablet"}).Error)
	item := models.TreatmentItem{ID: 1, Title: "Ibuprofen", CategoryID: 1, TypeID: 1}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func averageRatingOf(t *testing.T, db *gorm.DB, itemID uint) *float64 {
	t.Helper()
	var item models.TreatmentItem
	require.NoError(t, db.First(&item, "id = ?", itemID).Error)
	return item.AverageRating
}

func TestItemReviewCreate_RecomputesAverage(t *testing.T) {
	db := newTestDB(t)
	seedItem(t, db)
	repo := NewItemReviewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.ItemReview{ItemID: 1, Rating: 6, UsageCount: 1}))
	require.NoError(t, repo.Create(ctx, &models.ItemReview{ItemID: 1, Rating: 7, UsageCount: 2}))

	avg := averageRatingOf(t, db, 1)
	require.NotNil(t, avg)
	assert.InDelta(t, 6.5, *avg, 1e-9)

	require.NoError(t, repo.Create(ctx, &models.ItemReview{ItemID: 1, Rating: 8, UsageCount: 1}))

	avg = averageRatingOf(t, db, 1)
	require.NotNil(t, avg)
	assert.InDelta(t, 7.0, *avg, 1e-9)
}

func TestItemReviewCreate_MissingItem(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemReviewRepository(db)

	err := repo.Create(context.Background(), &models.ItemReview{ItemID: 42, Rating: 6, UsageCount: 1})
	require.Error(t, err)

	var notFound *ReferenceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "treatment item", notFound.Kind)
}

func TestItemReviewUpdate_RecomputesAverage(t *testing.T) {
	db := newTestDB(t)
	seedItem(t, db)
	repo := NewItemReviewRepository(db)
	ctx := context.Background()

	review := models.ItemReview{ItemID: 1, Rating: 6, UsageCount: 1}
	require.NoError(t, repo.Create(ctx, &review))
	require.NoError(t, repo.Create(ctx, &models.ItemReview{ItemID: 1, Rating: 8, UsageCount: 1}))

	review.Rating = 4
	require.NoError(t, repo.Update(ctx, &review))

	avg := averageRatingOf(t, db, 1)
	require.NotNil(t, avg)
	assert.InDelta(t, 6.0, *avg, 1e-9)
}

func TestItemReviewUpdate_OwningItemIsPinned(t *testing.T) {
	db := newTestDB(t)
	seedItem(t, db)
	other := models.TreatmentItem{ID: 2, Title: "Paracetamol", CategoryID: 1, TypeID: 1}
	require.NoError(t, db.Create(&other).Error)

	repo := NewItemReviewRepository(db)
	ctx := context.Background()

	review := models.ItemReview{ItemID: 1, Rating: 6, UsageCount: 1}
	require.NoError(t, repo.Create(ctx, &review))

	review.ItemID = 2
	require.NoError(t, repo.Update(ctx, &review))

	var stored models.ItemReview
	require.NoError(t, db.First(&stored, "id = ?", review.ID).Error)
	assert.Equal(t, uint(1), stored.ItemID, "a review cannot move to another item")
	assert.Nil(t, averageRatingOf(t, db, 2))
}

func TestItemReviewDelete_LastReviewClearsAverage(t *testing.T) {
	db := newTestDB(t)
	seedItem(t, db)
	repo := NewItemReviewRepository(db)
	ctx := context.Background()

	review := models.ItemReview{ItemID: 1, Rating: 6, UsageCount: 1}
	require.NoError(t, repo.Create(ctx, &review))
	require.NotNil(t, averageRatingOf(t, db, 1))

	require.NoError(t, repo.Delete(ctx, review.ID))
	assert.Nil(t, averageRatingOf(t, db, 1), "average returns to NULL when the review set empties")
}

func TestItemReviewDelete_RemovesRecordLinks(t *testing.T) {
	db := newTestDB(t)
	seedItem(t, db)
	repo := NewItemReviewRepository(db)
	ctx := context.Background()

	review := models.ItemReview{ItemID: 1, Rating: 6, UsageCount: 1}
	require.NoError(t, repo.Create(ctx, &review))

	require.NoError(t, db.Create(&models.Patient{ID: "MP-000001", DisplayName: "anon-bluebird", Sex: "Female", DateOfBirth: "1984-03-12"}).Error)
	require.NoError(t, db.Create(&models.Diagnosis{ID: 1, Name: "Migraine"}).Error)
	require.NoError(t, db.Create(&models.MedicalRecord{ID: 1, Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1}).Error)
	require.NoError(t, db.Create(&models.RecordReview{MedicalRecordID: 1, ItemReviewID: review.ID}).Error)

	require.NoError(t, repo.Delete(ctx, review.ID))

	var links int64
	require.NoError(t, db.Model(&models.RecordReview{}).Where("item_review_id = ?", review.ID).Count(&links).Error)
	assert.Zero(t, links)
}

func TestItemReviewDelete_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemReviewRepository(db)

	err := repo.Delete(context.Background(), 42)
	require.Error(t, err)

	var notFound *ReferenceNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
