package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MedBook/models"
)

func TestTreatmentItemCreate_MissingCategory(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.ItemType{ID: 1, Name: "Tablet"}).Error)
	repo := NewTreatmentItemRepository(db)

	item := models.TreatmentItem{Title: "Ibuprofen", CategoryID: 42, TypeID: 1}
	err := repo.Create(context.Background(), &item)
	require.Error(t, err)

	var notFound *ReferenceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "item category", notFound.Kind)
}

func TestTreatmentItemUpdate_NeverTouchesAverageRating(t *testing.T) {
	db := newTestDB(t)
	seedItem(t, db)
	reviewRepo := NewItemReviewRepository(db)
	itemRepo := NewTreatmentItemRepository(db)
	ctx := context.Background()

	require.NoError(t, reviewRepo.Create(ctx, &models.ItemReview{ItemID: 1, Rating: 6, UsageCount: 1}))

	price := 12.5
	rating := 9.9
	update := models.TreatmentItem{ID: 1, Title: "Ibuprofen 400mg", Price: &price, CategoryID: 1, TypeID: 1, AverageRating: &rating}
	require.NoError(t, itemRepo.Update(ctx, &update))

	stored, err := itemRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Ibuprofen 400mg", stored.Title)
	require.NotNil(t, stored.AverageRating)
	assert.InDelta(t, 6.0, *stored.AverageRating, 1e-9, "the derived rating survives a caller update")
}

func TestTreatmentItemDelete_CascadesReviewsAndLinks(t *testing.T) {
	db := newTestDB(t)
	seedItem(t, db)
	reviewRepo := NewItemReviewRepository(db)
	itemRepo := NewTreatmentItemRepository(db)
	ctx := context.Background()

	review := models.ItemReview{ItemID: 1, Rating: 6, UsageCount: 1}
	require.NoError(t, reviewRepo.Create(ctx, &review))

	require.NoError(t, db.Create(&models.Patient{ID: "MP-000001", DisplayName: "anon-bluebird", Sex: "Female", DateOfBirth: "1984-03-12"}).Error)
	require.NoError(t, db.Create(&models.Diagnosis{ID: 1, Name: "Migraine"}).Error)
	require.NoError(t, db.Create(&models.MedicalRecord{ID: 1, Title: "Spring flare", PatientID: "MP-000001", DiagnosisID: 1}).Error)
	require.NoError(t, db.Create(&models.RecordReview{MedicalRecordID: 1, ItemReviewID: review.ID}).Error)

	require.NoError(t, itemRepo.Delete(ctx, 1))

	var reviews, links int64
	require.NoError(t, db.Model(&models.ItemReview{}).Where("item_id = ?", 1).Count(&reviews).Error)
	require.NoError(t, db.Model(&models.RecordReview{}).Where("item_review_id = ?", review.ID).Count(&links).Error)
	assert.Zero(t, reviews)
	assert.Zero(t, links)

	stored, err := itemRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
