package repositories

import (
	"MedBook/models"
	"MedBook/search"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MedicalRecordRepository owns medical record persistence: criteria-driven
// search through the query engine, validated create/update, and idempotent
// mutation of the record's symptom and review sets. Search results are never
// cached, the criteria space is unbounded.
type MedicalRecordRepository struct {
	db     *gorm.DB
	engine *search.Engine
}

func NewMedicalRecordRepository(db *gorm.DB) *MedicalRecordRepository {
	return &MedicalRecordRepository{db: db, engine: search.NewEngine(db)}
}

func (r *MedicalRecordRepository) Search(ctx context.Context, criteria search.RecordCriteria) ([]models.MedicalRecord, error) {
	return r.engine.SearchRecords(ctx, criteria)
}

// Create inserts the record and its initial symptom/review sets after checking
// that every referenced row exists.
func (r *MedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord, symptomIDs, reviewIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.Patient{}, "patient", record.PatientID); err != nil {
			return err
		}
		if err := requireExists(tx, &models.Diagnosis{}, "diagnosis", record.DiagnosisID); err != nil {
			return err
		}
		for _, id := range symptomIDs {
			if err := requireExists(tx, &models.Symptom{}, "symptom", id); err != nil {
				return err
			}
		}
		for _, id := range reviewIDs {
			if err := requireExists(tx, &models.ItemReview{}, "item review", id); err != nil {
				return err
			}
		}

		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create medical record: %w", err)
		}
		for _, id := range symptomIDs {
			if err := appendSymptom(tx, record.ID, id); err != nil {
				return err
			}
		}
		for _, id := range reviewIDs {
			if err := appendReview(tx, record.ID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MedicalRecordRepository) GetByID(ctx context.Context, id uint) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("Symptoms").
		Preload("Reviews").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medical record: %w", err)
	}
	return &record, nil
}

// Update replaces the record's scalar fields. The symptom and review sets are
// mutated through the Add/Remove methods instead.
func (r *MedicalRecordRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.MedicalRecord{}, "medical record", record.ID); err != nil {
			return err
		}
		if err := requireExists(tx, &models.Patient{}, "patient", record.PatientID); err != nil {
			return err
		}
		if err := requireExists(tx, &models.Diagnosis{}, "diagnosis", record.DiagnosisID); err != nil {
			return err
		}
		err := tx.Model(&models.MedicalRecord{}).
			Where("id = ?", record.ID).
			Select("title", "body", "patient_id", "diagnosis_id", "is_public").
			Updates(record).Error
		if err != nil {
			return fmt.Errorf("failed to update medical record: %w", err)
		}
		return nil
	})
}

func (r *MedicalRecordRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("medical_record_id = ?", id).Delete(&models.RecordSymptom{}).Error; err != nil {
			return fmt.Errorf("failed to delete record symptom links: %w", err)
		}
		if err := tx.Where("medical_record_id = ?", id).Delete(&models.RecordReview{}).Error; err != nil {
			return fmt.Errorf("failed to delete record review links: %w", err)
		}
		if err := tx.Delete(&models.MedicalRecord{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete medical record: %w", err)
		}
		return nil
	})
}

// AddSymptom adds a symptom to the record's tag set. Adding an already-present
// symptom is a no-op.
func (r *MedicalRecordRepository) AddSymptom(ctx context.Context, recordID, symptomID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.MedicalRecord{}, "medical record", recordID); err != nil {
			return err
		}
		if err := requireExists(tx, &models.Symptom{}, "symptom", symptomID); err != nil {
			return err
		}
		return appendSymptom(tx, recordID, symptomID)
	})
}

// RemoveSymptom removes a symptom from the record's tag set. Removing an
// absent symptom is a no-op.
func (r *MedicalRecordRepository) RemoveSymptom(ctx context.Context, recordID, symptomID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.MedicalRecord{}, "medical record", recordID); err != nil {
			return err
		}
		err := tx.Where("medical_record_id = ? AND symptom_id = ?", recordID, symptomID).
			Delete(&models.RecordSymptom{}).Error
		if err != nil {
			return fmt.Errorf("failed to remove symptom from record: %w", err)
		}
		return nil
	})
}

// AddReview attaches an item review to the record. Idempotent.
func (r *MedicalRecordRepository) AddReview(ctx context.Context, recordID, reviewID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.MedicalRecord{}, "medical record", recordID); err != nil {
			return err
		}
		if err := requireExists(tx, &models.ItemReview{}, "item review", reviewID); err != nil {
			return err
		}
		return appendReview(tx, recordID, reviewID)
	})
}

// RemoveReview detaches an item review from the record. Removing an absent
// review is a no-op.
func (r *MedicalRecordRepository) RemoveReview(ctx context.Context, recordID, reviewID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.MedicalRecord{}, "medical record", recordID); err != nil {
			return err
		}
		err := tx.Where("medical_record_id = ? AND item_review_id = ?", recordID, reviewID).
			Delete(&models.RecordReview{}).Error
		if err != nil {
			return fmt.Errorf("failed to remove review from record: %w", err)
		}
		return nil
	})
}

func appendSymptom(tx *gorm.DB, recordID, symptomID uint) error {
	link := models.RecordSymptom{MedicalRecordID: recordID, SymptomID: symptomID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return fmt.Errorf("failed to add symptom to record: %w", err)
	}
	return nil
}

func appendReview(tx *gorm.DB, recordID, reviewID uint) error {
	link := models.RecordReview{MedicalRecordID: recordID, ItemReviewID: reviewID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return fmt.Errorf("failed to add review to record: %w", err)
	}
	return nil
}
