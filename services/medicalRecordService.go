package services

import (
	"MedBook/models"
	"MedBook/repositories"
	"MedBook/search"
	"context"
)

type MedicalRecordService struct {
	repository *repositories.MedicalRecordRepository
}

func NewMedicalRecordService(repository *repositories.MedicalRecordRepository) *MedicalRecordService {
	return &MedicalRecordService{repository: repository}
}

func (s *MedicalRecordService) Search(ctx context.Context, criteria search.RecordCriteria) ([]models.MedicalRecord, error) {
	return s.repository.Search(ctx, criteria)
}

func (s *MedicalRecordService) Create(ctx context.Context, record *models.MedicalRecord, symptomIDs, reviewIDs []uint) error {
	return s.repository.Create(ctx, record, symptomIDs, reviewIDs)
}

func (s *MedicalRecordService) GetByID(ctx context.Context, id uint) (*models.MedicalRecord, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *MedicalRecordService) Update(ctx context.Context, record *models.MedicalRecord) error {
	return s.repository.Update(ctx, record)
}

func (s *MedicalRecordService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

func (s *MedicalRecordService) AddSymptom(ctx context.Context, recordID, symptomID uint) error {
	return s.repository.AddSymptom(ctx, recordID, symptomID)
}

func (s *MedicalRecordService) RemoveSymptom(ctx context.Context, recordID, symptomID uint) error {
	return s.repository.RemoveSymptom(ctx, recordID, symptomID)
}

func (s *MedicalRecordService) AddReview(ctx context.Context, recordID, reviewID uint) error {
	return s.repository.AddReview(ctx, recordID, reviewID)
}

func (s *MedicalRecordService) RemoveReview(ctx context.Context, recordID, reviewID uint) error {
	return s.repository.RemoveReview(ctx, recordID, reviewID)
}
