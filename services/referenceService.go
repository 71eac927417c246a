package services

import (
	"MedBook/models"
	"MedBook/repositories"
	"context"
)

type ReferenceService struct {
	repository *repositories.ReferenceRepository
}

func NewReferenceService(repository *repositories.ReferenceRepository) *ReferenceService {
	return &ReferenceService{repository: repository}
}

func (s *ReferenceService) CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	return s.repository.CreateDiagnosis(ctx, diagnosis)
}

func (s *ReferenceService) GetDiagnosisByID(ctx context.Context, id uint) (*models.Diagnosis, error) {
	return s.repository.GetDiagnosisByID(ctx, id)
}

func (s *ReferenceService) GetAllDiagnoses(ctx context.Context) ([]models.Diagnosis, error) {
	return s.repository.GetAllDiagnoses(ctx)
}

func (s *ReferenceService) UpdateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	return s.repository.UpdateDiagnosis(ctx, diagnosis)
}

func (s *ReferenceService) DeleteDiagnosis(ctx context.Context, id uint) error {
	return s.repository.DeleteDiagnosis(ctx, id)
}

func (s *ReferenceService) CreateSymptom(ctx context.Context, symptom *models.Symptom) error {
	return s.repository.CreateSymptom(ctx, symptom)
}

func (s *ReferenceService) GetSymptomByID(ctx context.Context, id uint) (*models.Symptom, error) {
	return s.repository.GetSymptomByID(ctx, id)
}

func (s *ReferenceService) GetAllSymptoms(ctx context.Context) ([]models.Symptom, error) {
	return s.repository.GetAllSymptoms(ctx)
}

func (s *ReferenceService) UpdateSymptom(ctx context.Context, symptom *models.Symptom) error {
	return s.repository.UpdateSymptom(ctx, symptom)
}

func (s *ReferenceService) DeleteSymptom(ctx context.Context, id uint) error {
	return s.repository.DeleteSymptom(ctx, id)
}

func (s *ReferenceService) CreateItemCategory(ctx context.Context, category *models.ItemCategory) error {
	return s.repository.CreateItemCategory(ctx, category)
}

func (s *ReferenceService) GetItemCategoryByID(ctx context.Context, id uint) (*models.ItemCategory, error) {
	return s.repository.GetItemCategoryByID(ctx, id)
}

func (s *ReferenceService) GetAllItemCategories(ctx context.Context) ([]models.ItemCategory, error) {
	return s.repository.GetAllItemCategories(ctx)
}

func (s *ReferenceService) UpdateItemCategory(ctx context.Context, category *models.ItemCategory) error {
	return s.repository.UpdateItemCategory(ctx, category)
}

func (s *ReferenceService) DeleteItemCategory(ctx context.Context, id uint) error {
	return s.repository.DeleteItemCategory(ctx, id)
}

func (s *ReferenceService) CreateItemType(ctx context.Context, itemType *models.ItemType) error {
	return s.repository.CreateItemType(ctx, itemType)
}

func (s *ReferenceService) GetItemTypeByID(ctx context.Context, id uint) (*models.ItemType, error) {
	return s.repository.GetItemTypeByID(ctx, id)
}

func (s *ReferenceService) GetAllItemTypes(ctx context.Context) ([]models.ItemType, error) {
	return s.repository.GetAllItemTypes(ctx)
}

func (s *ReferenceService) UpdateItemType(ctx context.Context, itemType *models.ItemType) error {
	return s.repository.UpdateItemType(ctx, itemType)
}

func (s *ReferenceService) DeleteItemType(ctx context.Context, id uint) error {
	return s.repository.DeleteItemType(ctx, id)
}
