package services

import (
	"MedBook/models"
	"MedBook/repositories"
	"MedBook/search"
	"context"
)

type TreatmentItemService struct {
	repository *repositories.TreatmentItemRepository
}

func NewTreatmentItemService(repository *repositories.TreatmentItemRepository) *TreatmentItemService {
	return &TreatmentItemService{repository: repository}
}

func (s *TreatmentItemService) Create(ctx context.Context, item *models.TreatmentItem) error {
	return s.repository.Create(ctx, item)
}

func (s *TreatmentItemService) GetByID(ctx context.Context, id uint) (*models.TreatmentItem, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *TreatmentItemService) Search(ctx context.Context, criteria search.ItemCriteria) ([]models.TreatmentItem, error) {
	return s.repository.Search(ctx, criteria)
}

func (s *TreatmentItemService) Update(ctx context.Context, item *models.TreatmentItem) error {
	return s.repository.Update(ctx, item)
}

func (s *TreatmentItemService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
