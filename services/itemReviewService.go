package services

import (
	"MedBook/models"
	"MedBook/repositories"
	"context"
)

type ItemReviewService struct {
	repository *repositories.ItemReviewRepository
}

func NewItemReviewService(repository *repositories.ItemReviewRepository) *ItemReviewService {
	return &ItemReviewService{repository: repository}
}

func (s *ItemReviewService) Create(ctx context.Context, review *models.ItemReview) error {
	return s.repository.Create(ctx, review)
}

func (s *ItemReviewService) GetByID(ctx context.Context, id uint) (*models.ItemReview, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ItemReviewService) GetAllByItem(ctx context.Context, itemID uint) ([]models.ItemReview, error) {
	return s.repository.GetAllByItem(ctx, itemID)
}

func (s *ItemReviewService) Update(ctx context.Context, review *models.ItemReview) error {
	return s.repository.Update(ctx, review)
}

func (s *ItemReviewService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
