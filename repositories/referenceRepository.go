package repositories

import (
	"MedBook/cache"
	"MedBook/database"
	"MedBook/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReferenceCacheExpiry = 7 * 24 * time.Hour
)

// ReferenceRepository handles the simple named reference entities (diagnoses,
// symptoms, item categories, item types): id plus unique name, cache-aside
// reads, and a uniqueness lock on create. The four entities share one core so
// the cache and lock handling is written once.
type ReferenceRepository struct {
	cache *cache.Cache
}

func NewReferenceRepository(cache *cache.Cache) *ReferenceRepository {
	return &ReferenceRepository{cache: cache}
}

// Diagnoses

func (r *ReferenceRepository) CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	return r.createNamed(ctx, "diagnosis", diagnosis.Name, diagnosis)
}

func (r *ReferenceRepository) GetDiagnosisByID(ctx context.Context, id uint) (*models.Diagnosis, error) {
	var diagnosis models.Diagnosis
	found, err := r.getByID(ctx, "diagnosis", id, &diagnosis)
	if err != nil || !found {
		return nil, err
	}
	return &diagnosis, nil
}

func (r *ReferenceRepository) GetAllDiagnoses(ctx context.Context) ([]models.Diagnosis, error) {
	var diagnoses []models.Diagnosis
	if err := r.getAll(ctx, "diagnosis", &diagnoses); err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *ReferenceRepository) UpdateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	return r.updateNamed(ctx, "diagnosis", diagnosis.ID, diagnosis)
}

func (r *ReferenceRepository) DeleteDiagnosis(ctx context.Context, id uint) error {
	return r.deleteNamed(ctx, "diagnosis", id, &models.Diagnosis{}, nil)
}

// Symptoms

func (r *ReferenceRepository) CreateSymptom(ctx context.Context, symptom *models.Symptom) error {
	return r.createNamed(ctx, "symptom", symptom.Name, symptom)
}

func (r *ReferenceRepository) GetSymptomByID(ctx context.Context, id uint) (*models.Symptom, error) {
	var symptom models.Symptom
	found, err := r.getByID(ctx, "symptom", id, &symptom)
	if err != nil || !found {
		return nil, err
	}
	return &symptom, nil
}

func (r *ReferenceRepository) GetAllSymptoms(ctx context.Context) ([]models.Symptom, error) {
	var symptoms []models.Symptom
	if err := r.getAll(ctx, "symptom", &symptoms); err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (r *ReferenceRepository) UpdateSymptom(ctx context.Context, symptom *models.Symptom) error {
	return r.updateNamed(ctx, "symptom", symptom.ID, symptom)
}

// DeleteSymptom also drops the symptom from every record tag set.
func (r *ReferenceRepository) DeleteSymptom(ctx context.Context, id uint) error {
	return r.deleteNamed(ctx, "symptom", id, &models.Symptom{}, func(tx *gorm.DB) error {
		if err := tx.Where("symptom_id = ?", id).Delete(&models.RecordSymptom{}).Error; err != nil {
			return fmt.Errorf("failed to delete record symptom links: %w", err)
		}
		return nil
	})
}

// Item categories

func (r *ReferenceRepository) CreateItemCategory(ctx context.Context, category *models.ItemCategory) error {
	return r.createNamed(ctx, "item_category", category.Name, category)
}

func (r *ReferenceRepository) GetItemCategoryByID(ctx context.Context, id uint) (*models.ItemCategory, error) {
	var category models.ItemCategory
	found, err := r.getByID(ctx, "item_category", id, &category)
	if err != nil || !found {
		return nil, err
	}
	return &category, nil
}

func (r *ReferenceRepository) GetAllItemCategories(ctx context.Context) ([]models.ItemCategory, error) {
	var categories []models.ItemCategory
	if err := r.getAll(ctx, "item_category", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *ReferenceRepository) UpdateItemCategory(ctx context.Context, category *models.ItemCategory) error {
	return r.updateNamed(ctx, "item_category", category.ID, category)
}

func (r *ReferenceRepository) DeleteItemCategory(ctx context.Context, id uint) error {
	return r.deleteNamed(ctx, "item_category", id, &models.ItemCategory{}, nil)
}

// Item types

func (r *ReferenceRepository) CreateItemType(ctx context.Context, itemType *models.ItemType) error {
	return r.createNamed(ctx, "item_type", itemType.Name, itemType)
}

func (r *ReferenceRepository) GetItemTypeByID(ctx context.Context, id uint) (*models.ItemType, error) {
	var itemType models.ItemType
	found, err := r.getByID(ctx, "item_type", id, &itemType)
	if err != nil || !found {
		return nil, err
	}
	return &itemType, nil
}

func (r *ReferenceRepository) GetAllItemTypes(ctx context.Context) ([]models.ItemType, error) {
	var itemTypes []models.ItemType
	if err := r.getAll(ctx, "item_type", &itemTypes); err != nil {
		return nil, err
	}
	return itemTypes, nil
}

func (r *ReferenceRepository) UpdateItemType(ctx context.Context, itemType *models.ItemType) error {
	return r.updateNamed(ctx, "item_type", itemType.ID, itemType)
}

func (r *ReferenceRepository) DeleteItemType(ctx context.Context, id uint) error {
	return r.deleteNamed(ctx, "item_type", id, &models.ItemType{}, nil)
}

// Shared core

func (r *ReferenceRepository) createNamed(ctx context.Context, kind, name string, entity interface{}) error {
	lockKey := fmt.Sprintf("%s_lock:%s", kind, name)
	lockValue := uuid.New().String() // Generate a unique lock value
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	var count int64
	if err := database.DB.Model(entity).Where("name = ?", name).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing %s: %w", kind, err)
	}
	if count > 0 {
		return fmt.Errorf("%s with name %s already exists", kind, name)
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entity).Error; err != nil {
			return fmt.Errorf("failed to create %s: %w", kind, err)
		}
		return r.cache.DeleteAll(ctx, r.listCacheKey(kind))
	})
}

func (r *ReferenceRepository) getByID(ctx context.Context, kind string, id uint, dest interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.entityCacheKey(kind, id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		if err := json.Unmarshal([]byte(cached), dest); err == nil {
			return true, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get %s from cache: %v", kind, err)
	}

	err = database.DB.First(dest, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", kind, err)
	}

	entityJSON, err := json.Marshal(dest)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s: %w", kind, err)
	}
	if err := r.cache.Set(ctx, cacheKey, entityJSON, ReferenceCacheExpiry); err != nil {
		log.Printf("Failed to set %s in cache: %v", kind, err)
	}
	return true, nil
}

func (r *ReferenceRepository) getAll(ctx context.Context, kind string, dest interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.listCacheKey(kind)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		if err := json.Unmarshal([]byte(cached), dest); err == nil {
			return nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get %s list from cache: %v", kind, err)
	}

	if err := database.DB.Order("name ASC").Find(dest).Error; err != nil {
		return fmt.Errorf("failed to get all %s rows: %w", kind, err)
	}

	listJSON, err := json.Marshal(dest)
	if err != nil {
		return fmt.Errorf("failed to marshal %s list: %w", kind, err)
	}
	if err := r.cache.Set(ctx, cacheKey, listJSON, ReferenceCacheExpiry); err != nil {
		log.Printf("Failed to set %s list in cache: %v", kind, err)
	}
	return nil
}

func (r *ReferenceRepository) updateNamed(ctx context.Context, kind string, id uint, entity interface{}) error {
	if err := database.DB.Save(entity).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", kind, err)
	}
	if err := r.cache.Delete(ctx, r.entityCacheKey(kind, id)); err != nil {
		return fmt.Errorf("failed to delete %s cache: %w", kind, err)
	}
	return r.cache.DeleteAll(ctx, r.listCacheKey(kind))
}

func (r *ReferenceRepository) deleteNamed(ctx context.Context, kind string, id uint, model interface{}, unlink func(*gorm.DB) error) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if unlink != nil {
			if err := unlink(tx); err != nil {
				return err
			}
		}
		if err := tx.Delete(model, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete %s: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, r.entityCacheKey(kind, id)); err != nil {
		return fmt.Errorf("failed to delete %s cache: %w", kind, err)
	}
	return r.cache.DeleteAll(ctx, r.listCacheKey(kind))
}

func (r *ReferenceRepository) entityCacheKey(kind string, id uint) string {
	return fmt.Sprintf("%s_cache:%d", kind, id)
}

func (r *ReferenceRepository) listCacheKey(kind string) string {
	return fmt.Sprintf("%s_list_cache", kind)
}
