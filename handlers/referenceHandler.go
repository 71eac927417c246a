package handlers

import (
	"MedBook/models"
	"MedBook/services"
	"MedBook/utils"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the simple named reference entities: diagnoses,
// symptoms, item categories and item types.
type ReferenceHandler struct {
	service *services.ReferenceService
}

func NewReferenceHandler(service *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

func (h *ReferenceHandler) CreateDiagnosis(c *gin.Context) {
	var diagnosis models.Diagnosis
	if err := c.ShouldBindJSON(&diagnosis); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateName(diagnosis.Name); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateDiagnosis(c, &diagnosis); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, diagnosis)
}

func (h *ReferenceHandler) GetDiagnosisByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	diagnosis, err := h.service.GetDiagnosisByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if diagnosis == nil {
		c.JSON(404, gin.H{"error": "Diagnosis not found"})
		return
	}
	c.JSON(200, diagnosis)
}

func (h *ReferenceHandler) GetAllDiagnoses(c *gin.Context) {
	diagnoses, err := h.service.GetAllDiagnoses(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, diagnoses)
}

func (h *ReferenceHandler) UpdateDiagnosis(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	var diagnosis models.Diagnosis
	if err := c.ShouldBindJSON(&diagnosis); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	diagnosis.ID = id
	if err := utils.ValidateName(diagnosis.Name); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateDiagnosis(c, &diagnosis); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, diagnosis)
}

func (h *ReferenceHandler) DeleteDiagnosis(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteDiagnosis(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Diagnosis deleted"})
}

func (h *ReferenceHandler) CreateSymptom(c *gin.Context) {
	var symptom models.Symptom
	if err := c.ShouldBindJSON(&symptom); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateName(symptom.Name); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateSymptom(c, &symptom); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, symptom)
}

func (h *ReferenceHandler) GetSymptomByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	symptom, err := h.service.GetSymptomByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if symptom == nil {
		c.JSON(404, gin.H{"error": "Symptom not found"})
		return
	}
	c.JSON(200, symptom)
}

func (h *ReferenceHandler) GetAllSymptoms(c *gin.Context) {
	symptoms, err := h.service.GetAllSymptoms(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, symptoms)
}

func (h *ReferenceHandler) UpdateSymptom(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	var symptom models.Symptom
	if err := c.ShouldBindJSON(&symptom); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	symptom.ID = id
	if err := utils.ValidateName(symptom.Name); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateSymptom(c, &symptom); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, symptom)
}

func (h *ReferenceHandler) DeleteSymptom(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteSymptom(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Symptom deleted"})
}

func (h *ReferenceHandler) CreateItemCategory(c *gin.Context) {
	var category models.ItemCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateName(category.Name); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateItemCategory(c, &category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, category)
}

func (h *ReferenceHandler) GetItemCategoryByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	category, err := h.service.GetItemCategoryByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if category == nil {
		c.JSON(404, gin.H{"error": "Item category not found"})
		return
	}
	c.JSON(200, category)
}

func (h *ReferenceHandler) GetAllItemCategories(c *gin.Context) {
	categories, err := h.service.GetAllItemCategories(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, categories)
}

func (h *ReferenceHandler) UpdateItemCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	var category models.ItemCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	category.ID = id
	if err := utils.ValidateName(category.Name); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateItemCategory(c, &category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, category)
}

func (h *ReferenceHandler) DeleteItemCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteItemCategory(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Item category deleted"})
}

func (h *ReferenceHandler) CreateItemType(c *gin.Context) {
	var itemType models.ItemType
	if err := c.ShouldBindJSON(&itemType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateName(itemType.Name); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateItemType(c, &itemType); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, itemType)
}

func (h *ReferenceHandler) GetItemTypeByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	itemType, err := h.service.GetItemTypeByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if itemType == nil {
		c.JSON(404, gin.H{"error": "Item type not found"})
		return
	}
	c.JSON(200, itemType)
}

func (h *ReferenceHandler) GetAllItemTypes(c *gin.Context) {
	itemTypes, err := h.service.GetAllItemTypes(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, itemTypes)
}

func (h *ReferenceHandler) UpdateItemType(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	var itemType models.ItemType
	if err := c.ShouldBindJSON(&itemType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	itemType.ID = id
	if err := utils.ValidateName(itemType.Name); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateItemType(c, &itemType); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, itemType)
}

func (h *ReferenceHandler) DeleteItemType(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteItemType(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Item type deleted"})
}
