package handlers

import (
	"MedBook/models"
	"MedBook/search"
	"MedBook/services"
	"MedBook/utils"

	"github.com/gin-gonic/gin"
)

type TreatmentItemHandler struct {
	service *services.TreatmentItemService
}

func NewTreatmentItemHandler(service *services.TreatmentItemService) *TreatmentItemHandler {
	return &TreatmentItemHandler{service: service}
}

func (h *TreatmentItemHandler) CreateTreatmentItem(c *gin.Context) {
	var item models.TreatmentItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateTreatmentItem(item); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	item.AverageRating = nil // derived, never caller-supplied
	if err := h.service.Create(c, &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, item)
}

func (h *TreatmentItemHandler) GetTreatmentItemByID(c *gin.Context) {
	id, err := parseID(c.Param("item_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid item id"})
		return
	}
	item, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if item == nil {
		c.JSON(404, gin.H{"error": "Treatment item not found"})
		return
	}
	c.JSON(200, item)
}

// SearchTreatmentItems lists items matching the optional category/type/helped
// criteria, ordered and paginated, with optional field exclusion.
func (h *TreatmentItemHandler) SearchTreatmentItems(c *gin.Context) {
	criteria, excluded, err := parseItemCriteria(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := utils.ValidateItemCriteria(criteria); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	allowed, err := search.AllowedFields(search.ItemFieldNames(), excluded, string(criteria.SortField))
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.service.Search(c, criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		fields, err := projectFields(item, allowed)
		if err != nil {
			respondError(c, err)
			return
		}
		response = append(response, fields)
	}
	c.JSON(200, response)
}

func (h *TreatmentItemHandler) UpdateTreatmentItem(c *gin.Context) {
	id, err := parseID(c.Param("item_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid item id"})
		return
	}
	var item models.TreatmentItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	item.ID = id
	if err := utils.ValidateTreatmentItem(item); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, item)
}

func (h *TreatmentItemHandler) DeleteTreatmentItem(c *gin.Context) {
	id, err := parseID(c.Param("item_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid item id"})
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Treatment item deleted"})
}
