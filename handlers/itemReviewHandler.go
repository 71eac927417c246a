package handlers

import (
	"MedBook/models"
	"MedBook/services"
	"MedBook/utils"

	"github.com/gin-gonic/gin"
)

type ItemReviewHandler struct {
	service *services.ItemReviewService
}

func NewItemReviewHandler(service *services.ItemReviewService) *ItemReviewHandler {
	return &ItemReviewHandler{service: service}
}

func (h *ItemReviewHandler) CreateItemReview(c *gin.Context) {
	itemID, err := parseID(c.Param("item_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid item id"})
		return
	}
	var review models.ItemReview
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	review.ItemID = itemID
	if err := utils.ValidateItemReview(review); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, review)
}

func (h *ItemReviewHandler) GetAllItemReviews(c *gin.Context) {
	itemID, err := parseID(c.Param("item_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid item id"})
		return
	}
	reviews, err := h.service.GetAllByItem(c, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, reviews)
}

func (h *ItemReviewHandler) GetItemReviewByID(c *gin.Context) {
	id, err := parseID(c.Param("review_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid review id"})
		return
	}
	review, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if review == nil {
		c.JSON(404, gin.H{"error": "Item review not found"})
		return
	}
	c.JSON(200, review)
}

func (h *ItemReviewHandler) UpdateItemReview(c *gin.Context) {
	id, err := parseID(c.Param("review_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid review id"})
		return
	}
	var review models.ItemReview
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	review.ID = id
	if err := utils.ValidateItemReview(review); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, review)
}

func (h *ItemReviewHandler) DeleteItemReview(c *gin.Context) {
	id, err := parseID(c.Param("review_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid review id"})
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Item review deleted"})
}
