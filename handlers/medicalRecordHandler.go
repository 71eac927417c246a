package handlers

import (
	"MedBook/models"
	"MedBook/search"
	"MedBook/services"
	"MedBook/utils"

	"github.com/gin-gonic/gin"
)

type MedicalRecordHandler struct {
	service *services.MedicalRecordService
}

func NewMedicalRecordHandler(service *services.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

type medicalRecordRequest struct {
	Title       string  `json:"title"`
	Body        *string `json:"body"`
	PatientID   string  `json:"patient_id"`
	DiagnosisID uint    `json:"diagnosis_id"`
	IsPublic    bool    `json:"is_public"`
	SymptomIDs  []uint  `json:"symptom_ids"`
	ReviewIDs   []uint  `json:"review_ids"`
}

// SearchMedicalRecords resolves an arbitrary combination of search criteria
// from the query string into an ordered record list, with optional nested
// collections and field exclusion.
func (h *MedicalRecordHandler) SearchMedicalRecords(c *gin.Context) {
	criteria, excluded, err := parseRecordCriteria(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := utils.ValidateRecordCriteria(criteria); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	allowed, err := search.AllowedFields(search.RecordFieldNames(), excluded, string(criteria.SortField))
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := h.service.Search(c, criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		fields, err := projectFields(record, allowed)
		if err != nil {
			respondError(c, err)
			return
		}
		response = append(response, fields)
	}
	c.JSON(200, response)
}

func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	var req medicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record := models.MedicalRecord{
		Title:       req.Title,
		Body:        req.Body,
		PatientID:   req.PatientID,
		DiagnosisID: req.DiagnosisID,
		IsPublic:    req.IsPublic,
	}
	if err := utils.ValidateMedicalRecord(record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &record, req.SymptomIDs, req.ReviewIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, record)
}

func (h *MedicalRecordHandler) GetMedicalRecordByID(c *gin.Context) {
	id, err := parseID(c.Param("record_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid record id"})
		return
	}
	record, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if record == nil {
		c.JSON(404, gin.H{"error": "Medical record not found"})
		return
	}
	c.JSON(200, record)
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	id, err := parseID(c.Param("record_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid record id"})
		return
	}
	var req medicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record := models.MedicalRecord{
		ID:          id,
		Title:       req.Title,
		Body:        req.Body,
		PatientID:   req.PatientID,
		DiagnosisID: req.DiagnosisID,
		IsPublic:    req.IsPublic,
	}
	if err := utils.ValidateMedicalRecord(record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &record); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, record)
}

func (h *MedicalRecordHandler) DeleteMedicalRecord(c *gin.Context) {
	id, err := parseID(c.Param("record_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid record id"})
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Medical record deleted"})
}

func (h *MedicalRecordHandler) AddSymptom(c *gin.Context) {
	recordID, err := parseID(c.Param("record_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid record id"})
		return
	}
	symptomID, err := parseID(c.Param("symptom_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid symptom id"})
		return
	}
	if err := h.service.AddSymptom(c, recordID, symptomID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Symptom added"})
}

func (h *MedicalRecordHandler) RemoveSymptom(c *gin.Context) {
	recordID, err := parseID(c.Param("record_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid record id"})
		return
	}
	symptomID, err := parseID(c.Param("symptom_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid symptom id"})
		return
	}
	if err := h.service.RemoveSymptom(c, recordID, symptomID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Symptom removed"})
}

func (h *MedicalRecordHandler) AddReview(c *gin.Context) {
	recordID, err := parseID(c.Param("record_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid record id"})
		return
	}
	reviewID, err := parseID(c.Param("review_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid review id"})
		return
	}
	if err := h.service.AddReview(c, recordID, reviewID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Review added"})
}

func (h *MedicalRecordHandler) RemoveReview(c *gin.Context) {
	recordID, err := parseID(c.Param("record_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid record id"})
		return
	}
	reviewID, err := parseID(c.Param("review_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid review id"})
		return
	}
	if err := h.service.RemoveReview(c, recordID, reviewID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Review removed"})
}
