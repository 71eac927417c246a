package controllers

import (
	"MedBook/handlers"

	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, referenceHandler *handlers.ReferenceHandler, treatmentItemHandler *handlers.TreatmentItemHandler, itemReviewHandler *handlers.ItemReviewHandler, medicalRecordHandler *handlers.MedicalRecordHandler) {
	// Define the routes directly on the router
	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
	router.GET("/patients", patientHandler.GetAllPatients)

	router.POST("/diagnoses", referenceHandler.CreateDiagnosis)
	router.GET("/diagnoses/:id", referenceHandler.GetDiagnosisByID)
	router.PUT("/diagnoses/:id", referenceHandler.UpdateDiagnosis)
	router.DELETE("/diagnoses/:id", referenceHandler.DeleteDiagnosis)
	router.GET("/diagnoses", referenceHandler.GetAllDiagnoses)

	router.POST("/symptoms", referenceHandler.CreateSymptom)
	router.GET("/symptoms/:id", referenceHandler.GetSymptomByID)
	router.PUT("/symptoms/:id", referenceHandler.UpdateSymptom)
	router.DELETE("/symptoms/:id", referenceHandler.DeleteSymptom)
	router.GET("/symptoms", referenceHandler.GetAllSymptoms)

	router.POST("/item_categories", referenceHandler.CreateItemCategory)
	router.GET("/item_categories/:id", referenceHandler.GetItemCategoryByID)
	router.PUT("/item_categories/:id", referenceHandler.UpdateItemCategory)
	router.DELETE("/item_categories/:id", referenceHandler.DeleteItemCategory)
	router.GET("/item_categories", referenceHandler.GetAllItemCategories)

	router.POST("/item_types", referenceHandler.CreateItemType)
	router.GET("/item_types/:id", referenceHandler.GetItemTypeByID)
	router.PUT("/item_types/:id", referenceHandler.UpdateItemType)
	router.DELETE("/item_types/:id", referenceHandler.DeleteItemType)
	router.GET("/item_types", referenceHandler.GetAllItemTypes)

	router.POST("/treatment_items", treatmentItemHandler.CreateTreatmentItem)
	router.GET("/treatment_items/:item_id", treatmentItemHandler.GetTreatmentItemByID)
	router.PUT("/treatment_items/:item_id", treatmentItemHandler.UpdateTreatmentItem)
	router.DELETE("/treatment_items/:item_id", treatmentItemHandler.DeleteTreatmentItem)
	router.GET("/treatment_items", treatmentItemHandler.SearchTreatmentItems)

	router.POST("/treatment_items/:item_id/reviews", itemReviewHandler.CreateItemReview)
	router.GET("/treatment_items/:item_id/reviews", itemReviewHandler.GetAllItemReviews)
	router.GET("/treatment_items/:item_id/reviews/:review_id", itemReviewHandler.GetItemReviewByID)
	router.PUT("/treatment_items/:item_id/reviews/:review_id", itemReviewHandler.UpdateItemReview)
	router.DELETE("/treatment_items/:item_id/reviews/:review_id", itemReviewHandler.DeleteItemReview)

	router.POST("/medical_records", medicalRecordHandler.CreateMedicalRecord)
	router.GET("/medical_records/:record_id", medicalRecordHandler.GetMedicalRecordByID)
	router.PUT("/medical_records/:record_id", medicalRecordHandler.UpdateMedicalRecord)
	router.DELETE("/medical_records/:record_id", medicalRecordHandler.DeleteMedicalRecord)
	router.GET("/medical_records", medicalRecordHandler.SearchMedicalRecords)

	router.POST("/medical_records/:record_id/symptoms/:symptom_id", medicalRecordHandler.AddSymptom)
	router.DELETE("/medical_records/:record_id/symptoms/:symptom_id", medicalRecordHandler.RemoveSymptom)
	router.POST("/medical_records/:record_id/reviews/:review_id", medicalRecordHandler.AddReview)
	router.DELETE("/medical_records/:record_id/reviews/:review_id", medicalRecordHandler.RemoveReview)
}
