package routes

import (
	"MedBook/cache"
	"MedBook/config"
	"MedBook/controllers"
	"MedBook/handlers"
	"MedBook/middlewares"
	"MedBook/repositories"
	"MedBook/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.example.com", "https://example-dev.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(cache)
	referenceRepo := repositories.NewReferenceRepository(cache)
	medicalRecordRepo := repositories.NewMedicalRecordRepository(db)
	treatmentItemRepo := repositories.NewTreatmentItemRepository(db)
	itemReviewRepo := repositories.NewItemReviewRepository(db)

	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo))
	referenceHandler := handlers.NewReferenceHandler(services.NewReferenceService(referenceRepo))
	treatmentItemHandler := handlers.NewTreatmentItemHandler(services.NewTreatmentItemService(treatmentItemRepo))
	itemReviewHandler := handlers.NewItemReviewHandler(services.NewItemReviewService(itemReviewRepo))
	medicalRecordHandler := handlers.NewMedicalRecordHandler(services.NewMedicalRecordService(medicalRecordRepo))

	// Register routes
	controllers.SetupCatalogRoutes(
		router,
		patientHandler,
		referenceHandler,
		treatmentItemHandler,
		itemReviewHandler,
		medicalRecordHandler,
	)

	controllers.SetupRootRoute(router)

	return router
}
