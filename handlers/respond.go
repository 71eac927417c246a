package handlers

import (
	"MedBook/middlewares"
	"MedBook/repositories"
	"MedBook/search"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// respondError maps engine and repository errors onto transport status codes.
func respondError(c *gin.Context, err error) {
	var invalid *search.InvalidCriteriaError
	var notFound *repositories.ReferenceNotFoundError
	switch {
	case errors.As(err, &invalid):
		c.JSON(400, gin.H{"error": invalid.Error()})
	case errors.As(err, &notFound):
		c.JSON(404, gin.H{"error": notFound.Error()})
	case errors.Is(err, search.ErrUnresolvableStrategy):
		// Defect class: the strategy table is incomplete. Fail loudly instead
		// of degrading to an unfiltered result.
		middlewares.HttpError(c, "internal error", 500, err)
	default:
		middlewares.HttpError(c, err.Error(), 500, err)
	}
}

// projectFields serializes a value and drops every field outside the allowed
// set, implementing the field-exclusion projection for API responses.
func projectFields(value interface{}, allowed []string) (map[string]interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize response: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to serialize response: %w", err)
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, field := range allowed {
		allowedSet[field] = struct{}{}
	}
	for key := range fields {
		if _, ok := allowedSet[key]; !ok {
			delete(fields, key)
		}
	}
	return fields, nil
}
