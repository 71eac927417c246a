package handlers

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"MedBook/repositories"
	"MedBook/search"
)

func respondTo(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w
}

func TestRespondError_StatusMapping(t *testing.T) {
	w := respondTo(&search.InvalidCriteriaError{Reason: "unknown sort field", Fields: []string{"bogus"}})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "unknown sort field")

	w = respondTo(&repositories.ReferenceNotFoundError{Kind: "patient", ID: "MP-999999"})
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "patient MP-999999 does not exist")
}

func TestRespondError_StrategyDefectIsOpaque(t *testing.T) {
	w := respondTo(fmt.Errorf("%w: %+v", search.ErrUnresolvableStrategy, search.Signature{AllMatch: true}))
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "internal error")
	assert.NotContains(t, w.Body.String(), "signature", "the defect detail stays in the log")
}

func TestRespondError_Default(t *testing.T) {
	w := respondTo(errors.New("connection refused"))
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
