package search_packages_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	searchPackagesHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/search_packages"
	"github.com/m04kA/SMC-TravelService/internal/service/packages/models"
)

type stubService struct {
	results []models.PackageSummary
	got     models.SearchFilter
}

func (s *stubService) Search(_ context.Context, filter models.SearchFilter) []models.PackageSummary {
	s.got = filter
	return s.results
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_FrontendFilterKeys(t *testing.T) {
	svc := &stubService{results: []models.PackageSummary{{ID: "pkg1", Name: "Amsterdam & Paris Delight"}}}
	h := searchPackagesHandler.NewHandler(svc, nopLogger{})

	// Ключи фильтров повторяют контракт исходного фронтенда
	body := `{"Leaving From": "New Delhi", "Destination": "Paris", "Leaving On": "2026-04-08", "Duration": "6", "Traveller Count": "2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/packages/search", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New Delhi", svc.got.LeavingFrom)
	assert.Equal(t, "Paris", svc.got.Destination)
	assert.Equal(t, "2026-04-08", svc.got.LeavingOn)
	assert.Equal(t, "6", svc.got.Duration)
	assert.Equal(t, "2", svc.got.TravellerCount)

	var envelope struct {
		Status string                                         `json:"status"`
		Data   []searchPackagesHandler.PackageSummaryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "pkg1", envelope.Data[0].ID)
}

func TestHandle_EmptyResultIsJSONArray(t *testing.T) {
	h := searchPackagesHandler.NewHandler(&stubService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/packages/search", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestHandle_MalformedBody(t *testing.T) {
	h := searchPackagesHandler.NewHandler(&stubService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/packages/search", bytes.NewBufferString("{oops"))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
