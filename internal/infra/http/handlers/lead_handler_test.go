package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/mini-crm/internal/entity"
	"github.com/xavierca1/mini-crm/internal/infra/database"
	"github.com/xavierca1/mini-crm/internal/usecase"
)

// memStore em memória, só para os testes de handler.
type memStore struct {
	slots map[string]string
}

func newMemStore() *memStore {
	return &memStore{slots: map[string]string{}}
}

func (s *memStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok := s.slots[key]
	return value, ok, nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	s.slots[key] = value
	return nil
}

func (s *memStore) Remove(ctx context.Context, key string) error {
	delete(s.slots, key)
	return nil
}

func newTestRouter() chi.Router {
	repo := database.NewLeadRepository(newMemStore(), 0)
	handler := NewLeadHandler(
		repo,
		usecase.NewCreateLeadUseCase(repo, nil, nil),
		usecase.NewUpdateLeadUseCase(repo, nil, nil),
	)
	insights := NewInsightsHandler(repo)

	r := chi.NewRouter()
	r.Get("/leads", handler.HandleList)
	r.Post("/leads", handler.HandleCreate)
	r.Post("/leads/reset", handler.HandleReset)
	r.Get("/leads/{id}", handler.HandleGet)
	r.Patch("/leads/{id}", handler.HandleUpdate)
	r.Get("/insights/summary", insights.HandleSummary)
	r.Get("/insights/conversion", insights.HandleConversion)
	return r
}

func TestHandleListReturnsSeedLeads(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var leads []entity.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	assert.Len(t, leads, 3)
}

func TestHandleListAppliesFilters(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads?stage=proposal&search=beta", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var leads []entity.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "lead-beta-foods", leads[0].ID)
}

func TestHandleGetUnknownIDReturns404(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "LEAD_NOT_FOUND")
}

func TestHandleCreateReturnsStoredLead(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(entity.LeadInput{
		LegalName: "Delta Servicos LTDA",
		CNPJ:      "11.222.333/0001-81",
		City:      "Curitiba",
		State:     "pr",
		Score:     55,
		Stage:     entity.StageNew,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var lead entity.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "11222333000181", lead.CNPJ)
	assert.Equal(t, "PR", lead.State)
	assert.Equal(t, lead.CreatedAt, lead.UpdatedAt)
}

func TestHandleCreateRejectsInvalidInput(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(entity.LeadInput{LegalName: "X"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestHandleUpdateMergesPatch(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	patch := []byte(`{"stage":"won","score":90}`)
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/leads/lead-alpha-tech", bytes.NewReader(patch)))

	require.Equal(t, http.StatusOK, rec.Code)

	var lead entity.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, "lead-alpha-tech", lead.ID)
	assert.Equal(t, entity.StageWon, lead.Stage)
	assert.Equal(t, 90, lead.Score)
	// Campos fora do patch permanecem.
	assert.Equal(t, "Alpha Tecnologia LTDA", lead.LegalName)
}

func TestHandleUpdateUnknownIDReturns404(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/leads/ghost", bytes.NewReader([]byte(`{"score":1}`))))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleResetRestoresSeed(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(entity.LeadInput{
		LegalName: "Delta Servicos LTDA",
		CNPJ:      "11222333000181",
		City:      "Curitiba",
		State:     "PR",
		Score:     55,
		Stage:     entity.StageNew,
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads/reset", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var leads []entity.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	assert.Len(t, leads, 3)
}

func TestInsightsSummaryOnSeed(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/insights/summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var summary usecase.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, usecase.Summary{TotalActive: 3, InProposal: 1, Qualified: 1, WonCurrentMonth: 0}, summary)
}

func TestInsightsConversionOnSeed(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/insights/conversion", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var conversion usecase.Conversion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conversion))
	assert.Equal(t, usecase.Conversion{Target: 20, Won: 0, Percentage: 0}, conversion)
}
