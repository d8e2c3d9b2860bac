package handlers

import (
	"net/http"
	"time"

	"github.com/xavierca1/mini-crm/internal/entity"
	"github.com/xavierca1/mini-crm/internal/usecase"
)

// InsightsHandler serve os agregados do dashboard. Todos recalculam do zero a
// cada requisição; não há cache nem estado incremental.
type InsightsHandler struct {
	Repo entity.LeadRepositoryInterface
}

func NewInsightsHandler(repo entity.LeadRepositoryInterface) *InsightsHandler {
	return &InsightsHandler{Repo: repo}
}

func (h *InsightsHandler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	leads, ok := h.listLeads(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, usecase.BuildPipelineColumns(leads))
}

func (h *InsightsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	leads, ok := h.listLeads(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, usecase.BuildSummary(leads, time.Now()))
}

func (h *InsightsHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	leads, ok := h.listLeads(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, usecase.DistributionByCity(leads))
}

func (h *InsightsHandler) HandleConversion(w http.ResponseWriter, r *http.Request) {
	leads, ok := h.listLeads(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, usecase.ConversionProgress(leads))
}

func (h *InsightsHandler) listLeads(w http.ResponseWriter, r *http.Request) ([]entity.Lead, bool) {
	leads, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", "erro ao listar leads")
		return nil, false
	}
	return leads, true
}
