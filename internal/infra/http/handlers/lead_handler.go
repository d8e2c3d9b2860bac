package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/mini-crm/internal/entity"
	"github.com/xavierca1/mini-crm/internal/infra/http/middleware"
	"github.com/xavierca1/mini-crm/internal/usecase"
)

type LeadHandler struct {
	Repo     entity.LeadRepositoryInterface
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
}

func NewLeadHandler(repo entity.LeadRepositoryInterface, createUC *usecase.CreateLeadUseCase, updateUC *usecase.UpdateLeadUseCase) *LeadHandler {
	return &LeadHandler{Repo: repo, CreateUC: createUC, UpdateUC: updateUC}
}

// HandleList responde GET /leads, com filtros opcionais ?stage= e ?search=.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", "erro ao listar leads")
		return
	}

	filters := usecase.LeadFilters{
		Stage:  r.URL.Query().Get("stage"),
		Search: r.URL.Query().Get("search"),
	}
	writeJSON(w, http.StatusOK, usecase.FilterLeads(leads, filters))
}

// HandleGet responde GET /leads/{id}.
func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", "erro ao buscar lead")
		return
	}
	if lead == nil {
		writeErrorResponse(w, http.StatusNotFound, "LEAD_NOT_FOUND", "lead não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// HandleCreate responde POST /leads.
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input entity.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		h.writeLeadError(w, err, "erro ao criar lead")
		return
	}

	middleware.RecordLeadCreated(string(lead.Stage))
	if lead.Stage == entity.StageWon {
		middleware.RecordLeadWon()
	}
	writeJSON(w, http.StatusCreated, lead)
}

// HandleUpdate responde PATCH /leads/{id} com merge parcial.
func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch entity.LeadPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), id, patch)
	if err != nil {
		h.writeLeadError(w, err, "erro ao atualizar lead")
		return
	}

	if lead.Stage == entity.StageWon {
		middleware.RecordLeadWon()
	}
	writeJSON(w, http.StatusOK, lead)
}

// HandleReset responde POST /leads/reset, voltando o store ao conjunto default.
func (h *LeadHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.Reset(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", "erro ao resetar leads")
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) writeLeadError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, entity.ErrLeadNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "LEAD_NOT_FOUND", "lead não encontrado")
		return
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeErrorResponse(w, http.StatusUnprocessableEntity, domainErr.Code, domainErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
}
