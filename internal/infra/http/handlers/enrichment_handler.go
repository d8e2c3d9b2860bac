package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/mini-crm/internal/infra/http/middleware"
	"github.com/xavierca1/mini-crm/internal/infra/integration/brasilapi"
)

// EnrichmentHandler expõe as consultas ao BrasilAPI que preenchem o formulário
// de novo lead. Só leitura; nada aqui grava no repositório.
type EnrichmentHandler struct {
	Client *brasilapi.Client
}

func NewEnrichmentHandler(client *brasilapi.Client) *EnrichmentHandler {
	return &EnrichmentHandler{Client: client}
}

func (h *EnrichmentHandler) HandleCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.Client.CompanyByCNPJ(r.Context(), chi.URLParam(r, "cnpj"))
	if err != nil {
		h.writeEnrichmentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *EnrichmentHandler) HandleAddress(w http.ResponseWriter, r *http.Request) {
	address, err := h.Client.AddressByCEP(r.Context(), chi.URLParam(r, "cep"))
	if err != nil {
		h.writeEnrichmentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, address)
}

func (h *EnrichmentHandler) HandleBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.Client.Banks(r.Context())
	if err != nil {
		h.writeEnrichmentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, banks)
}

func (h *EnrichmentHandler) writeEnrichmentError(w http.ResponseWriter, err error) {
	if errors.Is(err, brasilapi.ErrInvalidCNPJ) || errors.Is(err, brasilapi.ErrInvalidCEP) {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var apiErr *brasilapi.APIError
	if errors.As(err, &apiErr) {
		middleware.RecordIntegrationError("brasilapi")
		status := http.StatusBadGateway
		if apiErr.Status == http.StatusNotFound {
			status = http.StatusNotFound
		}
		writeErrorResponse(w, status, "UPSTREAM_ERROR", apiErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "erro ao consultar BrasilAPI")
}
