package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/telecrm/internal/entity"
	"github.com/xavierca1/telecrm/internal/infra/http/middleware"
	"github.com/xavierca1/telecrm/internal/usecase"
)

type LeadHandler struct {
	Leads  *usecase.LeadUseCase
	Status *usecase.RecordCallUseCase
}

func NewLeadHandler(leads *usecase.LeadUseCase, status *usecase.RecordCallUseCase) *LeadHandler {
	return &LeadHandler{
		Leads:  leads,
		Status: status,
	}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	leads, err := h.Leads.List(r.Context(), a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	lead, err := h.Leads.Get(r.Context(), chi.URLParam(r, "id"), a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	lead, err := h.Leads.Create(r.Context(), input, a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	lead, err := h.Leads.Update(r.Context(), chi.URLParam(r, "id"), input, a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.Leads.Delete(r.Context(), chi.URLParam(r, "id"), a); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "lead removed"})
}

func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	var input usecase.UpdateLeadStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	lead, err := h.Status.UpdateStatus(r.Context(), chi.URLParam(r, "id"), input, a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.RecordCall(string(lead.CallStatus), string(lead.ResponseStatus))
	if lead.ResponseStatus == entity.ResponseCallback {
		middleware.RecordFollowUpQueued()
	}
	writeJSON(w, http.StatusOK, lead)
}
