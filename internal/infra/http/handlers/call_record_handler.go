package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/telecrm/internal/infra/http/middleware"
	"github.com/xavierca1/telecrm/internal/usecase"
)

type CallRecordHandler struct {
	Calls   *usecase.CallRecordUseCase
	Metrics *usecase.MetricsUseCase
}

func NewCallRecordHandler(calls *usecase.CallRecordUseCase, metrics *usecase.MetricsUseCase) *CallRecordHandler {
	return &CallRecordHandler{
		Calls:   calls,
		Metrics: metrics,
	}
}

func (h *CallRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	records, err := h.Calls.List(r.Context(), a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *CallRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	record, err := h.Calls.Get(r.Context(), chi.URLParam(r, "id"), a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *CallRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	var input usecase.CreateCallRecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	record, err := h.Calls.Create(r.Context(), input, a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.RecordCall(string(record.CallStatus), string(record.ResponseStatus))
	writeJSON(w, http.StatusCreated, record)
}

func (h *CallRecordHandler) ListByLead(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	records, err := h.Calls.ListByLead(r.Context(), chi.URLParam(r, "leadId"), a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *CallRecordHandler) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	metrics, err := h.Metrics.DashboardMetrics(r.Context(), a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}

func (h *CallRecordHandler) CallTrends(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	trends, err := h.Metrics.CallTrends(r.Context(), a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trends)
}
