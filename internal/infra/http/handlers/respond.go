package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/telecrm/internal/entity"
	"github.com/xavierca1/telecrm/internal/infra/http/middleware"
	"github.com/xavierca1/telecrm/internal/logger"
	"github.com/xavierca1/telecrm/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy onto HTTP statuses: 404 for
// missing resources (checked before ownership), 403 for authorization
// failures, 400 for validation failures, 500 for everything else.
// Validation messages go back verbatim; internal details are logged
// server-side.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch usecase.ErrorCode(err) {
	case usecase.CodeNotFound:
		status = http.StatusNotFound
	case usecase.CodeForbidden:
		status = http.StatusForbidden
	case usecase.CodeValidation:
		status = http.StatusBadRequest
	default:
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		message = "something went wrong on the server: " + err.Error()
	}

	writeJSON(w, status, map[string]string{"message": message})
}

// actor pulls the authenticated actor off the context. The auth
// middleware guarantees it is there on protected routes.
func actor(w http.ResponseWriter, r *http.Request) (entity.Actor, bool) {
	a, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "not authenticated"})
		return entity.Actor{}, false
	}
	return a, true
}
