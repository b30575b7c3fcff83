package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/techforing/jobboard/internal/errs"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is an unexpected infrastructure failure: logged, answered 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		errorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUnauthenticated):
		errorJSON(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, errs.ErrNotFound):
		errorJSON(w, http.StatusNotFound, "not found")
	case errors.Is(err, errs.ErrConflict):
		errorJSON(w, http.StatusConflict, err.Error())
	default:
		h.log.Errorf("Unhandled error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
