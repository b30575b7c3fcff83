package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/techforing/jobboard/internal/service"
)

// jobID extracts the numeric id path variable; a non-numeric id addresses
// no resource and reads as not found.
func jobID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

// ListJobs returns all jobs with categories expanded inline
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.catalog.ListJobs(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// GetJob returns a single job
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "not found")
		return
	}
	job, err := h.catalog.GetJob(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// CreateJob creates a job; the category reference is a name and is
// find-or-created by the service
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var in service.JobInput
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	job, err := h.catalog.CreateJob(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// ReplaceJob fully overwrites a job
func (h *Handler) ReplaceJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "not found")
		return
	}
	var in service.JobInput
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	job, err := h.catalog.ReplaceJob(r.Context(), id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// PatchJob merge-updates the provided fields of a job
func (h *Handler) PatchJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "not found")
		return
	}
	var in service.JobInput
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	job, err := h.catalog.PatchJob(r.Context(), id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// DeleteJob removes a job
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "not found")
		return
	}
	if err := h.catalog.DeleteJob(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
