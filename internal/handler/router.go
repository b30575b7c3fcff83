package handler

import (
	"github.com/gorilla/mux"
	"github.com/techforing/jobboard/internal/middleware"
	"github.com/techforing/jobboard/internal/token"
)

// Router builds the HTTP route table. Protected JSON routes answer 401 on
// deny; the gated browser entry point redirects to /login instead.
func (h *Handler) Router(tokens *token.Manager) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("POST")

	r.HandleFunc("/categories", h.ListCategories).Methods("GET")
	r.HandleFunc("/categories", h.CreateCategory).Methods("POST")

	r.HandleFunc("/jobs", h.ListJobs).Methods("GET")
	r.HandleFunc("/jobs", h.CreateJob).Methods("POST")
	r.HandleFunc("/jobs/{id}", h.GetJob).Methods("GET")
	r.HandleFunc("/jobs/{id}", h.ReplaceJob).Methods("PUT")
	r.HandleFunc("/jobs/{id}", h.PatchJob).Methods("PATCH")
	r.HandleFunc("/jobs/{id}", h.DeleteJob).Methods("DELETE")

	// Protected API routes
	api := r.PathPrefix("/me").Subrouter()
	api.Use(middleware.Session(tokens, middleware.Options{CookieName: h.cookieName}))
	api.HandleFunc("", h.Me).Methods("GET")

	// Gated browser navigation
	nav := r.PathPrefix("/home").Subrouter()
	nav.Use(middleware.Session(tokens, middleware.Options{
		CookieName:  h.cookieName,
		RedirectURL: "/login",
	}))
	nav.HandleFunc("", h.Home).Methods("GET")

	return r
}
