package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.GetCategories(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	c, err := s.categories.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load category")
		return
	}
	if c == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}
	respondJSON(w, http.StatusOK, c)
}
