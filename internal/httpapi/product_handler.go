package httpapi

import (
	"net/http"
	"strconv"

	"halalpoultry-be/internal/product"

	"github.com/gorilla/mux"
)

// handleListProducts dispatches on query parameters: a category ID filter
// wins over search, which wins over featured; with none set, everything is
// returned.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := product.ListFilter{}
	if raw := q.Get("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "category must be a numeric ID")
			return
		}
		filter.CategoryID = &id
	}
	if search := q.Get("search"); search != "" {
		filter.Search = &search
	}
	filter.Featured = q.Get("featured") == "true"

	products, err := s.products.ListProducts(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	p, err := s.products.GetProductBySlug(r.Context(), slug)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}
