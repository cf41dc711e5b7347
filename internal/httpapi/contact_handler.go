package httpapi

import (
	"errors"
	"net/http"

	"halalpoultry-be/internal/contact"
)

type createContactMessageRequest struct {
	RestaurantName string  `json:"restaurantName"`
	ContactPerson  string  `json:"contactPerson"`
	Email          string  `json:"email"`
	PhoneNumber    *string `json:"phoneNumber"`
	Message        string  `json:"message"`
}

func (s *Server) handleCreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req createContactMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := s.contacts.Submit(r.Context(), contact.CreateMessageParams{
		RestaurantName: req.RestaurantName,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Message:        req.Message,
	})
	if err != nil {
		if errors.Is(err, contact.ErrMissingFields) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to store message")
		return
	}
	respondJSON(w, http.StatusCreated, m)
}
