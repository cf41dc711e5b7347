package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"halalpoultry-be/internal/cart"
	"halalpoultry-be/internal/utils"

	"github.com/gorilla/mux"
)

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

type addToCartRequest struct {
	ProductID       int                  `json:"productId"`
	Quantity        float64              `json:"quantity"`
	SelectedOptions cart.SelectedOptions `json:"selectedOptions"`
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.carts.AddToCart(ctx, cart.AddToCartParams{
		UserID:          userID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		SelectedOptions: req.SelectedOptions,
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, "quantity must be positive")
		case errors.Is(err, cart.ErrProductNotFound):
			respondError(w, http.StatusNotFound, "product not found")
		case errors.Is(err, cart.ErrProductOutOfStock):
			respondError(w, http.StatusConflict, "product out of stock")
		default:
			respondError(w, http.StatusInternalServerError, "failed to add to cart")
		}
		return
	}
	respondJSON(w, http.StatusOK, item)
}

type updateCartItemRequest struct {
	Quantity float64 `json:"quantity"`
}

func (s *Server) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	productID, err := strconv.Atoi(mux.Vars(r)["productId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req updateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.carts.UpdateQuantity(ctx, userID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, "quantity must be positive")
		case errors.Is(err, cart.ErrCartItemNotFound):
			respondError(w, http.StatusNotFound, "cart item not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to update cart item")
		}
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	productID, err := strconv.Atoi(mux.Vars(r)["productId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := s.carts.RemoveFromCart(ctx, userID, productID); err != nil {
		if errors.Is(err, cart.ErrCartItemNotFound) {
			respondError(w, http.StatusNotFound, "cart item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to remove cart item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
