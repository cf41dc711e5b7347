package httpapi

import (
	"errors"
	"net/http"

	"halalpoultry-be/internal/logger"
	"halalpoultry-be/internal/middleware"
	"halalpoultry-be/internal/user"
	"halalpoultry-be/internal/utils"

	"go.uber.org/zap"
)

// handleLogin records an identity event: the verified token claims are
// upserted into the user store and the resulting record returned. Token
// issuance itself belongs to the identity provider.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	params := user.UpsertUserParams{ID: claims.Subject}
	if claims.Email != "" {
		params.Email = utils.StrPtr(claims.Email)
	}
	if claims.FirstName != "" {
		params.FirstName = utils.StrPtr(claims.FirstName)
	}
	if claims.LastName != "" {
		params.LastName = utils.StrPtr(claims.LastName)
	}
	if claims.ProfileImageURL != "" {
		params.ProfileImageURL = utils.StrPtr(claims.ProfileImageURL)
	}

	u, err := s.users.Login(ctx, params)
	if err != nil {
		logger.FromCtx(ctx).Error("login failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to record login")
		return
	}

	respondJSON(w, http.StatusOK, u)
}

func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	if u == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	respondJSON(w, http.StatusOK, u)
}

type updateProfileRequest struct {
	Email             *string `json:"email"`
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	ProfileImageURL   *string `json:"profileImageUrl"`
	IsRestaurant      *bool   `json:"isRestaurant"`
	RestaurantName    *string `json:"restaurantName"`
	RestaurantAddress *string `json:"restaurantAddress"`
	PhoneNumber       *string `json:"phoneNumber"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.users.UpdateProfile(ctx, userID, user.UpdateUserParams{
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ProfileImageURL:   req.ProfileImageURL,
		IsRestaurant:      req.IsRestaurant,
		RestaurantName:    req.RestaurantName,
		RestaurantAddress: req.RestaurantAddress,
		PhoneNumber:       req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		logger.FromCtx(ctx).Error("profile update failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	respondJSON(w, http.StatusOK, u)
}
