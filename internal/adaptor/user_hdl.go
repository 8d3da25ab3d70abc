package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"referral-service/internal/dto/request"
	"referral-service/internal/usecase"
	"referral-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.ReferralService
	log     *zap.Logger
}

func NewUserHandler(service usecase.ReferralService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Signup handles POST /api/user/signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "signup")
		return
	}

	utils.ResponseCreated(w, "User signed up successfully", user)
}

// CompleteProfile handles POST /api/user/complete-profile
func (h *UserHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	var req request.ProfileCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.CompleteProfile(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "complete profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", user)
}

// GetReferredUsers handles GET /api/user/referred/{referralCode}
func (h *UserHandler) GetReferredUsers(w http.ResponseWriter, r *http.Request) {
	referralCode := chi.URLParam(r, "referralCode")
	if referralCode == "" {
		utils.ResponseBadRequest(w, "Referral code is required", nil)
		return
	}

	users, err := h.service.GetReferredUsers(r.Context(), referralCode)
	if err != nil {
		h.handleServiceError(w, err, "get referred users")
		return
	}

	utils.ResponseSuccess(w, "Referred users retrieved successfully", users)
}

// handleServiceError maps service error kinds to client-visible statuses.
// Anything unclassified becomes a generic 500; detail stays in the logs.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrDuplicateEmail):
		h.log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseConflict(w, "User exists for this mail id. Please try again.")

	case errors.Is(err, usecase.ErrInvalidReferralCode):
		h.log.Warn(operation+" failed - invalid referral code", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid referral code.", nil)

	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found.")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "An unexpected error occurred. Please try again later.")
	}
}
