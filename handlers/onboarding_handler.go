package handlers

import (
	"net/http"

	"github.com/courtside/sports-platform/middleware"
	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/services"
	"github.com/go-chi/chi/v5"
)

type OnboardingHandler struct {
	onboardingService services.OnboardingService
}

func NewOnboardingHandler(os services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: os}
}

func (h *OnboardingHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	status, err := h.onboardingService.GetStatus(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"onboarding": status,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OnboardingHandler) CompleteStep(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	step := models.OnboardingStep(chi.URLParam(r, "step"))

	status, err := h.onboardingService.CompleteStep(r.Context(), userID, step)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"onboarding": status,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OnboardingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	if err := h.onboardingService.Reset(r.Context(), userID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
