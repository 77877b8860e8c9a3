package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ryanmello/devboard/internal/logger"
	"github.com/ryanmello/devboard/internal/profile"
)

// usernameFromPath extracts and validates the username path parameter.
// If ok is false the response has already been written.
func usernameFromPath(r *http.Request, w http.ResponseWriter) (string, bool) {
	username := chi.URLParam(r, "username")
	if err := ValidateUsername(username); err != nil {
		logger.FromContext(r.Context()).Warn("Invalid username in path", "username", username)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUsernameError)
		return "", false
	}
	return username, true
}

// HandleGetProfile returns the full aggregated profile for a user
// @Summary Get aggregated profile
// @Description Returns the base record, contribution calendar, coding stats and social counters. Feed sections degrade independently.
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.AggregatedProfile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/profile [get]
func HandleGetProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		result, err := svc.GetProfile(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetContributions returns only the contribution calendar section
// @Summary Get contribution calendar
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.CalendarSection
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/github [get]
func HandleGetContributions(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		section, err := svc.GetContributionCalendar(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, "Get contributions", err)
			return
		}

		respondJSON(w, http.StatusOK, section)
	}
}

// HandleGetCodingStats returns only the coding stats section
// @Summary Get coding statistics
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.StatsSection
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/leetcode [get]
func HandleGetCodingStats(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		section, err := svc.GetCodingStats(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, "Get coding stats", err)
			return
		}

		respondJSON(w, http.StatusOK, section)
	}
}

// UpdateAccountsRequest carries the external handles to link or unlink.
// Omitted fields are left unchanged; empty strings unlink.
type UpdateAccountsRequest struct {
	GitHubUsername   *string `json:"github_username"`
	LeetCodeUsername *string `json:"leetcode_username"`
}

// HandleUpdateAccounts links or unlinks external account handles
// @Summary Update external accounts
// @Tags profile
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body UpdateAccountsRequest true "Handles to update"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/accounts [put]
func HandleUpdateAccounts(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		var req UpdateAccountsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update accounts"); err != nil {
			return
		}

		if err := svc.UpdateExternalAccounts(r.Context(), username, req.GitHubUsername, req.LeetCodeUsername); err != nil {
			respondServiceError(w, r, "Update accounts", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAccountsUpdatedSuccess})
	}
}
