package handler

import (
	"net/http"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/logger"
	"github.com/ryanmello/devboard/internal/profile"
)

// CreateUserRequest registers a new base record
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,username"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Headline  string `json:"headline" validate:"omitempty,max=255"`
	Image     string `json:"image" validate:"omitempty,max=512"`
}

// UpdateProfileRequest carries the display fields to change.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Headline  *string `json:"headline" validate:"omitempty,max=255"`
	Image     *string `json:"image" validate:"omitempty,max=512"`
}

// HandleCreateUser registers a new user
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "New user"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users [post]
func HandleCreateUser(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create user"); err != nil {
			return
		}

		user := domain.User{
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Headline:  req.Headline,
			Image:     req.Image,
		}
		if err := svc.CreateUser(r.Context(), &user); err != nil {
			respondServiceError(w, r, "Create user", err)
			return
		}

		logger.FromContext(r.Context()).Debug("Create user handled", "username", user.Username)
		respondJSON(w, http.StatusCreated, user)
	}
}

// HandleUpdateProfile changes the display fields of the base record
// @Summary Update profile fields
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/profile [put]
func HandleUpdateProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}

		user, err := svc.UpdateProfile(r.Context(), username, profile.ProfileUpdate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Headline:  req.Headline,
			Image:     req.Image,
		})
		if err != nil {
			respondServiceError(w, r, "Update profile", err)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}

// HandleDeleteUser removes a user and their follow edges
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username} [delete]
func HandleDeleteUser(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		if err := svc.DeleteUser(r.Context(), username); err != nil {
			respondServiceError(w, r, "Delete user", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUserDeletedSuccess})
	}
}
