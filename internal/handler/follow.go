package handler

import (
	"context"
	"net/http"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/logger"
	"github.com/ryanmello/devboard/internal/profile"
	"github.com/ryanmello/devboard/internal/social"
)

// FollowRequest identifies the acting user for follow and unfollow
type FollowRequest struct {
	Follower string `json:"follower" validate:"required,username"`
}

// FollowStatusResponse reports whether a follow edge exists
type FollowStatusResponse struct {
	Following bool `json:"following"`
}

// FollowPageResponse is one page of followers or following
type FollowPageResponse struct {
	Users []domain.User `json:"users"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// HandleFollow makes the requesting user follow the path user
// @Summary Follow a user
// @Description Idempotent: following an already-followed user succeeds without effect
// @Tags social
// @Accept json
// @Produce json
// @Param username path string true "Username to follow"
// @Param request body FollowRequest true "Acting user"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/follow [post]
func HandleFollow(svc social.Service, profiles profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followee, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		var req FollowRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Follow"); err != nil {
			return
		}

		if err := svc.Follow(r.Context(), req.Follower, followee); err != nil {
			respondServiceError(w, r, "Follow", err)
			return
		}

		// Counters changed on both sides, drop their cached records
		profiles.InvalidateUser(req.Follower)
		profiles.InvalidateUser(followee)

		logger.FromContext(r.Context()).Debug("Follow handled", "follower", req.Follower, "followee", followee)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFollowSuccess})
	}
}

// HandleUnfollow removes the follow edge
// @Summary Unfollow a user
// @Description Idempotent: unfollowing a user who was not followed succeeds without effect
// @Tags social
// @Accept json
// @Produce json
// @Param username path string true "Username to unfollow"
// @Param request body FollowRequest true "Acting user"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/follow [delete]
func HandleUnfollow(svc social.Service, profiles profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followee, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		var req FollowRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Unfollow"); err != nil {
			return
		}

		if err := svc.Unfollow(r.Context(), req.Follower, followee); err != nil {
			respondServiceError(w, r, "Unfollow", err)
			return
		}

		profiles.InvalidateUser(req.Follower)
		profiles.InvalidateUser(followee)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUnfollowSuccess})
	}
}

// HandleFollowStatus reports whether the follower query user follows the path user
// @Summary Check follow status
// @Tags social
// @Produce json
// @Param username path string true "Potential followee"
// @Param follower query string true "Potential follower"
// @Success 200 {object} FollowStatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/follow/status [get]
func HandleFollowStatus(svc social.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followee, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		follower := r.URL.Query().Get("follower")
		if follower == "" {
			respondError(w, http.StatusBadRequest, ErrMsgFollowerRequired)
			return
		}

		following, err := svc.IsFollowing(r.Context(), follower, followee)
		if err != nil {
			respondServiceError(w, r, "Follow status", err)
			return
		}

		respondJSON(w, http.StatusOK, FollowStatusResponse{Following: following})
	}
}

// HandleListFollowers returns a page of the user's followers
// @Summary List followers
// @Tags social
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {object} FollowPageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/followers [get]
func HandleListFollowers(svc social.Service) http.HandlerFunc {
	return listHandler("List followers", svc.ListFollowers)
}

// HandleListFollowing returns a page of users the user follows
// @Summary List following
// @Tags social
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {object} FollowPageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{username}/following [get]
func HandleListFollowing(svc social.Service) http.HandlerFunc {
	return listHandler("List following", svc.ListFollowing)
}

func listHandler(opName string, list func(ctx context.Context, username string, page, limit int) (*domain.FollowPage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameFromPath(r, w)
		if !ok {
			return
		}

		page, pageSize, ok := GetPagination(r, w)
		if !ok {
			return
		}

		result, err := list(r.Context(), username, page, pageSize)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondJSON(w, http.StatusOK, FollowPageResponse{
			Users: result.Users,
			Total: result.Total,
			Page:  result.Page,
			Limit: result.Limit,
		})
	}
}
