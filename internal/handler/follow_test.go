package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ryanmello/devboard/internal/domain"
)

func newFollowRouter(svc *MockSocialService, profiles *MockProfileService) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/v1/users/{username}/follow", HandleFollow(svc, profiles))
	r.Delete("/api/v1/users/{username}/follow", HandleUnfollow(svc, profiles))
	r.Get("/api/v1/users/{username}/follow/status", HandleFollowStatus(svc))
	r.Get("/api/v1/users/{username}/followers", HandleListFollowers(svc))
	r.Get("/api/v1/users/{username}/following", HandleListFollowing(svc))
	return r
}

func TestHandleFollowSuccess(t *testing.T) {
	svc := &MockSocialService{}
	profiles := &MockProfileService{}
	svc.On("Follow", mock.Anything, "bob", "alice").Return(nil)
	profiles.On("InvalidateUser", "bob").Return()
	profiles.On("InvalidateUser", "alice").Return()

	body := strings.NewReader(`{"follower": "bob"}`)
	req := httptest.NewRequest("POST", "/api/v1/users/alice/follow", body)
	w := httptest.NewRecorder()
	newFollowRouter(svc, profiles).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgFollowSuccess)
	svc.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func TestHandleFollowSelfFollow(t *testing.T) {
	svc := &MockSocialService{}
	profiles := &MockProfileService{}
	svc.On("Follow", mock.Anything, "alice", "alice").Return(domain.ErrSelfFollow)

	body := strings.NewReader(`{"follower": "alice"}`)
	req := httptest.NewRequest("POST", "/api/v1/users/alice/follow", body)
	w := httptest.NewRecorder()
	newFollowRouter(svc, profiles).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgSelfFollowError)
	profiles.AssertNotCalled(t, "InvalidateUser")
}

func TestHandleFollowUnknownUser(t *testing.T) {
	svc := &MockSocialService{}
	profiles := &MockProfileService{}
	svc.On("Follow", mock.Anything, "bob", "ghost").Return(domain.ErrUserNotFound)

	body := strings.NewReader(`{"follower": "bob"}`)
	req := httptest.NewRequest("POST", "/api/v1/users/ghost/follow", body)
	w := httptest.NewRecorder()
	newFollowRouter(svc, profiles).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleFollowMissingFollower(t *testing.T) {
	svc := &MockSocialService{}
	profiles := &MockProfileService{}

	body := strings.NewReader(`{}`)
	req := httptest.NewRequest("POST", "/api/v1/users/alice/follow", body)
	w := httptest.NewRecorder()
	newFollowRouter(svc, profiles).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Follow")
}

func TestHandleUnfollowSuccess(t *testing.T) {
	svc := &MockSocialService{}
	profiles := &MockProfileService{}
	svc.On("Unfollow", mock.Anything, "bob", "alice").Return(nil)
	profiles.On("InvalidateUser", mock.Anything).Return()

	body := strings.NewReader(`{"follower": "bob"}`)
	req := httptest.NewRequest("DELETE", "/api/v1/users/alice/follow", body)
	w := httptest.NewRecorder()
	newFollowRouter(svc, profiles).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgUnfollowSuccess)
	svc.AssertExpectations(t)
}

func TestHandleFollowStatus(t *testing.T) {
	svc := &MockSocialService{}
	svc.On("IsFollowing", mock.Anything, "bob", "alice").Return(true, nil)

	req := httptest.NewRequest("GET", "/api/v1/users/alice/follow/status?follower=bob", nil)
	w := httptest.NewRecorder()
	newFollowRouter(svc, &MockProfileService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"following":true`)
}

func TestHandleFollowStatusMissingFollower(t *testing.T) {
	svc := &MockSocialService{}

	req := httptest.NewRequest("GET", "/api/v1/users/alice/follow/status", nil)
	w := httptest.NewRecorder()
	newFollowRouter(svc, &MockProfileService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "IsFollowing")
}

func TestHandleListFollowers(t *testing.T) {
	svc := &MockSocialService{}
	svc.On("ListFollowers", mock.Anything, "alice", 2, 10).Return(&domain.FollowPage{
		Users: []domain.User{{Username: "bob"}},
		Total: 11,
		Page:  2,
		Limit: 10,
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/users/alice/followers?page=2&page_size=10", nil)
	w := httptest.NewRecorder()
	newFollowRouter(svc, &MockProfileService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":11`)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
	svc.AssertExpectations(t)
}

func TestHandleListFollowersDefaults(t *testing.T) {
	svc := &MockSocialService{}
	svc.On("ListFollowers", mock.Anything, "alice", 1, domain.DefaultPageSize).Return(&domain.FollowPage{
		Users: []domain.User{},
		Total: 0,
		Page:  1,
		Limit: domain.DefaultPageSize,
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/users/alice/followers", nil)
	w := httptest.NewRecorder()
	newFollowRouter(svc, &MockProfileService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleListFollowersBadPage(t *testing.T) {
	svc := &MockSocialService{}

	req := httptest.NewRequest("GET", "/api/v1/users/alice/followers?page=zero", nil)
	w := httptest.NewRecorder()
	newFollowRouter(svc, &MockProfileService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ListFollowers")
}

func TestHandleListFollowing(t *testing.T) {
	svc := &MockSocialService{}
	svc.On("ListFollowing", mock.Anything, "alice", 1, domain.DefaultPageSize).Return(&domain.FollowPage{
		Users: []domain.User{{Username: "carol"}},
		Total: 1,
		Page:  1,
		Limit: domain.DefaultPageSize,
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/users/alice/following", nil)
	w := httptest.NewRecorder()
	newFollowRouter(svc, &MockProfileService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"carol"`)
}
