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

// newProfileRouter mounts the profile handlers the way the server does,
// so chi URL params resolve in tests
func newProfileRouter(svc *MockProfileService) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/v1/users/{username}/profile", HandleGetProfile(svc))
	r.Get("/api/v1/users/{username}/github", HandleGetContributions(svc))
	r.Get("/api/v1/users/{username}/leetcode", HandleGetCodingStats(svc))
	r.Put("/api/v1/users/{username}/accounts", HandleUpdateAccounts(svc))
	return r
}

func TestHandleGetProfileSuccess(t *testing.T) {
	svc := &MockProfileService{}
	svc.On("GetProfile", mock.Anything, "alice").Return(&domain.AggregatedProfile{
		User: domain.User{ID: "id-1", Username: "alice"},
		Calendar: domain.CalendarSection{Status: domain.FeedStatusLoaded,
			Calendar: &domain.ContributionCalendar{Total: 5}},
		Stats:         domain.StatsSection{Status: domain.FeedStatusNotConfigured},
		FollowerCount: 3,
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/users/alice/profile", nil)
	w := httptest.NewRecorder()
	newProfileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"status":"loaded"`)
	assert.Contains(t, w.Body.String(), `"status":"not_configured"`)
	svc.AssertExpectations(t)
}

func TestHandleGetProfileNotFound(t *testing.T) {
	svc := &MockProfileService{}
	svc.On("GetProfile", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	req := httptest.NewRequest("GET", "/api/v1/users/ghost/profile", nil)
	w := httptest.NewRecorder()
	newProfileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgUserNotFoundError)
}

func TestHandleGetProfileInvalidUsername(t *testing.T) {
	svc := &MockProfileService{}

	req := httptest.NewRequest("GET", "/api/v1/users/-bad-/profile", nil)
	w := httptest.NewRecorder()
	newProfileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetProfile")
}

func TestHandleGetContributionsSection(t *testing.T) {
	svc := &MockProfileService{}
	svc.On("GetContributionCalendar", mock.Anything, "alice").Return(&domain.CalendarSection{
		Status: domain.FeedStatusUnavailable,
		Reason: domain.ErrMsgFeedUnavailable,
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/users/alice/github", nil)
	w := httptest.NewRecorder()
	newProfileRouter(svc).ServeHTTP(w, req)

	// A degraded feed is still a 200; the section reports its own status
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
}

func TestHandleGetCodingStatsSection(t *testing.T) {
	svc := &MockProfileService{}
	svc.On("GetCodingStats", mock.Anything, "alice").Return(&domain.StatsSection{
		Status: domain.FeedStatusLoaded,
		Stats:  &domain.CodingStats{TotalSolved: 12},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/users/alice/leetcode", nil)
	w := httptest.NewRecorder()
	newProfileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_solved":12`)
}

func TestHandleUpdateAccounts(t *testing.T) {
	svc := &MockProfileService{}
	svc.On("UpdateExternalAccounts", mock.Anything, "alice",
		mock.AnythingOfType("*string"), (*string)(nil)).Return(nil)

	body := strings.NewReader(`{"github_username": "alice-gh"}`)
	req := httptest.NewRequest("PUT", "/api/v1/users/alice/accounts", body)
	w := httptest.NewRecorder()
	newProfileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgAccountsUpdatedSuccess)
	svc.AssertExpectations(t)
}

func TestHandleUpdateAccountsBadBody(t *testing.T) {
	svc := &MockProfileService{}

	req := httptest.NewRequest("PUT", "/api/v1/users/alice/accounts", strings.NewReader("{"))
	w := httptest.NewRecorder()
	newProfileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpdateExternalAccounts")
}
