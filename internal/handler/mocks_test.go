package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/profile"
)

// MockProfileService mocks profile.Service
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, username string) (*domain.AggregatedProfile, error) {
	args := m.Called(ctx, username)
	if p := args.Get(0); p != nil {
		return p.(*domain.AggregatedProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileService) GetContributionCalendar(ctx context.Context, username string) (*domain.CalendarSection, error) {
	args := m.Called(ctx, username)
	if s := args.Get(0); s != nil {
		return s.(*domain.CalendarSection), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileService) GetCodingStats(ctx context.Context, username string) (*domain.StatsSection, error) {
	args := m.Called(ctx, username)
	if s := args.Get(0); s != nil {
		return s.(*domain.StatsSection), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileService) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, username string, update profile.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, username, update)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileService) DeleteUser(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockProfileService) UpdateExternalAccounts(ctx context.Context, username string, github, leetcode *string) error {
	args := m.Called(ctx, username, github, leetcode)
	return args.Error(0)
}

func (m *MockProfileService) InvalidateUser(username string) {
	m.Called(username)
}

// MockSocialService mocks social.Service
type MockSocialService struct {
	mock.Mock
}

func (m *MockSocialService) Follow(ctx context.Context, follower, followee string) error {
	args := m.Called(ctx, follower, followee)
	return args.Error(0)
}

func (m *MockSocialService) Unfollow(ctx context.Context, follower, followee string) error {
	args := m.Called(ctx, follower, followee)
	return args.Error(0)
}

func (m *MockSocialService) IsFollowing(ctx context.Context, follower, followee string) (bool, error) {
	args := m.Called(ctx, follower, followee)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialService) ListFollowers(ctx context.Context, username string, page, limit int) (*domain.FollowPage, error) {
	args := m.Called(ctx, username, page, limit)
	if p := args.Get(0); p != nil {
		return p.(*domain.FollowPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSocialService) ListFollowing(ctx context.Context, username string, page, limit int) (*domain.FollowPage, error) {
	args := m.Called(ctx, username, page, limit)
	if p := args.Get(0); p != nil {
		return p.(*domain.FollowPage), args.Error(1)
	}
	return nil, args.Error(1)
}
