package social

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ryanmello/devboard/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of the user and
// social repositories for testing. It stores users and edges in maps
// behind a mutex so concurrency tests exercise real interleavings.
//
// IMPORTANT: This fake must remain in the social package to avoid import
// cycles with the service tests.
type FakeRepository struct {
	mu      sync.Mutex
	users   map[string]*domain.User         // keyed by user ID
	edges   map[[2]string]domain.FollowEdge // keyed by [follower, followee]
	nowTick int64
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		users: make(map[string]*domain.User),
		edges: make(map[[2]string]domain.FollowEdge),
	}
}

// AddUser seeds a user; the ID doubles as the map key
func (f *FakeRepository) AddUser(user domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = &user
}

// GetUser returns a copy of the stored user for assertions
func (f *FakeRepository) GetUser(userID string) domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.users[userID]
}

func (f *FakeRepository) CreateUser(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == "" {
		user.ID = "user-" + user.Username
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *FakeRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[userID]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) UpdateUser(ctx context.Context, user domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	f.users[user.ID] = &user
	return nil
}

func (f *FakeRepository) DeleteUser(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[userID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, userID)
	for edge := range f.edges {
		if edge[0] == userID || edge[1] == userID {
			delete(f.edges, edge)
		}
	}
	return nil
}

func (f *FakeRepository) UpdateExternalAccounts(ctx context.Context, userID string, github, leetcode *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if github != nil {
		u.GitHubUsername = *github
	}
	if leetcode != nil {
		u.LeetCodeUsername = *leetcode
	}
	return nil
}

func (f *FakeRepository) Follow(ctx context.Context, followerID, followeeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := [2]string{followerID, followeeID}
	if _, exists := f.edges[key]; exists {
		return false, nil
	}

	// Monotonic timestamps keep list ordering deterministic in tests
	f.nowTick++
	f.edges[key] = domain.FollowEdge{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Unix(f.nowTick, 0),
	}
	f.users[followerID].FollowingCount++
	f.users[followeeID].FollowerCount++
	return true, nil
}

func (f *FakeRepository) Unfollow(ctx context.Context, followerID, followeeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := [2]string{followerID, followeeID}
	if _, exists := f.edges[key]; !exists {
		return false, nil
	}

	delete(f.edges, key)
	if f.users[followerID].FollowingCount > 0 {
		f.users[followerID].FollowingCount--
	}
	if f.users[followeeID].FollowerCount > 0 {
		f.users[followeeID].FollowerCount--
	}
	return true, nil
}

func (f *FakeRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, exists := f.edges[[2]string{followerID, followeeID}]
	return exists, nil
}

type edgeEntry struct {
	userID    string
	createdAt time.Time
}

func (f *FakeRepository) ListFollowers(ctx context.Context, userID string, limit, offset int) ([]domain.User, int, error) {
	return f.listEdges(userID, limit, offset, true)
}

func (f *FakeRepository) ListFollowing(ctx context.Context, userID string, limit, offset int) ([]domain.User, int, error) {
	return f.listEdges(userID, limit, offset, false)
}

func (f *FakeRepository) listEdges(userID string, limit, offset int, followers bool) ([]domain.User, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make([]edgeEntry, 0)
	for _, edge := range f.edges {
		if followers && edge.FolloweeID == userID {
			entries = append(entries, edgeEntry{edge.FollowerID, edge.CreatedAt})
		}
		if !followers && edge.FollowerID == userID {
			entries = append(entries, edgeEntry{edge.FolloweeID, edge.CreatedAt})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].createdAt.Equal(entries[j].createdAt) {
			return entries[i].createdAt.After(entries[j].createdAt)
		}
		return entries[i].userID < entries[j].userID
	})

	total := len(entries)
	if offset >= len(entries) {
		return []domain.User{}, total, nil
	}
	entries = entries[offset:]
	if limit < len(entries) {
		entries = entries[:limit]
	}

	users := make([]domain.User, 0, len(entries))
	for _, e := range entries {
		users = append(users, *f.users[e.userID])
	}
	return users, total, nil
}
