package domain

import "time"

// User represents a registered user profile
type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	FirstName        string    `json:"first_name,omitempty"`
	LastName         string    `json:"last_name,omitempty"`
	Headline         string    `json:"headline,omitempty"`
	Image            string    `json:"image,omitempty"`
	GitHubUsername   string    `json:"github_username,omitempty"`
	LeetCodeUsername string    `json:"leetcode_username,omitempty"`
	FollowerCount    int       `json:"follower_count"`
	FollowingCount   int       `json:"following_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasGitHub reports whether the user linked a GitHub account
func (u *User) HasGitHub() bool {
	return u.GitHubUsername != ""
}

// HasLeetCode reports whether the user linked a LeetCode account
func (u *User) HasLeetCode() bool {
	return u.LeetCodeUsername != ""
}
