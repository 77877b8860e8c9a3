package domain

import "time"

// FollowEdge is a directed follow relationship between two users.
// The pair (FollowerID, FolloweeID) is unique and FollowerID never
// equals FolloweeID - both are enforced by the store.
type FollowEdge struct {
	FollowerID string    `json:"follower_id"`
	FolloweeID string    `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowPage is one page of a follower or following listing
type FollowPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
