package models

import "time"

// Follow is a directed edge: the follower receives the followee's posts in
// their feed. At most one edge exists per ordered pair.
type Follow struct {
	FollowerID int64     `json:"follower_id"`
	FolloweeID int64     `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
