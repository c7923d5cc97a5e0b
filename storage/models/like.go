package models

import "time"

// Like is a (post, user) fact. The store enforces uniqueness of the pair.
type Like struct {
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
