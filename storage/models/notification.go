package models

import "time"

type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
	TargetAccount TargetType = "account"
)

// TargetRef points at the entity a notification is about. Resolution into a
// concrete Post/Comment/Account happens at the presentation boundary.
type TargetRef struct {
	Type TargetType `json:"type"`
	ID   int64      `json:"id"`
}

// Verbs produced by the fan-out triggers.
const (
	VerbFollowed  = "started following you"
	VerbLiked     = "liked your post"
	VerbCommented = "commented on your post"
)

type Notification struct {
	ID          int64      `json:"id"`
	RecipientID int64      `json:"recipient_id"`
	ActorID     int64      `json:"actor_id"`
	Verb        string     `json:"verb"`
	Target      *TargetRef `json:"target,omitempty"`
	Unread      bool       `json:"unread"`
	CreatedAt   time.Time  `json:"created_at"`
}
