package models

import "time"

type Account struct {
	ID        int64     `json:"id"`
	Handle    string    `json:"handle"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}
