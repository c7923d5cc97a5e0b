// Package mem is a mutex-guarded in-memory implementation of the store
// surface. It backs the test suites and the dev mode selected when no
// database host is configured. The single lock gives it the same atomicity
// guarantees the Postgres constraints give storage/db.
package mem

import (
	"sync"
	"time"

	"pulse/storage/models"
)

type edge struct {
	follower int64
	followee int64
}

type likeKey struct {
	post int64
	user int64
}

type Store struct {
	mu sync.Mutex

	accounts map[int64]models.Account
	handles  map[string]int64
	follows  map[edge]models.Follow
	posts    map[int64]models.Post
	comments map[int64]models.Comment
	likes    map[likeKey]models.Like
	notifs   map[int64]models.Notification

	nextAccountID int64
	nextPostID    int64
	nextCommentID int64
	nextNotifID   int64
}

func New() *Store {
	return &Store{
		accounts: make(map[int64]models.Account),
		handles:  make(map[string]int64),
		follows:  make(map[edge]models.Follow),
		posts:    make(map[int64]models.Post),
		comments: make(map[int64]models.Comment),
		likes:    make(map[likeKey]models.Like),
		notifs:   make(map[int64]models.Notification),
	}
}

func now() time.Time {
	return time.Now().UTC()
}
