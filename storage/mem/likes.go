package mem

import (
	"context"

	"pulse/storage"
	"pulse/storage/models"
)

// CreateLike holds the lock for the whole existence check + insert, matching
// the single-statement atomicity of the Postgres implementation.
func (s *Store) CreateLike(_ context.Context, postID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getPost(postID); err != nil {
		return err
	}

	key := likeKey{post: postID, user: userID}
	if _, exists := s.likes[key]; exists {
		return storage.ErrAlreadyLiked
	}
	s.likes[key] = models.Like{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: now(),
	}
	return nil
}

func (s *Store) DeleteLike(_ context.Context, postID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{post: postID, user: userID}
	if _, exists := s.likes[key]; !exists {
		return storage.ErrNotLiked
	}
	delete(s.likes, key)
	return nil
}

func (s *Store) CountLikes(_ context.Context, postID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for key := range s.likes {
		if key.post == postID {
			count++
		}
	}
	return count, nil
}
