package mem

import (
	"context"
	"fmt"
	"sort"

	"pulse/storage"
	"pulse/storage/models"
)

func (s *Store) CreatePost(_ context.Context, authorID int64, title, content string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getAccount(authorID); err != nil {
		return models.Post{}, err
	}

	s.nextPostID++
	ts := now()
	post := models.Post{
		ID:        s.nextPostID,
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.posts[post.ID] = post
	return post, nil
}

func (s *Store) GetPost(_ context.Context, id int64) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getPost(id)
}

func (s *Store) ListPosts(_ context.Context, limit int32) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sortPostsNewestFirst(posts)
	if int32(len(posts)) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (s *Store) UpdatePost(_ context.Context, id int64, title, content *string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.getPost(id)
	if err != nil {
		return models.Post{}, err
	}
	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}
	post.UpdatedAt = now()
	s.posts[id] = post
	return post, nil
}

func (s *Store) DeletePost(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getPost(id); err != nil {
		return err
	}

	commentIDs := make(map[int64]bool)
	for cid, c := range s.comments {
		if c.PostID == id {
			commentIDs[cid] = true
			delete(s.comments, cid)
		}
	}
	for key := range s.likes {
		if key.post == id {
			delete(s.likes, key)
		}
	}
	for nid, n := range s.notifs {
		if n.Target == nil {
			continue
		}
		switch n.Target.Type {
		case models.TargetPost:
			if n.Target.ID == id {
				delete(s.notifs, nid)
			}
		case models.TargetComment:
			if commentIDs[n.Target.ID] {
				delete(s.notifs, nid)
			}
		}
	}
	delete(s.posts, id)
	return nil
}

func (s *Store) FeedPosts(_ context.Context, authorIDs []int64, limit int32) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	authors := make(map[int64]bool, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = true
	}

	posts := make([]models.Post, 0)
	for _, p := range s.posts {
		if authors[p.AuthorID] {
			posts = append(posts, p)
		}
	}
	sortPostsNewestFirst(posts)
	if int32(len(posts)) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// getPost expects the lock to be held.
func (s *Store) getPost(id int64) (models.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, fmt.Errorf("post %d: %w", id, storage.ErrNotFound)
	}
	return post, nil
}

func sortPostsNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
}
