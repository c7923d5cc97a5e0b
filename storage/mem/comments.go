package mem

import (
	"context"
	"sort"

	"pulse/storage/models"
)

func (s *Store) CreateComment(_ context.Context, postID, authorID int64, content string) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getPost(postID); err != nil {
		return models.Comment{}, err
	}
	if _, err := s.getAccount(authorID); err != nil {
		return models.Comment{}, err
	}

	s.nextCommentID++
	ts := now()
	comment := models.Comment{
		ID:        s.nextCommentID,
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.comments[comment.ID] = comment
	return comment, nil
}

func (s *Store) ListComments(_ context.Context, postID int64) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
	return comments, nil
}
