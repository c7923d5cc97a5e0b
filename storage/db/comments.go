package db

import (
	"context"
	"fmt"

	"pulse/storage"
	"pulse/storage/models"
)

func (d *DB) CreateComment(ctx context.Context, postID, authorID int64, content string) (models.Comment, error) {
	comment := models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	err := d.pool.QueryRow(
		ctx,
		`INSERT INTO comments (post_id, author_id, content)
         VALUES ($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		postID, authorID, content,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		if isPgError(err, foreignKeyViolation) {
			return models.Comment{}, fmt.Errorf("post %d: %w", postID, storage.ErrNotFound)
		}
		return models.Comment{}, err
	}
	return comment, nil
}

func (d *DB) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	rows, err := d.pool.Query(
		ctx,
		`SELECT id, post_id, author_id, content, created_at, updated_at
         FROM comments
         WHERE post_id = $1
         ORDER BY created_at DESC, id DESC`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
