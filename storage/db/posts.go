package db

import (
	"context"
	"fmt"

	"pulse/storage"
	"pulse/storage/models"
)

const postColumns = `id, author_id, title, content, created_at, updated_at`

func (d *DB) CreatePost(ctx context.Context, authorID int64, title, content string) (models.Post, error) {
	post := models.Post{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	}
	err := d.pool.QueryRow(
		ctx,
		`INSERT INTO posts (author_id, title, content)
         VALUES ($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		authorID, title, content,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if isPgError(err, foreignKeyViolation) {
			return models.Post{}, fmt.Errorf("account %d: %w", authorID, storage.ErrNotFound)
		}
		return models.Post{}, err
	}
	return post, nil
}

func (d *DB) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post
	err := d.pool.QueryRow(
		ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`,
		id,
	).Scan(&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if noRows(err) {
			return models.Post{}, fmt.Errorf("post %d: %w", id, storage.ErrNotFound)
		}
		return models.Post{}, err
	}
	return post, nil
}

func (d *DB) ListPosts(ctx context.Context, limit int32) ([]models.Post, error) {
	rows, err := d.pool.Query(
		ctx,
		`SELECT `+postColumns+` FROM posts
         ORDER BY created_at DESC, id DESC
         LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (d *DB) UpdatePost(ctx context.Context, id int64, title, content *string) (models.Post, error) {
	var post models.Post
	err := d.pool.QueryRow(
		ctx,
		`UPDATE posts
         SET title      = COALESCE($2, title),
             content    = COALESCE($3, content),
             updated_at = now()
         WHERE id = $1
         RETURNING `+postColumns,
		id, title, content,
	).Scan(&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if noRows(err) {
			return models.Post{}, fmt.Errorf("post %d: %w", id, storage.ErrNotFound)
		}
		return models.Post{}, err
	}
	return post, nil
}

// DeletePost removes the post, its comments and likes (schema cascades) and
// every notification whose target points at the post or one of its comments.
func (d *DB) DeletePost(ctx context.Context, id int64) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(
		ctx,
		`DELETE FROM notifications
         WHERE (target_type = 'post' AND target_id = $1)
            OR (target_type = 'comment' AND target_id IN
                (SELECT id FROM comments WHERE post_id = $1))`,
		id,
	)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %d: %w", id, storage.ErrNotFound)
	}

	return tx.Commit(ctx)
}

// FeedPosts returns posts authored by any of the given accounts, newest
// first with id as the deterministic tie-break.
func (d *DB) FeedPosts(ctx context.Context, authorIDs []int64, limit int32) ([]models.Post, error) {
	rows, err := d.pool.Query(
		ctx,
		`SELECT `+postColumns+` FROM posts
         WHERE author_id = ANY($1)
         ORDER BY created_at DESC, id DESC
         LIMIT $2`,
		authorIDs, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

type postRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanPosts(rows postRows) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
