package db

import (
	"context"
	"fmt"

	"pulse/storage"
)

// CreateLike is the constraint-backed insert behind the like contract: a
// single statement, so two racing requests cannot both succeed.
func (d *DB) CreateLike(ctx context.Context, postID, userID int64) error {
	tag, err := d.pool.Exec(
		ctx,
		`INSERT INTO likes (post_id, user_id)
         VALUES ($1, $2)
         ON CONFLICT DO NOTHING`,
		postID, userID,
	)
	if err != nil {
		if isPgError(err, foreignKeyViolation) {
			return fmt.Errorf("post %d: %w", postID, storage.ErrNotFound)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrAlreadyLiked
	}
	return nil
}

func (d *DB) DeleteLike(ctx context.Context, postID, userID int64) error {
	tag, err := d.pool.Exec(
		ctx,
		`DELETE FROM likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotLiked
	}
	return nil
}

func (d *DB) CountLikes(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := d.pool.QueryRow(
		ctx,
		`SELECT count(*) FROM likes WHERE post_id = $1`,
		postID,
	).Scan(&count)
	return count, err
}
