package db

import (
	"context"
	"fmt"

	"pulse/storage"
	"pulse/storage/models"
)

// CreateFollow inserts the edge if absent. The returned bool reports whether
// a new edge was created, so callers can skip fan-out on duplicate calls.
func (d *DB) CreateFollow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	tag, err := d.pool.Exec(
		ctx,
		`INSERT INTO follows (follower_id, followee_id)
         VALUES ($1, $2)
         ON CONFLICT DO NOTHING`,
		followerID, followeeID,
	)
	if err != nil {
		if isPgError(err, foreignKeyViolation) {
			return false, fmt.Errorf("account %d: %w", followeeID, storage.ErrNotFound)
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (d *DB) DeleteFollow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	tag, err := d.pool.Exec(
		ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (d *DB) ListFollowing(ctx context.Context, accountID int64) ([]models.Account, error) {
	return d.followEdgeAccounts(
		ctx,
		`SELECT a.id, a.handle, a.bio, a.avatar_url, a.created_at
         FROM follows f JOIN accounts a ON a.id = f.followee_id
         WHERE f.follower_id = $1
         ORDER BY f.created_at DESC`,
		accountID,
	)
}

func (d *DB) ListFollowers(ctx context.Context, accountID int64) ([]models.Account, error) {
	return d.followEdgeAccounts(
		ctx,
		`SELECT a.id, a.handle, a.bio, a.avatar_url, a.created_at
         FROM follows f JOIN accounts a ON a.id = f.follower_id
         WHERE f.followee_id = $1
         ORDER BY f.created_at DESC`,
		accountID,
	)
}

func (d *DB) ListFollowingIDs(ctx context.Context, accountID int64) ([]int64, error) {
	rows, err := d.pool.Query(
		ctx,
		`SELECT followee_id FROM follows WHERE follower_id = $1`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (d *DB) followEdgeAccounts(ctx context.Context, query string, accountID int64) ([]models.Account, error) {
	rows, err := d.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Handle, &a.Bio, &a.AvatarURL, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
