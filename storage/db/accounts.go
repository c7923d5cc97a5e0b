package db

import (
	"context"
	"fmt"

	"pulse/storage"
	"pulse/storage/models"
)

func (d *DB) CreateAccount(ctx context.Context, handle, bio, avatarURL string) (models.Account, error) {
	account := models.Account{
		Handle:    handle,
		Bio:       bio,
		AvatarURL: avatarURL,
	}
	err := d.pool.QueryRow(
		ctx,
		`INSERT INTO accounts (handle, bio, avatar_url)
         VALUES ($1, $2, $3)
         RETURNING id, created_at`,
		handle, bio, avatarURL,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		if isPgError(err, uniqueViolation) {
			return models.Account{}, storage.ErrDuplicateHandle
		}
		return models.Account{}, err
	}
	return account, nil
}

func (d *DB) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account
	err := d.pool.QueryRow(
		ctx,
		`SELECT id, handle, bio, avatar_url, created_at FROM accounts WHERE id = $1`,
		id,
	).Scan(&account.ID, &account.Handle, &account.Bio, &account.AvatarURL, &account.CreatedAt)
	if err != nil {
		if noRows(err) {
			return models.Account{}, fmt.Errorf("account %d: %w", id, storage.ErrNotFound)
		}
		return models.Account{}, err
	}
	return account, nil
}

func (d *DB) GetAccountByHandle(ctx context.Context, handle string) (models.Account, error) {
	var account models.Account
	err := d.pool.QueryRow(
		ctx,
		`SELECT id, handle, bio, avatar_url, created_at FROM accounts WHERE handle = $1`,
		handle,
	).Scan(&account.ID, &account.Handle, &account.Bio, &account.AvatarURL, &account.CreatedAt)
	if err != nil {
		if noRows(err) {
			return models.Account{}, fmt.Errorf("account %q: %w", handle, storage.ErrNotFound)
		}
		return models.Account{}, err
	}
	return account, nil
}

func (d *DB) UpdateAccountProfile(ctx context.Context, id int64, bio, avatarURL string) (models.Account, error) {
	var account models.Account
	err := d.pool.QueryRow(
		ctx,
		`UPDATE accounts SET bio = $2, avatar_url = $3
         WHERE id = $1
         RETURNING id, handle, bio, avatar_url, created_at`,
		id, bio, avatarURL,
	).Scan(&account.ID, &account.Handle, &account.Bio, &account.AvatarURL, &account.CreatedAt)
	if err != nil {
		if noRows(err) {
			return models.Account{}, fmt.Errorf("account %d: %w", id, storage.ErrNotFound)
		}
		return models.Account{}, err
	}
	return account, nil
}
