package mem

import (
	"context"
	"fmt"

	"pulse/storage"
	"pulse/storage/models"
)

func (s *Store) CreateAccount(_ context.Context, handle, bio, avatarURL string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.handles[handle]; taken {
		return models.Account{}, storage.ErrDuplicateHandle
	}

	s.nextAccountID++
	account := models.Account{
		ID:        s.nextAccountID,
		Handle:    handle,
		Bio:       bio,
		AvatarURL: avatarURL,
		CreatedAt: now(),
	}
	s.accounts[account.ID] = account
	s.handles[handle] = account.ID
	return account, nil
}

func (s *Store) GetAccount(_ context.Context, id int64) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getAccount(id)
}

func (s *Store) GetAccountByHandle(_ context.Context, handle string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.handles[handle]
	if !ok {
		return models.Account{}, fmt.Errorf("account %q: %w", handle, storage.ErrNotFound)
	}
	return s.accounts[id], nil
}

func (s *Store) UpdateAccountProfile(_ context.Context, id int64, bio, avatarURL string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.getAccount(id)
	if err != nil {
		return models.Account{}, err
	}
	account.Bio = bio
	account.AvatarURL = avatarURL
	s.accounts[id] = account
	return account, nil
}

// getAccount expects the lock to be held.
func (s *Store) getAccount(id int64) (models.Account, error) {
	account, ok := s.accounts[id]
	if !ok {
		return models.Account{}, fmt.Errorf("account %d: %w", id, storage.ErrNotFound)
	}
	return account, nil
}
