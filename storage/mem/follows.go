package mem

import (
	"context"
	"sort"

	"pulse/storage/models"
)

func (s *Store) CreateFollow(_ context.Context, followerID, followeeID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getAccount(followerID); err != nil {
		return false, err
	}
	if _, err := s.getAccount(followeeID); err != nil {
		return false, err
	}

	key := edge{follower: followerID, followee: followeeID}
	if _, exists := s.follows[key]; exists {
		return false, nil
	}
	s.follows[key] = models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  now(),
	}
	return true, nil
}

func (s *Store) DeleteFollow(_ context.Context, followerID, followeeID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := edge{follower: followerID, followee: followeeID}
	if _, exists := s.follows[key]; !exists {
		return false, nil
	}
	delete(s.follows, key)
	return true, nil
}

func (s *Store) ListFollowing(_ context.Context, accountID int64) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]models.Account, 0)
	for key := range s.follows {
		if key.follower == accountID {
			accounts = append(accounts, s.accounts[key.followee])
		}
	}
	sortAccounts(accounts)
	return accounts, nil
}

func (s *Store) ListFollowers(_ context.Context, accountID int64) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]models.Account, 0)
	for key := range s.follows {
		if key.followee == accountID {
			accounts = append(accounts, s.accounts[key.follower])
		}
	}
	sortAccounts(accounts)
	return accounts, nil
}

func (s *Store) ListFollowingIDs(_ context.Context, accountID int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0)
	for key := range s.follows {
		if key.follower == accountID {
			ids = append(ids, key.followee)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func sortAccounts(accounts []models.Account) {
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
}
