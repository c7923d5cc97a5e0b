// Package graph owns accounts and the directed follow edges between them.
package graph

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"pulse/monitoring"
	"pulse/storage"
	"pulse/storage/models"
)

type Store interface {
	CreateAccount(ctx context.Context, handle, bio, avatarURL string) (models.Account, error)
	GetAccount(ctx context.Context, id int64) (models.Account, error)
	GetAccountByHandle(ctx context.Context, handle string) (models.Account, error)
	UpdateAccountProfile(ctx context.Context, id int64, bio, avatarURL string) (models.Account, error)
	CreateFollow(ctx context.Context, followerID, followeeID int64) (bool, error)
	DeleteFollow(ctx context.Context, followerID, followeeID int64) (bool, error)
	ListFollowing(ctx context.Context, accountID int64) ([]models.Account, error)
	ListFollowers(ctx context.Context, accountID int64) ([]models.Account, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipientID, actorID int64, verb string, target *models.TargetRef) error
}

type Service struct {
	store    Store
	notifier Notifier
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

// Register creates an account. The handle is unique and immutable.
func (s *Service) Register(ctx context.Context, handle, bio, avatarURL string) (models.Account, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return models.Account{}, fmt.Errorf("%w: handle must not be empty", storage.ErrValidation)
	}
	return s.store.CreateAccount(ctx, handle, bio, avatarURL)
}

func (s *Service) GetProfile(ctx context.Context, id int64) (models.Account, error) {
	return s.store.GetAccount(ctx, id)
}

func (s *Service) GetProfileByHandle(ctx context.Context, handle string) (models.Account, error) {
	return s.store.GetAccountByHandle(ctx, handle)
}

// UpdateProfile changes the mutable profile fields. The handle stays fixed.
func (s *Service) UpdateProfile(ctx context.Context, actorID int64, bio, avatarURL string) (models.Account, error) {
	return s.store.UpdateAccountProfile(ctx, actorID, bio, avatarURL)
}

// Follow adds target to the actor's following set. Following again is a
// no-op and does not re-trigger fan-out.
func (s *Service) Follow(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return fmt.Errorf("%w: cannot follow yourself", storage.ErrSelfReference)
	}

	created, err := s.store.CreateFollow(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	monitoring.FollowsTotal.Inc()
	if err := s.notifier.Notify(ctx, targetID, actorID, models.VerbFollowed, nil); err != nil {
		log.Errorf("Error notifying follow %d -> %d: %v", actorID, targetID, err)
	}
	return nil
}

// Unfollow removes the edge if present; unfollowing someone not followed is
// a no-op.
func (s *Service) Unfollow(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return fmt.Errorf("%w: cannot unfollow yourself", storage.ErrSelfReference)
	}
	_, err := s.store.DeleteFollow(ctx, actorID, targetID)
	return err
}

func (s *Service) ListFollowing(ctx context.Context, accountID int64) ([]models.Account, error) {
	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.store.ListFollowing(ctx, accountID)
}

func (s *Service) ListFollowers(ctx context.Context, accountID int64) ([]models.Account, error) {
	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.store.ListFollowers(ctx, accountID)
}
