// Package engagement owns the per-(post, user) like facts. Uniqueness is
// enforced by the store, not by check-then-insert.
package engagement

import (
	"context"

	log "github.com/sirupsen/logrus"

	"pulse/monitoring"
	"pulse/storage/models"
)

type Store interface {
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreateLike(ctx context.Context, postID, userID int64) error
	DeleteLike(ctx context.Context, postID, userID int64) error
	CountLikes(ctx context.Context, postID int64) (int64, error)
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

// Like records the (post, actor) fact. Liking a post twice returns
// storage.ErrAlreadyLiked; the insert itself is the duplicate check, so two
// racing requests cannot both succeed.
func (s *Service) Like(ctx context.Context, actorID, postID int64) error {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.store.CreateLike(ctx, postID, actorID); err != nil {
		return err
	}

	monitoring.LikesTotal.Inc()
	target := &models.TargetRef{Type: models.TargetPost, ID: post.ID}
	if err := s.notifier.Notify(ctx, post.AuthorID, actorID, models.VerbLiked, target); err != nil {
		log.Errorf("Error notifying like on post %d: %v", postID, err)
	}
	return nil
}

// Unlike removes the fact; unliking a post that was never liked returns
// storage.ErrNotLiked.
func (s *Service) Unlike(ctx context.Context, actorID, postID int64) error {
	if _, err := s.store.GetPost(ctx, postID); err != nil {
		return err
	}
	return s.store.DeleteLike(ctx, postID, actorID)
}

func (s *Service) LikeCount(ctx context.Context, postID int64) (int64, error) {
	if _, err := s.store.GetPost(ctx, postID); err != nil {
		return 0, err
	}
	return s.store.CountLikes(ctx, postID)
}
