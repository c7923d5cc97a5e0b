// Package feeds assembles the recipient-scoped content stream from the
// follow graph and the post store. Strict reverse-chronological, no ranking,
// no caching: every call reflects the stores at call time.
package feeds

import (
	"context"

	"pulse/storage/models"
)

const DefaultLimit = 100

type Store interface {
	ListFollowingIDs(ctx context.Context, accountID int64) ([]int64, error)
	FeedPosts(ctx context.Context, authorIDs []int64, limit int32) ([]models.Post, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetFeed returns posts authored by the actor's followees, newest first with
// id as the tie-break. Following nobody yields an empty feed, not an error.
func (s *Service) GetFeed(ctx context.Context, actorID int64, limit int32) ([]models.Post, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	following, err := s.store.ListFollowingIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if len(following) == 0 {
		return []models.Post{}, nil
	}
	return s.store.FeedPosts(ctx, following, limit)
}
