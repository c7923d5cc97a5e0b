package graph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pulse/graph"
	"pulse/notifications"
	"pulse/storage"
	"pulse/storage/mem"
	"pulse/storage/models"
)

type fixture struct {
	graph  *graph.Service
	notifs *notifications.Service
	store  *mem.Store

	alice models.Account
	bob   models.Account
	carol models.Account
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := mem.New()
	notifs := notifications.NewService(store, nil)
	svc := graph.NewService(store, notifs)

	ctx := context.Background()
	alice, err := svc.Register(ctx, "alice", "", "")
	require.NoError(t, err)
	bob, err := svc.Register(ctx, "bob", "", "")
	require.NoError(t, err)
	carol, err := svc.Register(ctx, "carol", "", "")
	require.NoError(t, err)

	return &fixture{
		graph:  svc,
		notifs: notifs,
		store:  store,
		alice:  alice,
		bob:    bob,
		carol:  carol,
	}
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("blank handle", func(t *testing.T) {
		_, err := f.graph.Register(ctx, "   ", "", "")
		require.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("duplicate handle", func(t *testing.T) {
		_, err := f.graph.Register(ctx, "alice", "someone else", "")
		require.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("profile round trip", func(t *testing.T) {
		got, err := f.graph.GetProfileByHandle(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, f.alice.ID, got.ID)
	})
}

func TestFollowSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.ErrorIs(t, f.graph.Follow(ctx, f.alice.ID, f.alice.ID), storage.ErrSelfReference)
	require.ErrorIs(t, f.graph.Unfollow(ctx, f.alice.ID, f.alice.ID), storage.ErrSelfReference)
}

func TestFollow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.graph.Follow(ctx, f.alice.ID, f.bob.ID))

	following, err := f.graph.ListFollowing(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	require.Equal(t, f.bob.ID, following[0].ID)

	followers, err := f.graph.ListFollowers(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	require.Equal(t, f.alice.ID, followers[0].ID)

	got, err := f.notifs.List(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, models.VerbFollowed, got[0].Verb)
	require.Equal(t, f.alice.ID, got[0].ActorID)
	require.True(t, got[0].Unread)
}

func TestFollowTwiceDoesNotRenotify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.graph.Follow(ctx, f.alice.ID, f.bob.ID))
	require.NoError(t, f.graph.Follow(ctx, f.alice.ID, f.bob.ID))

	following, err := f.graph.ListFollowing(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)

	got, err := f.notifs.List(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFollowUnknownTarget(t *testing.T) {
	f := newFixture(t)
	err := f.graph.Follow(context.Background(), f.alice.ID, 9999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUnfollow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Unfollowing someone never followed is a no-op.
	require.NoError(t, f.graph.Unfollow(ctx, f.alice.ID, f.bob.ID))

	require.NoError(t, f.graph.Follow(ctx, f.alice.ID, f.bob.ID))
	require.NoError(t, f.graph.Unfollow(ctx, f.alice.ID, f.bob.ID))

	following, err := f.graph.ListFollowing(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Empty(t, following)
}

func TestUpdateProfileKeepsHandle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	updated, err := f.graph.UpdateProfile(ctx, f.carol.ID, "new bio", "http://avatar")
	require.NoError(t, err)
	require.Equal(t, "carol", updated.Handle)
	require.Equal(t, "new bio", updated.Bio)
	require.Equal(t, "http://avatar", updated.AvatarURL)
}
