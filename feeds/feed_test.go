package feeds_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pulse/feeds"
	"pulse/graph"
	"pulse/notifications"
	"pulse/storage/mem"
	"pulse/storage/models"
)

type fixture struct {
	feeds *feeds.Service
	graph *graph.Service
	store *mem.Store

	alice models.Account
	bob   models.Account
	carol models.Account
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := mem.New()
	notifs := notifications.NewService(store, nil)
	graphSvc := graph.NewService(store, notifs)

	ctx := context.Background()
	alice, err := graphSvc.Register(ctx, "alice", "", "")
	require.NoError(t, err)
	bob, err := graphSvc.Register(ctx, "bob", "", "")
	require.NoError(t, err)
	carol, err := graphSvc.Register(ctx, "carol", "", "")
	require.NoError(t, err)

	return &fixture{
		feeds: feeds.NewService(store),
		graph: graphSvc,
		store: store,
		alice: alice,
		bob:   bob,
		carol: carol,
	}
}

func TestFeedEmptyWhenFollowingNobody(t *testing.T) {
	f := newFixture(t)

	feed, err := f.feeds.GetFeed(context.Background(), f.alice.ID, 0)
	require.NoError(t, err)
	require.NotNil(t, feed)
	require.Empty(t, feed)
}

func TestFeedNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.graph.Follow(ctx, f.alice.ID, f.bob.ID))

	_, err := f.store.CreatePost(ctx, f.bob.ID, "Hello", "first")
	require.NoError(t, err)
	_, err = f.store.CreatePost(ctx, f.bob.ID, "World", "second")
	require.NoError(t, err)

	feed, err := f.feeds.GetFeed(ctx, f.alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	require.Equal(t, "World", feed[0].Title)
	require.Equal(t, "Hello", feed[1].Title)
}

func TestFeedOnlyIncludesFollowedAuthors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.graph.Follow(ctx, f.alice.ID, f.bob.ID))

	_, err := f.store.CreatePost(ctx, f.bob.ID, "from bob", "x")
	require.NoError(t, err)
	_, err = f.store.CreatePost(ctx, f.carol.ID, "from carol", "y")
	require.NoError(t, err)
	_, err = f.store.CreatePost(ctx, f.alice.ID, "own post", "z")
	require.NoError(t, err)

	feed, err := f.feeds.GetFeed(ctx, f.alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, "from bob", feed[0].Title)
}

func TestFeedReflectsCurrentGraph(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.graph.Follow(ctx, f.alice.ID, f.bob.ID))
	_, err := f.store.CreatePost(ctx, f.bob.ID, "post", "x")
	require.NoError(t, err)

	feed, err := f.feeds.GetFeed(ctx, f.alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	require.NoError(t, f.graph.Unfollow(ctx, f.alice.ID, f.bob.ID))
	feed, err = f.feeds.GetFeed(ctx, f.alice.ID, 0)
	require.NoError(t, err)
	require.Empty(t, feed)
}

func TestFeedLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.graph.Follow(ctx, f.alice.ID, f.bob.ID))
	for i := 0; i < 5; i++ {
		_, err := f.store.CreatePost(ctx, f.bob.ID, "post", "x")
		require.NoError(t, err)
	}

	feed, err := f.feeds.GetFeed(ctx, f.alice.ID, 3)
	require.NoError(t, err)
	require.Len(t, feed, 3)
}
