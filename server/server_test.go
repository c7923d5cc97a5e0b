package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"pulse/engagement"
	"pulse/feeds"
	"pulse/graph"
	"pulse/notifications"
	"pulse/posts"
	"pulse/server"
	"pulse/storage/mem"
	"pulse/storage/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := mem.New()
	notifs := notifications.NewService(store, nil)

	s := server.NewServer(
		graph.NewService(store, notifs),
		posts.NewService(store, notifs),
		engagement.NewService(store, notifs),
		notifs,
		feeds.NewService(store),
		nil,
	)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, actor string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if actor != "" {
		req.Header.Set(server.ActorHeader, actor)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

func register(t *testing.T, ts *httptest.Server, handle string) models.Account {
	t.Helper()
	resp, data := do(t, ts, http.MethodPost, "/accounts", "", map[string]string{"handle": handle})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var account models.Account
	require.NoError(t, json.Unmarshal(data, &account))
	return account
}

func TestRegisterStatusCodes(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := do(t, ts, http.MethodPost, "/accounts", "", map[string]string{"handle": "alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate handle is a validation failure.
	resp, _ = do(t, ts, http.MethodPost, "/accounts", "", map[string]string{"handle": "alice"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWritesRequireActor(t *testing.T) {
	ts := newTestServer(t)
	register(t, ts, "alice")

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/posts"},
		{http.MethodPost, "/accounts/1/follow"},
		{http.MethodGet, "/feed"},
		{http.MethodGet, "/notifications"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, _ := do(t, ts, tt.method, tt.path, "", nil)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}

	// Unknown actor handles are rejected too.
	resp, _ := do(t, ts, http.MethodPost, "/posts", "mallory", map[string]string{"title": "t", "content": "c"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestReadsArePublic(t *testing.T) {
	ts := newTestServer(t)
	alice := register(t, ts, "alice")

	resp, _ := do(t, ts, http.MethodPost, "/posts", "alice", map[string]string{"title": "t", "content": "c"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = do(t, ts, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, ts, http.MethodGet, fmt.Sprintf("/accounts/%d", alice.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFollowStatusCodes(t *testing.T) {
	ts := newTestServer(t)
	alice := register(t, ts, "alice")
	bob := register(t, ts, "bob")

	resp, _ := do(t, ts, http.MethodPost, fmt.Sprintf("/accounts/%d/follow", alice.ID), "alice", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode) // self follow

	resp, _ = do(t, ts, http.MethodPost, fmt.Sprintf("/accounts/%d/follow", bob.ID), "alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, ts, http.MethodPost, "/accounts/9999/follow", "alice", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLikeStatusCodes(t *testing.T) {
	ts := newTestServer(t)
	register(t, ts, "alice")
	register(t, ts, "bob")

	resp, data := do(t, ts, http.MethodPost, "/posts", "bob", map[string]string{"title": "t", "content": "c"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var post models.Post
	require.NoError(t, json.Unmarshal(data, &post))

	likePath := fmt.Sprintf("/posts/%d/like", post.ID)
	resp, _ = do(t, ts, http.MethodPost, likePath, "alice", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = do(t, ts, http.MethodPost, likePath, "alice", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, ts, http.MethodDelete, likePath, "alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, ts, http.MethodDelete, likePath, "alice", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPermissionStatusCodes(t *testing.T) {
	ts := newTestServer(t)
	register(t, ts, "alice")
	register(t, ts, "bob")
	register(t, ts, "carol")

	resp, data := do(t, ts, http.MethodPost, "/posts", "bob", map[string]string{"title": "t", "content": "c"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var post models.Post
	require.NoError(t, json.Unmarshal(data, &post))

	// Non-owner update.
	resp, _ = do(t, ts, http.MethodPatch, fmt.Sprintf("/posts/%d", post.ID), "alice",
		map[string]string{"title": "hijacked"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Like bob's post as alice so bob gets a notification.
	resp, _ = do(t, ts, http.MethodPost, fmt.Sprintf("/posts/%d/like", post.ID), "alice", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, data = do(t, ts, http.MethodGet, "/notifications", "bob", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notifs []models.Notification
	require.NoError(t, json.Unmarshal(data, &notifs))
	require.Len(t, notifs, 1)
	require.True(t, notifs[0].Unread)

	// Only the recipient may mark it read.
	readPath := fmt.Sprintf("/notifications/%d/read", notifs[0].ID)
	resp, _ = do(t, ts, http.MethodPost, readPath, "carol", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = do(t, ts, http.MethodPost, readPath, "bob", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data = do(t, ts, http.MethodGet, "/notifications", "bob", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &notifs))
	require.False(t, notifs[0].Unread)
}

func TestFeedEndpoint(t *testing.T) {
	ts := newTestServer(t)
	register(t, ts, "alice")
	bob := register(t, ts, "bob")

	resp, _ := do(t, ts, http.MethodPost, fmt.Sprintf("/accounts/%d/follow", bob.ID), "alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, title := range []string{"Hello", "World"} {
		resp, _ := do(t, ts, http.MethodPost, "/posts", "bob",
			map[string]string{"title": title, "content": "c"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, data := do(t, ts, http.MethodGet, "/feed", "alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []models.Post
	require.NoError(t, json.Unmarshal(data, &feed))
	require.Len(t, feed, 2)
	require.Equal(t, "World", feed[0].Title)
	require.Equal(t, "Hello", feed[1].Title)
}
