// Package server is the thin web layer over the core services: one route
// per operation, error kinds mapped to status codes. Authentication is
// upstream; the resolved actor arrives in the X-Actor header.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pulse/cache"
	"pulse/engagement"
	"pulse/feeds"
	"pulse/graph"
	"pulse/notifications"
	"pulse/posts"
)

type Server struct {
	graph         *graph.Service
	posts         *posts.Service
	engagement    *engagement.Service
	notifications *notifications.Service
	feeds         *feeds.Service
	handles       *cache.HandlesCache // nil when redis is not configured
}

func NewServer(
	graphSvc *graph.Service,
	postsSvc *posts.Service,
	engagementSvc *engagement.Service,
	notificationsSvc *notifications.Service,
	feedsSvc *feeds.Service,
	handles *cache.HandlesCache,
) *Server {
	return &Server{
		graph:         graphSvc,
		posts:         postsSvc,
		engagement:    engagementSvc,
		notifications: notificationsSvc,
		feeds:         feedsSvc,
		handles:       handles,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(instrument)
	r.Use(s.resolveActor)

	r.Handle("/metrics", promhttp.Handler())

	r.Post("/accounts", s.register)
	r.Get("/accounts/{accountID}", s.getProfile)
	r.Patch("/profile", s.updateProfile)
	r.Post("/accounts/{accountID}/follow", s.follow)
	r.Delete("/accounts/{accountID}/follow", s.unfollow)
	r.Get("/accounts/{accountID}/following", s.listFollowing)
	r.Get("/accounts/{accountID}/followers", s.listFollowers)

	r.Get("/posts", s.listPosts)
	r.Post("/posts", s.createPost)
	r.Get("/posts/{postID}", s.getPost)
	r.Patch("/posts/{postID}", s.updatePost)
	r.Delete("/posts/{postID}", s.deletePost)
	r.Get("/posts/{postID}/comments", s.listComments)
	r.Post("/posts/{postID}/comments", s.createComment)
	r.Post("/posts/{postID}/like", s.likePost)
	r.Delete("/posts/{postID}/like", s.unlikePost)
	r.Get("/posts/{postID}/likes", s.likeCount)

	r.Get("/notifications", s.listNotifications)
	r.Get("/notifications/unread", s.unreadCount)
	r.Post("/notifications/{notificationID}/read", s.markRead)

	r.Get("/feed", s.getFeed)

	return r
}

func (s *Server) Run(addr string) {
	err := http.ListenAndServe(addr, s.Router())
	if errors.Is(err, http.ErrServerClosed) {
		fmt.Printf("server closed\n")
	} else if err != nil {
		fmt.Printf("error starting server: %s\n", err)
		os.Exit(1)
	}
}
