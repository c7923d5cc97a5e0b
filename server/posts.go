package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pulse/feeds"
)

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type commentRequest struct {
	Content string `json:"content"`
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	result, err := s.posts.ListPosts(r.Context(), queryLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := s.posts.CreatePost(r.Context(), actor.ID, req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "postID")
	if !ok {
		return
	}
	post, err := s.posts.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "postID")
	if !ok {
		return
	}
	var req postUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := s.posts.UpdatePost(r.Context(), actor.ID, id, req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "postID")
	if !ok {
		return
	}

	if err := s.posts.DeletePost(r.Context(), actor.ID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "postID")
	if !ok {
		return
	}
	comments, err := s.posts.ListComments(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "postID")
	if !ok {
		return
	}
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := s.posts.CreateComment(r.Context(), actor.ID, id, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (s *Server) likePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "postID")
	if !ok {
		return
	}

	if err := s.engagement.Like(r.Context(), actor.ID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"detail": "liked"})
}

func (s *Server) unlikePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "postID")
	if !ok {
		return
	}

	if err := s.engagement.Unlike(r.Context(), actor.ID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "unliked"})
}

func (s *Server) likeCount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "postID")
	if !ok {
		return
	}
	count, err := s.engagement.LikeCount(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (s *Server) getFeed(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	result, err := s.feeds.GetFeed(r.Context(), actor.ID, queryLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func queryLimit(r *http.Request) int32 {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return feeds.DefaultLimit
	}
	limit, err := strconv.ParseInt(limitStr, 10, 32)
	if err != nil || limit <= 0 {
		return feeds.DefaultLimit
	}
	return int32(limit)
}
