package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type registerRequest struct {
	Handle    string `json:"handle"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type profileRequest struct {
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.graph.Register(r.Context(), req.Handle, req.Bio, req.AvatarURL)
	if err != nil {
		writeError(w, err)
		return
	}
	s.handles.Add(r.Context(), account.Handle, account.ID)
	writeJSON(w, http.StatusCreated, account)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "accountID")
	if !ok {
		return
	}
	account, err := s.graph.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.graph.UpdateProfile(r.Context(), actor.ID, req.Bio, req.AvatarURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) follow(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	targetID, ok := pathID(w, r, "accountID")
	if !ok {
		return
	}

	if err := s.graph.Follow(r.Context(), actor.ID, targetID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "following"})
}

func (s *Server) unfollow(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	targetID, ok := pathID(w, r, "accountID")
	if !ok {
		return
	}

	if err := s.graph.Unfollow(r.Context(), actor.ID, targetID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "unfollowed"})
}

func (s *Server) listFollowing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "accountID")
	if !ok {
		return
	}
	accounts, err := s.graph.ListFollowing(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (s *Server) listFollowers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "accountID")
	if !ok {
		return
	}
	accounts, err := s.graph.ListFollowers(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

// pathID parses the named url parameter as an id, replying 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
