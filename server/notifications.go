package server

import "net/http"

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	result, err := s.notifications.List(r.Context(), actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) unreadCount(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	count, err := s.notifications.UnreadCount(r.Context(), actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (s *Server) markRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "notificationID")
	if !ok {
		return
	}

	if err := s.notifications.MarkRead(r.Context(), actor.ID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "marked as read"})
}
