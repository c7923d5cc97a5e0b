package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"pulse/monitoring"
	"pulse/storage/models"
)

type contextKey string

const actorKey contextKey = "actor"

// ActorHeader carries the handle of the authenticated account, resolved by
// the upstream auth layer.
const ActorHeader = "X-Actor"

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		log.WithFields(log.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Debug("request")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		monitoring.HttpRequestsTotal.WithLabelValues(
			r.URL.Path, strconv.Itoa(rec.status),
		).Inc()
		monitoring.HttpRequestDuration.WithLabelValues(
			r.URL.Path,
		).Observe(time.Since(start).Seconds())
	})
}

// resolveActor looks up the account named by the X-Actor header and stores
// it in the request context. Requests without the header pass through; the
// write handlers reject them via actorFrom.
func (s *Server) resolveActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handle := r.Header.Get(ActorHeader)
		if handle == "" {
			next.ServeHTTP(w, r)
			return
		}

		if id, ok := s.handles.Get(r.Context(), handle); ok {
			account, err := s.graph.GetProfile(r.Context(), id)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(withActor(r.Context(), account)))
				return
			}
		}

		account, err := s.graph.GetProfileByHandle(r.Context(), handle)
		if err != nil {
			sendError(w, http.StatusUnauthorized, "unknown actor")
			return
		}
		s.handles.Add(r.Context(), account.Handle, account.ID)
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), account)))
	})
}

func withActor(ctx context.Context, account models.Account) context.Context {
	return context.WithValue(ctx, actorKey, account)
}

// actorFrom returns the resolved actor, or false if the request was
// anonymous.
func actorFrom(r *http.Request) (models.Account, bool) {
	account, ok := r.Context().Value(actorKey).(models.Account)
	return account, ok
}
