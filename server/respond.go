package server

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"pulse/storage"
	"pulse/utils"
)

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(utils.ToJson(value))
}

func sendError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeError maps the core error kinds onto transport status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrPermission):
		sendError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		sendError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrAlreadyLiked), errors.Is(err, storage.ErrNotLiked):
		sendError(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrSelfReference), errors.Is(err, storage.ErrValidation):
		sendError(w, http.StatusBadRequest, err.Error())
	default:
		log.Errorf("Internal error: %v", err)
		sendError(w, http.StatusInternalServerError, "internal error")
	}
}
