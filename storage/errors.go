package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every store implementation and the services on
// top of them. Callers match with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrPermission    = errors.New("permission denied")
	ErrSelfReference = errors.New("cannot target yourself")
	ErrAlreadyLiked  = errors.New("already liked")
	ErrNotLiked      = errors.New("not liked")
	ErrValidation    = errors.New("invalid input")
)

// ErrDuplicateHandle is a validation failure: handles are unique and
// immutable, so a clash can only come from client input.
var ErrDuplicateHandle = fmt.Errorf("%w: handle already taken", ErrValidation)
