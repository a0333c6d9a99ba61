package session

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("device not found")
	ErrInvalidCredentials = errors.New("invalid device credentials")
	ErrInvalidSession     = errors.New("invalid session")
)
