package replica

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrInvalidDocument = errors.New("invalid document")
)
