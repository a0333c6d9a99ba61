package session

import (
	"time"
)

// Device is an anonymous client identity. There is no account to sign up
// for: the client generates a device id and secret on first run and the
// pair acts as its credentials from then on.
type Device struct {
	ID         int
	DeviceID   string
	SecretHash string
	CreatedAt  time.Time
}
