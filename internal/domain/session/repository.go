package session

import (
	"context"
	"time"
)

type Repository interface {
	// CreateDevice registers a device and returns its numeric id.
	CreateDevice(ctx context.Context, deviceID, secretHash string) (int, error)

	// FindDevice returns the device by its client-generated id.
	// Returns ErrNotFound when the device is unknown.
	FindDevice(ctx context.Context, deviceID string) (Device, error)

	// CreateSession stores a session token hash for the device.
	CreateSession(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error

	// ValidateSession resolves an unexpired token hash to the device's
	// numeric id. Returns ErrInvalidSession otherwise.
	ValidateSession(ctx context.Context, tokenHash string) (int, error)
}
