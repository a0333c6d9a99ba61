package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"notemaster/internal/domain/session"
)

// SessionRepository persists devices and their session tokens.
type SessionRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSessionRepository(db *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		db:  db,
		log: log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) CreateDevice(ctx context.Context, deviceID, secretHash string) (int, error) {
	var id int
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO devices (device_id, secret_hash)
         VALUES ($1, $2)
         RETURNING id`,
		deviceID, secretHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert device: %w", err)
	}
	return id, nil
}

func (r *SessionRepository) FindDevice(ctx context.Context, deviceID string) (session.Device, error) {
	var device session.Device
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, device_id, secret_hash, created_at
         FROM devices
         WHERE device_id = $1`,
		deviceID).Scan(&device.ID, &device.DeviceID, &device.SecretHash, &device.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return session.Device{}, session.ErrNotFound
	}
	if err != nil {
		return session.Device{}, fmt.Errorf("find device: %w", err)
	}
	return device, nil
}

func (r *SessionRepository) CreateSession(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO sessions (device_id, token_hash, expires_at)
         VALUES ($1, decode($2, 'hex'), $3)`,
		userID, tokenHash, expiresAt)
	return err
}

func (r *SessionRepository) ValidateSession(ctx context.Context, tokenHash string) (int, error) {
	var userID int
	err := r.db.Pool().QueryRow(ctx,
		`SELECT device_id FROM sessions
         WHERE token_hash = decode($1, 'hex') AND expires_at > NOW()`,
		tokenHash).Scan(&userID)
	if err != nil {
		return 0, session.ErrInvalidSession
	}
	return userID, nil
}
