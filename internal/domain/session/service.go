package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

const sessionTTL = 24 * time.Hour

type Servicer interface {
	Open(ctx context.Context, deviceID, secret string) (string, error)
	Validate(ctx context.Context, token string) (int, error)
}

// Service implements register-or-verify device sessions. A device unknown
// to the replica is registered on first contact; a known one must present
// the same secret. Either way a fresh bearer token is issued.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "session_service"),
	}
}

func (s *Service) Open(ctx context.Context, deviceID, secret string) (string, error) {
	if deviceID == "" || secret == "" {
		return "", ErrInvalidCredentials
	}

	userID, err := s.authenticate(ctx, deviceID, secret)
	if err != nil {
		return "", err
	}

	// Only the sha256 of the token is stored, the token itself never
	// touches the database.
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)
	tokenHash := sha256.Sum256([]byte(token))

	expiresAt := time.Now().Add(sessionTTL)
	if err := s.repo.CreateSession(ctx, userID, hex.EncodeToString(tokenHash[:]), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) authenticate(ctx context.Context, deviceID, secret string) (int, error) {
	device, err := s.repo.FindDevice(ctx, deviceID)
	if errors.Is(err, ErrNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return 0, fmt.Errorf("hash device secret: %w", err)
		}
		id, err := s.repo.CreateDevice(ctx, deviceID, string(hash))
		if err != nil {
			return 0, fmt.Errorf("register device: %w", err)
		}
		s.log.Info("registered new device", "device_id", deviceID)
		return id, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find device: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(device.SecretHash), []byte(secret)); err != nil {
		s.log.Debug("device secret mismatch", "device_id", deviceID)
		return 0, ErrInvalidCredentials
	}
	return device.ID, nil
}

func (s *Service) Validate(ctx context.Context, token string) (int, error) {
	tokenHash := sha256.Sum256([]byte(token))

	userID, err := s.repo.ValidateSession(ctx, hex.EncodeToString(tokenHash[:]))
	if err != nil {
		return 0, ErrInvalidSession
	}
	return userID, nil
}
