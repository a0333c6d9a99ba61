package client

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/uuid/v5"
)

// DeviceIdentity is the anonymous credential pair generated on first run
// and presented to the replica on every session open.
type DeviceIdentity struct {
	DeviceID string `json:"device_id"`
	Secret   string `json:"secret"`
}

// LoadOrCreateDevice reads the device identity file, generating and
// persisting a fresh identity when none exists yet.
func LoadOrCreateDevice(path string) (DeviceIdentity, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		var identity DeviceIdentity
		if err := json.Unmarshal(data, &identity); err != nil {
			return DeviceIdentity{}, fmt.Errorf("parse device identity: %w", err)
		}
		if identity.DeviceID == "" || identity.Secret == "" {
			return DeviceIdentity{}, errors.New("device identity file is incomplete")
		}
		return identity, nil
	}
	if !os.IsNotExist(err) {
		return DeviceIdentity{}, fmt.Errorf("read device identity: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return DeviceIdentity{}, fmt.Errorf("generate device id: %w", err)
	}
	secretBytes := make([]byte, 32)
	if _, err := rand.Read(secretBytes); err != nil {
		return DeviceIdentity{}, fmt.Errorf("generate device secret: %w", err)
	}

	identity := DeviceIdentity{
		DeviceID: id.String(),
		Secret:   base64.URLEncoding.EncodeToString(secretBytes),
	}

	data, err = json.MarshalIndent(identity, "", "  ")
	if err != nil {
		return DeviceIdentity{}, fmt.Errorf("marshal device identity: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return DeviceIdentity{}, fmt.Errorf("write device identity: %w", err)
	}

	return identity, nil
}
