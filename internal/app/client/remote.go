package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"notemaster/internal/app/client/config"
	"notemaster/internal/domain/note"
	"notemaster/internal/domain/replica"
)

// Remote is the replica as seen by the sync engine.
type Remote interface {
	// IsAvailable reports whether the replica answers its health check.
	IsAvailable(ctx context.Context) bool

	// FetchAll returns every document of this device, soft-deleted ones
	// included, already mapped to local notes.
	FetchAll(ctx context.Context) (note.Collection, error)

	// Create pushes a note the replica has never seen and returns the
	// replica-assigned document id.
	Create(ctx context.Context, n note.Note) (string, error)

	// Update overwrites the document the note is bound to via RemoteID.
	Update(ctx context.Context, n note.Note) error

	// Delete purges the document from the replica.
	Delete(ctx context.Context, remoteID string) error
}

type httpRemote struct {
	client   *http.Client
	log      *slog.Logger
	baseURL  string
	identity DeviceIdentity
	token    string
}

func NewHTTPRemote(cfg *config.Config, identity DeviceIdentity, log *slog.Logger) *httpRemote {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpRemote{
		client:   client,
		log:      log.With("component", "remote"),
		baseURL:  scheme + cfg.ServerAddress,
		identity: identity,
	}
}

func (h *httpRemote) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return false
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug("health check failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (h *httpRemote) FetchAll(ctx context.Context) (note.Collection, error) {
	resp, err := h.doAuthorized(ctx, http.MethodGet, "/api/v1/documents", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Documents []replica.Document `json:"documents"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	fetchedAt := time.Now().UTC()
	notes := make(note.Collection, len(listResp.Documents))
	for _, doc := range listResp.Documents {
		n := doc.ToNote(fetchedAt)
		notes[n.ID] = n
	}
	return notes, nil
}

func (h *httpRemote) Create(ctx context.Context, n note.Note) (string, error) {
	resp, err := h.doAuthorized(ctx, http.MethodPost, "/api/v1/documents", replica.FromNote(n))
	if err != nil {
		return "", err
	}

	var createResp struct {
		ID string `json:"id"`
	}
	if err := h.parseResponse(resp, &createResp); err != nil {
		return "", err
	}
	return createResp.ID, nil
}

func (h *httpRemote) Update(ctx context.Context, n note.Note) error {
	resp, err := h.doAuthorized(ctx, http.MethodPut, "/api/v1/documents/"+n.RemoteID, replica.FromNote(n))
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpRemote) Delete(ctx context.Context, remoteID string) error {
	resp, err := h.doAuthorized(ctx, http.MethodDelete, "/api/v1/documents/"+remoteID, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// openSession exchanges the device credentials for a bearer token. Unknown
// devices are registered by the replica on the spot.
func (h *httpRemote) openSession(ctx context.Context) error {
	body := struct {
		DeviceID string `json:"device_id"`
		Secret   string `json:"secret"`
	}{
		DeviceID: h.identity.DeviceID,
		Secret:   h.identity.Secret,
	}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/session", body)
	if err != nil {
		return err
	}

	var sessionResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &sessionResp); err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	h.token = sessionResp.Token
	return nil
}

// doAuthorized runs the request under the current session, opening one
// when there is none and reopening once on 401 for expired tokens.
func (h *httpRemote) doAuthorized(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	if h.token == "" {
		if err := h.openSession(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if err := h.openSession(ctx); err != nil {
			return nil, err
		}
		return h.doRequest(ctx, method, path, body)
	}

	return resp, nil
}

func (h *httpRemote) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	return resp, nil
}

func (h *httpRemote) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error: %s", errResp.Error)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}
