package session

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notemaster/internal/domain/session"
)

type Handler struct {
	service    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service session.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.openOp(), h.open)
}

func (h *Handler) open(ctx context.Context, input *openInput) (*openOutput, error) {
	token, err := h.service.Open(ctx, input.Body.DeviceID, input.Body.Secret)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("invalid device credentials")
		}
		h.log.Error("failed to open session", "error", err)
		return nil, err
	}

	return &openOutput{
		Body: openResponse{Token: token},
	}, nil
}
